package extract

import "strings"

// MergeChunkResults flattens chunk outputs in chunk order and collapses
// duplicate vulnerabilities. The merge key is the normalized
// vulnerability text alone; records with no vulnerability text are
// dropped here (they cannot be keyed or persisted).
func MergeChunkResults(results []ChunkResult) []RawRecord {
	var flat []RawRecord
	for _, cr := range results {
		for _, rec := range cr.Records {
			if strings.TrimSpace(rec.Vulnerability) == "" {
				continue
			}
			if rec.Page == "" && cr.PageRange != "" {
				rec.Page = FlexibleString(cr.PageRange)
			}
			rec.ChunkID = cr.ChunkID
			flat = append(flat, rec)
		}
	}
	return MergeRecords(flat)
}

// MergeRecords collapses records sharing a merge key. OFC lists are
// unioned preserving first-seen order; taxonomy and rating fields absent
// on the earlier record are filled from the later one. Running the merge
// on its own output is a no-op.
func MergeRecords(records []RawRecord) []RawRecord {
	var order []string
	byKey := make(map[string]*RawRecord)

	for _, rec := range records {
		key := MergeKey(rec.Vulnerability)
		existing, ok := byKey[key]
		if !ok {
			clone := rec
			byKey[key] = &clone
			order = append(order, key)
			continue
		}
		mergeInto(existing, rec)
	}

	merged := make([]RawRecord, 0, len(order))
	for _, key := range order {
		merged = append(merged, *byKey[key])
	}
	return merged
}

func mergeInto(dst *RawRecord, src RawRecord) {
	dst.Options = unionOptions(dst.Options, src.Options)

	if dst.Discipline == "" {
		dst.Discipline = src.Discipline
	}
	if dst.Sector == "" {
		dst.Sector = src.Sector
	}
	if dst.Subsector == "" {
		dst.Subsector = src.Subsector
	}
	if dst.Confidence == "" {
		dst.Confidence = src.Confidence
	}
	if dst.ImpactLevel == "" {
		dst.ImpactLevel = src.ImpactLevel
	}
	if dst.Page == "" {
		dst.Page = src.Page
	}
	if dst.ChunkID == "" {
		dst.ChunkID = src.ChunkID
	}
}

// unionOptions appends unseen options, comparing case-insensitively on
// trimmed text, keeping first-seen order and original casing.
func unionOptions(existing, incoming FlexibleStrings) FlexibleStrings {
	seen := make(map[string]bool, len(existing))
	for _, opt := range existing {
		seen[strings.ToLower(strings.TrimSpace(opt))] = true
	}
	out := existing
	for _, opt := range incoming {
		norm := strings.ToLower(strings.TrimSpace(opt))
		if norm == "" || seen[norm] {
			continue
		}
		seen[norm] = true
		out = append(out, opt)
	}
	return out
}
