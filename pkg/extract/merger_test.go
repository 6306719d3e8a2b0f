package extract

import (
	"reflect"
	"testing"
)

func TestMergeRecordsCollapsesDuplicates(t *testing.T) {
	records := []RawRecord{
		{Vulnerability: "No CCTV coverage at loading dock", Options: FlexibleStrings{"Install cameras"}},
		{Vulnerability: "no cctv coverage at loading dock  ", Options: FlexibleStrings{"Add lighting"}, Discipline: "Video Surveillance"},
	}

	merged := MergeRecords(records)
	if len(merged) != 1 {
		t.Fatalf("merged = %d records, want 1", len(merged))
	}

	got := merged[0]
	if got.Vulnerability != "No CCTV coverage at loading dock" {
		t.Errorf("kept vulnerability = %q, want the first-seen text", got.Vulnerability)
	}
	wantOptions := FlexibleStrings{"Install cameras", "Add lighting"}
	if !reflect.DeepEqual(got.Options, wantOptions) {
		t.Errorf("Options = %v, want %v", got.Options, wantOptions)
	}
	if got.Discipline != "Video Surveillance" {
		t.Errorf("Discipline = %q, want filled from later record", got.Discipline)
	}
}

func TestMergeRecordsOptionUnionIsCaseInsensitive(t *testing.T) {
	records := []RawRecord{
		{Vulnerability: "v", Options: FlexibleStrings{"Install cameras"}},
		{Vulnerability: "v", Options: FlexibleStrings{"INSTALL CAMERAS", "Add signage"}},
	}

	merged := MergeRecords(records)
	wantOptions := FlexibleStrings{"Install cameras", "Add signage"}
	if !reflect.DeepEqual(merged[0].Options, wantOptions) {
		t.Errorf("Options = %v, want %v", merged[0].Options, wantOptions)
	}
}

func TestMergeRecordsDoesNotFillPresentFields(t *testing.T) {
	records := []RawRecord{
		{Vulnerability: "v", Discipline: "Perimeter Security", Confidence: "High"},
		{Vulnerability: "v", Discipline: "Video Surveillance", Confidence: "Low"},
	}

	merged := MergeRecords(records)
	if merged[0].Discipline != "Perimeter Security" {
		t.Errorf("Discipline = %q, earlier value must win", merged[0].Discipline)
	}
	if merged[0].Confidence != "High" {
		t.Errorf("Confidence = %q, earlier value must win", merged[0].Confidence)
	}
}

// Dedupe idempotence: merging an already-merged list is a no-op.
func TestMergeRecordsIdempotent(t *testing.T) {
	records := []RawRecord{
		{Vulnerability: "a", Options: FlexibleStrings{"o1"}},
		{Vulnerability: "b", Options: FlexibleStrings{"o2"}},
		{Vulnerability: "A", Options: FlexibleStrings{"o3"}},
	}

	once := MergeRecords(records)
	twice := MergeRecords(once)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("second merge changed output:\nonce  %+v\ntwice %+v", once, twice)
	}
}

func TestMergeRecordsKeyUniqueness(t *testing.T) {
	records := []RawRecord{
		{Vulnerability: "a"}, {Vulnerability: "b"}, {Vulnerability: "a"},
	}
	merged := MergeRecords(records)

	seen := map[string]bool{}
	for _, rec := range merged {
		key := MergeKey(rec.Vulnerability)
		if seen[key] {
			t.Errorf("duplicate merge key survived for %q", rec.Vulnerability)
		}
		seen[key] = true
	}
}

func TestMergeChunkResultsKeepsChunkOrderAndBackfillsPage(t *testing.T) {
	results := []ChunkResult{
		{ChunkID: "d_c001", PageRange: "1–2", Records: []RawRecord{{Vulnerability: "first"}}},
		{ChunkID: "d_c002", PageRange: "3–4", Records: []RawRecord{
			{Vulnerability: "second", Page: "3"},
			{Vulnerability: "   "}, // unkeyable, dropped
		}},
	}

	merged := MergeChunkResults(results)
	if len(merged) != 2 {
		t.Fatalf("merged = %d records, want 2", len(merged))
	}
	if merged[0].Vulnerability != "first" || merged[1].Vulnerability != "second" {
		t.Errorf("chunk order not preserved: %+v", merged)
	}
	if merged[0].Page != "1–2" {
		t.Errorf("Page = %q, want backfilled chunk range", merged[0].Page)
	}
	if merged[1].Page != "3" {
		t.Errorf("Page = %q, record-level page must win", merged[1].Page)
	}
}
