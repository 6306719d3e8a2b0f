package extract

import "testing"

func TestCoerceConfidence(t *testing.T) {
	tests := []struct{ in, want string }{
		{"High", "High"},
		{"high", "High"},
		{"MEDIUM", "Medium"},
		{"low", "Low"},
		{"", "Medium"},
		{"certain", "Medium"},
	}
	for _, tt := range tests {
		if got := CoerceConfidence(tt.in); got != tt.want {
			t.Errorf("CoerceConfidence(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCoerceImpact(t *testing.T) {
	tests := []struct{ in, want string }{
		{"High", "High"},
		{"moderate", "Moderate"},
		{"Medium", "Moderate"},
		{"low", "Low"},
		{"", "Moderate"},
		{"severe", "Moderate"},
	}
	for _, tt := range tests {
		if got := CoerceImpact(tt.in); got != tt.want {
			t.Errorf("CoerceImpact(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeRecord(t *testing.T) {
	raw := RawRecord{
		Vulnerability: "  The facility has no perimeter fence.  ",
		Options:       FlexibleStrings{" Install fencing ", "", "Add patrols"},
		Discipline:    "perimeter",
		Confidence:    "certain",
		ImpactLevel:   "severe",
		Page:          "2",
	}

	rec, err := NormalizeRecord(raw, "doc_c001")
	if err != nil {
		t.Fatalf("NormalizeRecord() error = %v", err)
	}

	if rec.Vulnerability != "The facility has no perimeter fence." {
		t.Errorf("Vulnerability = %q", rec.Vulnerability)
	}
	if len(rec.Options) != 2 {
		t.Fatalf("Options = %v, want empty entries dropped", rec.Options)
	}
	if rec.Confidence != "Medium" || rec.ImpactLevel != "Moderate" {
		t.Errorf("domain coercion failed: %q / %q", rec.Confidence, rec.ImpactLevel)
	}
	if rec.DedupeKey != DedupeKey(rec.Vulnerability, rec.Options[0]) {
		t.Errorf("DedupeKey not derived from vulnerability + first option")
	}
	if rec.PageRef == nil || *rec.PageRef != "2" {
		t.Errorf("PageRef = %v, want 2", rec.PageRef)
	}
	if rec.ChunkID == nil || *rec.ChunkID != "doc_c001" {
		t.Errorf("ChunkID = %v", rec.ChunkID)
	}
	if rec.UnresolvedRaw.Discipline != "perimeter" {
		t.Errorf("UnresolvedRaw.Discipline = %q, provenance lost", rec.UnresolvedRaw.Discipline)
	}
}

func TestNormalizeRecordRejectsUnusableRecords(t *testing.T) {
	if _, err := NormalizeRecord(RawRecord{Options: FlexibleStrings{"x"}}, ""); err == nil {
		t.Error("record without vulnerability text must be rejected")
	}
	if _, err := NormalizeRecord(RawRecord{Vulnerability: "v"}, ""); err == nil {
		t.Error("record without options must be rejected")
	}
	if _, err := NormalizeRecord(RawRecord{Vulnerability: "v", Options: FlexibleStrings{"  "}}, ""); err == nil {
		t.Error("record with only blank options must be rejected")
	}
}

func TestDedupeKeyStability(t *testing.T) {
	a := DedupeKey("No CCTV coverage at loading dock.", "Install cameras")
	b := DedupeKey("  no cctv coverage at loading dock.  ", "Install cameras")
	if a != b {
		t.Error("dedupe key must be case- and whitespace-insensitive on the vulnerability")
	}
	c := DedupeKey("No CCTV coverage at loading dock.", "Different option")
	if a == c {
		t.Error("dedupe key must depend on the first option text")
	}
}
