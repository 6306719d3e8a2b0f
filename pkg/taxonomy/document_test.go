package taxonomy

import (
	"testing"

	"github.com/google/uuid"
)

func newTestClassifier(sectors []SectorRef, subsectors []SubsectorRef) *DocumentClassifier {
	return NewDocumentClassifier(sectors, subsectors, nil)
}

func TestClassifySchoolSecurityGuide(t *testing.T) {
	c := newTestClassifier(nil, nil)

	doc := DocumentContext{
		FileName: "2012_K-12_Safe_Schools_Guide.pdf",
		Title:    "K-12 School Security Practices Guide",
		BodyText: "Schools and campus stakeholders should plan for student safety. Safe schools require layered security measures at every district building.",
	}

	res := c.Classify(doc, "", "")
	if res.IsNull() {
		t.Fatal("expected a classification, got null")
	}
	if *res.SectorName != "Government Facilities" {
		t.Errorf("sector = %q, want Government Facilities", *res.SectorName)
	}
	if res.SubsectorName == nil || *res.SubsectorName != "Educational Facilities" {
		t.Errorf("subsector = %v, want Educational Facilities", res.SubsectorName)
	}
	if res.Confidence < DefaultMinConfidence {
		t.Errorf("confidence = %.2f, want >= %.2f", res.Confidence, DefaultMinConfidence)
	}
}

func TestClassifyOverrideWinsWithFullConfidence(t *testing.T) {
	c := newTestClassifier(nil, nil)

	doc := DocumentContext{Title: "Annual facility report"}
	res := c.Classify(doc, "", "K-12 Schools")
	if res.IsNull() {
		t.Fatal("override should classify, got null")
	}
	if *res.SubsectorName != "Educational Facilities" {
		t.Errorf("subsector = %q, want Educational Facilities", *res.SubsectorName)
	}
	if res.Confidence != 1.0 {
		t.Errorf("confidence = %.2f, want 1.0", res.Confidence)
	}
}

func TestClassifyEmptyDocumentReturnsNull(t *testing.T) {
	c := newTestClassifier(nil, nil)

	res := c.Classify(DocumentContext{}, "", "")
	if !res.IsNull() {
		t.Errorf("empty document classified as %q", *res.SubsectorName)
	}
}

func TestClassifyKnownSectorBoost(t *testing.T) {
	c := newTestClassifier(nil, nil)

	// One keyword hit scores below the confidence floor on its own.
	doc := DocumentContext{BodyText: "the station entrance"}

	if res := c.Classify(doc, "", ""); !res.IsNull() {
		t.Fatalf("unboosted weak evidence classified as %q", *res.SubsectorName)
	}

	boosted := c.Classify(doc, "Transportation Systems", "")
	if boosted.IsNull() {
		t.Fatal("sector hint should push weak evidence over the floor")
	}
	if *boosted.SubsectorName != "Mass Transit" {
		t.Errorf("subsector = %q, want Mass Transit", *boosted.SubsectorName)
	}
}

func TestClassifyAttachesStoreIDs(t *testing.T) {
	sectorID := uuid.New()
	subsectorID := uuid.New()
	c := newTestClassifier(
		[]SectorRef{{ID: sectorID, Name: "Government Facilities"}},
		[]SubsectorRef{{ID: subsectorID, SectorID: sectorID, Name: "Educational Facilities", SectorName: "Government Facilities"}},
	)

	res := c.Classify(DocumentContext{Title: "Safe Schools Guide for school district campus security"}, "", "")
	if res.IsNull() {
		t.Fatal("got null classification")
	}
	if res.SectorID == nil || *res.SectorID != sectorID {
		t.Errorf("sector ID = %v, want %s", res.SectorID, sectorID)
	}
	if res.SubsectorID == nil || *res.SubsectorID != subsectorID {
		t.Errorf("subsector ID = %v, want %s", res.SubsectorID, subsectorID)
	}
}

func TestResolveLabels(t *testing.T) {
	c := newTestClassifier(nil, nil)

	t.Run("subsector label", func(t *testing.T) {
		res := c.ResolveLabels("Government Facilities", "Educational Facilities")
		if res.IsNull() {
			t.Fatal("got null")
		}
		if *res.SubsectorName != "Educational Facilities" {
			t.Errorf("subsector = %q", *res.SubsectorName)
		}
		if res.Confidence != subsectorLabelConfidence {
			t.Errorf("confidence = %.2f, want %.2f", res.Confidence, subsectorLabelConfidence)
		}
	})

	t.Run("subsector synonym", func(t *testing.T) {
		res := c.ResolveLabels("", "Education Facilities")
		if res.IsNull() || *res.SubsectorName != "Educational Facilities" {
			t.Errorf("synonym did not resolve: %+v", res)
		}
	})

	t.Run("sector only", func(t *testing.T) {
		res := c.ResolveLabels("Energy", "")
		if res.IsNull() {
			t.Fatal("got null")
		}
		if *res.SectorName != "Energy" {
			t.Errorf("sector = %q, want Energy", *res.SectorName)
		}
		if res.SubsectorName != nil {
			t.Errorf("subsector = %q, want nil", *res.SubsectorName)
		}
		if res.Confidence != sectorLabelConfidence {
			t.Errorf("confidence = %.2f, want %.2f", res.Confidence, sectorLabelConfidence)
		}
	})

	t.Run("unknown labels", func(t *testing.T) {
		if res := c.ResolveLabels("Outer Space", "Lunar Base"); !res.IsNull() {
			t.Errorf("unknown labels resolved: %+v", res)
		}
	})
}
