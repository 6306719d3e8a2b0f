package taxonomy

import "testing"

func TestIsPureCyberMatchesWholeWords(t *testing.T) {
	cases := []struct {
		name string
		text string
		want bool
	}{
		{"phishing finding", "Phishing awareness assessment shows high click rates", true},
		{"patch cadence", "Server patch cadence exceeds thirty days", true},
		{"cve reference", "CVE-2021-44228 affects the logging library", true},
		{"dispatch is not patch", "Guard dispatch log is not maintained at the front gate", false},
		{"duress is not ess", "No duress alarm is installed at the reception desk", false},
		{"access is not ess", "Visitor access procedures are not documented", false},
		{"no cyber content", "The perimeter fence has collapsed in two sections", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsPureCyber(tc.text); got != tc.want {
				t.Errorf("IsPureCyber(%q) = %v, want %v", tc.text, got, tc.want)
			}
		})
	}
}

func TestHasESSSignalRequiresStandaloneToken(t *testing.T) {
	if HasESSSignal("The site assessment covers access and egress processes") {
		t.Error("ESS signal fired on words that merely contain the letters")
	}
	if !HasESSSignal("The ESS relies on an unsegmented network") {
		t.Error("standalone ESS token not recognized")
	}
	if !HasESSSignal("The camera system firmware is outdated") {
		t.Error("multiword ESS phrase not recognized")
	}
}

func TestPhishingFindingWithESSContextKeepsDiscipline(t *testing.T) {
	if IsPureCyber("Phishing emails target the video management system operators") {
		t.Error("ESS infrastructure context should keep the record in scope")
	}
}
