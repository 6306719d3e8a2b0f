package taxonomy

import "strings"

// Pure-cyber findings are out of scope unless the text is about
// electronic security system infrastructure, which spans both domains.

var pureCyberKeywords = []string{
	"malware", "ransomware", "phishing", "firewall",
	"patch", "patches", "patching", "unpatched", "exploit",
	"vulnerability scan", "antivirus", "log4j", "apache",
	"sql injection", "zero-day", "denial of service", "encryption",
	"vpn",
}

var essKeywords = []string{
	"access control system", "access control panel", "ess",
	"camera system", "camera network", "video management system",
	"intrusion detection system", "alarm panel", "badge system",
	"electronic security system", "security system network",
}

// matchesKeyword checks a single vocabulary keyword. Single words must
// match a whole token so "patch" never fires inside "dispatch" and
// "ess" never fires inside "assessment"; multiword keywords match by
// substring.
func matchesKeyword(lowerText string, tokens map[string]bool, kw string) bool {
	if strings.ContainsRune(kw, ' ') {
		return strings.Contains(lowerText, kw)
	}
	return tokens[kw]
}

// HasCyberSignal reports whether the text mentions any pure-cyber
// keyword at all.
func HasCyberSignal(text string) bool {
	lower := strings.ToLower(text)
	tokens := tokenize(text)
	for _, kw := range pureCyberKeywords {
		if matchesKeyword(lower, tokens, kw) {
			return true
		}
	}
	for token := range tokens {
		if strings.HasPrefix(token, "cve-") {
			return true
		}
	}
	return false
}

// HasESSSignal reports whether the text mentions electronic security
// system infrastructure.
func HasESSSignal(text string) bool {
	lower := strings.ToLower(text)
	tokens := tokenize(text)
	for _, kw := range essKeywords {
		if matchesKeyword(lower, tokens, kw) {
			return true
		}
	}
	return false
}

// IsPureCyber is the rejection gate: cyber keywords present and no ESS
// infrastructure context. Such records are persisted without a
// discipline rather than dropped.
func IsPureCyber(text string) bool {
	return HasCyberSignal(text) && !HasESSSignal(text)
}
