package constant

import (
	"fmt"
	"strings"
)

// Extraction prompt for vulnerability / option-for-consideration mining.
// The scope statement and the negative list keep the model away from
// cyber findings; the schema block pins the response to one JSON shape.

const ExtractionScope = `You are a physical security assessment analyst.
Extract physical security vulnerabilities and their options for consideration (OFCs) from the document text below.

SCOPE - physical security ONLY:
- Perimeter security, access control, barriers, bollards, fencing
- Video surveillance, lighting, intrusion detection
- Security forces, visitor management, mail screening
- Structural hardening, blast mitigation, CPTED

OUT OF SCOPE - do NOT extract (return nothing for these):
- Cyber vulnerabilities, CVEs, software patches, malware, phishing
- Network security, firewalls, encryption
- Anything whose remediation is purely software

Electronic security systems (cameras, access control panels, intrusion sensors) ARE in scope: they are physical security infrastructure.`

const ExtractionSchema = `Respond with a single JSON object, no prose, exactly this shape:
{
  "records": [
    {
      "vulnerability": "concise statement of the physical security deficiency",
      "options": ["recommended mitigation 1", "recommended mitigation 2"],
      "discipline": "best-fit discipline name, e.g. Perimeter Security",
      "sector": "critical infrastructure sector if evident, else \"\"",
      "subsector": "subsector if evident, else \"\"",
      "confidence": "High|Medium|Low",
      "impact_level": "High|Moderate|Low",
      "page": "the [PAGE n] number the vulnerability text appears under"
    }
  ]
}
Return {"records": []} when the text contains no in-scope findings.`

// BuildExtractionPrompt assembles the full per-chunk prompt.
func BuildExtractionPrompt(chunkText string) string {
	var b strings.Builder
	b.WriteString(ExtractionScope)
	b.WriteString("\n\n")
	b.WriteString(ExtractionSchema)
	b.WriteString("\n\nDOCUMENT TEXT:\n")
	fmt.Fprintf(&b, "%s\n", chunkText)
	return b.String()
}
