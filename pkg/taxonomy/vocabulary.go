package taxonomy

import "strings"

// Category classifies a discipline for post-weighting: physical
// disciplines are boosted, cyber disciplines are suppressed unless the
// text carries a cyber signal.
const (
	CategoryPhysical = "physical"
	CategoryCyber    = "cyber"
)

// DisciplineEntry is one canonical discipline with its scoring
// vocabulary. Subtypes map a subtype name to its keyword set.
type DisciplineEntry struct {
	Name        string
	Category    string
	Active      bool
	Description string
	Keywords    []string
	Phrases     []string
	Subtypes    map[string][]string
}

// Disciplines is the canonical vocabulary. The store supplies UUIDs for
// these names; offline the resolver still produces the names.
var Disciplines = []DisciplineEntry{
	{
		Name:        "Access Control Systems",
		Category:    CategoryPhysical,
		Active:      true,
		Description: "Electronic and procedural control of entry to facilities and restricted areas",
		Keywords:    []string{"access", "badge", "badging", "credential", "entry", "door", "turnstile", "lock", "keys", "pacs"},
		Phrases:     []string{"access control", "card reader", "badge reader", "physical access control system", "key control"},
		Subtypes: map[string][]string{
			"PACS":          {"pacs", "card", "reader", "credential", "badge", "panel"},
			"Biometrics":    {"biometric", "fingerprint", "iris", "facial"},
			"Locks and Keys": {"lock", "keys", "keyway", "padlock", "deadbolt", "key control"},
		},
	},
	{
		Name:        "Perimeter Security",
		Category:    CategoryPhysical,
		Active:      true,
		Description: "Fences, barriers, gates, bollards and standoff protecting the site boundary",
		Keywords:    []string{"perimeter", "fence", "fencing", "barrier", "bollard", "gate", "standoff", "setback", "berm"},
		Phrases:     []string{"perimeter fence", "vehicle barrier", "anti-ram", "clear zone", "property line"},
		Subtypes: map[string][]string{
			"Fencing":          {"fence", "fencing", "fabric", "outrigger", "barbed"},
			"Vehicle Barriers": {"bollard", "barrier", "anti-ram", "wedge", "crash"},
			"Gates":            {"gate", "sally", "entry point"},
		},
	},
	{
		Name:        "Video Surveillance",
		Category:    CategoryPhysical,
		Active:      true,
		Description: "Camera systems, recording and monitoring of facility activity",
		Keywords:    []string{"camera", "cameras", "cctv", "video", "surveillance", "recording", "monitor", "footage"},
		Phrases:     []string{"video surveillance", "camera system", "camera coverage", "video management system", "pan-tilt-zoom"},
		Subtypes: map[string][]string{
			"Coverage":   {"coverage", "blind", "field of view", "placement"},
			"Recording":  {"recording", "retention", "storage", "archive"},
			"Monitoring": {"monitor", "monitoring", "operator", "control room"},
		},
	},
	{
		Name:        "Intrusion Detection",
		Category:    CategoryPhysical,
		Active:      true,
		Description: "Sensors and alarms detecting unauthorized entry",
		Keywords:    []string{"intrusion", "alarm", "sensor", "detection", "motion", "ids"},
		Phrases:     []string{"intrusion detection", "alarm system", "door contact", "glass break", "duress alarm"},
		Subtypes: map[string][]string{
			"Sensors": {"sensor", "motion", "contact", "vibration"},
			"Alarms":  {"alarm", "annunciation", "duress", "panic"},
		},
	},
	{
		Name:        "Security Lighting",
		Category:    CategoryPhysical,
		Active:      true,
		Description: "Illumination supporting surveillance, deterrence and safe movement",
		Keywords:    []string{"lighting", "illumination", "lux", "lumen", "luminaire", "floodlight"},
		Phrases:     []string{"security lighting", "lighting levels", "exterior lighting", "foot-candle"},
		Subtypes: map[string][]string{
			"Exterior": {"exterior", "parking", "perimeter", "floodlight"},
			"Interior": {"interior", "stairwell", "corridor", "lobby"},
		},
	},
	{
		Name:        "Security Forces",
		Category:    CategoryPhysical,
		Active:      true,
		Description: "Guard operations, patrols, post orders and response",
		Keywords:    []string{"guard", "guards", "patrol", "patrols", "officer", "officers", "post"},
		Phrases:     []string{"security force", "guard force", "post orders", "roving patrol", "response time"},
		Subtypes: map[string][]string{
			"Guard Operations": {"guard", "post", "orders", "staffing"},
			"Patrols":          {"patrol", "roving", "rounds"},
		},
	},
	{
		Name:        "Screening and Mail Handling",
		Category:    CategoryPhysical,
		Active:      true,
		Description: "Visitor management, package and mail screening, contraband detection",
		Keywords:    []string{"screening", "visitor", "visitors", "mail", "mailroom", "package", "magnetometer", "x-ray"},
		Phrases:     []string{"visitor management", "mail screening", "package screening", "screening checkpoint"},
		Subtypes: map[string][]string{
			"Visitor Management": {"visitor", "escort", "check-in", "registration"},
			"Mail Screening":     {"mail", "mailroom", "package", "parcel", "x-ray"},
		},
	},
	{
		Name:        "Structural Hardening",
		Category:    CategoryPhysical,
		Active:      true,
		Description: "Building construction measures against blast, ballistic and forced entry",
		Keywords:    []string{"blast", "hardening", "ballistic", "glazing", "window", "facade", "structural"},
		Phrases:     []string{"structural hardening", "blast mitigation", "progressive collapse", "window film", "laminated glazing"},
		Subtypes: map[string][]string{
			"Blast Mitigation":  {"blast", "standoff", "charge", "progressive collapse"},
			"Window Protection": {"window", "glazing", "film", "fragment"},
		},
	},
	{
		Name:        "Emergency Management",
		Category:    CategoryPhysical,
		Active:      true,
		Description: "Plans, drills, mass notification and continuity for security incidents",
		Keywords:    []string{"emergency", "evacuation", "drill", "drills", "notification", "lockdown", "shelter"},
		Phrases:     []string{"emergency action plan", "mass notification", "active shooter", "tabletop exercise"},
		Subtypes: map[string][]string{
			"Planning":     {"plan", "planning", "procedure", "continuity"},
			"Notification": {"notification", "alert", "public address", "intercom"},
		},
	},
	{
		Name:        "Cybersecurity",
		Category:    CategoryCyber,
		Active:      true,
		Description: "Network and software security for electronic security system infrastructure",
		Keywords:    []string{"network", "firewall", "patch", "software", "server", "vlan", "encryption"},
		Phrases:     []string{"network segmentation", "security patch", "default credentials", "ess network"},
		Subtypes: map[string][]string{
			"ESS Infrastructure": {"camera", "access control", "panel", "controller", "vlan"},
		},
	},
}

// legacyAliases maps historical labels still present in older documents
// to canonical discipline names. Matching is case-insensitive.
var legacyAliases = map[string]string{
	"cctv":                    "Video Surveillance",
	"video":                   "Video Surveillance",
	"surveillance":            "Video Surveillance",
	"guard force":             "Security Forces",
	"security officers":       "Security Forces",
	"physical access control": "Access Control Systems",
	"access control":          "Access Control Systems",
	"electronic security":     "Access Control Systems",
	"lighting":                "Security Lighting",
	"illumination":            "Security Lighting",
	"barriers":                "Perimeter Security",
	"fencing":                 "Perimeter Security",
	"standoff":                "Perimeter Security",
	"ids":                     "Intrusion Detection",
	"alarms":                  "Intrusion Detection",
	"mailroom security":       "Screening and Mail Handling",
	"visitor screening":       "Screening and Mail Handling",
	"blast protection":        "Structural Hardening",
	"window protection":       "Structural Hardening",
	"emergency preparedness":  "Emergency Management",
}

// DisciplineByName returns the vocabulary entry for a canonical name.
func DisciplineByName(name string) (DisciplineEntry, bool) {
	for _, d := range Disciplines {
		if strings.EqualFold(d.Name, name) {
			return d, true
		}
	}
	return DisciplineEntry{}, false
}
