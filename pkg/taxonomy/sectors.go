package taxonomy

import "strings"

// SubsectorEntry is one subsector in the critical-infrastructure
// taxonomy together with its scoring vocabulary. Synonyms cover naming
// drift across document vintages ("Educational Facilities" vs
// "K-12 Schools").
type SubsectorEntry struct {
	Name          string
	SectorName    string
	Keywords      []string
	Phrases       []string
	Synonyms      []string
	SemanticSeeds []string
}

// Subsectors is the document-classification vocabulary.
var Subsectors = []SubsectorEntry{
	{
		Name:       "Educational Facilities",
		SectorName: "Government Facilities",
		Keywords:   []string{"school", "schools", "k-12", "campus", "classroom", "student", "students", "teacher", "university", "college"},
		Phrases:    []string{"safe schools", "school district", "school security", "school safety", "higher education"},
		Synonyms:   []string{"Education Facilities", "K-12 Schools"},
		SemanticSeeds: []string{
			"Educational Facilities",
			"K-12 schools, campuses, classrooms and school district buildings",
		},
	},
	{
		Name:       "Courthouses",
		SectorName: "Government Facilities",
		Keywords:   []string{"courthouse", "court", "judicial", "judge", "courtroom"},
		Phrases:    []string{"court security", "judicial facility"},
		SemanticSeeds: []string{
			"Courthouses",
			"Judicial facilities, courtrooms and court operations",
		},
	},
	{
		Name:       "National Monuments and Icons",
		SectorName: "Government Facilities",
		Keywords:   []string{"monument", "memorial", "landmark", "icon"},
		Phrases:    []string{"national monument", "national memorial"},
		SemanticSeeds: []string{
			"National Monuments and Icons",
			"Monuments, memorials and iconic national landmarks",
		},
	},
	{
		Name:       "Office Buildings",
		SectorName: "Commercial Facilities",
		Keywords:   []string{"office", "tenant", "lobby", "high-rise", "tower"},
		Phrases:    []string{"office building", "commercial office", "multi-tenant"},
		SemanticSeeds: []string{
			"Office Buildings",
			"Commercial office towers and multi-tenant buildings",
		},
	},
	{
		Name:       "Lodging",
		SectorName: "Commercial Facilities",
		Keywords:   []string{"hotel", "hotels", "resort", "lodging", "casino", "guest"},
		Phrases:    []string{"hotel security", "guest rooms"},
		SemanticSeeds: []string{
			"Lodging",
			"Hotels, resorts and casinos serving overnight guests",
		},
	},
	{
		Name:       "Retail Centers",
		SectorName: "Commercial Facilities",
		Keywords:   []string{"retail", "mall", "shopping", "store", "stores", "merchant"},
		Phrases:    []string{"shopping center", "retail center"},
		SemanticSeeds: []string{
			"Retail Centers",
			"Shopping malls, retail stores and commercial centers",
		},
	},
	{
		Name:       "Public Assembly",
		SectorName: "Commercial Facilities",
		Keywords:   []string{"stadium", "arena", "convention", "theater", "venue", "crowd", "event"},
		Phrases:    []string{"public assembly", "mass gathering", "special event"},
		SemanticSeeds: []string{
			"Public Assembly",
			"Stadiums, arenas, convention centers and event venues",
		},
	},
	{
		Name:       "Houses of Worship",
		SectorName: "Commercial Facilities",
		Keywords:   []string{"church", "synagogue", "mosque", "temple", "worship", "congregation", "faith-based"},
		Phrases:    []string{"house of worship", "faith community"},
		SemanticSeeds: []string{
			"Houses of Worship",
			"Churches, synagogues, mosques, temples and congregations",
		},
	},
	{
		Name:       "Hospitals",
		SectorName: "Healthcare and Public Health",
		Keywords:   []string{"hospital", "hospitals", "clinic", "patient", "patients", "medical", "healthcare"},
		Phrases:    []string{"emergency department", "patient care", "healthcare facility"},
		SemanticSeeds: []string{
			"Hospitals",
			"Hospitals, clinics and patient-care healthcare facilities",
		},
	},
	{
		Name:       "Mass Transit",
		SectorName: "Transportation Systems",
		Keywords:   []string{"transit", "bus", "rail", "subway", "station", "passenger", "passengers"},
		Phrases:    []string{"mass transit", "transit system", "rail station"},
		SemanticSeeds: []string{
			"Mass Transit",
			"Bus, rail and subway systems moving passengers",
		},
	},
	{
		Name:       "Aviation",
		SectorName: "Transportation Systems",
		Keywords:   []string{"airport", "airports", "aircraft", "aviation", "terminal", "runway"},
		Phrases:    []string{"airport security", "air carrier"},
		SemanticSeeds: []string{
			"Aviation",
			"Airports, terminals and aviation operations",
		},
	},
	{
		Name:       "Electricity",
		SectorName: "Energy",
		Keywords:   []string{"substation", "grid", "transmission", "utility", "electric", "power"},
		Phrases:    []string{"electric utility", "power generation", "bulk power"},
		SemanticSeeds: []string{
			"Electricity",
			"Substations, transmission lines and electric utilities",
		},
	},
	{
		Name:       "Water Treatment",
		SectorName: "Water and Wastewater Systems",
		Keywords:   []string{"water", "wastewater", "treatment", "reservoir", "pump", "scada"},
		Phrases:    []string{"water treatment", "treatment plant", "drinking water"},
		SemanticSeeds: []string{
			"Water Treatment",
			"Water and wastewater treatment plants and reservoirs",
		},
	},
}

func equalFoldTrim(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// SubsectorByName matches canonical names and synonyms,
// case-insensitively.
func SubsectorByName(name string) (SubsectorEntry, bool) {
	for _, s := range Subsectors {
		if equalFoldTrim(s.Name, name) {
			return s, true
		}
		for _, syn := range s.Synonyms {
			if equalFoldTrim(syn, name) {
				return s, true
			}
		}
	}
	return SubsectorEntry{}, false
}
