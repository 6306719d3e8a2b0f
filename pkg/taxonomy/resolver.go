package taxonomy

import (
	"strings"

	"github.com/google/uuid"
)

// DisciplineRef is a taxonomy store row: the resolver attaches its ID
// when the resolved name has one. Offline runs resolve names only.
type DisciplineRef struct {
	ID     uuid.UUID
	Name   string
	Active bool
}

// DisciplineResolution is the resolver output. All-nil means the text
// could not be mapped; the record is still persisted with a null
// discipline.
type DisciplineResolution struct {
	Name    *string
	ID      *uuid.UUID
	Subtype *string
}

func (r DisciplineResolution) IsNull() bool {
	return r.Name == nil
}

// DisciplineResolver maps free-text discipline labels (plus the
// enclosing vulnerability/OFC text) onto the canonical disciplines.
// Pure functions after construction; safe for concurrent use.
type DisciplineResolver struct {
	refs     map[string]DisciplineRef // lower canonical name -> store row
	semantic *SemanticScorer
	minScore float64
}

func NewDisciplineResolver(refs []DisciplineRef, semantic *SemanticScorer) *DisciplineResolver {
	byName := make(map[string]DisciplineRef, len(refs))
	for _, ref := range refs {
		byName[strings.ToLower(ref.Name)] = ref
	}

	r := &DisciplineResolver{
		refs:     byName,
		semantic: semantic,
		minScore: DefaultMinScore,
	}

	// Seed set per discipline: name, description, name+description.
	for _, d := range Disciplines {
		semantic.Prime("discipline:"+d.Name, []string{
			d.Name,
			d.Description,
			d.Name + ". " + d.Description,
		})
	}

	return r
}

// Resolve runs the resolution chain: cyber rejection, legacy alias,
// exact match, substring match, then weighted scoring.
func (r *DisciplineResolver) Resolve(discipline, contextText string) DisciplineResolution {
	combined := strings.TrimSpace(discipline + " " + contextText)

	// 1. Pure-cyber text gets no discipline.
	if IsPureCyber(combined) {
		return DisciplineResolution{}
	}

	label := strings.ToLower(strings.TrimSpace(discipline))

	// 2. Legacy alias table.
	if canonical, ok := legacyAliases[label]; ok {
		return r.found(canonical, combined)
	}

	// 3. Exact canonical name.
	for _, d := range Disciplines {
		if strings.EqualFold(d.Name, label) {
			return r.found(d.Name, combined)
		}
	}

	// 4. Substring either direction.
	if label != "" {
		for _, d := range Disciplines {
			lowerName := strings.ToLower(d.Name)
			if strings.Contains(lowerName, label) || strings.Contains(label, lowerName) {
				return r.found(d.Name, combined)
			}
		}
	}

	// 5. Weighted keyword/phrase/semantic scoring.
	if name, ok := r.bestByScore(combined); ok {
		return r.found(name, combined)
	}

	return DisciplineResolution{}
}

func (r *DisciplineResolver) bestByScore(text string) (string, bool) {
	lower := strings.ToLower(text)
	tokens := tokenize(text)
	query := r.semantic.Embed(text)
	cyberSignal := HasCyberSignal(text)

	bestName := ""
	bestScore := 0.0

	for _, d := range Disciplines {
		score := WeightKeyword*float64(keywordScore(lower, tokens, d.Keywords)) +
			WeightPhrase*float64(phraseScore(lower, d.Phrases)) +
			WeightSemantic*r.semantic.Score(query, "discipline:"+d.Name)

		if d.Category == CategoryPhysical {
			score *= PostWeightPhysical
		}
		if r.isActive(d) {
			score *= PostWeightActive
		}
		if d.Category == CategoryCyber && !cyberSignal {
			score *= PostWeightCyberNoSignal
		}

		if score > bestScore {
			bestScore = score
			bestName = d.Name
		}
	}

	if bestScore < r.minScore {
		return "", false
	}
	return bestName, true
}

func (r *DisciplineResolver) isActive(d DisciplineEntry) bool {
	if ref, ok := r.refs[strings.ToLower(d.Name)]; ok {
		return ref.Active
	}
	return d.Active
}

func (r *DisciplineResolver) found(canonical, contextText string) DisciplineResolution {
	name := canonical
	res := DisciplineResolution{Name: &name}

	if ref, ok := r.refs[strings.ToLower(canonical)]; ok {
		id := ref.ID
		res.ID = &id
	}

	if subtype := r.inferSubtype(canonical, contextText); subtype != "" {
		res.Subtype = &subtype
	}
	return res
}

// inferSubtype scores the discipline's subtype keyword sets against the
// vulnerability/OFC text; the best scorer with at least one hit wins.
func (r *DisciplineResolver) inferSubtype(discipline, text string) string {
	entry, ok := DisciplineByName(discipline)
	if !ok || len(entry.Subtypes) == 0 {
		return ""
	}

	lower := strings.ToLower(text)
	tokens := tokenize(text)

	best := ""
	bestHits := 0
	for subtype, keywords := range entry.Subtypes {
		hits := keywordScore(lower, tokens, keywords)
		if hits > bestHits || (hits == bestHits && hits > 0 && subtype < best) {
			best = subtype
			bestHits = hits
		}
	}

	if bestHits == 0 {
		return ""
	}
	return best
}
