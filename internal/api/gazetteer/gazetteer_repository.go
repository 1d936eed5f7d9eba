// Package gazetteer holds the embedded knowledge base of Sri Lankan
// destinations and the deterministic name matching used by the rest of
// the pipeline. The dataset ships inside the binary so lookups never
// touch the network.
package gazetteer

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/FACorreiaa/go-tour-guide/internal/models"
)

//go:embed places.json
var placesJSON []byte

var _ Repository = (*EmbeddedRepository)(nil)

// Repository exposes read-only access to the place knowledge base.
type Repository interface {
	// Lookup returns the entry for a canonical place name.
	Lookup(name string) (*models.PlaceEntry, bool)
	// Match resolves free text to a canonical place name using exact and
	// substring matching over names and aliases. It never does fuzzy
	// matching; that lives a layer above.
	Match(query string) (string, bool)
	// Names returns canonical place names in sorted order.
	Names() []string
	// Candidates returns every matchable surface form (names plus
	// aliases) paired with its canonical name, sorted by surface form.
	Candidates() []Candidate
	// Search ranks entries against a query over names, tags and facts.
	Search(query string) []models.SearchResult
}

// Candidate is a single matchable string and the place it points to.
type Candidate struct {
	Surface   string
	Canonical string
}

// EmbeddedRepository serves the go:embed dataset from memory.
type EmbeddedRepository struct {
	logger     *slog.Logger
	entries    map[string]*models.PlaceEntry
	names      []string
	candidates []Candidate
	bySurface  map[string]string
}

// NewEmbeddedRepository parses the embedded dataset and precomputes the
// normalized match tables.
func NewEmbeddedRepository(logger *slog.Logger) (*EmbeddedRepository, error) {
	raw := make(map[string]*models.PlaceEntry)
	if err := json.Unmarshal(placesJSON, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse embedded places dataset: %w", err)
	}

	r := &EmbeddedRepository{
		logger:    logger,
		entries:   make(map[string]*models.PlaceEntry, len(raw)),
		bySurface: make(map[string]string),
	}
	for name, entry := range raw {
		entry.Name = name
		key := Normalize(name)
		r.entries[key] = entry
		r.names = append(r.names, name)
		r.addCandidate(key, name)
		for _, alias := range entry.Aliases {
			r.addCandidate(Normalize(alias), name)
		}
	}
	sort.Strings(r.names)
	sort.Slice(r.candidates, func(i, j int) bool {
		return r.candidates[i].Surface < r.candidates[j].Surface
	})

	logger.Debug("Loaded place gazetteer", slog.Int("places", len(r.names)), slog.Int("surface_forms", len(r.candidates)))
	return r, nil
}

func (r *EmbeddedRepository) addCandidate(surface, canonical string) {
	if surface == "" {
		return
	}
	if _, ok := r.bySurface[surface]; ok {
		return
	}
	r.bySurface[surface] = canonical
	r.candidates = append(r.candidates, Candidate{Surface: surface, Canonical: canonical})
}

// Normalize lowercases text and collapses every non-alphanumeric run to
// a single space so "Nine-Arch Bridge!" and "nine arch bridge" compare
// equal.
func Normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	lastSpace := true
	for _, ch := range strings.ToLower(text) {
		if (ch >= 'a' && ch <= 'z') || (ch >= '0' && ch <= '9') {
			b.WriteRune(ch)
			lastSpace = false
		} else if !lastSpace {
			b.WriteByte(' ')
			lastSpace = true
		}
	}
	return strings.TrimSpace(b.String())
}

func (r *EmbeddedRepository) Lookup(name string) (*models.PlaceEntry, bool) {
	entry, ok := r.entries[Normalize(name)]
	return entry, ok
}

func (r *EmbeddedRepository) Match(query string) (string, bool) {
	q := Normalize(query)
	if q == "" {
		return "", false
	}
	if canonical, ok := r.bySurface[q]; ok {
		return canonical, true
	}
	// Substring pass runs over the sorted candidate slice so results are
	// stable across process restarts.
	for _, c := range r.candidates {
		if strings.Contains(q, c.Surface) || strings.Contains(c.Surface, q) {
			return c.Canonical, true
		}
	}
	return "", false
}

func (r *EmbeddedRepository) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

func (r *EmbeddedRepository) Candidates() []Candidate {
	out := make([]Candidate, len(r.candidates))
	copy(out, r.candidates)
	return out
}

func (r *EmbeddedRepository) Search(query string) []models.SearchResult {
	q := Normalize(query)
	if q == "" {
		return nil
	}
	terms := strings.Fields(q)

	var results []models.SearchResult
	for _, name := range r.names {
		entry := r.entries[Normalize(name)]
		score := 0
		haystacks := []string{Normalize(name), Normalize(entry.City), Normalize(strings.Join(entry.Tags, " "))}
		for _, fact := range entry.Facts {
			haystacks = append(haystacks, Normalize(fact))
		}
		for _, term := range terms {
			for i, hay := range haystacks {
				if strings.Contains(hay, term) {
					// Name and city hits weigh more than fact hits.
					if i <= 1 {
						score += 3
					} else if i == 2 {
						score += 2
					} else {
						score++
					}
				}
			}
		}
		if score > 0 {
			results = append(results, models.SearchResult{
				Name:     name,
				City:     entry.City,
				BestTime: entry.BestTime,
				Score:    score,
			})
		}
	}
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Name < results[j].Name
	})
	return results
}
