// Package resolver turns messy user text into canonical place names.
// It fixes the misspellings we see constantly in queries, then falls
// back to similarity scoring over every name the gazetteer knows.
package resolver

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"

	"github.com/FACorreiaa/go-tour-guide/internal/api/gazetteer"
)

// DefaultFuzzyThreshold is the minimum similarity ratio a candidate
// must reach before a token is rewritten to it.
const DefaultFuzzyThreshold = 0.75

// spellingCorrections is applied as ordered substring replacement during
// normalization. A rewrite is skipped when the query already contains
// the corrected form, so "sigiriya" is never re-expanded by its own
// "sigiri" prefix.
var spellingCorrections = []struct {
	misspelling string
	correction  string
}{
	{"columbo", "colombo"},
	{"kandi", "kandy"},
	{"candy", "kandy"},
	{"sigiri", "sigiriya"},
	{"gale", "galle"},
	{"negambo", "negombo"},
	{"anuradapura", "anuradhapura"},
	{"nuwara", "nuwara eliya"},
}

// knownPlaces is the wider list of Sri Lankan towns the classifier may
// accept as a bare place query even when the gazetteer has no curated
// entry for them.
var knownPlaces = []string{
	"ampara", "anuradhapura", "arugam bay", "avissawella", "badulla",
	"bandarawela", "batticaloa", "bentota", "beruwala", "colombo",
	"dambulla", "dehiwala", "ella", "galle", "gampaha", "gampola",
	"hambantota", "haputale", "hatton", "hikkaduwa", "jaffna", "kalpitiya",
	"kalutara", "kandy", "kegalle", "kilinochchi", "kurunegala",
	"maharagama", "mannar", "matale", "matara", "mirissa", "monaragala",
	"moratuwa", "mullaitivu", "negombo", "nuwara eliya", "panadura",
	"polonnaruwa", "puttalam", "ratnapura", "sigiriya", "tangalle",
	"trinco", "trincomalee", "unawatuna", "vavuniya", "weligama",
}

var _ Service = (*ServiceImpl)(nil)

// Service normalizes query text and resolves place tokens to canonical
// names. Neither operation can fail; the worst case returns the input
// untouched.
type Service interface {
	// Normalize lowercases, trims and applies the misspelling table.
	Normalize(text string) string
	// CorrectPlace resolves a token to a canonical lowercase place name.
	// The second return reports whether the token resolved; when false
	// the token comes back verbatim and must be treated as unresolved.
	CorrectPlace(token string) (string, bool)
	// IsKnownPlace reports whether a name is a recognized Sri Lankan place.
	IsKnownPlace(name string) bool
}

type candidate struct {
	surface   string
	canonical string
}

type ServiceImpl struct {
	logger     *slog.Logger
	gazetteer  gazetteer.Repository
	metric     *metrics.Levenshtein
	threshold  float64
	candidates []candidate
	known      map[string]struct{}
}

// NewService builds the resolver over a gazetteer. A non-positive
// threshold selects DefaultFuzzyThreshold.
func NewService(gaz gazetteer.Repository, threshold float64, logger *slog.Logger) *ServiceImpl {
	if threshold <= 0 {
		threshold = DefaultFuzzyThreshold
	}
	s := &ServiceImpl{
		logger:    logger,
		gazetteer: gaz,
		metric:    metrics.NewLevenshtein(),
		threshold: threshold,
		known:     make(map[string]struct{}, len(knownPlaces)),
	}

	seen := make(map[string]struct{})
	add := func(surface, canonical string) {
		if surface == "" {
			return
		}
		if _, ok := seen[surface]; ok {
			return
		}
		seen[surface] = struct{}{}
		s.candidates = append(s.candidates, candidate{surface: surface, canonical: canonical})
	}
	for _, c := range gaz.Candidates() {
		add(c.Surface, strings.ToLower(c.Canonical))
	}
	for _, place := range knownPlaces {
		s.known[place] = struct{}{}
		add(place, place)
	}
	// Sorted scan order keeps tie-breaking stable across restarts.
	sort.Slice(s.candidates, func(i, j int) bool {
		return s.candidates[i].surface < s.candidates[j].surface
	})
	return s
}

func (s *ServiceImpl) Normalize(text string) string {
	query := strings.ToLower(strings.TrimSpace(text))
	for _, sc := range spellingCorrections {
		if strings.Contains(query, sc.correction) {
			continue
		}
		if strings.Contains(query, sc.misspelling) {
			query = strings.ReplaceAll(query, sc.misspelling, sc.correction)
		}
	}
	return query
}

func (s *ServiceImpl) CorrectPlace(token string) (string, bool) {
	norm := gazetteer.Normalize(token)
	if norm == "" {
		return token, false
	}

	// Exact and containment matching against the curated entries first.
	if canonical, ok := s.gazetteer.Match(norm); ok {
		return strings.ToLower(canonical), true
	}
	if _, ok := s.known[norm]; ok {
		return norm, true
	}

	// Similarity pass over every surface form; single best score wins.
	best := ""
	bestScore := 0.0
	for _, c := range s.candidates {
		score := strutil.Similarity(norm, c.surface, s.metric)
		if score > bestScore {
			bestScore = score
			best = c.canonical
		}
	}
	if bestScore >= s.threshold {
		s.logger.Debug("Fuzzy place correction",
			slog.String("token", norm),
			slog.String("resolved", best),
			slog.Float64("score", bestScore))
		return best, true
	}

	return token, false
}

func (s *ServiceImpl) IsKnownPlace(name string) bool {
	norm := gazetteer.Normalize(name)
	if _, ok := s.known[norm]; ok {
		return true
	}
	_, ok := s.gazetteer.Match(norm)
	return ok
}
