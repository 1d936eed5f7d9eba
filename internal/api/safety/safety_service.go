// Package safety gates everything that enters and leaves the
// conversation pipeline. Input screening runs the banned-term tables,
// a profanity dictionary and a set of injection heuristics; output
// screening only refuses script tags so replies can still carry links
// and contact details.
package safety

import (
	"log/slog"
	"regexp"
	"strings"

	goaway "github.com/TwiN/go-away"
)

const (
	maxInputLength     = 5000
	maxSanitizedLength = 2000
	maxWordRepetition  = 5
)

var (
	rawHTMLTagPattern = regexp.MustCompile(`(?i)<\s*/?\s*[a-z][a-z0-9\-]*\s*[^>]*>`)

	jsPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)javascript\s*:`),
		regexp.MustCompile(`(?i)on\w+\s*=`),
		regexp.MustCompile(`(?i)<script`),
		regexp.MustCompile(`(?i)</script`),
		regexp.MustCompile(`(?i)eval\s*\(`),
		regexp.MustCompile(`(?i)document\.`),
		regexp.MustCompile(`(?i)window\.`),
		regexp.MustCompile(`(?i)alert\s*\(`),
		regexp.MustCompile(`(?i)confirm\s*\(`),
		regexp.MustCompile(`(?i)prompt\s*\(`),
	}

	sqlPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)union\s+select`),
		regexp.MustCompile(`(?i)drop\s+table`),
		regexp.MustCompile(`(?i)delete\s+from`),
		regexp.MustCompile(`(?i)insert\s+into`),
		regexp.MustCompile(`(?i)update\s+set`),
		regexp.MustCompile(`(?i)exec\s*\(`),
		regexp.MustCompile(`(?i)xp_cmdshell`),
		regexp.MustCompile(`(?i)sp_executesql`),
	}

	whitespacePattern = regexp.MustCompile(`\s+`)
)

var _ Service = (*ServiceImpl)(nil)

// Service screens user input and bot output and produces the canned
// refusals for blocked turns.
type Service interface {
	// ScreenInput reports whether text may enter the pipeline. When it
	// may not, the second return names the violation category.
	ScreenInput(text string) (bool, string)
	// ScreenOutput reports whether a generated reply may be shown.
	ScreenOutput(text string) (bool, string)
	// Sanitize strips angle brackets, collapses whitespace and caps length.
	Sanitize(text string) string
	// ViolationResponse returns the user-facing refusal for a category.
	ViolationResponse(category string) string
}

type ServiceImpl struct {
	logger *slog.Logger
	// profanity is the dictionary lookup, swappable in tests.
	profanity func(text string) bool
}

func NewService(logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{logger: logger, profanity: goaway.IsProfane}
}

// isProfane runs the dictionary over arbitrary user input. A panic inside
// the lookup counts as "no match"; the remaining checks still run.
func (s *ServiceImpl) isProfane(text string) (profane bool) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Warn("Profanity check panicked", slog.Any("panic", r))
			profane = false
		}
	}()
	return s.profanity(text)
}

func (s *ServiceImpl) ScreenInput(text string) (bool, string) {
	lower := strings.ToLower(text)

	// Banned terms win over every other check so the most specific
	// refusal is the one the user sees.
	if term := matchBannedTerm(lower); term != "" {
		s.logger.Debug("Input blocked by term table", slog.String("category", term))
		return false, term
	}

	if s.isProfane(text) {
		s.logger.Debug("Input blocked by profanity dictionary")
		return false, "profanity"
	}

	if strings.ContainsAny(text, "<>") && rawHTMLTagPattern.MatchString(text) {
		// "<3" and stray brackets pass; anything shaped like a tag does not.
		return false, "raw_html_tag"
	}

	for _, p := range jsPatterns {
		if p.MatchString(text) {
			return false, "script"
		}
	}
	for _, p := range sqlPatterns {
		if p.MatchString(text) {
			return false, "sql injection"
		}
	}

	if hasExcessiveRepetition(lower) {
		return false, "spam"
	}
	if len(text) > maxInputLength {
		return false, "excessive_length"
	}

	return true, ""
}

func matchBannedTerm(lower string) string {
	for _, term := range bannedTerms {
		if strings.Contains(lower, term) {
			return term
		}
	}
	for _, tv := range bannedVariants {
		for _, variant := range tv.variants {
			if strings.Contains(lower, variant) {
				return tv.base
			}
		}
	}
	return ""
}

func hasExcessiveRepetition(lower string) bool {
	counts := make(map[string]int)
	for _, word := range strings.Fields(lower) {
		counts[word]++
		if counts[word] > maxWordRepetition {
			return true
		}
	}
	return false
}

func (s *ServiceImpl) ScreenOutput(text string) (bool, string) {
	lower := strings.ToLower(text)
	if strings.Contains(lower, "<script") || strings.Contains(lower, "</script") {
		return false, "script"
	}
	// Links and email addresses are allowed in replies.
	return true, ""
}

func (s *ServiceImpl) Sanitize(text string) string {
	clean := strings.NewReplacer("<", "", ">", "").Replace(text)
	clean = strings.TrimSpace(whitespacePattern.ReplaceAllString(clean, " "))
	if len(clean) > maxSanitizedLength {
		clean = clean[:maxSanitizedLength]
	}
	return clean
}

func (s *ServiceImpl) ViolationResponse(category string) string {
	if resp, ok := violationResponses[category]; ok {
		return resp
	}
	return genericViolationResponse
}
