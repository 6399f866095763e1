/* pkg/strength/strength.go */

// Package strength scores passwords against five fixed rules: minimum
// length, lowercase, uppercase, digits and symbols. The score is a plain
// rule count; this is deliberately not an entropy model.
package strength

import (
	"regexp"
	"unicode/utf8"

	"github.com/spartansec/spartanpass/pkg/config"
)

// Strength levels.
const (
	LevelWeak   = "weak"
	LevelMedium = "medium"
	LevelStrong = "strong"
)

const totalRules = 5

var (
	lowerRe  = regexp.MustCompile(`[a-z]`)
	upperRe  = regexp.MustCompile(`[A-Z]`)
	digitRe  = regexp.MustCompile(`[0-9]`)
	symbolRe = regexp.MustCompile(`[@$!%*?&#]`)
	spaceRe  = regexp.MustCompile(`\s`)
)

// Result is the outcome of a single strength evaluation.
type Result struct {
	Score       int
	Level       string
	Percentage  float64
	Color       string
	Tips        []string
	PassedRules int
	TotalRules  int
}

// Analysis describes password composition in detail.
type Analysis struct {
	Length         int
	HasLowercase   bool
	HasUppercase   bool
	HasDigits      bool
	HasSymbols     bool
	HasSpaces      bool
	UniqueChars    int
	LowercaseCount int
	UppercaseCount int
	DigitCount     int
	SymbolCount    int
}

// Comparison reports which of two passwords scores higher.
type Comparison struct {
	Password1Level string
	Password1Score int
	Password2Level string
	Password2Score int
	Winner         string // "password1", "password2" or "tie"
}

// Scorer evaluates password strength. Stateless; safe for concurrent use.
type Scorer struct {
	weakThreshold   int
	mediumThreshold int
}

// NewScorer returns a Scorer with the fixed weak/medium breakpoints.
func NewScorer() *Scorer {
	return &Scorer{weakThreshold: 2, mediumThreshold: 4}
}

// Check evaluates the five rules in order and returns the score, level,
// percentage, display color and one tip per failed rule.
func (s *Scorer) Check(password string) Result {
	score := 0
	var tips []string

	if utf8.RuneCountInString(password) >= 8 {
		score++
	} else {
		tips = append(tips, "Minimum 8 characters")
	}
	if lowerRe.MatchString(password) {
		score++
	} else {
		tips = append(tips, "Add lowercase letters")
	}
	if upperRe.MatchString(password) {
		score++
	} else {
		tips = append(tips, "Add uppercase letters")
	}
	if digitRe.MatchString(password) {
		score++
	} else {
		tips = append(tips, "Add numbers")
	}
	if symbolRe.MatchString(password) {
		score++
	} else {
		tips = append(tips, "Add symbols")
	}

	return Result{
		Score:       score,
		Level:       s.LevelFor(score),
		Percentage:  float64(score) / totalRules * 100,
		Color:       s.ColorFor(score),
		Tips:        tips,
		PassedRules: score,
		TotalRules:  totalRules,
	}
}

// LevelFor maps a score to its strength level.
func (s *Scorer) LevelFor(score int) string {
	switch {
	case score <= s.weakThreshold:
		return LevelWeak
	case score <= s.mediumThreshold:
		return LevelMedium
	default:
		return LevelStrong
	}
}

// ColorFor maps a score to the display color of its level.
func (s *Scorer) ColorFor(score int) string {
	switch {
	case score <= s.weakThreshold:
		return config.ColorWeak
	case score <= s.mediumThreshold:
		return config.ColorMedium
	default:
		return config.ColorStrong
	}
}

// IsStrong reports whether the password evaluates to the strong level.
func (s *Scorer) IsStrong(password string) bool {
	return s.Check(password).Level == LevelStrong
}

// IsMedium reports whether the password evaluates to the medium level.
func (s *Scorer) IsMedium(password string) bool {
	return s.Check(password).Level == LevelMedium
}

// IsWeak reports whether the password evaluates to the weak level.
func (s *Scorer) IsWeak(password string) bool {
	return s.Check(password).Level == LevelWeak
}

// DetailedAnalysis returns per-class presence and counts, whitespace
// presence and the number of distinct characters.
func (s *Scorer) DetailedAnalysis(password string) Analysis {
	unique := make(map[rune]struct{}, len(password))
	for _, r := range password {
		unique[r] = struct{}{}
	}

	return Analysis{
		Length:         utf8.RuneCountInString(password),
		HasLowercase:   lowerRe.MatchString(password),
		HasUppercase:   upperRe.MatchString(password),
		HasDigits:      digitRe.MatchString(password),
		HasSymbols:     symbolRe.MatchString(password),
		HasSpaces:      spaceRe.MatchString(password),
		UniqueChars:    len(unique),
		LowercaseCount: len(lowerRe.FindAllString(password, -1)),
		UppercaseCount: len(upperRe.FindAllString(password, -1)),
		DigitCount:     len(digitRe.FindAllString(password, -1)),
		SymbolCount:    len(symbolRe.FindAllString(password, -1)),
	}
}

// Compare scores two passwords and reports the higher one, or a tie when the
// scores are equal.
func (s *Scorer) Compare(pwd1, pwd2 string) Comparison {
	r1 := s.Check(pwd1)
	r2 := s.Check(pwd2)

	winner := "tie"
	if r1.Score > r2.Score {
		winner = "password1"
	} else if r2.Score > r1.Score {
		winner = "password2"
	}

	return Comparison{
		Password1Level: r1.Level,
		Password1Score: r1.Score,
		Password2Level: r2.Level,
		Password2Score: r2.Score,
		Winner:         winner,
	}
}
