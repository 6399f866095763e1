/* pkg/patterns/detector.go */

// Package patterns scans passwords for structural weaknesses: repeated
// characters and blocks, sequential runs, keyboard walks and well-known weak
// words, aggregated into a capped 0-100 risk score.
package patterns

import (
	"strings"
)

// Severities attached to individual findings.
const (
	SeverityHigh   = "high"
	SeverityMedium = "medium"
)

// Risk levels.
const (
	RiskNone     = "none"
	RiskLow      = "low"
	RiskMedium   = "medium"
	RiskHigh     = "high"
	RiskCritical = "critical"
)

// Finding types.
const (
	TypeConsecutive     = "consecutive"
	TypeSequenceRepeat  = "sequence_repeat"
	TypeLowerSequential = "lowercase_sequential"
	TypeUpperSequential = "uppercase_sequential"
	TypeDigitSequential = "digit_sequential"
	TypeKeyboardPattern = "keyboard_pattern"
	TypeDictionaryWord  = "dictionary_word"
)

var keyboardPatterns = []string{
	"qwerty", "asdfgh", "zxcvbn", "qazwsx", "123456", "654321",
}

var commonWords = []string{
	"password", "admin", "user", "login", "guest", "welcome",
	"monkey", "dragon", "master", "shadow", "qwerty", "letmein",
	"trustno1", "starwars", "baseball", "princess", "football",
}

// Detail describes one repetition or sequential finding. Position is a rune
// offset into the password.
type Detail struct {
	Type     string
	Pattern  string
	Position int
	Severity string
}

// WordDetail describes one dictionary-word finding.
type WordDetail struct {
	Type     string
	Word     string
	Position int
	Severity string
}

// RepetitionResult aggregates consecutive-run and repeated-block findings.
type RepetitionResult struct {
	HasRepetitions bool
	Details        []Detail
	Count          int
}

// SequentialResult aggregates sequential-run and keyboard-walk findings.
type SequentialResult struct {
	HasSequential bool
	Patterns      []Detail
	Count         int
}

// DictionaryResult aggregates weak-word findings.
type DictionaryResult struct {
	HasDictionaryWords bool
	Words              []WordDetail
	Count              int
}

// Risk is the additive, capped pattern risk.
type Risk struct {
	Score int
	Level string
}

// Report bundles all three detections with the aggregated risk.
type Report struct {
	Repetitions RepetitionResult
	Sequential  SequentialResult
	Dictionary  DictionaryResult
	OverallRisk Risk
}

// Detector scans passwords for superficial patterns. Stateless; safe for
// concurrent use.
type Detector struct{}

// NewDetector returns a Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// DetectRepetitions finds maximal same-character runs of length three or more
// (high severity) and doubled blocks of length two or more (medium severity).
// The doubled-block scan is greedy and non-overlapping: at each offset the
// longest block immediately followed by an identical copy wins, and the scan
// resumes past the full match.
func (d *Detector) DetectRepetitions(password string) RepetitionResult {
	runes := []rune(password)
	var details []Detail

	// Consecutive identical characters, e.g. "aaa" or "111".
	for i := 0; i < len(runes); {
		j := i
		for j < len(runes) && runes[j] == runes[i] {
			j++
		}
		if j-i >= 3 {
			details = append(details, Detail{
				Type:     TypeConsecutive,
				Pattern:  string(runes[i:j]),
				Position: i,
				Severity: SeverityHigh,
			})
		}
		i = j
	}

	// Repeated blocks, e.g. "abab" or "123123".
	for i := 0; i+4 <= len(runes); {
		matched := false
		for l := (len(runes) - i) / 2; l >= 2; l-- {
			if runesEqual(runes[i:i+l], runes[i+l:i+2*l]) {
				details = append(details, Detail{
					Type:     TypeSequenceRepeat,
					Pattern:  string(runes[i : i+2*l]),
					Position: i,
					Severity: SeverityMedium,
				})
				i += 2 * l
				matched = true
				break
			}
		}
		if !matched {
			i++
		}
	}

	return RepetitionResult{
		HasRepetitions: len(details) > 0,
		Details:        details,
		Count:          len(details),
	}
}

// DetectSequential finds maximal lowercase, uppercase and digit runs of
// length three or more whose characters ascend by exactly one codepoint
// (medium severity), plus case-insensitive keyboard walks from a fixed list
// (high severity, first occurrence only).
func (d *Detector) DetectSequential(password string) SequentialResult {
	runes := []rune(password)
	var details []Detail

	classes := []struct {
		typ    string
		member func(rune) bool
	}{
		{TypeLowerSequential, func(r rune) bool { return r >= 'a' && r <= 'z' }},
		{TypeUpperSequential, func(r rune) bool { return r >= 'A' && r <= 'Z' }},
		{TypeDigitSequential, func(r rune) bool { return r >= '0' && r <= '9' }},
	}

	for _, class := range classes {
		for i := 0; i < len(runes); {
			if !class.member(runes[i]) {
				i++
				continue
			}
			j := i
			for j < len(runes) && class.member(runes[j]) {
				j++
			}
			if j-i >= 3 && isAscending(runes[i:j]) {
				details = append(details, Detail{
					Type:     class.typ,
					Pattern:  string(runes[i:j]),
					Position: i,
					Severity: SeverityMedium,
				})
			}
			i = j
		}
	}

	lower := strings.ToLower(password)
	for _, kp := range keyboardPatterns {
		if idx := strings.Index(lower, kp); idx >= 0 {
			details = append(details, Detail{
				Type:     TypeKeyboardPattern,
				Pattern:  kp,
				Position: runeOffset(lower, idx),
				Severity: SeverityHigh,
			})
		}
	}

	return SequentialResult{
		HasSequential: len(details) > 0,
		Patterns:      details,
		Count:         len(details),
	}
}

// DetectDictionaryWords finds every contained token from the fixed weak-word
// list, case-insensitive, reporting the first occurrence of each.
func (d *Detector) DetectDictionaryWords(password string) DictionaryResult {
	lower := strings.ToLower(password)
	var words []WordDetail

	for _, word := range commonWords {
		if idx := strings.Index(lower, word); idx >= 0 {
			words = append(words, WordDetail{
				Type:     TypeDictionaryWord,
				Word:     word,
				Position: runeOffset(lower, idx),
				Severity: SeverityHigh,
			})
		}
	}

	return DictionaryResult{
		HasDictionaryWords: len(words) > 0,
		Words:              words,
		Count:              len(words),
	}
}

// Report runs all three detections and aggregates the overall risk. This is
// the composite entry point consumers should use.
func (d *Detector) Report(password string) Report {
	reps := d.DetectRepetitions(password)
	seq := d.DetectSequential(password)
	dict := d.DetectDictionaryWords(password)

	return Report{
		Repetitions: reps,
		Sequential:  seq,
		Dictionary:  dict,
		OverallRisk: calculateRisk(reps, seq, dict),
	}
}

// RiskLevel returns just the aggregated risk level for a password.
func (d *Detector) RiskLevel(password string) string {
	return d.Report(password).OverallRisk.Level
}

// calculateRisk sums the per-finding weights and caps the result at 100:
// repetitions 25/15 (high/medium), sequential 20/12, dictionary words 30.
func calculateRisk(reps RepetitionResult, seq SequentialResult, dict DictionaryResult) Risk {
	score := 0

	for _, detail := range reps.Details {
		if detail.Severity == SeverityHigh {
			score += 25
		} else {
			score += 15
		}
	}
	for _, detail := range seq.Patterns {
		if detail.Severity == SeverityHigh {
			score += 20
		} else {
			score += 12
		}
	}
	score += len(dict.Words) * 30

	if score > 100 {
		score = 100
	}

	level := RiskNone
	switch {
	case score >= 70:
		level = RiskCritical
	case score >= 50:
		level = RiskHigh
	case score >= 30:
		level = RiskMedium
	case score > 0:
		level = RiskLow
	}

	return Risk{Score: score, Level: level}
}

// isAscending reports whether every adjacent pair differs by exactly +1.
func isAscending(runes []rune) bool {
	if len(runes) < 3 {
		return false
	}
	for i := 0; i < len(runes)-1; i++ {
		if runes[i+1]-runes[i] != 1 {
			return false
		}
	}
	return true
}

func runesEqual(a, b []rune) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// runeOffset converts a byte index into a rune offset.
func runeOffset(s string, byteIdx int) int {
	return len([]rune(s[:byteIdx]))
}
