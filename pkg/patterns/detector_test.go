/* pkg/patterns/detector_test.go */

package patterns

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectRepetitions(t *testing.T) {
	d := NewDetector()

	t.Run("consecutive runs", func(t *testing.T) {
		result := d.DetectRepetitions("aaa111")
		require.True(t, result.HasRepetitions)
		require.Equal(t, 2, result.Count)

		assert.Equal(t, TypeConsecutive, result.Details[0].Type)
		assert.Equal(t, "aaa", result.Details[0].Pattern)
		assert.Equal(t, 0, result.Details[0].Position)
		assert.Equal(t, SeverityHigh, result.Details[0].Severity)

		assert.Equal(t, "111", result.Details[1].Pattern)
		assert.Equal(t, 3, result.Details[1].Position)
	})

	t.Run("two identical characters are not a run", func(t *testing.T) {
		result := d.DetectRepetitions("aabb")
		assert.False(t, result.HasRepetitions)
	})

	t.Run("doubled block", func(t *testing.T) {
		result := d.DetectRepetitions("abab")
		require.Equal(t, 1, result.Count)
		assert.Equal(t, TypeSequenceRepeat, result.Details[0].Type)
		assert.Equal(t, "abab", result.Details[0].Pattern)
		assert.Equal(t, 0, result.Details[0].Position)
		assert.Equal(t, SeverityMedium, result.Details[0].Severity)
	})

	t.Run("doubled block of digits", func(t *testing.T) {
		result := d.DetectRepetitions("xy123123z")
		require.Equal(t, 1, result.Count)
		assert.Equal(t, "123123", result.Details[0].Pattern)
		assert.Equal(t, 2, result.Details[0].Position)
	})

	t.Run("run reported by both scans", func(t *testing.T) {
		result := d.DetectRepetitions("aaaa")
		require.Equal(t, 2, result.Count)
		assert.Equal(t, TypeConsecutive, result.Details[0].Type)
		assert.Equal(t, "aaaa", result.Details[0].Pattern)
		assert.Equal(t, TypeSequenceRepeat, result.Details[1].Type)
		assert.Equal(t, "aaaa", result.Details[1].Pattern)
	})

	t.Run("greedy block scan takes the longest match", func(t *testing.T) {
		result := d.DetectRepetitions("abcabcabcabc")
		require.Equal(t, 1, result.Count)
		assert.Equal(t, "abcabcabcabc", result.Details[0].Pattern)
	})

	t.Run("clean input", func(t *testing.T) {
		result := d.DetectRepetitions("abcdefg")
		assert.False(t, result.HasRepetitions)
		assert.Empty(t, result.Details)
	})
}

func TestDetectSequential(t *testing.T) {
	d := NewDetector()

	t.Run("ascending runs in both classes", func(t *testing.T) {
		result := d.DetectSequential("abc123")
		require.True(t, result.HasSequential)
		require.Equal(t, 2, result.Count)

		assert.Equal(t, TypeLowerSequential, result.Patterns[0].Type)
		assert.Equal(t, "abc", result.Patterns[0].Pattern)
		assert.Equal(t, 0, result.Patterns[0].Position)
		assert.Equal(t, SeverityMedium, result.Patterns[0].Severity)

		assert.Equal(t, TypeDigitSequential, result.Patterns[1].Type)
		assert.Equal(t, "123", result.Patterns[1].Pattern)
		assert.Equal(t, 3, result.Patterns[1].Position)
	})

	t.Run("repeated characters are not sequential", func(t *testing.T) {
		result := d.DetectSequential("aaa111")
		assert.False(t, result.HasSequential)
	})

	t.Run("descending runs are not flagged", func(t *testing.T) {
		result := d.DetectSequential("cba321")
		assert.False(t, result.HasSequential)
	})

	t.Run("whole run must ascend", func(t *testing.T) {
		// The maximal lowercase run is "abcx"; its last step breaks the
		// +1 chain, so nothing is flagged.
		result := d.DetectSequential("abcx")
		assert.False(t, result.HasSequential)
	})

	t.Run("uppercase run", func(t *testing.T) {
		result := d.DetectSequential("XYZ")
		require.Equal(t, 1, result.Count)
		assert.Equal(t, TypeUpperSequential, result.Patterns[0].Type)
		assert.Equal(t, "XYZ", result.Patterns[0].Pattern)
	})

	t.Run("keyboard walk is case-insensitive", func(t *testing.T) {
		result := d.DetectSequential("xxQWErty")
		require.NotEmpty(t, result.Patterns)

		var kb *Detail
		for i := range result.Patterns {
			if result.Patterns[i].Type == TypeKeyboardPattern {
				kb = &result.Patterns[i]
			}
		}
		require.NotNil(t, kb)
		assert.Equal(t, "qwerty", kb.Pattern)
		assert.Equal(t, 2, kb.Position)
		assert.Equal(t, SeverityHigh, kb.Severity)
	})

	t.Run("numeric keyboard pattern", func(t *testing.T) {
		result := d.DetectSequential("654321")
		var types []string
		for _, p := range result.Patterns {
			types = append(types, p.Type)
		}
		assert.Contains(t, types, TypeKeyboardPattern)
		assert.NotContains(t, types, TypeDigitSequential) // descending
	})
}

func TestDetectDictionaryWords(t *testing.T) {
	d := NewDetector()

	t.Run("single word", func(t *testing.T) {
		result := d.DetectDictionaryWords("MyPassword!")
		require.True(t, result.HasDictionaryWords)
		require.Equal(t, 1, result.Count)
		assert.Equal(t, TypeDictionaryWord, result.Words[0].Type)
		assert.Equal(t, "password", result.Words[0].Word)
		assert.Equal(t, 2, result.Words[0].Position)
		assert.Equal(t, SeverityHigh, result.Words[0].Severity)
	})

	t.Run("multiple words", func(t *testing.T) {
		result := d.DetectDictionaryWords("ADMINuser")
		require.Equal(t, 2, result.Count)
		assert.Equal(t, "admin", result.Words[0].Word)
		assert.Equal(t, 0, result.Words[0].Position)
		assert.Equal(t, "user", result.Words[1].Word)
		assert.Equal(t, 5, result.Words[1].Position)
	})

	t.Run("no words", func(t *testing.T) {
		result := d.DetectDictionaryWords("Xk9!mQ2@")
		assert.False(t, result.HasDictionaryWords)
		assert.Empty(t, result.Words)
	})
}

func TestReport(t *testing.T) {
	d := NewDetector()

	tests := []struct {
		name      string
		password  string
		wantScore int
		wantLevel string
	}{
		{
			// Two high-severity consecutive runs; the digit run is not
			// ascending so sequential stays empty.
			name:      "repeated runs",
			password:  "aaa111",
			wantScore: 50,
			wantLevel: RiskHigh,
		},
		{
			// Two medium sequential runs.
			name:      "ascending runs",
			password:  "abc123",
			wantScore: 24,
			wantLevel: RiskLow,
		},
		{
			// Dictionary word plus ascending digit run.
			name:      "weak word with digits",
			password:  "password123",
			wantScore: 42,
			wantLevel: RiskMedium,
		},
		{
			name:      "empty password has no findings",
			password:  "",
			wantScore: 0,
			wantLevel: RiskNone,
		},
		{
			name:      "random-looking input",
			password:  "Xk9!mQ2@",
			wantScore: 0,
			wantLevel: RiskNone,
		},
		{
			// qwerty counts as keyboard walk (20) and dictionary word (30).
			name:      "qwerty is doubly weak",
			password:  "qwerty",
			wantScore: 50,
			wantLevel: RiskHigh,
		},
		{
			// Four dictionary words blow past the cap.
			name:      "risk score is capped",
			password:  "passwordadminmonkeydragon",
			wantScore: 100,
			wantLevel: RiskCritical,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := d.Report(tt.password)
			assert.Equal(t, tt.wantScore, report.OverallRisk.Score)
			assert.Equal(t, tt.wantLevel, report.OverallRisk.Level)
		})
	}
}

func TestRiskLevelThresholds(t *testing.T) {
	repHigh := Detail{Severity: SeverityHigh}    // +25
	repMed := Detail{Severity: SeverityMedium}   // +15
	seqHigh := Detail{Severity: SeverityHigh}    // +20
	seqMed := Detail{Severity: SeverityMedium}   // +12
	word := WordDetail{Severity: SeverityHigh}   // +30

	tests := []struct {
		name      string
		reps      []Detail
		seqs      []Detail
		words     []WordDetail
		wantScore int
		wantLevel string
	}{
		{name: "no findings", wantScore: 0, wantLevel: RiskNone},
		{name: "single medium run", seqs: []Detail{seqMed}, wantScore: 12, wantLevel: RiskLow},
		{name: "just below medium", reps: []Detail{repMed}, seqs: []Detail{seqMed}, wantScore: 27, wantLevel: RiskLow},
		{name: "medium boundary", words: []WordDetail{word}, wantScore: 30, wantLevel: RiskMedium},
		{name: "just below high", reps: []Detail{repHigh}, seqs: []Detail{seqMed, seqMed}, wantScore: 49, wantLevel: RiskMedium},
		{name: "high boundary", reps: []Detail{repHigh, repHigh}, wantScore: 50, wantLevel: RiskHigh},
		{name: "just below critical", reps: []Detail{repHigh, repHigh}, seqs: []Detail{seqMed}, wantScore: 62, wantLevel: RiskHigh},
		{name: "critical boundary", reps: []Detail{repHigh, repHigh}, seqs: []Detail{seqHigh}, wantScore: 70, wantLevel: RiskCritical},
		{name: "capped at one hundred", words: []WordDetail{word, word, word, word}, wantScore: 100, wantLevel: RiskCritical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			risk := calculateRisk(
				RepetitionResult{Details: tt.reps},
				SequentialResult{Patterns: tt.seqs},
				DictionaryResult{Words: tt.words},
			)
			assert.Equal(t, tt.wantScore, risk.Score)
			assert.Equal(t, tt.wantLevel, risk.Level)
		})
	}
}

func TestRiskMonotonicUnderConcatenation(t *testing.T) {
	d := NewDetector()

	base := "Xk9!mQ"
	prev := d.Report(base).OverallRisk.Score
	for _, suffix := range []string{"dragon", "monkey", "admin", "letmein"} {
		base += suffix
		score := d.Report(base).OverallRisk.Score
		assert.GreaterOrEqual(t, score, prev)
		prev = score
	}
}
