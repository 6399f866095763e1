/* cmd/analyze/analyze.go */

package analyze

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spartansec/spartanpass/pkg/patterns"
	"github.com/spartansec/spartanpass/pkg/render"
	"github.com/spartansec/spartanpass/pkg/spartan_cli"
	"github.com/spartansec/spartanpass/pkg/spartan_io"
	"github.com/spartansec/spartanpass/pkg/strength"
)

var detailed bool

var AnalyzeCmd = &cobra.Command{
	Use:   "analyze <password>",
	Short: "Score a password and scan it for weak patterns",
	Args:  cobra.ExactArgs(1),
	RunE:  spartan_cli.Wrap(runAnalyze),
}

func init() {
	AnalyzeCmd.Flags().BoolVarP(&detailed, "detailed", "d", false, "Include the composition breakdown")
}

func runAnalyze(rc *spartan_io.RuntimeContext, cmd *cobra.Command, args []string) error {
	password := args[0]

	scorer := strength.NewScorer()
	detector := patterns.NewDetector()

	result := scorer.Check(password)
	report := detector.Report(password)

	fmt.Println(render.Accent("Strength"))
	fmt.Printf("  level: %s  score: %d/%d (%.0f%%)  %s\n",
		render.Level(result.Level), result.Score, result.TotalRules,
		result.Percentage, render.Bar(result.Percentage, 20))
	for _, tip := range result.Tips {
		fmt.Printf("  tip: %s\n", tip)
	}

	if detailed {
		printAnalysis(scorer.DetailedAnalysis(password))
	}

	fmt.Println(render.Accent("Patterns"))
	printFindings(report)
	fmt.Printf("  overall risk: %s (%d/100)\n",
		render.RiskLevel(report.OverallRisk.Level), report.OverallRisk.Score)

	return nil
}

func printAnalysis(a strength.Analysis) {
	fmt.Println(render.Accent("Composition"))
	fmt.Printf("  length: %d  unique: %d  spaces: %v\n", a.Length, a.UniqueChars, a.HasSpaces)
	fmt.Printf("  lowercase: %d  uppercase: %d  digits: %d  symbols: %d\n",
		a.LowercaseCount, a.UppercaseCount, a.DigitCount, a.SymbolCount)
}

func printFindings(report patterns.Report) {
	if !report.Repetitions.HasRepetitions &&
		!report.Sequential.HasSequential &&
		!report.Dictionary.HasDictionaryWords {
		fmt.Println(render.Muted("  no findings"))
		return
	}

	for _, d := range report.Repetitions.Details {
		fmt.Printf("  %s %q at %d (%s)\n", d.Type, d.Pattern, d.Position, d.Severity)
	}
	for _, d := range report.Sequential.Patterns {
		fmt.Printf("  %s %q at %d (%s)\n", d.Type, d.Pattern, d.Position, d.Severity)
	}
	for _, w := range report.Dictionary.Words {
		fmt.Printf("  %s %q at %d (%s)\n", w.Type, w.Word, w.Position, w.Severity)
	}
}
