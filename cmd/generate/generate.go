/* cmd/generate/generate.go */

package generate

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spartansec/spartanpass/pkg/config"
	gen "github.com/spartansec/spartanpass/pkg/generate"
	"github.com/spartansec/spartanpass/pkg/history"
	"github.com/spartansec/spartanpass/pkg/patterns"
	"github.com/spartansec/spartanpass/pkg/render"
	"github.com/spartansec/spartanpass/pkg/spartan_cli"
	"github.com/spartansec/spartanpass/pkg/spartan_err"
	"github.com/spartansec/spartanpass/pkg/spartan_io"
	"github.com/spartansec/spartanpass/pkg/strength"
)

var (
	length    int
	pattern   string
	memorable bool
	count     int
	noLower   bool
	noUpper   bool
	noDigits  bool
	noSymbols bool
	noSave    bool
	quiet     bool
)

var GenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate one or more passwords",
	Long: `Generates passwords and prints each with its strength evaluation and pattern
risk. Strong passwords are saved to the history unless --no-save is given.

Pattern codes for --pattern: L=lowercase, U=uppercase, N=number, S=symbol.
Example: --pattern LLUUNNSS`,
	RunE: spartan_cli.Wrap(runGenerate),
}

func init() {
	GenerateCmd.Flags().IntVarP(&length, "length", "l", 0, "Password length (default from config)")
	GenerateCmd.Flags().StringVarP(&pattern, "pattern", "p", "", "Generate from a L/U/N/S pattern template")
	GenerateCmd.Flags().BoolVarP(&memorable, "memorable", "m", false, "Generate a memorable consonant-vowel-digit password")
	GenerateCmd.Flags().IntVarP(&count, "count", "n", 1, "Number of passwords to generate")
	GenerateCmd.Flags().BoolVar(&noLower, "no-lower", false, "Exclude lowercase letters")
	GenerateCmd.Flags().BoolVar(&noUpper, "no-upper", false, "Exclude uppercase letters")
	GenerateCmd.Flags().BoolVar(&noDigits, "no-digits", false, "Exclude digits")
	GenerateCmd.Flags().BoolVar(&noSymbols, "no-symbols", false, "Exclude symbols")
	GenerateCmd.Flags().BoolVar(&noSave, "no-save", false, "Do not record strong passwords in the history")
	GenerateCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Print passwords only, no analysis")
}

func runGenerate(rc *spartan_io.RuntimeContext, cmd *cobra.Command, args []string) error {
	settings, err := config.Load()
	if err != nil {
		return err
	}

	generator := gen.NewWithOptions(settings.DefaultLength, settings.Symbols)
	scorer := strength.NewScorer()
	detector := patterns.NewDetector()

	if pattern != "" && memorable {
		return spartan_err.NewUserError("--pattern and --memorable cannot be combined")
	}
	if pattern != "" && !generator.ValidatePattern(pattern) {
		return spartan_err.NewUserError("invalid pattern %q: use only the codes L, U, N and S", pattern)
	}
	if count < 1 {
		return spartan_err.NewUserError("--count must be at least 1")
	}
	if noLower && noUpper && noDigits && noSymbols {
		return spartan_err.NewUserError("at least one character class must stay enabled")
	}

	var store *history.Store
	if !noSave {
		store, err = history.Open(rc.Ctx, settings.HistoryPath, settings.HistoryLimit)
		if err != nil {
			return err
		}
	}

	for i := 0; i < count; i++ {
		password, err := generatePassword(generator)
		if err != nil {
			return err
		}

		if quiet {
			fmt.Println(password)
			continue
		}

		result := scorer.Check(password)
		report := detector.Report(password)

		fmt.Printf("🔐 %s\n", password)
		fmt.Printf("   strength: %s (%d/%d)  %s\n",
			render.Level(result.Level), result.Score, result.TotalRules,
			render.Bar(result.Percentage, 20))
		if report.OverallRisk.Score > 0 {
			fmt.Printf("   pattern risk: %s (%d/100)\n",
				render.RiskLevel(report.OverallRisk.Level), report.OverallRisk.Score)
		}

		if store != nil && result.Level == strength.LevelStrong {
			if store.AddWithStrength(rc.Ctx, password, result.Level) {
				rc.Log.Debug("Password recorded in history",
					zap.String("path", store.Path()))
			}
		}
	}

	return nil
}

func generatePassword(generator *gen.Generator) (string, error) {
	switch {
	case pattern != "":
		return generator.GenerateFromPattern(pattern)
	case memorable:
		return generator.GenerateMemorable(length)
	case noLower || noUpper || noDigits || noSymbols:
		return generator.GenerateWithRequirements(length, !noLower, !noUpper, !noDigits, !noSymbols)
	default:
		return generator.Generate(length)
	}
}
