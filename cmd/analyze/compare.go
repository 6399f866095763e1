/* cmd/analyze/compare.go */

package analyze

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spartansec/spartanpass/pkg/render"
	"github.com/spartansec/spartanpass/pkg/spartan_cli"
	"github.com/spartansec/spartanpass/pkg/spartan_io"
	"github.com/spartansec/spartanpass/pkg/strength"
)

var CompareCmd = &cobra.Command{
	Use:   "compare <password1> <password2>",
	Short: "Compare two passwords by strength score",
	Args:  cobra.ExactArgs(2),
	RunE:  spartan_cli.Wrap(runCompare),
}

func runCompare(rc *spartan_io.RuntimeContext, cmd *cobra.Command, args []string) error {
	comparison := strength.NewScorer().Compare(args[0], args[1])

	fmt.Printf("password1: %s (score %d)\n",
		render.Level(comparison.Password1Level), comparison.Password1Score)
	fmt.Printf("password2: %s (score %d)\n",
		render.Level(comparison.Password2Level), comparison.Password2Score)

	switch comparison.Winner {
	case "tie":
		fmt.Println("result: tie")
	default:
		fmt.Printf("result: %s is stronger\n", comparison.Winner)
	}
	return nil
}
