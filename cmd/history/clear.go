/* cmd/history/clear.go */

package history

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spartansec/spartanpass/pkg/spartan_cli"
	"github.com/spartansec/spartanpass/pkg/spartan_io"
)

var ClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every saved history entry",
	RunE:  spartan_cli.Wrap(runClear),
}

func init() {
	HistoryCmd.AddCommand(ClearCmd)
}

func runClear(rc *spartan_io.RuntimeContext, cmd *cobra.Command, args []string) error {
	store, err := openStore(rc)
	if err != nil {
		return err
	}

	cleared := store.Count()
	store.Clear(rc.Ctx)
	fmt.Printf("✅ Cleared %d entries\n", cleared)
	return nil
}
