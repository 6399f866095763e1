/* cmd/history/remove.go */

package history

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spartansec/spartanpass/pkg/spartan_cli"
	"github.com/spartansec/spartanpass/pkg/spartan_err"
	"github.com/spartansec/spartanpass/pkg/spartan_io"
)

var RemoveCmd = &cobra.Command{
	Use:   "remove <password>",
	Short: "Remove one password from the history",
	Args:  cobra.ExactArgs(1),
	RunE:  spartan_cli.Wrap(runRemove),
}

func init() {
	HistoryCmd.AddCommand(RemoveCmd)
}

func runRemove(rc *spartan_io.RuntimeContext, cmd *cobra.Command, args []string) error {
	store, err := openStore(rc)
	if err != nil {
		return err
	}

	if !store.Remove(rc.Ctx, args[0]) {
		return spartan_err.NewUserError("password not found in history")
	}
	fmt.Println("✅ Removed")
	return nil
}
