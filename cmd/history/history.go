/* cmd/history/history.go */

package history

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spartansec/spartanpass/pkg/config"
	"github.com/spartansec/spartanpass/pkg/history"
	"github.com/spartansec/spartanpass/pkg/render"
	"github.com/spartansec/spartanpass/pkg/spartan_cli"
	"github.com/spartansec/spartanpass/pkg/spartan_io"
)

var listCount int

var HistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect and manage the saved password history",
	RunE:  spartan_cli.Wrap(runList),
}

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the most recent history entries",
	RunE:  spartan_cli.Wrap(runList),
}

func init() {
	HistoryCmd.AddCommand(ListCmd)
	HistoryCmd.PersistentFlags().IntVarP(&listCount, "count", "n", 5, "Number of recent entries to show")
}

func openStore(rc *spartan_io.RuntimeContext) (*history.Store, error) {
	settings, err := config.Load()
	if err != nil {
		return nil, err
	}
	return history.Open(rc.Ctx, settings.HistoryPath, settings.HistoryLimit)
}

func runList(rc *spartan_io.RuntimeContext, cmd *cobra.Command, args []string) error {
	store, err := openStore(rc)
	if err != nil {
		return err
	}

	if store.IsEmpty() {
		fmt.Println(render.Muted("history is empty"))
		return nil
	}

	entries := store.RecentWithMetadata(listCount)
	fmt.Println(render.Accent(fmt.Sprintf("Recent passwords (%d of %d)", len(entries), store.Count())))
	for _, entry := range entries {
		fmt.Printf("  %s  %s  %s\n", entry.Timestamp, render.Level(entry.Strength), entry.Password)
	}
	return nil
}
