// pkg/spartan_cli/wrap.go

package spartan_cli

import (
	cerr "github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/spartansec/spartanpass/pkg/logger"
	"github.com/spartansec/spartanpass/pkg/spartan_err"
	"github.com/spartansec/spartanpass/pkg/spartan_io"
)

// Wrap adapts a RuntimeContext handler to cobra's RunE signature, adding
// panic recovery, outcome logging and stack capture for unexpected errors.
func Wrap(fn func(rc *spartan_io.RuntimeContext, cmd *cobra.Command, args []string) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		logger.InitFallback()

		rc := spartan_io.NewContext(cmd.Context(), cmd.Name())
		defer rc.End(&err)
		defer rc.HandlePanic(&err)

		err = fn(rc, cmd, args)
		if err != nil && !spartan_err.IsExpectedUserError(err) {
			err = cerr.WithStack(err)
		}
		return err
	}
}
