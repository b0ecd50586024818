package cli

import (
	"fmt"

	"github.com/mgpai22/aab/internal/segment"
	"github.com/spf13/cobra"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify the project's grouping is consistent",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := ctx.store().Load()
			if err != nil {
				return err
			}
			if err := segment.Check(l); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "OK: %d segments in %d groups\n", len(l), l.GroupCount())
			return nil
		},
	}
}
