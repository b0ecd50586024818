package cli

import (
	"fmt"

	"github.com/mgpai22/aab/internal/segment"
	"github.com/spf13/cobra"
)

func newEditCommand(ctx *commandContext) *cobra.Command {
	var (
		index int
		text  string
	)

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Replace the text of one segment",
		Long: `Replace the text of a single segment, addressed by its original index.

Grouping is not affected. Merged cues join member texts as they are, so
include any spacing you want between segments in the text itself.

Examples:
  aab edit --segment 3 --text "Hello there. "`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine := ctx.engine()
			_, err := ctx.store().Update(func(l segment.List) (segment.List, error) {
				return engine.EditText(l, index, text)
			})
			if err != nil {
				return err
			}
			ctx.logger.Infow("Edited segment", "segment", index)
			fmt.Fprintf(cmd.OutOrStdout(), "Updated segment %d\n", index)
			return nil
		},
	}

	cmd.Flags().IntVarP(&index, "segment", "s", -1, "Original index of the segment")
	cmd.Flags().StringVarP(&text, "text", "t", "", "New text")
	_ = cmd.MarkFlagRequired("segment")
	_ = cmd.MarkFlagRequired("text")
	return cmd
}
