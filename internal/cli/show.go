package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/mgpai22/aab/internal/grouping"
	"github.com/mgpai22/aab/internal/segment"
	"github.com/mgpai22/aab/internal/subtitle"
	"github.com/spf13/cobra"
)

const maxPreview = 60

func newShowCommand(ctx *commandContext) *cobra.Command {
	var segments bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the project's groups or segments",
		Long: `Print the project as a table.

By default one row is printed per group with its time span, size, and merged
text. A "jump" marks a cue that does not start where the previous one ended.
With --segments every segment is listed with its grouping metadata.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store := ctx.store()
			l, err := store.Load()
			if err != nil {
				return err
			}
			if len(l) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "Project %s is empty\n", store.Path())
				return nil
			}

			out := cmd.OutOrStdout()
			if segments {
				fmt.Fprintln(out, segmentTable(out, l))
			} else {
				fmt.Fprintln(out, groupTable(out, l, ctx.cfg.Timeline.JumpTolerance))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&segments, "segments", false, "List individual segments")
	return cmd
}

func groupTable(out io.Writer, l segment.List, tolerance float64) string {
	tw := newTable(out, groupColumns)
	for _, item := range grouping.Timeline(l, tolerance) {
		jump := ""
		if item.Jump {
			jump = fmt.Sprintf("%+.3fs", item.Gap)
		}
		tw.AppendRow(table.Row{
			item.ID,
			subtitle.Timestamp(item.Start),
			subtitle.Timestamp(item.End),
			item.Size,
			jump,
			preview(item.Text()),
		})
	}
	return tw.Render()
}

func segmentTable(out io.Writer, l segment.List) string {
	tw := newTable(out, segmentColumns)
	for _, s := range l {
		tw.AppendRow(table.Row{
			s.OriginalIndex,
			s.GroupID,
			fmt.Sprintf("%d/%d", s.PositionInGroup+1, s.GroupSize),
			subtitle.Timestamp(s.Start),
			subtitle.Timestamp(s.End),
			preview(s.Text),
		})
	}
	return tw.Render()
}

func preview(text string) string {
	text = strings.Join(strings.Fields(text), " ")
	runes := []rune(text)
	if len(runes) <= maxPreview {
		return text
	}
	return string(runes[:maxPreview-3]) + "..."
}
