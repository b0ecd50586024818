package cli

import (
	"errors"
	"fmt"

	"github.com/mgpai22/aab/internal/grouping"
	"github.com/mgpai22/aab/internal/segment"
	"github.com/spf13/cobra"
)

func newMergeCommand(ctx *commandContext) *cobra.Command {
	var (
		groups   []int
		from, to int
	)

	cmd := &cobra.Command{
		Use:   "merge",
		Short: "Merge neighbouring groups into one cue",
		Long: `Merge the selected groups of the project into a single cue.

Select groups either by id or as an inclusive range. Group ids are the
numbers shown by 'aab show' and are renumbered after every change.

Examples:
  aab merge --groups 0,1
  aab merge --from 4 --to 7`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			selected := groups
			if from >= 0 || to >= 0 {
				if from < 0 || to < 0 {
					return fmt.Errorf("--from and --to must be used together")
				}
				selected = nil
				for id := min(from, to); id <= max(from, to); id++ {
					selected = append(selected, id)
				}
			}
			return runMerge(cmd, ctx, selected)
		},
	}

	cmd.Flags().IntSliceVarP(&groups, "groups", "g", nil, "Group ids to merge")
	cmd.Flags().IntVar(&from, "from", -1, "First group id of a range to merge")
	cmd.Flags().IntVar(&to, "to", -1, "Last group id of a range to merge")
	cmd.MarkFlagsMutuallyExclusive("groups", "from")
	cmd.MarkFlagsMutuallyExclusive("groups", "to")
	return cmd
}

func runMerge(cmd *cobra.Command, ctx *commandContext, groups []int) error {
	engine := ctx.engine()

	ctx.logger.Infow("Merging groups", "groups", groups)
	result, err := ctx.store().Update(func(l segment.List) (segment.List, error) {
		return engine.Merge(l, groups)
	})
	if err != nil {
		return explainSelection(err, "select groups with --groups or --from/--to")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Merged %d groups\n", len(groups))
	fmt.Fprintf(cmd.OutOrStdout(), "  Groups: %d\n", result.GroupCount())
	return nil
}

func newUnmergeCommand(ctx *commandContext) *cobra.Command {
	var (
		segments []int
		group    int
		all      bool
	)

	cmd := &cobra.Command{
		Use:   "unmerge",
		Short: "Split segments out of their groups",
		Long: `Split segments out of their groups so each becomes its own cue.

Segments are addressed by their original index (the "Seg" column of
'aab show --segments'), which never changes. With --group the segments must
belong to that group; --all splits the whole group.

Examples:
  aab unmerge --segments 4,5
  aab unmerge --group 2 --segments 7
  aab unmerge --group 2 --all`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if all && group < 0 {
				return fmt.Errorf("--all requires --group")
			}
			return runUnmerge(cmd, ctx, group, segments, all)
		},
	}

	cmd.Flags().IntSliceVarP(&segments, "segments", "s", nil, "Original indexes of the segments to split out")
	cmd.Flags().IntVarP(&group, "group", "g", -1, "Group the segments must belong to")
	cmd.Flags().BoolVar(&all, "all", false, "Split every segment of --group")
	cmd.MarkFlagsMutuallyExclusive("segments", "all")
	return cmd
}

func runUnmerge(cmd *cobra.Command, ctx *commandContext, group int, segments []int, all bool) error {
	engine := ctx.engine()

	split := 0
	result, err := ctx.store().Update(func(l segment.List) (segment.List, error) {
		selected := segments
		if all {
			selected = grouping.ToggleAllMembers(nil, l.Members(group))
		}
		split = len(selected)

		ctx.logger.Infow("Unmerging segments", "group", group, "segments", selected)
		if group >= 0 {
			return engine.UnmergeGroup(l, group, selected)
		}
		return engine.Unmerge(l, selected)
	})
	if err != nil {
		return explainSelection(err, "select segments with --segments or --group/--all")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Split %d segments\n", split)
	fmt.Fprintf(cmd.OutOrStdout(), "  Groups: %d\n", result.GroupCount())
	return nil
}

func explainSelection(err error, hint string) error {
	if errors.Is(err, grouping.ErrEmptySelection) {
		return fmt.Errorf("%w: %s", err, hint)
	}
	return err
}
