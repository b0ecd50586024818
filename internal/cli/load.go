package cli

import (
	"errors"
	"fmt"

	"github.com/mgpai22/aab/internal/segment"
	"github.com/spf13/cobra"
)

var errNothingLoaded = errors.New("no valid segment files loaded")

func newLoadCommand(ctx *commandContext) *cobra.Command {
	var reset bool

	cmd := &cobra.Command{
		Use:   "load [segment_file...]",
		Short: "Load JSON segment files into the project",
		Long: `Load one or more JSON segment files into the project.

Every file must hold an array of {start, end, text} objects. Files that were
exported with --format json keep their groups. All loaded segments are sorted
by start time and renumbered as one working set.

Invalid files are reported and skipped; the remaining files still load.

Examples:
  aab load part1.json part2.json
  aab load --reset cues.json -p episode.json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLoad(cmd, ctx, args, reset)
		},
	}

	cmd.Flags().BoolVar(&reset, "reset", false, "Discard the current project before loading")
	return cmd
}

func runLoad(cmd *cobra.Command, ctx *commandContext, paths []string, reset bool) error {
	var (
		sources []segment.Source
		errs    []error
	)
	for _, path := range paths {
		src, err := segment.ReadSource(path)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		sources = append(sources, src)
	}

	store := ctx.store()
	ctx.logger.Infow("Loading segment files",
		"files", len(paths),
		"project", store.Path(),
		"reset", reset,
	)

	var added int
	result, err := store.Update(func(prev segment.List) (segment.List, error) {
		if reset {
			prev = nil
		}
		next, decodeErrs := segment.Import(prev, sources)
		errs = append(errs, decodeErrs...)
		if len(errs) == len(paths) {
			return nil, errNothingLoaded
		}
		added = len(next) - len(prev)
		return next, nil
	})

	for _, e := range errs {
		ctx.logger.Warnw("Skipped invalid file", "error", e)
		fmt.Fprintf(cmd.ErrOrStderr(), "  %v\n", e)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Loaded %d segments from %d of %d files\n",
		added, len(paths)-len(errs), len(paths))
	fmt.Fprintf(cmd.OutOrStdout(), "  Project: %s (%d segments, %d groups)\n",
		store.Path(), len(result), result.GroupCount())
	return nil
}
