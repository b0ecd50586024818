package cli

import (
	"github.com/spf13/cobra"
)

const skipSetup = "skip-setup"

// Execute runs the aab command tree.
func Execute() error {
	return newRootCommand().Execute()
}

func newRootCommand() *cobra.Command {
	ctx := &commandContext{}

	rootCmd := &cobra.Command{
		Use:   "aab",
		Short: "Merge, split, and export timestamped subtitle segments",
		Long: `aab keeps a project of timestamped text segments (transcript or
subtitle cues) and lets you merge neighbouring segments into cues,
split them apart again, fix their text, and export the result.

Segments are loaded from JSON arrays of {start, end, text} objects.
The working set lives in a project file between invocations.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Annotations[skipSetup] == "true" {
				return nil
			}
			return ctx.setup()
		},
	}

	rootCmd.PersistentFlags().
		BoolVarP(&ctx.verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		StringVarP(&ctx.projectFlag, "project", "p", "", "Project file (default from config, aab.project.json)")
	rootCmd.PersistentFlags().
		StringVarP(&ctx.configFlag, "config", "c", "", "Configuration file path")

	rootCmd.AddCommand(newLoadCommand(ctx))
	rootCmd.AddCommand(newMergeCommand(ctx))
	rootCmd.AddCommand(newUnmergeCommand(ctx))
	rootCmd.AddCommand(newEditCommand(ctx))
	rootCmd.AddCommand(newShowCommand(ctx))
	rootCmd.AddCommand(newCheckCommand(ctx))
	rootCmd.AddCommand(newExportCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
