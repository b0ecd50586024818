package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mgpai22/aab/internal/subtitle"
	"github.com/spf13/cobra"
)

var errEmptyProject = errors.New("nothing to export: project is empty")

func newExportCommand(ctx *commandContext) *cobra.Command {
	var (
		formatStr  string
		outputPath string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the grouped cues as a subtitle file",
		Long: `Export the project with one cue per group.

Merged segments are joined in order; [export] separator in the config adds
text between them. The json format keeps every segment with its grouping so
it can be loaded again later.

Examples:
  aab export
  aab export -o episode.vtt  # format taken from the extension
  aab export -o -            # print to stdout`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if formatStr == "" {
				formatStr = exportFormat(ctx.cfg.Export.Format, outputPath)
			}
			return runExport(cmd, ctx, formatStr, outputPath)
		},
	}

	cmd.Flags().StringVarP(&formatStr, "format", "f", "", "Output subtitle format (srt, vtt, ass, json; default from -o extension or config)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path, - for stdout")
	return cmd
}

func runExport(cmd *cobra.Command, ctx *commandContext, formatStr, outputPath string) error {
	format, err := subtitle.ParseFormat(formatStr)
	if err != nil {
		return err
	}

	store := ctx.store()
	l, err := store.Load()
	if err != nil {
		return err
	}
	if len(l) == 0 {
		return errEmptyProject
	}

	generator := &subtitle.DefaultGenerator{
		Separator:       ctx.cfg.Export.Separator,
		MaxCharsPerLine: ctx.cfg.Export.WrapWidth,
		JumpTolerance:   ctx.cfg.Timeline.JumpTolerance,
	}
	subs, err := generator.Generate(l)
	if err != nil {
		return fmt.Errorf("failed to generate subtitles: %w", err)
	}
	subs.Format = string(format)

	writer, err := subtitle.NewWriter(format)
	if err != nil {
		return fmt.Errorf("failed to create subtitle writer: %w", err)
	}

	if outputPath == "-" {
		return writer.Encode(cmd.OutOrStdout(), subs)
	}
	if outputPath == "" {
		outputPath = suggestedOutput(store.Path(), ctx.cfg.Export.OutputDir, format)
	}

	ctx.logger.Infow("Exporting subtitles",
		"output", outputPath,
		"format", format,
		"cues", len(subs.Entries),
	)
	if err := writer.Write(subs, outputPath); err != nil {
		return fmt.Errorf("failed to write subtitles: %w", err)
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Fprintf(cmd.OutOrStdout(), "Subtitles exported successfully: %s\n", absOutput)
	fmt.Fprintf(cmd.OutOrStdout(), "  Entries: %d\n", len(subs.Entries))
	fmt.Fprintf(cmd.OutOrStdout(), "  Segments: %d\n", len(l))
	return nil
}

// an output file with a known extension decides the format; otherwise the
// configured one is used
func exportFormat(configured, outputPath string) string {
	if outputPath == "" || outputPath == "-" {
		return configured
	}
	if format, ok := subtitle.GetFormatFromExtension(outputPath); ok {
		return string(format)
	}
	return configured
}

// project base name with the format's extension, next to the project unless
// dir is set
func suggestedOutput(projectPath, dir string, format subtitle.Format) string {
	base := filepath.Base(projectPath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = strings.TrimSuffix(base, ".project")
	if base == "" {
		base = "aab"
	}
	if dir == "" {
		dir = filepath.Dir(projectPath)
	}
	return filepath.Join(dir, base+subtitle.GetExtensionForFormat(format))
}
