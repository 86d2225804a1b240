package cmd

import (
	"fmt"

	"github.com/LegacyCodeHQ/cpexpand/cmd/check"
	"github.com/LegacyCodeHQ/cpexpand/cmd/graph"
	"github.com/LegacyCodeHQ/cpexpand/cmd/watch"
	"github.com/LegacyCodeHQ/cpexpand/cmd/why"
	"github.com/LegacyCodeHQ/cpexpand/cmd/workspace"
	"github.com/LegacyCodeHQ/cpexpand/internal/logging"
	"github.com/LegacyCodeHQ/cpexpand/project"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// version is set via build-time ldflags
var version = "dev"

// buildDate is set via build-time ldflags
var buildDate = "unknown"

// commit is set via build-time ldflags
var commit = "unknown"

type expandOptions struct {
	output          string
	noMarkers       bool
	copyToClipboard bool
}

// NewRootCommand returns the cpexpand command with all subcommands attached.
func NewRootCommand() *cobra.Command {
	flags := &workspace.Flags{}
	opts := &expandOptions{}

	cmd := &cobra.Command{
		Use:   "cpexpand <input>",
		Short: "Inline local #include \"...\" headers into a single C++ file",
		Long: `cpexpand flattens a competitive-programming source file into one
self-contained file for submission. Quoted includes are searched in the
including file's directory, then in <root>, <root>/algorithm and
<root>/data-structure, and expanded recursively. Angle-bracket includes are
left untouched. Every file is expanded at most once.

Examples:
  cpexpand contest/abc300/a.cpp
  cpexpand a.cpp -o submit.cpp --no-markers
  cpexpand a.cpp -b                         # also copy to clipboard`,
		Args:          cobra.ExactArgs(1),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := logging.New(flags.Verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			flags.Logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if flags.Logger != nil {
				_ = flags.Logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExpand(cmd, flags, opts, args[0])
		},
	}

	cmd.PersistentFlags().StringVar(&flags.Root, "root", "", "Project root containing algorithm/ and data-structure/ (default: $"+project.EnvRoot+", then discovered from the executable)")
	cmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Enable debug logging")

	cmd.Flags().StringVarP(&opts.output, "output", "o", workspace.DefaultOutput, "Output file")
	cmd.Flags().BoolVar(&opts.noMarkers, "no-markers", false, "Do not emit BEGIN/END markers (pure concatenation)")
	cmd.Flags().BoolVarP(&opts.copyToClipboard, "clipboard", "b", false, "Also copy the expanded source to the clipboard")

	cmd.AddCommand(graph.NewCommand(flags))
	cmd.AddCommand(check.NewCommand(flags))
	cmd.AddCommand(watch.NewCommand(flags))
	cmd.AddCommand(why.NewCommand(flags))

	// Initialize annotations for version template
	cmd.Annotations = map[string]string{
		"buildDate": buildDate,
		"commit":    commit,
	}
	cmd.SetVersionTemplate(`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "version %s" .Version}}
Build date: {{printf "%s" (index .Annotations "buildDate")}}
Commit: {{printf "%s" (index .Annotations "commit")}}
`)

	return cmd
}

func runExpand(cmd *cobra.Command, flags *workspace.Flags, opts *expandOptions, rawInput string) error {
	ws, err := flags.Open()
	if err != nil {
		return err
	}

	input, err := ws.ResolveInput(rawInput)
	if err != nil {
		return err
	}

	markers := ws.Markers(opts.noMarkers, cmd.Flags().Changed("no-markers"))
	output := ws.OutputPath(opts.output, cmd.Flags().Changed("output"))

	result, err := ws.Expander(markers).Expand(cmd.Context(), input)
	if err != nil {
		return err
	}

	text := result.Text()
	if err := workspace.WriteOutput(output, text); err != nil {
		return err
	}
	ws.Logger.Info("Wrote expanded source",
		zap.String("output", output),
		zap.Int("files", len(result.Files)),
		zap.Int("lines", len(result.Lines)))

	if opts.copyToClipboard {
		if err := clipboard.WriteAll(text); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
		fmt.Fprintln(cmd.ErrOrStderr(), "✅ Content copied to your clipboard.")
	}
	return nil
}
