package graph

import (
	"fmt"

	"github.com/LegacyCodeHQ/cpexpand/cmd/graph/formatters"
	"github.com/LegacyCodeHQ/cpexpand/cmd/workspace"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

type graphOptions struct {
	outputFormat    string
	generateURL     bool
	copyToClipboard bool
}

// NewCommand returns the graph command. It shares persistent flags with the root.
func NewCommand(flags *workspace.Flags) *cobra.Command {
	opts := &graphOptions{}

	cmd := &cobra.Command{
		Use:   "graph <input>",
		Short: "Print the include graph of an expansion.",
		Long: `Expand the input the same way the root command does and print which
files include which. Include cycles are listed.

Examples:
  cpexpand graph contest/abc300/a.cpp
  cpexpand graph a.cpp -f mermaid
  cpexpand graph a.cpp -u                    # generate visualization URL`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGraph(cmd, flags, opts, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.outputFormat, "format", "f", formatters.OutputFormatDOT.String(),
		fmt.Sprintf("Output format (%s)", formatters.SupportedFormats()))
	cmd.Flags().BoolVarP(&opts.generateURL, "url", "u", false, "Generate visualization URL (supported formats: dot, mermaid)")
	cmd.Flags().BoolVarP(&opts.copyToClipboard, "clipboard", "b", false, "Automatically copy output to clipboard")

	return cmd
}

func runGraph(cmd *cobra.Command, flags *workspace.Flags, opts *graphOptions, rawInput string) error {
	formatter, err := NewFormatter(opts.outputFormat)
	if err != nil {
		return err
	}

	ws, err := flags.Open()
	if err != nil {
		return err
	}
	input, err := ws.ResolveInput(rawInput)
	if err != nil {
		return err
	}

	result, err := ws.Expander(false).Expand(cmd.Context(), input)
	if err != nil {
		return err
	}

	output, err := formatter.Format(result.Graph, formatters.RenderOptions{Label: ws.Display(input)})
	if err != nil {
		return fmt.Errorf("failed to format graph: %w", err)
	}

	out := cmd.OutOrStdout()
	if opts.generateURL {
		if urlStr, ok := formatter.GenerateURL(output); ok {
			fmt.Fprintln(out, urlStr)
		} else {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: URL generation is not supported for %s format\n\n", opts.outputFormat)
			fmt.Fprintln(out, output)
		}
	} else {
		fmt.Fprintln(out, output)
	}

	if opts.copyToClipboard {
		if err := clipboard.WriteAll(output); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
		fmt.Fprintln(cmd.ErrOrStderr(), "✅ Content copied to your clipboard.")
	}

	return nil
}
