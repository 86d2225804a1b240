package why

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/LegacyCodeHQ/cpexpand/cmd/workspace"
	"github.com/spf13/cobra"
)

const (
	formatText = "text"
	formatJSON = "json"
)

type whyOptions struct {
	outputFormat string
}

// Explanation describes how an entry file reaches a header.
type Explanation struct {
	Input     string   `json:"input"`
	Header    string   `json:"header"`
	Chain     []string `json:"chain"`
	Includers []string `json:"includers"`
}

// NewCommand returns a new why command instance.
func NewCommand(flags *workspace.Flags) *cobra.Command {
	opts := &whyOptions{
		outputFormat: formatText,
	}

	cmd := &cobra.Command{
		Use:   "why <input> <header>",
		Short: "Show why a header ends up in the expanded output.",
		Long: `Expand the input and print the shortest chain of quoted includes that
pulls in the header, plus every file that includes the header directly.
The header may be given as a root-relative path or a bare file name.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWhy(cmd, flags, opts, args[0], args[1])
		},
	}

	cmd.Flags().StringVarP(&opts.outputFormat, "format", "f", opts.outputFormat,
		fmt.Sprintf("Output format (%s, %s)", formatText, formatJSON))

	return cmd
}

func runWhy(cmd *cobra.Command, flags *workspace.Flags, opts *whyOptions, rawInput, header string) error {
	if opts.outputFormat != formatText && opts.outputFormat != formatJSON {
		return fmt.Errorf("unknown format: %s (valid options: %s, %s)", opts.outputFormat, formatText, formatJSON)
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

	graph := result.Graph
	entry := graph.Label(result.Files[0])

	target, candidates := graph.FindFile(header)
	if target == "" {
		if len(candidates) > 0 {
			return fmt.Errorf("header %q is ambiguous: %s", header, strings.Join(candidates, ", "))
		}
		return fmt.Errorf("%s is not included by %s", header, entry)
	}

	chain, err := graph.IncludeChain(entry, target)
	if err != nil {
		return err
	}
	includers, err := graph.Includers(target)
	if err != nil {
		return fmt.Errorf("failed to list includers of %s: %w", target, err)
	}

	explanation := Explanation{Input: entry, Header: target, Chain: chain, Includers: includers}
	if opts.outputFormat == formatJSON {
		return writeJSON(cmd.OutOrStdout(), explanation)
	}
	writeText(cmd.OutOrStdout(), explanation)
	return nil
}

func writeText(w io.Writer, e Explanation) {
	if len(e.Chain) == 1 {
		fmt.Fprintf(w, "%s is the input file.\n", e.Header)
		return
	}

	fmt.Fprintf(w, "%s is included via:\n", e.Header)
	for i, file := range e.Chain {
		fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", i), file)
	}
	if len(e.Includers) > 0 {
		fmt.Fprintf(w, "\nIncluded directly by: %s\n", strings.Join(e.Includers, ", "))
	}
}

func writeJSON(w io.Writer, e Explanation) error {
	if e.Includers == nil {
		e.Includers = []string{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(e)
}
