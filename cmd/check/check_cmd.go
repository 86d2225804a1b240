package check

import (
	"fmt"

	"github.com/LegacyCodeHQ/cpexpand/cmd/workspace"
	"github.com/LegacyCodeHQ/cpexpand/depgraph/cpp"
	"github.com/LegacyCodeHQ/cpexpand/vcs"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Finding is a quoted include that the expander copies through verbatim.
type Finding struct {
	File    string
	Include cpp.Include
}

// NewCommand returns the check command.
func NewCommand(flags *workspace.Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "check <input>",
		Short: "Report quoted includes that will not be expanded.",
		Long: `Expand the input without writing output, then parse every expanded file
with a C++ grammar and report quoted #include directives the expander
leaves untouched, such as directives followed by a trailing comment.
Exits with status 1 when any are found.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, flags, args[0])
		},
	}
}

func runCheck(cmd *cobra.Command, flags *workspace.Flags, rawInput string) error {
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

	findings, err := FindUnexpanded(result.Files, vcs.FilesystemContentReader(), ws.Display)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(findings) == 0 {
		fmt.Fprintf(out, "No unexpanded includes found in %d files.\n", len(result.Files))
		return nil
	}

	for _, f := range findings {
		fmt.Fprintf(out, "%s:%d: #include %q will not be expanded (only whitespace may follow the directive)\n",
			f.File, f.Include.Line, f.Include.Path)
	}
	ws.Logger.Debug("Check finished", zap.Int("findings", len(findings)))
	return &workspace.ExitError{
		Code: 1,
		Err:  fmt.Errorf("%d unexpanded include(s) found", len(findings)),
	}
}

// FindUnexpanded scans files in order and collects quoted includes that the
// strict directive matcher rejects. display renders file names in findings.
func FindUnexpanded(files []string, contentReader vcs.ContentReader, display func(string) string) ([]Finding, error) {
	var findings []Finding
	for _, file := range files {
		content, err := contentReader(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", display(file), err)
		}

		missed, err := cpp.UnexpandedIncludes(content)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", display(file), err)
		}
		for _, inc := range missed {
			findings = append(findings, Finding{File: display(file), Include: inc})
		}
	}
	return findings, nil
}
