package watch

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"

	"github.com/LegacyCodeHQ/cpexpand/cmd/workspace"
	"github.com/LegacyCodeHQ/cpexpand/expander"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type watchOptions struct {
	output    string
	noMarkers bool
}

// NewCommand returns a new watch command instance.
func NewCommand(flags *workspace.Flags) *cobra.Command {
	opts := &watchOptions{}

	cmd := &cobra.Command{
		Use:   "watch <input>",
		Short: "Re-expand the input whenever a source file changes",
		Long: `Expand the input once, then watch the project root (and the input's
directory) and rewrite the output every time a C++ source or header changes.
Stop with Ctrl+C.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, flags, opts, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", workspace.DefaultOutput, "Output file")
	cmd.Flags().BoolVar(&opts.noMarkers, "no-markers", false, "Do not emit BEGIN/END markers (pure concatenation)")

	return cmd
}

func runWatch(cmd *cobra.Command, flags *workspace.Flags, opts *watchOptions, rawInput string) error {
	ws, err := flags.Open()
	if err != nil {
		return err
	}
	input, err := ws.ResolveInput(rawInput)
	if err != nil {
		return err
	}

	output, err := filepath.Abs(ws.OutputPath(opts.output, cmd.Flags().Changed("output")))
	if err != nil {
		return fmt.Errorf("failed to resolve output path: %w", err)
	}

	b := &builder{
		expander: ws.Expander(ws.Markers(opts.noMarkers, cmd.Flags().Changed("no-markers"))),
		input:    input,
		output:   output,
		display:  ws.Display,
		out:      cmd.ErrOrStderr(),
		logger:   ws.Logger,
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	watcher, err := newWatcher(watchRoots(ws.Root, input))
	if err != nil {
		return err
	}
	defer watcher.Close()

	b.rebuild(ctx)
	b.report("Watching for changes to %s (press Ctrl+C to stop)\n", ws.Display(input))

	return watchAndRebuild(ctx, watcher, b)
}

// builder performs one expansion and writes the result. Rebuilds are
// serialized because they are triggered from timer goroutines.
type builder struct {
	mu       sync.Mutex
	expander *expander.Expander
	input    string
	output   string
	display  func(string) string
	out      io.Writer
	logger   *zap.Logger
}

func (b *builder) rebuild(ctx context.Context) {
	b.mu.Lock()
	defer b.mu.Unlock()

	result, err := b.expander.Expand(ctx, b.input)
	if err == nil {
		err = workspace.WriteOutput(b.output, result.Text())
	}
	if err != nil {
		if ctx.Err() == nil {
			b.printf("rebuild error: %v\n", err)
		}
		return
	}

	b.logger.Debug("Rebuilt output", zap.Int("files", len(result.Files)))
	b.printf("Rebuilt %s (%d files, %d lines)\n", b.display(b.output), len(result.Files), len(result.Lines))
}

// report writes a status line from outside a rebuild.
func (b *builder) report(format string, args ...any) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.printf(format, args...)
}

// printf requires b.mu.
func (b *builder) printf(format string, args ...any) {
	fmt.Fprintf(b.out, format, args...)
}
