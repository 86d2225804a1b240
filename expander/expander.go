// Package expander inlines quoted C++ includes into a single translation unit.
package expander

import (
	"context"
	"fmt"
	"strings"

	"github.com/LegacyCodeHQ/cpexpand/depgraph"
	"github.com/LegacyCodeHQ/cpexpand/depgraph/cpp"
	"github.com/LegacyCodeHQ/cpexpand/project"
	"github.com/LegacyCodeHQ/cpexpand/vcs"

	"go.uber.org/zap"
)

// Options configures an Expander.
type Options struct {
	// Root is the project root used to render display paths.
	Root string
	// IncludeDirs is searched in order after the including file's directory.
	IncludeDirs []string
	// EmitMarkers wraps every expanded file in BEGIN/END comments.
	EmitMarkers bool
	// ContentReader defaults to vcs.FilesystemContentReader.
	ContentReader vcs.ContentReader
	// Logger defaults to a no-op logger.
	Logger *zap.Logger
}

// Expander flattens an entry file and everything it includes with quotes.
// An Expander holds no per-run state and may be shared between goroutines.
type Expander struct {
	root          string
	resolver      cpp.IncludeResolver
	emitMarkers   bool
	contentReader vcs.ContentReader
	logger        *zap.Logger
}

// Result is the outcome of one expansion.
type Result struct {
	// Lines holds the output in order, each with its line terminator.
	Lines []string
	// Files lists the canonical path of every expanded file in expansion order.
	Files []string
	// Graph records the include relationships between expanded files. Files
	// are identified by canonical path and labeled with their display path.
	Graph *depgraph.IncludeGraph
}

// Text returns the concatenated output.
func (r Result) Text() string {
	return strings.Join(r.Lines, "")
}

// New creates an Expander from opts.
func New(opts Options) *Expander {
	reader := opts.ContentReader
	if reader == nil {
		reader = vcs.FilesystemContentReader()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Expander{
		root:          project.Canonical(opts.Root),
		resolver:      cpp.NewIncludeResolver(opts.IncludeDirs),
		emitMarkers:   opts.EmitMarkers,
		contentReader: reader,
		logger:        logger,
	}
}

// run is the state of a single Expand call.
type run struct {
	seen  map[string]bool
	files []string
	graph *depgraph.IncludeGraph
}

// Expand flattens entry. Each call starts with an empty seen set.
func (e *Expander) Expand(ctx context.Context, entry string) (Result, error) {
	r := &run{
		seen:  make(map[string]bool),
		graph: depgraph.NewLabeledIncludeGraph(e.display),
	}

	lines, err := e.expandFile(ctx, r, entry)
	if err != nil {
		return Result{}, err
	}

	e.logger.Debug("Expansion finished",
		zap.String("entry", e.display(entry)),
		zap.Int("files", len(r.files)),
		zap.Int("lines", len(lines)))

	return Result{Lines: lines, Files: r.files, Graph: r.graph}, nil
}

func (e *Expander) expandFile(ctx context.Context, r *run, path string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path = project.Canonical(path)
	display := e.display(path)

	if r.seen[path] {
		e.logger.Debug("Skipping duplicated include", zap.String("file", display))
		return []string{skippedMarker(display)}, nil
	}
	r.seen[path] = true
	r.files = append(r.files, path)
	if err := r.graph.AddFile(path); err != nil {
		return nil, err
	}

	content, err := e.contentReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", display, err)
	}
	e.logger.Debug("Expanding file", zap.String("file", display), zap.Int("sizeBytes", len(content)))

	var out lineBuffer
	if e.emitMarkers {
		out.append(beginMarker(display))
	}

	for _, line := range splitLines(string(content)) {
		inc, ok := cpp.MatchDirective(line)
		if !ok || inc.Kind == cpp.IncludeSystem {
			out.append(line)
			continue
		}

		resolved, found := e.resolver.Resolve(inc.Path, path)
		if !found {
			return nil, &UnresolvableIncludeError{
				Header:   inc.Path,
				From:     display,
				Searched: project.DisplayPaths(e.resolver.SearchDirs(path), e.root, false),
			}
		}

		if err := r.graph.AddInclude(path, project.Canonical(resolved)); err != nil {
			return nil, err
		}

		nested, err := e.expandFile(ctx, r, resolved)
		if err != nil {
			return nil, err
		}
		out.append(nested...)
	}

	if e.emitMarkers {
		out.append(endMarker(display))
	}
	return out.lines, nil
}

func (e *Expander) display(path string) string {
	return project.DisplayPath(path, e.root, false)
}

// lineBuffer collects output lines. A line without a terminator is
// terminated as soon as another line follows it.
type lineBuffer struct {
	lines []string
}

func (b *lineBuffer) append(lines ...string) {
	for _, line := range lines {
		if n := len(b.lines); n > 0 && !hasTerminator(b.lines[n-1]) {
			b.lines[n-1] += "\n"
		}
		b.lines = append(b.lines, line)
	}
}

// splitLines splits s after every "\n", "\r\n" or lone "\r", keeping
// terminators.
func splitLines(s string) []string {
	var lines []string
	for len(s) > 0 {
		i := strings.IndexAny(s, "\r\n")
		if i < 0 {
			lines = append(lines, s)
			break
		}
		end := i + 1
		if s[i] == '\r' && end < len(s) && s[end] == '\n' {
			end++
		}
		lines = append(lines, s[:end])
		s = s[end:]
	}
	return lines
}

func hasTerminator(line string) bool {
	return strings.HasSuffix(line, "\n") || strings.HasSuffix(line, "\r")
}
