// Package workspace wires project discovery, configuration and the expander
// together for the command-line entry points.
package workspace

import (
	"github.com/LegacyCodeHQ/cpexpand/expander"
	"github.com/LegacyCodeHQ/cpexpand/project"

	"go.uber.org/zap"
)

// Flags holds the persistent flags shared by every command.
type Flags struct {
	Root    string
	Verbose bool
	Logger  *zap.Logger
}

// Workspace is a located project root with its configuration loaded.
type Workspace struct {
	Root        string
	Config      project.Config
	IncludeDirs []string
	Logger      *zap.Logger
}

// Open locates the project root and reads its configuration.
func (f *Flags) Open() (*Workspace, error) {
	logger := f.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	root, err := project.LocateRoot(f.Root)
	if err != nil {
		return nil, err
	}

	cfg, err := project.LoadConfig(root)
	if err != nil {
		return nil, err
	}

	ws := &Workspace{
		Root:        root,
		Config:      cfg,
		IncludeDirs: project.IncludeDirs(root, cfg.IncludeDirs...),
		Logger:      logger,
	}
	logger.Debug("Opened workspace",
		zap.Strings("includeDirs", project.DisplayPaths(ws.IncludeDirs, root, false)),
		zap.Bool("configFile", len(cfg.IncludeDirs) > 0 || cfg.Output != "" || cfg.Markers != nil))
	return ws, nil
}

// ResolveInput locates the entry file for this workspace.
func (w *Workspace) ResolveInput(raw string) (string, error) {
	input, err := project.ResolveInput(raw, w.Root)
	if err != nil {
		return "", err
	}
	w.Logger.Debug("Resolved input", zap.String("input", w.Display(input)))
	return input, nil
}

// Expander returns an expander searching this workspace's include directories.
func (w *Workspace) Expander(markers bool) *expander.Expander {
	return expander.New(expander.Options{
		Root:        w.Root,
		IncludeDirs: w.IncludeDirs,
		EmitMarkers: markers,
		Logger:      w.Logger,
	})
}

// Display renders path for messages.
func (w *Workspace) Display(path string) string {
	return project.DisplayPath(path, w.Root, true)
}

// OutputPath picks the output file: an explicit flag wins over the config
// file, which wins over the default.
func (w *Workspace) OutputPath(flagValue string, flagChanged bool) string {
	if !flagChanged && w.Config.Output != "" {
		return w.Config.Output
	}
	return flagValue
}

// Markers reports whether BEGIN/END markers are emitted. An explicit
// --no-markers wins over the config file.
func (w *Workspace) Markers(noMarkers bool, flagChanged bool) bool {
	if flagChanged {
		return !noMarkers
	}
	return w.Config.MarkersEnabled(true)
}
