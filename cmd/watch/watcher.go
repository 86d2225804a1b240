package watch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/LegacyCodeHQ/cpexpand/depgraph"
	"github.com/LegacyCodeHQ/cpexpand/project"
	"github.com/fsnotify/fsnotify"
)

const debounceInterval = 300 * time.Millisecond

var skippedDirs = map[string]bool{
	".git":    true,
	".vscode": true,
	".idea":   true,
	".cache":  true,
	"build":   true,
	"bin":     true,
}

// watchRoots returns the project root plus the input's directory when the
// input lives outside the root.
func watchRoots(root, input string) []string {
	roots := []string{root}
	inputDir := filepath.Dir(input)
	rel, err := filepath.Rel(root, inputDir)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		roots = append(roots, inputDir)
	}
	return roots
}

func newWatcher(roots []string) (*fsnotify.Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	for _, root := range roots {
		if err := addWatchDirs(watcher, root); err != nil {
			watcher.Close()
			return nil, fmt.Errorf("failed to watch directories: %w", err)
		}
	}
	return watcher, nil
}

func watchAndRebuild(ctx context.Context, watcher *fsnotify.Watcher, b *builder) error {
	var debounceTimer *time.Timer

	for {
		select {
		case <-ctx.Done():
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if event.Has(fsnotify.Create) {
				addIfDirectory(watcher, event.Name)
			}

			if !isRelevantChange(event, b.output) {
				continue
			}

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(debounceInterval, func() {
				b.rebuild(ctx)
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			b.report("watcher error: %v\n", err)
		}
	}
}

// isRelevantChange reports whether event should trigger a rebuild. Changes
// to the output file itself are ignored so a rebuild never retriggers itself.
func isRelevantChange(event fsnotify.Event, output string) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}
	if sameFile(event.Name, output) {
		return false
	}
	if filepath.Base(event.Name) == project.ConfigFileName {
		return true
	}
	return depgraph.IsSourceFile(event.Name)
}

// sameFile compares paths by canonical directory and base name, so it also
// works for files that no longer exist.
func sameFile(a, b string) bool {
	return filepath.Base(a) == filepath.Base(b) &&
		project.Canonical(filepath.Dir(a)) == project.Canonical(filepath.Dir(b))
}

func addWatchDirs(watcher *fsnotify.Watcher, root string) error {
	return addWatchDirsWithAdder(root, watcher.Add)
}

func addWatchDirsWithAdder(root string, add func(string) error) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && skippedDirs[d.Name()] {
			return filepath.SkipDir
		}
		if err := add(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		return nil
	})
}

func addIfDirectory(watcher *fsnotify.Watcher, path string) {
	info, err := os.Stat(path)
	if err != nil {
		return
	}
	if info.IsDir() {
		_ = addWatchDirs(watcher, path)
	}
}
