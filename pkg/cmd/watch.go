package cmd

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"github.com/pseudomuto/hqlfmt/pkg/config"
	"github.com/pseudomuto/hqlfmt/pkg/consts"
	"github.com/pseudomuto/hqlfmt/pkg/format"
	"github.com/urfave/cli/v3"
)

const watchDebounce = 100 * time.Millisecond

// fileWatcher re-formats files in place as they change. Events for the same
// file are debounced so that editors writing in several steps trigger a
// single format.
type fileWatcher struct {
	cfg   *config.Config
	style format.Style
	delay time.Duration

	mu     sync.Mutex
	timers map[string]*time.Timer
}

// watchCmd creates a command that watches a directory tree and formats every
// query file in place whenever it is written. It runs until interrupted.
//
// Example:
//
//	hqlfmt watch queries/
func watchCmd(p formatParams) *cli.Command {
	return &cli.Command{
		Name:      "watch",
		Usage:     "Format SQL files in place as they change",
		ArgsUsage: "<dir>",
		Flags:     styleFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return errors.New("exactly one directory argument is required")
			}

			w := newFileWatcher(p.Config, commandStyle(cmd, p.Style), watchDebounce)
			return w.watch(ctx, cmd.Args().First())
		},
	}
}

func newFileWatcher(cfg *config.Config, style format.Style, delay time.Duration) *fileWatcher {
	return &fileWatcher{
		cfg:    cfg,
		style:  style,
		delay:  delay,
		timers: make(map[string]*time.Timer),
	}
}

// watch blocks until ctx is done.
func (w *fileWatcher) watch(ctx context.Context, dir string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "failed to create watcher")
	}
	defer func() { _ = watcher.Close() }()
	defer w.stop()

	if err := watchDirRecursive(watcher, dir); err != nil {
		return errors.Wrapf(err, "failed to watch directory: %s", dir)
	}

	slog.Info("Watching for changes", "dir", dir)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := watchDirRecursive(watcher, event.Name); err != nil {
						slog.Error("Failed to watch directory", "dir", event.Name, "err", err)
					}
					continue
				}
			}

			if w.cfg.Matches(event.Name) {
				w.schedule(event.Name)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			slog.Error("Watcher error", "err", err)
		}
	}
}

func (w *fileWatcher) schedule(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if timer, ok := w.timers[path]; ok {
		timer.Stop()
	}

	w.timers[path] = time.AfterFunc(w.delay, func() {
		w.mu.Lock()
		delete(w.timers, path)
		w.mu.Unlock()

		w.reformat(path)
	})
}

func (w *fileWatcher) stop() {
	w.mu.Lock()
	defer w.mu.Unlock()

	for path, timer := range w.timers {
		timer.Stop()
		delete(w.timers, path)
	}
}

// reformat formats path in place when its formatting differs. Files that do
// not parse are logged and left untouched.
func (w *fileWatcher) reformat(path string) {
	content, err := os.ReadFile(path)
	if err != nil {
		slog.Error("Failed to read file", "path", path, "err", err)
		return
	}

	out, err := format.Script(path, string(content), w.style)
	if err != nil {
		slog.Error("Failed to format file", "path", path, "err", err)
		return
	}

	if out != "" {
		out += "\n"
	}

	if out == string(content) {
		return
	}

	if err := os.WriteFile(path, []byte(out), consts.ModeFile); err != nil {
		slog.Error("Failed to write file", "path", path, "err", err)
		return
	}

	slog.Info("Formatted", "path", path)
}

// watchDirRecursive adds a directory and all subdirectories to the watcher.
func watchDirRecursive(watcher *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
}
