package main

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
)

// watch renders once, then again each time the form, the values, the
// directions, the annotations or the config change, until ctx is done.
//
// The parent directories are watched rather than the files, so a save that
// replaces a file by renaming over it is still seen.
func (c *RenderCmd) watch(ctx context.Context, g *Globals, log *slog.Logger) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "could not create watcher")
	}
	defer watcher.Close()

	inputs := map[string]bool{}
	dirs := map[string]bool{}
	for _, name := range []string{c.File, c.Values, c.Directions, c.Annotations, g.Config} {
		if name == "" {
			continue
		}
		abs, err := filepath.Abs(name)
		if err != nil {
			return errors.Wrapf(err, "could not watch %s", name)
		}
		inputs[abs] = true
		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		if err := watcher.Add(dir); err != nil {
			return errors.Wrapf(err, "could not watch %s", name)
		}
		dirs[dir] = true
	}

	if err := c.render(g, log); err != nil {
		log.Error("render failed", "err", err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			name, err := filepath.Abs(event.Name)
			if err != nil || !inputs[name] {
				continue
			}
			switch {
			case event.Op&(fsnotify.Write|fsnotify.Create) != 0:
				log.Debug("input changed", "file", name, "op", event.Op.String())
				if err := c.render(g, log); err != nil {
					log.Error("render failed", "err", err)
				}
			case event.Op&(fsnotify.Remove|fsnotify.Rename) != 0:
				log.Warn("input removed, waiting for it to return", "file", name)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Error("watch failed", "err", err)
		}
	}
}
