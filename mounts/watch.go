package mounts

import (
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// startWatch watches each base prefix and its immediate subdirectories.
// Devices usually appear one level down (/run/media/<user>/<label>).
func (d *Discoverer) startWatch() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	watched := 0
	for _, base := range d.bases {
		if err := watcher.Add(base); err != nil {
			d.logger.Debug("not watching mount base", "base", base, "err", err)
			continue
		}
		watched++
		entries, err := os.ReadDir(base)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			if err := watcher.Add(filepath.Join(base, entry.Name())); err == nil {
				watched++
			}
		}
	}

	d.watcher = watcher
	d.done = make(chan struct{})
	go d.watchLoop(watcher)
	d.logger.Debug("watching mount bases", "paths", watched)
	return nil
}

func (d *Discoverer) watchLoop(watcher *fsnotify.Watcher) {
	defer close(d.done)
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if event.Has(fsnotify.Create) || event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				d.logger.Debug("mount base changed", "path", event.Name, "op", event.Op.String())
				d.Invalidate()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			d.logger.Warn("mount watcher error", "err", err)
		}
	}
}
