package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/tliron/commonlog"
)

const debounceDelay = 200 * time.Millisecond

// watchFiles calls run once and then again after each burst of writes to
// one of files, until ctx is done. Directories are watched rather than files so
// that editors replacing a file by renaming are noticed.
func watchFiles(ctx context.Context, files []string, run func()) error {
	log := commonlog.GetLogger("mpc.watch")

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	watched := make(map[string]bool, len(files))
	dirs := make(map[string]bool)
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			return err
		}
		watched[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
	}

	run()

	// Each write restarts the timer, so run sees the files once a burst of
	// writes has settled.
	settle := time.NewTimer(debounceDelay)
	settle.Stop()
	defer settle.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !watched[event.Name] || !(event.Op.Has(fsnotify.Write) || event.Op.Has(fsnotify.Create)) {
				continue
			}
			log.Debugf("%s: %s", event.Name, event.Op)
			settle.Reset(debounceDelay)

		case <-settle.C:
			log.Infof("files changed, parsing again")
			run()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Errorf("watch: %s", err)
		}
	}
}
