package config

import (
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceDelay absorbs editor write bursts (truncate, write, chmod) so a
// save triggers one reload, not three.
const debounceDelay = 300 * time.Millisecond

// Watcher reloads the config file on change and hands each valid result
// to the registered callback. A reload that fails validation is logged
// and dropped; the previous configuration stays in effect.
type Watcher struct {
	path     string
	onChange func(*Config)

	fw       *fsnotify.Watcher
	stopOnce sync.Once
	stop     chan struct{}
}

// Watch starts watching path. onChange runs on the watcher goroutine with
// each successfully loaded config.
func Watch(path string, onChange func(*Config)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Watch the directory, not the file: editors replace files by rename
	// and a file watch dies with the old inode.
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, err
	}

	w := &Watcher{
		path:     path,
		onChange: onChange,
		fw:       fw,
		stop:     make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

func (w *Watcher) loop() {
	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-w.stop:
			return
		case event, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounceDelay)
				timerC = timer.C
			} else {
				timer.Reset(debounceDelay)
			}
		case <-timerC:
			timer = nil
			timerC = nil
			w.reload()
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			log.Printf("[WARN] config watcher: %v", err)
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := Load(w.path)
	if err != nil {
		log.Printf("[WARN] config reload rejected, keeping previous: %v", err)
		return
	}
	w.onChange(cfg)
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	w.stopOnce.Do(func() { close(w.stop) })
	return w.fw.Close()
}
