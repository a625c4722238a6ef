package source

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// debounceDelay coalesces the bursts of write events editors and atomic
// saves produce into a single reload.
const debounceDelay = 100 * time.Millisecond

// FileWatcher reloads the event collection when the backing file changes.
// Change notifications arrive on a goroutine; the onChange callback is
// responsible for marshalling back onto the widget's logical thread.
type FileWatcher struct {
	watcher  *fsnotify.Watcher
	files    map[string]bool
	onChange func(path string)
	log      *zap.Logger
	mu       sync.RWMutex
	done     chan struct{}
}

// NewFileWatcher starts watching; onChange fires debounced per path.
func NewFileWatcher(onChange func(string), log *zap.Logger) (*FileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	fw := &FileWatcher{
		watcher:  watcher,
		files:    make(map[string]bool),
		onChange: onChange,
		log:      log,
		done:     make(chan struct{}),
	}

	go fw.watch()
	return fw, nil
}

// AddFile registers a path for watching. Re-adding is a no-op.
func (fw *FileWatcher) AddFile(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	fw.mu.Lock()
	defer fw.mu.Unlock()

	if fw.files[absPath] {
		return nil
	}
	if err := fw.watcher.Add(absPath); err != nil {
		return err
	}
	fw.files[absPath] = true
	return nil
}

func (fw *FileWatcher) watch() {
	debounce := make(map[string]*time.Timer)

	for {
		select {
		case ev, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			if timer, exists := debounce[ev.Name]; exists {
				timer.Stop()
			}
			name := ev.Name
			debounce[name] = time.AfterFunc(debounceDelay, func() {
				fw.mu.RLock()
				watching := fw.files[name]
				fw.mu.RUnlock()
				if watching && fw.onChange != nil {
					fw.onChange(name)
				}
			})

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			fw.log.Warn("event file watch error", zap.Error(err))

		case <-fw.done:
			return
		}
	}
}

// Close stops watching and releases the underlying watcher.
func (fw *FileWatcher) Close() error {
	close(fw.done)
	return fw.watcher.Close()
}
