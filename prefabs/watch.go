package prefabs

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const (
	eventBuffer = 16
	debounce    = 100 * time.Millisecond
)

// ChangeKind tells the game what an edited file invalidates.
type ChangeKind uint8

const (
	ChangeLevel ChangeKind = iota + 1
	ChangeDefinitions
	ChangeImage
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeLevel:
		return "level"
	case ChangeDefinitions:
		return "definitions"
	case ChangeImage:
		return "image"
	default:
		return "unknown"
	}
}

// Change is one edited content file. Name is the level name for
// ChangeLevel and the image key for ChangeImage.
type Change struct {
	Kind ChangeKind
	Path string
	Name string
}

// Classify maps a file path to the content it holds. Files the game does
// not load report false.
func Classify(path string) (Change, bool) {
	base := filepath.Base(path)
	ext := strings.ToLower(filepath.Ext(base))
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	switch ext {
	case ".yaml", ".yml":
		if stem == strings.TrimSuffix(DefinitionsFile, filepath.Ext(DefinitionsFile)) {
			return Change{Kind: ChangeDefinitions, Path: path, Name: stem}, true
		}
		return Change{Kind: ChangeLevel, Path: path, Name: stem}, true
	case ".png":
		return Change{Kind: ChangeImage, Path: path, Name: base}, true
	}
	return Change{}, false
}

// Watcher reports content files written, created, renamed or removed in the
// watched directories. Bursts on one file within 100ms collapse into one
// change. The run goroutine owns Events and Errors and closes both once it
// stops.
type Watcher struct {
	watcher *fsnotify.Watcher
	Events  chan Change
	Errors  chan error
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	watcher := &Watcher{
		watcher: w,
		Events:  make(chan Change, eventBuffer),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

// Close stops the watcher and waits for Events and Errors to be closed.
// Changes still buffered can be drained afterwards.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	<-w.done
	return err
}

func (w *Watcher) run() {
	defer close(w.done)
	defer close(w.Errors)
	defer close(w.Events)

	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			change, ok := Classify(event.Name)
			if !ok {
				continue
			}
			now := time.Now()
			if t, ok := last[event.Name]; ok && now.Sub(t) < debounce {
				continue
			}
			last[event.Name] = now
			select {
			case w.Events <- change:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			case <-w.closeCh:
				return
			}
		case <-w.closeCh:
			return
		}
	}
}
