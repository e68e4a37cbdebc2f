package fswatcher

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
)

type Event struct {
	Op   Op
	Name string
}

//----------

// Watches a single file. The parent directory is watched so the file can be
// replaced (editors often save by renaming a new file over the old one).
type FileWatcher struct {
	w      *fsnotify.Watcher
	name   string
	events chan interface{}
	opMask Op
}

func NewFileWatcher(name string) (*FileWatcher, error) {
	name, err := filepath.Abs(name)
	if err != nil {
		return nil, err
	}
	w0, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "fswatcher")
	}
	if err := w0.Add(filepath.Dir(name)); err != nil {
		_ = w0.Close()
		return nil, errors.Wrap(err, "fswatcher: add")
	}
	fw := &FileWatcher{
		w:      w0,
		name:   name,
		events: make(chan interface{}),
		opMask: Create | Modify | Rename,
	}
	go fw.eventLoop()
	return fw, nil
}

func (fw *FileWatcher) Close() error {
	return fw.w.Close()
}

// Receives *Event or error values. Closed after Close().
func (fw *FileWatcher) Events() <-chan interface{} {
	return fw.events
}

//----------

func (fw *FileWatcher) eventLoop() {
	defer close(fw.events)
	for {
		select {
		case err, ok := <-fw.w.Errors:
			if !ok {
				return
			}
			fw.events <- err
		case ev, ok := <-fw.w.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != fw.name {
				continue
			}
			op := translateOp(ev.Op)
			if op.HasAny(fw.opMask) {
				fw.events <- &Event{Op: op, Name: fw.name}
			}
		}
	}
}

func translateOp(u fsnotify.Op) Op {
	var op Op
	if u&fsnotify.Create > 0 {
		op.Add(Create)
	}
	if u&fsnotify.Write > 0 {
		op.Add(Modify)
	}
	if u&fsnotify.Remove > 0 {
		op.Add(Remove)
	}
	if u&fsnotify.Rename > 0 {
		op.Add(Rename)
	}
	if u&fsnotify.Chmod > 0 {
		op.Add(Attrib)
	}
	return op
}
