package fswatcher

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func readEvent(t *testing.T, fw *FileWatcher, fn func(*Event) bool) {
	t.Helper()
	timeout := time.After(3 * time.Second)
	for {
		select {
		case <-timeout:
			t.Fatal("event timeout")
		case ev := <-fw.Events():
			if err, ok := ev.(error); ok {
				t.Fatal(err)
			}
			if fn(ev.(*Event)) {
				return
			}
		}
	}
}

func TestFileWatcherModify(t *testing.T) {
	dir, err := ioutil.TempDir("", "fswatcher_test")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	name := filepath.Join(dir, "content.txt")
	other := filepath.Join(dir, "other.txt")
	if err := ioutil.WriteFile(name, []byte("a"), 0644); err != nil {
		t.Fatal(err)
	}

	fw, err := NewFileWatcher(name)
	if err != nil {
		t.Fatal(err)
	}
	defer fw.Close()

	// other files in the dir are ignored
	if err := ioutil.WriteFile(other, []byte("b"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := ioutil.WriteFile(name, []byte("a\nb"), 0644); err != nil {
		t.Fatal(err)
	}
	readEvent(t, fw, func(ev *Event) bool {
		if ev.Name != name {
			t.Fatal(ev.Name)
		}
		return ev.Op.HasAny(Modify)
	})
}

func TestOpString(t *testing.T) {
	op := Create | Rename
	if s := op.String(); s != "create|rename" {
		t.Fatal(s)
	}
	op.Remove(Create)
	op.Add(Attrib)
	if s := op.String(); s != "attrib|rename" {
		t.Fatal(s)
	}
}
