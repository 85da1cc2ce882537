// Package follow tails a growing file and delivers appended lines, the way
// `osd-cat -follow` keeps a log visible on screen. It watches the file's
// directory rather than the file itself so editors and log rotation that
// replace the file atomically keep working.
package follow

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Follower watches one file and calls back with every complete line
// appended to it. Callbacks run on the watch goroutine; keep them fast.
type Follower struct {
	watcher *fsnotify.Watcher
	path    string

	onLines func(lines []string)
	onError func(err error)

	offset  int64
	partial []byte

	stopCh    chan struct{}
	stoppedCh chan struct{}
	mu        sync.Mutex
	running   bool
}

// New creates a Follower for path. Lines already in the file are skipped;
// only data appended after Start is delivered. onError may be nil.
func New(path string, onLines func([]string), onError func(error)) (*Follower, error) {
	if onLines == nil {
		return nil, fmt.Errorf("follow: onLines callback is required")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, err
	}

	f := &Follower{
		watcher:   watcher,
		path:      path,
		onLines:   onLines,
		onError:   onError,
		stopCh:    make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}

	// Start tailing from the current end of file, if it exists.
	if info, err := os.Stat(path); err == nil {
		f.offset = info.Size()
	}
	return f, nil
}

// Start begins delivering appended lines in a goroutine.
func (f *Follower) Start() {
	f.mu.Lock()
	if f.running {
		f.mu.Unlock()
		return
	}
	f.running = true
	f.mu.Unlock()

	go f.watchLoop()
}

// Stop ends the watch and waits for the goroutine to exit. Safe to call
// multiple times.
func (f *Follower) Stop() {
	f.mu.Lock()
	if !f.running {
		f.mu.Unlock()
		return
	}
	f.running = false
	f.mu.Unlock()

	close(f.stopCh)
	<-f.stoppedCh
	f.watcher.Close()
}

func (f *Follower) watchLoop() {
	defer close(f.stoppedCh)

	for {
		select {
		case <-f.stopCh:
			return

		case event, ok := <-f.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(f.path) {
				continue
			}
			switch {
			case event.Op&fsnotify.Write != 0:
				f.drain()
			case event.Op&(fsnotify.Create|fsnotify.Rename|fsnotify.Remove) != 0:
				// The file was rotated or recreated; restart from the top.
				f.offset = 0
				f.partial = nil
				if event.Op&fsnotify.Create != 0 {
					f.drain()
				}
			}

		case err, ok := <-f.watcher.Errors:
			if !ok {
				return
			}
			f.reportError(err)
		}
	}
}

// drain reads everything appended since the last read and delivers the
// complete lines in it.
func (f *Follower) drain() {
	file, err := os.Open(f.path)
	if err != nil {
		f.reportError(err)
		return
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		f.reportError(err)
		return
	}
	if info.Size() < f.offset {
		// Truncated underneath us.
		f.offset = 0
		f.partial = nil
	}

	if _, err := file.Seek(f.offset, io.SeekStart); err != nil {
		f.reportError(err)
		return
	}
	data, err := io.ReadAll(file)
	if err != nil {
		f.reportError(err)
		return
	}
	f.offset += int64(len(data))

	f.deliver(data)
}

// deliver splits the new data into lines, carrying an unterminated tail
// over to the next read.
func (f *Follower) deliver(data []byte) {
	buf := append(f.partial, data...)

	var lines []string
	for {
		i := bytes.IndexByte(buf, '\n')
		if i < 0 {
			break
		}
		lines = append(lines, string(bytes.TrimSuffix(buf[:i], []byte("\r"))))
		buf = buf[i+1:]
	}
	f.partial = buf

	if len(lines) > 0 {
		f.onLines(lines)
	}
}

func (f *Follower) reportError(err error) {
	if f.onError != nil {
		f.onError(err)
	}
}
