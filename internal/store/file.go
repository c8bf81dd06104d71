package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/alexisbeaulieu97/huey/internal/logger"
	hueyerrors "github.com/alexisbeaulieu97/huey/pkg/errors"
)

const fileVersion = "1"

// errEmptyDocument marks a zero-length file, which is either new or caught
// mid-write by another process.
var errEmptyDocument = errors.New("empty preference file")

// fileDocument is the on-disk layout of a File store.
type fileDocument struct {
	Version string                     `json:"version"`
	Values  map[string]json.RawMessage `json:"values"`
}

// File is a Store persisted as a single JSON document. Writes go through a
// temporary file and an atomic rename. The file is watched so changes made by
// another process reach subscribers.
type File struct {
	path string
	log  *logger.Logger

	mu     sync.RWMutex
	values map[string]json.RawMessage
	hub    *hub

	watcher *fsnotify.Watcher
	done    chan struct{}
	wg      sync.WaitGroup
	once    sync.Once
}

// FileOption customises OpenFile.
type FileOption func(*File)

// WithLogger attaches a logger for watcher diagnostics.
func WithLogger(log *logger.Logger) FileOption {
	return func(f *File) { f.log = log.Component("store.file") }
}

// WithoutWatch disables the filesystem watcher.
func WithoutWatch() FileOption {
	return func(f *File) { f.done = nil }
}

// OpenFile loads the document at path, creating its directory if needed. A
// missing file is an empty store.
func OpenFile(path string, opts ...FileOption) (*File, error) {
	f := &File{
		path:   path,
		values: make(map[string]json.RawMessage),
		hub:    newHub(),
		done:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(f)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, hueyerrors.NewStoreError("file", "", fmt.Errorf("create store directory: %w", err))
	}

	values, err := readDocument(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) && !errors.Is(err, errEmptyDocument) {
		return nil, hueyerrors.NewStoreError("file", "", err)
	}
	if values != nil {
		f.values = values
	}

	if f.done != nil {
		f.startWatcher()
	}
	return f, nil
}

// Path returns the document location.
func (f *File) Path() string { return f.path }

// Watching reports whether external changes are being tracked.
func (f *File) Watching() bool { return f.watcher != nil }

// Get implements Store.
func (f *File) Get(_ context.Context, key string) ([]byte, bool, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	v, ok := f.values[key]
	if !ok {
		return nil, false, nil
	}
	return slices.Clone([]byte(v)), true, nil
}

// Set implements Store. The value must be a JSON document.
func (f *File) Set(_ context.Context, key string, value []byte) error {
	compacted, err := compactJSON(value)
	if err != nil {
		return hueyerrors.NewStoreError("file", key, fmt.Errorf("value is not valid JSON: %w", err))
	}

	f.mu.Lock()
	prev, existed := f.values[key]
	f.values[key] = compacted
	if err := f.saveLocked(); err != nil {
		if existed {
			f.values[key] = prev
		} else {
			delete(f.values, key)
		}
		f.mu.Unlock()
		return hueyerrors.NewStoreError("file", key, err)
	}
	f.mu.Unlock()

	f.hub.publish(Event{Key: key, Op: OpSet, Value: slices.Clone([]byte(compacted))})
	return nil
}

// Remove implements Store.
func (f *File) Remove(_ context.Context, key string) error {
	f.mu.Lock()
	prev, existed := f.values[key]
	if !existed {
		f.mu.Unlock()
		return nil
	}
	delete(f.values, key)
	if err := f.saveLocked(); err != nil {
		f.values[key] = prev
		f.mu.Unlock()
		return hueyerrors.NewStoreError("file", key, err)
	}
	f.mu.Unlock()

	f.hub.publish(Event{Key: key, Op: OpRemove})
	return nil
}

// Keys implements Store.
func (f *File) Keys(_ context.Context) ([]string, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	keys := make([]string, 0, len(f.values))
	for k := range f.values {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys, nil
}

// Subscribe implements Store.
func (f *File) Subscribe() (<-chan Event, func()) { return f.hub.subscribe() }

// Close stops the watcher and closes every subscription.
func (f *File) Close() error {
	var err error
	f.once.Do(func() {
		if f.watcher != nil {
			close(f.done)
			err = f.watcher.Close()
			f.wg.Wait()
		}
		f.hub.close()
	})
	return err
}

// saveLocked writes the document atomically. Callers hold f.mu.
func (f *File) saveLocked() error {
	data, err := json.MarshalIndent(fileDocument{Version: fileVersion, Values: f.values}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal store: %w", err)
	}

	tmpPath := f.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("write temporary file: %w", err)
	}
	if err := os.Rename(tmpPath, f.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temporary file: %w", err)
	}
	return nil
}

func readDocument(path string) (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errEmptyDocument
	}

	var doc fileDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, hueyerrors.NewParseError(path, "preference file", err)
	}
	values := make(map[string]json.RawMessage, len(doc.Values))
	for k, v := range doc.Values {
		compacted, err := compactJSON(v)
		if err != nil {
			return nil, hueyerrors.NewParseError(path, "preference file", err)
		}
		values[k] = compacted
	}
	return values, nil
}

// compactJSON normalises a JSON value so documents read back after an
// indented write compare equal to what was stored.
func compactJSON(value []byte) (json.RawMessage, error) {
	var buf bytes.Buffer
	if err := json.Compact(&buf, value); err != nil {
		return nil, err
	}
	return json.RawMessage(buf.Bytes()), nil
}

// startWatcher watches the parent directory, since an atomic rename replaces
// the file and would drop a watch placed on the file itself.
func (f *File) startWatcher() {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		f.log.Warn("preference file watcher unavailable", "path", f.path, "error", err.Error())
		return
	}
	if err := w.Add(filepath.Dir(f.path)); err != nil {
		_ = w.Close()
		f.log.Warn("preference file watcher unavailable", "path", f.path, "error", err.Error())
		return
	}

	f.watcher = w
	f.wg.Add(1)
	go f.watch()
}

func (f *File) watch() {
	defer f.wg.Done()

	target := filepath.Clean(f.path)
	for {
		select {
		case <-f.done:
			return
		case ev, ok := <-f.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			f.reload()
		case err, ok := <-f.watcher.Errors:
			if !ok {
				return
			}
			f.log.Error(err, "preference file watcher error", "path", f.path)
		}
	}
}

// reload re-reads the document and publishes the keys that differ from the
// in-memory copy.
func (f *File) reload() {
	f.mu.Lock()
	values, err := readDocument(f.path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		values = map[string]json.RawMessage{}
	case err != nil:
		f.mu.Unlock()
		f.log.Debug("skipping unreadable preference file", "path", f.path, "error", err.Error())
		return
	}

	var events []Event
	for k, v := range values {
		if old, ok := f.values[k]; !ok || !bytes.Equal(old, v) {
			events = append(events, Event{Key: k, Op: OpSet, Value: slices.Clone([]byte(v))})
		}
	}
	for k := range f.values {
		if _, ok := values[k]; !ok {
			events = append(events, Event{Key: k, Op: OpRemove})
		}
	}
	f.values = values
	f.mu.Unlock()

	for _, ev := range events {
		f.hub.publish(ev)
	}
}
