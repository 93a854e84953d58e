package storage

import (
	"crypto/sha256"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Store is durable local storage: one JSON file per key under a data
// directory. Every write replaces the whole value for its key, synchronously.
//
// A filesystem watcher notifies subscribers when a key's file is changed by
// another process, so a second instance sharing the data directory can reload
// instead of silently serving stale state.
type Store struct {
	dir     string
	watcher *fsnotify.Watcher

	mu        sync.Mutex
	lastWrite map[string][32]byte
	subs      map[string][]func()

	closeOnce sync.Once
	done      chan struct{}
}

// Open creates the data directory if needed and starts the change watcher.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create storage watcher: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch data directory: %w", err)
	}

	s := &Store{
		dir:       dir,
		watcher:   watcher,
		lastWrite: make(map[string][32]byte),
		subs:      make(map[string][]func()),
		done:      make(chan struct{}),
	}
	go s.watchLoop()
	return s, nil
}

// Dir returns the data directory backing this store.
func (s *Store) Dir() string {
	return s.dir
}

// Get reads the value stored under key. A missing key returns (nil, nil).
func (s *Store) Get(key string) ([]byte, error) {
	path, err := s.path(key)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return data, nil
}

// Set writes the full value under key. No batching, no debounce.
func (s *Store) Set(key string, data []byte) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.lastWrite[key] = sha256.Sum256(data)
	s.mu.Unlock()

	return os.WriteFile(path, data, 0o644)
}

// Remove deletes the value stored under key. Removing an absent key is a no-op.
func (s *Store) Remove(key string) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}

	s.mu.Lock()
	delete(s.lastWrite, key)
	s.mu.Unlock()

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Subscribe registers fn to run when key's file changes on disk with content
// this store did not write itself.
func (s *Store) Subscribe(key string, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs[key] = append(s.subs[key], fn)
}

// Close stops the change watcher.
func (s *Store) Close() error {
	var err error
	s.closeOnce.Do(func() {
		close(s.done)
		err = s.watcher.Close()
	})
	return err
}

func (s *Store) watchLoop() {
	for {
		select {
		case <-s.done:
			return
		case ev, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			name := filepath.Base(ev.Name)
			if !strings.HasSuffix(name, ".json") {
				continue
			}
			s.dispatch(strings.TrimSuffix(name, ".json"))
		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("⚠️  Storage watcher error: %v", err)
		}
	}
}

// dispatch notifies subscribers of key unless the current file content is the
// content this store wrote last. A single Set can surface as several
// filesystem events, so suppression compares content rather than counting.
func (s *Store) dispatch(key string) {
	s.mu.Lock()
	subs := append([]func(){}, s.subs[key]...)
	last, tracked := s.lastWrite[key]
	s.mu.Unlock()

	if len(subs) == 0 {
		return
	}

	if tracked {
		data, err := s.Get(key)
		if err == nil && data != nil && sha256.Sum256(data) == last {
			return
		}
	}

	for _, fn := range subs {
		fn()
	}
}

// path maps a key to its backing file, rejecting anything that could escape
// the data directory.
func (s *Store) path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || strings.Contains(key, "..") {
		return "", fmt.Errorf("invalid storage key: %q", key)
	}
	return filepath.Join(s.dir, key+".json"), nil
}
