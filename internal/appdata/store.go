package appdata

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/ruminaider/cardbook/internal/cards"
)

// Keys under which the store publishes card data.
const (
	KeyCards    = "cards"
	KeyCardSets = "cardSets"
)

// Snapshot is a consistent view of the card data at one version. Cards or
// Sets is nil while that part has not been loaded.
type Snapshot struct {
	Cards   []cards.Card
	Sets    []cards.SetDef
	Version uint64
	Updated time.Time
}

// Store is an observable, keyed value store for the account's card data.
// It is safe for concurrent use.
type Store struct {
	path   string
	logger *slog.Logger

	mu      sync.RWMutex
	values  map[string]any
	version uint64
	updated time.Time
	subs    map[int]chan struct{}
	nextSub int
}

// New creates an empty store backed by path. Nothing is read until Reload.
func New(path string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Store{
		path:   path,
		logger: logger,
		values: make(map[string]any),
		subs:   make(map[int]chan struct{}),
	}
}

// Open creates a store for path and loads it.
func Open(path string, logger *slog.Logger) (*Store, error) {
	s := New(path, logger)
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Path returns the backing data file.
func (s *Store) Path() string {
	return s.path
}

// Get returns the value stored under key.
func (s *Store) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

// Set stores values under their keys as one update and notifies
// subscribers.
func (s *Store) Set(values map[string]any) {
	s.mu.Lock()
	for k, v := range values {
		s.values[k] = v
	}
	s.version++
	s.updated = time.Now()
	s.notifyLocked()
	s.mu.Unlock()
}

// Snapshot returns the current card data.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{Version: s.version, Updated: s.updated}
	if v, ok := s.values[KeyCards].([]cards.Card); ok {
		snap.Cards = v
	}
	if v, ok := s.values[KeyCardSets].([]cards.SetDef); ok {
		snap.Sets = v
	}
	return snap
}

// Subscribe returns a channel that receives a value after every update, and
// a func that stops the subscription. Notifications coalesce: a slow reader
// sees at least one signal after the latest update, not one per update.
func (s *Store) Subscribe() (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)

	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = ch
	s.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
			close(ch)
		})
	}
}

func (s *Store) notifyLocked() {
	for _, ch := range s.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// Reload reads the data file and publishes its contents. On error the
// previous data is kept.
func (s *Store) Reload() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("reading card data: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return err
	}

	sets := f.Sets
	if sets == nil {
		sets = []cards.SetDef{}
	}
	s.Set(map[string]any{
		KeyCards:    f.OwnedCards(),
		KeyCardSets: sets,
	})
	s.logger.Debug("card data loaded",
		slog.String("path", s.path),
		slog.Int("cards", len(f.Cards)),
		slog.Int("sets", len(sets)))
	return nil
}

// Watch reloads the store whenever the data file is written or replaced,
// until ctx is done. The parent directory is watched so editors that save by
// renaming a temp file are picked up. Failed reloads are logged and the
// previous data stays published.
func (s *Store) Watch(ctx context.Context) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer w.Close()

	target := filepath.Clean(s.path)
	if err := w.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(target), err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if err := s.Reload(); err != nil {
				s.logger.Warn("reloading card data", slog.String("path", s.path), slog.Any("error", err))
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			s.logger.Warn("watching card data", slog.Any("error", err))
		}
	}
}
