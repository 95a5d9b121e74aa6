// Package highscore persists the best score per board size in the user's
// data directory.
package highscore

import (
	"fmt"
	"log"
	"time"

	"github.com/plus3/blockfall/tetris"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const scoresObject = "scores"

// backend is the subset of *gdata.Manager the store needs.
type backend interface {
	ObjectPropExists(objectKey, propKey string) bool
	LoadObjectProp(objectKey, propKey string) ([]byte, error)
	SaveObjectProp(objectKey, propKey string, data []byte) error
}

// Entry is the saved record for one board size.
type Entry struct {
	Best       int       `yaml:"best"`
	Games      int       `yaml:"games"`
	LastPlayed time.Time `yaml:"lastPlayed"`
}

// Store reads and updates the Entry of one board size. It is not safe for
// concurrent use.
type Store struct {
	backend backend
	prop    string
	entry   Entry
}

// Open opens the gdata directory of appName.
func Open(appName string, width, height int) (*Store, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("failed to open save data for %q: %w", appName, err)
	}
	return NewStore(m, width, height)
}

// NewStore loads the entry for a width x height board from m. A nil manager
// gives a store that only lives in memory.
func NewStore(m *gdata.Manager, width, height int) (*Store, error) {
	if m == nil {
		return newStore(newMemoryBackend(), width, height)
	}
	return newStore(m, width, height)
}

// NewMemoryStore returns a store that is never written to disk.
func NewMemoryStore(width, height int) *Store {
	s, _ := newStore(newMemoryBackend(), width, height)
	return s
}

func newStore(b backend, width, height int) (*Store, error) {
	s := &Store{
		backend: b,
		prop:    fmt.Sprintf("%dx%d", width, height),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	if !s.backend.ObjectPropExists(scoresObject, s.prop) {
		return nil
	}

	data, err := s.backend.LoadObjectProp(scoresObject, s.prop)
	if err != nil {
		return fmt.Errorf("failed to load scores for %s: %w", s.prop, err)
	}

	var entry Entry
	if err := yaml.Unmarshal(data, &entry); err != nil {
		log.Printf("[highscore] Warning: discarding unreadable scores for %s: %v", s.prop, err)
		return nil
	}
	s.entry = entry
	return nil
}

func (s *Store) save() error {
	data, err := yaml.Marshal(s.entry)
	if err != nil {
		return fmt.Errorf("failed to encode scores: %w", err)
	}
	if err := s.backend.SaveObjectProp(scoresObject, s.prop, data); err != nil {
		return fmt.Errorf("failed to save scores for %s: %w", s.prop, err)
	}
	return nil
}

// Record counts a finished game played at the given time and reports whether
// score is a new best. The entry is updated in memory even when saving fails.
func (s *Store) Record(score int, at time.Time) (bool, error) {
	s.entry.Games++
	s.entry.LastPlayed = at

	best := score > s.entry.Best
	if best {
		s.entry.Best = score
	}

	if err := s.save(); err != nil {
		return best, err
	}
	if best {
		log.Printf("[highscore] new best for %s: %d", s.prop, score)
	}
	return best, nil
}

// Handle records the score of every finished game. It matches play.Handler.
func (s *Store) Handle(ev tetris.Event) {
	if ev.Kind != tetris.EventGameOver {
		return
	}
	if _, err := s.Record(ev.Score, time.Now()); err != nil {
		log.Printf("[highscore] Warning: %v", err)
	}
}

func (s *Store) Best() int {
	return s.entry.Best
}

func (s *Store) Entry() Entry {
	return s.entry
}

// Board returns the board size key, e.g. "10x20".
func (s *Store) Board() string {
	return s.prop
}

type memoryBackend struct {
	objects map[string][]byte
}

func newMemoryBackend() *memoryBackend {
	return &memoryBackend{objects: make(map[string][]byte)}
}

func (m *memoryBackend) key(objectKey, propKey string) string {
	return objectKey + "/" + propKey
}

func (m *memoryBackend) ObjectPropExists(objectKey, propKey string) bool {
	_, ok := m.objects[m.key(objectKey, propKey)]
	return ok
}

func (m *memoryBackend) LoadObjectProp(objectKey, propKey string) ([]byte, error) {
	data, ok := m.objects[m.key(objectKey, propKey)]
	if !ok {
		return nil, fmt.Errorf("%s/%s not found", objectKey, propKey)
	}
	return data, nil
}

func (m *memoryBackend) SaveObjectProp(objectKey, propKey string, data []byte) error {
	m.objects[m.key(objectKey, propKey)] = append([]byte(nil), data...)
	return nil
}
