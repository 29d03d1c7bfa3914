// Package store persists the user's card collection as one serialized JSON
// blob under a single named key, the same shape the mobile preference store
// used. All mutations serialize on an internal mutex (single-writer policy)
// and rewrite the whole blob atomically.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/jzupan/go-card-wallet/internal/logger"
	"github.com/jzupan/go-card-wallet/models"
)

const cardsKey = "cards_list_json"

// Snapshot is one observed state of the collection. Corrupt distinguishes
// "empty because there is no data" from "empty because the persisted blob
// failed to decode" — the decode failure itself is never fatal.
type Snapshot struct {
	Cards   []models.Card
	Corrupt bool
}

type persistedState map[string][]models.Card

// CardStore is the file-backed CardStorage implementation.
type CardStore struct {
	path string
	log  *logger.Logger

	mu      sync.RWMutex
	cards   []models.Card
	corrupt bool

	watchMu   sync.Mutex
	watchers  map[int]chan Snapshot
	nextWatch int
}

// NewCardStore loads the collection from path. A missing file starts an
// empty collection; an unreadable or undecodable file also starts empty but
// flags the snapshots as corrupt.
func NewCardStore(path string, log *logger.Logger) (*CardStore, error) {
	if path == "" {
		return nil, fmt.Errorf("card store: empty storage path")
	}

	s := &CardStore{
		path:     path,
		log:      log,
		watchers: make(map[int]chan Snapshot),
	}
	s.load()
	return s, nil
}

func (s *CardStore) load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn().Err(err).Str("path", s.path).Msg("failed to read card collection, starting empty")
			s.corrupt = true
		}
		return
	}

	var state persistedState
	if err = json.Unmarshal(data, &state); err != nil {
		s.log.Warn().Err(err).Str("path", s.path).Msg("failed to decode card collection, starting empty")
		s.corrupt = true
		return
	}

	s.cards = state[cardsKey]
}

// List implements CardStorage.
func (s *CardStore) List() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// snapshotLocked copies the collection so callers never alias store memory.
func (s *CardStore) snapshotLocked() Snapshot {
	cards := make([]models.Card, len(s.cards))
	copy(cards, s.cards)
	return Snapshot{Cards: cards, Corrupt: s.corrupt}
}

// Watch implements CardStorage.
func (s *CardStore) Watch(ctx context.Context) <-chan Snapshot {
	ch := make(chan Snapshot, 1)

	s.watchMu.Lock()
	id := s.nextWatch
	s.nextWatch++
	s.watchers[id] = ch
	s.watchMu.Unlock()

	ch <- s.List()

	go func() {
		<-ctx.Done()
		s.watchMu.Lock()
		delete(s.watchers, id)
		s.watchMu.Unlock()
	}()

	return ch
}

func (s *CardStore) notify(snap Snapshot) {
	s.watchMu.Lock()
	defer s.watchMu.Unlock()

	for _, ch := range s.watchers {
		// coalesce: drop the stale snapshot if the receiver is behind
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- snap:
		default:
		}
	}
}

// Upsert implements CardStorage.
func (s *CardStore) Upsert(ctx context.Context, card models.Card) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	replaced := false
	for i := range s.cards {
		if s.cards[i].ID == card.ID {
			s.cards[i] = card
			replaced = true
			break
		}
	}
	if !replaced {
		s.cards = append(s.cards, card)
	}

	if err := s.persistLocked(ctx); err != nil {
		return err
	}

	s.notify(s.snapshotLocked())
	return nil
}

// DeleteByID implements CardStorage. A missing id is a logged no-op. An
// image file that refuses to unlink does not fail the delete.
func (s *CardStore) DeleteByID(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.cards {
		if s.cards[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.log.Debug().Str("card_id", id).Msg("card not found for deletion")
		return nil
	}

	picture := s.cards[idx].Picture
	s.cards = append(s.cards[:idx], s.cards[idx+1:]...)

	if err := s.persistLocked(ctx); err != nil {
		return err
	}

	if picture != "" {
		if err := os.Remove(picture); err != nil && !os.IsNotExist(err) {
			s.log.Warn().Err(err).Str("card_id", id).Str("picture", picture).
				Msg("failed to remove card image file")
		}
	}

	s.notify(s.snapshotLocked())
	return nil
}

// OverwriteAll implements CardStorage.
func (s *CardStore) OverwriteAll(ctx context.Context, cards []models.Card) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cards = make([]models.Card, len(cards))
	copy(s.cards, cards)

	if err := s.persistLocked(ctx); err != nil {
		return err
	}

	s.notify(s.snapshotLocked())
	return nil
}

// persistLocked rewrites the whole collection as one blob. Write-to-temp
// plus rename keeps the stored file whole even if the process dies mid-write.
// A successful persist clears the corrupt flag: the blob on disk is valid
// again.
func (s *CardStore) persistLocked(ctx context.Context) error {
	log := logger.FromContext(ctx)

	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Err(err).Str("path", s.path).Msg("failed to create card store dir")
			return fmt.Errorf("create card store dir: %w", err)
		}
	}

	payload, err := json.MarshalIndent(persistedState{cardsKey: s.cards}, "", "  ")
	if err != nil {
		log.Err(err).Msg("failed to encode card collection")
		return fmt.Errorf("encode card collection: %w", err)
	}

	tmp := s.path + ".tmp"
	if err = os.WriteFile(tmp, payload, 0o600); err != nil {
		log.Err(err).Str("path", tmp).Msg("failed to write card collection")
		return fmt.Errorf("write card collection: %w", err)
	}
	if err = os.Rename(tmp, s.path); err != nil {
		log.Err(err).Str("path", s.path).Msg("failed to replace card collection file")
		return fmt.Errorf("replace card collection file: %w", err)
	}

	s.corrupt = false
	return nil
}
