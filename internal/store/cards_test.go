package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jzupan/go-card-wallet/internal/logger"
	"github.com/jzupan/go-card-wallet/models"
)

func newTestStore(t *testing.T) *CardStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cards.json")
	s, err := NewCardStore(path, logger.Nop())
	require.NoError(t, err)
	return s
}

func testCard(id, number string) models.Card {
	return models.Card{
		ID:     id,
		Number: number,
		Name:   "holder",
		Label:  "spar",
		Code:   models.Code128,
		Color:  "#FFFFFF",
	}
}

func TestCardStore_UpsertAppends(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Upsert(ctx, testCard("a", "111")))
	require.NoError(t, s.Upsert(ctx, testCard("b", "222")))

	snap := s.List()
	require.Len(t, snap.Cards, 2)
	assert.Equal(t, "a", snap.Cards[0].ID)
	assert.Equal(t, "b", snap.Cards[1].ID)
	assert.False(t, snap.Corrupt)
}

func TestCardStore_UpsertSameIDReplacesInPlace(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Upsert(ctx, testCard("a", "111")))
	require.NoError(t, s.Upsert(ctx, testCard("b", "222")))

	updated := testCard("a", "999")
	require.NoError(t, s.Upsert(ctx, updated))

	snap := s.List()
	require.Len(t, snap.Cards, 2)
	// same list position, latest field values
	assert.Equal(t, "a", snap.Cards[0].ID)
	assert.Equal(t, "999", snap.Cards[0].Number)
}

func TestCardStore_UpsertIdempotent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	card := testCard("a", "111")
	require.NoError(t, s.Upsert(ctx, card))
	require.NoError(t, s.Upsert(ctx, card))

	snap := s.List()
	require.Len(t, snap.Cards, 1)
	assert.Equal(t, card, snap.Cards[0])
}

func TestCardStore_DeleteByID(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	imgPath := filepath.Join(t.TempDir(), "a_1f.png")
	require.NoError(t, os.WriteFile(imgPath, []byte("png"), 0o600))

	card := testCard("a", "111")
	card.Picture = imgPath
	require.NoError(t, s.Upsert(ctx, card))
	require.NoError(t, s.Upsert(ctx, testCard("b", "222")))

	require.NoError(t, s.DeleteByID(ctx, "a"))

	snap := s.List()
	require.Len(t, snap.Cards, 1)
	assert.Equal(t, "b", snap.Cards[0].ID)

	_, err := os.Stat(imgPath)
	assert.True(t, os.IsNotExist(err), "image file should be removed with the card")
}

func TestCardStore_DeleteByID_MissingIsNoop(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Upsert(ctx, testCard("a", "111")))
	require.NoError(t, s.DeleteByID(ctx, "nope"))

	assert.Len(t, s.List().Cards, 1)
}

func TestCardStore_OverwriteAll(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Upsert(ctx, testCard("a", "111")))

	replacement := []models.Card{testCard("b", "222"), testCard("c", "333")}
	require.NoError(t, s.OverwriteAll(ctx, replacement))

	snap := s.List()
	require.Len(t, snap.Cards, 2)
	assert.Equal(t, "b", snap.Cards[0].ID)
	assert.Equal(t, "c", snap.Cards[1].ID)
}

func TestCardStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cards.json")
	ctx := context.Background()

	s, err := NewCardStore(path, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, s.Upsert(ctx, testCard("a", "111")))
	require.NoError(t, s.Upsert(ctx, testCard("b", "222")))

	reopened, err := NewCardStore(path, logger.Nop())
	require.NoError(t, err)

	snap := reopened.List()
	require.Len(t, snap.Cards, 2)
	assert.Equal(t, "a", snap.Cards[0].ID)
	assert.False(t, snap.Corrupt)
}

func TestCardStore_CorruptBlobStartsEmptyAndFlagged(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cards.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	s, err := NewCardStore(path, logger.Nop())
	require.NoError(t, err, "corrupt data must not be fatal")

	snap := s.List()
	assert.Empty(t, snap.Cards)
	assert.True(t, snap.Corrupt)
}

func TestCardStore_CorruptFlagClearsAfterWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cards.json")
	require.NoError(t, os.WriteFile(path, []byte("garbage"), 0o600))

	s, err := NewCardStore(path, logger.Nop())
	require.NoError(t, err)
	require.True(t, s.List().Corrupt)

	require.NoError(t, s.Upsert(context.Background(), testCard("a", "111")))
	assert.False(t, s.List().Corrupt)
}

func TestCardStore_WatchDeliversInitialAndUpdates(t *testing.T) {
	s := newTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := s.Watch(ctx)

	select {
	case snap := <-ch:
		assert.Empty(t, snap.Cards)
	case <-time.After(time.Second):
		t.Fatal("no initial snapshot delivered")
	}

	require.NoError(t, s.Upsert(ctx, testCard("a", "111")))

	select {
	case snap := <-ch:
		require.Len(t, snap.Cards, 1)
		assert.Equal(t, "a", snap.Cards[0].ID)
	case <-time.After(time.Second):
		t.Fatal("no snapshot after mutation")
	}
}

func TestCardStore_WatchCoalescesWhenBehind(t *testing.T) {
	s := newTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := s.Watch(ctx)
	ctxBg := context.Background()

	// receiver is not reading; every mutation replaces the pending snapshot
	require.NoError(t, s.Upsert(ctxBg, testCard("a", "111")))
	require.NoError(t, s.Upsert(ctxBg, testCard("b", "222")))
	require.NoError(t, s.Upsert(ctxBg, testCard("c", "333")))

	snap := <-ch
	assert.Len(t, snap.Cards, 3, "pending snapshot should be the latest one")
}
