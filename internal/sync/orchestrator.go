package sync

import (
	"context"
	"errors"

	"github.com/jzupan/go-card-wallet/internal/logger"
	"github.com/jzupan/go-card-wallet/internal/store"
	"github.com/jzupan/go-card-wallet/models"
)

var ErrNotLoggedIn = errors.New("sync requires a logged-in account")

// AccountSession is the slice of the account session the orchestrator needs:
// the remote card list cached on the user record and the upload call.
type AccountSession interface {
	User() *models.User
	SyncCards(ctx context.Context, cards []models.Card) error
}

// ImageRegenerator queues a card for background barcode re-rendering.
type ImageRegenerator interface {
	Enqueue(card models.Card) bool
}

// Orchestrator moves the card collection between the local store, the remote
// account and JSON files on disk. Files operations run in the background and
// report through Events; the store and the session stay the single owners of
// their respective state.
type Orchestrator struct {
	cards   store.CardStorage
	session AccountSession
	regen   ImageRegenerator
	log     *logger.Logger
	events  chan string
}

func NewOrchestrator(cards store.CardStorage, session AccountSession, regen ImageRegenerator, log *logger.Logger) *Orchestrator {
	return &Orchestrator{
		cards:   cards,
		session: session,
		regen:   regen,
		log:     log,
		events:  make(chan string, 8),
	}
}

// Events delivers one outcome message per finished background operation.
func (o *Orchestrator) Events() <-chan string {
	return o.events
}

// ComputeDivergence splits two card lists into the cards only the first list
// has and the cards only the second list has. Identity is the card id; field
// differences between same-id cards are not divergence.
func ComputeDivergence(local, remote []models.Card) (localOnly, remoteOnly []models.Card) {
	remoteIDs := make(map[string]struct{}, len(remote))
	for _, c := range remote {
		remoteIDs[c.ID] = struct{}{}
	}
	localIDs := make(map[string]struct{}, len(local))
	for _, c := range local {
		localIDs[c.ID] = struct{}{}
	}

	for _, c := range local {
		if _, ok := remoteIDs[c.ID]; !ok {
			localOnly = append(localOnly, c)
		}
	}
	for _, c := range remote {
		if _, ok := localIDs[c.ID]; !ok {
			remoteOnly = append(remoteOnly, c)
		}
	}
	return localOnly, remoteOnly
}

// Divergence compares the current local snapshot against the remote list
// cached on the logged-in user.
func (o *Orchestrator) Divergence() (localOnly, remoteOnly []models.Card, err error) {
	remote, err := o.remoteCards()
	if err != nil {
		return nil, nil, err
	}
	localOnly, remoteOnly = ComputeDivergence(o.cards.List().Cards, remote)
	return localOnly, remoteOnly, nil
}

// PushLocalToServer uploads the union of the remote list and the local-only
// cards as the new authoritative remote collection. Remote cards keep their
// position; local-only cards are appended.
func (o *Orchestrator) PushLocalToServer(ctx context.Context) error {
	remote, err := o.remoteCards()
	if err != nil {
		return err
	}

	localOnly, _ := ComputeDivergence(o.cards.List().Cards, remote)
	merged := make([]models.Card, 0, len(remote)+len(localOnly))
	merged = append(merged, remote...)
	merged = append(merged, localOnly...)

	if err := o.session.SyncCards(ctx, merged); err != nil {
		return err
	}
	o.log.Info().Int("total", len(merged)).Int("pushed", len(localOnly)).Msg("local cards pushed to server")
	return nil
}

// PullServerToLocal replaces the local collection with the remote list.
func (o *Orchestrator) PullServerToLocal(ctx context.Context) error {
	remote, err := o.remoteCards()
	if err != nil {
		return err
	}
	if err := o.cards.OverwriteAll(ctx, remote); err != nil {
		return err
	}
	o.log.Info().Int("total", len(remote)).Msg("local cards overwritten from server")
	return nil
}

// RegenerateImage schedules a fresh barcode image for the card. The heavy
// work happens on the regeneration worker; dropping the request when the
// queue is full is fine because the next render retries.
func (o *Orchestrator) RegenerateImage(card models.Card) {
	o.regen.Enqueue(card)
}

func (o *Orchestrator) remoteCards() ([]models.Card, error) {
	user := o.session.User()
	if user == nil {
		return nil, ErrNotLoggedIn
	}
	return user.Cards, nil
}

func (o *Orchestrator) emit(msg string) {
	select {
	case o.events <- msg:
	default:
		o.log.Warn().Str("event", msg).Msg("event channel full, dropping message")
	}
}
