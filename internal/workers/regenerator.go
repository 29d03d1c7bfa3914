package workers

import (
	"context"
	"os"
	"sync"

	"github.com/rs/zerolog"

	"github.com/jzupan/go-card-wallet/internal/barcode"
	"github.com/jzupan/go-card-wallet/internal/logger"
	"github.com/jzupan/go-card-wallet/internal/store"
	"github.com/jzupan/go-card-wallet/models"
)

const defaultQueueSize = 16

// Regenerator rebuilds card barcode images off the UI path. Cards are queued
// with Enqueue; a single background goroutine renders, saves, and writes the
// new image path back to the store. Only the image path is updated: the card
// is re-resolved against the latest snapshot right before the upsert so other
// edits made while rendering are never clobbered.
type Regenerator struct {
	generator *barcode.Generator
	saver     *barcode.Saver
	cards     store.CardStorage
	log       *logger.Logger

	queue chan models.Card
	stop  chan struct{}
	wg    sync.WaitGroup

	startOnce sync.Once
	stopOnce  sync.Once
}

func NewRegenerator(generator *barcode.Generator, saver *barcode.Saver, cards store.CardStorage, log *logger.Logger) *Regenerator {
	return &Regenerator{
		generator: generator,
		saver:     saver,
		cards:     cards,
		log:       log,
		queue:     make(chan models.Card, defaultQueueSize),
		stop:      make(chan struct{}),
	}
}

// Start launches the worker goroutine. Safe to call once; subsequent calls
// are no-ops.
func (r *Regenerator) Start(ctx context.Context) {
	r.startOnce.Do(func() {
		r.wg.Add(1)
		go r.run(ctx)
	})
}

// Stop shuts the worker down and waits for the in-flight card to finish.
func (r *Regenerator) Stop() {
	r.stopOnce.Do(func() {
		close(r.stop)
	})
	r.wg.Wait()
}

// Enqueue schedules a card for image regeneration. Returns false when the
// queue is full; the caller may simply retry on the next render.
func (r *Regenerator) Enqueue(card models.Card) bool {
	select {
	case r.queue <- card:
		return true
	default:
		r.log.Warn().Str("card_id", card.ID).Msg("regeneration queue full, dropping request")
		return false
	}
}

func (r *Regenerator) run(ctx context.Context) {
	defer r.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case <-r.stop:
			return
		case card := <-r.queue:
			r.process(ctx, card)
		}
	}
}

func (r *Regenerator) process(ctx context.Context, card models.Card) {
	log := r.log.GetChildLogger()
	log.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("card_id", card.ID)
	})

	img, err := r.generator.Generate(card.Number, card.Code)
	if err != nil {
		// Generate degrades to a blank canvas; save it anyway so the
		// card keeps a loadable placeholder image.
		log.Warn().Err(err).Msg("barcode render failed, saving blank image")
	}

	path, err := r.saver.Save(img, card.ID)
	if err != nil {
		log.Error().Err(err).Msg("saving regenerated image failed")
		return
	}

	latest, ok := findByID(r.cards.List().Cards, card.ID)
	if !ok {
		os.Remove(path)
		log.Info().Msg("card deleted during regeneration, removing its image")
		return
	}

	latest.Picture = path
	if err := r.cards.Upsert(ctx, latest); err != nil {
		log.Error().Err(err).Msg("persisting regenerated image path failed")
		return
	}
	log.Debug().Str("picture", path).Msg("card image regenerated")
}

func findByID(cards []models.Card, id string) (models.Card, bool) {
	for _, c := range cards {
		if c.ID == id {
			return c, true
		}
	}
	return models.Card{}, false
}
