package sync

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jzupan/go-card-wallet/models"
)

// MergeFromFile reads a JSON card array from path and upserts every card into
// the local collection. Runs in the background; the outcome arrives on Events.
func (o *Orchestrator) MergeFromFile(ctx context.Context, path string) {
	go func() {
		cards, err := readCardFile(path)
		if err != nil {
			o.emit(fmt.Sprintf("import failed: %v", err))
			return
		}
		for _, card := range cards {
			if err := o.cards.Upsert(ctx, card); err != nil {
				o.emit(fmt.Sprintf("import failed: %v", err))
				return
			}
		}
		o.emit(fmt.Sprintf("merged %d cards from %s", len(cards), filepath.Base(path)))
	}()
}

// OverwriteFromFile replaces the whole local collection with the JSON card
// array at path. Runs in the background; the outcome arrives on Events.
func (o *Orchestrator) OverwriteFromFile(ctx context.Context, path string) {
	go func() {
		cards, err := readCardFile(path)
		if err != nil {
			o.emit(fmt.Sprintf("import failed: %v", err))
			return
		}
		if err := o.cards.OverwriteAll(ctx, cards); err != nil {
			o.emit(fmt.Sprintf("import failed: %v", err))
			return
		}
		o.emit(fmt.Sprintf("replaced collection with %d cards from %s", len(cards), filepath.Base(path)))
	}()
}

// ExportToFile writes the current collection to path as an indented JSON card
// array. Runs in the background; the outcome arrives on Events.
func (o *Orchestrator) ExportToFile(_ context.Context, path string) {
	go func() {
		cards := o.cards.List().Cards
		data, err := json.MarshalIndent(cards, "", "  ")
		if err != nil {
			o.emit(fmt.Sprintf("export failed: %v", err))
			return
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			o.emit(fmt.Sprintf("export failed: %v", err))
			return
		}
		o.emit(fmt.Sprintf("exported %d cards to %s", len(cards), filepath.Base(path)))
	}()
}

func readCardFile(path string) ([]models.Card, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cards []models.Card
	if err := json.Unmarshal(data, &cards); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}
	return cards, nil
}
