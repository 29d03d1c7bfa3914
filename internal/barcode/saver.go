package barcode

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jzupan/go-card-wallet/internal/logger"
)

// Saver writes generated barcode images into the app-private pictures
// directory. File names are content-addressed by card id: every save purges
// older `{cardID}*.png` files first, so at most one image per card is live.
type Saver struct {
	dir string
	log *logger.Logger
}

func NewSaver(dir string, log *logger.Logger) *Saver {
	return &Saver{dir: dir, log: log}
}

// Dir returns the pictures directory the saver writes into.
func (s *Saver) Dir() string {
	return s.dir
}

// Save writes img as `{cardID}_{hexTimestamp}.png` and returns the absolute
// path. The timestamp keeps the path unique so image caches keyed by path
// never serve a stale render. Any failure removes the partial file and
// returns an error the caller surfaces as "generation failed".
func (s *Saver) Save(img image.Image, cardID string) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		s.log.Error().Err(err).Str("dir", s.dir).Msg("pictures directory unavailable")
		return "", fmt.Errorf("create pictures dir: %w", err)
	}

	s.purgeStale(cardID)

	name := fmt.Sprintf("%s_%x.png", cardID, time.Now().UnixMilli())
	path := filepath.Join(s.dir, name)

	f, err := os.Create(path)
	if err != nil {
		s.log.Error().Err(err).Str("path", path).Msg("failed to create image file")
		return "", fmt.Errorf("create image file: %w", err)
	}

	if err = png.Encode(f, img); err != nil {
		f.Close()
		os.Remove(path)
		s.log.Error().Err(err).Str("path", path).Msg("failed to encode image file")
		return "", fmt.Errorf("encode image file: %w", err)
	}
	if err = f.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("close image file: %w", err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return path, nil
	}
	return abs, nil
}

// purgeStale deletes every previous image of the card. Best effort: a file
// that refuses to go away is logged and skipped.
func (s *Saver) purgeStale(cardID string) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return
	}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, cardID) || !strings.HasSuffix(name, ".png") {
			continue
		}
		if err = os.Remove(filepath.Join(s.dir, name)); err != nil {
			s.log.Warn().Err(err).Str("file", name).Msg("failed to purge stale image")
		}
	}
}
