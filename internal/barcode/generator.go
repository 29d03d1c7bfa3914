// Package barcode renders scannable barcode images for card payloads and
// manages their files on disk. Encoding is delegated to
// github.com/boombuler/barcode; this package only picks canvas geometry,
// rasterizes to black-on-white, and keeps at most one live image per card.
package barcode

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	bc "github.com/boombuler/barcode"

	"github.com/jzupan/go-card-wallet/internal/logger"
	"github.com/jzupan/go-card-wallet/models"
)

// Generator renders barcode rasters for card payloads.
type Generator struct {
	log *logger.Logger
}

func NewGenerator(log *logger.Logger) *Generator {
	return &Generator{log: log}
}

// Generate renders payload with the given symbology onto a white canvas.
// On encoder failure (payload incompatible with the symbology) it returns a
// blank canvas together with the error: callers keep the degraded image and
// decide whether the error becomes a validation message.
func (g *Generator) Generate(payload string, sym models.Symbology) (image.Image, error) {
	width, height := canvasSize(sym)

	canvas := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	code, err := encode(payload, sym)
	if err != nil {
		g.log.Warn().Err(err).Str("symbology", sym.String()).Msg("barcode encoding failed")
		return canvas, fmt.Errorf("encode %s barcode: %w", sym, err)
	}

	scaled, err := bc.Scale(code, width, height)
	if err != nil {
		g.log.Warn().Err(err).Str("symbology", sym.String()).Msg("barcode scaling failed")
		return canvas, fmt.Errorf("scale %s barcode: %w", sym, err)
	}

	draw.Draw(canvas, canvas.Bounds(), scaled, scaled.Bounds().Min, draw.Src)
	return canvas, nil
}
