package barcode

import (
	bc "github.com/boombuler/barcode"
	"github.com/boombuler/barcode/aztec"
	"github.com/boombuler/barcode/codabar"
	"github.com/boombuler/barcode/code128"
	"github.com/boombuler/barcode/code39"
	"github.com/boombuler/barcode/code93"
	"github.com/boombuler/barcode/datamatrix"
	"github.com/boombuler/barcode/ean"
	"github.com/boombuler/barcode/pdf417"
	"github.com/boombuler/barcode/qr"
	"github.com/boombuler/barcode/twooffive"

	"github.com/jzupan/go-card-wallet/models"
)

// Canvas dimensions by symbology class: square for 2-D matrix codes, wide
// strip for 1-D codes.
const (
	canvasWidth  = 1000
	matrixHeight = 1000
	linearHeight = 300
)

func canvasSize(sym models.Symbology) (width, height int) {
	if sym.Matrix() {
		return canvasWidth, matrixHeight
	}
	return canvasWidth, linearHeight
}

// encode renders the payload with the encoder matching the symbology.
// Unknown symbology codes fall back to CODE 128.
func encode(payload string, sym models.Symbology) (bc.Barcode, error) {
	switch sym {
	case models.Code39:
		return code39.Encode(payload, false, true)
	case models.Code93:
		return code93.Encode(payload, false, true)
	case models.Codabar:
		return codabar.Encode(payload)
	case models.DataMatrix:
		return datamatrix.Encode(payload)
	case models.EAN13, models.EAN8:
		return ean.Encode(payload)
	case models.ITF:
		return twooffive.Encode(payload, true)
	case models.QRCode:
		return qr.Encode(payload, qr.M, qr.Auto)
	case models.PDF417:
		return pdf417.Encode(payload, 4)
	case models.Aztec:
		return aztec.Encode([]byte(payload), 33, 0)
	case models.Code128:
		return code128.Encode(payload)
	default:
		return code128.Encode(payload)
	}
}
