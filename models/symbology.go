package models

// Symbology is the barcode format of a card, persisted as an integer code.
// The values mirror the scanner library constants the collection was
// originally recorded with, so stored cards keep decoding to the same format.
type Symbology int

const (
	Code128    Symbology = 1
	Code39     Symbology = 2
	Code93     Symbology = 4
	Codabar    Symbology = 8
	DataMatrix Symbology = 16
	EAN13      Symbology = 32
	EAN8       Symbology = 64
	ITF        Symbology = 128
	QRCode     Symbology = 256
	PDF417     Symbology = 2048
	Aztec      Symbology = 4096
)

// Matrix reports whether the symbology is a 2-D matrix code, which renders
// on a square canvas instead of the wide 1-D strip.
func (s Symbology) Matrix() bool {
	switch s {
	case QRCode, DataMatrix, Aztec, PDF417:
		return true
	}
	return false
}

// String returns the human-readable symbology name for display and logging.
func (s Symbology) String() string {
	switch s {
	case Code128:
		return "CODE 128"
	case Code39:
		return "CODE 39"
	case Code93:
		return "CODE 93"
	case Codabar:
		return "CODABAR"
	case DataMatrix:
		return "DATA MATRIX"
	case EAN13:
		return "EAN-13"
	case EAN8:
		return "EAN-8"
	case ITF:
		return "ITF"
	case QRCode:
		return "QR"
	case PDF417:
		return "PDF 417"
	case Aztec:
		return "AZTEC"
	}
	return "UNKNOWN"
}
