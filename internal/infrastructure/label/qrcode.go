package label

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

type QRLabelGenerator struct{}

func NewQRLabelGenerator() *QRLabelGenerator {
	return &QRLabelGenerator{}
}

// GeneratePNG encodes content into a QR code PNG. Medium error
// correction survives the wear a label takes in a kitchen.
func (g *QRLabelGenerator) GeneratePNG(content string, size int) ([]byte, error) {
	png, err := qrcode.Encode(content, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("failed to encode label: %w", err)
	}
	return png, nil
}
