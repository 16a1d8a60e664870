package service

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Generate(restaurantID string) ([]byte, error)
}

// ListingQRGenerator renders a QR code pointing at a restaurant's public
// listing page.
type ListingQRGenerator struct {
	BaseURL string
}

func (g ListingQRGenerator) Generate(restaurantID string) ([]byte, error) {
	qrData := fmt.Sprintf("%s/restaurants/%s", g.BaseURL, restaurantID)
	return qrcode.Encode(qrData, qrcode.Medium, 256)
}
