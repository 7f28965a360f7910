package qr

import (
	"github.com/skip2/go-qrcode"
)

const (
	defaultImageSize = 256
	maxImageSize     = 1024
)

// PNG renders a payload URL as a QR code PNG. Size is clamped to a sane
// range so a bad query parameter cannot ask for a huge image.
func PNG(payload string, size int) ([]byte, error) {
	if size <= 0 {
		size = defaultImageSize
	}
	if size > maxImageSize {
		size = maxImageSize
	}
	return qrcode.Encode(payload, qrcode.Medium, size)
}
