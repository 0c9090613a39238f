package service

// QRCodeService renders links as QR code images.
type QRCodeService interface {
	// GenerateLinkQR encodes url as a PNG QR code.
	GenerateLinkQR(url string) ([]byte, error)
}
