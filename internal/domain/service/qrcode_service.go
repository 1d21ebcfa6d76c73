package service

// QRCodeService defines the interface for order tracking QR codes
type QRCodeService interface {
	// GenerateOrderQR renders a PNG QR code pointing at the order tracking page
	GenerateOrderQR(orderID string) ([]byte, error)

	// ParseOrderQR extracts the order ID from scanned QR payload
	ParseOrderQR(qrData string) (string, error)
}
