package qrcode

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"blinkbuy/config"
	"blinkbuy/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

const (
	defaultSize    = 256
	orderPathPart  = "orders"
	defaultBaseURL = "http://localhost:3000"
)

var orderIDPattern = regexp.MustCompile(`^BB\d{6}$`)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a new QR code service instance. The QR payload is
// the order tracking URL under baseURL.
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if size <= 0 {
		size = defaultSize
	}
	baseURL = strings.TrimRight(baseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              baseURL,
	}
}

// NewFromConfig builds the service from the qrcode config section
func NewFromConfig(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return NewQRCodeService(defaultSize, "M", defaultBaseURL)
	}

	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

// trackingURL is the page the QR code opens
func (s *qrcodeService) trackingURL(orderID string) string {
	return fmt.Sprintf("%s/%s/%s", s.baseURL, orderPathPart, url.PathEscape(orderID))
}

// GenerateOrderQR generates a PNG QR code for the order tracking page
func (s *qrcodeService) GenerateOrderQR(orderID string) ([]byte, error) {
	if !orderIDPattern.MatchString(orderID) {
		return nil, fmt.Errorf("invalid order ID: %q", orderID)
	}

	// Generate QR code
	qrCode, err := qrcode.New(s.trackingURL(orderID), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	// Generate PNG image
	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseOrderQR extracts the order ID from a scanned tracking URL
func (s *qrcodeService) ParseOrderQR(qrData string) (string, error) {
	prefix := s.baseURL + "/" + orderPathPart + "/"
	if !strings.HasPrefix(qrData, prefix) {
		return "", fmt.Errorf("not an order tracking URL: %q", qrData)
	}

	orderID, err := url.PathUnescape(strings.TrimPrefix(qrData, prefix))
	if err != nil {
		return "", fmt.Errorf("failed to unescape order ID: %w", err)
	}

	if !orderIDPattern.MatchString(orderID) {
		return "", fmt.Errorf("invalid order ID: %q", orderID)
	}

	return orderID, nil
}
