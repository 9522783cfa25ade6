package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateOrderID creates a human-readable production order ID.
// Format: order-{productID}-{8charHexUUID}
//
// Example:
//   - Input: productID="widget"
//   - Output: "order-widget-a3f8e2b1"
func GenerateOrderID(productID string) string {
	if productID == "" {
		productID = "unknown"
	}
	return "order-" + productID + "-" + generateShortUUID()
}

// generateShortUUID creates an 8-character hex string from a UUID.
func generateShortUUID() string {
	id := uuid.New()
	// Remove hyphens and take first 8 characters
	return strings.ReplaceAll(id.String(), "-", "")[:8]
}
