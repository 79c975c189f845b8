// Package branding centralizes the presentation constants stamped into
// generated artifacts, so pages and barcodes stay consistent without
// per-call configuration.
package branding

import "image/color"

const (
	// AppName is the product name.
	AppName = "Guest Pages"

	// MessagingService is the chat service guests are linked to.
	MessagingService = "WhatsApp"

	// MessagingDomain hosts per-phone chat links (https://<domain>/<phone>).
	MessagingDomain = "wa.me"

	// StylesheetURL is the CDN stylesheet referenced by generated pages.
	StylesheetURL = "https://cdn.jsdelivr.net/npm/bootstrap@5.3.0/dist/css/bootstrap.min.css"
)

var (
	// BarcodeForeground is the brand teal (#128C7E).
	BarcodeForeground = color.RGBA{R: 0x12, G: 0x8C, B: 0x7E, A: 0xFF}

	// BarcodeBackground is plain white. Barcode scanners need the light
	// background; only the foreground carries the brand color.
	BarcodeBackground = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)
