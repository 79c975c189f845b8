// Package generator produces the per-guest artifact set: a QR image, a
// landing page, and the public-link rows for the result table.
package generator

import (
	"context"
	"fmt"
	"html/template"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	apperrors "github.com/eventtools/guestpages/internal/errors"
	"github.com/eventtools/guestpages/internal/export"
	"github.com/eventtools/guestpages/internal/guest"
	"github.com/eventtools/guestpages/internal/page"
	"github.com/eventtools/guestpages/internal/platform/branding"
	"github.com/eventtools/guestpages/internal/qrimage"
)

// ImagesDirName is the directory under the output root that holds QR
// images. Pages reference images through this name, so it is part of the
// published layout rather than a tunable.
const ImagesDirName = "qr"

// Config holds configuration for the generator.
type Config struct {
	OutputDir string
	// BaseURL is the public location the output root is published under.
	// Result rows resolve page filenames against it.
	BaseURL string
	QR      qrimage.Options
	Verbose bool
}

// DefaultConfig returns a Config with the product presentation defaults.
func DefaultConfig() Config {
	qr := qrimage.DefaultOptions()
	qr.Foreground = branding.BarcodeForeground
	qr.Background = branding.BarcodeBackground
	return Config{
		OutputDir: "output/guest_pages",
		BaseURL:   "https://eventtools.github.io/qr/",
		QR:        qr,
	}
}

// Generator renders every guest's artifacts into the output directory.
type Generator struct {
	config Config
	base   *url.URL
}

// New validates cfg and returns a Generator.
func New(cfg Config) (*Generator, error) {
	cfg.BaseURL = strings.TrimSpace(cfg.BaseURL)
	if cfg.BaseURL == "" {
		return nil, apperrors.New(apperrors.CodeGeneratorInvalidBaseURL, "base url is required")
	}
	base, err := url.Parse(cfg.BaseURL)
	if err != nil || !base.IsAbs() {
		return nil, apperrors.WrapWithMetadata(apperrors.CodeGeneratorInvalidBaseURL,
			fmt.Sprintf("base url %q is not an absolute url", cfg.BaseURL),
			map[string]string{"URL": cfg.BaseURL}, err)
	}
	return &Generator{config: cfg, base: base}, nil
}

// ImageFilename returns the QR image name for a guest position.
func ImageFilename(guestID int) string {
	return fmt.Sprintf("guest_%d.png", guestID)
}

// PageFilename returns the landing page name for a guest position.
func PageFilename(guestID int) string {
	return fmt.Sprintf("guest_%d.html", guestID)
}

// Run generates artifacts for every guest in roster order and returns the
// result rows. The first failure aborts the run; files already written stay
// in place, but no rows are returned for a failed run.
func (g *Generator) Run(ctx context.Context, guests []guest.Guest) ([]export.Row, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	imagesDir := filepath.Join(g.config.OutputDir, ImagesDirName)
	if err := os.MkdirAll(imagesDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directories: %w", err)
	}

	rows := make([]export.Row, 0, len(guests))
	for i, record := range guests {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		row, err := g.generateGuest(record, i+1)
		if err != nil {
			return nil, fmt.Errorf("generate guest %d: %w", i+1, err)
		}
		rows = append(rows, row)
	}

	if g.config.Verbose {
		fmt.Fprintf(os.Stderr, "Generation complete: %d guest page(s)\n", len(rows))
	}
	return rows, nil
}

// generateGuest writes one guest's image and page and returns their row.
func (g *Generator) generateGuest(record guest.Guest, guestID int) (export.Row, error) {
	normalized, err := guest.Normalize(record)
	if err != nil {
		return export.Row{}, err
	}

	imagePath := filepath.Join(g.config.OutputDir, ImagesDirName, ImageFilename(guestID))
	if err := qrimage.WriteFile(imagePath, qrPayload(guestID, normalized), g.config.QR); err != nil {
		return export.Row{}, err
	}

	view := page.View{
		Name:          normalized.Name,
		GuestID:       guestID,
		ImagePath:     path.Join(ImagesDirName, ImageFilename(guestID)),
		PhoneDisplay:  normalized.Phone,
		DialURL:       template.URL(guest.DialURL(normalized.Phone)),
		ChatURL:       guest.ChatURL(normalized.Phone),
		ChatService:   branding.MessagingService,
		StylesheetURL: branding.StylesheetURL,
	}
	if err := page.WriteFile(filepath.Join(g.config.OutputDir, PageFilename(guestID)), view); err != nil {
		return export.Row{}, err
	}

	if g.config.Verbose {
		fmt.Fprintf(os.Stderr, "  Generated %s for %s\n", PageFilename(guestID), normalized.Name)
	}

	return export.Row{
		Phone:      normalized.Phone,
		Name:       normalized.Name,
		PublicLink: g.publicLink(PageFilename(guestID)),
	}, nil
}

// qrPayload is the four-line text embedded in each QR code. Scanners show
// it as plain text, so the roster phone stays readable while the chat link
// uses the dialable form.
func qrPayload(guestID int, g guest.Guest) string {
	lines := []string{
		fmt.Sprintf("Guest ID: %d", guestID),
		fmt.Sprintf("Name: %s", g.Name),
		fmt.Sprintf("Phone: %s", g.Phone),
		fmt.Sprintf("%s: %s", branding.MessagingService, guest.ChatURL(g.Phone)),
	}
	return strings.Join(lines, "\n")
}

// publicLink resolves name against the configured base URL, matching how
// the published pages are addressed.
func (g *Generator) publicLink(name string) string {
	ref := &url.URL{Path: name}
	return g.base.ResolveReference(ref).String()
}
