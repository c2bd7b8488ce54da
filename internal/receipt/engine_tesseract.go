package receipt

import (
	"context"
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// TesseractEngine recognizes text in raster images through a local
// Tesseract installation. Each call uses its own client, so concurrent
// invocations do not contend.
type TesseractEngine struct {
	lang string
}

// NewTesseractEngine creates an engine with the given trained language,
// e.g. "por" for Brazilian Portuguese receipts.
func NewTesseractEngine(lang string) *TesseractEngine {
	return &TesseractEngine{lang: lang}
}

func (e *TesseractEngine) Recognize(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	client := gosseract.NewClient()
	defer client.Close()

	if e.lang != "" {
		if err := client.SetLanguage(e.lang); err != nil {
			return "", fmt.Errorf("failed to set OCR language: %w", err)
		}
	}

	if err := client.SetImage(path); err != nil {
		return "", fmt.Errorf("failed to load image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("tesseract recognition failed: %w", err)
	}

	return strings.TrimSpace(text), nil
}
