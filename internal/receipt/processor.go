package receipt

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// ErrRecognitionFailed marks failures of the external recognition engine.
// Heuristic misses are not errors; only an engine that produced no text at
// all surfaces this.
var ErrRecognitionFailed = errors.New("recognition engine failed")

// Engine converts an image or document file into raw text.
type Engine interface {
	Recognize(ctx context.Context, path string) (string, error)
}

// Processor orchestrates preprocessing, recognition and extraction for a
// single receipt file. It is stateless; invocations are independent and may
// run concurrently.
type Processor struct {
	image  Engine
	pdf    Engine
	logger *zap.Logger
}

func NewProcessor(image, pdf Engine, logger *zap.Logger) *Processor {
	return &Processor{
		image:  image,
		pdf:    pdf,
		logger: logger,
	}
}

// Process runs the full pipeline over the file at imagePath. For raster
// images a normalized temporary copy is produced first and is removed on
// every exit path; when normalization fails the original file is used
// silently. PDF receipts skip normalization entirely.
func (p *Processor) Process(ctx context.Context, imagePath string) (*Result, error) {
	ext := strings.ToLower(filepath.Ext(imagePath))

	var text string
	var err error

	if ext == ".pdf" && p.pdf != nil {
		text, err = p.pdf.Recognize(ctx, imagePath)
	} else {
		inputPath := p.normalized(imagePath)
		if inputPath != imagePath {
			defer os.Remove(inputPath)
		}
		text, err = p.image.Recognize(ctx, inputPath)
	}

	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRecognitionFailed, err)
	}

	return Extract(text), nil
}

// normalized preprocesses the image for better OCR accuracy, falling back
// to the original path when anything goes wrong.
func (p *Processor) normalized(imagePath string) string {
	processedPath, err := PreprocessImage(imagePath)
	if err != nil {
		p.logger.Warn("Image preprocessing failed, using original",
			zap.String("file", imagePath),
			zap.Error(err),
		)
		return imagePath
	}
	return processedPath
}
