package receipt

import (
	"fmt"
	"path/filepath"

	"github.com/disintegration/imaging"
)

// PreprocessImage writes a greyscale, contrast-normalized, sharpened copy
// of the image next to the original, named "processed-<name>". The caller
// owns removal of the returned file.
func PreprocessImage(imagePath string) (string, error) {
	img, err := imaging.Open(imagePath)
	if err != nil {
		return "", fmt.Errorf("failed to open image: %w", err)
	}

	img = imaging.Grayscale(img)
	img = imaging.AdjustContrast(img, 15)
	img = imaging.Sharpen(img, 1.0)

	processedPath := filepath.Join(
		filepath.Dir(imagePath),
		"processed-"+filepath.Base(imagePath),
	)

	if err := imaging.Save(img, processedPath); err != nil {
		return "", fmt.Errorf("failed to save processed image: %w", err)
	}

	return processedPath, nil
}
