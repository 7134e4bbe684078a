package sketch

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"
)

// ErrImageNotFound is returned when none of the candidate files exist.
var ErrImageNotFound = errors.New("no source image found")

// imageCandidates are the filenames probed in preference order.
var imageCandidates = []string{"image.png", "image.jpg"}

// FindImage returns the first candidate image present in dir.
func FindImage(dir string) (string, error) {
	for _, name := range imageCandidates {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: looked for %s in %s", ErrImageNotFound, strings.Join(imageCandidates, ", "), dir)
}

// LoadImage decodes a PNG or JPEG image from disk.
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	return img, nil
}
