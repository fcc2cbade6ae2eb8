// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package uploads

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

// MaxDimension bounds the width and height of stored images
const MaxDimension = 1024

// MaxPixels bounds the declared size of an upload before it is decoded
const MaxPixels = 50_000_000

var (
	ErrInvalidName   = errors.New("invalid file name")
	ErrNotImage      = errors.New("file is not a supported image")
	ErrImageTooLarge = errors.New("image dimensions too large")
)

// Store keeps uploaded images in a single flat directory.
// The same directory is served under /images.
type Store struct {
	Dir string
}

// NewStore creates dir if needed
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &Store{Dir: dir}, nil
}

// Save decodes an image, shrinks it to fit MaxDimension and writes it
// under a fresh random name. It returns the stored file name.
func (s *Store) Save(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read upload: %w", err)
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", ErrNotImage
	}
	// A few compressed bytes can declare an image that needs gigabytes to decode
	if cfg.Width <= 0 || cfg.Height <= 0 || int64(cfg.Width)*int64(cfg.Height) > MaxPixels {
		return "", ErrImageTooLarge
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return "", ErrNotImage
	}
	img = imaging.Fit(img, MaxDimension, MaxDimension, imaging.Lanczos)

	name := uuid.NewString() + extensionFor(format)
	if err := imaging.Save(img, filepath.Join(s.Dir, name)); err != nil {
		return "", fmt.Errorf("failed to write image: %w", err)
	}

	return name, nil
}

// Remove deletes a stored file. A file that is already gone is not an error.
func (s *Store) Remove(name string) error {
	if !validName(name) {
		return ErrInvalidName
	}

	err := os.Remove(filepath.Join(s.Dir, name))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove image: %w", err)
	}
	return nil
}

func validName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, `/\`)
}

// jpeg and gif keep their format, everything else is re-encoded as png
func extensionFor(format string) string {
	switch format {
	case "jpeg":
		return ".jpg"
	case "gif":
		return ".gif"
	default:
		return ".png"
	}
}
