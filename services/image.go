package services

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/disintegration/imaging"
)

// MaxHeaderImageBytes is the upload ceiling for custom letterhead images.
const MaxHeaderImageBytes = 2 << 20

var (
	ErrImageTooLarge    = errors.New("image exceeds the 2MB upload limit")
	ErrUnsupportedImage = errors.New("image must be a valid PNG or JPEG")
)

// EncodeHeaderUpload validates an uploaded header image and returns it as a
// base64 data URL for storage on the quotation record. Oversized files and
// anything that does not decode as PNG or JPEG are rejected.
func EncodeHeaderUpload(data []byte) (string, error) {
	if len(data) > MaxHeaderImageBytes {
		return "", ErrImageTooLarge
	}

	format, err := sniffImageFormat(data)
	if err != nil {
		return "", err
	}

	// Decode fully to catch truncated or corrupt payloads before they
	// reach the layout engine.
	if _, err := imaging.Decode(bytes.NewReader(data)); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnsupportedImage, err)
	}

	mime := "image/png"
	if format == "JPEG" {
		mime = "image/jpeg"
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// DecodeImageDataURL unpacks a stored data URL back into raw bytes plus the
// image type name the PDF engine expects ("PNG" or "JPEG").
func DecodeImageDataURL(dataURL string) ([]byte, string, error) {
	idx := strings.Index(dataURL, ";base64,")
	if !strings.HasPrefix(dataURL, "data:image/") || idx < 0 {
		return nil, "", ErrUnsupportedImage
	}

	data, err := base64.StdEncoding.DecodeString(dataURL[idx+len(";base64,"):])
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrUnsupportedImage, err)
	}

	format, err := sniffImageFormat(data)
	if err != nil {
		return nil, "", err
	}
	return data, format, nil
}

// sniffImageFormat identifies PNG and JPEG payloads by magic bytes.
func sniffImageFormat(data []byte) (string, error) {
	switch {
	case bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n")):
		return "PNG", nil
	case bytes.HasPrefix(data, []byte{0xFF, 0xD8, 0xFF}):
		return "JPEG", nil
	default:
		return "", ErrUnsupportedImage
	}
}
