package services

import (
	"log"
	"os"
	"path/filepath"
)

// PDFAssets holds the bundled images embedded into exported documents. A nil
// slice means the asset is unavailable and the layout engine must degrade
// (text header, skipped signature) instead of failing the export.
type PDFAssets struct {
	Letterhead []byte
	Signature  []byte
}

// LoadPDFAssets reads the default letterhead and signature images from the
// static asset directory. Missing or unreadable files are logged and left
// nil; they are never an error.
func LoadPDFAssets(dir string) PDFAssets {
	return PDFAssets{
		Letterhead: readAsset(filepath.Join(dir, "header.png")),
		Signature:  readAsset(filepath.Join(dir, "signature.png")),
	}
}

func readAsset(path string) []byte {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("assets: could not read %s, exports will degrade: %v", path, err)
		return nil
	}
	return data
}
