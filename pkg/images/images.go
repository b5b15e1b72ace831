// Package images handles stored menu photos: extension checks and
// thumbnail generation.
package images

import (
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

// ThumbWidth is the target width of generated thumbnails.
const ThumbWidth = 320

// SupportedExt reports whether the extension (with leading dot) is an image
// type we store.
func SupportedExt(ext string) bool {
	switch strings.ToLower(ext) {
	case ".png", ".jpg", ".jpeg", ".gif", ".webp":
		return true
	}
	return false
}

// ThumbPath returns the thumbnail path for a stored image, e.g.
// menu/abc.jpg -> menu/abc.thumb.jpg.
func ThumbPath(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + ".thumb" + ext
}

// IsThumb reports whether the file name is itself a generated thumbnail.
// The watcher uses this to avoid recursive processing.
func IsThumb(name string) bool {
	return strings.Contains(name, ".thumb.")
}

// Thumbnail writes a width-bounded thumbnail next to the source image and
// returns its path. Images narrower than ThumbWidth are copied as-is.
func Thumbnail(srcPath string) (string, error) {
	img, err := imaging.Open(srcPath)
	if err != nil {
		return "", err
	}
	if img.Bounds().Dx() > ThumbWidth {
		img = imaging.Resize(img, ThumbWidth, 0, imaging.Lanczos)
	}
	dst := ThumbPath(srcPath)
	if err := imaging.Save(img, dst); err != nil {
		return "", err
	}
	return dst, nil
}
