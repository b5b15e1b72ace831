package images

import (
	"image/color"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupportedExt(t *testing.T) {
	assert.True(t, SupportedExt(".jpg"))
	assert.True(t, SupportedExt(".PNG"))
	assert.False(t, SupportedExt(".txt"))
	assert.False(t, SupportedExt(""))
}

func TestThumbPath(t *testing.T) {
	assert.Equal(t, "menu/abc.thumb.jpg", ThumbPath("menu/abc.jpg"))
	assert.True(t, IsThumb(filepath.Base(ThumbPath("menu/abc.jpg"))))
	assert.False(t, IsThumb("abc.jpg"))
}

func TestThumbnail_ResizesWideImages(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "wide.png")
	img := imaging.New(800, 600, color.NRGBA{200, 200, 200, 255})
	require.NoError(t, imaging.Save(img, src))

	thumb, err := Thumbnail(src)
	require.NoError(t, err)

	out, err := imaging.Open(thumb)
	require.NoError(t, err)
	assert.Equal(t, ThumbWidth, out.Bounds().Dx())
}

func TestThumbnail_KeepsSmallImages(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "small.png")
	img := imaging.New(100, 100, color.NRGBA{10, 10, 10, 255})
	require.NoError(t, imaging.Save(img, src))

	thumb, err := Thumbnail(src)
	require.NoError(t, err)

	out, err := imaging.Open(thumb)
	require.NoError(t, err)
	assert.Equal(t, 100, out.Bounds().Dx())
}

func TestThumbnail_MissingSource(t *testing.T) {
	_, err := Thumbnail(filepath.Join(t.TempDir(), "nope.png"))
	assert.Error(t, err)
}
