package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	xwebp "golang.org/x/image/webp"
)

func pngOf(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 120, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestNormalizeAvatar_ScalesLongestSide(t *testing.T) {
	out, err := NormalizeAvatar(pngOf(t, 600, 300), AvatarMaxSide)
	require.NoError(t, err)

	cfg, err := xwebp.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 256, cfg.Width)
	assert.Equal(t, 128, cfg.Height)
}

func TestNormalizeAvatar_KeepsSmallImages(t *testing.T) {
	out, err := NormalizeAvatar(pngOf(t, 40, 90), AvatarMaxSide)
	require.NoError(t, err)

	cfg, err := xwebp.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 40, cfg.Width)
	assert.Equal(t, 90, cfg.Height)

	ct, err := Sniff(out)
	require.NoError(t, err)
	assert.Equal(t, "image/webp", ct)
}

func TestNormalizeAvatar_Rejects(t *testing.T) {
	_, err := NormalizeAvatar([]byte("%PDF-1.4 not an image"), AvatarMaxSide)
	assert.ErrorIs(t, err, ErrUnsupported)

	_, err = NormalizeAvatar(make([]byte, MaxUploadBytes+1), AvatarMaxSide)
	assert.ErrorIs(t, err, ErrTooLarge)

	// png signature, broken body
	_, err = NormalizeAvatar([]byte("\x89PNG\r\n\x1a\n garbage"), AvatarMaxSide)
	assert.ErrorIs(t, err, ErrUnsupported)
}
