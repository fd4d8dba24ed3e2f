package proofstore_test

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/felizhandmade/feliz-store/proofstore"
)

func pngBytes(t *testing.T, w, h int) []byte {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestDiskStoreKeyedByOrderID(t *testing.T) {
	dir := t.TempDir()
	s := proofstore.NewDiskStore(dir)

	url, err := s.SaveProof("order-abc", "transfer.PNG", bytes.NewReader(pngBytes(t, 10, 10)))
	assert.NoError(t, err)
	assert.Equal(t, "/uploads/order-proofs/order-abc.png", url)

	_, err = os.Stat(filepath.Join(dir, "order-proofs", "order-abc.png"))
	assert.NoError(t, err)
}

func TestDiskStoreUnknownExtensionFallsBackToJpg(t *testing.T) {
	s := proofstore.NewDiskStore(t.TempDir())
	url, err := s.SaveProof("order-x", "proof.bin", bytes.NewReader([]byte("data")))
	assert.NoError(t, err)
	assert.Equal(t, "/uploads/order-proofs/order-x.jpg", url)
}

func TestInlineStoreProducesDataURL(t *testing.T) {
	s := proofstore.NewInlineStore()
	url, err := s.SaveProof("order-abc", "proof.png", bytes.NewReader(pngBytes(t, 40, 30)))
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "data:image/jpeg;base64,"))

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(url, "data:image/jpeg;base64,"))
	assert.NoError(t, err)
	cfg, _, err := image.DecodeConfig(bytes.NewReader(raw))
	assert.NoError(t, err)
	assert.Equal(t, 40, cfg.Width)
	assert.Equal(t, 30, cfg.Height)
}

func TestInlineStoreDownscalesLargeImages(t *testing.T) {
	s := proofstore.NewInlineStore()
	url, err := s.SaveProof("order-big", "proof.png", bytes.NewReader(pngBytes(t, 2400, 600)))
	assert.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(url, "data:image/jpeg;base64,"))
	assert.NoError(t, err)
	cfg, _, err := image.DecodeConfig(bytes.NewReader(raw))
	assert.NoError(t, err)
	assert.Equal(t, 1200, cfg.Width)
	assert.Equal(t, 300, cfg.Height)
}

func TestInlineStoreRejectsNonImage(t *testing.T) {
	s := proofstore.NewInlineStore()
	_, err := s.SaveProof("order-bad", "proof.png", bytes.NewReader([]byte("not an image")))
	assert.Error(t, err)
}
