package proofstore

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"

	"golang.org/x/image/draw"
)

const (
	// Downscale bound keeps the encoded document comfortably small.
	inlineMaxDim      = 1200
	inlineJPEGQuality = 70
)

// InlineStore re-encodes the proof as a JPEG data URL instead of uploading
// it anywhere. High-resolution photos are downscaled to at most 1200px on
// the longer edge.
type InlineStore struct{}

func NewInlineStore() *InlineStore {
	return &InlineStore{}
}

func (s *InlineStore) SaveProof(orderID, filename string, r io.Reader) (string, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return "", fmt.Errorf("decode proof image: %w", err)
	}

	img = downscale(img, inlineMaxDim)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: inlineJPEGQuality}); err != nil {
		return "", fmt.Errorf("encode proof image: %w", err)
	}

	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

func downscale(img image.Image, maxDim int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxDim && h <= maxDim {
		return img
	}

	if w > h {
		h = h * maxDim / w
		w = maxDim
	} else {
		w = w * maxDim / h
		h = maxDim
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}
