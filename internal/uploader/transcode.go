package uploader

import (
	"bytes"
	"context"
	"image"
	"image/draw"
	"image/jpeg"
	"path/filepath"
	"strings"
	"time"

	_ "image/gif"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

const (
	// TranscodeQuality matches the 0.8 JPEG quality screenshots are stored at.
	TranscodeQuality = 80

	// TranscodeTimeout caps how long a single image may spend in the encoder.
	TranscodeTimeout = 10 * time.Second
)

// TranscodeResult is the outcome of one screenshot conversion.
type TranscodeResult struct {
	Name        string
	Data        []byte
	ContentType string
	Transcoded  bool
}

// TranscodeImage converts a raster image to a flattened JPEG. Any decode,
// encode, or timeout failure falls back to the original bytes untouched, a
// bad screenshot must never abort the submission.
func TranscodeImage(ctx context.Context, name string, data []byte) TranscodeResult {
	original := TranscodeResult{
		Name:        filepath.Base(name),
		Data:        data,
		ContentType: "application/octet-stream",
		Transcoded:  false,
	}

	if ctx.Err() != nil {
		return original
	}
	ctx, cancel := context.WithTimeout(ctx, TranscodeTimeout)
	defer cancel()

	type outcome struct {
		data []byte
		err  error
	}
	done := make(chan outcome, 1)
	go func() {
		encoded, err := flattenToJPEG(data)
		done <- outcome{data: encoded, err: err}
	}()

	select {
	case <-ctx.Done():
		return original
	case out := <-done:
		if out.err != nil {
			return original
		}
		return TranscodeResult{
			Name:        derivedJPEGName(name),
			Data:        out.data,
			ContentType: "image/jpeg",
			Transcoded:  true,
		}
	}
}

// flattenToJPEG decodes, redraws over a white canvas to strip alpha, and
// re-encodes as JPEG at the fixed quality.
func flattenToJPEG(data []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	canvas := image.NewRGBA(bounds)
	draw.Draw(canvas, bounds, image.White, image.Point{}, draw.Src)
	draw.Draw(canvas, bounds, img, bounds.Min, draw.Over)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, canvas, &jpeg.Options{Quality: TranscodeQuality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func derivedJPEGName(name string) string {
	base := filepath.Base(strings.TrimSpace(name))
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".jpg"
}
