package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"io"

	"github.com/disintegration/imaging"
)

// ProcessedAvatar contains the normalized avatar variants
type ProcessedAvatar struct {
	Full        []byte
	Thumbnail   []byte
	ContentType string
	Size        int
	ThumbSize   int
}

// Config for avatar processing
type Config struct {
	Size      int // square edge for the full avatar (default 512)
	ThumbSize int // square edge for the thumbnail (default 96)
	Quality   int // JPEG quality 1-100 (default 85)
}

// DefaultConfig returns default processing config
func DefaultConfig() Config {
	return Config{
		Size:      512,
		ThumbSize: 96,
		Quality:   85,
	}
}

// Processor normalizes uploaded avatars to square JPEGs
type Processor struct {
	config Config
}

// NewProcessor creates avatar processor
func NewProcessor(config Config) *Processor {
	return &Processor{config: config}
}

// Process decodes an uploaded image, center-crops it to a square and
// produces full-size and thumbnail JPEG variants
func (p *Processor) Process(reader io.Reader) (*ProcessedAvatar, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	full := imaging.Fill(img, p.config.Size, p.config.Size, imaging.Center, imaging.Lanczos)
	thumb := imaging.Fill(img, p.config.ThumbSize, p.config.ThumbSize, imaging.Center, imaging.Lanczos)

	fullData, err := p.encodeJPEG(full)
	if err != nil {
		return nil, fmt.Errorf("failed to encode avatar: %w", err)
	}

	thumbData, err := p.encodeJPEG(thumb)
	if err != nil {
		return nil, fmt.Errorf("failed to encode thumbnail: %w", err)
	}

	return &ProcessedAvatar{
		Full:        fullData,
		Thumbnail:   thumbData,
		ContentType: "image/jpeg",
		Size:        p.config.Size,
		ThumbSize:   p.config.ThumbSize,
	}, nil
}

func (p *Processor) encodeJPEG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: p.config.Quality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
