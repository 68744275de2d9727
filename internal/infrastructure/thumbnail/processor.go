// Package thumbnail converte o upload JPEG na miniatura persistida.
package thumbnail

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"time"

	"github.com/disintegration/imaging"
	"github.com/gabriel-vasile/mimetype"

	domainerrors "github.com/rafabene/staffdir-backend/internal/domain/errors"
	"github.com/rafabene/staffdir-backend/internal/domain/ports"
)

const (
	Size        = 70
	jpegQuality = 90

	// MaxPixels limita as dimensões declaradas no cabeçalho antes da decodificação
	MaxPixels = 50_000_000
)

// Processor redimensiona para Size×Size e delega a compressão ao otimizador
type Processor struct {
	optimizer ports.ImageOptimizer
	metrics   ports.Metrics
}

// NewProcessor cria um Processor; metrics pode ser nil
func NewProcessor(optimizer ports.ImageOptimizer, metrics ports.Metrics) *Processor {
	return &Processor{optimizer: optimizer, metrics: metrics}
}

// Process executa resize e otimização; qualquer falha é ErrImageProcessing
func (p *Processor) Process(ctx context.Context, raw []byte) (out []byte, err error) {
	start := time.Now()
	defer func() {
		if p.metrics != nil {
			p.metrics.ObserveImageProcessing(time.Since(start), err)
		}
	}()

	resized, err := Resize(raw)
	if err != nil {
		return nil, err
	}

	optimized, err := p.optimizer.Optimize(ctx, resized)
	if err != nil {
		return nil, domainerrors.Wrap(domainerrors.ErrImageProcessing, "optimize", err)
	}
	if len(optimized) == 0 {
		return nil, domainerrors.Wrap(domainerrors.ErrImageProcessing, "optimize", fmt.Errorf("optimizer returned no data"))
	}

	return optimized, nil
}

// Resize decodifica um JPEG e devolve a miniatura Size×Size em JPEG
func Resize(raw []byte) ([]byte, error) {
	if mt := mimetype.Detect(raw); !mt.Is("image/jpeg") {
		return nil, domainerrors.Wrap(domainerrors.ErrImageProcessing, "sniff",
			fmt.Errorf("unexpected content type %s", mt.String()))
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return nil, domainerrors.Wrap(domainerrors.ErrImageProcessing, "decode header", err)
	}
	if cfg.Width < 1 || cfg.Height < 1 || cfg.Width*cfg.Height > MaxPixels {
		return nil, domainerrors.Wrap(domainerrors.ErrImageProcessing, "decode header",
			fmt.Errorf("image of %dx%d exceeds %d pixels", cfg.Width, cfg.Height, MaxPixels))
	}

	img, err := imaging.Decode(bytes.NewReader(raw), imaging.AutoOrientation(true))
	if err != nil {
		return nil, domainerrors.Wrap(domainerrors.ErrImageProcessing, "decode", err)
	}

	return Encode(coverEntropy(img, Size, Size))
}

// Encode serializa img como JPEG
func Encode(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(jpegQuality)); err != nil {
		return nil, domainerrors.Wrap(domainerrors.ErrImageProcessing, "encode", err)
	}
	return buf.Bytes(), nil
}
