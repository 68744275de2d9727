package ports

import "context"

// ImageProcessor transforma o upload bruto na miniatura que é persistida
type ImageProcessor interface {
	Process(ctx context.Context, raw []byte) ([]byte, error)
}

// ImageOptimizer comprime uma imagem já redimensionada (serviço externo)
type ImageOptimizer interface {
	Optimize(ctx context.Context, data []byte) ([]byte, error)
}
