package thumbnail

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
)

// coverEntropy escala img para cobrir w×h e recorta a janela w×h com mais
// detalhe, removendo iterativamente a borda de menor entropia
func coverEntropy(img image.Image, w, h int) *image.NRGBA {
	b := img.Bounds()
	scale := math.Max(float64(w)/float64(b.Dx()), float64(h)/float64(b.Dy()))
	rw := max(w, int(math.Ceil(float64(b.Dx())*scale)))
	rh := max(h, int(math.Ceil(float64(b.Dy())*scale)))

	resized := imaging.Resize(img, rw, rh, imaging.Lanczos)
	return imaging.Crop(resized, entropyWindow(resized, w, h))
}

// entropyWindow devolve o retângulo w×h de maior entropia de luminância
func entropyWindow(img *image.NRGBA, w, h int) image.Rectangle {
	gray := imaging.Grayscale(img)
	b := gray.Bounds()
	left, top, right, bottom := b.Min.X, b.Min.Y, b.Max.X, b.Max.Y

	for right-left > w {
		slice := min(right-left-w, max(1, (right-left)/10))
		l := entropy(gray, image.Rect(left, top, left+slice, bottom))
		r := entropy(gray, image.Rect(right-slice, top, right, bottom))
		if l < r {
			left += slice
		} else {
			right -= slice
		}
	}

	for bottom-top > h {
		slice := min(bottom-top-h, max(1, (bottom-top)/10))
		t := entropy(gray, image.Rect(left, top, right, top+slice))
		btm := entropy(gray, image.Rect(left, bottom-slice, right, bottom))
		if t < btm {
			top += slice
		} else {
			bottom -= slice
		}
	}

	return image.Rect(left, top, right, bottom)
}

// entropy calcula a entropia de Shannon do histograma de luminância em r
func entropy(gray *image.NRGBA, r image.Rectangle) float64 {
	var hist [256]int
	total := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := gray.PixOffset(r.Min.X, y)
		for x := r.Min.X; x < r.Max.X; x++ {
			hist[gray.Pix[row]]++
			row += 4
			total++
		}
	}
	if total == 0 {
		return 0
	}

	var e float64
	for _, n := range hist {
		if n == 0 {
			continue
		}
		p := float64(n) / float64(total)
		e -= p * math.Log2(p)
	}
	return e
}
