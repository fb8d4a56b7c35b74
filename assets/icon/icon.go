package icon

import (
	"image"
	"image/color"

	"github.com/depeter/cinematv/assets/raster"
)

// Brand colors
var (
	brandBlue = color.RGBA{R: 0x3B, G: 0x82, B: 0xF6, A: 0xFF}
	brandCyan = color.RGBA{R: 0x06, G: 0xB6, B: 0xD4, A: 0xFF}
	darkBG    = color.RGBA{R: 0x0B, G: 0x10, B: 0x20, A: 0xFF}
	screenBG  = color.RGBA{R: 0x0F, G: 0x17, B: 0x2A, A: 0xFF}
	glowCol   = color.RGBA{R: 0x03, G: 0x5B, B: 0x6A, A: 0x80}
)

// Generate returns 64x64 and 32x32 icon images for use with ebiten.SetWindowIcon.
func Generate() []image.Image {
	return []image.Image{
		generate(64),
		generate(32),
	}
}

func generate(size int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	s := float64(size)

	raster.FillRect(img, 0, 0, size, size, darkBG)
	drawTV(img, s)
	drawPlay(img, s)
	return img
}

func drawTV(img *image.RGBA, s float64) {
	// Bezel, then the screen inset into it
	raster.FillRoundedRect(img, s*0.08, s*0.16, s*0.84, s*0.56, s*0.07, brandBlue)
	raster.FillRoundedRect(img, s*0.13, s*0.21, s*0.74, s*0.46, s*0.04, screenBG)

	// Stand: neck and foot
	raster.FillRect(img, int(s*0.46), int(s*0.72), int(s*0.08)+1, int(s*0.08), brandBlue)
	raster.FillRoundedRect(img, s*0.30, s*0.79, s*0.40, s*0.06, s*0.03, brandBlue)
}

func drawPlay(img *image.RGBA, s float64) {
	cx, cy := s*0.50, s*0.44
	raster.FillCircle(img, cx, cy, s*0.16, glowCol)
	raster.FillTriangleRight(img, cx-s*0.08, cx+s*0.11, cy, s*0.11, brandCyan)
}
