package raster

import (
	"image"
	"image/color"
	"testing"
)

var (
	black = color.RGBA{A: 0xFF}
	white = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)

func TestFillRectClips(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	FillRect(img, -2, -2, 4, 4, white)
	if img.RGBAAt(1, 1) != white {
		t.Errorf("inside pixel = %v", img.RGBAAt(1, 1))
	}
	if img.RGBAAt(2, 2) != (color.RGBA{}) {
		t.Errorf("outside pixel = %v", img.RGBAAt(2, 2))
	}
}

func TestBlendPixel(t *testing.T) {
	tests := []struct {
		name string
		c    color.RGBA
		want color.RGBA
	}{
		{"opaque replaces", white, white},
		{"transparent keeps", color.RGBA{}, black},
		{"half blends", color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0x80}, color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xFF}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			img := image.NewRGBA(image.Rect(0, 0, 1, 1))
			img.SetRGBA(0, 0, black)
			BlendPixel(img, 0, 0, tc.c)
			if got := img.RGBAAt(0, 0); got != tc.want {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestRoundedRectCorners(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	FillRoundedRect(img, 0, 0, 19, 19, 6, white)
	if img.RGBAAt(0, 0) == white {
		t.Error("corner pixel should stay empty")
	}
	if img.RGBAAt(10, 10) != white {
		t.Error("center pixel should be filled")
	}
}

func TestTrianglePointsRight(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	FillTriangleRight(img, 2, 18, 10, 8, white)
	if img.RGBAAt(17, 10) != white {
		t.Error("tip row should reach near x1")
	}
	if img.RGBAAt(17, 3) == white {
		t.Error("top row should be narrow")
	}
	if img.RGBAAt(2, 3) != white {
		t.Error("left edge should be filled")
	}
}

func TestVerticalGradient(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 3))
	VerticalGradient(img, black, white)
	if img.RGBAAt(0, 0) != black || img.RGBAAt(1, 2) != white {
		t.Errorf("ends = %v %v", img.RGBAAt(0, 0), img.RGBAAt(1, 2))
	}
	if mid := img.RGBAAt(0, 1); mid.R != 0x80 {
		t.Errorf("middle = %v", mid)
	}
}
