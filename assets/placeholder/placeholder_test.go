package placeholder

import "testing"

func TestSizes(t *testing.T) {
	tests := []struct {
		name string
		w, h int
		draw func(w, h int, sc Scheme) (dx, dy int)
	}{
		{"poster", 180, 270, func(w, h int, sc Scheme) (int, int) {
			b := Poster(w, h, sc).Bounds()
			return b.Dx(), b.Dy()
		}},
		{"backdrop", 640, 240, func(w, h int, sc Scheme) (int, int) {
			b := Backdrop(w, h, sc).Bounds()
			return b.Dx(), b.Dy()
		}},
	}
	for _, tc := range tests {
		for _, sc := range []Scheme{Light, Dark} {
			t.Run(tc.name, func(t *testing.T) {
				if dx, dy := tc.draw(tc.w, tc.h, sc); dx != tc.w || dy != tc.h {
					t.Errorf("size = %dx%d, want %dx%d", dx, dy, tc.w, tc.h)
				}
			})
		}
	}
}

func TestPosterHasMark(t *testing.T) {
	img := Poster(180, 270, Dark)
	if img.RGBAAt(90, 135) == img.RGBAAt(90, 5) {
		t.Error("center should differ from the background")
	}
	if img.RGBAAt(90, 135).A != 0xFF {
		t.Error("placeholder should be opaque")
	}
}
