package ui

import (
	"image"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/sirupsen/logrus"

	"github.com/depeter/cinematv/assets/placeholder"
	"github.com/depeter/cinematv/internal/cache"
	"github.com/depeter/cinematv/internal/catalog"
)

// ImageSource loads remote images in the background.
type ImageSource interface {
	LoadAsync(url string, callback cache.Callback)
}

type placeholderKey struct {
	kind catalog.Placeholder
	w, h int
	dark bool
}

// ImageResolver turns ImageRefs into drawable images. Until a remote image
// has been decoded, and forever when it fails, the ref's placeholder is
// returned. Loads finish on the cache's goroutines; their results are
// uploaded to the GPU on the next call from the game loop.
type ImageResolver struct {
	src ImageSource // nil: placeholders only

	mu        sync.Mutex
	decoded   map[string]image.Image // finished loads not yet uploaded
	requested map[string]bool

	images       *lru.Cache[string, *ebiten.Image]
	placeholders map[placeholderKey]*ebiten.Image
}

const resolverEntries = 128

// NewImageResolver creates a resolver over src, which may be nil.
func NewImageResolver(src ImageSource) *ImageResolver {
	images, _ := lru.New[string, *ebiten.Image](resolverEntries)
	return &ImageResolver{
		src:          src,
		decoded:      make(map[string]image.Image),
		requested:    make(map[string]bool),
		images:       images,
		placeholders: make(map[placeholderKey]*ebiten.Image),
	}
}

// Image returns the image for ref, or its placeholder sized w by h.
func (r *ImageResolver) Image(ref catalog.ImageRef, w, h int) *ebiten.Image {
	if img := r.remote(ref.URL); img != nil {
		return img
	}
	return r.placeholder(ref.Placeholder, w, h)
}

func (r *ImageResolver) remote(url string) *ebiten.Image {
	if url == "" || r.src == nil {
		return nil
	}
	if img, ok := r.images.Get(url); ok {
		return img
	}

	r.mu.Lock()
	decoded, ok := r.decoded[url]
	first := false
	if ok {
		// An evicted upload is requested again on next use.
		delete(r.decoded, url)
		delete(r.requested, url)
	} else {
		first = !r.requested[url]
		r.requested[url] = true
	}
	r.mu.Unlock()

	if ok {
		img := ebiten.NewImageFromImage(decoded)
		r.images.Add(url, img)
		return img
	}
	if first {
		r.src.LoadAsync(url, func(img image.Image, err error) {
			r.loaded(url, img, err)
		})
	}
	return nil
}

func (r *ImageResolver) loaded(url string, img image.Image, err error) {
	if err != nil {
		logrus.WithError(err).WithField("url", url).Debug("ui: image load failed, keeping placeholder")
		return
	}
	r.mu.Lock()
	r.decoded[url] = img
	r.mu.Unlock()
}

func (r *ImageResolver) placeholder(kind catalog.Placeholder, w, h int) *ebiten.Image {
	key := placeholderKey{kind: kind, w: w, h: h, dark: DarkTheme()}
	if img, ok := r.placeholders[key]; ok {
		return img
	}
	scheme := placeholder.Light
	if key.dark {
		scheme = placeholder.Dark
	}
	var src *image.RGBA
	switch kind {
	case catalog.PlaceholderBackdrop:
		src = placeholder.Backdrop(w, h, scheme)
	default:
		src = placeholder.Poster(w, h, scheme)
	}
	img := ebiten.NewImageFromImage(src)
	r.placeholders[key] = img
	return img
}

// drawImageFit draws img scaled to cover the w by h box at (x, y), cropping
// the overflow, multiplied by alpha.
func drawImageFit(dst, img *ebiten.Image, x, y, w, h, alpha float64) {
	if alpha <= 0 || w <= 0 || h <= 0 {
		return
	}
	b := img.Bounds()
	iw, ih := float64(b.Dx()), float64(b.Dy())
	scale := max(w/iw, h/ih)

	// Crop to the visible part so the scaled image covers the box exactly.
	cw, ch := w/scale, h/scale
	cx := b.Min.X + int((iw-cw)/2)
	cy := b.Min.Y + int((ih-ch)/2)
	sub := img.SubImage(image.Rect(cx, cy, cx+int(cw), cy+int(ch))).(*ebiten.Image)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleAlpha(float32(alpha))
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(sub, op)
}
