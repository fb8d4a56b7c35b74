package cache

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/spf13/afero"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 6))
	img.Set(1, 1, color.RGBA{R: 0x3b, G: 0x82, B: 0xf6, A: 0xff})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

type server struct {
	*httptest.Server
	hits    atomic.Int32
	release chan struct{} // when non-nil, requests wait for it
}

func newServer(t *testing.T, body []byte) *server {
	s := &server{}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.hits.Add(1)
		if s.release != nil {
			<-s.release
		}
		switch r.URL.Path {
		case "/poster.png":
			w.Header().Set("Content-Type", "image/png")
			w.Write(body)
		case "/garbage":
			w.Write([]byte("not an image"))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(s.Close)
	return s
}

func newCache(t *testing.T, fs afero.Fs) *ImageCache {
	t.Helper()
	ic, err := NewImageCache(Options{Fs: fs, Dir: "/cache/images"})
	if err != nil {
		t.Fatal(err)
	}
	return ic
}

type result struct {
	img image.Image
	err error
}

func wait(t *testing.T, ch <-chan result) result {
	t.Helper()
	select {
	case r := <-ch:
		return r
	case <-time.After(5 * time.Second):
		t.Fatal("callback never ran")
		return result{}
	}
}

func TestLoadDownloadsAndCaches(t *testing.T) {
	srv := newServer(t, pngBytes(t))
	fs := afero.NewMemMapFs()
	ic := newCache(t, fs)
	url := srv.URL + "/poster.png"

	img, err := ic.Load(url)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 4 || b.Dy() != 6 {
		t.Errorf("bounds = %v, want 4x6", b)
	}
	if _, ok := ic.Get(url); !ok {
		t.Error("image should be in memory after a load")
	}
	if ok, _ := afero.Exists(fs, ic.diskPath(url)); !ok {
		t.Error("image should be on disk after a load")
	}

	if _, err := ic.Load(url); err != nil {
		t.Fatal(err)
	}
	if n := srv.hits.Load(); n != 1 {
		t.Errorf("server hits = %d, want 1 (memory hit)", n)
	}

	// A fresh cache over the same filesystem reads from disk.
	again := newCache(t, fs)
	if _, err := again.Load(url); err != nil {
		t.Fatal(err)
	}
	if n := srv.hits.Load(); n != 1 {
		t.Errorf("server hits = %d, want 1 (disk hit)", n)
	}
}

func TestFailuresAreRemembered(t *testing.T) {
	srv := newServer(t, pngBytes(t))
	fs := afero.NewMemMapFs()
	ic := newCache(t, fs)

	for _, path := range []string{"/missing.png", "/garbage"} {
		t.Run(path, func(t *testing.T) {
			url := srv.URL + path
			before := srv.hits.Load()
			for i := 0; i < 3; i++ {
				if _, err := ic.Load(url); err == nil {
					t.Fatal("expected an error")
				}
			}
			if got := srv.hits.Load() - before; got != 1 {
				t.Errorf("server hits = %d, want 1", got)
			}
			if ic.Failed(url) == nil {
				t.Error("failure should be remembered")
			}
			if ok, _ := afero.Exists(fs, ic.diskPath(url)); ok {
				t.Error("failed download left a file behind")
			}
		})
	}

	ic.Clear()
	if ic.Failed(srv.URL+"/garbage") != nil {
		t.Error("Clear should forget failures")
	}
}

func TestCorruptDiskEntryIsRefetched(t *testing.T) {
	srv := newServer(t, pngBytes(t))
	fs := afero.NewMemMapFs()
	ic := newCache(t, fs)
	url := srv.URL + "/poster.png"

	if err := fs.MkdirAll(filepath.Dir(ic.diskPath(url)), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := afero.WriteFile(fs, ic.diskPath(url), []byte("junk"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := ic.Load(url); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if n := srv.hits.Load(); n != 1 {
		t.Errorf("server hits = %d, want 1", n)
	}
}

func TestConcurrentLoadsShareOneDownload(t *testing.T) {
	srv := newServer(t, pngBytes(t))
	srv.release = make(chan struct{})
	ic := newCache(t, afero.NewMemMapFs())
	url := srv.URL + "/poster.png"

	results := make(chan result, 3)
	for i := 0; i < 3; i++ {
		ic.LoadAsync(url, func(img image.Image, err error) { results <- result{img, err} })
	}
	close(srv.release)

	for i := 0; i < 3; i++ {
		if r := wait(t, results); r.err != nil || r.img == nil {
			t.Fatalf("result %d: %+v", i, r)
		}
	}
	if n := srv.hits.Load(); n != 1 {
		t.Errorf("server hits = %d, want 1", n)
	}
}

func TestDisabled(t *testing.T) {
	srv := newServer(t, pngBytes(t))
	fs := afero.NewMemMapFs()
	ic, err := NewImageCache(Options{Fs: fs, Dir: "/cache", Disabled: true})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ic.Load(srv.URL + "/poster.png"); !errors.Is(err, ErrDisabled) {
		t.Errorf("err = %v, want ErrDisabled", err)
	}
	if srv.hits.Load() != 0 {
		t.Error("disabled cache hit the network")
	}
	if ok, _ := afero.DirExists(fs, "/cache"); ok {
		t.Error("disabled cache created its directory")
	}
}

func TestMemoryIsBounded(t *testing.T) {
	srv := newServer(t, pngBytes(t))
	ic, err := NewImageCache(Options{Fs: afero.NewMemMapFs(), Dir: "/c", MemoryEntries: 1})
	if err != nil {
		t.Fatal(err)
	}
	first := srv.URL + "/poster.png"
	second := srv.URL + "/poster.png?v=2"
	if _, err := ic.Load(first); err != nil {
		t.Fatal(err)
	}
	if _, err := ic.Load(second); err != nil {
		t.Fatal(err)
	}
	if _, ok := ic.Get(first); ok {
		t.Error("oldest entry should have been evicted")
	}
	if _, ok := ic.Get(second); !ok {
		t.Error("newest entry should be cached")
	}
}
