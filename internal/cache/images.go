// Package cache downloads and caches remote images.
package cache

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"path/filepath"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	_ "golang.org/x/image/webp"
)

// ErrDisabled is reported for every load when remote images are turned off.
var ErrDisabled = errors.New("remote images disabled")

const (
	defaultMemoryEntries = 256
	defaultConcurrency   = 6
)

var defaultClient = &http.Client{Timeout: 10 * time.Second}

// Options configures an ImageCache. Zero values pick defaults.
type Options struct {
	Fs            afero.Fs // defaults to the OS filesystem
	Dir           string   // disk cache root within Fs
	MemoryEntries int
	Concurrency   int
	Client        *http.Client
	// Disabled turns every load into ErrDisabled without touching disk or
	// network.
	Disabled bool
}

// ImageCache provides disk + memory caching for remote images. Decoded
// images are kept in a bounded LRU; downloads are deduplicated per URL and
// failures are remembered so a broken URL is fetched once.
type ImageCache struct {
	fs       afero.Fs
	dir      string
	client   *http.Client
	disabled bool

	memory  *lru.Cache[string, image.Image]
	failed  sync.Map // url -> error
	loading sync.Map // url -> *loadEntry (in-flight dedup with waiters)
	sem     chan struct{}
}

// Callback receives the outcome of a load. It may run on any goroutine.
type Callback func(img image.Image, err error)

// loadEntry tracks in-flight downloads and their waiters.
type loadEntry struct {
	mu        sync.Mutex
	callbacks []Callback
	done      bool
	img       image.Image
	err       error
}

// NewImageCache creates an image cache rooted at opts.Dir.
func NewImageCache(opts Options) (*ImageCache, error) {
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	if opts.MemoryEntries <= 0 {
		opts.MemoryEntries = defaultMemoryEntries
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = defaultConcurrency
	}
	if opts.Client == nil {
		opts.Client = defaultClient
	}
	if !opts.Disabled {
		if err := opts.Fs.MkdirAll(opts.Dir, 0o755); err != nil {
			return nil, fmt.Errorf("create image cache dir %s: %w", opts.Dir, err)
		}
	}
	mem, err := lru.New[string, image.Image](opts.MemoryEntries)
	if err != nil {
		return nil, fmt.Errorf("create image memory cache: %w", err)
	}
	return &ImageCache{
		fs:       opts.Fs,
		dir:      opts.Dir,
		client:   opts.Client,
		disabled: opts.Disabled,
		memory:   mem,
		sem:      make(chan struct{}, opts.Concurrency),
	}, nil
}

// Get returns a cached image if available.
func (ic *ImageCache) Get(url string) (image.Image, bool) {
	return ic.memory.Get(url)
}

// Failed returns the remembered error for url, if its load failed.
func (ic *ImageCache) Failed(url string) error {
	if v, ok := ic.failed.Load(url); ok {
		return v.(error)
	}
	return nil
}

// LoadAsync starts loading an image from URL in the background. The
// callback runs exactly once, with the image or the error.
func (ic *ImageCache) LoadAsync(url string, callback Callback) {
	if ic.disabled {
		callback(nil, ErrDisabled)
		return
	}
	if img, ok := ic.memory.Get(url); ok {
		callback(img, nil)
		return
	}
	if err := ic.Failed(url); err != nil {
		callback(nil, err)
		return
	}

	entry := &loadEntry{callbacks: []Callback{callback}}
	if existing, loaded := ic.loading.LoadOrStore(url, entry); loaded {
		existingEntry := existing.(*loadEntry)
		existingEntry.mu.Lock()
		if existingEntry.done {
			img, err := existingEntry.img, existingEntry.err
			existingEntry.mu.Unlock()
			callback(img, err)
			return
		}
		existingEntry.callbacks = append(existingEntry.callbacks, callback)
		existingEntry.mu.Unlock()
		return
	}

	go func() {
		ic.sem <- struct{}{}
		img, err := ic.loadImage(url)
		<-ic.sem

		if err != nil {
			logrus.WithError(err).WithField("url", url).Debug("cache: image load failed")
			ic.failed.Store(url, err)
		} else {
			ic.memory.Add(url, img)
		}

		entry.mu.Lock()
		entry.done, entry.img, entry.err = true, img, err
		cbs := entry.callbacks
		entry.callbacks = nil
		entry.mu.Unlock()
		ic.loading.Delete(url)

		for _, cb := range cbs {
			cb(img, err)
		}
	}()
}

// Load fetches url synchronously through the same caches as LoadAsync.
func (ic *ImageCache) Load(url string) (image.Image, error) {
	done := make(chan struct{})
	var (
		img image.Image
		err error
	)
	ic.LoadAsync(url, func(i image.Image, e error) {
		img, err = i, e
		close(done)
	})
	<-done
	return img, err
}

func (ic *ImageCache) loadImage(url string) (image.Image, error) {
	diskPath := ic.diskPath(url)

	if f, err := ic.fs.Open(diskPath); err == nil {
		img, _, err := image.Decode(f)
		f.Close()
		if err == nil {
			return img, nil
		}
		// Corrupt cache file, remove and re-download
		ic.fs.Remove(diskPath)
	}

	resp, err := ic.client.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image download failed: %s", resp.Status)
	}

	if err := ic.fs.MkdirAll(filepath.Dir(diskPath), 0o755); err != nil {
		return nil, err
	}
	f, err := ic.fs.Create(diskPath)
	if err != nil {
		return nil, err
	}

	// Tee to disk while decoding
	tee := io.TeeReader(resp.Body, f)
	img, _, err := image.Decode(tee)
	if err == nil {
		// drain what the decoder did not read so the file is complete
		_, err = io.Copy(f, resp.Body)
	}
	f.Close()
	if err != nil {
		ic.fs.Remove(diskPath)
		return nil, err
	}
	return img, nil
}

func (ic *ImageCache) diskPath(url string) string {
	h := sha256.Sum256([]byte(url))
	name := fmt.Sprintf("%x", h[:16])
	return filepath.Join(ic.dir, name[:2], name)
}

// Dir returns the disk cache directory path.
func (ic *ImageCache) Dir() string {
	return ic.dir
}

// Clear drops every image from memory and forgets past failures.
func (ic *ImageCache) Clear() {
	ic.memory.Purge()
	ic.failed.Range(func(k, _ any) bool {
		ic.failed.Delete(k)
		return true
	})
}

// ClearDisk removes all cached images from disk.
func (ic *ImageCache) ClearDisk() error {
	return ic.fs.RemoveAll(ic.dir)
}
