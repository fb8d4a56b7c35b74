// Package catalog holds the read-only media catalog shown by every screen.
package catalog

import (
	"strings"

	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Placeholder names a locally bundled image drawn while a remote image is
// missing, loading or broken.
type Placeholder int

const (
	PlaceholderPoster Placeholder = iota
	PlaceholderBackdrop
)

// ImageRef is a remote image with a local fallback asset.
type ImageRef struct {
	URL         string // may be empty
	Placeholder Placeholder
}

// MediaRecord is one browsable movie or show.
type MediaRecord struct {
	ID       string
	Title    string
	Synopsis string
	Category string
	Year     int
	Rating   float64 // 0.0-5.0
	Poster   ImageRef
	Backdrop ImageRef
}

// Category is a named, ordered group of records. Item order is display order.
type Category struct {
	Name  string
	Items []MediaRecord
}

// Catalog is an immutable set of categories. It is safe to share between
// screens without locking because nothing mutates it after New returns.
type Catalog struct {
	categories []Category
	records    []MediaRecord // distinct, in catalog order
	banners    []string
}

// New builds a catalog from deep copies of categories and banner URLs.
func New(categories []Category, banners []string) *Catalog {
	c := &Catalog{
		categories: make([]Category, len(categories)),
		banners:    append([]string(nil), banners...),
	}
	for i, cat := range categories {
		c.categories[i] = Category{
			Name:  cat.Name,
			Items: append([]MediaRecord(nil), cat.Items...),
		}
	}
	all := lo.FlatMap(c.categories, func(cat Category, _ int) []MediaRecord { return cat.Items })
	c.records = lo.UniqBy(all, func(r MediaRecord) string { return r.ID })
	return c
}

// Categories returns every category in display order. The result is a copy.
func (c *Catalog) Categories() []Category {
	out := make([]Category, len(c.categories))
	for i, cat := range c.categories {
		out[i] = Category{Name: cat.Name, Items: append([]MediaRecord(nil), cat.Items...)}
	}
	return out
}

// All returns each distinct record once, in catalog order.
func (c *Catalog) All() []MediaRecord {
	return append([]MediaRecord(nil), c.records...)
}

// ByID returns the record with the given id, or None.
func (c *Catalog) ByID(id string) mo.Option[MediaRecord] {
	rec, ok := lo.Find(c.records, func(r MediaRecord) bool { return r.ID == id })
	if !ok {
		return mo.None[MediaRecord]()
	}
	return mo.Some(rec)
}

// Search returns the records whose title or synopsis contains query,
// ignoring case. A blank query matches nothing.
func (c *Catalog) Search(query string) []MediaRecord {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	return lo.Filter(c.records, func(r MediaRecord, _ int) bool {
		return strings.Contains(strings.ToLower(r.Title), q) ||
			strings.Contains(strings.ToLower(r.Synopsis), q)
	})
}

// Featured picks the record promoted by the home banner: "Interstellar" if the
// first category has it, otherwise the first record of the first non-empty
// category.
func (c *Catalog) Featured() (MediaRecord, bool) {
	if len(c.categories) > 0 {
		if rec, ok := lo.Find(c.categories[0].Items, func(r MediaRecord) bool {
			return strings.EqualFold(r.Title, featuredTitle)
		}); ok {
			return rec, true
		}
	}
	for _, cat := range c.categories {
		if len(cat.Items) > 0 {
			return cat.Items[0], true
		}
	}
	return MediaRecord{}, false
}

// BannerBackgrounds returns the candidate banner image URLs.
func (c *Catalog) BannerBackgrounds() []string {
	return append([]string(nil), c.banners...)
}

const featuredTitle = "Interstellar"
