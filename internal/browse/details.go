package browse

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/depeter/cinematv/internal/catalog"
)

const (
	detailsNotFound = "Item not found"
	detailsHeading  = "Overview"
)

// DetailsView describes the details page. When NotFound is set only Message
// is meaningful.
type DetailsView struct {
	NotFound bool
	Message  string

	ID       string
	Title    string
	Meta     string // "2023 • Action • 4.2★"
	Heading  string
	Synopsis string
	Backdrop catalog.ImageRef
	Poster   catalog.ImageRef
}

// Details shows one record. The lookup happens once, at construction.
type Details struct {
	id  string
	rec catalog.MediaRecord
	ok  bool
}

// NewDetails looks id up in cat. An unknown id is not an error; the page
// shows a not-found message instead.
func NewDetails(cat *catalog.Catalog, id string) *Details {
	rec, ok := cat.ByID(id).Get()
	if !ok {
		logrus.WithField("id", id).Debug("browse: details for unknown id")
	}
	return &Details{id: id, rec: rec, ok: ok}
}

// Found reports whether the id resolved.
func (d *Details) Found() bool { return d.ok }

// MetaLine formats year, category and rating for display.
func MetaLine(rec catalog.MediaRecord) string {
	return fmt.Sprintf("%d • %s • %.1f★", rec.Year, rec.Category, rec.Rating)
}

func (d *Details) View() DetailsView {
	if !d.ok {
		return DetailsView{NotFound: true, Message: detailsNotFound, ID: d.id}
	}
	return DetailsView{
		ID:       d.rec.ID,
		Title:    d.rec.Title,
		Meta:     MetaLine(d.rec),
		Heading:  detailsHeading,
		Synopsis: d.rec.Synopsis,
		Backdrop: d.rec.Backdrop,
		Poster:   d.rec.Poster,
	}
}
