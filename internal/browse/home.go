package browse

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/depeter/cinematv/internal/anim"
	"github.com/depeter/cinematv/internal/catalog"
	"github.com/depeter/cinematv/internal/focus"
	"github.com/depeter/cinematv/internal/nav"
)

// Home page layout.
const (
	HomeRowHeight   = 56 + PosterHeight*PosterFocusScale + 24
	HomeRowsTop     = BannerHeight + 32
	HomeScrollTween = 220 * time.Millisecond
)

// HomeOptions tunes a Home page.
type HomeOptions struct {
	RotateEvery time.Duration
}

// HomeView describes the home page. Rows holds only non-empty categories;
// RowY[i] is the top of Rows[i] before scrolling.
type HomeView struct {
	Banner  *BannerView
	Rows    []RowView
	RowY    []float64
	ScrollY float64
}

// Home is the landing page: a featured banner over one row per category.
type Home struct {
	navigate func(nav.Route)
	scope    *anim.Scope
	ctrl     *focus.Manager

	banner *Banner
	rows   []*Row

	bannerFocus   *focus.Requester
	firstRowFocus *focus.Requester
	initialFocus  bool
	mounted       bool

	// where focus was at Unmount, restored by the next Mount
	savedRow, savedCol int
	savedBanner        bool

	viewportH float64
	scroll    anim.Value
}

// NewHome builds the page from the catalog. Tasks started by the page live
// in a child of parent and stop at Unmount.
func NewHome(cat *catalog.Catalog, parent *anim.Scope, navigate func(nav.Route), opts HomeOptions) *Home {
	h := &Home{
		navigate:      navigate,
		scope:         parent.Child(),
		ctrl:          focus.NewManager(),
		bannerFocus:   focus.NewRequester("home.banner"),
		firstRowFocus: focus.NewRequester("home.firstRow"),
		viewportH:     720,
	}
	toDetails := func(id string) {
		if h.navigate != nil {
			h.navigate(nav.Details(id))
		}
	}

	if rec, ok := cat.Featured(); ok {
		h.banner = NewBanner(BannerConfig{
			Record:      rec,
			Backgrounds: cat.BannerBackgrounds(),
			Play:        toDetails,
			PlayFocus:   h.bannerFocus,
			Scope:       h.scope,
			RotateEvery: opts.RotateEvery,
		})
	}

	for _, c := range cat.Categories() {
		if len(c.Items) == 0 {
			continue
		}
		cfg := RowConfig{
			Title:    c.Name,
			Records:  c.Items,
			Navigate: toDetails,
			Index:    len(h.rows),
			Scope:    h.scope,
		}
		if len(h.rows) == 0 {
			cfg.FirstItem = h.firstRowFocus
		}
		h.rows = append(h.rows, NewRow(cfg))
	}
	return h
}

// Focus returns the page's focus manager.
func (h *Home) Focus() *focus.Manager { return h.ctrl }

func (h *Home) Banner() *Banner { return h.banner }
func (h *Home) Rows() []*Row    { return h.rows }

// BannerFocus and FirstRowFocus are the page's two well-known focus targets.
func (h *Home) BannerFocus() *focus.Requester   { return h.bannerFocus }
func (h *Home) FirstRowFocus() *focus.Requester { return h.firstRowFocus }

// Mount starts the entrance animations and banner rotation. The first Mount
// of a page focuses the banner's Play action; a later Mount puts focus back
// where it was at Unmount.
func (h *Home) Mount() {
	if h.mounted {
		return
	}
	h.mounted = true
	if h.banner != nil {
		h.banner.Mount()
	}
	for _, r := range h.rows {
		r.Mount()
	}
	if h.initialFocus {
		h.restoreFocus()
		return
	}
	h.initialFocus = true
	if !h.ctrl.RequestFocus(h.bannerFocus) {
		h.ctrl.RequestFocus(h.firstRowFocus)
	}
}

// restoreFocus puts focus back where Unmount found it. A page unmounted with
// nothing focused, as when the nav bar took focus first, falls back to the
// banner and then the first row.
func (h *Home) restoreFocus() {
	ok := false
	switch {
	case h.savedBanner:
		ok = h.ctrl.RequestFocus(h.bannerFocus)
	case h.savedRow >= 0 && h.savedRow < len(h.rows):
		ok = h.rows[h.savedRow].FocusItem(h.savedCol, h.ctrl)
	}
	if !ok && !h.ctrl.RequestFocus(h.bannerFocus) {
		h.ctrl.RequestFocus(h.firstRowFocus)
	}
	h.syncScroll()
}

// Unmount cancels every task the page started and drops focus.
func (h *Home) Unmount() {
	if !h.mounted {
		return
	}
	h.mounted = false
	h.savedBanner = h.BannerFocused()
	h.savedRow, h.savedCol = h.focusedRow(), 0
	if h.savedRow >= 0 {
		h.savedCol = h.rows[h.savedRow].FocusedIndex()
	}
	h.ctrl.Clear()
	if h.banner != nil {
		h.banner.Unmount()
	}
	for _, r := range h.rows {
		r.Unmount()
	}
}

// Close unmounts the page for good.
func (h *Home) Close() {
	h.Unmount()
	h.scope.Cancel()
}

// SetViewport sets the visible page size.
func (h *Home) SetViewport(w, hgt float64) {
	if hgt > 0 {
		h.viewportH = hgt
	}
	for _, r := range h.rows {
		r.SetViewport(w)
	}
}

// focusedRow returns the index of the row holding focus, or -1.
func (h *Home) focusedRow() int {
	for i, r := range h.rows {
		if r.HasFocus() {
			return i
		}
	}
	return -1
}

// BannerFocused reports whether the Play action holds focus.
func (h *Home) BannerFocused() bool {
	return h.banner != nil && h.banner.PlayFocused()
}

// FocusedRow returns the focused row index, or -1 when the banner or
// nothing is focused.
func (h *Home) FocusedRow() int { return h.focusedRow() }

// Move handles a D-pad press. It returns false when the press leaves the
// page, which for Up on the top element means the caller may focus its
// navigation bar.
func (h *Home) Move(dir focus.Direction) bool {
	if h.BannerFocused() {
		if dir == focus.DirDown && len(h.rows) > 0 {
			moved := h.ctrl.RequestFocus(h.firstRowFocus)
			h.syncScroll()
			return moved
		}
		return false
	}

	i := h.focusedRow()
	if i < 0 {
		return h.ctrl.Restore()
	}
	row := h.rows[i]
	switch dir {
	case focus.DirLeft, focus.DirRight:
		return row.Move(dir, h.ctrl)
	case focus.DirUp:
		if i == 0 {
			if h.banner == nil {
				return false
			}
			moved := h.ctrl.RequestFocus(h.bannerFocus)
			h.syncScroll()
			return moved
		}
		moved := h.rows[i-1].FocusItem(row.FocusedIndex(), h.ctrl)
		h.syncScroll()
		return moved
	case focus.DirDown:
		if i+1 >= len(h.rows) {
			return false
		}
		moved := h.rows[i+1].FocusItem(row.FocusedIndex(), h.ctrl)
		h.syncScroll()
		return moved
	}
	return false
}

// Activate confirms the focused element.
func (h *Home) Activate() bool {
	if h.BannerFocused() {
		h.banner.Activate()
		return true
	}
	if i := h.focusedRow(); i >= 0 {
		return h.rows[i].ActivateFocused()
	}
	return false
}

// ClickPlay is a pointer press on the banner's Play action.
func (h *Home) ClickPlay() {
	if h.banner != nil {
		h.banner.Activate()
	}
}

// ClickPoster is a pointer press on poster item of row.
func (h *Home) ClickPoster(row, item int) bool {
	if row < 0 || row >= len(h.rows) {
		return false
	}
	return h.rows[row].Click(item)
}

func (h *Home) rowY(i int) float64 {
	top := 0.0
	if h.banner != nil {
		top = HomeRowsTop
	}
	return top + float64(i)*HomeRowHeight
}

// syncScroll scrolls the page so the focused section is on screen.
func (h *Home) syncScroll() {
	target := h.scroll.Target()
	if i := h.focusedRow(); i >= 0 {
		top, bottom := h.rowY(i), h.rowY(i)+HomeRowHeight
		if bottom > target+h.viewportH {
			target = bottom - h.viewportH
		}
		if top < target {
			target = top
		}
	} else if h.BannerFocused() {
		target = 0
	}
	if target != h.scroll.Target() {
		logrus.WithField("y", target).Debug("browse: home scroll")
		h.scroll.TweenTo(target, HomeScrollTween, anim.EaseOutCubic)
	}
}

func (h *Home) Tick(dt time.Duration) {
	h.scroll.Tick(dt)
	if h.banner != nil {
		h.banner.SetScroll(h.scroll.Get())
		h.banner.Tick(dt)
	}
	for _, r := range h.rows {
		r.Tick(dt)
	}
}

func (h *Home) View() HomeView {
	v := HomeView{ScrollY: h.scroll.Get()}
	if h.banner != nil {
		bv := h.banner.View()
		v.Banner = &bv
	}
	for i, r := range h.rows {
		v.Rows = append(v.Rows, r.View())
		v.RowY = append(v.RowY, h.rowY(i))
	}
	return v
}
