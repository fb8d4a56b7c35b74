package browse

import (
	"fmt"
	"math"
	"time"

	"github.com/depeter/cinematv/internal/anim"
	"github.com/depeter/cinematv/internal/catalog"
	"github.com/depeter/cinematv/internal/focus"
)

// Row layout and entrance timing.
const (
	PosterWidth   = 180.0
	PosterHeight  = 270.0
	PosterSpacing = 24.0
	RowPitch      = PosterWidth + PosterSpacing
	RowOverscan   = 2

	DefaultViewportWidth = 1280.0

	RowTitleDelay     = 80 * time.Millisecond // per row index
	RowTitleFade      = 240 * time.Millisecond
	RowItemsDelay     = 80 * time.Millisecond // after the title starts
	RowItemsFade      = 220 * time.Millisecond
	RowItemStagger    = 40 * time.Millisecond
	RowItemEntrance   = 220 * time.Millisecond
	RowItemStartScale = 0.92
	RowScrollTween    = 180 * time.Millisecond
)

// RowConfig builds a Row.
type RowConfig struct {
	Title    string
	Records  []catalog.MediaRecord
	Navigate func(id string)
	// FirstItem, if set, is attached to the first poster instead of a
	// requester owned by the row.
	FirstItem *focus.Requester
	// Index is the row's position on its page and delays its entrance.
	Index int
	Scope *anim.Scope
}

// RowItemView is one realized poster.
type RowItemView struct {
	Index  int
	X      float64 // left edge relative to the row, scroll applied
	Alpha  float64
	Scale  float64 // entrance scale, multiplied with the poster's focus scale
	Poster PosterView
}

// RowView describes a row. Items holds only realized posters.
type RowView struct {
	Title      string
	TitleAlpha float64
	ItemsAlpha float64
	Scroll     float64
	Items      []RowItemView
}

type rowItem struct {
	row   *Row
	index int
	card  *PosterCard
	req   *focus.Requester
	alpha anim.Value
	scale anim.Value
	task  *anim.Task
}

func (it *rowItem) SetFocused(f bool) {
	it.card.SetFocused(f)
	if f {
		it.row.focused = it.index
		it.row.lastCol = it.index
		it.row.ensureVisible(it.index)
	} else if it.row.focused == it.index {
		it.row.focused = -1
	}
}

// Row is a horizontally scrolling list of posters. Posters are realized
// lazily: only those near the viewport exist at any time.
type Row struct {
	title    string
	records  []catalog.MediaRecord
	navigate func(id string)
	external *focus.Requester
	index    int
	parent   *anim.Scope
	scope    *anim.Scope

	items    map[int]*rowItem
	focused  int
	lastCol  int
	viewport float64
	scroll   anim.Value
	mountAt  time.Duration
	mounted  bool

	titleAlpha anim.Value
	itemsAlpha anim.Value
}

// NewRow creates a row. Call Mount to start its entrance.
func NewRow(cfg RowConfig) *Row {
	r := &Row{
		title:    cfg.Title,
		records:  append([]catalog.MediaRecord(nil), cfg.Records...),
		navigate: cfg.Navigate,
		external: cfg.FirstItem,
		index:    cfg.Index,
		parent:   cfg.Scope,
		scope:    cfg.Scope.Child(),
		items:    map[int]*rowItem{},
		focused:  -1,
		viewport: DefaultViewportWidth,
	}
	return r
}

func (r *Row) Title() string { return r.title }
func (r *Row) Len() int      { return len(r.records) }

// Mount schedules the entrance and realizes the visible posters.
func (r *Row) Mount() {
	if r.mounted {
		return
	}
	r.mounted = true
	r.mountAt = r.scope.Now()
	if len(r.records) == 0 {
		return
	}
	titleAt := r.titleStart()
	r.scope.After(titleAt, func() {
		r.titleAlpha.TweenTo(1, RowTitleFade, anim.Linear)
	})
	r.scope.After(titleAt+RowItemsDelay, func() {
		r.itemsAlpha.TweenTo(1, RowItemsFade, anim.Linear)
	})
	r.realize()
}

// Unmount cancels pending entrance work and detaches every requester. A
// later Mount starts over.
func (r *Row) Unmount() {
	r.scope.Cancel()
	r.scope = r.parent.Child()
	for i := range r.items {
		r.unrealize(i)
	}
	r.focused = -1
	r.mounted = false
	r.titleAlpha.Snap(0)
	r.itemsAlpha.Snap(0)
}

// Close unmounts the row for good and releases its scope. A closed row must
// not be mounted again.
func (r *Row) Close() {
	r.Unmount()
	r.scope.Cancel()
}

func (r *Row) titleStart() time.Duration {
	return time.Duration(r.index) * RowTitleDelay
}

// EntranceStart returns when poster n begins its entrance, relative to Mount.
func (r *Row) EntranceStart(n int) time.Duration {
	return r.titleStart() + RowItemsDelay + time.Duration(n)*RowItemStagger
}

// SetViewport sets the visible width and realizes posters for it.
func (r *Row) SetViewport(width float64) {
	if width <= 0 || width == r.viewport {
		return
	}
	r.viewport = width
	if r.mounted {
		r.realize()
	}
}

// RealizedRange returns the first and last realized index, or -1, -1.
func (r *Row) RealizedRange() (int, int) {
	lo, hi := -1, -1
	for i := range r.items {
		if lo < 0 || i < lo {
			lo = i
		}
		if i > hi {
			hi = i
		}
	}
	return lo, hi
}

// Realized reports whether poster i currently exists.
func (r *Row) Realized(i int) bool {
	_, ok := r.items[i]
	return ok
}

func (r *Row) wanted() (int, int) {
	n := len(r.records)
	s0, s1 := r.scroll.Get(), r.scroll.Target()
	left, right := math.Min(s0, s1), math.Max(s0, s1)+r.viewport
	first := int(left/RowPitch) - RowOverscan
	last := int(math.Ceil(right/RowPitch)) - 1 + RowOverscan
	if first < 0 {
		first = 0
	}
	if last > n-1 {
		last = n - 1
	}
	return first, last
}

func (r *Row) keep(i int) bool {
	if i == r.focused {
		return true
	}
	return i == 0 && r.external != nil
}

func (r *Row) realize() {
	if len(r.records) == 0 {
		return
	}
	first, last := r.wanted()
	for i := range r.items {
		if (i < first || i > last) && !r.keep(i) {
			r.unrealize(i)
		}
	}
	for i := first; i <= last; i++ {
		r.realizeAt(i)
	}
	if r.external != nil {
		r.realizeAt(0)
	}
	if r.focused >= 0 {
		r.realizeAt(r.focused)
	}
}

func (r *Row) realizeAt(i int) *rowItem {
	if it, ok := r.items[i]; ok {
		return it
	}
	rec := r.records[i]
	id := rec.ID
	it := &rowItem{
		row:   r,
		index: i,
		card: NewPosterCard(rec.Title, rec.Poster, func() {
			if r.navigate != nil {
				r.navigate(id)
			}
		}),
	}
	if i == 0 && r.external != nil {
		it.req = r.external
	} else {
		it.req = focus.NewRequester(fmt.Sprintf("%s[%d]", r.title, i))
	}
	it.req.Attach(it)

	delay := r.mountAt + r.EntranceStart(i) - r.scope.Now()
	if delay <= 0 && r.scope.Now() > r.mountAt {
		// Scrolled in after its turn: no entrance.
		it.alpha = anim.NewValue(1)
		it.scale = anim.NewValue(1)
	} else {
		it.alpha = anim.NewValue(0)
		it.scale = anim.NewValue(RowItemStartScale)
		it.task = r.scope.After(delay, func() {
			it.alpha.TweenTo(1, RowItemEntrance, anim.EaseOutCubic)
			it.scale.TweenTo(1, RowItemEntrance, anim.EaseOutCubic)
		})
	}
	r.items[i] = it
	return it
}

func (r *Row) unrealize(i int) {
	it, ok := r.items[i]
	if !ok {
		return
	}
	it.task.Cancel()
	if it.req.Target() == focus.Target(it) {
		it.req.Detach()
	}
	delete(r.items, i)
}

func (r *Row) ensureVisible(i int) {
	left := float64(i) * RowPitch
	right := left + PosterWidth
	target := r.scroll.Target()
	switch {
	case left < target:
		target = left
	case right > target+r.viewport:
		target = right - r.viewport
	}
	if target != r.scroll.Target() {
		r.scroll.TweenTo(target, RowScrollTween, anim.EaseOutCubic)
		r.realize()
	}
}

// HasFocus reports whether one of the row's posters holds focus.
func (r *Row) HasFocus() bool { return r.focused >= 0 }

// FocusedIndex returns the focused poster, or -1.
func (r *Row) FocusedIndex() int { return r.focused }

// LastColumn returns the poster that most recently held focus.
func (r *Row) LastColumn() int { return r.lastCol }

// FocusItem focuses poster i, clamped to the row. It returns false for an
// empty row.
func (r *Row) FocusItem(i int, ctrl focus.Controller) bool {
	if len(r.records) == 0 {
		return false
	}
	if i < 0 {
		i = 0
	}
	if i > len(r.records)-1 {
		i = len(r.records) - 1
	}
	r.ensureVisible(i)
	it := r.realizeAt(i)
	return ctrl.RequestFocus(it.req)
}

// Move handles Left and Right. It returns false at either end or for any
// other direction.
func (r *Row) Move(dir focus.Direction, ctrl focus.Controller) bool {
	if r.focused < 0 {
		return false
	}
	next := r.focused
	switch dir {
	case focus.DirLeft:
		next--
	case focus.DirRight:
		next++
	default:
		return false
	}
	if next < 0 || next >= len(r.records) {
		return false
	}
	return r.FocusItem(next, ctrl)
}

// ActivateFocused confirms the focused poster.
func (r *Row) ActivateFocused() bool {
	it, ok := r.items[r.focused]
	if !ok {
		return false
	}
	it.card.Activate()
	return true
}

// Click presses poster i if it is realized.
func (r *Row) Click(i int) bool {
	it, ok := r.items[i]
	if !ok {
		return false
	}
	it.card.Click()
	return true
}

// Card returns poster i if it is realized.
func (r *Row) Card(i int) (*PosterCard, bool) {
	it, ok := r.items[i]
	if !ok {
		return nil, false
	}
	return it.card, true
}

// Requester returns the requester of poster i if it is realized.
func (r *Row) Requester(i int) (*focus.Requester, bool) {
	it, ok := r.items[i]
	if !ok {
		return nil, false
	}
	return it.req, true
}

func (r *Row) Tick(dt time.Duration) {
	scrolling := r.scroll.Active()
	r.scroll.Tick(dt)
	r.titleAlpha.Tick(dt)
	r.itemsAlpha.Tick(dt)
	for _, it := range r.items {
		it.alpha.Tick(dt)
		it.scale.Tick(dt)
		it.card.Tick(dt)
	}
	if r.mounted && scrolling {
		r.realize()
	}
}

// Animating reports whether any part of the row is still moving.
func (r *Row) Animating() bool {
	if r.scroll.Active() || r.titleAlpha.Active() || r.itemsAlpha.Active() {
		return true
	}
	for _, it := range r.items {
		if it.alpha.Active() || it.scale.Active() || it.card.Animating() || it.task.Active() {
			return true
		}
	}
	return false
}

// View describes the row. An empty row has no title and no items.
func (r *Row) View() RowView {
	if len(r.records) == 0 {
		return RowView{}
	}
	v := RowView{
		Title:      r.title,
		TitleAlpha: r.titleAlpha.Get(),
		ItemsAlpha: r.itemsAlpha.Get(),
		Scroll:     r.scroll.Get(),
	}
	first, last := r.RealizedRange()
	if first < 0 {
		return v
	}
	for i := first; i <= last; i++ {
		it, ok := r.items[i]
		if !ok {
			continue
		}
		v.Items = append(v.Items, RowItemView{
			Index:  i,
			X:      float64(i)*RowPitch - v.Scroll,
			Alpha:  it.alpha.Get(),
			Scale:  it.scale.Get(),
			Poster: it.card.View(),
		})
	}
	return v
}
