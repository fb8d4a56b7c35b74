package ui

import (
	"unicode"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// TextInput is a single-line editor with a rune cursor.
type TextInput struct {
	Text   string
	Cursor int // rune position within Text
	// MaxRunes caps the length; zero means no limit.
	MaxRunes int
}

// NewTextInput creates a TextInput holding text with the cursor at the end.
func NewTextInput(text string) TextInput {
	return TextInput{Text: text, Cursor: utf8.RuneCountInString(text)}
}

// SetText replaces the text and moves the cursor to the end.
func (ti *TextInput) SetText(text string) {
	ti.Text = text
	ti.Cursor = utf8.RuneCountInString(text)
}

// Clear empties the editor.
func (ti *TextInput) Clear() { ti.SetText("") }

type editKey int

const (
	editLeft editKey = iota
	editRight
	editHome
	editEnd
	editBackspace
	editDelete
)

// Update reads this frame's keys and typed characters. It reports whether
// the text changed.
func (ti *TextInput) Update() bool {
	var keys []editKey
	if inputRepeating(ebiten.KeyArrowLeft) {
		keys = append(keys, editLeft)
	}
	if inputRepeating(ebiten.KeyArrowRight) {
		keys = append(keys, editRight)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyHome) {
		keys = append(keys, editHome)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnd) {
		keys = append(keys, editEnd)
	}
	if inputRepeating(ebiten.KeyBackspace) {
		keys = append(keys, editBackspace)
	}
	if inputRepeating(ebiten.KeyDelete) {
		keys = append(keys, editDelete)
	}
	return ti.apply(ebiten.AppendInputChars(nil), keys)
}

// apply types chars at the cursor, then runs keys in order.
func (ti *TextInput) apply(chars []rune, keys []editKey) bool {
	changed := false
	for _, r := range chars {
		if !unicode.IsControl(r) && ti.Insert(string(r)) {
			changed = true
		}
	}
	for _, k := range keys {
		switch k {
		case editLeft:
			ti.Cursor = max(ti.Cursor-1, 0)
		case editRight:
			ti.Cursor = min(ti.Cursor+1, utf8.RuneCountInString(ti.Text))
		case editHome:
			ti.Cursor = 0
		case editEnd:
			ti.Cursor = utf8.RuneCountInString(ti.Text)
		case editBackspace:
			changed = ti.Backspace() || changed
		case editDelete:
			changed = ti.Delete() || changed
		}
	}
	return changed
}

// DisplayText returns the text with a bar drawn at the cursor.
func (ti *TextInput) DisplayText() string {
	before, after := ti.split()
	return before + "│" + after
}

// Insert adds s at the cursor and moves the cursor past it. It refuses
// input that would exceed MaxRunes.
func (ti *TextInput) Insert(s string) bool {
	n := utf8.RuneCountInString(s)
	if ti.MaxRunes > 0 && utf8.RuneCountInString(ti.Text)+n > ti.MaxRunes {
		return false
	}
	before, after := ti.split()
	ti.Text = before + s + after
	ti.Cursor += n
	return true
}

// Backspace deletes the rune before the cursor. It returns false at the start.
func (ti *TextInput) Backspace() bool {
	if ti.CursorAtStart() {
		return false
	}
	before, after := ti.split()
	_, size := utf8.DecodeLastRuneInString(before)
	ti.Text = before[:len(before)-size] + after
	ti.Cursor--
	return true
}

// Delete removes the rune after the cursor. It returns false at the end.
func (ti *TextInput) Delete() bool {
	if ti.CursorAtEnd() {
		return false
	}
	before, after := ti.split()
	_, size := utf8.DecodeRuneInString(after)
	ti.Text = before + after[size:]
	return true
}

// split cuts Text at the cursor.
func (ti *TextInput) split() (before, after string) {
	i := 0
	for n := 0; n < ti.Cursor && i < len(ti.Text); n++ {
		_, size := utf8.DecodeRuneInString(ti.Text[i:])
		i += size
	}
	return ti.Text[:i], ti.Text[i:]
}

func (ti *TextInput) CursorAtStart() bool { return ti.Cursor <= 0 }

func (ti *TextInput) CursorAtEnd() bool {
	return ti.Cursor >= utf8.RuneCountInString(ti.Text)
}
