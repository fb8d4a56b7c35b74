package browse

import (
	"github.com/sirupsen/logrus"

	"github.com/depeter/cinematv/internal/focus"
)

// SettingsNote is shown under the theme switch.
const SettingsNote = "Theme preference is kept in memory only for this session."

// SettingsView describes the settings page.
type SettingsView struct {
	Title         string
	Label         string
	Dark          bool
	SwitchFocused bool
	Note          string
}

// Settings holds the dark theme switch. The flag is owned by the caller;
// Toggle reports every change through onToggle.
type Settings struct {
	dark     bool
	onToggle func(dark bool)
	ctrl     *focus.Manager
	toggle   *focus.Requester
	focused  bool
}

// NewSettings creates the page showing the current theme flag.
func NewSettings(dark bool, onToggle func(dark bool)) *Settings {
	s := &Settings{
		dark:     dark,
		onToggle: onToggle,
		ctrl:     focus.NewManager(),
		toggle:   focus.NewRequester("settings.dark"),
	}
	s.toggle.Attach(settingsSwitch{s})
	return s
}

type settingsSwitch struct{ s *Settings }

func (sw settingsSwitch) SetFocused(f bool) { sw.s.focused = f }

func (s *Settings) Focus() *focus.Manager { return s.ctrl }
func (s *Settings) Dark() bool            { return s.dark }

// Mount focuses the switch.
func (s *Settings) Mount() { s.ctrl.RequestFocus(s.toggle) }

func (s *Settings) Unmount() { s.ctrl.Clear() }

// Toggle flips the flag and reports the new value.
func (s *Settings) Toggle() {
	s.SetDark(!s.dark)
}

// SetDark sets the flag, reporting a change through onToggle.
func (s *Settings) SetDark(dark bool) {
	if dark == s.dark {
		return
	}
	s.dark = dark
	logrus.WithField("dark", dark).Info("browse: theme changed")
	if s.onToggle != nil {
		s.onToggle(dark)
	}
}

// Activate is the confirm key on the switch.
func (s *Settings) Activate() bool {
	if !s.focused {
		return false
	}
	s.Toggle()
	return true
}

func (s *Settings) View() SettingsView {
	return SettingsView{
		Title:         "Settings",
		Label:         "Dark theme",
		Dark:          s.dark,
		SwitchFocused: s.focused,
		Note:          SettingsNote,
	}
}
