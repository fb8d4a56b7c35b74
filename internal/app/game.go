package app

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/depeter/cinematv/internal/anim"
	"github.com/depeter/cinematv/internal/config"
	"github.com/depeter/cinematv/internal/nav"
	"github.com/depeter/cinematv/internal/ui"
)

// Game implements ebiten.Game and manages the overall application.
type Game struct {
	Config  *config.Config
	Router  *nav.Router
	Sched   *anim.Scheduler
	Images  *ui.ImageResolver
	Screens *ui.ScreenManager

	dark bool
}

// NewGame creates the Game with all dependencies. Screens are built once
// Start is called.
func NewGame(cfg *config.Config, images *ui.ImageResolver) *Game {
	g := &Game{
		Config: cfg,
		Router: nav.NewRouter(),
		Sched:  anim.NewScheduler(),
		Images: images,
		dark:   cfg.UI.DarkTheme,
	}
	ui.SetDarkTheme(g.dark)
	for _, b := range ValidateKeybinds(cfg.Keybinds) {
		logrus.WithField("binding", b).Warn("app: keybind names an unknown key, ignored")
	}
	return g
}

// Start builds the screen stack with factory and moves to start. The back
// stack always begins at Home, so Back from start returns there.
func (g *Game) Start(factory ui.ScreenFactory, start nav.Route) {
	g.Screens = ui.NewScreenManager(g.Router, factory)
	g.Screens.NavBar = ui.NewNavBar("CinemaTV")
	g.Screens.NavBar.ActiveRoute = g.Router.Current().Route
	if start.Kind != nav.KindHome {
		g.Router.Navigate(start)
	}
	logrus.WithField("route", g.Router.Current().Route.String()).Info("app: started")
}

// DarkTheme reports the session's theme flag.
func (g *Game) DarkTheme() bool { return g.dark }

// SetDarkTheme applies the theme to every screen. It lasts until exit.
func (g *Game) SetDarkTheme(dark bool) {
	if dark == g.dark {
		return
	}
	g.dark = dark
	ui.SetDarkTheme(dark)
	logrus.WithField("dark", dark).Info("app: theme changed")
}

func (g *Game) Update() error {
	// Alt+Enter is always fullscreen, like most desktop players.
	altEnter := inpututil.IsKeyJustPressed(ebiten.KeyEnter) && ebiten.IsKeyPressed(ebiten.KeyAlt)
	if altEnter {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	ui.ToggleDebugOverlay()

	sc := shortcutNone
	if !altEnter && !g.Screens.CapturingText() {
		sc = g.pressedShortcut()
	}
	if err := g.step(sc, altEnter); err != nil {
		return err
	}
	ui.UpdateInputState()
	return nil
}

type shortcut int

const (
	shortcutNone shortcut = iota
	shortcutFullscreen
	shortcutSearch
	shortcutSettings
	shortcutHome
)

// pressedShortcut returns the configured single-key shortcut pressed this
// frame.
func (g *Game) pressedShortcut() shortcut {
	kb := g.Config.Keybinds
	switch {
	case keyJustPressed(kb.Fullscreen):
		return shortcutFullscreen
	case keyJustPressed(kb.Search):
		return shortcutSearch
	case keyJustPressed(kb.Settings):
		return shortcutSettings
	case keyJustPressed(kb.Home):
		return shortcutHome
	}
	return shortcutNone
}

// step runs one frame after global keys are read. A frame whose keys were
// consumed by Alt+Enter or a shortcut does not reach the screens, so the
// key that opened a screen is not also typed into it.
func (g *Game) step(sc shortcut, consumed bool) error {
	if g.runShortcut(sc) {
		consumed = true
	}
	if !consumed {
		if err := g.Screens.Update(); err != nil {
			return err
		}
	}
	g.Sched.Tick(ui.FrameDuration)
	return nil
}

// runShortcut performs sc and reports whether it did anything.
func (g *Game) runShortcut(sc shortcut) bool {
	switch sc {
	case shortcutFullscreen:
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	case shortcutSearch:
		g.Screens.Navigate(nav.Search())
	case shortcutSettings:
		g.Screens.Navigate(nav.Settings())
	case shortcutHome:
		g.Screens.Navigate(nav.Home())
	default:
		return false
	}
	return true
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(ui.ColorBackground)
	g.Screens.Draw(screen)
	if ui.DebugOverlayVisible() {
		ui.DrawDebugOverlay(screen, g.debugLines())
	}
}

// debugLines describes the route stack, the input owner and the timer count.
func (g *Game) debugLines() []string {
	routes := lo.Map(g.Router.Stack(), func(e nav.Entry, _ int) string {
		return e.Route.String()
	})
	owner := "screen"
	if g.Screens.NavBarActive() {
		owner = "navbar"
	}
	name := ""
	if s := g.Screens.Current(); s != nil {
		name = s.Name()
	}
	return []string{
		fmt.Sprintf("Routes: %v", routes),
		fmt.Sprintf("Screen: %s (input: %s)", name, owner),
		fmt.Sprintf("Tasks: %d pending at %v", g.Sched.Pending(), g.Sched.Now()),
		fmt.Sprintf("Theme: dark=%v", g.dark),
	}
}

// Layout renders at a fixed logical resolution; ebiten scales it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ui.ScreenWidth, ui.ScreenHeight
}
