package main

import (
	"fmt"
	"strings"

	"github.com/depeter/cinematv/internal/app"
	"github.com/depeter/cinematv/internal/browse"
	"github.com/depeter/cinematv/internal/catalog"
	"github.com/depeter/cinematv/internal/config"
	"github.com/depeter/cinematv/internal/nav"
	"github.com/depeter/cinematv/internal/ui"
)

// screenFactory captures the shared dependencies for creating screens.
type screenFactory struct {
	game     *app.Game
	cfg      *config.Config
	cat      *catalog.Catalog
	cacheDir string
}

// build creates the screen for a back stack entry. Each screen gets its own
// scheduler scope, released when the entry is popped.
func (sf *screenFactory) build(e nav.Entry) ui.Screen {
	switch e.Route.Kind {
	case nav.KindDetails:
		return ui.NewDetailScreen(sf.cat, e.Route.ID, sf.game.Images)
	case nav.KindSearch:
		return ui.NewSearchScreen(sf.cat, sf.game.Sched.NewScope(), sf.game.Images)
	case nav.KindSettings:
		return ui.NewSettingsScreen(sf.game.DarkTheme(), sf.game.SetDarkTheme, sf.settingInfo())
	default:
		return ui.NewHomeScreen(sf.cat, sf.game.Sched.NewScope(), sf.game.Images, browse.HomeOptions{
			RotateEvery: sf.cfg.RotateEvery(),
		})
	}
}

// settingInfo lists the effective configuration for the About section.
func (sf *screenFactory) settingInfo() []ui.SettingInfo {
	remote := "off"
	if sf.cfg.Images.Remote {
		remote = "on"
	}
	kb := sf.cfg.Keybinds
	return []ui.SettingInfo{
		{Label: "Window", Value: fmt.Sprintf("%d x %d", sf.cfg.UI.Width, sf.cfg.UI.Height)},
		{Label: "Remote images", Value: remote},
		{Label: "Image cache", Value: sf.cacheDir},
		{Label: "Banner rotation", Value: sf.cfg.RotateEvery().String()},
		{Label: "Log level", Value: strings.ToLower(sf.cfg.Logging.Level)},
		{Label: "Shortcuts", Value: fmt.Sprintf("search %s, settings %s, home %s, fullscreen %s", kb.Search, kb.Settings, kb.Home, kb.Fullscreen)},
		{Label: "Catalog", Value: fmt.Sprintf("%d titles in %d categories", len(sf.cat.All()), len(sf.cat.Categories()))},
	}
}
