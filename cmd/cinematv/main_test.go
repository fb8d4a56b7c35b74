package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/BurntSushi/toml"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/depeter/cinematv/internal/app"
	"github.com/depeter/cinematv/internal/catalog"
	"github.com/depeter/cinematv/internal/config"
	"github.com/depeter/cinematv/internal/nav"
	"github.com/depeter/cinematv/internal/ui"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCatalogCommands(t *testing.T) {
	Convey("catalog subcommands", t, func() {
		Convey("list prints every category in order", func() {
			out, err := execute(t, "catalog", "list")
			So(err, ShouldBeNil)
			So(out, ShouldContainSubstring, "Recommended")
			So(out, ShouldContainSubstring, "Thriller")
			So(out, ShouldContainSubstring, "Eclipse Protocol")
		})

		Convey("list filters by category name", func() {
			out, err := execute(t, "catalog", "list", "--category", "horror")
			So(err, ShouldBeNil)
			So(out, ShouldContainSubstring, "Horror")
			So(out, ShouldNotContainSubstring, "Recommended")

			_, err = execute(t, "catalog", "list", "--category", "western")
			So(err, ShouldNotBeNil)
		})

		Convey("search matches title and synopsis case-insensitively", func() {
			out, err := execute(t, "catalog", "search", "QUIET")
			So(err, ShouldBeNil)
			So(out, ShouldContainSubstring, "Quiet Roads")

			out, err = execute(t, "catalog", "search", "zz")
			So(err, ShouldBeNil)
			So(out, ShouldContainSubstring, `No results for "zz"`)
		})

		Convey("show prints the details page", func() {
			out, err := execute(t, "catalog", "show", "a1")
			So(err, ShouldBeNil)
			So(out, ShouldContainSubstring, "Eclipse Protocol")
			So(out, ShouldContainSubstring, "2023 • Action • 4.2★")
			So(out, ShouldContainSubstring, "Overview")
		})

		Convey("show reports unknown ids", func() {
			_, err := execute(t, "catalog", "show", "nope")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "Item not found")
		})
	})
}

func TestRouteCommand(t *testing.T) {
	Convey("route", t, func() {
		out, err := execute(t, "route", "details/a1")
		So(err, ShouldBeNil)
		So(out, ShouldContainSubstring, "Eclipse Protocol")

		out, err = execute(t, "route", "details/ghost")
		So(err, ShouldBeNil)
		So(out, ShouldContainSubstring, "Item not found")

		_, err = execute(t, "route", "details/")
		So(errors.Is(err, nav.ErrMissingID), ShouldBeTrue)

		_, err = execute(t, "route", "library")
		So(errors.Is(err, nav.ErrUnknownRoute), ShouldBeTrue)
	})
}

func TestConfigCommand(t *testing.T) {
	Convey("config prints the effective configuration", t, func() {
		out, err := execute(t, "config")
		So(err, ShouldBeNil)

		var cfg config.Config
		_, err = toml.Decode(out, &cfg)
		So(err, ShouldBeNil)
		So(cfg, ShouldResemble, *config.DefaultConfig())

		Convey("an explicit file overrides the defaults", func() {
			path := filepath.Join(t.TempDir(), "cinematv.toml")
			So(os.WriteFile(path, []byte("[ui]\ndark_theme = true\n"), 0o644), ShouldBeNil)

			out, err := execute(t, "--config", path, "config")
			So(err, ShouldBeNil)
			So(out, ShouldContainSubstring, "dark_theme = true")
		})

		Convey("a missing explicit file is an error", func() {
			_, err := execute(t, "--config", filepath.Join(t.TempDir(), "missing.toml"), "config")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestScreenFactory(t *testing.T) {
	Convey("screen factory", t, func() {
		cfg := config.DefaultConfig()
		game := app.NewGame(cfg, ui.NewImageResolver(nil))
		sf := &screenFactory{game: game, cfg: cfg, cat: catalog.Sample(), cacheDir: "/tmp/cinematv"}

		cases := map[nav.Route]string{
			nav.Home():         "Home",
			nav.Search():       "Search",
			nav.Settings():     "Settings",
			nav.Details("a1"):  "Details",
			nav.Details("zzz"): "Details",
		}
		for r, name := range cases {
			So(sf.build(nav.Entry{ID: 1, Route: r}).Name(), ShouldEqual, name)
		}

		Convey("settings lists the effective config", func() {
			info := sf.settingInfo()
			So(info, ShouldNotBeEmpty)
			So(info[0], ShouldResemble, ui.SettingInfo{Label: "Window", Value: "1920 x 1080"})
		})
	})
}
