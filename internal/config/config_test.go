package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	Convey("Load", t, func() {
		Convey("a missing default file gives the defaults", func() {
			t.Setenv("XDG_CONFIG_HOME", t.TempDir())
			cfg, err := Load("")
			So(err, ShouldBeNil)
			So(cfg, ShouldResemble, DefaultConfig())
			So(cfg.RotateEvery(), ShouldEqual, 4*time.Second)
			So(cfg.Images.Remote, ShouldBeTrue)
			So(cfg.UI.DarkTheme, ShouldBeFalse)
		})

		Convey("the default file is read from XDG_CONFIG_HOME", func() {
			home := t.TempDir()
			t.Setenv("XDG_CONFIG_HOME", home)
			So(os.MkdirAll(filepath.Join(home, "cinematv"), 0o755), ShouldBeNil)
			So(os.WriteFile(filepath.Join(home, "cinematv", "config.toml"), []byte("[ui]\ndark_theme = true\n"), 0o644), ShouldBeNil)

			cfg, err := Load("")
			So(err, ShouldBeNil)
			So(cfg.UI.DarkTheme, ShouldBeTrue)
			So(cfg.UI.Width, ShouldEqual, 1920)
		})

		Convey("values in the file override the defaults", func() {
			path := writeConfig(t, `
[ui]
width = 1280
height = 720

[images]
remote = false
cache_dir = "/tmp/posters"

[banner]
rotate_seconds = 2.5

[logging]
level = "debug"
format = "json"

[keybinds]
search = "F3"
`)
			cfg, err := Load(path)
			So(err, ShouldBeNil)
			So(cfg.UI.Width, ShouldEqual, 1280)
			So(cfg.UI.Height, ShouldEqual, 720)
			So(cfg.Images.Remote, ShouldBeFalse)
			So(cfg.RotateEvery(), ShouldEqual, 2500*time.Millisecond)
			So(cfg.Logging.Level, ShouldEqual, "debug")
			So(cfg.Keybinds.Search, ShouldEqual, "F3")
			So(cfg.Keybinds.Home, ShouldEqual, "H")

			dir, err := cfg.ImageCacheDir()
			So(err, ShouldBeNil)
			So(dir, ShouldEqual, "/tmp/posters")
		})

		Convey("an explicit path that does not exist is an error", func() {
			_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
			So(err, ShouldNotBeNil)
		})

		Convey("malformed toml is an error", func() {
			_, err := Load(writeConfig(t, "[ui\nwidth = "))
			So(err, ShouldNotBeNil)
		})

		Convey("out of range values are rejected", func() {
			for _, body := range []string{
				"[ui]\nwidth = 0\n",
				"[banner]\nrotate_seconds = -1\n",
				"[logging]\nlevel = \"loud\"\n",
				"[logging]\nformat = \"xml\"\n",
				"[images]\nmemory_entries = 0\n",
			} {
				_, err := Load(writeConfig(t, body))
				So(err, ShouldNotBeNil)
			}
		})
	})
}

func TestEncode(t *testing.T) {
	Convey("Encode writes TOML that loads back unchanged", t, func() {
		cfg := DefaultConfig()
		cfg.UI.DarkTheme = true
		var buf bytes.Buffer
		So(cfg.Encode(&buf), ShouldBeNil)

		back, err := Load(writeConfig(t, buf.String()))
		So(err, ShouldBeNil)
		So(back, ShouldResemble, cfg)
	})
}
