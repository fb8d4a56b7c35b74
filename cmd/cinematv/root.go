package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/depeter/cinematv/assets/icon"
	"github.com/depeter/cinematv/internal/app"
	"github.com/depeter/cinematv/internal/cache"
	"github.com/depeter/cinematv/internal/catalog"
	"github.com/depeter/cinematv/internal/config"
	"github.com/depeter/cinematv/internal/logging"
	"github.com/depeter/cinematv/internal/nav"
	"github.com/depeter/cinematv/internal/ui"
)

type rootOptions struct {
	configPath string
	fullscreen bool
	dark       bool
	startRoute string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "cinematv",
		Short:         "A television media browser",
		Long:          titleStyle.Render("CinemaTV") + "\nBrowse a media catalog with a remote, a keyboard or a mouse.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.loadConfig(cmd)
			if err != nil {
				return err
			}
			return runUI(cfg, opts.startRoute)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "config file (default $XDG_CONFIG_HOME/cinematv/config.toml)")
	cmd.Flags().BoolVarP(&opts.fullscreen, "fullscreen", "f", false, "start in fullscreen")
	cmd.Flags().BoolVar(&opts.dark, "dark", false, "start with the dark theme")
	cmd.Flags().StringVar(&opts.startRoute, "start-route", nav.PatternHome, "route to open first, e.g. details/a1")

	cmd.AddCommand(
		newCatalogCmd(),
		newRouteCmd(),
		newConfigCmd(opts),
	)

	cc.Init(&cc.Config{
		RootCmd:       cmd,
		Headings:      cc.HiCyan + cc.Bold + cc.Underline,
		Commands:      cc.HiYellow + cc.Bold,
		Example:       cc.Italic,
		ExecName:      cc.Bold,
		Flags:         cc.Bold,
		FlagsDataType: cc.Italic + cc.HiBlue,
	})
	return cmd
}

// loadConfig reads the config file and applies the flags the user set.
func (o *rootOptions) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Lookup("fullscreen") != nil && flags.Changed("fullscreen") {
		cfg.UI.Fullscreen = o.fullscreen
	}
	if flags.Lookup("dark") != nil && flags.Changed("dark") {
		cfg.UI.DarkTheme = o.dark
	}
	return cfg, nil
}

func runUI(cfg *config.Config, startRoute string) error {
	closer, err := logging.Setup(cfg.Logging)
	if err != nil {
		return err
	}
	defer closer.Close()

	start, err := nav.Parse(startRoute)
	if err != nil {
		return fmt.Errorf("start route: %w", err)
	}

	if err := ui.InitFonts(nil); err != nil {
		return fmt.Errorf("init fonts: %w", err)
	}

	cacheDir, err := cfg.ImageCacheDir()
	if err != nil {
		return fmt.Errorf("image cache dir: %w", err)
	}
	imgCache, err := cache.NewImageCache(cache.Options{
		Dir:           cacheDir,
		MemoryEntries: cfg.Images.MemoryEntries,
		Disabled:      !cfg.Images.Remote,
	})
	if err != nil {
		return err
	}

	game := app.NewGame(cfg, ui.NewImageResolver(imgCache))
	sf := &screenFactory{game: game, cfg: cfg, cat: catalog.Sample(), cacheDir: cacheDir}
	game.Start(sf.build, start)

	ui.StartEvdev()

	ebiten.SetWindowSize(cfg.UI.Width, cfg.UI.Height)
	ebiten.SetWindowTitle("CinemaTV")
	ebiten.SetWindowIcon(icon.Generate())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.UI.Fullscreen)

	logrus.WithFields(logrus.Fields{
		"size":   fmt.Sprintf("%dx%d", cfg.UI.Width, cfg.UI.Height),
		"remote": cfg.Images.Remote,
	}).Info("cinematv: window opening")
	return ebiten.RunGame(game)
}
