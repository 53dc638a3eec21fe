// Command indiepixel renders widget tree definitions to images and serves
// live previews of them.
//
// Usage:
//
//	indiepixel serve examples/             # preview server with hot reload
//	indiepixel render clock.yaml -o out.webp
//	indiepixel fonts                       # list available fonts
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/gogpu/indiepixel"
	"github.com/gogpu/indiepixel/fonts"
	"github.com/gogpu/indiepixel/internal/logbridge"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// app carries the configuration shared by all subcommands.
type app struct {
	v     *viper.Viper
	fonts *fonts.Registry
	loc   *time.Location
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}
	setDefaults(a.v)

	var configFile string
	root := &cobra.Command{
		Use:          "indiepixel",
		Short:        "Render small pixel displays from widget trees",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(configFile)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "load configuration from `FILE` (default ./indiepixel.toml)")
	pf.String("fonts", "", "load extra fonts from `DIR`")
	pf.String("log-level", "info", "log level (debug, info, warn, error)")
	mustBind(a.v, "fonts.dir", pf.Lookup("fonts"))
	mustBind(a.v, "log.level", pf.Lookup("log-level"))

	root.AddCommand(newServeCmd(a), newRenderCmd(a), newFontsCmd(a))
	return root
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":5000")
	v.SetDefault("render.duration", "500ms")
	v.SetDefault("render.width", indiepixel.DefaultCanvasWidth)
	v.SetDefault("render.height", indiepixel.DefaultCanvasHeight)
	v.SetDefault("fonts.dir", "")
	v.SetDefault("fonts.size", fonts.DefaultSize)
	v.SetDefault("clock.timezone", "Local")
	v.SetDefault("log.level", "info")

	v.SetEnvPrefix("INDIEPIXEL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

func mustBind(v *viper.Viper, key string, flag *pflag.Flag) {
	// BindPFlag only fails for a nil flag.
	if err := v.BindPFlag(key, flag); err != nil {
		panic(err)
	}
}

// setup reads the configuration file and prepares logging, fonts and the
// time zone.
func (a *app) setup(configFile string) error {
	if configFile != "" {
		a.v.SetConfigFile(configFile)
	} else {
		a.v.SetConfigName("indiepixel")
		a.v.SetConfigType("toml")
		a.v.AddConfigPath(".")
	}
	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("config: %w", err)
		}
	}

	level, err := log.ParseLevel(a.v.GetString("log.level"))
	if err != nil {
		return err
	}
	log.SetFormatter(&log.TextFormatter{DisableColors: true, FullTimestamp: true})
	log.SetLevel(level)
	indiepixel.SetLogger(slog.New(logbridge.New(log.StandardLogger())))

	a.loc, err = time.LoadLocation(a.v.GetString("clock.timezone"))
	if err != nil {
		return fmt.Errorf("config: clock.timezone: %w", err)
	}

	a.fonts = fonts.NewRegistry()
	if dir := a.v.GetString("fonts.dir"); dir != "" {
		names, err := a.fonts.LoadDir(dir, fonts.WithSize(a.v.GetFloat64("fonts.size")))
		if err != nil {
			log.WithError(err).Warnf("Some fonts in %s could not be loaded", dir)
		}
		log.Debugf("Loaded fonts %v from %s", names, dir)
	}
	return nil
}
