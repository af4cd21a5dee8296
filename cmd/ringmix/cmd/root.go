package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/ringmix/config"
	"github.com/katalvlaran/ringmix/logger"
)

type rootOpts struct {
	cfgFile string
}

// app is the state shared by all subcommands once the root has initialised.
type app struct {
	v   *viper.Viper
	cfg *config.Config
}

var longRootCmdDescription = `ringmix decrypts a sequence of signed integers by repeatedly moving every
element around a circle by its own value, then reports the grove coordinates:
the values 1000, 2000 and 3000 places after the element 0.
`

// NewRootCmd builds the ringmix command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOpts{}
	a := &app{v: config.New()}

	rootCmd := &cobra.Command{
		Use:           "ringmix",
		Short:         "Decrypt grove coordinates by sqrt-decomposed ring mixing.",
		Long:          longRootCmdDescription,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd, opts.cfgFile)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.cfgFile, "config", "", "config file (default is $HOME/"+config.DefaultFileName+")")
	flags.BoolP("debug", "d", false, "turn on debug logging")
	flags.String("color", config.ColorAlways, fmt.Sprintf("log color mode, one of %v", []string{config.ColorAlways, config.ColorNever}))
	flags.Bool("hide-time", false, "hide the log time")
	flags.Bool("hide-path", false, "hide the log caller path")
	flags.String("log-dir", "", "also write logs to a daily-rotated file in this directory")
	mustBind(a.v, config.KeyLogDebug, flags.Lookup("debug"))
	mustBind(a.v, config.KeyLogColor, flags.Lookup("color"))
	mustBind(a.v, config.KeyHideTime, flags.Lookup("hide-time"))
	mustBind(a.v, config.KeyHidePath, flags.Lookup("hide-path"))
	mustBind(a.v, config.KeyLogDir, flags.Lookup("log-dir"))

	rootCmd.AddCommand(NewMixCmd(a), NewVersionCmd())
	rootCmd.DisableAutoGenTag = true

	return rootCmd
}

// init reads config and sets up logging before any subcommand runs.
func (a *app) init(cmd *cobra.Command, cfgFile string) error {
	if err := config.Load(a.v, cfgFile); err != nil {
		return err
	}
	cfg, err := config.Decode(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	if err := logger.Init(logger.LogOptions{
		OutputPath:   cfg.Log.Dir,
		Verbose:      cfg.Log.Debug,
		DisableColor: cfg.Log.Color == config.ColorNever,
		HideLogTime:  cfg.Log.HideTime,
		HideLogPath:  cfg.Log.HidePath,
		Out:          cmd.ErrOrStderr(),
	}); err != nil {
		return err
	}
	if f := a.v.ConfigFileUsed(); f != "" {
		logrus.Debugf("using config file %s", f)
	}

	return nil
}

// Execute runs the root command and exits non-zero on failure.
// Interrupts cancel the run between mixing rounds.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		logrus.Errorf("ringmix-%s: %v", Version, err)
		stop()
		os.Exit(1)
	}
}

func mustBind(v *viper.Viper, key string, flag *pflag.Flag) {
	if err := v.BindPFlag(key, flag); err != nil {
		panic(fmt.Sprintf("failed to bind flag for %s: %v", key, err))
	}
}
