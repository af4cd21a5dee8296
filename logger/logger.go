// Package logger configures the process-wide logrus logger for ringmix
// commands: level, caller reporting, console formatting and an optional
// daily-rotated log file.
package logger

import (
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// LogOptions selects how Init sets up logrus.
type LogOptions struct {
	// OutputPath is the log directory. Empty disables file logging.
	OutputPath string
	// Verbose switches the level from info to debug.
	Verbose bool
	// DisableColor turns off ANSI level colours on the console.
	DisableColor bool
	// HideLogTime drops the timestamp prefix.
	HideLogTime bool
	// HideLogPath drops the file:line of the caller.
	HideLogPath bool
	// Out overrides the console writer; nil keeps logrus' default (stderr).
	Out io.Writer
}

// Init applies options to the standard logrus logger.
func Init(options LogOptions) error {
	if options.Verbose {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}

	logrus.SetReportCaller(true)
	logrus.SetFormatter(&Formatter{
		DisableColor: options.DisableColor,
		HideLogTime:  options.HideLogTime,
		HideLogPath:  options.HideLogPath,
	})
	if options.Out != nil {
		logrus.SetOutput(options.Out)
	}

	if options.OutputPath != "" {
		fh, err := NewFileHook(options.OutputPath)
		if err != nil {
			return errors.Wrap(err, "failed to init log file hook")
		}
		logrus.AddHook(fh)
	}

	return nil
}
