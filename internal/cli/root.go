// Package cli implements the bmptool command line: argument handling, file
// handling, header dumps and status reporting around the codec and the
// transforms.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/anas-shakeel/go-bmp/internal/bmp"
	"github.com/anas-shakeel/go-bmp/internal/config"
	"github.com/anas-shakeel/go-bmp/internal/logging"
	"github.com/anas-shakeel/go-bmp/internal/simd"
)

// app carries the state shared by every command of one invocation.
type app struct {
	configPath string
	logLevel   string
	strict     bool

	cfg config.Config
	log *zap.Logger
	out io.Writer
}

// NewRootCommand builds the bmptool command tree writing to out.
func NewRootCommand(out io.Writer) *cobra.Command {
	a := &app{out: out, log: zap.NewNop()}

	root := &cobra.Command{
		Use:           "bmptool",
		Short:         "Rotate and tone 24-bit uncompressed BMP images",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}
	root.SetOut(out)

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "bmptool.yml", "YAML configuration file")
	flags.StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error); overrides the configuration")
	flags.BoolVar(&a.strict, "strict", false, "validate bitmap headers before decoding")

	root.AddCommand(
		a.infoCommand(),
		a.rotateCommand(),
		a.sepiaCommand(),
		a.invertCommand(),
		a.grayscaleCommand(),
		a.brightnessCommand(),
		a.contrastCommand(),
		a.channelCommand(),
		a.cropCommand(),
		a.previewCommand(),
		a.batchCommand(),
	)
	return root
}

// Execute runs bmptool with the process arguments and reports failures on stderr.
func Execute() error {
	err := NewRootCommand(os.Stdout).Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, report(err))
	}
	return err
}

// Loads the configuration, applies flag overrides and installs the logger
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if cmd.Flags().Changed("strict") {
		cfg.Decode.Strict = a.strict
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logging.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		return err
	}
	logging.SetLogger(log)

	a.cfg = cfg
	a.log = log.Named("bmptool")
	a.log.Debug("configured",
		zap.String("config", a.configPath),
		zap.Bool("strict", cfg.Decode.Strict),
		zap.String("sepia_mode", cfg.Sepia.Mode),
		zap.String("simd", simd.Name()))
	return nil
}

func (a *app) decodeOptions() []bmp.DecodeOption {
	if a.cfg.Decode.Strict {
		return []bmp.DecodeOption{bmp.Strict()}
	}
	return nil
}

// Formats a failure for stderr; codec errors carry their status message
func report(err error) string {
	return "bmptool: " + err.Error()
}
