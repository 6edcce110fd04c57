package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/pinlat/assembly"
	"github.com/katalvlaran/pinlat/config"
	"github.com/katalvlaran/pinlat/model"
)

// app carries flag values and process-wide dependencies across commands.
type app struct {
	configPath string
	verbose    bool

	log *zap.Logger
	env config.Env
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "pinlat",
		Short:        "pinlat - parametric fuel-assembly builder for OpenMC",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if a.log == nil {
				cfg := zap.NewProductionConfig()
				if a.verbose {
					cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
				}
				log, err := cfg.Build()
				if err != nil {
					return fmt.Errorf("failed to initialize logger: %w", err)
				}
				a.log = log
			}

			env, err := config.LoadEnv()
			if err != nil {
				return err
			}
			a.env = env

			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	cmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "assembly description (YAML); default is the embedded reference")
	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(
		newValidateCmd(a),
		newDescribeCmd(a),
		newExportCmd(a),
		newRunCmd(a),
	)

	return cmd
}

// document loads the description and applies environment overrides.
func (a *app) document() (*config.File, error) {
	var (
		doc *config.File
		err error
	)
	if a.configPath == "" {
		doc = config.Reference()
	} else if doc, err = config.Load(a.configPath); err != nil {
		return nil, err
	}
	a.env.Apply(doc)

	return doc, nil
}

// build loads the description and assembles the model.
func (a *app) build(ctx context.Context) (*model.Model, *config.File, error) {
	doc, err := a.document()
	if err != nil {
		return nil, nil, err
	}
	m, err := assembly.Build(ctx, doc, assembly.WithLogger(a.log), assembly.WithOverlapWarnings())
	if err != nil {
		return nil, nil, err
	}

	return m, doc, nil
}

// outputDir picks the --out flag, falling back to PINLAT_OUTPUT_DIR.
func (a *app) outputDir(flag string) string {
	if flag != "" {
		return flag
	}

	return a.env.OutputDir
}
