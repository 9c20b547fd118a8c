// Command asslicegen regenerates the array catalogue and the named
// numerals from catalogue.yaml.
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/rawbytedev/asslice/internal/gen"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		configPath string
		root       string
		check      bool
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "asslicegen",
		Short: "Generate the asslice array catalogue",
		Long: `Generate the FixedArray constraint and the typenum and genarray/v1
numeral aliases from a catalogue file.

Examples:
  asslicegen --config catalogue.yaml --root .
  asslicegen --check`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
				Prefix: "asslicegen",
			})
			if verbose {
				logger.SetLevel(log.DebugLevel)
			}
			return run(logger, configPath, root, check)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "catalogue.yaml", "catalogue file")
	cmd.Flags().StringVarP(&root, "root", "r", ".", "module root to write into")
	cmd.Flags().BoolVar(&check, "check", false, "fail if generated files are out of date instead of writing them")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log every generated file")

	return cmd
}

func run(logger *log.Logger, configPath, root string, check bool) error {
	cfg, err := gen.Load(configPath)
	if err != nil {
		logger.Error("load catalogue", "path", configPath, "err", err)
		return err
	}
	outs, err := gen.Generate(cfg)
	if err != nil {
		logger.Error("render", "err", err)
		return err
	}
	for _, o := range outs {
		logger.Debug("rendered", "file", o.Path, "bytes", len(o.Data))
	}

	if check {
		if err := gen.Check(root, outs); err != nil {
			logger.Error("generated files are stale, run go generate", "err", err)
			return err
		}
		logger.Info("generated files are up to date")
		return nil
	}
	if err := gen.Write(root, outs); err != nil {
		logger.Error("write", "err", err)
		return err
	}
	logger.Info("catalogue generated",
		"arrays", len(cfg.Arrays.Lengths()),
		"numerals", len(cfg.Numerals.Lengths()),
	)
	return nil
}
