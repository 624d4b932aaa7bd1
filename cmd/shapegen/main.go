// Command shapegen generates shapes from configuration files.
//
// Configuration files are YAML or TOML documents describing the parameters of
// a shape and where to export it. The render command draws the shape as SVG,
// export writes it to the configured export targets, and watch keeps the
// export targets up to date while the configuration file is being edited.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"honnef.co/go/polygen/shapectl"
)

type app struct {
	stdout  io.Writer
	stderr  io.Writer
	verbose bool
	log     *slog.Logger
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}
	root := &cobra.Command{
		Use:           "shapegen",
		Short:         "Generate 2D shapes from configuration files",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if a.verbose {
				level = slog.LevelDebug
			}
			a.log = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level}))
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log debug output")

	root.AddCommand(
		a.renderCmd(),
		a.exportCmd(),
		a.watchCmd(),
	)
	return root
}

// controller returns a controller configured from the file at path.
func (a *app) controller(path string, opts shapectl.Options) (*shapectl.Controller, error) {
	cfg, err := shapectl.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	opts.Logger = a.log
	c := shapectl.New(opts)
	if err := c.Apply(cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "shapegen:", err)
		os.Exit(1)
	}
}
