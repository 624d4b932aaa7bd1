package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"honnef.co/go/polygen/shapectl"
)

func (a *app) exportCmd() *cobra.Command {
	var (
		dir     string
		execCtx = shapectl.Editor
	)
	cmd := &cobra.Command{
		Use:   "export <config>",
		Short: "Write a shape to its export targets",
		Long: `Export generates the shape and writes it to every export target listed in
the configuration. Targets are YAML files below the output directory.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.controller(args[0], shapectl.Options{
				Context:  execCtx,
				Resolver: shapectl.DirResolver{Dir: dir},
			})
			if err != nil {
				return err
			}
			if !c.CanExport(execCtx) {
				a.log.Warn("exporting is disabled", "context", execCtx, "behavior", c.ExportBehavior())
			}
			var exported bool
			c.Subscribe(func(ev shapectl.Event) { exported = ev.Exported })
			if err := c.Tick(); err != nil {
				return err
			}
			if exported {
				for _, t := range c.ExportTargets() {
					fmt.Fprintln(a.stdout, filepath.Join(dir, filepath.FromSlash(t)+".yaml"))
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&dir, "dir", "d", ".", "output `directory`")
	cmd.Flags().Var(contextFlag{&execCtx}, "context", "execution context, editor or runtime")
	return cmd
}

// contextFlag adapts an ExecContext to pflag.Value.
type contextFlag struct{ c *shapectl.ExecContext }

func (f contextFlag) String() string {
	if f.c == nil {
		return shapectl.Editor.String()
	}
	return f.c.String()
}

func (f contextFlag) Set(s string) error { return f.c.UnmarshalText([]byte(s)) }
func (f contextFlag) Type() string       { return "context" }
