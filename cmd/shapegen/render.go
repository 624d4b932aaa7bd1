package main

import (
	"bytes"
	"os"

	"github.com/spf13/cobra"

	"honnef.co/go/polygen"
	"honnef.co/go/polygen/shapectl"
)

var hullColors = []string{"#8dd3c7", "#ffffb3", "#bebada", "#fb8072", "#80b1d3", "#fdb462"}

func (a *app) renderCmd() *cobra.Command {
	var (
		out   string
		hulls bool
	)
	cmd := &cobra.Command{
		Use:   "render <config>",
		Short: "Draw a shape as SVG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.controller(args[0], shapectl.Options{})
			if err != nil {
				return err
			}
			// Rendering never writes to export targets.
			c.SetExportBehavior(shapectl.ExportDisabled)
			if err := c.Tick(); err != nil {
				return err
			}

			layers := []layer{{shape: c.Shape(), typ: c.Type(), color: "#d9d9d9"}}
			if hulls && c.Type() == polygen.Polygon {
				part, err := c.Partition()
				if err != nil {
					return err
				}
				layers = layers[:0]
				for i, piece := range part {
					layers = append(layers, layer{shape: piece, typ: polygen.Polygon, color: hullColors[i%len(hullColors)]})
				}
			}

			if out == "" {
				return writeSVG(a.stdout, layers)
			}
			var buf bytes.Buffer
			if err := writeSVG(&buf, layers); err != nil {
				return err
			}
			return os.WriteFile(out, buf.Bytes(), 0o644)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "write to `file` instead of standard output")
	cmd.Flags().BoolVar(&hulls, "hulls", false, "draw the convex decomposition")
	return cmd
}
