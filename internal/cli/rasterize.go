package cli

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tbabzhao-coder/iconforge/pkg/render/svg"
)

// rasterizeCommand creates the command that rasterizes an existing SVG
// source at every manifest size and exports all container formats.
// Without an argument the source defaults to icon.svg inside the output
// directory.
func (c *CLI) rasterizeCommand() *cobra.Command {
	var opts exportOpts

	cmd := &cobra.Command{
		Use:   "rasterize [svg]",
		Short: "Rasterize an SVG icon source and export all formats",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source := filepath.Join(opts.outDir, "icon.svg")
			if len(args) == 1 {
				source = args[0]
			}

			renderer, err := svg.Open(source)
			if err != nil {
				return err
			}
			c.Logger.Info("loaded vector source", "path", source)

			ctx := withLogger(cmd.Context(), c.Logger)
			return c.runExport(ctx, renderer, &opts)
		},
	}

	opts.register(cmd)
	return cmd
}
