package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tbabzhao-coder/iconforge/pkg/iconset"
	"github.com/tbabzhao-coder/iconforge/pkg/packager"
	"github.com/tbabzhao-coder/iconforge/pkg/pipeline"
	"github.com/tbabzhao-coder/iconforge/pkg/render"
	"github.com/tbabzhao-coder/iconforge/pkg/render/mascot"
)

// exportOpts holds the flags shared by the generate and rasterize commands.
type exportOpts struct {
	outDir   string // resources directory for all artifacts
	skipICNS bool   // leave out the macOS container
	skipICO  bool   // leave out the Windows container
}

func (o *exportOpts) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.outDir, "out", "o", defaultOutDir, "output directory for icon artifacts")
	cmd.Flags().BoolVar(&o.skipICNS, "skip-icns", false, "do not build the macOS .icns container")
	cmd.Flags().BoolVar(&o.skipICO, "skip-ico", false, "do not build the Windows .ico container")
}

// packagers assembles the container stages, honoring the skip flags.
func (o *exportOpts) packagers() []packager.Packager {
	var ps []packager.Packager
	if !o.skipICNS {
		ps = append(ps, &packager.ICNS{})
	}
	if !o.skipICO {
		ps = append(ps, packager.ICO{})
	}
	return ps
}

// generateCommand creates the command that draws the built-in robot mascot
// at every manifest size and exports all container formats.
func (c *CLI) generateCommand() *cobra.Command {
	var opts exportOpts

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Draw the built-in mascot icon and export all formats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := withLogger(cmd.Context(), c.Logger)
			return c.runExport(ctx, mascot.New(), &opts)
		},
	}

	opts.register(cmd)
	return cmd
}

// runExport drives the pipeline and prints the outcome summary.
// Packager failures show up as warnings, not as a non-zero exit.
func (c *CLI) runExport(ctx context.Context, r render.Renderer, opts *exportOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	spin := newSpinnerWithContext(ctx, "rendering iconset")
	spin.Start()

	runner := pipeline.NewRunner(r, logger)
	result, err := runner.Execute(ctx, pipeline.Options{
		OutDir:    opts.outDir,
		Packagers: opts.packagers(),
	})
	if err != nil {
		spin.StopWithError("icon export failed")
		return err
	}
	spin.Stop()

	prog.done(fmt.Sprintf("Exported %d bitmaps into %s", result.Rendered+1, opts.outDir))
	printSuccess("%s (%dpx) and %s", pipeline.CanonicalName, iconset.CanonicalSize, iconset.DirName)
	for _, stage := range result.Stages {
		if stage.Err != nil {
			printWarning("icon.%s skipped: %v", stage.Name, stage.Err)
			continue
		}
		printSuccess("icon.%s", stage.Name)
	}
	return nil
}
