// Package cli implements the iconforge command-line interface.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/tbabzhao-coder/iconforge/pkg/buildinfo"
)

// appName is the application name used in help text.
const appName = "iconforge"

// defaultOutDir is the resources directory receiving all artifacts.
const defaultOutDir = "resources"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger writing to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Iconforge builds multi-format application icons",
		Long:         `Iconforge rasterizes a single icon source into every artifact an application bundle needs: a canonical icon.png, a macOS iconset directory, an .icns container, and a multi-resolution Windows .ico. The source is either the built-in robot mascot (generate) or an existing SVG file (rasterize).`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.generateCommand())
	root.AddCommand(c.rasterizeCommand())
	root.AddCommand(c.completionCommand())

	return root
}
