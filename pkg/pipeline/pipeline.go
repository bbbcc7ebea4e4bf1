// Package pipeline drives the icon export for iconforge.
//
// A run has three stages, executed sequentially:
//
//  1. Canonical: render the 1024px icon.png.
//  2. Iconset: render and persist every manifest entry into icon.iconset/.
//  3. Package: hand the result to each configured platform packager.
//
// Stages 1 and 2 are fatal on error since every later output depends on
// them. Stage 3 is log-and-continue: a missing platform tool skips one
// container format and nothing else.
//
// # Usage
//
//	runner := pipeline.NewRunner(mascot.New(), logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    OutDir:    "resources",
//	    Packagers: []packager.Packager{&packager.ICNS{}, packager.ICO{}},
//	})
package pipeline

import (
	"time"

	"github.com/tbabzhao-coder/iconforge/pkg/packager"
)

// CanonicalName is the file name of the primary full-size icon.
const CanonicalName = "icon.png"

// Options configures a pipeline run.
type Options struct {
	// OutDir is the resources directory receiving icon.png, the iconset
	// directory, and the platform containers. Created if absent.
	OutDir string

	// Packagers run after the iconset is written. Nil means none.
	Packagers []packager.Packager
}

// StageStatus records the outcome of one packager stage.
type StageStatus struct {
	Name string
	Err  error // nil on success
}

// Result reports what a run produced.
type Result struct {
	CanonicalPath string
	IconsetDir    string
	Rendered      int // bitmaps written into the iconset
	Stages        []StageStatus
	Elapsed       time.Duration
}

// Failed returns the names of packager stages that reported an error.
func (r *Result) Failed() []string {
	var names []string
	for _, s := range r.Stages {
		if s.Err != nil {
			names = append(names, s.Name)
		}
	}
	return names
}
