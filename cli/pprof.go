//go:build pprof

package cli

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/dlog/log"
	"github.com/ardnew/dlog/profile"
)

type pprofConfig struct {
	Mode string `default:""            enum:",${pprofModeEnum}" help:"Enable profiling"         placeholder:"${enum}" short:"p"`
	Dir  string `default:"${pprofDir}"                          help:"Profile output directory"                                 type:"path"`
}

func (pprofConfig) vars() kong.Vars {
	return kong.Vars{
		"pprofModeEnum": strings.Join(profile.Modes(), ","),
		"pprofDir":      filepath.Join(cacheDir(), profile.Tag),
	}
}

func (pprofConfig) group() kong.Group {
	var group kong.Group

	group.Key = "pprof"
	group.Title = "Profiling (pprof)"

	return group
}

// start starts profiling if configured.
func (f pprofConfig) start(logger *log.Logger) (stop func()) {
	if f.Mode == "" {
		return func() {}
	}

	logger.Debug(profile.Tag, "start mode=", f.Mode, " dir=", f.Dir)

	profiler := profile.Profiler{Mode: f.Mode, Path: f.Dir, Quiet: true}.Start()

	return func() {
		profiler.Stop()
		logger.Debug(profile.Tag, "stop mode=", f.Mode, " dir=", f.Dir)
	}
}
