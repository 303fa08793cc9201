//go:build !pprof

package cli

import (
	"github.com/alecthomas/kong"

	"github.com/ardnew/dlog/log"
	"github.com/ardnew/dlog/profile"
)

// pprofConfig is empty when built without pprof tag.
type pprofConfig struct{}

func (pprofConfig) vars() kong.Vars { return kong.Vars{} }

func (pprofConfig) group() kong.Group {
	return kong.Group{Key: profile.Tag, Title: "Profiling (pprof)"}
}

// start is a no-op when built without pprof tag.
func (pprofConfig) start(*log.Logger) (stop func()) { return func() {} }
