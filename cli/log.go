package cli

import (
	"io"

	"github.com/alecthomas/kong"

	"github.com/ardnew/dlog/log"
	"github.com/ardnew/dlog/pkg"
)

type logConfig struct {
	Sinks     []string `default:"console,filesystem" enum:"console,filesystem,none" help:"Enable log sinks."`
	Level     string   `default:"trace"              enum:"info,debug,trace"        help:"Set most verbose log level."`
	Dir       string   `default:"."                                                 help:"Set log file folder."`
	Timestamp bool     `default:"true"                                              help:"Add a timestamp to the log file name." negatable:""`
}

func (*logConfig) vars() kong.Vars {
	return kong.Vars{}
}

func (*logConfig) group() kong.Group {
	var group kong.Group

	group.Key = "log"
	group.Title = "Logging options"

	return group
}

// config translates the parsed flags into a [log.Config] writing console
// output to console.
func (f *logConfig) config(console io.Writer) (log.Config, error) {
	sinks, err := log.ParseSinks(f.Sinks...)
	if err != nil {
		return log.Config{}, err
	}

	return log.MakeConfig(
		log.WithSinks(sinks),
		log.WithFolder(f.Dir),
		log.WithTimestamp(f.Timestamp),
		log.WithLevel(log.ParseLevel(f.Level)),
		log.WithConsole(console),
	), nil
}

// start initializes the process-wide logger and returns it with a function
// that destroys it.
func (f *logConfig) start(console io.Writer) (*log.Logger, func(), error) {
	cfg, err := f.config(console)
	if err != nil {
		return nil, nil, err
	}

	logger, err := log.Init(cfg)
	if err != nil {
		return nil, nil, err
	}

	if err := logger.FileErr(); err != nil {
		logger.Info(pkg.Name, "filesystem sink unavailable: ", err.Error())
	}

	logger.Trace(pkg.Name,
		"logger initialized: sinks=", logger.Sinks().String(),
		" level=", logger.Level().String(),
		" file=", logger.Path(),
	)

	return logger, func() { _ = log.Destroy() }, nil
}
