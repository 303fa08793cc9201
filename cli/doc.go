// Package cli contains the command line interface for dlog.
//
// [Run] is the composition root of the program. It parses flags, creates the
// single process-wide [log.Logger], and hands that logger to the selected
// command.
//
// # Logging Options
//
//   - --log-sinks: Enable sinks (console, filesystem, none)
//   - --log-level: Set the most verbose level written (info, debug, trace)
//   - --log-dir: Set the folder holding the log file
//   - --[no-]log-timestamp: Name the log file log-<unix-seconds>.txt instead
//     of log.txt
//
// # Configuration File
//
// Flag defaults are read from a YAML file in the user configuration
// directory (for example ~/.config/dlog/config.yaml). Keys are flag names,
// with hyphens or underscores, either flat or nested by prefix:
//
//	log-level: debug
//	log:
//	  sinks: [console]
//	  timestamp: false
//
// Command-line flags override config file values. The init command writes
// the current flag values to that file.
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof -o dlog .
//
//   - --pprof-mode: Enable profiling (see [profile.Modes])
//   - --pprof-dir: Set profile output directory
//
// # Examples
//
//	# Console only, INFO and above
//	dlog --log-sinks=console --log-level=info demo
//
//	# 32 writers, 5000 lines each, verified in ./log.txt
//	dlog --no-log-timestamp stress -g 32 -n 5000
package cli
