// Package log provides a small tagged, leveled logger that writes each
// message as one text line to a console stream, a log file, or both.
//
// # Basic Usage
//
//	logger := log.New(log.DefaultConfig())
//	defer logger.Close()
//
//	logger.Info("net", "listening on ", addr)
//	logger.Log(log.LevelDebug, "net", "accepted ", strconv.Itoa(n), " peers")
//
// Every line has the fixed form
//
//	<LEVEL> | TID:<goroutine-id> | <tag> | <parts...>
//
// where the parts are concatenated with no separator. Callers convert values
// to strings before passing them in.
//
// # Configuration
//
// A [Config] is a plain value. Use [DefaultConfig] and assign fields, or
// apply functional options with [MakeConfig]:
//
//	cfg := log.MakeConfig(
//		log.WithSinks(log.SinkConsole|log.SinkFilesystem),
//		log.WithFolder("/var/log/app"),
//		log.WithTimestamp(false),
//		log.WithLevel(log.LevelDebug))
//
// # Levels
//
// The package supports three levels: [LevelInfo], [LevelDebug], and
// [LevelTrace], from most severe to most verbose. A message is written when
// its level is at or below the configured threshold; other calls return
// before touching any shared state.
//
// # Sinks
//
// [SinkConsole] writes to [Config.Console] (standard output by default).
// [SinkFilesystem] writes to "log-<unix-seconds>.txt" or "log.txt" in
// [Config.FolderPath]. If that file cannot be created, [New] drops the
// filesystem sink and keeps going; [Logger.Sinks] and [Logger.FileErr]
// report what happened.
//
// # Thread Safety
//
// [Logger.Log] and the level helpers hold the logger's lock while writing a
// line to every sink, so lines from concurrent goroutines never interleave.
// [Logger.LogUnlocked] skips the lock. Use it only from a single goroutine
// or while holding [Logger.Lock]:
//
//	logger.Lock()
//	logger.LogUnlocked(log.LevelInfo, "dump", "begin")
//	for _, row := range rows {
//		logger.LogUnlocked(log.LevelInfo, "dump", row)
//	}
//	logger.Unlock()
//
// # Process-Wide Logger
//
// [Init] installs a single process-wide logger used by [Print], [Info],
// [Debug], and [Trace]; [Destroy] closes it. [Get] panics outside that
// window. Building with the nolog tag turns those four functions into
// no-ops; the Force variants always log.
//
// # slog
//
// [NewHandler] adapts a [Logger] to [log/slog].
//
// # zap
//
// [NewZapCore] adapts a [Logger] to go.uber.org/zap:
//
//	z := zap.New(log.NewZapCore(logger, "net"))
//	z.Info("listening", zap.String("addr", addr))
package log
