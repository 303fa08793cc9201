package cmd

import (
	"context"
	"log/slog"
	"strconv"

	"go.uber.org/zap"

	"github.com/ardnew/dlog/log"
)

// Demo exercises every logging entry point once.
type Demo struct {
	Tag string `default:"MG" help:"Tag used by the tagged calls"`
}

// Run executes the demo command.
func (d *Demo) Run(ctx context.Context, logger *log.Logger) error {
	log.Print("This is the most basic log call. ",
		"It leaves the tag empty and logs at INFO.")

	log.Debug(d.Tag, "In this case, ",
		"the level is DEBUG and the call specifies a tag.")
	log.Info(d.Tag, "Info logs at INFO instead")
	log.Trace(d.Tag, "And Trace logs at TRACE")

	a, b, blah := 30, float32(12), " blah blah blah "
	log.Print("Callers convert values to text themselves: ",
		strconv.Itoa(a), ", ",
		strconv.FormatFloat(float64(b), 'g', -1, 32), ", ",
		blah)

	log.Print("Building with -tags nolog removes every call above. ",
		"The calls below log regardless.")

	logger.Log(log.LevelInfo, d.Tag, "However, explicit calls will work.")
	log.ForceDebug(d.Tag, "In the same way the Force functions will work too.")

	log.ForceInfo(d.Tag, "Parts are concatenated like a print function, ",
		"but nothing is inserted between them. ",
		"If you want spaces, you need to add them yourself.")

	logger.Lock()
	logger.LogUnlocked(log.LevelDebug, d.Tag, "Holding the lock, ")
	logger.LogUnlocked(log.LevelDebug, d.Tag, "unlocked calls stay adjacent.")
	logger.Unlock()

	slog.New(log.NewHandler(logger, d.Tag)).InfoContext(ctx,
		"slog records share the format",
		slog.Int("answer", 42),
	)

	zap.New(log.NewZapCore(logger, d.Tag)).Info("and so do zap entries",
		zap.Int("answer", 42),
	)

	return nil
}
