package greeter

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/tartampluch/go-greeting/internal/config"
)

// Greeter is the core component. It emits the fixed greeting line followed by
// the current wall-clock timestamp, as two newline-terminated lines on Out.
type Greeter struct {
	Clock Clock     // Interface for time mocking.
	Out   io.Writer // Destination stream, os.Stdout in production.
}

// Run executes the single linear sequence: emit greeting, read clock, format,
// emit timestamp line. It returns a wrapped error if either write fails, or
// ctx.Err() if the context was cancelled before any output was produced.
func (g *Greeter) Run(ctx context.Context) error {
	log := slog.With(config.LogKeyComponent, config.CompGreeter)

	// Check for early cancellation before touching the output stream. Once the
	// first line is out we run to completion; a partial transcript is worse
	// than a late one.
	if err := ctx.Err(); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(g.Out, config.GreetingLine); err != nil {
		return fmt.Errorf("%s: %w", config.ErrWriteOutput, err)
	}

	// Single clock read per invocation. Local time, not UTC: the greeting
	// reports the date and time as the user's calendar sees it.
	stamp := FormatTimestamp(g.Clock.Now())

	if _, err := fmt.Fprintln(g.Out, config.TimestampPrefix+stamp); err != nil {
		return fmt.Errorf("%s: %w", config.ErrWriteOutput, err)
	}

	log.DebugContext(ctx, config.MsgGreetingDone, config.LogKeyTimestamp, stamp)
	return nil
}
