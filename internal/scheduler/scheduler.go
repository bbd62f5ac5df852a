// Package scheduler runs housekeeping tasks on a fixed interval.
package scheduler

import (
	"context"
	"log/slog"
	"time"
)

type Task func(ctx context.Context) error

// Every runs task now and then once per interval until ctx is done. Task
// errors are logged and do not stop the loop.
func Every(ctx context.Context, interval time.Duration, name string, log *slog.Logger, task Task) {
	if log == nil {
		log = slog.Default()
	}
	t := time.NewTicker(interval)
	defer t.Stop()

	runTask := func() {
		if err := task(ctx); err != nil {
			log.Warn("task failed", "task", name, "err", err)
		}
	}

	runTask()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			runTask()
		}
	}
}
