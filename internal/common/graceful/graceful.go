package graceful

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"
)

type ProcessStarter func() error

type ProcessStopper func(ctx context.Context) error

type ProcessStartStopper interface {
	Start() ProcessStarter
	Stop() ProcessStopper
}

// StartProcessAtBackground runs every starter on its own goroutine.
func StartProcessAtBackground(ps ...ProcessStarter) {
	for _, p := range ps {
		if p != nil {
			go func(start ProcessStarter) {
				_ = start()
			}(p)
		}
	}
}

// StopProcessAtBackground blocks until SIGINT/SIGTERM, then runs the stoppers.
func StopProcessAtBackground(duration time.Duration, ps ...ProcessStopper) {
	sigterm := make(chan os.Signal, 1)
	signal.Notify(sigterm, syscall.SIGINT, syscall.SIGTERM)
	<-sigterm

	StopProcess(duration, ps...)
}

// StopProcess runs the stoppers in reverse registration order, each with its
// own timeout.
func StopProcess(duration time.Duration, ps ...ProcessStopper) {
	for i := len(ps) - 1; i >= 0; i-- {
		p := ps[i]
		if p == nil {
			continue
		}
		func() {
			ctx, stop := context.WithTimeout(context.Background(), duration)
			defer stop()
			_ = p(ctx)
		}()
	}
}
