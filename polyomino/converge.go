package polyomino

import (
	"context"
	"time"
)

// ctxCheckMask sets how often exhaustion mode polls the context: every
// 1024 steps keeps the overhead negligible.
const ctxCheckMask = 1023

// Run drives the search until it converges under the configured policy,
// or until ctx is done, in which case ctx.Err() is returned. Running a
// converged Enumerator again returns immediately.
func (e *Enumerator) Run(ctx context.Context) error {
	e.log.Debug("enumeration started", "convergence", e.opts.Convergence.String())
	var err error
	switch e.opts.Convergence {
	case ConvergeStall:
		err = e.runStall(ctx)
	default:
		err = e.runExhaustion(ctx)
	}
	if err != nil {
		e.log.Warn("enumeration interrupted", "steps", e.steps, "err", err)
		return err
	}
	e.log.Info("enumeration converged",
		"shapes", e.Count(e.size),
		"steps", e.steps,
		"halted", e.halted,
		"elapsed", e.elapsed,
	)
	return nil
}

// runExhaustion steps until the outermost level reports no more moves.
func (e *Enumerator) runExhaustion(ctx context.Context) error {
	for i := 0; e.Step(); i++ {
		if i&ctxCheckMask == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
	}
	return nil
}

// runStall runs BatchSize steps per PollInterval tick and samples Elapsed
// every StallWindow; two equal consecutive samples end the run. Both
// tickers are served from the calling goroutine, so the search state is
// never touched concurrently.
func (e *Enumerator) runStall(ctx context.Context) error {
	poll := time.NewTicker(e.opts.PollInterval)
	defer poll.Stop()
	window := time.NewTicker(e.opts.StallWindow)
	defer window.Stop()

	e.Step()
	last := e.Elapsed()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-poll.C:
			for i := 0; i < e.opts.BatchSize; i++ {
				if !e.Step() {
					break
				}
			}
		case <-window.C:
			cur := e.Elapsed()
			if cur == last {
				return nil
			}
			last = cur
		}
	}
}
