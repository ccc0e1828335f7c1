package polyomino

import (
	"io"
	"log/slog"
	"time"
)

// Convergence selects how a run decides it is finished.
type Convergence int

const (
	// ConvergeExhaustion runs until the outermost level has no moves left.
	ConvergeExhaustion Convergence = iota
	// ConvergeStall steps on a fast ticker and stops once two consecutive
	// samples of the recorded elapsed time, StallWindow apart, are equal.
	// It has no exhaustiveness guarantee: a starved ticker can stop early.
	ConvergeStall
)

func (c Convergence) String() string {
	switch c {
	case ConvergeExhaustion:
		return "exhaustion"
	case ConvergeStall:
		return "stall"
	default:
		return "unknown"
	}
}

// ParseConvergence maps "exhaustion" or "stall" to a Convergence.
func ParseConvergence(s string) (Convergence, bool) {
	switch s {
	case "", "exhaustion":
		return ConvergeExhaustion, true
	case "stall":
		return ConvergeStall, true
	default:
		return ConvergeExhaustion, false
	}
}

const (
	defaultPollInterval = time.Millisecond
	defaultStallWindow  = 20 * time.Millisecond
	defaultBatchSize    = 64
)

// Options configures an Enumerator and Generate.
//   - Convergence: ConvergeExhaustion (default) or ConvergeStall.
//   - PollInterval: stall mode step ticker period (default 1ms).
//   - StallWindow: stall mode sampling period (default 20ms).
//   - BatchSize: steps per poll tick in stall mode (default 64).
//   - Seed: sampling seed; 0 seeds from the clock.
//   - Logger: destination for run diagnostics (default discards).
type Options struct {
	Convergence  Convergence
	PollInterval time.Duration
	StallWindow  time.Duration
	BatchSize    int
	Seed         int64
	Logger       *slog.Logger
}

// DefaultOptions returns exhaustion convergence, stall timings of
// 1ms/20ms, batches of 64 steps, a clock seed and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Convergence:  ConvergeExhaustion,
		PollInterval: defaultPollInterval,
		StallWindow:  defaultStallWindow,
		BatchSize:    defaultBatchSize,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// normalize replaces unusable values with defaults.
func (o *Options) normalize() {
	if o.PollInterval <= 0 {
		o.PollInterval = defaultPollInterval
	}
	if o.StallWindow <= 0 {
		o.StallWindow = defaultStallWindow
	}
	if o.BatchSize <= 0 {
		o.BatchSize = defaultBatchSize
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
}

// Option configures Options.
type Option func(*Options)

// WithConvergence selects the convergence policy.
func WithConvergence(c Convergence) Option {
	return func(o *Options) { o.Convergence = c }
}

// WithStallTiming sets the stall mode poll interval and sampling window.
func WithStallTiming(poll, window time.Duration) Option {
	return func(o *Options) {
		o.PollInterval = poll
		o.StallWindow = window
	}
}

// WithBatchSize sets how many steps stall mode runs per poll tick.
func WithBatchSize(n int) Option {
	return func(o *Options) { o.BatchSize = n }
}

// WithSeed makes sampling deterministic. Seed 0 keeps the clock seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithLogger sends run diagnostics to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	o.normalize()
	return o
}
