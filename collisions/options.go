package collisions

import (
	"runtime"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/prometheus/client_golang/prometheus"
)

// Options configures an Engine.
type Options struct {
	// Log receives build and round diagnostics. Nil disables logging.
	Log logger.Logger
	// Workers bounds the number of goroutines used by FindAllCollisions.
	Workers int
	// Registerer receives the engine metrics. Nil leaves them unregistered.
	Registerer prometheus.Registerer
}

type Option func(*Options)

// NewOptions applies opts over the defaults.
func NewOptions(opts ...Option) Options {
	options := Options{
		Workers: runtime.GOMAXPROCS(0),
	}
	for _, o := range opts {
		o(&options)
	}
	if options.Workers < 1 {
		options.Workers = 1
	}
	return options
}

func WithLogger(log logger.Logger) Option {
	return func(opts *Options) {
		opts.Log = log
	}
}

func WithWorkers(n int) Option {
	return func(opts *Options) {
		opts.Workers = n
	}
}

// WithRegisterer registers the engine metrics with r. Each engine registers
// its own collectors, so engines sharing a registerer must be wrapped with
// distinct labels, see prometheus.WrapRegistererWith.
func WithRegisterer(r prometheus.Registerer) Option {
	return func(opts *Options) {
		opts.Registerer = r
	}
}
