package cache

import "github.com/prometheus/client_golang/prometheus"

// Option configures cache construction using the functional options pattern.
type Option func(*options)

type options struct {
	// registerer is optional. When set, cache counters are also exported
	// as Prometheus metrics labelled with name.
	registerer prometheus.Registerer
	name       string
}

// WithMetrics exports cache statistics as Prometheus metrics registered with
// reg. The name becomes the "cache" label on every metric. A nil registerer
// or empty name disables the option.
func WithMetrics(reg prometheus.Registerer, name string) Option {
	return func(o *options) {
		if reg != nil && name != "" {
			o.registerer = reg
			o.name = name
		}
	}
}

func applyOptions(opts ...Option) *options {
	o := &options{}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return o
}
