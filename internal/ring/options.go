package ring

type ringOptions struct {
	capacityHint int
}

// Option configures a ring at construction time.
type Option func(*ringOptions)

// WithCapacityHint pre-sizes the arena for n payload slots so early
// allocations do not grow it. Non-positive hints are ignored.
func WithCapacityHint(n int) Option {
	return func(opts *ringOptions) {
		if n > 0 {
			opts.capacityHint = n
		}
	}
}

func defaultOptions() ringOptions {
	return ringOptions{}
}
