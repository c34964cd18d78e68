package sortablequeue

type queueOptions struct {
	capacityHint  int
	initialValues []string
}

// Option configures a queue at construction time.
type Option func(*queueOptions)

// WithCapacityHint pre-sizes the slot arena for n elements. Non-positive
// hints are ignored.
func WithCapacityHint(n int) Option {
	return func(opts *queueOptions) {
		if n > 0 {
			opts.capacityHint = n
		}
	}
}

// WithInitialValues seeds the queue with values in tail order, as if each
// had been passed to InsertTail.
func WithInitialValues(values ...string) Option {
	return func(opts *queueOptions) {
		opts.initialValues = append(opts.initialValues[:0], values...)
	}
}

func defaultOptions() queueOptions {
	return queueOptions{}
}
