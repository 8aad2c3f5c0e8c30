package unrolled

import "fmt"

// resolveOptions fills zero fields with defaults and rejects values that
// cannot describe a block layout.
func resolveOptions(opts Options) (Options, error) {
	if opts.NodeCapacity < 0 {
		return opts, fmt.Errorf("%w: node capacity %d must not be negative", ErrInvalidOptions, opts.NodeCapacity)
	}
	if opts.NodeCapacity == 0 {
		opts.NodeCapacity = DefaultNodeCapacity
	}
	return opts, nil
}
