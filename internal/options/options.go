// Package options implements a small generic functional-option helper shared
// by the configurable entry points of this module.
package options

// Option configures a value of type T. Options that validate their input
// return an error, which aborts the configuration sequence.
type Option[T any] func(T) error

// NoError adapts a configuration function that cannot fail into an Option.
func NoError[T any](fn func(T)) Option[T] {
	return func(target T) error {
		fn(target)
		return nil
	}
}

// Apply runs opts against target in order and stops at the first error.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if err := opt(target); err != nil {
			return err
		}
	}

	return nil
}
