package errutil

import "fmt"

// Maybe wraps err with msg, passing nil through untouched.
func Maybe(msg string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// Must panics on err. For setup code where failure is a programming error.
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
