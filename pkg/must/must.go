// Package must contains simple functions that panic on errors.
//
// It should only be used in tests, examples and rare places where errors are
// provably impossible, such as applying an operator to kinds it is known to
// support.
package must

// OK panics if the error value is not nil. It is intended for use with
// functions that return just an error.
func OK(err error) {
	if err != nil {
		panic(err)
	}
}

// OK1 panics if the error value is not nil. It is intended for use with
// functions that return one value and an error, like the operators of the
// vals package.
func OK1[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
