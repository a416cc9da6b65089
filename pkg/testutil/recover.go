package testutil

// Recover calls f, and returns the value passed to panic, or nil if f did
// not panic.
func Recover(f func()) (r any) {
	defer func() { r = recover() }()
	f()
	return nil
}
