package llogs

// Driver is the contract every logging backend satisfies.
type Driver interface {
	Close() bool
}
