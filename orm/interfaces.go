package orm

import "github.com/iov-one/xswap"

// Model is what is stored in the bucket. Models serialize to a fixed-width
// binary layout.
type Model interface {
	xswap.Persistent
	// Validate returns error if the object is not in a valid
	// state to save to the db (eg. field missing, out of range, ...)
	Validate() error
}
