package data

import "errors"

var (
	// ErrDataUnavailable is returned when a dataset was never loaded.
	ErrDataUnavailable = errors.New("data not available")
	// ErrKeyNotFound is returned by stores for keys that were never written.
	ErrKeyNotFound = errors.New("key not found")
)
