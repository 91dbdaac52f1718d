package storage

import "errors"

// ErrNotFound is returned by every store for a key that was never set or
// has been deleted.
var ErrNotFound = errors.New("client state key not found")

const (
	KeyToken = "token"
	KeyName  = "name"
	KeyTheme = "theme"
)
