package interfaces

import "github.com/m-mizutani/goerr/v2"

// ErrNotFound is returned by any repository when the requested entity does
// not exist. Implementations wrap it with entity-specific context.
var ErrNotFound = goerr.New("entity not found")
