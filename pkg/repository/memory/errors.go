package memory

import (
	"github.com/shiftlens/shiftlens/pkg/domain/interfaces"
)

// ErrNotFound is returned when a requested entity does not exist.
var ErrNotFound = interfaces.ErrNotFound
