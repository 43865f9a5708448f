package orderedmap

import (
	"errors"
	"fmt"
)

// ErrKeyNotFound matches every *KeyNotFoundError under errors.Is, whatever its key type.
var ErrKeyNotFound = errors.New("key not found in dictionary")

// ErrEmpty is returned by PopItem on a map with no entries.
var ErrEmpty = errors.New("dictionary is empty, no items to pop")

// KeyNotFoundError is returned when an operation requires a key that is not present.
// NoDefault is set when the operation would have accepted a default value but none was given.
type KeyNotFoundError[K comparable] struct {
	MissingKey K
	NoDefault  bool
}

func (e *KeyNotFoundError[K]) Error() string {
	if e.NoDefault {
		return fmt.Sprintf("%s and no default exists: %v", ErrKeyNotFound, e.MissingKey)
	}
	return fmt.Sprintf("%s: %v", ErrKeyNotFound, e.MissingKey)
}

func (e *KeyNotFoundError[K]) Is(target error) bool {
	return target == ErrKeyNotFound
}
