package feature

import "fmt"

// ErrKeyNotFound indicates a strict Put on a key the feature cannot
// store: either the key is not registered in the Context, or its slot
// lies beyond this feature's value array.
type ErrKeyNotFound struct {
	Key string
}

func (e *ErrKeyNotFound) Error() string {
	return fmt.Sprintf("key does not exist: %q", e.Key)
}

// ErrIndexOutOfRange indicates a geometry access outside the feature's
// geometry collection.
type ErrIndexOutOfRange struct {
	Index  int
	Length int
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("geometry index %d out of range [0, %d)", e.Index, e.Length)
}
