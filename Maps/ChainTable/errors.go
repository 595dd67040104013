package ChainTable

import "github.com/pkg/errors"

var (
	ErrCapacity  = errors.New("ChainTable: capacity out of range")
	ErrNoHash    = errors.New("ChainTable: hash function is nil")
	ErrEmptyKey  = errors.New("ChainTable: key is empty")
	ErrInvalid   = errors.New("ChainTable: table is nil or destroyed")
	ErrDuplicate = errors.New("ChainTable: key already exists")
	ErrNotFound  = errors.New("ChainTable: key not found")
)

func capacityError(requested uint32) error {
	return errors.Wrapf(ErrCapacity, "requested %d, allowed [1, %d]", requested, MaxBuckets)
}
