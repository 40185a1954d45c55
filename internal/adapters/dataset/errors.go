package dataset

import "errors"

// Sentinel kinds for dataset errors.
var (
	ErrOpenDataset = errors.New("open dataset failed")
	ErrBadHeader   = errors.New("bad dataset header")
	ErrBadValue    = errors.New("bad dataset value")
	ErrDuplicate   = errors.New("duplicate observation")
)
