package memory

import "errors"

// ErrNotStored is returned by Update when the record was never created
var ErrNotStored = errors.New("memory: record not stored")
