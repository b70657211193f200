package ledger

import "errors"

// ErrInvalidInput indicates a malformed or out-of-range operation input.
var ErrInvalidInput = errors.New("invalid input")

// ErrNotFound indicates the referenced entity does not exist in the snapshot.
var ErrNotFound = errors.New("not found")

// ErrInsufficientStock indicates the operation would drive a stock negative.
var ErrInsufficientStock = errors.New("insufficient stock")

// ErrDuplicateName indicates a name collision on a uniqueness-by-name entity.
var ErrDuplicateName = errors.New("name already in use")

// ErrOrphanedReversal indicates a compensating action whose referenced item
// was deleted after the original record was written; the restoration cannot
// be applied and the caller must be told, not silently ignored.
var ErrOrphanedReversal = errors.New("referenced item no longer exists")
