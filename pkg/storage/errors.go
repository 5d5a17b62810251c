package storage

import "errors"

var (
	// ErrAlreadyInTx rejects Begin and schema migrations on a handle that is
	// already bound to a transaction.
	ErrAlreadyInTx = errors.New("storage: handle is already inside a transaction")
	// ErrNotInTx rejects Commit and Rollback on a pool-bound handle.
	ErrNotInTx = errors.New("storage: handle is not inside a transaction")
)
