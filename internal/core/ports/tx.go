package ports

import "context"

// TxManager runs fn inside a storage transaction. Repositories called with the
// ctx handed to fn take part in the transaction; any error returned by fn
// rolls every write back.
type TxManager interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
