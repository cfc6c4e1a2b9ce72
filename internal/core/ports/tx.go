package ports

import "context"

// TxRunner executes fn inside a single storage transaction. The transaction
// travels in the returned context: repository calls made with it share the
// same transaction and commit or roll back together. Cancelling the request
// context aborts the whole transaction.
type TxRunner interface {
	InTx(ctx context.Context, fn func(ctx context.Context) error) error
}
