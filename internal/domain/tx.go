package domain

import "context"

// TxManager runs fn inside a single storage transaction. Repository calls
// made with the context passed to fn share that transaction; fn returning
// an error rolls everything back.
type TxManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}
