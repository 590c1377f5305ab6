package dbctx

import (
	"context"

	"gorm.io/gorm"
)

// Context is the calling convention for every repo method: the request
// context plus the transaction the service opened for the mutation. A nil Tx
// means the repo runs the statement on its root handle, which is how the
// read-only list paths call in.
type Context struct {
	Ctx context.Context
	Tx  *gorm.DB
}
