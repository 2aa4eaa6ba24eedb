package swapengine

import (
	"time"

	"github.com/junctionlabs/junction-backend/internal/model"
)

// IEngine is the swap-request state machine: Open requests either execute
// against a compatible counterpart or expire and refund. Mutating methods
// (Create, Execute, SweepExpired) must be serialized by the caller; the
// controller is the single writer over the ledger+registry pair.
type IEngine interface {
	Create(user, fromSymbol string, fromAmount uint64, toSymbol string, toChain model.Chain, duration time.Duration, now time.Time) (uint64, error)
	Get(id uint64) (*model.SwapRequest, error)
	ListPending(now time.Time) ([]model.SwapRequest, error)
	Execute(idA, idB uint64, now time.Time) error
	SweepExpired(now time.Time) (int, error)
}
