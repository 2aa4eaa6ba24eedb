package swapengine

import (
	"strconv"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/junctionlabs/junction-backend/internal/ledger"
	"github.com/junctionlabs/junction-backend/internal/model"
	"github.com/junctionlabs/junction-backend/internal/store"
	"github.com/junctionlabs/junction-backend/internal/store/swaprequest"
	"github.com/junctionlabs/junction-backend/internal/utils/logger"
)

type Engine struct {
	db        *gorm.DB
	swapStore swaprequest.IStore
	ledger    ledger.ILedger
	logger    *logger.Logger
}

func New(db *gorm.DB, s *store.Store, ledger ledger.ILedger, logger *logger.Logger) IEngine {
	return &Engine{
		db:        db,
		swapStore: s.SwapRequest,
		ledger:    ledger,
		logger:    logger,
	}
}

// Create escrows fromAmount of fromSymbol and registers an open request.
// The debit and the insert commit as one transaction: no observer sees a
// debited balance without the request row, or the row without the debit.
func (e *Engine) Create(user, fromSymbol string, fromAmount uint64, toSymbol string, toChain model.Chain, duration time.Duration, now time.Time) (uint64, error) {
	if duration <= 0 {
		return 0, model.ErrInvalidDuration
	}
	if fromAmount == 0 {
		// a zero escrow can never settle anything; reject before touching
		// the registry
		return 0, model.ErrInsufficientFunds
	}

	fromChain, err := model.ChainForSymbol(fromSymbol)
	if err != nil {
		return 0, err
	}

	swapRequest := &model.SwapRequest{
		User:       user,
		FromChain:  fromChain,
		FromSymbol: fromSymbol,
		FromAmount: fromAmount,
		ToSymbol:   toSymbol,
		ToChain:    toChain,
		Deadline:   now.Add(duration),
	}

	err = store.DoInTx(e.db, func(tx *gorm.DB) error {
		if err := e.ledger.Debit(tx, user, fromSymbol, fromAmount); err != nil {
			return err
		}

		_, err := e.swapStore.Create(tx, swapRequest)
		return errors.Wrap(err, "failed to create swap request")
	})
	if err != nil {
		return 0, err
	}

	e.logger.Info("[Create] swap request escrowed", map[string]string{
		"id":          strconv.FormatUint(swapRequest.ID, 10),
		"user":        user,
		"from_symbol": fromSymbol,
		"to_symbol":   toSymbol,
	})
	return swapRequest.ID, nil
}

func (e *Engine) Get(id uint64) (*model.SwapRequest, error) {
	swapRequest, err := e.swapStore.GetByID(e.db, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, errors.Wrap(err, "failed to load swap request")
	}
	return swapRequest, nil
}

// ListPending returns a snapshot of every non-expired open request. Expired
// rows are filtered, not removed; the sweep owns refunds.
func (e *Engine) ListPending(now time.Time) ([]model.SwapRequest, error) {
	swapRequests, err := e.swapStore.FindPending(e.db, now)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pending swap requests")
	}
	return swapRequests, nil
}

// Execute settles two compatible open requests: each owner is credited the
// other's escrowed asset and both rows are removed, all in one transaction.
// An expired participant is refunded and removed before the call fails with
// ErrExpired; it never settles partially.
func (e *Engine) Execute(idA, idB uint64, now time.Time) error {
	if idA == idB {
		return model.ErrSameRequest
	}

	reqA, err := e.Get(idA)
	if err != nil {
		return err
	}
	reqB, err := e.Get(idB)
	if err != nil {
		return err
	}

	if reqA.IsExpired(now) || reqB.IsExpired(now) {
		err := store.DoInTx(e.db, func(tx *gorm.DB) error {
			for _, req := range []*model.SwapRequest{reqA, reqB} {
				if !req.IsExpired(now) {
					continue
				}
				if err := e.refund(tx, req); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return err
		}
		return model.ErrExpired
	}

	if !Compatible(reqA, reqB) {
		return model.ErrIncompatible
	}

	err = store.DoInTx(e.db, func(tx *gorm.DB) error {
		// remove first: a zero rows-affected delete means a concurrent
		// settlement already consumed the request
		for _, id := range []uint64{idA, idB} {
			removed, err := e.swapStore.Delete(tx, id)
			if err != nil {
				return errors.Wrap(err, "failed to remove swap request")
			}
			if removed == 0 {
				return model.ErrNotFound
			}
		}

		if err := e.ledger.Credit(tx, reqA.User, reqB.FromSymbol, reqB.FromAmount); err != nil {
			return err
		}
		return e.ledger.Credit(tx, reqB.User, reqA.FromSymbol, reqA.FromAmount)
	})
	if err != nil {
		return err
	}

	e.logger.Info("[Execute] swap settled", map[string]string{
		"id_a": strconv.FormatUint(idA, 10),
		"id_b": strconv.FormatUint(idB, 10),
	})
	return nil
}

// SweepExpired refunds and removes every request whose deadline has passed.
// Refund and removal commit together, so a request is never both executed
// and refunded, and a second sweep of the same id is a no-op.
func (e *Engine) SweepExpired(now time.Time) (int, error) {
	expired, err := e.swapStore.FindExpired(e.db, now)
	if err != nil {
		return 0, errors.Wrap(err, "failed to find expired swap requests")
	}
	if len(expired) == 0 {
		return 0, nil
	}

	swept := 0
	err = store.DoInTx(e.db, func(tx *gorm.DB) error {
		for i := range expired {
			if err := e.refund(tx, &expired[i]); err != nil {
				return err
			}
			swept++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	e.logger.Info("[SweepExpired] expired swap requests refunded", map[string]string{
		"count": strconv.Itoa(swept),
	})
	return swept, nil
}

// refund returns a request's escrow to its owner and removes the row. The
// delete gates the credit: if the row is already gone the escrow was
// settled or refunded elsewhere and crediting again would double-spend.
func (e *Engine) refund(tx *gorm.DB, req *model.SwapRequest) error {
	removed, err := e.swapStore.Delete(tx, req.ID)
	if err != nil {
		return errors.Wrap(err, "failed to remove expired swap request")
	}
	if removed == 0 {
		return nil
	}

	return e.ledger.Credit(tx, req.User, req.FromSymbol, req.FromAmount)
}
