package ledger

import (
	"math"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/junctionlabs/junction-backend/internal/model"
	"github.com/junctionlabs/junction-backend/internal/store/balance"
	"github.com/junctionlabs/junction-backend/internal/utils/logger"
)

type Ledger struct {
	store  balance.IStore
	logger *logger.Logger
}

func New(store balance.IStore, logger *logger.Logger) ILedger {
	return &Ledger{
		store:  store,
		logger: logger,
	}
}

// Credit increases a user's free balance, creating the row on first touch.
// Balances live in [0, math.MaxInt64]: the amount column is a signed 64-bit
// integer, so a credit that would push the balance past that ceiling fails
// with ErrOverflow and leaves the row unchanged.
func (l *Ledger) Credit(tx *gorm.DB, user, symbol string, amount uint64) error {
	if amount == 0 {
		return errors.New("credit amount must be positive")
	}

	bal, err := l.store.Get(tx, user, symbol)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.Wrap(err, "failed to load balance")
		}
		bal = &model.Balance{
			User:   user,
			Symbol: symbol,
			Amount: 0,
		}
	}

	if amount > math.MaxInt64 || bal.Amount > math.MaxInt64-amount {
		l.logger.Error("[Credit] balance overflow", map[string]string{
			"user":   user,
			"symbol": symbol,
		})
		return model.ErrOverflow
	}

	bal.Amount += amount
	return errors.Wrap(l.store.Save(tx, bal), "failed to save balance")
}

// Debit decreases a user's free balance. A free balance below amount fails
// with ErrInsufficientFunds; a missing row counts as zero.
func (l *Ledger) Debit(tx *gorm.DB, user, symbol string, amount uint64) error {
	bal, err := l.store.Get(tx, user, symbol)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.ErrInsufficientFunds
		}
		return errors.Wrap(err, "failed to load balance")
	}

	if bal.Amount < amount {
		return model.ErrInsufficientFunds
	}

	bal.Amount -= amount
	return errors.Wrap(l.store.Save(tx, bal), "failed to save balance")
}

func (l *Ledger) GetBalance(tx *gorm.DB, user, symbol string) (uint64, error) {
	bal, err := l.store.Get(tx, user, symbol)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, errors.Wrap(err, "failed to load balance")
	}
	return bal.Amount, nil
}

// GetAllBalances returns every symbol the user has ever held, ordered by
// symbol. Zero balances stay in the result; a zero is a terminal value, not
// an absence.
func (l *Ledger) GetAllBalances(tx *gorm.DB, user string) ([]model.Balance, error) {
	balances, err := l.store.GetAllByUser(tx, user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load balances")
	}
	return balances, nil
}
