package controller

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/junctionlabs/junction-backend/internal/btcrpc"
	"github.com/junctionlabs/junction-backend/internal/chainaddr"
	"github.com/junctionlabs/junction-backend/internal/ledger"
	"github.com/junctionlabs/junction-backend/internal/model"
	"github.com/junctionlabs/junction-backend/internal/store"
	"github.com/junctionlabs/junction-backend/internal/swapengine"
	"github.com/junctionlabs/junction-backend/internal/utils/config"
	"github.com/junctionlabs/junction-backend/internal/utils/logger"
)

type Controller struct {
	db        *gorm.DB
	store     *store.Store
	ledger    ledger.ILedger
	engine    swapengine.IEngine
	addresses chainaddr.IRegistry
	btcRPC    btcrpc.IBtcRpc
	logger    *logger.Logger
	config    *config.AppConfig

	// mu is the execution lock: all ledger/registry mutations go through
	// it, so a concurrent observer sees a request fully open or fully
	// settled, never in between.
	mu sync.Mutex
}

func New(
	db *gorm.DB,
	s *store.Store,
	ledger ledger.ILedger,
	engine swapengine.IEngine,
	addresses chainaddr.IRegistry,
	btcRPC btcrpc.IBtcRpc,
	logger *logger.Logger,
	config *config.AppConfig,
) IController {
	return &Controller{
		db:        db,
		store:     s,
		ledger:    ledger,
		engine:    engine,
		addresses: addresses,
		btcRPC:    btcRPC,
		logger:    logger,
		config:    config,
	}
}

// Deposit credits a confirmed inbound transfer to the user's free balance.
// The chain tag must match the symbol's fixed custody binding.
func (c *Controller) Deposit(user, symbol string, amount uint64, chain model.Chain) error {
	custodyChain, err := model.ChainForSymbol(symbol)
	if err != nil {
		return err
	}
	if custodyChain != chain {
		return model.ErrUnsupportedChain
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	return store.DoInTx(c.db, func(tx *gorm.DB) error {
		return c.ledger.Credit(tx, user, symbol, amount)
	})
}

// Withdraw debits the user's free balance and records a receipt for the
// external broadcaster. The debit and the receipt commit together; the
// actual chain broadcast happens later, outside the execution lock.
func (c *Controller) Withdraw(user, symbol string, amount uint64, targetChain model.Chain, targetAddress string) (*model.WithdrawalReceipt, error) {
	if amount == 0 {
		// nothing to debit and nothing worth broadcasting
		return nil, model.ErrInsufficientFunds
	}
	if _, err := model.ParseChain(string(targetChain)); err != nil {
		return nil, err
	}
	if err := c.addresses.ValidateAddress(targetChain, targetAddress); err != nil {
		return nil, err
	}

	receipt := &model.WithdrawalReceipt{
		ID:            uuid.NewString(),
		User:          user,
		Symbol:        symbol,
		Amount:        amount,
		TargetChain:   targetChain,
		TargetAddress: targetAddress,
		Status:        model.WithdrawalStatusPending,
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	err := store.DoInTx(c.db, func(tx *gorm.DB) error {
		if err := c.ledger.Debit(tx, user, symbol, amount); err != nil {
			return err
		}

		_, err := c.store.WithdrawalReceipt.Create(tx, receipt)
		return errors.Wrap(err, "failed to create withdrawal receipt")
	})
	if err != nil {
		return nil, err
	}

	c.logger.Info("[Withdraw] withdrawal debited", map[string]string{
		"receipt_id": receipt.ID,
		"user":       user,
		"symbol":     symbol,
	})
	return receipt, nil
}

func (c *Controller) CreateSwapRequest(user, fromSymbol string, fromAmount uint64, toSymbol string, toChain model.Chain, duration time.Duration) (uint64, error) {
	if _, err := model.ParseChain(string(toChain)); err != nil {
		return 0, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	return c.engine.Create(user, fromSymbol, fromAmount, toSymbol, toChain, duration, time.Now())
}

func (c *Controller) ExecuteSwap(idA, idB uint64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.engine.Execute(idA, idB, time.Now())
}

func (c *Controller) GetSwapRequest(id uint64) (*model.SwapRequest, error) {
	return c.engine.Get(id)
}

func (c *Controller) ListPendingSwaps() ([]model.SwapRequest, error) {
	return c.engine.ListPending(time.Now())
}

func (c *Controller) GetBalance(user, symbol string) (uint64, error) {
	return c.ledger.GetBalance(c.db, user, symbol)
}

func (c *Controller) GetAllBalances(user string) ([]model.Balance, error) {
	return c.ledger.GetAllBalances(c.db, user)
}

// GetDepositAddress issues the user's deterministic deposit address on
// chain. Derivation is pure and local; no lock is needed beyond the
// registry's own cache insert.
func (c *Controller) GetDepositAddress(user string, chain model.Chain) (string, error) {
	if _, err := model.ParseChain(string(chain)); err != nil {
		return "", err
	}

	return c.addresses.GetOrCreate(user, chain)
}

// SweepExpiredSwaps refunds every request past its deadline. Runs under the
// same execution lock as ExecuteSwap so the sweep can never race an
// in-flight settlement.
func (c *Controller) SweepExpiredSwaps() (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.engine.SweepExpired(time.Now())
}
