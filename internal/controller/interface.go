package controller

import (
	"time"

	"github.com/junctionlabs/junction-backend/internal/model"
)

// IController is the settlement façade consumed by the transport layer and
// the scheduled jobs. Every mutating operation is serialized through one
// writer lock over the ledger+registry pair; queries read a committed
// snapshot without blocking writers.
type IController interface {
	Deposit(user, symbol string, amount uint64, chain model.Chain) error
	Withdraw(user, symbol string, amount uint64, targetChain model.Chain, targetAddress string) (*model.WithdrawalReceipt, error)
	CreateSwapRequest(user, fromSymbol string, fromAmount uint64, toSymbol string, toChain model.Chain, duration time.Duration) (uint64, error)
	ExecuteSwap(idA, idB uint64) error
	GetSwapRequest(id uint64) (*model.SwapRequest, error)
	ListPendingSwaps() ([]model.SwapRequest, error)
	GetBalance(user, symbol string) (uint64, error)
	GetAllBalances(user string) ([]model.Balance, error)
	GetDepositAddress(user string, chain model.Chain) (string, error)
	SweepExpiredSwaps() (int, error)
	ProcessPendingWithdrawals() error
}
