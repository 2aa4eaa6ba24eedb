package store

import (
	"github.com/junctionlabs/junction-backend/internal/store/balance"
	"github.com/junctionlabs/junction-backend/internal/store/chainaddress"
	"github.com/junctionlabs/junction-backend/internal/store/swaprequest"
	"github.com/junctionlabs/junction-backend/internal/store/withdrawalreceipt"
)

type Store struct {
	Balance           balance.IStore
	SwapRequest       swaprequest.IStore
	ChainAddress      chainaddress.IStore
	WithdrawalReceipt withdrawalreceipt.IStore
}

func New() *Store {
	return &Store{
		Balance:           balance.New(),
		SwapRequest:       swaprequest.New(),
		ChainAddress:      chainaddress.New(),
		WithdrawalReceipt: withdrawalreceipt.New(),
	}
}
