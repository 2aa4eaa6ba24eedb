package controller

import (
	"github.com/pkg/errors"

	"github.com/junctionlabs/junction-backend/internal/model"
)

var errNoBroadcaster = errors.New("no broadcaster configured for chain")

// ProcessPendingWithdrawals hands debited withdrawals to the external chain
// collaborators. It runs outside the execution lock: the ledger debit is
// already committed, and broadcast latency must not stall settlements.
func (c *Controller) ProcessPendingWithdrawals() error {
	pending, err := c.store.WithdrawalReceipt.FindPending(c.db)
	if err != nil {
		return err
	}

	for i := range pending {
		receipt := &pending[i]
		if err := c.dispatchWithdrawal(receipt); err != nil {
			c.logger.Warn("[ProcessPendingWithdrawals] broadcast failed", map[string]string{
				"receipt_id": receipt.ID,
				"error":      err.Error(),
			})
			// leave the receipt pending; the next run retries
			continue
		}

		err = c.store.WithdrawalReceipt.UpdateStatus(c.db, receipt.ID, model.WithdrawalStatusBroadcast)
		if err != nil {
			return err
		}
	}

	return nil
}

func (c *Controller) dispatchWithdrawal(receipt *model.WithdrawalReceipt) error {
	switch receipt.TargetChain {
	case model.ChainBitcoin:
		if c.btcRPC == nil {
			return errNoBroadcaster
		}
		_, err := c.btcRPC.Send(receipt.TargetAddress, receipt.Amount)
		return err
	default:
		// ICP and Ethereum transfers are executed by their own external
		// collaborators; this core only records the hand-off.
		c.logger.Info("[dispatchWithdrawal] handed off to external chain", map[string]string{
			"receipt_id": receipt.ID,
			"chain":      string(receipt.TargetChain),
		})
		return nil
	}
}
