package ledger

import (
	"gorm.io/gorm"

	"github.com/junctionlabs/junction-backend/internal/model"
)

// ILedger is the single source of truth for custodied free balances.
// Credit and Debit take the caller's transaction handle so a balance
// mutation commits or rolls back together with the registry mutation that
// triggered it.
type ILedger interface {
	Credit(tx *gorm.DB, user, symbol string, amount uint64) error
	Debit(tx *gorm.DB, user, symbol string, amount uint64) error
	GetBalance(tx *gorm.DB, user, symbol string) (uint64, error)
	GetAllBalances(tx *gorm.DB, user string) ([]model.Balance, error)
}
