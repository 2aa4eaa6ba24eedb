package withdrawalreceipt

import (
	"gorm.io/gorm"

	"github.com/junctionlabs/junction-backend/internal/model"
)

type IStore interface {
	Create(tx *gorm.DB, receipt *model.WithdrawalReceipt) (*model.WithdrawalReceipt, error)
	GetByID(tx *gorm.DB, id string) (*model.WithdrawalReceipt, error)
	FindPending(tx *gorm.DB) ([]model.WithdrawalReceipt, error)
	UpdateStatus(tx *gorm.DB, id string, status model.WithdrawalStatus) error
}
