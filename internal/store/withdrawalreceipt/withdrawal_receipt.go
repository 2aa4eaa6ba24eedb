package withdrawalreceipt

import (
	"time"

	"gorm.io/gorm"

	"github.com/junctionlabs/junction-backend/internal/model"
)

type Store struct {
}

func New() IStore {
	return &Store{}
}

func (s *Store) Create(tx *gorm.DB, receipt *model.WithdrawalReceipt) (*model.WithdrawalReceipt, error) {
	return receipt, tx.Create(receipt).Error
}

func (s *Store) GetByID(tx *gorm.DB, id string) (*model.WithdrawalReceipt, error) {
	var receipt model.WithdrawalReceipt
	err := tx.Where("id = ?", id).First(&receipt).Error
	if err != nil {
		return nil, err
	}
	return &receipt, nil
}

func (s *Store) FindPending(tx *gorm.DB) ([]model.WithdrawalReceipt, error) {
	var receipts []model.WithdrawalReceipt
	err := tx.Where("status = ?", model.WithdrawalStatusPending).
		Order("created_at asc").Find(&receipts).Error
	if err != nil {
		return nil, err
	}
	return receipts, nil
}

func (s *Store) UpdateStatus(tx *gorm.DB, id string, status model.WithdrawalStatus) error {
	updates := map[string]interface{}{
		"status": status,
	}
	if status == model.WithdrawalStatusBroadcast {
		updates["broadcast_at"] = time.Now()
	}

	return tx.Model(&model.WithdrawalReceipt{}).
		Where("id = ?", id).
		Updates(updates).Error
}
