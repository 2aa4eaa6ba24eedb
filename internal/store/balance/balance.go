package balance

import (
	"gorm.io/gorm"

	"github.com/junctionlabs/junction-backend/internal/model"
)

type Store struct {
}

func New() IStore {
	return &Store{}
}

func (s *Store) Get(tx *gorm.DB, user, symbol string) (*model.Balance, error) {
	var balance model.Balance
	err := tx.Where("user_principal = ? AND symbol = ?", user, symbol).First(&balance).Error
	if err != nil {
		return nil, err
	}
	return &balance, nil
}

func (s *Store) GetAllByUser(tx *gorm.DB, user string) ([]model.Balance, error) {
	var balances []model.Balance
	err := tx.Where("user_principal = ?", user).Order("symbol asc").Find(&balances).Error
	if err != nil {
		return nil, err
	}
	return balances, nil
}

func (s *Store) Save(tx *gorm.DB, balance *model.Balance) error {
	return tx.Save(balance).Error
}
