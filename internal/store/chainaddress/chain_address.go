package chainaddress

import (
	"gorm.io/gorm"

	"github.com/junctionlabs/junction-backend/internal/model"
)

type Store struct {
}

func New() IStore {
	return &Store{}
}

func (s *Store) Create(tx *gorm.DB, chainAddress *model.ChainAddress) (*model.ChainAddress, error) {
	return chainAddress, tx.Create(chainAddress).Error
}

func (s *Store) GetByUserChain(tx *gorm.DB, user string, chain model.Chain) (*model.ChainAddress, error) {
	var chainAddress model.ChainAddress
	err := tx.Where("user_principal = ? AND chain = ?", user, chain).First(&chainAddress).Error
	if err != nil {
		return nil, err
	}
	return &chainAddress, nil
}
