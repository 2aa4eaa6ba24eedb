package balance

import (
	"gorm.io/gorm"

	"github.com/junctionlabs/junction-backend/internal/model"
)

type IStore interface {
	Get(tx *gorm.DB, user, symbol string) (*model.Balance, error)
	GetAllByUser(tx *gorm.DB, user string) ([]model.Balance, error)
	Save(tx *gorm.DB, balance *model.Balance) error
}
