package chainaddress

import (
	"gorm.io/gorm"

	"github.com/junctionlabs/junction-backend/internal/model"
)

type IStore interface {
	Create(tx *gorm.DB, chainAddress *model.ChainAddress) (*model.ChainAddress, error)
	GetByUserChain(tx *gorm.DB, user string, chain model.Chain) (*model.ChainAddress, error)
}
