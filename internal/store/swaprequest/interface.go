package swaprequest

import (
	"time"

	"gorm.io/gorm"

	"github.com/junctionlabs/junction-backend/internal/model"
)

type IStore interface {
	Create(tx *gorm.DB, swapRequest *model.SwapRequest) (*model.SwapRequest, error)
	GetByID(tx *gorm.DB, id uint64) (*model.SwapRequest, error)
	FindPending(tx *gorm.DB, now time.Time) ([]model.SwapRequest, error)
	FindExpired(tx *gorm.DB, now time.Time) ([]model.SwapRequest, error)
	Delete(tx *gorm.DB, id uint64) (int64, error)
}
