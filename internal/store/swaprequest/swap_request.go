package swaprequest

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

func (s *Store) Create(tx *gorm.DB, swapRequest *model.SwapRequest) (*model.SwapRequest, error) {
	return swapRequest, tx.Create(swapRequest).Error
}

func (s *Store) GetByID(tx *gorm.DB, id uint64) (*model.SwapRequest, error) {
	var swapRequest model.SwapRequest
	err := tx.Where("id = ?", id).First(&swapRequest).Error
	if err != nil {
		return nil, err
	}
	return &swapRequest, nil
}

// FindPending returns a snapshot of all requests whose deadline has not
// passed as of now.
func (s *Store) FindPending(tx *gorm.DB, now time.Time) ([]model.SwapRequest, error) {
	var swapRequests []model.SwapRequest
	err := tx.Where("deadline >= ?", now).Order("id asc").Find(&swapRequests).Error
	if err != nil {
		return nil, err
	}
	return swapRequests, nil
}

func (s *Store) FindExpired(tx *gorm.DB, now time.Time) ([]model.SwapRequest, error) {
	var swapRequests []model.SwapRequest
	err := tx.Where("deadline < ?", now).Order("id asc").Find(&swapRequests).Error
	if err != nil {
		return nil, err
	}
	return swapRequests, nil
}

// Delete removes a request by id and reports the number of rows removed.
// Deleting an already-removed id is a no-op, which guards the refund path
// against double execution.
func (s *Store) Delete(tx *gorm.DB, id uint64) (int64, error) {
	res := tx.Where("id = ?", id).Delete(&model.SwapRequest{})
	return res.RowsAffected, res.Error
}
