package store

import (
	"gorm.io/gorm"
)

// DoInTx runs fn inside a database transaction. A non-nil error from fn
// rolls back every mutation fn applied; observers never see a partially
// settled state.
func DoInTx(db *gorm.DB, fn func(tx *gorm.DB) error) error {
	tx := db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	err := fn(tx)
	if err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}
