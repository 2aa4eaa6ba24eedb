package model

import "time"

// Balance is a user's free (non-escrowed) holding of one symbol. Rows are
// created on first deposit and never deleted; zero is a valid terminal value.
// Amount is capped at math.MaxInt64 — the column is a signed bigint — and
// the ledger enforces the ceiling before any write reaches the driver.
type Balance struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"-"`
	User      string    `gorm:"column:user_principal;type:varchar(255);not null;uniqueIndex:idx_user_symbol" json:"user"`
	Symbol    string    `gorm:"column:symbol;type:varchar(50);not null;uniqueIndex:idx_user_symbol" json:"symbol"`
	Amount    uint64    `gorm:"column:amount;not null;default:0" json:"amount"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (Balance) TableName() string {
	return "balances"
}
