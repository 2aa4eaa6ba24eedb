package model

import "time"

type WithdrawalStatus string

const (
	WithdrawalStatusPending   WithdrawalStatus = "pending"
	WithdrawalStatusBroadcast WithdrawalStatus = "broadcast"
	WithdrawalStatusFailed    WithdrawalStatus = "failed"
)

// WithdrawalReceipt records a debit handed off to the external chain
// broadcaster. The debit is synchronous; broadcast and confirmation happen
// asynchronously against this row.
type WithdrawalReceipt struct {
	ID            string           `gorm:"primaryKey;column:id;type:varchar(36)" json:"id"`
	User          string           `gorm:"column:user_principal;type:varchar(255);not null;index" json:"user"`
	Symbol        string           `gorm:"column:symbol;type:varchar(50);not null" json:"symbol"`
	Amount        uint64           `gorm:"column:amount;not null" json:"amount"`
	TargetChain   Chain            `gorm:"column:target_chain;type:varchar(50);not null" json:"target_chain"`
	TargetAddress string           `gorm:"column:target_address;type:varchar(255);not null" json:"target_address"`
	Status        WithdrawalStatus `gorm:"column:status;type:varchar(50);default:'pending'" json:"status"`
	BroadcastAt   *time.Time       `gorm:"column:broadcast_at" json:"broadcast_at,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"-"`
}

func (WithdrawalReceipt) TableName() string {
	return "withdrawal_receipts"
}
