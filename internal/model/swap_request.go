package model

import "time"

// SwapRequest is an open half of a two-party exchange. While the row exists,
// FromAmount of FromSymbol is held in escrow and excluded from the owner's
// free balance. Rows are removed on execution or expiry refund; ids come
// from the database sequence and are never reused.
type SwapRequest struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	User       string    `gorm:"column:user_principal;type:varchar(255);not null;index" json:"user"`
	FromChain  Chain     `gorm:"column:from_chain;type:varchar(50);not null" json:"from_chain"`
	FromSymbol string    `gorm:"column:from_symbol;type:varchar(50);not null" json:"from_symbol"`
	FromAmount uint64    `gorm:"column:from_amount;not null" json:"from_amount"`
	ToSymbol   string    `gorm:"column:to_symbol;type:varchar(50);not null" json:"to_symbol"`
	ToChain    Chain     `gorm:"column:to_chain;type:varchar(50);not null" json:"to_chain"`
	Deadline   time.Time `gorm:"column:deadline;not null;index" json:"deadline"`
	CreatedAt  time.Time `json:"created_at"`
}

func (SwapRequest) TableName() string {
	return "swap_requests"
}

// FromAsset returns the escrowed side as an Asset value.
func (r *SwapRequest) FromAsset() Asset {
	return Asset{
		Chain:  r.FromChain,
		Symbol: r.FromSymbol,
		Amount: r.FromAmount,
	}
}

// IsExpired reports whether the request's deadline has passed as of now.
func (r *SwapRequest) IsExpired(now time.Time) bool {
	return now.After(r.Deadline)
}
