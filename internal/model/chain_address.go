package model

import "time"

// ChainAddress memoizes the deterministic deposit address issued to a user
// on one chain. The address is a pure function of (master seed, user, chain),
// so a lost cache row can be replayed without changing the address.
type ChainAddress struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"-"`
	User      string    `gorm:"column:user_principal;type:varchar(255);not null;uniqueIndex:idx_user_chain" json:"user"`
	Chain     Chain     `gorm:"column:chain;type:varchar(50);not null;uniqueIndex:idx_user_chain" json:"chain"`
	Address   string    `gorm:"column:address;type:varchar(255);not null;uniqueIndex" json:"address"`
	CreatedAt time.Time `json:"-"`
}

func (ChainAddress) TableName() string {
	return "chain_addresses"
}
