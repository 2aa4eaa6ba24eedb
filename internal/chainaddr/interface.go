package chainaddr

import (
	"github.com/junctionlabs/junction-backend/internal/model"
)

// IRegistry issues deterministic per-(user, chain) deposit addresses. The
// address is a pure function of the master derivation seed, the user's
// principal, and the chain tag; replaying the derivation after losing the
// cache yields the same address.
type IRegistry interface {
	GetOrCreate(user string, chain model.Chain) (string, error)
	ValidateAddress(chain model.Chain, address string) error
}
