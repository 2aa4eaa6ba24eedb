package swapengine

import (
	"github.com/junctionlabs/junction-backend/internal/model"
)

// Compatible reports whether two open requests form an exact two-party
// exchange: each offers precisely the symbol and chain the other asks for.
// Amounts are not negotiated; A's escrow is the quantity B receives and
// vice versa, so the requesters must have pre-agreed amounts. Deadlines are
// checked by the caller against its clock, not here.
func Compatible(a, b *model.SwapRequest) bool {
	return a.FromSymbol == b.ToSymbol &&
		b.FromSymbol == a.ToSymbol &&
		a.ToChain == b.FromChain &&
		b.ToChain == a.FromChain
}
