package btcrpc

// IBtcRpc is the external Bitcoin collaborator: it builds, signs, and
// broadcasts real transactions out of the treasury wallet. It never touches
// ledger state and is only called after the custody debit has committed.
type IBtcRpc interface {
	Send(receiverAddress string, amountSats uint64) (txID string, err error)
	BalanceOf(address string) (uint64, error)
}
