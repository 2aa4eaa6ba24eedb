package model

// Asset is a quantity of a fungible asset class. Amount is denominated in
// the asset's smallest unit (satoshis, wei, e8s); no floating point crosses
// the custody boundary.
type Asset struct {
	Chain  Chain  `json:"chain"`
	Symbol string `json:"symbol"`
	Amount uint64 `json:"amount"`
}
