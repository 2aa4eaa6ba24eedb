package model

// Chain identifies a supported settlement chain. Tags arriving from the
// outside are parsed with ParseChain; unrecognized tags are rejected rather
// than defaulted.
type Chain string

const (
	ChainICP      Chain = "ICP"
	ChainBitcoin  Chain = "Bitcoin"
	ChainEthereum Chain = "Ethereum"
)

// ParseChain maps an external chain tag to its Chain variant. Unknown tags
// yield ErrUnsupportedChain.
func ParseChain(tag string) (Chain, error) {
	switch Chain(tag) {
	case ChainICP, ChainBitcoin, ChainEthereum:
		return Chain(tag), nil
	}
	return "", ErrUnsupportedChain
}

// symbolChains pins each custodied symbol to the chain it settles on. A
// symbol is always custodied under the same chain binding, regardless of
// where a deposit originated.
var symbolChains = map[string]Chain{
	"ICP":   ChainICP,
	"BTC":   ChainBitcoin,
	"ETH":   ChainEthereum,
	"ckBTC": ChainICP,
	"ckETH": ChainICP,
}

// ChainForSymbol resolves the custody chain for an asset symbol. Symbols
// outside the table yield ErrUnsupportedChain.
func ChainForSymbol(symbol string) (Chain, error) {
	chain, ok := symbolChains[symbol]
	if !ok {
		return "", ErrUnsupportedChain
	}
	return chain, nil
}
