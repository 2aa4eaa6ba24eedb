package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseChain(t *testing.T) {
	for _, tag := range []string{"ICP", "Bitcoin", "Ethereum"} {
		chain, err := ParseChain(tag)
		require.NoError(t, err)
		assert.Equal(t, Chain(tag), chain)
	}

	for _, tag := range []string{"", "bitcoin", "Solana", "BTC"} {
		_, err := ParseChain(tag)
		assert.ErrorIs(t, err, ErrUnsupportedChain, "tag %q", tag)
	}
}

func TestChainForSymbol(t *testing.T) {
	cases := map[string]Chain{
		"ICP":   ChainICP,
		"BTC":   ChainBitcoin,
		"ETH":   ChainEthereum,
		"ckBTC": ChainICP,
		"ckETH": ChainICP,
	}
	for symbol, want := range cases {
		chain, err := ChainForSymbol(symbol)
		require.NoError(t, err)
		assert.Equal(t, want, chain)
	}

	_, err := ChainForSymbol("DOGE")
	assert.ErrorIs(t, err, ErrUnsupportedChain)
}

func TestSwapRequestIsExpired(t *testing.T) {
	now := time.Now()
	r := SwapRequest{Deadline: now.Add(time.Hour)}

	assert.False(t, r.IsExpired(now))
	assert.False(t, r.IsExpired(r.Deadline))
	assert.True(t, r.IsExpired(r.Deadline.Add(time.Nanosecond)))
}
