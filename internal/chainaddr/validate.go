package chainaddr

import (
	"encoding/binary"
	"encoding/hex"
	"hash/crc32"

	"github.com/btcsuite/btcd/btcutil"
	ethcommon "github.com/ethereum/go-ethereum/common"

	"github.com/junctionlabs/junction-backend/internal/model"
)

// ValidateAddress checks that address is well formed for the given chain.
// Chains without a validation rule fail with ErrUnsupportedChain; malformed
// addresses fail with ErrInvalidAddress.
func (r *Registry) ValidateAddress(chain model.Chain, address string) error {
	switch chain {
	case model.ChainBitcoin:
		if _, err := btcutil.DecodeAddress(address, r.btcParams); err != nil {
			return model.ErrInvalidAddress
		}
		return nil
	case model.ChainEthereum:
		if !ethcommon.IsHexAddress(address) {
			return model.ErrInvalidAddress
		}
		return nil
	case model.ChainICP:
		if !validICPAccountIdentifier(address) {
			return model.ErrInvalidAddress
		}
		return nil
	}
	return model.ErrUnsupportedChain
}

// validICPAccountIdentifier verifies the 64-hex-char layout and that the
// leading CRC32 matches the trailing SHA-224 digest.
func validICPAccountIdentifier(address string) bool {
	raw, err := hex.DecodeString(address)
	if err != nil || len(raw) != 32 {
		return false
	}

	checksum := binary.BigEndian.Uint32(raw[:4])
	return checksum == crc32.ChecksumIEEE(raw[4:])
}
