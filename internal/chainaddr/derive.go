package chainaddr

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"hash/crc32"
	"io"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	"golang.org/x/crypto/hkdf"

	"github.com/junctionlabs/junction-backend/internal/model"
)

// derivationSalt domain-separates deposit-address keys from any other use
// of the master seed. Changing it changes every issued address.
const derivationSalt = "junction.deposit.v1"

const icpAccountDomainSeparator = "\x0Aaccount-id"

// deriveKey stretches (seed, user, chain) into a secp256k1 key pair via
// HKDF-SHA256. The derivation depends only on its inputs, never on call
// order or any counter.
func (r *Registry) deriveKey(user string, chain model.Chain) (*secp256k1.PublicKey, error) {
	info := fmt.Sprintf("%s|%s", user, chain)
	kdf := hkdf.New(sha256.New, r.seed, []byte(derivationSalt), []byte(info))

	keyBytes := make([]byte, 32)
	if _, err := io.ReadFull(kdf, keyBytes); err != nil {
		return nil, errors.Wrap(err, "failed to derive key material")
	}

	_, pubKey := btcec.PrivKeyFromBytes(keyBytes)
	return pubKey, nil
}

func (r *Registry) deriveAddress(user string, chain model.Chain) (string, error) {
	pubKey, err := r.deriveKey(user, chain)
	if err != nil {
		return "", err
	}

	switch chain {
	case model.ChainBitcoin:
		return r.bitcoinAddress(pubKey)
	case model.ChainEthereum:
		return ethereumAddress(pubKey), nil
	case model.ChainICP:
		return icpAccountIdentifier(pubKey), nil
	}
	return "", model.ErrUnsupportedChain
}

// bitcoinAddress encodes the derived key as a P2WPKH address on the
// configured network.
func (r *Registry) bitcoinAddress(pubKey *secp256k1.PublicKey) (string, error) {
	pubKeyHash := btcutil.Hash160(pubKey.SerializeCompressed())
	address, err := btcutil.NewAddressWitnessPubKeyHash(pubKeyHash, r.btcParams)
	if err != nil {
		return "", errors.Wrap(err, "failed to encode bitcoin address")
	}
	return address.EncodeAddress(), nil
}

func ethereumAddress(pubKey *secp256k1.PublicKey) string {
	return ethcrypto.PubkeyToAddress(*pubKey.ToECDSA()).Hex()
}

// icpAccountIdentifier builds a ledger account identifier: a CRC32 checksum
// over the SHA-224 digest of the domain-separated public key, hex encoded.
func icpAccountIdentifier(pubKey *secp256k1.PublicKey) string {
	data := append([]byte(icpAccountDomainSeparator), pubKey.SerializeCompressed()...)
	digest := sha256.Sum224(data)

	checksum := make([]byte, 4)
	binary.BigEndian.PutUint32(checksum, crc32.ChecksumIEEE(digest[:]))

	return hex.EncodeToString(checksum) + hex.EncodeToString(digest[:])
}
