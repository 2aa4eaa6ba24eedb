package btcrpc

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"sort"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/junctionlabs/junction-backend/internal/btcrpc/blockstream"
)

const (
	p2wpkhInputSize  = 68 // SegWit P2WPKH input size
	p2wpkhOutputSize = 31 // SegWit P2WPKH output size
	txOverhead       = 10 // Transaction overhead

	// widely accepted confirmation target for treasury payouts
	feeTargetBlocks = 6
)

// calculateTxFee estimates the transaction fee based on current network conditions
func (b *BtcRpc) calculateTxFee(feeRates map[string]float64, numInputs, numOutputs, targetBlocks int) (int64, error) {
	target := fmt.Sprintf("%d", targetBlocks)
	feeRate, ok := feeRates[target]
	if !ok {
		return 0, fmt.Errorf("no fee rate available for target %d blocks", targetBlocks)
	}

	txSize := calculateTxSize(numInputs, numOutputs)

	return int64(float64(txSize) * feeRate), nil
}

// calculateTxSize calculates the total transaction size in bytes
func calculateTxSize(numInputs, numOutputs int) int {
	return txOverhead + (numInputs * p2wpkhInputSize) + (numOutputs * p2wpkhOutputSize)
}

func (b *BtcRpc) getSelfPrivKeyAndAddress(wifStr string) (*secp256k1.PrivateKey, *btcutil.AddressWitnessPubKeyHash, error) {
	wif, err := btcutil.DecodeWIF(wifStr)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode wif: %v", err)
	}

	privKey := wif.PrivKey
	pubKey := privKey.PubKey()
	pubKeyHash := btcutil.Hash160(pubKey.SerializeCompressed())

	address, err := btcutil.NewAddressWitnessPubKeyHash(pubKeyHash, b.networkParams)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create sender address: %v", err)
	}

	return privKey, address, nil
}

// prepareTxInputs creates and returns transaction inputs from UTXOs
func (b *BtcRpc) prepareTxInputs(utxos []blockstream.UTXO) ([]*wire.TxIn, error) {
	var inputs []*wire.TxIn

	for _, utxo := range utxos {
		hash, err := chainhash.NewHashFromStr(utxo.TxID)
		if err != nil {
			return nil, fmt.Errorf("failed to create hash: %v", err)
		}
		inputs = append(inputs, wire.NewTxIn(wire.NewOutPoint(hash, uint32(utxo.Vout)), nil, nil))
	}

	return inputs, nil
}

// prepareTxOutputs creates both recipient and change outputs
func (b *BtcRpc) prepareTxOutputs(
	receiverAddress btcutil.Address,
	senderAddress *btcutil.AddressWitnessPubKeyHash,
	amountToSend int64,
	changeAmount int64,
) ([]*wire.TxOut, error) {
	pkScript, err := txscript.PayToAddrScript(receiverAddress)
	if err != nil {
		return nil, fmt.Errorf("failed to create recipient output script: %v", err)
	}
	recipientOutput := wire.NewTxOut(amountToSend, pkScript)

	changePkScript, err := txscript.PayToAddrScript(senderAddress)
	if err != nil {
		return nil, fmt.Errorf("failed to create change output script: %v", err)
	}
	changeOutput := wire.NewTxOut(changeAmount, changePkScript)

	return []*wire.TxOut{recipientOutput, changeOutput}, nil
}

// prepareTx prepares both inputs and outputs for a transaction
func (b *BtcRpc) prepareTx(
	utxos []blockstream.UTXO,
	receiverAddress btcutil.Address,
	senderAddress *btcutil.AddressWitnessPubKeyHash,
	amountToSend int64,
	changeAmount int64,
) (*wire.MsgTx, error) {
	tx := wire.NewMsgTx(2)

	inputs, err := b.prepareTxInputs(utxos)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare inputs: %v", err)
	}
	for _, input := range inputs {
		tx.AddTxIn(input)
	}

	outputs, err := b.prepareTxOutputs(receiverAddress, senderAddress, amountToSend, changeAmount)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare outputs: %v", err)
	}
	for _, output := range outputs {
		tx.AddTxOut(output)
	}

	return tx, nil
}

// sign signs the transaction with the private key for each input
func (b *BtcRpc) sign(
	tx *wire.MsgTx,
	privKey *secp256k1.PrivateKey,
	senderAddress *btcutil.AddressWitnessPubKeyHash,
	selectedUTXOs []blockstream.UTXO,
) error {
	prevOutScript, err := txscript.PayToAddrScript(senderAddress)
	if err != nil {
		return fmt.Errorf("failed to create sender output script: %v", err)
	}

	for i, utxo := range selectedUTXOs {
		prevOuts := txscript.NewCannedPrevOutputFetcher(prevOutScript, utxo.Value)
		witness, err := txscript.WitnessSignature(
			tx,
			txscript.NewTxSigHashes(tx, prevOuts),
			i,
			utxo.Value,
			prevOutScript,
			txscript.SigHashAll,
			privKey,
			true,
		)
		if err != nil {
			return fmt.Errorf("failed to sign transaction input %d: %v", i, err)
		}
		tx.TxIn[i].Witness = witness
		tx.TxIn[i].SignatureScript = nil
	}

	return nil
}

// broadcast serializes the signed transaction and broadcasts it
func (b *BtcRpc) broadcast(tx *wire.MsgTx) (string, error) {
	var signedTx bytes.Buffer
	tx.Serialize(&signedTx)
	txHex := hex.EncodeToString(signedTx.Bytes())

	txID, err := b.blockstream.BroadcastTx(txHex)
	if err != nil {
		return "", fmt.Errorf("failed to broadcast transaction: %v", err)
	}

	return txID, nil
}

func (b *BtcRpc) getConfirmedUTXOs(address string) ([]blockstream.UTXO, error) {
	utxos, err := b.blockstream.GetUTXOs(address)
	if err != nil {
		return nil, err
	}

	var confirmedUTXOs []blockstream.UTXO
	for _, utxo := range utxos {
		if utxo.Status.Confirmed {
			confirmedUTXOs = append(confirmedUTXOs, utxo)
		}
	}
	sort.Slice(confirmedUTXOs, func(i, j int) bool {
		return confirmedUTXOs[i].Value > confirmedUTXOs[j].Value
	})

	return confirmedUTXOs, nil
}

// selectUTXOs picks UTXOs until we have enough to cover amountToSend + fee
// returns selected UTXOs and change amount
// changeAmount = total amount of selected UTXOs - amountToSend - fee
func (b *BtcRpc) selectUTXOs(address string, amountToSend int64) (selected []blockstream.UTXO, changeAmount int64, err error) {
	confirmedUTXOs, err := b.getConfirmedUTXOs(address)
	if err != nil {
		return nil, 0, err
	}

	feeRates, err := b.blockstream.EstimateFees()
	if err != nil {
		return nil, 0, err
	}

	var totalSelected int64
	var fee int64

	for _, utxo := range confirmedUTXOs {
		selected = append(selected, utxo)
		totalSelected += utxo.Value

		// fee grows with each selected input; recompute per iteration for
		// n inputs and 2 outputs (recipient + change)
		fee, err = b.calculateTxFee(feeRates, len(selected), 2, feeTargetBlocks)
		if err != nil {
			return nil, 0, err
		}

		if totalSelected >= amountToSend+fee {
			changeAmount = totalSelected - amountToSend - fee
			return selected, changeAmount, nil
		}
	}

	return nil, 0, fmt.Errorf(
		"insufficient funds: have %d satoshis, need %d satoshis",
		totalSelected,
		amountToSend+fee,
	)
}
