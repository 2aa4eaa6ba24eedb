package btcrpc

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"

	"github.com/junctionlabs/junction-backend/internal/btcrpc/blockstream"
	"github.com/junctionlabs/junction-backend/internal/utils/config"
	"github.com/junctionlabs/junction-backend/internal/utils/logger"
)

type BtcRpc struct {
	appConfig     *config.AppConfig
	logger        *logger.Logger
	blockstream   blockstream.IBlockStream
	networkParams *chaincfg.Params
}

func New(appConfig *config.AppConfig, logger *logger.Logger) IBtcRpc {
	params := &chaincfg.TestNet3Params
	if appConfig.Bitcoin.Network == "mainnet" {
		params = &chaincfg.MainNetParams
	}

	return &BtcRpc{
		appConfig:     appConfig,
		logger:        logger,
		blockstream:   blockstream.New(appConfig, logger),
		networkParams: params,
	}
}

// Send pays amountSats to receiverAddress from the treasury wallet: select
// UTXOs covering amount plus fee, build and sign a SegWit transaction with
// a change output back to the treasury, then broadcast it.
func (b *BtcRpc) Send(receiverAddress string, amountSats uint64) (string, error) {
	privKey, senderAddress, err := b.getSelfPrivKeyAndAddress(b.appConfig.Bitcoin.WalletWIF)
	if err != nil {
		return "", err
	}

	receiver, err := btcutil.DecodeAddress(receiverAddress, b.networkParams)
	if err != nil {
		return "", fmt.Errorf("failed to decode receiver address: %v", err)
	}

	selectedUTXOs, changeAmount, err := b.selectUTXOs(senderAddress.EncodeAddress(), int64(amountSats))
	if err != nil {
		return "", err
	}

	tx, err := b.prepareTx(selectedUTXOs, receiver, senderAddress, int64(amountSats), changeAmount)
	if err != nil {
		return "", err
	}

	if err := b.sign(tx, privKey, senderAddress, selectedUTXOs); err != nil {
		return "", err
	}

	txID, err := b.broadcast(tx)
	if err != nil {
		return "", err
	}

	b.logger.Info("[Send] bitcoin transaction broadcast", map[string]string{
		"tx_id":    txID,
		"receiver": receiverAddress,
	})
	return txID, nil
}

// BalanceOf sums the confirmed UTXOs held by address.
func (b *BtcRpc) BalanceOf(address string) (uint64, error) {
	utxos, err := b.getConfirmedUTXOs(address)
	if err != nil {
		return 0, err
	}

	var total uint64
	for _, utxo := range utxos {
		total += uint64(utxo.Value)
	}
	return total, nil
}
