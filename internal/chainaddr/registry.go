package chainaddr

import (
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/junctionlabs/junction-backend/internal/model"
	"github.com/junctionlabs/junction-backend/internal/store/chainaddress"
	"github.com/junctionlabs/junction-backend/internal/utils/config"
	"github.com/junctionlabs/junction-backend/internal/utils/logger"
)

type Registry struct {
	db        *gorm.DB
	store     chainaddress.IStore
	seed      []byte
	btcParams *chaincfg.Params
	logger    *logger.Logger
}

func New(db *gorm.DB, store chainaddress.IStore, appConfig *config.AppConfig, logger *logger.Logger) (IRegistry, error) {
	if len(appConfig.Swap.MasterDerivationSeed) < 16 {
		return nil, errors.New("master derivation seed missing or too short")
	}

	return &Registry{
		db:        db,
		store:     store,
		seed:      appConfig.Swap.MasterDerivationSeed,
		btcParams: networkParams(appConfig.Bitcoin.Network),
		logger:    logger,
	}, nil
}

func networkParams(network string) *chaincfg.Params {
	if network == "mainnet" {
		return &chaincfg.MainNetParams
	}
	return &chaincfg.TestNet3Params
}

// GetOrCreate returns the user's deposit address on chain, deriving and
// caching it on first request.
func (r *Registry) GetOrCreate(user string, chain model.Chain) (string, error) {
	existing, err := r.store.GetByUserChain(r.db, user, chain)
	if err == nil {
		return existing.Address, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", errors.Wrap(err, "failed to load chain address")
	}

	address, err := r.deriveAddress(user, chain)
	if err != nil {
		return "", err
	}

	_, err = r.store.Create(r.db, &model.ChainAddress{
		User:    user,
		Chain:   chain,
		Address: address,
	})
	if err != nil {
		// a concurrent first call may have won the insert; the derivation
		// is deterministic, so the cached row carries the same address
		if cached, readErr := r.store.GetByUserChain(r.db, user, chain); readErr == nil {
			return cached.Address, nil
		}
		return "", errors.Wrap(err, "failed to cache chain address")
	}

	r.logger.Info("[GetOrCreate] deposit address issued", map[string]string{
		"user":  user,
		"chain": string(chain),
	})
	return address, nil
}
