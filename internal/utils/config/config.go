package config

import (
	"encoding/hex"
	"os"

	"github.com/joho/godotenv"

	"github.com/junctionlabs/junction-backend/internal/types/environments"
)

type AppConfig struct {
	Environment environments.Environment
	ApiServer   ApiServerConfig
	Postgres    DBConnection
	Bitcoin     BitcoinConfig
	Swap        SwapConfig
}

type ApiServerConfig struct {
	ListenAddr     string
	AllowedOrigins string
}

type DBConnection struct {
	Host string
	Port string
	User string
	Name string
	Pass string

	SSLMode string
}

type BitcoinConfig struct {
	Network           string
	WalletWIF         string
	BlockstreamAPIURL string
}

type SwapConfig struct {
	// MasterDerivationSeed keys deposit-address derivation. Established once
	// at deployment; rotating it changes every issued address.
	MasterDerivationSeed []byte
	SweepSchedule        string
}

func New() *AppConfig {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}

	// this will load .env file for the current environment
	// this will not override env variables if they already exist
	godotenv.Load(".env." + env)

	sweepSchedule := os.Getenv("SWAP_SWEEP_SCHEDULE")
	if sweepSchedule == "" {
		sweepSchedule = "@every 1m"
	}

	return &AppConfig{
		Environment: environments.Environment(env),
		ApiServer: ApiServerConfig{
			ListenAddr:     os.Getenv("API_LISTEN_ADDR"),
			AllowedOrigins: os.Getenv("ALLOWED_ORIGINS"),
		},
		Postgres: DBConnection{
			Host:    os.Getenv("DB_HOST"),
			Port:    os.Getenv("DB_PORT"),
			User:    os.Getenv("DB_USER"),
			Name:    os.Getenv("DB_NAME"),
			Pass:    os.Getenv("DB_PASS"),
			SSLMode: os.Getenv("DB_SSL_MODE"),
		},
		Bitcoin: BitcoinConfig{
			Network:           os.Getenv("BTC_NETWORK"),
			WalletWIF:         os.Getenv("BTC_WALLET_WIF"),
			BlockstreamAPIURL: os.Getenv("BTC_BLOCKSTREAM_API_URL"),
		},
		Swap: SwapConfig{
			MasterDerivationSeed: envVarAsHex("MASTER_DERIVATION_SEED"),
			SweepSchedule:        sweepSchedule,
		},
	}
}

func envVarAsHex(envName string) []byte {
	valueStr := os.Getenv(envName)
	if valueStr == "" {
		return nil
	}

	value, err := hex.DecodeString(valueStr)
	if err != nil {
		panic(err)
	}

	return value
}
