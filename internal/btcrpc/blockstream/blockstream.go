package blockstream

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/junctionlabs/junction-backend/internal/utils/config"
	"github.com/junctionlabs/junction-backend/internal/utils/logger"
)

const maxBroadcastRetries = 3

type blockstream struct {
	baseURL string
	client  *http.Client
	logger  *logger.Logger
}

func New(cfg *config.AppConfig, logger *logger.Logger) IBlockStream {
	return &blockstream{
		baseURL: cfg.Bitcoin.BlockstreamAPIURL,
		client:  &http.Client{Timeout: 30 * time.Second},
		logger:  logger,
	}
}

func (c *blockstream) BroadcastTx(txHex string) (string, error) {
	url := fmt.Sprintf("%s/tx", c.baseURL)
	var lastErr error

	for attempt := 1; attempt <= maxBroadcastRetries; attempt++ {
		// the payload reader is consumed per attempt
		req, err := http.NewRequest(http.MethodPost, url, strings.NewReader(txHex))
		if err != nil {
			return "", errors.Wrap(err, "failed to create request")
		}
		req.Header.Add("Content-Type", "text/plain")

		resp, err := c.client.Do(req)
		if err != nil {
			lastErr = errors.Wrap(err, "failed to request broadcast transaction")
			c.logger.Error("[BroadcastTx][client.Do]", map[string]string{
				"error":   err.Error(),
				"attempt": strconv.Itoa(attempt),
			})
			time.Sleep(time.Duration(attempt) * time.Second)
			continue
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = errors.Wrap(err, "failed to read response")
			continue
		}

		if resp.StatusCode != http.StatusOK {
			lastErr = fmt.Errorf("broadcast rejected: %s", string(body))
			c.logger.Error("[BroadcastTx] broadcast error", map[string]string{
				"status": strconv.Itoa(resp.StatusCode),
				"body":   string(body),
			})
			time.Sleep(time.Duration(attempt) * time.Second)
			continue
		}

		return strings.TrimSpace(string(body)), nil
	}

	return "", lastErr
}

func (c *blockstream) EstimateFees() (map[string]float64, error) {
	url := fmt.Sprintf("%s/fee-estimates", c.baseURL)

	resp, err := c.client.Get(url)
	if err != nil {
		return nil, errors.Wrap(err, "failed to request fee estimates")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fee estimates returned status %d", resp.StatusCode)
	}

	var fees map[string]float64
	if err := json.NewDecoder(resp.Body).Decode(&fees); err != nil {
		return nil, errors.Wrap(err, "failed to decode fee estimates")
	}

	return fees, nil
}

func (c *blockstream) GetUTXOs(address string) ([]UTXO, error) {
	url := fmt.Sprintf("%s/address/%s/utxo", c.baseURL, address)

	resp, err := c.client.Get(url)
	if err != nil {
		return nil, errors.Wrap(err, "failed to request utxos")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("utxo lookup returned status %d", resp.StatusCode)
	}

	var utxos []UTXO
	if err := json.NewDecoder(resp.Body).Decode(&utxos); err != nil {
		return nil, errors.Wrap(err, "failed to decode utxos")
	}

	return utxos, nil
}
