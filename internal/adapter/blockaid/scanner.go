// Package blockaid implements ports.SecurityScanner against the wallet backend's
// scan proxy.
package blockaid

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"stellar-wallet-core/internal/core/domain"
	"stellar-wallet-core/pkg/logger"

	"github.com/rs/zerolog"
)

const (
	pathScanAsset  = "/scan-asset"
	pathScanAssets = "/scan-asset-bulk"
	pathScanSite   = "/scan-dapp"
	pathScanTx     = "/scan-tx"

	// Scans only run on the public network.
	scanNetwork = "public"

	maxResponseBytes = 1 << 20
)

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// envelope is the proxy's response wrapper.
type envelope[T any] struct {
	Data  *T     `json:"data"`
	Error string `json:"error"`
}

type scanTxRequest struct {
	URL     string `json:"url,omitempty"`
	TxXDR   string `json:"tx_xdr"`
	Network string `json:"network"`
}

// Scanner calls the scan proxy over HTTP.
type Scanner struct {
	baseURL    string
	httpClient HTTPClient
	log        zerolog.Logger
}

// NewScanner creates a new Scanner rooted at baseURL.
func NewScanner(baseURL string, httpClient HTTPClient, log zerolog.Logger) *Scanner {
	return &Scanner{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		log:        logger.WithComponent(log, "blockaid"),
	}
}

// ScanAsset scans an issued asset, addressed as CODE-ISSUER.
func (s *Scanner) ScanAsset(ctx context.Context, asset domain.Asset) (*domain.AssetScanResult, error) {
	q := url.Values{"address": {assetAddress(asset)}}
	return get[domain.AssetScanResult](ctx, s, pathScanAsset, q)
}

// ScanAssets scans many assets in one request. Results are keyed by asset
// identifier; assets the provider did not return are absent from the map.
func (s *Scanner) ScanAssets(ctx context.Context, assets []domain.Asset) (map[string]*domain.AssetScanResult, error) {
	q := url.Values{}
	byAddress := make(map[string]string, len(assets))
	for _, a := range assets {
		addr := assetAddress(a)
		byAddress[addr] = a.Identifier()
		q.Add("asset_ids", addr)
	}

	bulk, err := get[domain.AssetBulkScanResult](ctx, s, pathScanAssets, q)
	if err != nil {
		return nil, err
	}
	out := make(map[string]*domain.AssetScanResult, len(bulk.Results))
	for addr, result := range bulk.Results {
		id, ok := byAddress[addr]
		if !ok {
			continue
		}
		r := result
		out[id] = &r
	}
	return out, nil
}

// ScanSite scans a dapp origin.
func (s *Scanner) ScanSite(ctx context.Context, siteURL string) (*domain.SiteScanResult, error) {
	q := url.Values{"url": {siteURL}}
	return get[domain.SiteScanResult](ctx, s, pathScanSite, q)
}

// ScanTransaction simulates and validates an envelope, optionally in the
// context of the site that requested it.
func (s *Scanner) ScanTransaction(ctx context.Context, envelopeXDR, siteURL string) (*domain.TransactionScanResult, error) {
	body, err := json.Marshal(scanTxRequest{URL: siteURL, TxXDR: envelopeXDR, Network: scanNetwork})
	if err != nil {
		return nil, fmt.Errorf("encoding scan-tx request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+pathScanTx, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating scan-tx request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return do[domain.TransactionScanResult](s, req)
}

func get[T any](ctx context.Context, s *Scanner, path string, q url.Values) (*T, error) {
	q.Set("network", scanNetwork)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating %s request: %w", path, err)
	}
	return do[T](s, req)
}

func do[T any](s *Scanner, req *http.Request) (*T, error) {
	path := req.URL.Path
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.log.Warn().Err(err).Str("path", path).Msg("scan request failed")
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("%s: reading response: %w", path, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		s.log.Warn().Str("path", path).Int("status", resp.StatusCode).Msg("scan returned non-2xx")
		return nil, fmt.Errorf("%s: status %d", path, resp.StatusCode)
	}

	var env envelope[T]
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("%s: decoding response: %w", path, err)
	}
	if env.Error != "" {
		return nil, fmt.Errorf("%s: %s", path, env.Error)
	}
	if env.Data == nil {
		return nil, fmt.Errorf("%s: empty response", path)
	}
	return env.Data, nil
}

func assetAddress(a domain.Asset) string {
	if a.IsNative() {
		return "XLM"
	}
	if a.Issuer == "" {
		return a.Code
	}
	return a.Code + "-" + a.Issuer
}
