// Package sorobanrpc implements ports.ContractSimulator against a Soroban RPC
// server's JSON-RPC 2.0 endpoint.
package sorobanrpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"

	"stellar-wallet-core/internal/core/domain"
	"stellar-wallet-core/pkg/logger"

	"github.com/rs/zerolog"
)

const (
	methodSimulate  = "simulateTransaction"
	methodGetHealth = "getHealth"

	statusHealthy = "healthy"

	maxResponseBytes = 4 << 20
)

var errRestoreRequired = errors.New("archived ledger entries must be restored first")

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type request struct {
	JSONRPC string `json:"jsonrpc"`
	ID      uint64 `json:"id"`
	Method  string `json:"method"`
	Params  any    `json:"params,omitempty"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *rpcError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

type response[T any] struct {
	ID     uint64    `json:"id"`
	Result *T        `json:"result"`
	Error  *rpcError `json:"error"`
}

type simulateParams struct {
	Transaction string `json:"transaction"`
}

// simulateResult accepts numeric fields both quoted and bare; servers have
// shipped both.
type simulateResult struct {
	TransactionData string      `json:"transactionData"`
	MinResourceFee  json.Number `json:"minResourceFee"`
	Results         []struct {
		Auth []string `json:"auth"`
		XDR  string   `json:"xdr"`
	} `json:"results"`
	LatestLedger    json.Number `json:"latestLedger"`
	RestorePreamble *struct {
		TransactionData string      `json:"transactionData"`
		MinResourceFee  json.Number `json:"minResourceFee"`
	} `json:"restorePreamble,omitempty"`
	Error string `json:"error,omitempty"`
}

type healthResult struct {
	Status string `json:"status"`
}

// Client calls a Soroban RPC server.
type Client struct {
	url        string
	httpClient HTTPClient
	nextID     atomic.Uint64
	log        zerolog.Logger
}

// NewClient creates a new Client for the RPC endpoint at url.
func NewClient(url string, httpClient HTTPClient, log zerolog.Logger) *Client {
	return &Client{
		url:        url,
		httpClient: httpClient,
		log:        logger.WithComponent(log, "soroban-rpc"),
	}
}

// SimulateTransaction previews envelopeXDR, which must hold exactly one
// invoke-host-function operation.
func (c *Client) SimulateTransaction(ctx context.Context, envelopeXDR string) (*domain.SimulationResult, error) {
	res, err := call[simulateResult](ctx, c, methodSimulate, simulateParams{Transaction: envelopeXDR})
	if err != nil {
		return nil, err
	}

	out := &domain.SimulationResult{TransactionData: res.TransactionData, Error: res.Error}
	if out.Failed() {
		c.log.Debug().Str("error", res.Error).Msg("simulation failed")
		return out, nil
	}
	if res.RestorePreamble != nil {
		out.Error = errRestoreRequired.Error()
		return out, nil
	}

	if out.MinResourceFee, err = parseInt(res.MinResourceFee); err != nil {
		return nil, fmt.Errorf("%s: minResourceFee: %w", methodSimulate, err)
	}
	if out.LatestLedger, err = parseInt(res.LatestLedger); err != nil {
		return nil, fmt.Errorf("%s: latestLedger: %w", methodSimulate, err)
	}
	if out.TransactionData == "" {
		return nil, fmt.Errorf("%s: response has no transaction data", methodSimulate)
	}
	for _, r := range res.Results {
		out.Auth = append(out.Auth, r.Auth...)
	}
	return out, nil
}

// Ping reports an error unless the server says it is healthy.
func (c *Client) Ping(ctx context.Context) error {
	res, err := call[healthResult](ctx, c, methodGetHealth, nil)
	if err != nil {
		return err
	}
	if res.Status != statusHealthy {
		return fmt.Errorf("soroban rpc status %q", res.Status)
	}
	return nil
}

// Name returns the health check name.
func (c *Client) Name() string {
	return "soroban_rpc"
}

func call[T any](ctx context.Context, c *Client, method string, params any) (*T, error) {
	id := c.nextID.Add(1)
	body, err := json.Marshal(request{JSONRPC: "2.0", ID: id, Method: method, Params: params})
	if err != nil {
		return nil, fmt.Errorf("encoding %s request: %w", method, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating %s request: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Str("method", method).Msg("rpc request failed")
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("%s: reading response: %w", method, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.Warn().Str("method", method).Int("status", resp.StatusCode).Msg("rpc returned non-2xx")
		return nil, fmt.Errorf("%s: status %d", method, resp.StatusCode)
	}

	var env response[T]
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("%s: decoding response: %w", method, err)
	}
	if env.Error != nil {
		return nil, fmt.Errorf("%s: %w", method, env.Error)
	}
	if env.ID != id {
		return nil, fmt.Errorf("%s: response id %d does not match request %d", method, env.ID, id)
	}
	if env.Result == nil {
		return nil, fmt.Errorf("%s: empty result", method)
	}
	return env.Result, nil
}

func parseInt(n json.Number) (int64, error) {
	if n == "" {
		return 0, nil
	}
	return n.Int64()
}
