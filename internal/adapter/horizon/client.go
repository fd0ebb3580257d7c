// Package horizon implements ports.NetworkService over the Horizon REST API.
package horizon

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"stellar-wallet-core/internal/core/domain"
	"stellar-wallet-core/pkg/apperror"

	"github.com/shopspring/decimal"
	"github.com/stellar/go/clients/horizonclient"
	hProtocol "github.com/stellar/go/protocols/horizon"
)

// baseReserve is the per-entry reserve in XLM.
var baseReserve = decimal.RequireFromString("0.5")

// API is the subset of *horizonclient.Client the adapter uses.
type API interface {
	AccountDetail(request horizonclient.AccountRequest) (hProtocol.Account, error)
	SubmitTransactionXDR(transactionXdr string) (hProtocol.Transaction, error)
	StrictSendPaths(request horizonclient.StrictSendPathsRequest) (hProtocol.PathsPage, error)
	FeeStats() (hProtocol.FeeStats, error)
	TransactionDetail(txHash string) (hProtocol.Transaction, error)
	Root() (hProtocol.Root, error)
}

// NewAPI returns a horizonclient for url. Submissions can take a full ledger
// close or more, so timeout should be generous.
func NewAPI(url string, timeout time.Duration) *horizonclient.Client {
	return &horizonclient.Client{
		HorizonURL: url,
		HTTP:       &http.Client{Timeout: timeout},
	}
}

// Client implements ports.NetworkService and ports.HealthChecker.
type Client struct {
	api API
}

// NewClient creates a new Client.
func NewClient(api API) *Client {
	return &Client{api: api}
}

// call runs fn and returns early when ctx is done; horizonclient itself has
// no per-request context.
func call[T any](ctx context.Context, fn func() (T, error)) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	type result struct {
		v   T
		err error
	}
	ch := make(chan result, 1)
	go func() {
		v, err := fn()
		ch <- result{v, err}
	}()

	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case r := <-ch:
		return r.v, r.err
	}
}

// LoadAccount returns nil, nil for an account that does not exist.
func (c *Client) LoadAccount(ctx context.Context, address string) (*domain.Account, error) {
	acct, err := call(ctx, func() (hProtocol.Account, error) {
		return c.api.AccountDetail(horizonclient.AccountRequest{AccountID: address})
	})
	if err != nil {
		if horizonclient.IsNotFoundError(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("loading account %s: %w", address, err)
	}
	return toAccount(acct)
}

// SubmitTransaction classifies failures: gateway timeouts are transient, result
// codes become rejections, anything else means the network was unreachable.
func (c *Client) SubmitTransaction(ctx context.Context, envelopeXDR string) (*domain.TransactionRecord, error) {
	tx, err := call(ctx, func() (hProtocol.Transaction, error) {
		return c.api.SubmitTransactionXDR(envelopeXDR)
	})
	if err != nil {
		return nil, classifySubmitError(ctx, err)
	}
	return &domain.TransactionRecord{Hash: tx.Hash, Ledger: tx.Ledger, Successful: tx.Successful}, nil
}

func classifySubmitError(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return err
	}

	if herr := horizonclient.GetError(err); herr != nil {
		if herr.Problem.Status == http.StatusGatewayTimeout || isTimeoutProblem(herr.Problem.Type) {
			return apperror.ErrGatewayTimeout(err)
		}
		if codes, cerr := herr.ResultCodes(); cerr == nil && codes != nil {
			return apperror.ErrRejected(codes.TransactionCode, &domain.SubmissionRejection{
				TransactionCode: codes.TransactionCode,
				OperationCodes:  codes.OperationCodes,
			})
		}
		return apperror.ErrRejected(problemName(herr.Problem.Type), err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return apperror.ErrGatewayTimeout(err)
	}
	return apperror.ErrNetworkUnavailable(err)
}

func isTimeoutProblem(problemType string) bool {
	return problemName(problemType) == "timeout"
}

// problemName strips the documentation prefix from a problem type.
func problemName(problemType string) string {
	if i := strings.LastIndex(problemType, "/"); i >= 0 {
		return problemType[i+1:]
	}
	return problemType
}

// FindStrictSendPaths returns Horizon's records in its own ranking.
func (c *Client) FindStrictSendPaths(ctx context.Context, source domain.Asset, sourceAmount decimal.Decimal, dest domain.Asset) ([]domain.PathQuote, error) {
	req := horizonclient.StrictSendPathsRequest{
		DestinationAssets: dest.Identifier(),
		SourceAmount:      domain.FormatAmount(sourceAmount, domain.ClassicDecimals),
	}
	switch source.Kind {
	case domain.AssetKindNative:
		req.SourceAssetType = horizonclient.AssetTypeNative
	case domain.AssetKindIssued:
		req.SourceAssetType = horizonclient.AssetType4
		if len(source.Code) > 4 {
			req.SourceAssetType = horizonclient.AssetType12
		}
		req.SourceAssetCode = source.Code
		req.SourceAssetIssuer = source.Issuer
	default:
		return nil, fmt.Errorf("asset %s cannot be path-paid", source.Identifier())
	}

	page, err := call(ctx, func() (hProtocol.PathsPage, error) {
		return c.api.StrictSendPaths(req)
	})
	if err != nil {
		return nil, fmt.Errorf("strict send paths: %w", err)
	}

	quotes := make([]domain.PathQuote, 0, len(page.Embedded.Records))
	for _, rec := range page.Embedded.Records {
		q, err := toQuote(rec)
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, q)
	}
	return quotes, nil
}

// FeeStats returns the fee statistics of recent ledgers.
func (c *Client) FeeStats(ctx context.Context) (*domain.NetworkFeeStats, error) {
	stats, err := call(ctx, c.api.FeeStats)
	if err != nil {
		return nil, fmt.Errorf("fee stats: %w", err)
	}
	return &domain.NetworkFeeStats{
		LastLedgerBaseFee:   stats.LastLedgerBaseFee,
		LedgerCapacityUsage: stats.LedgerCapacityUsage,
		MaxFeeMode:          stats.MaxFee.Mode,
	}, nil
}

// TransactionStatus returns nil, nil when Horizon has no record of hash.
func (c *Client) TransactionStatus(ctx context.Context, hash string) (*domain.TransactionRecord, error) {
	tx, err := call(ctx, func() (hProtocol.Transaction, error) {
		return c.api.TransactionDetail(hash)
	})
	if err != nil {
		if horizonclient.IsNotFoundError(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("transaction %s: %w", hash, err)
	}
	return &domain.TransactionRecord{Hash: tx.Hash, Ledger: tx.Ledger, Successful: tx.Successful}, nil
}

// Ping checks that Horizon answers its root endpoint.
func (c *Client) Ping(ctx context.Context) error {
	_, err := call(ctx, c.api.Root)
	return err
}

// Name returns the health check name.
func (c *Client) Name() string {
	return "horizon"
}

func toAccount(acct hProtocol.Account) (*domain.Account, error) {
	seq, err := acct.GetSequenceNumber()
	if err != nil {
		return nil, fmt.Errorf("account %s sequence: %w", acct.AccountID, err)
	}

	data := make(map[string][]byte, len(acct.Data))
	for k, v := range acct.Data {
		raw, err := base64.StdEncoding.DecodeString(v)
		if err != nil {
			return nil, fmt.Errorf("account %s data %q: %w", acct.AccountID, k, err)
		}
		data[k] = raw
	}

	entries := decimal.NewFromInt(2 + int64(acct.SubentryCount) + int64(acct.NumSponsoring) - int64(acct.NumSponsored))
	minimum := entries.Mul(baseReserve)

	balances := make([]domain.Balance, 0, len(acct.Balances))
	for _, b := range acct.Balances {
		bal, err := toBalance(b, minimum)
		if err != nil {
			return nil, fmt.Errorf("account %s: %w", acct.AccountID, err)
		}
		balances = append(balances, bal)
	}

	return &domain.Account{
		Address:       acct.AccountID,
		Sequence:      seq,
		SubentryCount: acct.SubentryCount,
		Balances:      balances,
		Data:          data,
	}, nil
}

// toBalance computes Available as total minus selling liabilities and, for
// the native balance, the account's minimum balance.
func toBalance(b hProtocol.Balance, nativeMinimum decimal.Decimal) (domain.Balance, error) {
	total, err := parseAmount(b.Balance)
	if err != nil {
		return domain.Balance{}, err
	}
	buying, err := parseAmount(b.BuyingLiabilities)
	if err != nil {
		return domain.Balance{}, err
	}
	selling, err := parseAmount(b.SellingLiabilities)
	if err != nil {
		return domain.Balance{}, err
	}

	out := domain.Balance{
		Total:              total,
		BuyingLiabilities:  buying,
		SellingLiabilities: selling,
		LiquidityPoolID:    b.LiquidityPoolId,
	}
	if b.Limit != "" {
		limit, err := parseAmount(b.Limit)
		if err != nil {
			return domain.Balance{}, err
		}
		out.Limit = &limit
	}

	available := total.Sub(selling)
	switch b.Type {
	case "native":
		out.Asset = domain.NativeAsset()
		min := nativeMinimum
		out.MinimumBalance = &min
		available = available.Sub(nativeMinimum)
	case "liquidity_pool_shares":
		out.Asset = domain.PoolShareAsset(b.LiquidityPoolId)
	default:
		out.Asset = domain.Asset{Kind: domain.AssetKindIssued, Code: b.Code, Issuer: b.Issuer}
	}
	if available.IsNegative() {
		available = decimal.Zero
	}
	out.Available = available
	return out, nil
}

func toQuote(p hProtocol.Path) (domain.PathQuote, error) {
	src, err := parseAmount(p.SourceAmount)
	if err != nil {
		return domain.PathQuote{}, err
	}
	dst, err := parseAmount(p.DestinationAmount)
	if err != nil {
		return domain.PathQuote{}, err
	}

	hops := make([]domain.Asset, 0, len(p.Path))
	for _, a := range p.Path {
		if a.Type == "native" {
			hops = append(hops, domain.NativeAsset())
			continue
		}
		hops = append(hops, domain.Asset{Kind: domain.AssetKindIssued, Code: a.Code, Issuer: a.Issuer})
	}
	return domain.PathQuote{SourceAmount: src, DestinationAmount: dst, Path: hops}, nil
}

func parseAmount(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return domain.ParseAmount(s)
}
