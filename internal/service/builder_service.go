package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"stellar-wallet-core/internal/core/domain"
	"stellar-wallet-core/internal/core/ports"
	"stellar-wallet-core/pkg/apperror"
	"stellar-wallet-core/pkg/logger"
	"stellar-wallet-core/pkg/metrics"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stellar/go/txnbuild"
)

// DefaultMinAccountReserve is the smallest native amount that creates an account.
var DefaultMinAccountReserve = decimal.NewFromInt(1)

// BuilderConfig holds the network-level inputs of every build.
type BuilderConfig struct {
	NetworkPassphrase string
	MinAccountReserve decimal.Decimal
	// Now defaults to time.Now.
	Now func() time.Time
}

// TransactionBuilderService implements ports.TransactionBuilder. Every build
// reads the source account fresh; nothing is cached between builds.
type TransactionBuilderService struct {
	network   ports.NetworkService
	simulator ports.ContractSimulator
	cfg       BuilderConfig
	metrics   *metrics.Metrics
	log       zerolog.Logger
}

// NewTransactionBuilderService creates a new TransactionBuilderService.
// simulator may be nil, which disables contract transfers.
func NewTransactionBuilderService(network ports.NetworkService, simulator ports.ContractSimulator, cfg BuilderConfig, m *metrics.Metrics, log zerolog.Logger) *TransactionBuilderService {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if !cfg.MinAccountReserve.IsPositive() {
		cfg.MinAccountReserve = DefaultMinAccountReserve
	}
	return &TransactionBuilderService{
		network:   network,
		simulator: simulator,
		cfg:       cfg,
		metrics:   m,
		log:       logger.WithComponent(log, "builder"),
	}
}

// Build validates intent in a fixed order and returns an unsigned payment or
// create-account envelope. Contract tokens, and any asset sent to a contract
// address, become a simulated token transfer call.
func (s *TransactionBuilderService) Build(ctx context.Context, intent domain.TransactionIntent) (*domain.UnsignedEnvelope, error) {
	env, op, err := s.build(ctx, intent)
	s.observe(op, err)
	return env, err
}

func (s *TransactionBuilderService) build(ctx context.Context, intent domain.TransactionIntent) (*domain.UnsignedEnvelope, string, error) {
	op := string(domain.OperationPayment)

	sourceBase, err := validateSource(intent.Source)
	if err != nil {
		return nil, op, err
	}
	if isContractTransfer(intent) {
		env, err := s.buildContractTransfer(ctx, intent, sourceBase)
		return env, string(domain.OperationInvokeContract), err
	}
	if intent.Destination == "" || !domain.IsValidAccountAddress(intent.Destination) {
		return nil, op, apperror.ErrInvalidDestination()
	}
	destBase, err := domain.BaseAccount(intent.Destination)
	if err != nil {
		return nil, op, apperror.ErrInvalidDestination()
	}
	if destBase == sourceBase {
		return nil, op, apperror.ErrDestinationIsSource()
	}

	asset, ok := classicAsset(intent.Asset)
	if !ok {
		return nil, op, apperror.ErrUnsupportedAsset()
	}
	if err := validateAmount(intent.Amount, intent.Asset); err != nil {
		return nil, op, err
	}

	source, err := s.loadSource(ctx, sourceBase)
	if err != nil {
		return nil, op, err
	}
	balance, ok := source.Balance(intent.Asset)
	if !ok || intent.Amount.GreaterThan(balance.Available) {
		return nil, op, apperror.ErrInsufficientBalance()
	}

	baseFee, err := validateFee(intent.Fee, 1)
	if err != nil {
		return nil, op, err
	}
	if intent.TimeoutSeconds <= 0 {
		return nil, op, apperror.ErrInvalidTimeout()
	}
	memo, err := textMemo(intent.Memo)
	if err != nil {
		return nil, op, err
	}

	amount := domain.FormatAmount(intent.Amount, domain.ClassicDecimals)
	var operation txnbuild.Operation = &txnbuild.Payment{
		Destination: intent.Destination,
		Amount:      amount,
		Asset:       asset,
	}

	if intent.Asset.IsNative() {
		dest, err := s.network.LoadAccount(ctx, destBase)
		if err != nil {
			return nil, op, apperror.ErrNetworkUnavailable(err)
		}
		if dest == nil {
			op = string(domain.OperationCreateAccount)
			if intent.Amount.LessThan(s.cfg.MinAccountReserve) {
				return nil, op, apperror.ErrBelowMinimumReserve(s.cfg.MinAccountReserve.String())
			}
			operation = &txnbuild.CreateAccount{Destination: destBase, Amount: amount}
		}
	}

	env, err := s.assemble(source, baseFee, intent.TimeoutSeconds, memo, operation)
	if err != nil {
		return nil, op, err
	}

	s.log.Info().
		Str("source", logger.ShortAddress(sourceBase)).
		Str("destination", logger.ShortAddress(destBase)).
		Str("operation", op).
		Str("asset", intent.Asset.Identifier()).
		Str("amount", amount).
		Str("hash", env.Hash).
		Msg("transaction built")
	return env, op, nil
}

// BuildSwap builds a path-payment-strict-send back into the source account.
func (s *TransactionBuilderService) BuildSwap(ctx context.Context, intent domain.SwapIntent) (*domain.UnsignedEnvelope, error) {
	env, err := s.buildSwap(ctx, intent)
	s.observe(string(domain.OperationPathPaymentStrictSend), err)
	return env, err
}

func (s *TransactionBuilderService) buildSwap(ctx context.Context, intent domain.SwapIntent) (*domain.UnsignedEnvelope, error) {
	sourceBase, err := validateSource(intent.Source)
	if err != nil {
		return nil, err
	}
	p := intent.Path
	if p == nil {
		return nil, apperror.Validation("swap path is required")
	}
	sendAsset, ok1 := classicAsset(p.SourceAsset)
	destAsset, ok2 := classicAsset(p.DestAsset)
	if !ok1 || !ok2 {
		return nil, apperror.ErrUnsupportedAsset()
	}
	if p.SourceAsset.Equal(p.DestAsset) {
		return nil, apperror.ErrInvalidAsset("source and destination assets must differ")
	}
	if err := validateAmount(p.SourceAmount, p.SourceAsset); err != nil {
		return nil, err
	}
	if !p.DestinationAmountMin.IsPositive() {
		return nil, apperror.Validation("minimum destination amount must be positive")
	}

	hops := make([]txnbuild.Asset, 0, len(p.Path))
	for _, hop := range p.Path {
		a, ok := classicAsset(hop)
		if !ok {
			return nil, apperror.ErrUnsupportedAsset()
		}
		hops = append(hops, a)
	}

	source, err := s.loadSource(ctx, sourceBase)
	if err != nil {
		return nil, err
	}
	balance, ok := source.Balance(p.SourceAsset)
	if !ok || p.SourceAmount.GreaterThan(balance.Available) {
		return nil, apperror.ErrInsufficientBalance()
	}
	if !domain.HasTrustline(source.Balances, p.DestAsset) {
		return nil, apperror.ErrInvalidAsset(fmt.Sprintf("no trustline for %s", p.DestAsset.Identifier()))
	}

	baseFee, err := validateFee(intent.Fee, 1)
	if err != nil {
		return nil, err
	}
	if intent.TimeoutSeconds <= 0 {
		return nil, apperror.ErrInvalidTimeout()
	}
	memo, err := textMemo(intent.Memo)
	if err != nil {
		return nil, err
	}

	env, err := s.assemble(source, baseFee, intent.TimeoutSeconds, memo, &txnbuild.PathPaymentStrictSend{
		SendAsset:   sendAsset,
		SendAmount:  domain.FormatAmount(p.SourceAmount, domain.ClassicDecimals),
		Destination: sourceBase,
		DestAsset:   destAsset,
		DestMin:     domain.FormatAmount(p.DestinationAmountMin, domain.ClassicDecimals),
		Path:        hops,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("source", logger.ShortAddress(sourceBase)).
		Str("send_asset", p.SourceAsset.Identifier()).
		Str("dest_asset", p.DestAsset.Identifier()).
		Str("dest_min", p.DestinationAmountMin.String()).
		Str("hash", env.Hash).
		Msg("swap built")
	return env, nil
}

// BuildChangeTrust adds, updates or removes a trustline. Removal is a limit of zero.
func (s *TransactionBuilderService) BuildChangeTrust(ctx context.Context, intent domain.TrustlineIntent) (*domain.UnsignedEnvelope, error) {
	env, err := s.buildChangeTrust(ctx, intent)
	s.observe(string(domain.OperationChangeTrust), err)
	return env, err
}

func (s *TransactionBuilderService) buildChangeTrust(ctx context.Context, intent domain.TrustlineIntent) (*domain.UnsignedEnvelope, error) {
	sourceBase, err := validateSource(intent.Source)
	if err != nil {
		return nil, err
	}
	switch intent.Asset.Kind {
	case domain.AssetKindIssued:
	case domain.AssetKindNative:
		return nil, apperror.ErrInvalidAsset("the native asset needs no trustline")
	default:
		return nil, apperror.ErrUnsupportedAsset()
	}
	if intent.Asset.Issuer == sourceBase {
		return nil, apperror.ErrInvalidAsset("an issuer cannot trust its own asset")
	}

	limit := ""
	switch {
	case intent.Remove:
		limit = "0"
	case intent.Limit != nil:
		if !intent.Limit.IsPositive() || !domain.FitsPrecision(*intent.Limit, domain.ClassicDecimals) {
			return nil, apperror.ErrInvalidAmount()
		}
		limit = domain.FormatAmount(*intent.Limit, domain.ClassicDecimals)
	}

	source, err := s.loadSource(ctx, sourceBase)
	if err != nil {
		return nil, err
	}
	if intent.Remove {
		balance, ok := source.Balance(intent.Asset)
		if !ok {
			return nil, apperror.ErrInvalidAsset(fmt.Sprintf("no trustline for %s", intent.Asset.Identifier()))
		}
		if !balance.Total.IsZero() {
			return nil, apperror.Validation("trustline still holds a balance")
		}
	}

	baseFee, err := validateFee(intent.Fee, 1)
	if err != nil {
		return nil, err
	}
	if intent.TimeoutSeconds <= 0 {
		return nil, apperror.ErrInvalidTimeout()
	}

	line, err := txnbuild.CreditAsset{Code: intent.Asset.Code, Issuer: intent.Asset.Issuer}.ToChangeTrustAsset()
	if err != nil {
		return nil, apperror.ErrInvalidAsset(err.Error())
	}
	env, err := s.assemble(source, baseFee, intent.TimeoutSeconds, nil, &txnbuild.ChangeTrust{Line: line, Limit: limit})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("source", logger.ShortAddress(sourceBase)).
		Str("asset", intent.Asset.Identifier()).
		Bool("remove", intent.Remove).
		Str("hash", env.Hash).
		Msg("change trust built")
	return env, nil
}

func (s *TransactionBuilderService) loadSource(ctx context.Context, address string) (*domain.Account, error) {
	account, err := s.network.LoadAccount(ctx, address)
	if err != nil {
		return nil, apperror.ErrNetworkUnavailable(err)
	}
	if account == nil {
		return nil, apperror.ErrAccountNotFound(address)
	}
	return account, nil
}

// assemble sets time bounds to [0, now+timeout] and consumes the next sequence number.
func (s *TransactionBuilderService) assemble(source *domain.Account, baseFee, timeout int64, memo txnbuild.Memo, ops ...txnbuild.Operation) (*domain.UnsignedEnvelope, error) {
	maxTime := s.cfg.Now().Unix() + timeout
	tx, err := txnbuild.NewTransaction(txnbuild.TransactionParams{
		SourceAccount:        &txnbuild.SimpleAccount{AccountID: source.Address, Sequence: source.Sequence},
		IncrementSequenceNum: true,
		BaseFee:              baseFee,
		Memo:                 memo,
		Preconditions:        txnbuild.Preconditions{TimeBounds: txnbuild.NewTimebounds(0, maxTime)},
		Operations:           ops,
	})
	if err != nil {
		return nil, apperror.ErrBuildFailed(err)
	}

	encoded, err := tx.Base64()
	if err != nil {
		return nil, apperror.ErrBuildFailed(err)
	}
	info, err := describeEnvelope(tx, s.cfg.NetworkPassphrase)
	if err != nil {
		return nil, apperror.ErrBuildFailed(err)
	}
	return &domain.UnsignedEnvelope{EnvelopeInfo: info, XDR: encoded}, nil
}

func (s *TransactionBuilderService) observe(operation string, err error) {
	result := "ok"
	if err != nil {
		result = string(apperror.KindOf(err))
	}
	s.metrics.ObserveBuild(operation, result)
}

func validateSource(source string) (string, error) {
	if source == "" || !domain.IsValidAccountAddress(source) {
		return "", apperror.ErrInvalidSource()
	}
	base, err := domain.BaseAccount(source)
	if err != nil {
		return "", apperror.ErrInvalidSource()
	}
	return base, nil
}

func validateAmount(amount decimal.Decimal, asset domain.Asset) error {
	if !amount.IsPositive() || !domain.FitsPrecision(amount, asset.Decimals()) {
		return apperror.ErrInvalidAmount()
	}
	return nil
}

// validateFee converts a per-operation XLM fee to stroops. The envelope fee is
// a uint32 of base fee times operation count, so the per-operation ceiling is
// MaxUint32 divided by ops.
func validateFee(fee decimal.Decimal, ops int) (int64, error) {
	if ops < 1 {
		ops = 1
	}
	if !fee.IsPositive() || !domain.FitsPrecision(fee, domain.ClassicDecimals) {
		return 0, apperror.ErrInvalidFee()
	}
	ceiling := decimal.NewFromInt(int64(math.MaxUint32) / int64(ops))
	if fee.Shift(domain.ClassicDecimals).GreaterThan(ceiling) {
		return 0, apperror.ErrInvalidFee()
	}
	stroops, err := domain.ToStroops(fee)
	if err != nil || stroops < txnbuild.MinBaseFee {
		return 0, apperror.ErrInvalidFee()
	}
	return stroops, nil
}

func textMemo(text string) (txnbuild.Memo, error) {
	if len(text) > domain.MaxMemoTextBytes {
		return nil, apperror.ErrMemoTooLong()
	}
	if text == "" {
		return nil, nil
	}
	return txnbuild.MemoText(text), nil
}
