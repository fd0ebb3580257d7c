package service

import (
	"context"
	"net/url"

	"stellar-wallet-core/internal/core/domain"
	"stellar-wallet-core/internal/core/ports"
	"stellar-wallet-core/pkg/apperror"
	"stellar-wallet-core/pkg/logger"
	"stellar-wallet-core/pkg/metrics"

	"github.com/rs/zerolog"
	"github.com/stellar/go/txnbuild"
	"golang.org/x/sync/errgroup"
)

const (
	subjectAsset       = "asset"
	subjectSite        = "site"
	subjectTransaction = "transaction"
)

// SecurityService implements ports.SecurityService. Scans run only on mainnet
// and a failed scan never blocks: the verdict is Safe with UnableToScan set.
type SecurityService struct {
	scanner ports.SecurityScanner
	network ports.NetworkService
	mainnet bool
	metrics *metrics.Metrics
	log     zerolog.Logger
}

// NewSecurityService creates a new SecurityService. scanner may be nil when
// scanning is disabled.
func NewSecurityService(scanner ports.SecurityScanner, network ports.NetworkService, mainnet bool, m *metrics.Metrics, log zerolog.Logger) *SecurityService {
	return &SecurityService{
		scanner: scanner,
		network: network,
		mainnet: mainnet,
		metrics: m,
		log:     logger.WithComponent(log, "security"),
	}
}

func (s *SecurityService) canScan() bool {
	return s.mainnet && s.scanner != nil
}

// AssessAsset scans an issued asset. The native asset is always Safe.
func (s *SecurityService) AssessAsset(ctx context.Context, asset domain.Asset) (*domain.SecurityVerdict, error) {
	if asset.Kind != domain.AssetKindIssued && !asset.IsNative() {
		return nil, apperror.ErrScanUnsupported()
	}

	var v domain.SecurityVerdict
	switch {
	case asset.IsNative():
		v = safeVerdict()
	case !s.canScan():
		v = unableToScan("Scanning is only available on the public network")
	default:
		result, err := s.scanner.ScanAsset(ctx, asset)
		if err != nil {
			s.log.Warn().Err(err).Str("asset", asset.Identifier()).Msg("asset scan failed, continuing unscanned")
			v = unableToScan("The asset could not be scanned")
		} else {
			v = AssessAsset(result)
		}
	}

	s.metrics.ObserveVerdict(subjectAsset, string(v.Level))
	return &v, nil
}

// AssessAssets scans a batch of assets with one provider call and returns
// verdicts keyed by asset identifier. An asset the provider skipped is
// reported as unable to scan.
func (s *SecurityService) AssessAssets(ctx context.Context, assets []domain.Asset) (map[string]domain.SecurityVerdict, error) {
	out := make(map[string]domain.SecurityVerdict, len(assets))
	toScan := make([]domain.Asset, 0, len(assets))
	for _, a := range assets {
		switch {
		case a.IsNative():
			out[a.Identifier()] = safeVerdict()
		case a.Kind == domain.AssetKindIssued:
			if _, seen := out[a.Identifier()]; !seen {
				toScan = append(toScan, a)
				out[a.Identifier()] = unableToScan("The asset could not be scanned")
			}
		default:
			return nil, apperror.ErrScanUnsupported()
		}
	}

	if len(toScan) > 0 {
		if !s.canScan() {
			for _, a := range toScan {
				out[a.Identifier()] = unableToScan("Scanning is only available on the public network")
			}
		} else if results, err := s.scanner.ScanAssets(ctx, toScan); err != nil {
			s.log.Warn().Err(err).Int("assets", len(toScan)).Msg("bulk asset scan failed, continuing unscanned")
		} else {
			for id, r := range results {
				if _, ok := out[id]; ok {
					out[id] = AssessAsset(r)
				}
			}
		}
	}

	for _, v := range out {
		s.metrics.ObserveVerdict(subjectAsset, string(v.Level))
	}
	return out, nil
}

// AssessSite scans the origin of a request.
func (s *SecurityService) AssessSite(ctx context.Context, siteURL string) (*domain.SecurityVerdict, error) {
	if err := validateSiteURL(siteURL); err != nil {
		return nil, err
	}
	v := s.scanSite(ctx, siteURL)
	return &v, nil
}

func (s *SecurityService) scanSite(ctx context.Context, siteURL string) domain.SecurityVerdict {
	var v domain.SecurityVerdict
	if !s.canScan() {
		v = unableToScan("Scanning is only available on the public network")
	} else if result, err := s.scanner.ScanSite(ctx, siteURL); err != nil {
		s.log.Warn().Err(err).Str("url", siteURL).Msg("site scan failed, continuing unscanned")
		v = unableToScan("The site could not be scanned")
	} else {
		v = AssessSite(result)
	}
	s.metrics.ObserveVerdict(subjectSite, string(v.Level))
	return v
}

// AssessTransaction runs the transaction scan, the site scan and the
// memo-required check concurrently and gates on the combined result.
func (s *SecurityService) AssessTransaction(ctx context.Context, req ports.TransactionCheck) (*ports.TransactionAssessment, error) {
	generic, err := txnbuild.TransactionFromXDR(req.EnvelopeXDR)
	if err != nil {
		return nil, apperror.ErrMalformedEnvelope(err)
	}
	tx, ok := generic.Transaction()
	if !ok {
		return nil, apperror.ErrMalformedEnvelope(errUnsupportedFeeBump)
	}
	if req.SiteURL != "" {
		if err := validateSiteURL(req.SiteURL); err != nil {
			return nil, err
		}
	}

	destination := req.Destination
	if destination == "" {
		destination = paymentDestination(tx)
	}
	hasMemo := req.Memo != "" || tx.Memo() != nil

	var (
		txResult     *domain.TransactionScanResult
		txVerdict    domain.SecurityVerdict
		siteVerdict  *domain.SecurityVerdict
		memoRequired bool
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if !s.canScan() {
			txVerdict = unableToScan("Scanning is only available on the public network")
			return nil
		}
		result, err := s.scanner.ScanTransaction(gctx, req.EnvelopeXDR, req.SiteURL)
		if err != nil {
			s.log.Warn().Err(err).Msg("transaction scan failed, continuing unscanned")
			txVerdict = unableToScan("The transaction could not be scanned")
			return nil
		}
		txResult = result
		txVerdict = AssessTransaction(result)
		return nil
	})
	if req.SiteURL != "" {
		g.Go(func() error {
			v := s.scanSite(gctx, req.SiteURL)
			siteVerdict = &v
			return nil
		})
	}
	if destination != "" && !domain.IsMuxedAddress(destination) {
		g.Go(func() error {
			memoRequired = s.memoRequired(gctx, destination)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	s.metrics.ObserveVerdict(subjectTransaction, string(txVerdict.Level))

	memoMissing := memoRequired && !hasMemo
	if memoMissing {
		txVerdict.Warnings = append(txVerdict.Warnings, domain.Warning{
			ID:          WarningMemoRequired,
			Description: "The destination account requires a memo",
		})
	}

	return &ports.TransactionAssessment{
		Transaction:    txVerdict,
		Site:           siteVerdict,
		MemoRequired:   memoRequired,
		BalanceChanges: BalanceChanges(txResult),
		Gate: Gate(GateInput{
			Verdicts:            []domain.SecurityVerdict{txVerdict},
			Site:                siteVerdict,
			MemoRequiredMissing: memoMissing,
		}),
	}, nil
}

// memoRequired reads the destination's data entries. A failed read is logged
// and treated as not required.
func (s *SecurityService) memoRequired(ctx context.Context, destination string) bool {
	if s.network == nil {
		return false
	}
	account, err := s.network.LoadAccount(ctx, destination)
	if err != nil {
		s.log.Warn().Err(err).Str("destination", logger.ShortAddress(destination)).Msg("memo-required check failed")
		return false
	}
	return account.MemoRequired()
}

// paymentDestination returns the first payment-like destination in tx.
func paymentDestination(tx *txnbuild.Transaction) string {
	for _, op := range tx.Operations() {
		switch o := op.(type) {
		case *txnbuild.Payment:
			return o.Destination
		case *txnbuild.CreateAccount:
			return o.Destination
		case *txnbuild.PathPaymentStrictSend:
			return o.Destination
		}
	}
	return ""
}

func validateSiteURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return apperror.Validation("site url must be an absolute http(s) url")
	}
	return nil
}
