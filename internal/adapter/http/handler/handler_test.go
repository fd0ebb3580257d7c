package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"stellar-wallet-core/internal/adapter/http/dto"
	"stellar-wallet-core/internal/core/domain"
	"stellar-wallet-core/internal/core/ports"
	"stellar-wallet-core/internal/core/ports/mocks"
	"stellar-wallet-core/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stellar/go/keypair"
	"github.com/stellar/go/network"
	"github.com/stellar/go/txnbuild"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var testDefaults = dto.Defaults{
	Fee:             decimal.RequireFromString("0.00001"),
	TimeoutSeconds:  180,
	SlippagePercent: decimal.NewFromInt(1),
}

func jsonContext(method, path string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	var raw []byte
	switch b := body.(type) {
	case string:
		raw = []byte(b)
	default:
		raw, _ = json.Marshal(b)
	}
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, path, bytes.NewReader(raw))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	code, _ := resp["error_code"].(string)
	return code
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data, ok := resp["data"].(map[string]interface{})
	require.True(t, ok, "response has no data object: %s", w.Body.String())
	return data
}

// testEnvelope returns an unsigned testnet payment and its hash.
func testEnvelope(t *testing.T) (string, string) {
	t.Helper()
	src := keypair.MustRandom()
	tx, err := txnbuild.NewTransaction(txnbuild.TransactionParams{
		SourceAccount:        &txnbuild.SimpleAccount{AccountID: src.Address(), Sequence: 100},
		IncrementSequenceNum: true,
		Operations: []txnbuild.Operation{&txnbuild.Payment{
			Destination: keypair.MustRandom().Address(),
			Amount:      "1",
			Asset:       txnbuild.NativeAsset{},
		}},
		BaseFee:       txnbuild.MinBaseFee,
		Preconditions: txnbuild.Preconditions{TimeBounds: txnbuild.NewTimeout(300)},
	})
	require.NoError(t, err)
	xdr, err := tx.Base64()
	require.NoError(t, err)
	hash, err := tx.HashHex(network.TestNetworkPassphrase)
	require.NoError(t, err)
	return xdr, hash
}

type txFixture struct {
	builder   *mocks.MockTransactionBuilder
	paths     *mocks.MockPathFinder
	signer    *mocks.MockSigningService
	submitter *mocks.MockSubmitter
	flow      *mocks.MockWalletFlow
	h         *TransactionHandler
}

func newTxFixture(t *testing.T) *txFixture {
	ctrl := gomock.NewController(t)
	f := &txFixture{
		builder:   mocks.NewMockTransactionBuilder(ctrl),
		paths:     mocks.NewMockPathFinder(ctrl),
		signer:    mocks.NewMockSigningService(ctrl),
		submitter: mocks.NewMockSubmitter(ctrl),
		flow:      mocks.NewMockWalletFlow(ctrl),
	}
	f.h = NewTransactionHandler(f.builder, f.paths, f.signer, f.submitter, f.flow, network.TestNetworkPassphrase, testDefaults)
	return f
}

// --- Session ---

func TestOpenSession_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	sessions := mocks.NewMockSessionService(ctrl)
	h := NewSessionHandler(sessions)

	expiry := time.Unix(1700000000, 0)
	sessions.EXPECT().Open(gomock.Any(), "123456", gomock.Any()).Return("jwt-token", expiry, nil)

	c, w := jsonContext(http.MethodPost, "/api/v1/session", dto.SessionRequest{Passcode: "123456"})
	h.Open(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, "jwt-token", data["token"])
	assert.Equal(t, float64(1700000000), data["expires_at"])
}

func TestOpenSession_WrongPasscode(t *testing.T) {
	ctrl := gomock.NewController(t)
	sessions := mocks.NewMockSessionService(ctrl)
	h := NewSessionHandler(sessions)

	sessions.EXPECT().Open(gomock.Any(), "000000", gomock.Any()).Return("", time.Time{}, apperror.ErrAuthFailed())

	c, w := jsonContext(http.MethodPost, "/api/v1/session", dto.SessionRequest{Passcode: "000000"})
	h.Open(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "AUTH_002", decodeError(t, w))
}

func TestOpenSession_ValidationError(t *testing.T) {
	h := NewSessionHandler(mocks.NewMockSessionService(gomock.NewController(t)))

	c, w := jsonContext(http.MethodPost, "/api/v1/session", "{}")
	h.Open(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Health ---

func TestHealthCheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	pg := mocks.NewMockHealthChecker(ctrl)
	horizon := mocks.NewMockHealthChecker(ctrl)
	pg.EXPECT().Name().Return("postgresql").AnyTimes()
	horizon.EXPECT().Name().Return("horizon").AnyTimes()

	t.Run("all healthy", func(t *testing.T) {
		pg.EXPECT().Ping(gomock.Any()).Return(nil)
		horizon.EXPECT().Ping(gomock.Any()).Return(nil)

		c, w := jsonContext(http.MethodGet, "/health", "")
		HealthCheck(pg, horizon)(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"healthy"`)
	})

	t.Run("one dependency down", func(t *testing.T) {
		pg.EXPECT().Ping(gomock.Any()).Return(nil)
		horizon.EXPECT().Ping(gomock.Any()).Return(errors.New("connection refused"))

		c, w := jsonContext(http.MethodGet, "/health", "")
		HealthCheck(pg, horizon)(c)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), `"degraded"`)
		assert.Contains(t, w.Body.String(), "connection refused")
	})
}

// --- Keys ---

func TestStoreKey_ReturnsAddressOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	keys := mocks.NewMockKeyStore(ctrl)
	h := NewKeyHandler(keys)
	kp := keypair.MustRandom()

	var stored *domain.KeyMaterial
	keys.EXPECT().Store(gomock.Any(), "main", gomock.Any(), "pass").
		DoAndReturn(func(_ context.Context, _ string, key *domain.KeyMaterial, _ string) error {
			stored = key
			return nil
		})

	c, w := jsonContext(http.MethodPost, "/api/v1/keys", dto.StoreKeyRequest{KeyID: "main", SecretSeed: kp.Seed(), Passphrase: "pass"})
	h.Store(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, kp.Address(), data["address"])
	assert.NotContains(t, w.Body.String(), kp.Seed())
	require.NotNil(t, stored)
	assert.True(t, stored.Wiped(), "key material must be wiped after storing")
}

func TestStoreKey_InvalidSeed(t *testing.T) {
	h := NewKeyHandler(mocks.NewMockKeyStore(gomock.NewController(t)))

	c, w := jsonContext(http.MethodPost, "/api/v1/keys", dto.StoreKeyRequest{KeyID: "main", SecretSeed: "SNOTASEED", Passphrase: "pass"})
	h.Store(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VAL_000", decodeError(t, w))
}

func TestKeyExistsAndRemove(t *testing.T) {
	ctrl := gomock.NewController(t)
	keys := mocks.NewMockKeyStore(ctrl)
	h := NewKeyHandler(keys)

	keys.EXPECT().Exists(gomock.Any(), "main").Return(true, nil)
	c, w := jsonContext(http.MethodGet, "/api/v1/keys/main", "")
	c.Params = gin.Params{{Key: "id", Value: "main"}}
	h.Exists(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decodeData(t, w)["exists"])

	keys.EXPECT().Remove(gomock.Any(), "main").Return(nil)
	c, w = jsonContext(http.MethodDelete, "/api/v1/keys/main", "")
	c.Params = gin.Params{{Key: "id", Value: "main"}}
	h.Remove(c)
	// NoContent sets the status without writing a body.
	assert.Equal(t, http.StatusNoContent, c.Writer.Status())
	assert.Empty(t, w.Body.String())
}

func TestKeyExists_InvalidID(t *testing.T) {
	h := NewKeyHandler(mocks.NewMockKeyStore(gomock.NewController(t)))

	c, w := jsonContext(http.MethodGet, "/api/v1/keys/x", "")
	c.Params = gin.Params{{Key: "id", Value: "../../etc"}}
	h.Exists(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Accounts ---

func TestGetAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	net := mocks.NewMockNetworkService(ctrl)
	h := NewAccountHandler(net, mocks.NewMockFeeService(ctrl))
	addr := keypair.MustRandom().Address()

	t.Run("found", func(t *testing.T) {
		net.EXPECT().LoadAccount(gomock.Any(), addr).Return(&domain.Account{Address: addr, Sequence: 7}, nil)
		c, w := jsonContext(http.MethodGet, "/api/v1/accounts/"+addr, "")
		c.Params = gin.Params{{Key: "address", Value: addr}}
		h.GetAccount(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, addr, decodeData(t, w)["address"])
	})

	t.Run("not found", func(t *testing.T) {
		net.EXPECT().LoadAccount(gomock.Any(), addr).Return(nil, nil)
		c, w := jsonContext(http.MethodGet, "/api/v1/accounts/"+addr, "")
		c.Params = gin.Params{{Key: "address", Value: addr}}
		h.GetAccount(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "BLD_003", decodeError(t, w))
	})

	t.Run("bad address", func(t *testing.T) {
		c, w := jsonContext(http.MethodGet, "/api/v1/accounts/GBAD", "")
		c.Params = gin.Params{{Key: "address", Value: "GBAD"}}
		h.GetAccount(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetFees(t *testing.T) {
	ctrl := gomock.NewController(t)
	fees := mocks.NewMockFeeService(ctrl)
	h := NewAccountHandler(mocks.NewMockNetworkService(ctrl), fees)

	fees.EXPECT().Recommend(gomock.Any()).Return(&domain.FeeRecommendation{
		RecommendedFee: decimal.RequireFromString("0.00002"),
		Congestion:     domain.CongestionMedium,
	})

	c, w := jsonContext(http.MethodGet, "/api/v1/fees", "")
	h.GetFees(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "MEDIUM", decodeData(t, w)["congestion"])
}

// --- Transactions ---

func TestBuildPayment_AppliesDefaults(t *testing.T) {
	f := newTxFixture(t)
	src, dst := keypair.MustRandom().Address(), keypair.MustRandom().Address()

	f.builder.EXPECT().Build(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, intent domain.TransactionIntent) (*domain.UnsignedEnvelope, error) {
			assert.Equal(t, src, intent.Source)
			assert.True(t, intent.Asset.IsNative())
			assert.True(t, testDefaults.Fee.Equal(intent.Fee))
			assert.Equal(t, int64(180), intent.TimeoutSeconds)
			return &domain.UnsignedEnvelope{EnvelopeInfo: domain.EnvelopeInfo{Hash: "abc"}, XDR: "AAAA"}, nil
		})

	c, w := jsonContext(http.MethodPost, "/api/v1/transactions/payment", dto.PaymentRequest{Source: src, Destination: dst, Amount: "5"})
	f.h.BuildPayment(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "abc", decodeData(t, w)["hash"])
}

func TestBuildPayment_BuilderError(t *testing.T) {
	f := newTxFixture(t)
	f.builder.EXPECT().Build(gomock.Any(), gomock.Any()).Return(nil, apperror.ErrInsufficientBalance())

	c, w := jsonContext(http.MethodPost, "/", dto.PaymentRequest{Source: "G1", Destination: "G2", Amount: "5"})
	f.h.BuildPayment(c)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "BLD_001", decodeError(t, w))
}

func TestBuildPayment_BadAmount(t *testing.T) {
	f := newTxFixture(t)

	c, w := jsonContext(http.MethodPost, "/", dto.PaymentRequest{Source: "G1", Destination: "G2", Amount: "five"})
	f.h.BuildPayment(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VAL_004", decodeError(t, w))
}

func TestBuildTrustline(t *testing.T) {
	f := newTxFixture(t)
	issuer := keypair.MustRandom().Address()

	f.builder.EXPECT().BuildChangeTrust(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, intent domain.TrustlineIntent) (*domain.UnsignedEnvelope, error) {
			assert.Equal(t, "USDC", intent.Asset.Code)
			assert.True(t, intent.Remove)
			return &domain.UnsignedEnvelope{XDR: "AAAA"}, nil
		})

	c, w := jsonContext(http.MethodPost, "/", dto.TrustlineRequest{Source: "G1", Asset: "USDC:" + issuer, Remove: true})
	f.h.BuildTrustline(c)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestQuote(t *testing.T) {
	issuer := keypair.MustRandom().Address()
	req := dto.QuoteRequest{SourceAsset: "native", DestAsset: "USDC:" + issuer, SourceAmount: "100"}

	t.Run("path found", func(t *testing.T) {
		f := newTxFixture(t)
		f.paths.EXPECT().FindPath(gomock.Any(), domain.NativeAsset(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ domain.Asset, amount, slippage decimal.Decimal) (*domain.SwapPath, error) {
				assert.Equal(t, "100", amount.String())
				assert.Equal(t, "1", slippage.String())
				return &domain.SwapPath{DestinationAmount: decimal.RequireFromString("12.5")}, nil
			})

		c, w := jsonContext(http.MethodPost, "/", req)
		f.h.Quote(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "12.5", decodeData(t, w)["destination_amount"])
	})

	t.Run("no path", func(t *testing.T) {
		f := newTxFixture(t)
		f.paths.EXPECT().FindPath(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

		c, w := jsonContext(http.MethodPost, "/", req)
		f.h.Quote(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, "BLD_008", decodeError(t, w))
	})
}

func TestBuildSwap(t *testing.T) {
	f := newTxFixture(t)
	issuer := keypair.MustRandom().Address()
	path := &domain.SwapPath{DestinationAmount: decimal.NewFromInt(10)}

	f.paths.EXPECT().FindPath(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(path, nil)
	f.builder.EXPECT().BuildSwap(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, intent domain.SwapIntent) (*domain.UnsignedEnvelope, error) {
			assert.Same(t, path, intent.Path)
			assert.Equal(t, "GSRC", intent.Source)
			return &domain.UnsignedEnvelope{XDR: "AAAA"}, nil
		})

	c, w := jsonContext(http.MethodPost, "/", dto.SwapRequest{
		QuoteRequest: dto.QuoteRequest{SourceAsset: "native", DestAsset: "USDC:" + issuer, SourceAmount: "100"},
		Source:       "GSRC",
	})
	f.h.BuildSwap(c)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestSign(t *testing.T) {
	f := newTxFixture(t)
	xdr, hash := testEnvelope(t)

	f.signer.EXPECT().UnlockAndSign(gomock.Any(), "main", "pass", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, env *domain.UnsignedEnvelope) (*domain.SignedEnvelope, error) {
			assert.Equal(t, hash, env.Hash)
			assert.Equal(t, xdr, env.XDR)
			return &domain.SignedEnvelope{EnvelopeInfo: env.EnvelopeInfo, XDR: "SIGNED", SignatureCount: 1}, nil
		})

	c, w := jsonContext(http.MethodPost, "/", dto.SignRequest{KeyID: "main", Passphrase: "pass", XDR: xdr})
	f.h.Sign(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, "SIGNED", data["xdr"])
	assert.Equal(t, float64(1), data["signature_count"])
}

func TestSign_MalformedXDR(t *testing.T) {
	f := newTxFixture(t)

	c, w := jsonContext(http.MethodPost, "/", dto.SignRequest{KeyID: "main", Passphrase: "pass", XDR: "not-xdr"})
	f.h.Sign(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "BLD_004", decodeError(t, w))
}

func TestSubmit(t *testing.T) {
	xdr, hash := testEnvelope(t)

	t.Run("success", func(t *testing.T) {
		f := newTxFixture(t)
		f.submitter.EXPECT().Submit(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, env *domain.SignedEnvelope) (*domain.SubmitResult, error) {
				assert.Equal(t, hash, env.Hash)
				return &domain.SubmitResult{Hash: hash, Ledger: 42, Status: domain.SubmissionStatusSuccess, Attempts: 1}, nil
			})

		c, w := jsonContext(http.MethodPost, "/", dto.SubmitRequest{XDR: xdr})
		f.h.Submit(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, float64(42), decodeData(t, w)["ledger"])
	})

	t.Run("rejected", func(t *testing.T) {
		f := newTxFixture(t)
		f.submitter.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(nil, apperror.ErrRejected("tx_bad_seq", nil))

		c, w := jsonContext(http.MethodPost, "/", dto.SubmitRequest{XDR: xdr})
		f.h.Submit(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, "NET_002", decodeError(t, w))
	})

	t.Run("timeout is retryable", func(t *testing.T) {
		f := newTxFixture(t)
		f.submitter.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(nil, apperror.ErrGatewayTimeout(nil))

		c, w := jsonContext(http.MethodPost, "/", dto.SubmitRequest{XDR: xdr})
		f.h.Submit(c)

		assert.Equal(t, http.StatusGatewayTimeout, w.Code)
		assert.Contains(t, w.Body.String(), `"retryable":true`)
	})
}

func TestSend(t *testing.T) {
	f := newTxFixture(t)
	dst := keypair.MustRandom().Address()

	f.flow.EXPECT().Send(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req ports.SendRequest) (*ports.SendResult, error) {
			assert.Equal(t, "main", req.KeyID)
			assert.Equal(t, "pass", req.Credential)
			assert.True(t, req.OverrideWarnings)
			assert.Equal(t, dst, req.Intent.Destination)
			assert.NotEmpty(t, req.ClientIP)
			return &ports.SendResult{Submission: &domain.SubmitResult{Hash: "h", Status: domain.SubmissionStatusSuccess}}, nil
		})

	c, w := jsonContext(http.MethodPost, "/", dto.SendRequest{
		PaymentRequest:   dto.PaymentRequest{Source: "GSRC", Destination: dst, Amount: "1"},
		KeyID:            "main",
		Passphrase:       "pass",
		OverrideWarnings: true,
	})
	f.h.Send(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSend_GateBlocks(t *testing.T) {
	f := newTxFixture(t)
	f.flow.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil, apperror.ErrBlocked("destination requires a memo"))

	c, w := jsonContext(http.MethodPost, "/", dto.SendRequest{
		PaymentRequest: dto.PaymentRequest{Source: "GSRC", Destination: "GDST", Amount: "1"},
		KeyID:          "main",
		Passphrase:     "pass",
	})
	f.h.Send(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "SEC_004", decodeError(t, w))
}

// --- Security ---

func TestSecurityHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	sec := mocks.NewMockSecurityService(ctrl)
	h := NewSecurityHandler(sec)
	issuer := keypair.MustRandom().Address()

	t.Run("asset", func(t *testing.T) {
		sec.EXPECT().AssessAsset(gomock.Any(), gomock.Any()).
			Return(&domain.SecurityVerdict{Level: domain.SecurityLevelSuspicious}, nil)

		c, w := jsonContext(http.MethodPost, "/", dto.AssetScanRequest{Asset: "USDC:" + issuer})
		h.ScanAsset(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "SUSPICIOUS", decodeData(t, w)["level"])
	})

	t.Run("assets in bulk", func(t *testing.T) {
		usdc := "USDC:" + issuer
		sec.EXPECT().AssessAssets(gomock.Any(), gomock.Len(2)).
			Return(map[string]domain.SecurityVerdict{
				domain.NativeIdentifier: {Level: domain.SecurityLevelSafe},
				usdc:                    {Level: domain.SecurityLevelMalicious},
			}, nil)

		c, w := jsonContext(http.MethodPost, "/", dto.AssetsScanRequest{Assets: []string{"native", usdc}})
		h.ScanAssets(c)

		assert.Equal(t, http.StatusOK, w.Code)
		verdict, ok := decodeData(t, w)[usdc].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "MALICIOUS", verdict["level"])
	})

	t.Run("assets rejects empty batch", func(t *testing.T) {
		c, w := jsonContext(http.MethodPost, "/", dto.AssetsScanRequest{})
		h.ScanAssets(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("site rejects non-http url", func(t *testing.T) {
		c, w := jsonContext(http.MethodPost, "/", dto.SiteScanRequest{URL: "javascript:alert(1)"})
		h.ScanSite(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("site scan unsupported", func(t *testing.T) {
		sec.EXPECT().AssessSite(gomock.Any(), "https://dapp.example").Return(nil, apperror.ErrScanUnsupported())

		c, w := jsonContext(http.MethodPost, "/", dto.SiteScanRequest{URL: "https://dapp.example"})
		h.ScanSite(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, "SEC_001", decodeError(t, w))
	})

	t.Run("transaction", func(t *testing.T) {
		sec.EXPECT().AssessTransaction(gomock.Any(), ports.TransactionCheck{EnvelopeXDR: "AAAA", Memo: "42"}).
			Return(&ports.TransactionAssessment{MemoRequired: true}, nil)

		c, w := jsonContext(http.MethodPost, "/", dto.TransactionScanRequest{XDR: "AAAA", Memo: "42"})
		h.ScanTransaction(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, true, decodeData(t, w)["memo_required"])
	})
}

// --- Router ---

func TestRouter_AuthAndMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	tokens := mocks.NewMockTokenService(ctrl)
	fees := mocks.NewMockFeeService(ctrl)

	r := SetupRouter(RouterDeps{
		Tokens:         tokens,
		Fees:           fees,
		Network:        mocks.NewMockNetworkService(ctrl),
		MetricsHandler: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { _, _ = w.Write([]byte("metrics")) }),
		Logger:         zerolog.Nop(),
	})

	t.Run("missing token", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/fees", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	})

	t.Run("valid token", func(t *testing.T) {
		tokens.EXPECT().Validate("tok").Return(&ports.TokenClaims{Subject: "device", SessionID: "s1"}, nil)
		fees.EXPECT().Recommend(gomock.Any()).Return(&domain.FeeRecommendation{RecommendedFee: decimal.RequireFromString("0.00001")})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/fees", nil)
		req.Header.Set("Authorization", "Bearer tok")
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("metrics endpoint", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "metrics", w.Body.String())
	})
}
