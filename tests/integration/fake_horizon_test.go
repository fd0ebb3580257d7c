package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/stellar/go/network"
	"github.com/stellar/go/txnbuild"
)

const (
	problemTimeout  = `{"type":"https://stellar.org/horizon-errors/timeout","title":"Timeout","status":504}`
	problemNotFound = `{"type":"https://stellar.org/horizon-errors/not_found","title":"Resource Missing","status":404}`
)

func problemTxFailed(code string) string {
	return `{"type":"https://stellar.org/horizon-errors/transaction_failed","title":"Transaction Failed","status":400,` +
		`"extras":{"result_codes":{"transaction":"` + code + `"}}}`
}

type submitResponse struct {
	status int
	body   string // empty means success for the submitted envelope
}

// fakeHorizon serves the few Horizon endpoints the wallet uses.
type fakeHorizon struct {
	mu        sync.Mutex
	accounts  map[string]string
	submitted []string
	responses []submitResponse // consumed in order, then success
	release   chan struct{}    // when set, submissions block until closed
}

func newFakeHorizon() *fakeHorizon {
	return &fakeHorizon{accounts: make(map[string]string)}
}

func (f *fakeHorizon) addAccount(address, nativeBalance string, memoRequired bool) {
	data := "{}"
	if memoRequired {
		data = `{"config.memo_required":"MQ=="}`
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.accounts[address] = fmt.Sprintf(`{
		"id": %q, "account_id": %q, "sequence": "4294967296", "subentry_count": 0,
		"data": %s,
		"balances": [{"balance": %q, "buying_liabilities": "0.0000000", "selling_liabilities": "0.0000000", "asset_type": "native"}]
	}`, address, address, data, nativeBalance)
}

// queue makes the next submissions answer with responses, in order.
func (f *fakeHorizon) queue(responses ...submitResponse) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses = append(f.responses, responses...)
}

// hold parks every submission until the returned channel is closed.
func (f *fakeHorizon) hold() chan struct{} {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.release = make(chan struct{})
	return f.release
}

func (f *fakeHorizon) submissions() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.submitted...)
}

func (f *fakeHorizon) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/hal+json")
	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/":
		_, _ = w.Write([]byte(`{"horizon_version":"fake","network_passphrase":"` + network.TestNetworkPassphrase + `"}`))

	case r.Method == http.MethodGet && strings.HasPrefix(r.URL.Path, "/accounts/"):
		f.mu.Lock()
		body, ok := f.accounts[strings.TrimPrefix(r.URL.Path, "/accounts/")]
		f.mu.Unlock()
		if !ok {
			writeProblem(w, http.StatusNotFound, problemNotFound)
			return
		}
		_, _ = w.Write([]byte(body))

	case r.Method == http.MethodGet && strings.HasPrefix(r.URL.Path, "/transactions/"):
		writeProblem(w, http.StatusNotFound, problemNotFound)

	case r.Method == http.MethodPost && r.URL.Path == "/transactions":
		f.submit(w, r)

	default:
		writeProblem(w, http.StatusNotFound, problemNotFound)
	}
}

func (f *fakeHorizon) submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeProblem(w, http.StatusBadRequest, problemTxFailed("tx_malformed"))
		return
	}
	envelope := r.PostForm.Get("tx")

	f.mu.Lock()
	f.submitted = append(f.submitted, envelope)
	var next *submitResponse
	if len(f.responses) > 0 {
		next = &f.responses[0]
		f.responses = f.responses[1:]
	}
	release := f.release
	f.mu.Unlock()

	if release != nil {
		<-release
	}
	if next != nil && next.body != "" {
		writeProblem(w, next.status, next.body)
		return
	}

	hash := ""
	if generic, err := txnbuild.TransactionFromXDR(envelope); err == nil {
		if tx, ok := generic.Transaction(); ok {
			hash, _ = tx.HashHex(network.TestNetworkPassphrase)
		}
	}
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"hash":       hash,
		"ledger":     4242,
		"successful": true,
	})
}

func writeProblem(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}
