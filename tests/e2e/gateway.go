//go:build e2e

package e2e

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"entitlement-engine/internal/infra/gateway"
	testhttp "entitlement-engine/tests/common/httptest"

	"github.com/gin-gonic/gin"
)

// FakeGateway stands in for the hosted payment gateway. It accepts every
// order and hands out "gw_<referenceId>" as the gateway order id.
type FakeGateway struct {
	srv *httptest.Server

	mu    sync.Mutex
	down  bool
	calls int
}

func NewFakeGateway(t *testing.T) *FakeGateway {
	f := &FakeGateway{}
	f.srv = httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(f.srv.Close)
	return f
}

func (f *FakeGateway) URL() string { return f.srv.URL }

// SetDown makes every call answer 503 until reset.
func (f *FakeGateway) SetDown(down bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.down = down
}

// Calls counts every request received, including failed ones.
func (f *FakeGateway) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func (f *FakeGateway) serve(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.calls++
	down := f.down
	f.mu.Unlock()
	if down {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	var body struct {
		ReferenceID string `json:"referenceId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.ReferenceID == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	id := "gw_" + body.ReferenceID

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{
		"orderId":          id,
		"paymentSessionId": "ps_" + body.ReferenceID,
	})
}

// Notify posts a correctly signed notification to the router.
func Notify(t *testing.T, router *gin.Engine, webhookSecret, gatewayOrderID, status string) *httptest.ResponseRecorder {
	t.Helper()

	body, _ := json.Marshal(map[string]string{"orderId": gatewayOrderID, "status": status})
	ts := strconv.FormatInt(time.Now().Unix(), 10)
	return testhttp.PerformRawRequest(t, router, http.MethodPost, "/api/payments/notify", body, map[string]string{
		"Content-Type":          "application/json",
		gateway.TimestampHeader: ts,
		gateway.SignatureHeader: gateway.SignatureHeaderValue([]byte(webhookSecret), ts, body),
	})
}
