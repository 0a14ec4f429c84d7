package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderCreatedIncrements(t *testing.T) {
	before := testutil.ToFloat64(ordersCreated)
	OrderCreated()
	assert.Equal(t, before+1, testutil.ToFloat64(ordersCreated))
}

func TestOrderStatusChangedByTarget(t *testing.T) {
	before := testutil.ToFloat64(orderTransitions.WithLabelValues("washing"))
	OrderStatusChanged("washing")
	assert.Equal(t, before+1, testutil.ToFloat64(orderTransitions.WithLabelValues("washing")))
}

func TestRequestFinishedUsesUnmatchedLabel(t *testing.T) {
	RequestStarted()
	RequestFinished(http.MethodGet, "", http.StatusNotFound, 3*time.Millisecond)

	assert.Equal(t, float64(1), testutil.ToFloat64(httpRequests.WithLabelValues(http.MethodGet, "unmatched", "404")))
}

func TestHandlerExposesCollectors(t *testing.T) {
	ChatMessagePosted()

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "laundry_chat_messages_total"))
}
