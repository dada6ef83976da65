package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserve(t *testing.T) {
	m := New()

	m.ObserveTitleUpdate(nil)
	m.ObserveTitleUpdate(nil)
	m.ObserveTitleUpdate(errors.New("x"))
	m.ObserveToggle(true)
	m.ObserveMenu("quit")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.TitleUpdates.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.TitleUpdates.WithLabelValues("error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.WindowToggles.WithLabelValues("true")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.MenuSelects.WithLabelValues("quit")))
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveTitleUpdate(nil)
		m.ObserveToggle(false)
		m.ObserveTrayEvent("click")
		m.ObserveMenu("quit")
	})
}

func TestHandlerExposesCounters(t *testing.T) {
	m := New()
	m.ObserveTrayEvent("click")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `radiolite_tray_events_total{kind="click"} 1`)
}
