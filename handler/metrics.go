package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsHandler exposes the Prometheus scrape endpoint. It serves the
// default registry outside the ApiError pipeline since Prometheus speaks its
// own exposition format.
type MetricsHandler struct {
	inner http.Handler
}

func NewMetricsHandler() MetricsHandler {
	return MetricsHandler{inner: promhttp.Handler()}
}

func (h MetricsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.inner.ServeHTTP(w, r)
}
