package env

import (
	"log/slog"
	"os"
)

const defaultOTLPEndpoint = "http://localhost:4318"

type TracingEnvironment struct {
	Enabled  bool
	Endpoint string `validate:"omitempty,required_if=Enabled true,url"`
}

// NewTracingEnvironment reads the tracing toggle straight from the process
// environment, it is optional and never fails validation of the wider config.
func NewTracingEnvironment() *TracingEnvironment {
	enabled := os.Getenv("ENV_TRACING_ENABLED") == "true"
	endpoint := os.Getenv("ENV_TRACING_OTLP_ENDPOINT")

	if enabled && endpoint == "" {
		endpoint = defaultOTLPEndpoint

		slog.Warn("tracing enabled without an endpoint, using default", "endpoint", endpoint)
	}

	return &TracingEnvironment{
		Enabled:  enabled,
		Endpoint: endpoint,
	}
}
