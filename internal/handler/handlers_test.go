package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/pali-search/internal/config"
	"github.com/MKhiriev/pali-search/internal/logger"
	"github.com/MKhiriev/pali-search/internal/metrics"
	"github.com/MKhiriev/pali-search/internal/service"
)

// newTestServices returns a nil *service.Services. http.NewHandler only
// stores the pointer, so nil is safe for construction-time tests.
func newTestServices() *service.Services {
	return nil
}

func TestNewHandlers_WithAddress(t *testing.T) {
	cfg := &config.FrontendConfig{Server: config.FrontendServer{HTTPAddress: ":8080"}}

	h, err := NewHandlers(newTestServices(), cfg, metrics.NewHTTPServerMetrics("frontend"), logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP, "expected HTTP handler to be initialised")
}

func TestNewHandlers_NoAddress(t *testing.T) {
	h, err := NewHandlers(newTestServices(), &config.FrontendConfig{}, nil, logger.Nop())

	require.Error(t, err)
	assert.ErrorIs(t, err, errNoHandlersAreCreated)
	assert.Nil(t, h)
}
