package healthcheck_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bytearena/tankarena/common/healthcheck"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthCheck(t *testing.T) {
	hc := healthcheck.NewHealthCheck()
	hc.Register("always", func() (error, bool) { return nil, true })

	rec := httptest.NewRecorder()
	hc.HttpHandler(rec, httptest.NewRequest("GET", "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	var res healthcheck.HealthCheckHttpResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Len(t, res.Checks, 1)
	assert.Equal(t, "always", res.Checks[0].Name)
	assert.True(t, res.Checks[0].Status)

	hc.Register("broken", func() (error, bool) { return errors.New("unreachable"), false })

	res = hc.Run()
	assert.Equal(t, http.StatusInternalServerError, res.StatusCode)
	require.Len(t, res.Checks, 2)
	assert.False(t, res.Checks[1].Status)
	assert.Equal(t, "unreachable", res.Checks[1].Error)
}
