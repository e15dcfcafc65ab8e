package gateway

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/example/rpc-calculator-demo/domain/arith"
	"github.com/example/rpc-calculator-demo/modules/calculator"
	"github.com/go-monolith/mono"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// startGateway boots a mono application with calc and a gateway wired to
// the registry calc serves.
func startGateway(t *testing.T, natsPort int, addr string, calc *calculator.Module) *Module {
	t.Helper()

	app, err := mono.NewMonoApplication(
		mono.WithLogLevel(mono.LogLevelError),
		mono.WithNATSPort(natsPort),
	)
	require.NoError(t, err)

	gw := NewModule(addr, calc.Registry(), &mockLogger{})
	require.NoError(t, app.Register(calc))
	require.NoError(t, app.Register(gw))
	require.NoError(t, app.Start(context.Background()))
	t.Cleanup(func() {
		_ = app.Stop(context.Background())
	})
	return gw
}

// TestGatewayThroughCalculatorModule wires the gateway to a real calculator
// module so requests travel through the mono service container.
func TestGatewayThroughCalculatorModule(t *testing.T) {
	gw := startGateway(t, 14232, "127.0.0.1:18232", calculator.NewModule(&mockLogger{}))

	assert.True(t, gw.Health(context.Background()).Healthy)

	status, out := postJSON(t, gw, "/rpc/multiply", `{"x":10,"y":5}`)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(50), out["result"])
	assert.Equal(t, "multiply", out["operation"])

	status, out = postJSON(t, gw, "/rpc/divide", `{"x":10,"y":0}`)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "division by zero", out["error"])

	status, out = postJSON(t, gw, "/rpc/multiply", `{"x":1e308,"y":10}`)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "+Inf", out["result"])
	assert.NotContains(t, out, "error")

	status, _ = postJSON(t, gw, "/rpc/power", `{"x":2,"y":3}`)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestGatewayFollowsServedRegistry(t *testing.T) {
	registry, err := arith.NewRegistry(
		arith.Entry{Name: arith.OpAdd, Func: arith.Add},
		arith.Entry{Name: "power", Func: func(x, y float64) (float64, error) {
			return math.Pow(x, y), nil
		}},
	)
	require.NoError(t, err)

	gw := startGateway(t, 14234, "127.0.0.1:18234",
		calculator.NewModuleWithRegistry(registry, &mockLogger{}))

	resp, err := gw.app.Test(httptest.NewRequest(http.MethodGet, "/rpc", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var list struct {
		Operations []arith.Operation `json:"operations"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	assert.Equal(t, []arith.Operation{arith.OpAdd, "power"}, list.Operations)

	status, out := postJSON(t, gw, "/rpc/power", `{"x":2,"y":3}`)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(8), out["result"])

	status, _ = postJSON(t, gw, "/rpc/multiply", `{"x":2,"y":3}`)
	assert.Equal(t, http.StatusNotFound, status, "multiply is not served")
}
