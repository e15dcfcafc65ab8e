package calculator

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/example/rpc-calculator-demo/domain/arith"
	"github.com/go-monolith/mono"
	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testNATSPort = 14231

// startTestApp boots a mono application serving the calculator module
// and returns a plain NATS connection to its embedded server.
func startTestApp(t *testing.T) *nats.Conn {
	t.Helper()

	app, err := mono.NewMonoApplication(
		mono.WithLogLevel(mono.LogLevelError), // Suppress logs in tests
		mono.WithNATSPort(testNATSPort),
	)
	require.NoError(t, err)

	require.NoError(t, app.Register(NewModule(app.Logger())))
	require.NoError(t, app.Start(context.Background()))
	t.Cleanup(func() {
		_ = app.Stop(context.Background())
	})

	nc, err := nats.Connect(fmt.Sprintf("nats://127.0.0.1:%d", testNATSPort))
	require.NoError(t, err)
	t.Cleanup(nc.Close)

	return nc
}

func TestServicesOverNATS(t *testing.T) {
	nc := startTestApp(t)

	tests := []struct {
		op         arith.Operation
		req        arith.Operands
		wantResult float64
		wantError  string
	}{
		{op: arith.OpAdd, req: arith.Operands{X: 10, Y: 5}, wantResult: 15},
		{op: arith.OpSubtract, req: arith.Operands{X: 10, Y: 5}, wantResult: 5},
		{op: arith.OpMultiply, req: arith.Operands{X: 10, Y: 5}, wantResult: 50},
		{op: arith.OpDivide, req: arith.Operands{X: 10, Y: 5}, wantResult: 2},
		{op: arith.OpDivide, req: arith.Operands{X: 10, Y: 0}, wantError: "division by zero"},
		{op: arith.OpMultiply, req: arith.Operands{X: 1e308, Y: 10}, wantResult: math.Inf(1)},
		{op: arith.OpAdd, req: arith.Operands{X: -1.7e308, Y: -1.7e308}, wantResult: math.Inf(-1)},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s(%v,%v)", tt.op, tt.req.X, tt.req.Y), func(t *testing.T) {
			data, err := json.Marshal(tt.req)
			require.NoError(t, err)

			msg, err := nc.Request(Subject(tt.op), data, 2*time.Second)
			require.NoError(t, err)

			var resp arith.Result
			require.NoError(t, json.Unmarshal(msg.Data, &resp))

			assert.Equal(t, tt.op, resp.Operation)
			assert.Equal(t, tt.wantError, resp.Error)
			if tt.wantError == "" {
				assert.Equal(t, tt.wantResult, resp.Result)
			}
		})
	}
}
