package calculator

import (
	"context"

	"github.com/example/rpc-calculator-demo/domain/arith"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/middleware/requestid"
)

// handlerFor returns the typed request-reply handler for op.
func (m *Module) handlerFor(op arith.Operation) func(context.Context, arith.Operands, *mono.Msg) (arith.Result, error) {
	return func(ctx context.Context, req arith.Operands, _ *mono.Msg) (arith.Result, error) {
		return m.evaluate(ctx, op, req), nil
	}
}

// evaluate runs op and folds application errors into the reply.
func (m *Module) evaluate(ctx context.Context, op arith.Operation, req arith.Operands) arith.Result {
	reqID := requestid.GetRequestID(ctx)

	value, err := m.registry.Evaluate(op, req.X, req.Y)
	if err != nil {
		m.logger.Warn("Operation failed",
			"request_id", reqID, "operation", op, "x", req.X, "y", req.Y, "error", err)
		return arith.Result{
			Operation: op,
			Error:     err.Error(),
		} // Returned in the payload, not as a transport fault
	}

	// Successful calls are recorded by the accesslog middleware.
	return arith.Result{
		Operation: op,
		Result:    value,
	}
}
