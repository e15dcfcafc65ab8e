package calculator

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/example/rpc-calculator-demo/domain/arith"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// ServiceAdapter provides type-safe access to calculator services from
// other modules.
type ServiceAdapter struct {
	container mono.ServiceContainer
	registry  *arith.Registry
}

// NewServiceAdapter creates an adapter over the calculator's container.
// container is received via SetDependencyServiceContainer; registry must be
// the one the calculator module serves.
func NewServiceAdapter(container mono.ServiceContainer, registry *arith.Registry) *ServiceAdapter {
	if container == nil {
		panic("calculator adapter requires non-nil ServiceContainer")
	}
	if registry == nil {
		panic("calculator adapter requires non-nil Registry")
	}
	return &ServiceAdapter{
		container: container,
		registry:  registry,
	}
}

// Operations returns the operations the adapter can call.
func (a *ServiceAdapter) Operations() []arith.Operation {
	return a.registry.Names()
}

// Call invokes the service for op with x and y.
func (a *ServiceAdapter) Call(ctx context.Context, op arith.Operation, x, y float64) (*arith.Result, error) {
	if !a.registry.Has(op) {
		return nil, fmt.Errorf("%w: %q", arith.ErrUnknownOperation, op)
	}

	var resp arith.Result
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		string(op),
		json.Marshal,
		json.Unmarshal,
		&arith.Operands{X: x, Y: y},
		&resp,
	); err != nil {
		return nil, fmt.Errorf("%s service call failed: %w", op, err)
	}
	return &resp, nil
}
