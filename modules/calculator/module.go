package calculator

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/example/rpc-calculator-demo/domain/arith"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	"github.com/go-monolith/mono/pkg/types"
)

// ModuleName is the mono module name, so services are reachable on
// "services.calculator.<operation>".
const ModuleName = "calculator"

// Module exposes every registered arithmetic operation as a
// RequestReplyService.
type Module struct {
	registry *arith.Registry
	logger   types.Logger
}

// Compile-time interface checks.
var (
	_ mono.Module                = (*Module)(nil)
	_ mono.ServiceProviderModule = (*Module)(nil)
	_ mono.HealthCheckableModule = (*Module)(nil)
)

// NewModule creates a calculator module serving the default registry.
func NewModule(logger types.Logger) *Module {
	return NewModuleWithRegistry(arith.Default(), logger)
}

// NewModuleWithRegistry creates a calculator module serving registry.
func NewModuleWithRegistry(registry *arith.Registry, logger types.Logger) *Module {
	return &Module{
		registry: registry,
		logger:   logger,
	}
}

// Registry returns the operations the module serves.
func (m *Module) Registry() *arith.Registry {
	return m.registry
}

// Name returns the module name.
func (m *Module) Name() string {
	return ModuleName
}

// Subject returns the NATS subject of the service for op.
func Subject(op arith.Operation) string {
	return "services." + ModuleName + "." + string(op)
}

// RegisterServices registers one request-reply service per operation.
func (m *Module) RegisterServices(container mono.ServiceContainer) error {
	for _, op := range m.registry.Names() {
		if err := helper.RegisterTypedRequestReplyService(
			container, string(op), json.Unmarshal, json.Marshal, m.handlerFor(op),
		); err != nil {
			return fmt.Errorf("failed to register %s service: %w", op, err)
		}
	}

	m.logger.Info("Registered services", "operations", m.registry.Names())
	return nil
}

// Start initializes the calculator module.
func (m *Module) Start(_ context.Context) error {
	m.logger.Info("Calculator module started")
	return nil
}

// Stop gracefully stops the calculator module.
func (m *Module) Stop(_ context.Context) error {
	m.logger.Info("Calculator module stopped")
	return nil
}

// Health reports the module as healthy with its registered operations.
func (m *Module) Health(_ context.Context) mono.HealthStatus {
	return mono.HealthStatus{
		Healthy: true,
		Message: "operational",
		Details: map[string]any{
			"operations": m.registry.Names(),
		},
	}
}
