// Package gateway exposes the calculator services over HTTP JSON.
package gateway

import (
	"context"
	"fmt"
	"time"

	"github.com/example/rpc-calculator-demo/domain/arith"
	"github.com/example/rpc-calculator-demo/modules/calculator"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/types"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// Module serves POST /rpc/:operation by forwarding to the calculator
// module's request-reply services.
type Module struct {
	app        *fiber.App
	addr       string
	registry   *arith.Registry
	calculator CalculatorPort
	logger     types.Logger
}

// Compile-time interface checks
var (
	_ mono.Module                              = (*Module)(nil)
	_ mono.DependentModule                     = (*Module)(nil)
	_ mono.SetDependencyServiceContainerModule = (*Module)(nil)
	_ mono.HealthCheckableModule               = (*Module)(nil)
)

// NewModule creates a gateway listening on addr. registry is the set of
// operations the calculator module serves.
func NewModule(addr string, registry *arith.Registry, logger types.Logger) *Module {
	return &Module{
		addr:     addr,
		registry: registry,
		logger:   logger,
	}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "gateway"
}

// Dependencies declares that the gateway depends on the calculator module.
func (m *Module) Dependencies() []string {
	return []string{calculator.ModuleName}
}

// SetDependencyServiceContainer receives the calculator service container.
func (m *Module) SetDependencyServiceContainer(module string, container mono.ServiceContainer) {
	if module == calculator.ModuleName {
		m.calculator = calculator.NewServiceAdapter(container, m.registry)
		m.logger.Info("Received dependency container", "module", module)
	}
}

// Start builds the Fiber app and starts listening.
func (m *Module) Start(ctx context.Context) error {
	if m.calculator == nil {
		return fmt.Errorf("required dependency %q not wired", calculator.ModuleName)
	}

	m.app = m.newApp()

	// Start server in a goroutine with error channel for startup failures
	errCh := make(chan error, 1)
	go func() {
		if err := m.app.Listen(m.addr); err != nil {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("HTTP gateway failed to start: %w", err)
	case <-time.After(100 * time.Millisecond):
		m.logger.Info("HTTP gateway started", "addr", m.addr)
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop waits for in-flight requests and shuts the server down.
func (m *Module) Stop(ctx context.Context) error {
	if m.app == nil {
		return nil
	}
	if err := m.app.ShutdownWithContext(ctx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP gateway: %w", err)
	}
	m.logger.Info("HTTP gateway stopped")
	return nil
}

// Health reports whether the HTTP server has been started.
func (m *Module) Health(_ context.Context) mono.HealthStatus {
	if m.app == nil {
		return mono.HealthStatus{
			Healthy: false,
			Message: "HTTP gateway not initialized",
		}
	}
	return mono.HealthStatus{
		Healthy: true,
		Message: "operational",
		Details: map[string]any{
			"addr": m.addr,
		},
	}
}

func (m *Module) newApp() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "rpc-calculator-gateway",
		DisableStartupMessage: true,
		ErrorHandler:          m.errorHandler,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} ${method} ${path} ${latency}\n",
	}))

	m.registerRoutes(app)
	return app
}

func (m *Module) registerRoutes(app *fiber.App) {
	app.Get("/health", m.handleHealth)

	rpc := app.Group("/rpc")
	rpc.Get("", m.handleListOperations)
	rpc.Post("/:operation", m.handleInvoke)
}
