package gateway

import (
	"context"
	"errors"

	"github.com/example/rpc-calculator-demo/domain/arith"
	"github.com/gofiber/fiber/v2"
)

// CalculatorPort is the calculator surface the gateway needs.
type CalculatorPort interface {
	Operations() []arith.Operation
	Call(ctx context.Context, op arith.Operation, x, y float64) (*arith.Result, error)
}

func (m *Module) handleHealth(c *fiber.Ctx) error {
	return c.JSON(m.Health(c.UserContext()))
}

func (m *Module) handleListOperations(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"operations": m.calculator.Operations(),
	})
}

func (m *Module) handleInvoke(c *fiber.Ctx) error {
	op := arith.Operation(c.Params("operation"))

	var req arith.Operands
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	resp, err := m.calculator.Call(c.UserContext(), op, req.X, req.Y)
	if err != nil {
		if errors.Is(err, arith.ErrUnknownOperation) {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		m.logger.Error("Calculator call failed", "operation", op, "error", err)
		return fiber.NewError(fiber.StatusBadGateway, "calculator service unavailable")
	}

	// Division by zero is a normal reply, not an HTTP error.
	return c.JSON(resp)
}

// errorHandler renders errors as {"error": message}.
func (m *Module) errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		message = fe.Message
	}

	return c.Status(code).JSON(fiber.Map{
		"error": message,
	})
}
