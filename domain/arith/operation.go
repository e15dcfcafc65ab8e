// Package arith holds the arithmetic operations served over RPC.
package arith

import "errors"

// Operation identifies a registered arithmetic operation.
type Operation string

// Supported operations.
const (
	OpAdd      Operation = "add"
	OpSubtract Operation = "subtract"
	OpMultiply Operation = "multiply"
	OpDivide   Operation = "divide"
)

// Func is a two-operand numeric operation.
type Func func(x, y float64) (float64, error)

// Sentinel errors for arithmetic operations.
var (
	// ErrDivisionByZero is returned by Divide when the divisor is zero.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrUnknownOperation is returned when an operation name is not registered.
	ErrUnknownOperation = errors.New("unknown operation")

	// ErrDuplicateOperation is returned when a name is registered twice.
	ErrDuplicateOperation = errors.New("operation already registered")
)

// Add returns x + y.
func Add(x, y float64) (float64, error) {
	return x + y, nil
}

// Subtract returns x - y.
func Subtract(x, y float64) (float64, error) {
	return x - y, nil
}

// Multiply returns x * y.
func Multiply(x, y float64) (float64, error) {
	return x * y, nil
}

// Divide returns x / y, or ErrDivisionByZero when y is zero.
func Divide(x, y float64) (float64, error) {
	if y == 0 {
		return 0, ErrDivisionByZero
	}
	return x / y, nil
}
