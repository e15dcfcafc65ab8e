package caller

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/example/rpc-calculator-demo/domain/arith"
)

// Call is one step of the fixed demo sequence.
type Call struct {
	Label     string
	Symbol    string
	Operation arith.Operation
}

// Sequence is the order the caller invokes the operations in.
var Sequence = []Call{
	{Label: "Addition", Symbol: "+", Operation: arith.OpAdd},
	{Label: "Subtraction", Symbol: "-", Operation: arith.OpSubtract},
	{Label: "Multiplication", Symbol: "*", Operation: arith.OpMultiply},
	{Label: "Division", Symbol: "/", Operation: arith.OpDivide},
}

// Invoker is satisfied by *Client.
type Invoker interface {
	Invoke(ctx context.Context, op arith.Operation, x, y float64) (arith.Result, error)
}

// Report writes one labeled result line, e.g. "Addition: 10 + 5 = 15".
func Report(w io.Writer, label, symbol string, x, y float64, result arith.Result) error {
	value := formatNumber(result.Result)
	if result.Failed() {
		value = "Error: " + result.Error
	}
	_, err := fmt.Fprintf(w, "%s: %s %s %s = %s\n", label, formatNumber(x), symbol, formatNumber(y), value)
	return err
}

// Run invokes every operation in Sequence with x and y and reports each
// result to w. The first transport failure aborts the run.
func Run(ctx context.Context, inv Invoker, w io.Writer, x, y float64) error {
	for _, call := range Sequence {
		result, err := inv.Invoke(ctx, call.Operation, x, y)
		if err != nil {
			return err
		}
		if err := Report(w, call.Label, call.Symbol, x, y, result); err != nil {
			return fmt.Errorf("report %s: %w", call.Operation, err)
		}
	}
	return nil
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
