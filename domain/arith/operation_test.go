package arith

import (
	"errors"
	"testing"
)

func TestOperations(t *testing.T) {
	tests := []struct {
		name      string
		fn        Func
		x         float64
		y         float64
		want      float64
		wantError error
	}{
		{name: "add", fn: Add, x: 10, y: 5, want: 15},
		{name: "add negatives", fn: Add, x: -10, y: -5, want: -15},
		{name: "add fractions", fn: Add, x: 0.5, y: 0.25, want: 0.75},
		{name: "subtract", fn: Subtract, x: 10, y: 5, want: 5},
		{name: "subtract resulting in negative", fn: Subtract, x: 5, y: 10, want: -5},
		{name: "multiply", fn: Multiply, x: 10, y: 5, want: 50},
		{name: "multiply by zero", fn: Multiply, x: 100, y: 0, want: 0},
		{name: "divide", fn: Divide, x: 10, y: 5, want: 2},
		{name: "divide non-integer result", fn: Divide, x: 1, y: 4, want: 0.25},
		{name: "divide zero by non-zero", fn: Divide, x: 0, y: 3, want: 0},
		{name: "divide by zero", fn: Divide, x: 10, y: 0, wantError: ErrDivisionByZero},
		{name: "divide zero by zero", fn: Divide, x: 0, y: 0, wantError: ErrDivisionByZero},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fn(tt.x, tt.y)

			if tt.wantError != nil {
				if !errors.Is(err, tt.wantError) {
					t.Errorf("error = %v, wantError = %v", err, tt.wantError)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOperationsMatchNativeArithmetic(t *testing.T) {
	samples := []float64{-1e9, -7.5, -1, 0, 0.1, 1, 3, 42, 1e12}

	for _, x := range samples {
		for _, y := range samples {
			if got, _ := Add(x, y); got != x+y {
				t.Errorf("Add(%v, %v) = %v, want %v", x, y, got, x+y)
			}
			if got, _ := Subtract(x, y); got != x-y {
				t.Errorf("Subtract(%v, %v) = %v, want %v", x, y, got, x-y)
			}
			if got, _ := Multiply(x, y); got != x*y {
				t.Errorf("Multiply(%v, %v) = %v, want %v", x, y, got, x*y)
			}
			if y == 0 {
				continue
			}
			if got, err := Divide(x, y); err != nil || got != x/y {
				t.Errorf("Divide(%v, %v) = %v, %v, want %v", x, y, got, err, x/y)
			}
		}
	}
}

func TestOperationsAreIdempotent(t *testing.T) {
	first, _ := Divide(10, 3)
	for i := 0; i < 100; i++ {
		got, err := Divide(10, 3)
		if err != nil || got != first {
			t.Fatalf("call %d: Divide(10, 3) = %v, %v, want %v", i, got, err, first)
		}
	}
}
