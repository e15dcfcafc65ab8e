package arith

import (
	"encoding/json"
	"fmt"
	"math"
)

// Non-finite values travel as JSON strings, since JSON numbers cannot
// represent them.
const (
	posInf = "+Inf"
	negInf = "-Inf"
	notNum = "NaN"
)

// Operands is the request payload shared by every operation.
type Operands struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type operandsWire struct {
	X json.RawMessage `json:"x"`
	Y json.RawMessage `json:"y"`
}

// MarshalJSON encodes the operands, writing non-finite values as strings.
func (o Operands) MarshalJSON() ([]byte, error) {
	return json.Marshal(operandsWire{
		X: encodeFloat(o.X),
		Y: encodeFloat(o.Y),
	})
}

// UnmarshalJSON decodes operands written by MarshalJSON or plain numbers.
func (o *Operands) UnmarshalJSON(data []byte) error {
	var w operandsWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	x, err := decodeFloat(w.X)
	if err != nil {
		return fmt.Errorf("x: %w", err)
	}
	y, err := decodeFloat(w.Y)
	if err != nil {
		return fmt.Errorf("y: %w", err)
	}
	o.X, o.Y = x, y
	return nil
}

// Result is the reply to an operation call.
// Application failures such as division by zero are carried in Error;
// Result is meaningless when Error is set.
type Result struct {
	Operation Operation `json:"operation"`
	Result    float64   `json:"result"`
	Error     string    `json:"error,omitempty"`
}

type resultWire struct {
	Operation Operation       `json:"operation"`
	Result    json.RawMessage `json:"result"`
	Error     string          `json:"error,omitempty"`
}

// Failed reports whether the reply carries an application error.
func (r Result) Failed() bool {
	return r.Error != ""
}

// MarshalJSON encodes the reply. An overflowed result such as
// multiply(1e308, 10) is written as "+Inf".
func (r Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(resultWire{
		Operation: r.Operation,
		Result:    encodeFloat(r.Result),
		Error:     r.Error,
	})
}

// UnmarshalJSON decodes a reply written by MarshalJSON.
func (r *Result) UnmarshalJSON(data []byte) error {
	var w resultWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	value, err := decodeFloat(w.Result)
	if err != nil {
		return fmt.Errorf("result: %w", err)
	}
	r.Operation = w.Operation
	r.Result = value
	r.Error = w.Error
	return nil
}

func encodeFloat(v float64) json.RawMessage {
	switch {
	case math.IsInf(v, 1):
		return json.RawMessage(`"` + posInf + `"`)
	case math.IsInf(v, -1):
		return json.RawMessage(`"` + negInf + `"`)
	case math.IsNaN(v):
		return json.RawMessage(`"` + notNum + `"`)
	}
	data, _ := json.Marshal(v) // finite floats always encode
	return data
}

// decodeFloat accepts a JSON number, one of the non-finite strings, or
// nothing (zero).
func decodeFloat(raw json.RawMessage) (float64, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return 0, nil
	}
	if raw[0] != '"' {
		var v float64
		if err := json.Unmarshal(raw, &v); err != nil {
			return 0, err
		}
		return v, nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, err
	}
	switch s {
	case posInf:
		return math.Inf(1), nil
	case negInf:
		return math.Inf(-1), nil
	case notNum:
		return math.NaN(), nil
	}
	return 0, fmt.Errorf("invalid number %q", s)
}
