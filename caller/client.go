// Package caller invokes the calculator services over NATS and reports
// their results.
package caller

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/example/rpc-calculator-demo/domain/arith"
	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
)

// RequestIDHeader carries the per-call request ID.
const RequestIDHeader = "X-Request-ID"

// Client is a connected handle to the calculator service.
type Client struct {
	nc     *nats.Conn
	config Config
	logger *slog.Logger
}

// Connect dials the calculator's NATS endpoint. It fails with a
// *ConnectionError when the endpoint is unreachable.
//
// nats.Connect takes no context, so ctx is only checked before dialing;
// the dial itself is bounded by Config.Timeout (see WithTimeout).
func Connect(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := ctx.Err(); err != nil {
		return nil, &ConnectionError{URL: cfg.URL, Err: err}
	}

	nc, err := nats.Connect(cfg.URL,
		nats.Name(cfg.Name),
		nats.Timeout(cfg.Timeout),
		nats.MaxReconnects(0),
	)
	if err != nil {
		return nil, &ConnectionError{URL: cfg.URL, Err: err}
	}

	logger := slog.Default().With("component", "caller")
	logger.Debug("Connected to calculator", "url", nc.ConnectedUrl())

	return &Client{
		nc:     nc,
		config: cfg,
		logger: logger,
	}, nil
}

// Invoke calls op with x and y and blocks until the reply arrives.
// The returned Result may carry an application error (e.g. division by
// zero); check Result.Failed. Network and protocol failures are returned
// as *TransportError.
func (c *Client) Invoke(ctx context.Context, op arith.Operation, x, y float64) (arith.Result, error) {
	subject := c.config.SubjectPrefix + string(op)

	data, err := json.Marshal(arith.Operands{X: x, Y: y})
	if err != nil {
		return arith.Result{}, &TransportError{Subject: subject, Err: fmt.Errorf("encode request: %w", err)}
	}

	if _, ok := ctx.Deadline(); !ok && c.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.config.Timeout)
		defer cancel()
	}

	msg := nats.NewMsg(subject)
	msg.Data = data
	requestID := uuid.NewString()
	msg.Header.Set(RequestIDHeader, requestID)

	reply, err := c.nc.RequestMsgWithContext(ctx, msg)
	if err != nil {
		return arith.Result{}, &TransportError{Subject: subject, Err: err}
	}

	var result arith.Result
	if err := json.Unmarshal(reply.Data, &result); err != nil {
		return arith.Result{}, &TransportError{Subject: subject, Err: fmt.Errorf("decode reply: %w", err)}
	}
	if result.Operation != op {
		// Framework-level faults come back without the operation echo.
		return arith.Result{}, &TransportError{
			Subject: subject,
			Err:     fmt.Errorf("unexpected reply: %s", reply.Data),
		}
	}

	c.logger.Debug("Call completed", "subject", subject, "request_id", requestID, "failed", result.Failed())
	return result, nil
}

// Close drains and closes the connection.
func (c *Client) Close() error {
	if c.nc == nil {
		return nil
	}
	if err := c.nc.Drain(); err != nil {
		c.nc.Close()
		return fmt.Errorf("drain connection: %w", err)
	}
	return nil
}
