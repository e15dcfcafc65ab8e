package main

import (
	"context"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/example/rpc-calculator-demo/modules/calculator"
	"github.com/example/rpc-calculator-demo/modules/gateway"
	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/middleware/accesslog"
	"github.com/go-monolith/mono/middleware/requestid"
)

func main() {
	// Load configuration from environment
	natsPort := getEnvInt("NATS_PORT", 4222)
	httpAddr := getEnv("HTTP_ADDR", ":8000")
	shutdownTimeout := getEnvDuration("SHUTDOWN_TIMEOUT", 30*time.Second)
	accessLog := getEnvBool("ACCESS_LOG", true)

	logLevel := mono.LogLevelInfo
	if strings.EqualFold(getEnv("LOG_LEVEL", "info"), "error") {
		logLevel = mono.LogLevelError
	}

	// Create mono application with embedded NATS server
	app, err := mono.NewMonoApplication(
		mono.WithShutdownTimeout(shutdownTimeout),
		mono.WithLogLevel(logLevel),
		mono.WithLogFormat(mono.LogFormatText),
		mono.WithNATSPort(natsPort),
	)
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}

	// Middleware must be registered before the modules it wraps
	requestIDMiddleware, err := requestid.New(
		requestid.WithHeaderName("X-Request-ID"),
	)
	if err != nil {
		log.Fatalf("Failed to create requestid middleware: %v", err)
	}
	if err := app.Register(requestIDMiddleware); err != nil {
		log.Fatalf("Failed to register requestid middleware: %v", err)
	}

	var accessLogOutput io.Writer = io.Discard
	if accessLog {
		accessLogOutput = os.Stderr
	}
	accessLogMiddleware, err := accesslog.New(
		accesslog.WithOutput(accessLogOutput),
		accesslog.WithFormat(accesslog.FormatJSON),
		accesslog.WithFields([]accesslog.Field{
			accesslog.FieldTimestamp,
			accesslog.FieldRequestID,
			accesslog.FieldModule,
			accesslog.FieldService,
			accesslog.FieldDurationMS,
			accesslog.FieldStatus,
		}),
	)
	if err != nil {
		log.Fatalf("Failed to create accesslog middleware: %v", err)
	}
	if err := app.Register(accessLogMiddleware); err != nil {
		log.Fatalf("Failed to register accesslog middleware: %v", err)
	}

	calc := calculator.NewModule(app.Logger())
	if err := app.Register(calc); err != nil {
		log.Fatalf("Failed to register calculator module: %v", err)
	}
	if err := app.Register(gateway.NewModule(httpAddr, calc.Registry(), app.Logger())); err != nil {
		log.Fatalf("Failed to register gateway module: %v", err)
	}

	if err := app.Start(context.Background()); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}

	log.Printf("RPC Server is running on port %d...", natsPort)
	log.Println("Services:")
	log.Println("  services.calculator.add      - x + y")
	log.Println("  services.calculator.subtract - x - y")
	log.Println("  services.calculator.multiply - x * y")
	log.Println("  services.calculator.divide   - x / y (error payload when y is 0)")
	log.Printf("HTTP gateway: POST http://localhost%s/rpc/<operation> {\"x\":10,\"y\":5}", httpAddr)
	log.Println("Press Ctrl+C to shutdown")

	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		shutdownTimeout,
		map[string]gfshutdown.Operation{
			"mono-app": func(ctx context.Context) error {
				log.Println("Graceful shutdown initiated...")
				return app.Stop(ctx)
			},
		},
	)

	exitCode := <-wait
	log.Printf("Application exited with code: %d", exitCode)
	os.Exit(exitCode)
}

// getEnv returns environment variable value or default.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt returns environment variable as int or default.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
		log.Printf("Warning: invalid int value for %s: %s, using default: %d", key, value, defaultValue)
	}
	return defaultValue
}

// getEnvDuration returns environment variable as time.Duration or default.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		log.Printf("Warning: invalid duration for %s: %s, using default: %v", key, value, defaultValue)
	}
	return defaultValue
}

// getEnvBool returns environment variable as bool or default.
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
		log.Printf("Warning: invalid bool value for %s: %s, using default: %v", key, value, defaultValue)
	}
	return defaultValue
}
