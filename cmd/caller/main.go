// Command caller invokes each calculator operation with (10, 5) and
// prints the results.
package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/example/rpc-calculator-demo/caller"
)

const (
	sampleX = 10
	sampleY = 5
)

func main() {
	natsURL := getEnv("NATS_URL", "nats://localhost:4222")
	timeout := getEnvDuration("CALL_TIMEOUT", 5*time.Second)

	ctx := context.Background()

	client, err := caller.Connect(ctx,
		caller.WithURL(natsURL),
		caller.WithTimeout(timeout),
	)
	if err != nil {
		log.Fatalf("Failed to connect to RPC server: %v", err)
	}

	if err := caller.Run(ctx, client, os.Stdout, sampleX, sampleY); err != nil {
		_ = client.Close()
		log.Fatalf("RPC call failed: %v", err)
	}

	if err := client.Close(); err != nil {
		log.Printf("Warning: %v", err)
	}
}

// getEnv returns environment variable value or default.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
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
