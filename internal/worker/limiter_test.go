package worker

import (
	"context"
	"testing"
	"time"
)

func TestLimiter_AllowsWithinBurst(t *testing.T) {
	limiter := NewLimiter(100, 10)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	for i := 0; i < 5; i++ {
		if err := limiter.Wait(ctx, "https://example.com/doc"); err != nil {
			t.Fatalf("Unexpected error on request %d: %v", i, err)
		}
	}
}

func TestLimiter_PerHostIsolation(t *testing.T) {
	limiter := NewLimiter(100, 10)

	ctx := context.Background()
	if err := limiter.Wait(ctx, "https://a.example.com/doc"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if err := limiter.Wait(ctx, "https://b.example.com/doc"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(limiter.limiters) != 2 {
		t.Errorf("Expected one limiter per host, got %d", len(limiter.limiters))
	}
}

func TestLimiter_WaitWithDelay(t *testing.T) {
	limiter := NewLimiter(100, 10)

	start := time.Now()
	err := limiter.WaitWithDelay(context.Background(), "https://example.com/doc", 50*time.Millisecond)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if time.Since(start) < 50*time.Millisecond {
		t.Error("Expected the crawl delay to be honored")
	}
}

func TestLimiter_CancelledContext(t *testing.T) {
	// Rate 0 means the limiter never grants a token after the burst is
	// spent, so the wait must end with the context
	limiter := NewLimiter(0, 1)

	ctx := context.Background()
	_ = limiter.Wait(ctx, "https://example.com/doc")

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()

	if err := limiter.Wait(cancelled, "https://example.com/doc"); err == nil {
		t.Error("Expected an error for a cancelled context")
	}
}
