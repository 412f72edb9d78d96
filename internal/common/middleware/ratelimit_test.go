package middleware

import (
	"context"
	"testing"
	"time"
)

func TestTokenBucketExhaustsCapacity(t *testing.T) {
	tb := NewTokenBucket(3, 0)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if !tb.Allow(ctx) {
			t.Fatalf("request %d should be allowed", i)
		}
	}
	if tb.Allow(ctx) {
		t.Fatalf("request beyond capacity should be rejected")
	}
}

func TestTokenBucketRefills(t *testing.T) {
	tb := NewTokenBucket(1, 100)
	ctx := context.Background()

	if !tb.Allow(ctx) {
		t.Fatalf("first request should be allowed")
	}
	time.Sleep(50 * time.Millisecond)
	if !tb.Allow(ctx) {
		t.Fatalf("request after refill should be allowed")
	}
}

func TestSlidingWindowLimitsWithinWindow(t *testing.T) {
	sw := NewSlidingWindow(time.Minute, 2)
	ctx := context.Background()

	if !sw.Allow(ctx) || !sw.Allow(ctx) {
		t.Fatalf("requests within limit should be allowed")
	}
	if sw.Allow(ctx) {
		t.Fatalf("request over limit should be rejected")
	}
}

func TestSlidingWindowExpiresOldRequests(t *testing.T) {
	sw := NewSlidingWindow(30*time.Millisecond, 1)
	ctx := context.Background()

	if !sw.Allow(ctx) {
		t.Fatalf("first request should be allowed")
	}
	time.Sleep(50 * time.Millisecond)
	if !sw.Allow(ctx) {
		t.Fatalf("request after window expiry should be allowed")
	}
}
