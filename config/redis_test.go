package config

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRedisOptions(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		addr    string
		db      int
		wantErr bool
	}{
		{name: "default", raw: "", addr: "localhost:6379"},
		{name: "explicit", raw: "redis://:secret@cache.internal:6380/2", addr: "cache.internal:6380", db: 2},
		{name: "tls", raw: "rediss://cache.internal:6390", addr: "cache.internal:6390"},
		{name: "bad scheme", raw: "http://cache.internal", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opt, err := redisOptions(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.raw)
				}
				return
			}
			if err != nil {
				t.Fatalf("redisOptions(%q): %v", tt.raw, err)
			}
			if opt.Addr != tt.addr || opt.DB != tt.db {
				t.Fatalf("got addr %s db %d", opt.Addr, opt.DB)
			}
		})
	}
}

func TestConnectRedisRejectsBadURL(t *testing.T) {
	t.Setenv("REDIS_URL", "not-a-url")
	if err := ConnectRedis(context.Background()); err == nil {
		t.Fatal("expected an error for a malformed REDIS_URL")
	}
}

func TestConnectRedisHonoursCancelledContext(t *testing.T) {
	t.Setenv("REDIS_URL", "redis://127.0.0.1:1")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	err := ConnectRedis(ctx)
	if err == nil {
		t.Fatal("expected a ping error")
	}
	if time.Since(start) > queryTimeout {
		t.Fatalf("ping outlived the timeout: %v", err)
	}
	if RedisClient != nil {
		t.Fatal("failed connection must not publish a client")
	}
}

func TestWithParentTimeout(t *testing.T) {
	parent, cancel := context.WithCancel(context.Background())
	ctx, stop := WithParentTimeout(parent)
	defer stop()

	deadline, ok := ctx.Deadline()
	if !ok {
		t.Fatal("expected a deadline")
	}
	if left := time.Until(deadline); left <= 0 || left > queryTimeout {
		t.Fatalf("deadline %s away, want within %s", left, queryTimeout)
	}

	cancel()
	<-ctx.Done()
	if !errors.Is(ctx.Err(), context.Canceled) {
		t.Fatalf("parent cancel not propagated: %v", ctx.Err())
	}
}
