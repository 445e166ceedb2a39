package memoize

import (
	"context"
	"testing"
)

func TestBypassed(t *testing.T) {
	ctx := context.Background()

	if Bypassed(ctx) {
		t.Error("plain context should not be bypassed")
	}
	if Bypassed(nil) {
		t.Error("nil context should not be bypassed")
	}
	if !Bypassed(WithBypass(ctx)) {
		t.Error("WithBypass context should report bypassed")
	}
}

func TestWithBypass_Idempotent(t *testing.T) {
	ctx := WithBypass(context.Background())

	if again := WithBypass(ctx); again != ctx {
		t.Error("WithBypass on an already bypassed context should return it unchanged")
	}
}

func TestWithBypass_NilContext(t *testing.T) {
	if !Bypassed(WithBypass(nil)) {
		t.Error("WithBypass(nil) should produce a bypassed context")
	}
}
