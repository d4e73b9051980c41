package client

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lmorandi/safegen/internal/utils"
	"github.com/lmorandi/safegen/providers/ai"
)

func TestNew_NilProvider(t *testing.T) {
	if _, err := New(nil); err == nil {
		t.Fatal("expected error for nil provider")
	}
}

func TestNew_NilMiddleware(t *testing.T) {
	stub := &stubProvider{}
	if _, err := New(stub, WithMiddlewares(nil)); err == nil {
		t.Fatal("expected error for nil middleware")
	}
}

func TestSend_DefaultModelApplied(t *testing.T) {
	stub := &stubProvider{}
	c, err := New(stub, WithRequestDelay(0), WithDefaultModel("gpt-5-nano"))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if _, err := c.Send(context.Background(), ai.NewUserRequest("", "hello", nil)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := stub.requests[0].Model; got != "gpt-5-nano" {
		t.Errorf("expected default model applied, got %q", got)
	}
}

func TestSend_ExplicitModelWins(t *testing.T) {
	stub := &stubProvider{}
	c, err := New(stub, WithRequestDelay(0), WithDefaultModel("gpt-5-nano"))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if _, err := c.Send(context.Background(), ai.NewUserRequest("gpt-4o", "hello", nil)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := stub.requests[0].Model; got != "gpt-4o" {
		t.Errorf("expected request model to win, got %q", got)
	}
}

func TestSend_LegacyEngineSkipsDefault(t *testing.T) {
	stub := &stubProvider{}
	c, err := New(stub, WithRequestDelay(0), WithDefaultModel("gpt-5-nano"))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	request := ai.NewUserRequest("", "hello", nil)
	request.Engine = "text-davinci-003"

	if _, err := c.Send(context.Background(), request); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// The provider normalizes legacy engines itself; the client must pass the
	// request through untouched.
	if got := stub.requests[0].Model; got != "" {
		t.Errorf("expected model left empty for legacy engine request, got %q", got)
	}
	if got := stub.requests[0].Engine; got != "text-davinci-003" {
		t.Errorf("expected engine preserved, got %q", got)
	}
}

func TestSend_PerCallOptions(t *testing.T) {
	stub := &stubProvider{}
	c, err := New(stub, WithRequestDelay(0))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	gen := &ai.GenerationConfig{MaxOutputTokens: 50, Temperature: utils.Ptr(0.0)}
	original := ai.NewUserRequest("", "hello", nil)

	if _, err := c.Send(context.Background(), original, WithModel("gpt-4o"), WithGenerationConfig(gen)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sent := stub.requests[0]
	if sent.Model != "gpt-4o" {
		t.Errorf("expected per-call model override, got %q", sent.Model)
	}
	if sent.GenerationConfig != gen {
		t.Error("expected per-call generation config override")
	}
	if original.Model != "" || original.GenerationConfig != nil {
		t.Error("Send must not mutate the caller's request")
	}
}

func TestSend_DelayHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	stub := &stubProvider{}
	c, err := New(stub, WithRequestDelay(time.Hour))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	start := time.Now()
	_, err = c.Send(ctx, ai.NewUserRequest("", "hello", nil))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if time.Since(start) > time.Second {
		t.Error("Send must abort the delay immediately on cancellation")
	}
	if stub.callCount != 0 {
		t.Errorf("expected no provider call, got %d", stub.callCount)
	}
}

func TestSend_WithoutDelay(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stub := &stubProvider{}
	c, err := New(stub, WithRequestDelay(time.Hour))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		if _, err := c.Send(ctx, ai.NewUserRequest("", "hello", nil), WithoutDelay()); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("WithoutDelay must skip the pre-call pause")
	}
	if stub.callCount != 1 {
		t.Errorf("expected 1 provider call, got %d", stub.callCount)
	}
}

func TestSend_MiddlewareOrder(t *testing.T) {
	stub := &stubProvider{}

	var order []string
	tag := func(name string) Middleware {
		return func(next SendFunc) SendFunc {
			return func(ctx context.Context, request ai.ChatRequest) (*ai.ChatResponse, error) {
				order = append(order, name+" before")
				response, err := next(ctx, request)
				order = append(order, name+" after")
				return response, err
			}
		}
	}

	c, err := New(stub, WithRequestDelay(0), WithMiddlewares(tag("outer"), tag("inner")))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if _, err := c.Send(context.Background(), ai.NewUserRequest("", "hello", nil)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"outer before", "inner before", "inner after", "outer after"}
	if len(order) != len(want) {
		t.Fatalf("expected %d middleware events, got %v", len(want), order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("middleware order mismatch: got %v, want %v", order, want)
		}
	}
}

func TestProvider_Accessor(t *testing.T) {
	stub := &stubProvider{}
	c, err := New(stub, WithRequestDelay(0))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	if c.Provider() != stub {
		t.Error("Provider() must return the constructed provider")
	}
}
