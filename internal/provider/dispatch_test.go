package provider

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestDispatchPreservesOrder(t *testing.T) {
	slow := &Static{Label: "slow", Text: "slow answer", Delay: 20 * time.Millisecond}
	fast := &Static{Label: "fast", Text: "fast answer"}

	outcomes := Dispatch(context.Background(), []byte("wav"), nil, slow, fast)
	if len(outcomes) != 2 {
		t.Fatalf("expected 2 outcomes, got %d", len(outcomes))
	}
	if outcomes[0].Name != "slow" || outcomes[1].Name != "fast" {
		t.Fatalf("expected argument order, got %q, %q", outcomes[0].Name, outcomes[1].Name)
	}
	if outcomes[0].Result.Text != "slow answer" {
		t.Fatalf("unexpected slow text %q", outcomes[0].Result.Text)
	}
}

func TestDispatchIsolatesFailures(t *testing.T) {
	// one provider failing must not affect the other's result
	failing := &Static{Label: "failing", Err: errors.New("401 unauthorized")}
	healthy := &Static{Label: "healthy", Text: "still works", Delay: time.Millisecond}

	outcomes := Dispatch(context.Background(), []byte("wav"), nil, failing, healthy)
	if outcomes[0].Err == nil {
		t.Fatal("expected failing outcome to carry its error")
	}
	if outcomes[1].Err != nil {
		t.Fatalf("healthy provider affected by sibling failure: %v", outcomes[1].Err)
	}
	if outcomes[1].Result.Text != "still works" {
		t.Fatalf("unexpected healthy text %q", outcomes[1].Result.Text)
	}
	if outcomes[1].Result.Elapsed <= 0 {
		t.Fatal("expected healthy timing to still be reported")
	}
}

func TestDispatchDeliversEachOutcome(t *testing.T) {
	var delivered []string
	deliver := func(o Outcome) { delivered = append(delivered, o.Name) }

	Dispatch(context.Background(), []byte("wav"), deliver,
		&Static{Label: "a", Text: "x"},
		&Static{Label: "b", Err: errors.New("boom")},
	)

	if len(delivered) != 2 {
		t.Fatalf("expected 2 deliveries, got %d", len(delivered))
	}
	seen := map[string]bool{}
	for _, name := range delivered {
		seen[name] = true
	}
	if !seen["a"] || !seen["b"] {
		t.Fatalf("expected both providers delivered, got %v", delivered)
	}
}

func TestDispatchNoTranscribers(t *testing.T) {
	outcomes := Dispatch(context.Background(), []byte("wav"), nil)
	if len(outcomes) != 0 {
		t.Fatalf("expected no outcomes, got %d", len(outcomes))
	}
}
