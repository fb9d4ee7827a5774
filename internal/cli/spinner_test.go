package cli

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"
)

// syncBuffer is a bytes.Buffer safe for the spinner goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestSpinnerDrawsMessage(t *testing.T) {
	var out syncBuffer
	s := newSpinnerWithContext(context.Background(), &out, "Scanning...")
	s.Start()
	time.Sleep(200 * time.Millisecond)
	s.Stop()

	if !strings.Contains(out.String(), "Scanning...") {
		t.Errorf("spinner output = %q, want message", out.String())
	}
	if !s.Cancelled() {
		// Stop cancels the spinner's own context.
		t.Error("Cancelled() should be true after Stop")
	}
}

func TestSpinnerWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	s := newSpinnerWithContext(ctx, &syncBuffer{}, "Testing with context...")
	s.Start()
	cancel()
	time.Sleep(100 * time.Millisecond)

	if !s.Cancelled() {
		t.Error("Spinner should be cancelled after context cancellation")
	}
	s.Stop()
}

func TestSpinnerStopIsIdempotent(t *testing.T) {
	s := newSpinnerWithContext(context.Background(), &syncBuffer{}, "Testing idempotent stop...")
	s.Start()

	s.Stop()
	s.Stop()
	s.Stop()
}

func TestSpinnerStopWithoutStart(t *testing.T) {
	s := newSpinnerWithContext(context.Background(), &syncBuffer{}, "never started")
	done := make(chan struct{})
	go func() {
		s.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop blocked on a spinner that was never started")
	}
}

func TestSpinnerHooksUpdateMessage(t *testing.T) {
	s := newSpinnerWithContext(context.Background(), &syncBuffer{}, "start")
	h := newSpinnerHooks(s)
	ctx := context.Background()

	h.OnPassStart(ctx, "collect", "/repo")
	if s.Message() != "Reading poms..." {
		t.Errorf("Message() = %q", s.Message())
	}

	h.OnPOMParsed(ctx, "/repo/a.pom", "a")
	h.OnPOMParsed(ctx, "/repo/b.pom", "b")
	h.OnPassStart(ctx, "list", "/repo")
	if s.Message() != "Listing jars (2 poms)..." {
		t.Errorf("Message() = %q", s.Message())
	}

	h.OnJarListed(ctx, "/repo/a.jar", 5)
	h.OnJarListed(ctx, "/repo/b.jar", 2)
	if s.Message() != "Listing jars... 2 jars, 7 classes" {
		t.Errorf("Message() = %q", s.Message())
	}
}
