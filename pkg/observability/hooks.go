// Package observability provides hooks for progress reporting and metrics.
//
// The scanner emits events through a process-wide hook registry without
// depending on any particular backend. The CLI registers a hook that drives
// its progress spinner; tests register counting hooks.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetScanHooks(&myScanHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Scan().OnPassStart(ctx, "collect", root)
//	// ... walk ...
//	observability.Scan().OnPassComplete(ctx, "collect", files, duration)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Scan Hooks
// =============================================================================

// ScanHooks receives events from the collector and lister passes.
type ScanHooks interface {
	// Pass events. pass is "collect" or "list".
	OnPassStart(ctx context.Context, pass, root string)
	OnPassComplete(ctx context.Context, pass string, files int, duration time.Duration)

	// OnPOMParsed records a pom whose coordinates were stored under key.
	OnPOMParsed(ctx context.Context, path, key string)

	// OnJarListed records a jar and the number of records emitted for it.
	OnJarListed(ctx context.Context, path string, records int)

	// OnFailure records a per-file failure.
	OnFailure(ctx context.Context, path string, err error)
}

// =============================================================================
// No-op Implementation
// =============================================================================

// NoopScanHooks is a no-op implementation of ScanHooks.
type NoopScanHooks struct{}

func (NoopScanHooks) OnPassStart(context.Context, string, string)                {}
func (NoopScanHooks) OnPassComplete(context.Context, string, int, time.Duration) {}
func (NoopScanHooks) OnPOMParsed(context.Context, string, string)                {}
func (NoopScanHooks) OnJarListed(context.Context, string, int)                   {}
func (NoopScanHooks) OnFailure(context.Context, string, error)                   {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	scanHooks ScanHooks = NoopScanHooks{}
	hooksMu   sync.RWMutex
)

// SetScanHooks registers custom scan hooks.
// This should be called once at application startup before any scan.
func SetScanHooks(h ScanHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		scanHooks = h
	}
}

// Scan returns the registered scan hooks.
func Scan() ScanHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return scanHooks
}

// Reset restores the hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	scanHooks = NoopScanHooks{}
}
