package test

import (
	"go.uber.org/fx"
)

// LifecycleRecorder collects hooks registered by components so tests can run
// OnStart and OnStop directly.
type LifecycleRecorder struct {
	Hooks []fx.Hook
}

// Append records the hook without scheduling it.
func (l *LifecycleRecorder) Append(h fx.Hook) {
	l.Hooks = append(l.Hooks, h)
}

// ShutdownerStub signals on its channel when a shutdown is requested.
type ShutdownerStub struct {
	Called chan struct{}
}

// Shutdown marks the stub as called. Repeat calls do not block.
func (s *ShutdownerStub) Shutdown(...fx.ShutdownOption) error {
	if s.Called != nil {
		select {
		case s.Called <- struct{}{}:
		default:
		}
	}
	return nil
}
