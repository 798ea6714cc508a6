package test

import (
	"go.uber.org/fx"
)

// LifecycleRecorder collects hooks appended during wiring so tests can invoke
// OnStart and OnStop directly.
type LifecycleRecorder struct {
	Hooks []fx.Hook
}

// Append stores the hook for later invocation.
func (l *LifecycleRecorder) Append(h fx.Hook) {
	l.Hooks = append(l.Hooks, h)
}

// ShutdownerStub signals on Called whenever the application requests shutdown.
type ShutdownerStub struct {
	Called chan struct{}
}

// Shutdown records the shutdown request without stopping anything.
func (s *ShutdownerStub) Shutdown(...fx.ShutdownOption) error {
	if s.Called != nil {
		select {
		case s.Called <- struct{}{}:
		default:
		}
	}
	return nil
}
