package shutdown

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"record-form/internal/logger"
)

const DefaultStepTimeout = 5 * time.Second

type Shutdownable interface {
	Shutdown()
}

// Func adapts a plain function to Shutdownable.
type Func func()

func (f Func) Shutdown() { f() }

type component struct {
	name string
	c    Shutdownable
}

// Manager runs registered components' Shutdown once, newest first.
type Manager struct {
	mu          sync.Mutex
	components  []component
	logger      logger.Logger
	stepTimeout time.Duration
	once        sync.Once
	done        chan struct{}
}

func NewManager(log logger.Logger) *Manager {
	return &Manager{
		logger:      log,
		stepTimeout: DefaultStepTimeout,
		done:        make(chan struct{}),
	}
}

// SetStepTimeout bounds how long a single component may take to stop.
func (m *Manager) SetStepTimeout(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stepTimeout = d
}

func (m *Manager) Register(name string, c Shutdownable) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.components = append(m.components, component{name: name, c: c})
}

// Listen triggers Shutdown on SIGINT or SIGTERM until ctx is cancelled.
func (m *Manager) Listen(ctx context.Context) {
	sigCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)

	go func() {
		defer stop()
		select {
		case <-sigCtx.Done():
			if ctx.Err() != nil {
				return
			}
			m.logger.Info("Shutdown", "shutdown signal received", nil)
			m.Shutdown()
		case <-m.done:
		}
	}()
}

// Shutdown stops every registered component. Later calls are no-ops.
func (m *Manager) Shutdown() {
	m.once.Do(func() {
		m.mu.Lock()
		components := append([]component(nil), m.components...)
		timeout := m.stepTimeout
		m.mu.Unlock()

		m.logger.Info("Shutdown", "shutdown sequence initiated", map[string]interface{}{
			"components": len(components),
		})

		for i := len(components) - 1; i >= 0; i-- {
			comp := components[i]

			finished := make(chan struct{})
			go func() {
				defer close(finished)
				comp.c.Shutdown()
			}()

			select {
			case <-finished:
				m.logger.Debug("Shutdown", "component stopped", map[string]interface{}{
					"component": comp.name,
				})
			case <-time.After(timeout):
				m.logger.Warning("Shutdown", "component shutdown timeout", map[string]interface{}{
					"component": comp.name,
				})
			}
		}

		close(m.done)
		m.logger.Info("Shutdown", "shutdown sequence completed", nil)
	})
}

func (m *Manager) Done() <-chan struct{} {
	return m.done
}
