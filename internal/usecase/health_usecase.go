package usecase

import (
	"context"
	"time"
)

// Pinger is any dependency that can report its own liveness.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a function to Pinger.
type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

type HealthUsecase interface {
	Check(ctx context.Context) (map[string]string, bool)
}

type healthUsecase struct {
	deps map[string]Pinger
}

// NewHealthUsecase checks each named dependency; nil entries are skipped.
func NewHealthUsecase(deps map[string]Pinger) HealthUsecase {
	return &healthUsecase{deps: deps}
}

func (u *healthUsecase) Check(ctx context.Context) (map[string]string, bool) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	status := map[string]string{"status": "ok"}
	healthy := true
	for name, dep := range u.deps {
		if dep == nil {
			continue
		}
		if err := dep.Ping(ctx); err != nil {
			status[name] = "down"
			healthy = false
			continue
		}
		status[name] = "ok"
	}
	if !healthy {
		status["status"] = "degraded"
	}
	return status, healthy
}
