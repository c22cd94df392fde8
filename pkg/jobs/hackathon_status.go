package jobs

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/hackhub/hackhub/pkg/backend"
	"github.com/hackhub/hackhub/pkg/config"
)

// HackathonStatus is the name of the job that persists derived hackathon
// statuses.
const HackathonStatus = "hackathon-status"

func init() {
	Register(HackathonStatus, hackathonStatus{})
}

type hackathonStatus struct{}

var _ Runner = hackathonStatus{}

// Spec implements Runner.
func (hackathonStatus) Spec(ctx context.Context) string {
	cfg := config.FromContext(ctx)
	if cfg == nil {
		return ""
	}
	return cfg.Jobs.HackathonStatus
}

// Func implements Runner.
func (hackathonStatus) Func(ctx context.Context) func() {
	be := backend.FromContext(ctx)
	logger := log.FromContext(ctx).WithPrefix("jobs.hackathon-status")
	return func() {
		if be == nil {
			logger.Error("backend is not available")
			return
		}

		n, err := be.RefreshHackathonStatuses(ctx)
		if err != nil {
			logger.Error("error refreshing hackathon statuses", "err", err)
			return
		}

		if n > 0 {
			logger.Info("refreshed hackathon statuses", "changed", n)
		}
	}
}
