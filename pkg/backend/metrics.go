package backend

import (
	"errors"

	"github.com/hackhub/hackhub/pkg/proto"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	teamsCreatedCounter = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "hackhub",
		Subsystem: "teams",
		Name:      "created_total",
		Help:      "The total number of teams created",
	})

	applicationsCounter = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hackhub",
		Name:      "applications_total",
		Help:      "The total number of team applications by resulting status",
	}, []string{"status"})

	registrationsCounter = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hackhub",
		Name:      "registrations_total",
		Help:      "The total number of hackathon registration attempts by result",
	}, []string{"result"})
)

// resultLabel maps an operation error to a metric label.
func resultLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, proto.ErrNotFound):
		return "not_found"
	case errors.Is(err, proto.ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, proto.ErrConflict):
		return "conflict"
	case errors.Is(err, proto.ErrDeadlinePassed):
		return "deadline_passed"
	case errors.Is(err, proto.ErrCapacity):
		return "capacity"
	default:
		return "error"
	}
}
