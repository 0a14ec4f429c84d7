package order

import (
	"strings"

	"github.com/BruksfildServices01/laundry-marketplace/internal/httperr"
)

// ===============================
// Order Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusPickedUp  Status = "picked up"
	StatusWashing   Status = "washing"
	StatusReady     Status = "ready"
	StatusDelivered Status = "delivered"
)

// lifecycle is the ordered list of statuses an order moves through.
var lifecycle = []Status{
	StatusPending,
	StatusPickedUp,
	StatusWashing,
	StatusReady,
	StatusDelivered,
}

// transitions is the authoritative table: each status may only advance to
// the next one.
var transitions = func() map[Status]Status {
	m := make(map[Status]Status, len(lifecycle)-1)
	for i := 0; i < len(lifecycle)-1; i++ {
		m[lifecycle[i]] = lifecycle[i+1]
	}
	return m
}()

func InitialStatus() Status {
	return StatusPending
}

func AllStatuses() []Status {
	out := make([]Status, len(lifecycle))
	copy(out, lifecycle)
	return out
}

// ParseStatus accepts the wire value; "picked_up" is tolerated for clients
// that cannot send spaces in form values.
func ParseStatus(raw string) (Status, error) {
	s := Status(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(raw)), "_", " "))
	for _, known := range lifecycle {
		if s == known {
			return s, nil
		}
	}
	return "", httperr.ErrBusiness("invalid_status")
}

// Next returns the status that may follow current, if any.
func Next(current Status) (Status, bool) {
	next, ok := transitions[current]
	return next, ok
}

func CanTransition(from, to Status) error {
	if next, ok := transitions[from]; ok && next == to {
		return nil
	}
	return httperr.ErrInvalidTransition("invalid_transition")
}

func IsTerminal(s Status) bool {
	_, ok := transitions[s]
	return !ok
}
