package audit

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/laundry-marketplace/internal/dbtest"
	"github.com/BruksfildServices01/laundry-marketplace/internal/models"
)

type memorySink struct {
	mu     sync.Mutex
	events []Event
	err    error
}

func (s *memorySink) Log(_ context.Context, ev Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
	return s.err
}

func TestDispatcherDrainsOnClose(t *testing.T) {
	sink := &memorySink{}
	d := NewDispatcher(sink, zap.NewNop())

	for i := 0; i < 10; i++ {
		d.Dispatch(Event{Action: "order_created", EntityID: UintPtr(uint(i))})
	}
	d.Close()

	assert.Len(t, sink.events, 10)

	// after Close events are ignored, and a second Close is a no-op
	d.Dispatch(Event{Action: "late"})
	d.Close()
	assert.Len(t, sink.events, 10)
}

func TestDispatcherSurvivesSinkErrors(t *testing.T) {
	sink := &memorySink{err: errors.New("db down")}
	d := NewDispatcher(sink, zap.NewNop())

	d.Dispatch(Event{Action: "a"})
	d.Dispatch(Event{Action: "b"})
	d.Close()

	assert.Len(t, sink.events, 2)
}

func TestLoggerPersistsEvent(t *testing.T) {
	gdb := dbtest.New(t)
	l := New(gdb)

	err := l.Log(context.Background(), Event{
		ActorID:  UintPtr(3),
		Action:   "order_status_changed",
		Entity:   "order",
		EntityID: UintPtr(9),
		Metadata: map[string]string{"from": "pending", "to": "picked up"},
	})
	require.NoError(t, err)

	var row models.AuditLog
	require.NoError(t, gdb.First(&row).Error)
	assert.Equal(t, "order_status_changed", row.Action)
	assert.Equal(t, uint(9), *row.EntityID)
	assert.JSONEq(t, `{"from":"pending","to":"picked up"}`, row.Metadata)
}
