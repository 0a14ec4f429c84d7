package handlers

import (
	"github.com/BruksfildServices01/laundry-marketplace/internal/audit"
	"github.com/BruksfildServices01/laundry-marketplace/internal/auth"
)

func auditEvent(
	actor auth.Identity,
	action string,
	entity string,
	entityID uint,
	meta any,
) audit.Event {
	return audit.Event{
		ActorID:  audit.UintPtr(actor.UserID),
		Action:   action,
		Entity:   entity,
		EntityID: audit.UintPtr(entityID),
		Metadata: meta,
	}
}
