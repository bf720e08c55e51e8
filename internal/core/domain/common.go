package domain

import "time"

// SystemActor is recorded as the author of writes that carry no caller identity.
const SystemActor = "sistema"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// ActorOrSystem returns actorID, or SystemActor when it is empty.
func ActorOrSystem(actorID string) string {
	if actorID == "" {
		return SystemActor
	}
	return actorID
}

// NewAuditFields stamps creation and update fields with the same instant and actor.
func NewAuditFields(now time.Time, actorID string) AuditFields {
	actor := ActorOrSystem(actorID)
	return AuditFields{
		CreatedAt:     now,
		CreatedBy:     actor,
		LastUpdatedAt: now,
		LastUpdatedBy: actor,
	}
}
