package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// SystemActorName is recorded when a mutation has no human actor.
const SystemActorName = "System"

// User is an authenticated account of any role.
type User struct {
	ID        uuid.UUID
	Email     string
	FirstName string
	LastName  string
	Role      Role
	CreatedAt time.Time
}

// FullName joins first and last name, skipping empty parts.
func (u User) FullName() string {
	return strings.TrimSpace(strings.Join([]string{u.FirstName, u.LastName}, " "))
}

// ActorName returns the display name used in logs and notifications.
// A nil actor is the system.
func ActorName(u *User) string {
	if u == nil {
		return SystemActorName
	}
	if name := u.FullName(); name != "" {
		return name
	}
	return u.Email
}

// Scope restricts which deficiencies a caller may read or mutate.
// The zero value sees nothing.
type Scope struct {
	BuilderID *uuid.UUID // builder tenant
	TradeID   *uuid.UUID // direct assignment
	All       bool       // admin and system jobs
}

// IsEmpty reports whether the scope grants no visibility at all.
func (s Scope) IsEmpty() bool {
	return !s.All && s.BuilderID == nil && s.TradeID == nil
}

// AllowsBuilder reports whether entities owned by builderID are inside the scope
// through tenant ownership.
func (s Scope) AllowsBuilder(builderID uuid.UUID) bool {
	if s.All {
		return true
	}
	return s.BuilderID != nil && *s.BuilderID == builderID
}

// AllowsDeficiency reports whether a deficiency of builderID assigned to
// tradeID is visible inside the scope.
func (s Scope) AllowsDeficiency(builderID uuid.UUID, tradeID *uuid.UUID) bool {
	if s.AllowsBuilder(builderID) {
		return true
	}
	return s.TradeID != nil && tradeID != nil && *s.TradeID == *tradeID
}

// BuilderIdentity is the resolved tenant context of an actor.
// Actor is nil for system-initiated work.
type BuilderIdentity struct {
	Actor     *User
	BuilderID uuid.UUID // uuid.Nil when the actor acts for no single builder
	Scope     Scope
}

// HasBuilder reports whether the identity resolved to a single builder tenant.
func (i BuilderIdentity) HasBuilder() bool {
	return i.BuilderID != uuid.Nil
}

// ActorID returns the actor id or nil for the system.
func (i BuilderIdentity) ActorID() *uuid.UUID {
	if i.Actor == nil {
		return nil
	}
	id := i.Actor.ID
	return &id
}

// ActorRole returns the actor role; the system has an empty role.
func (i BuilderIdentity) ActorRole() Role {
	if i.Actor == nil {
		return ""
	}
	return i.Actor.Role
}

// ActorName returns the display name of the actor.
func (i BuilderIdentity) ActorName() string {
	return ActorName(i.Actor)
}

// SystemIdentity is the unscoped identity of scheduled jobs.
func SystemIdentity() BuilderIdentity {
	return BuilderIdentity{Scope: Scope{All: true}}
}
