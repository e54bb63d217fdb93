package notification

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/homecheck-backend/internal/domain"
)

// recipientPolicy selects who is told about a change made by one kind of actor.
type recipientPolicy interface {
	recipients(ctx context.Context, users directory, e domain.ChangeEvent) ([]uuid.UUID, error)
}

// policyFor maps the actor role of an event to its policy.
// Events without a human actor, and admin actions, use the system policy.
func policyFor(role domain.Role) recipientPolicy {
	switch role {
	case domain.RoleBuilder:
		return builderPolicy{}
	case domain.RoleTrade:
		return tradePolicy{}
	case domain.RoleEmployee:
		return employeePolicy{}
	default:
		return systemPolicy{}
	}
}

// builderPolicy: the builder's employees and the assigned trade.
type builderPolicy struct{}

func (builderPolicy) recipients(ctx context.Context, users directory, e domain.ChangeEvent) ([]uuid.UUID, error) {
	employees, err := users.EmployeesOf(ctx, e.OwnerBuilderID)
	if err != nil {
		return nil, fmt.Errorf("employees of builder: %w", err)
	}
	return append(userIDs(employees), optional(e.TradeID)...), nil
}

// tradePolicy: the employees of every builder the trade serves and the owning builder.
type tradePolicy struct{}

func (tradePolicy) recipients(ctx context.Context, users directory, e domain.ChangeEvent) ([]uuid.UUID, error) {
	if e.ActorID == nil {
		return []uuid.UUID{e.OwnerBuilderID}, nil
	}
	builders, err := users.BuildersOfTrade(ctx, *e.ActorID)
	if err != nil {
		return nil, fmt.Errorf("builders of trade: %w", err)
	}
	employees, err := users.EmployeesOfBuilders(ctx, userIDs(builders))
	if err != nil {
		return nil, fmt.Errorf("employees of builders: %w", err)
	}
	return append(userIDs(employees), e.OwnerBuilderID), nil
}

// employeePolicy: sibling employees, the owning builder and the assigned trade.
type employeePolicy struct{}

func (employeePolicy) recipients(ctx context.Context, users directory, e domain.ChangeEvent) ([]uuid.UUID, error) {
	employees, err := users.EmployeesOf(ctx, e.OwnerBuilderID)
	if err != nil {
		return nil, fmt.Errorf("employees of builder: %w", err)
	}
	out := append(userIDs(employees), e.OwnerBuilderID)
	return append(out, optional(e.TradeID)...), nil
}

// systemPolicy: everyone on the tenant side plus the assigned trade.
type systemPolicy struct{}

func (systemPolicy) recipients(ctx context.Context, users directory, e domain.ChangeEvent) ([]uuid.UUID, error) {
	return employeePolicy{}.recipients(ctx, users, e)
}

// dedupe keeps the first occurrence of every id and drops the actor and uuid.Nil.
func dedupe(ids []uuid.UUID, actor *uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if id == uuid.Nil || (actor != nil && id == *actor) {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func userIDs(users []domain.User) []uuid.UUID {
	ids := make([]uuid.UUID, len(users))
	for i, u := range users {
		ids[i] = u.ID
	}
	return ids
}

func optional(id *uuid.UUID) []uuid.UUID {
	if id == nil {
		return nil
	}
	return []uuid.UUID{*id}
}
