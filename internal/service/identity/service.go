// Package identity resolves the effective builder tenant of an actor.
// Every builder-scoped query derives its scope from here.
package identity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/homecheck-backend/internal/domain"
	"github.com/heartmarshall/homecheck-backend/pkg/ctxutil"
)

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	EmployerOf(ctx context.Context, employeeID uuid.UUID) (*domain.User, error)
}

// Service resolves actors to builder identities.
type Service struct {
	users userRepo
	log   *slog.Logger
}

// NewService creates a new identity resolver.
func NewService(log *slog.Logger, users userRepo) *Service {
	return &Service{
		users: users,
		log:   log.With("service", "identity"),
	}
}

// Resolve returns the identity of the caller stored in ctx. Contexts marked
// with ctxutil.WithSystem resolve to the unscoped system identity.
func (s *Service) Resolve(ctx context.Context) (domain.BuilderIdentity, error) {
	if ctxutil.IsSystem(ctx) {
		return domain.SystemIdentity(), nil
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.BuilderIdentity{}, domain.ErrUnauthorized
	}

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.BuilderIdentity{}, domain.ErrUnauthorized
		}
		return domain.BuilderIdentity{}, fmt.Errorf("get actor: %w", err)
	}

	return s.ResolveUser(ctx, u)
}

// ResolveUser maps an already loaded actor to its identity.
func (s *Service) ResolveUser(ctx context.Context, u *domain.User) (domain.BuilderIdentity, error) {
	id := u.ID

	switch u.Role {
	case domain.RoleBuilder:
		return domain.BuilderIdentity{Actor: u, BuilderID: id, Scope: domain.Scope{BuilderID: &id}}, nil

	case domain.RoleEmployee:
		employer, err := s.users.EmployerOf(ctx, id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				s.log.ErrorContext(ctx, "employee without employer",
					slog.String("user_id", id.String()),
				)
				return domain.BuilderIdentity{}, &domain.IdentityError{UserID: id, Reason: "no employing builder"}
			}
			return domain.BuilderIdentity{}, fmt.Errorf("resolve employer: %w", err)
		}
		builderID := employer.ID
		return domain.BuilderIdentity{Actor: u, BuilderID: builderID, Scope: domain.Scope{BuilderID: &builderID}}, nil

	case domain.RoleTrade:
		return domain.BuilderIdentity{Actor: u, Scope: domain.Scope{TradeID: &id}}, nil

	case domain.RoleAdmin:
		return domain.BuilderIdentity{Actor: u, Scope: domain.Scope{All: true}}, nil

	case domain.RoleClient:
		return domain.BuilderIdentity{Actor: u}, nil
	}

	s.log.ErrorContext(ctx, "unknown role", slog.String("user_id", id.String()), slog.String("role", string(u.Role)))
	return domain.BuilderIdentity{}, &domain.IdentityError{UserID: id, Reason: "unknown role " + string(u.Role)}
}
