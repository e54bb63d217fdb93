package deficiency

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/homecheck-backend/internal/domain"
)

// checkAssignment verifies that tradeID is a trade account serving builderID
// and returns it for display purposes.
func (s *Service) checkAssignment(ctx context.Context, tradeID, builderID uuid.UUID) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, tradeID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, &domain.AssignmentError{TradeID: tradeID, Reason: "user does not exist"}
		}
		return nil, fmt.Errorf("load trade: %w", err)
	}
	if u.Role != domain.RoleTrade {
		return nil, &domain.AssignmentError{TradeID: tradeID, Reason: "user is not a trade"}
	}

	serves, err := s.users.TradeServesBuilder(ctx, tradeID, builderID)
	if err != nil {
		return nil, fmt.Errorf("check trade relation: %w", err)
	}
	if !serves {
		return nil, &domain.AssignmentError{TradeID: tradeID, Reason: "trade does not serve this builder"}
	}
	return u, nil
}

// tradeName resolves the display name of a currently assigned trade.
// A trade account that vanished is shown by id.
func (s *Service) tradeName(ctx context.Context, tradeID *uuid.UUID) (string, error) {
	if tradeID == nil {
		return "", nil
	}
	u, err := s.users.GetByID(ctx, *tradeID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("load trade: %w", err)
	}
	return domain.ActorName(u), nil
}
