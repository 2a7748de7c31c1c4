package services

import (
	"context"
	"errors"

	pgrepo "github.com/yoockh/portfolio/internal/repositories/postgres"
	"github.com/yoockh/portfolio/internal/utils"
)

type (
	ListFilter  = pgrepo.ListFilter
	OrderUpdate = pgrepo.OrderUpdate
)

// requireProfile fails with INVALID_ARGUMENT when the owning profile is missing.
func requireProfile(ctx context.Context, profiles pgrepo.ProfileRepository, op string, profileID uint) error {
	if profileID == 0 {
		return utils.E(utils.CodeInvalidArgument, op, "profile_id is required", nil)
	}
	ok, err := profiles.Exists(ctx, profileID)
	if err != nil {
		return utils.E(utils.CodeInternal, op, "failed to check profile", err)
	}
	if !ok {
		return utils.E(utils.CodeInvalidArgument, op, "profile does not exist", nil)
	}
	return nil
}

func validateOrders(op string, items []OrderUpdate) error {
	if len(items) == 0 {
		return utils.E(utils.CodeInvalidArgument, op, "at least one order update is required", nil)
	}
	for _, it := range items {
		if it.ID == 0 || it.Order < 0 {
			return utils.E(utils.CodeInvalidArgument, op, "order updates need an id and an order >= 0", nil)
		}
	}
	return nil
}

func reorderErr(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, utils.ErrNotFound) {
		return utils.E(utils.CodeNotFound, op, "one or more rows not found", err)
	}
	return utils.E(utils.CodeInternal, op, "failed to update order", err)
}
