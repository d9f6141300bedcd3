package commands

import (
	"context"
	"log/slog"

	"deliverytrack/internal/core/domain/model/delivery"
)

// BackfillRoutesCommandHandler retries route enrichment for non-terminal
// deliveries that have none. Each delivery is updated in its own transaction,
// so one failure (a provider hiccup or a lost optimistic-lock race) never
// blocks the rest of the batch.
type BackfillRoutesCommandHandler struct {
	uowFactory DeliveryUoWFactory
	estimator  RouteEstimator
	logger     *slog.Logger
}

// NewBackfillRoutesCommandHandler creates a handler for the backfill pass.
func NewBackfillRoutesCommandHandler(
	uowFactory DeliveryUoWFactory,
	estimator RouteEstimator,
	logger *slog.Logger,
) BackfillRoutesCommandHandler {
	return BackfillRoutesCommandHandler{
		uowFactory: uowFactory,
		estimator:  estimator,
		logger:     logger.With("component", "backfill_routes_handler"),
	}
}

// Handle runs one backfill pass and returns how many deliveries were enriched.
func (h *BackfillRoutesCommandHandler) Handle(ctx context.Context, cmd BackfillRoutesCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	deliveries, err := h.uowFactory.Create().DeliveryRepository().GetAllMissingRoute(ctx)
	if err != nil {
		return 0, err
	}

	enriched := 0
	for _, aggregate := range deliveries {
		route, ok := h.estimator.Estimate(
			ctx, aggregate.RestaurantAddress(), aggregate.CustomerAddress())
		if !ok {
			continue
		}

		if err = aggregate.AttachRoute(*route); err != nil {
			h.logger.WarnContext(ctx, "skipping route backfill",
				"delivery_id", aggregate.ID().String(), "error", err)
			continue
		}

		if err = h.updateOne(ctx, aggregate); err != nil {
			h.logger.WarnContext(ctx, "route backfill update failed",
				"delivery_id", aggregate.ID().String(), "error", err)
			continue
		}

		enriched++
	}

	return enriched, nil
}

func (h *BackfillRoutesCommandHandler) updateOne(ctx context.Context, aggregate *delivery.Delivery) error {
	uow := h.uowFactory.Create()

	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.DeliveryRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
