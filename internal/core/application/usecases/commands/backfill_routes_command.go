package commands

import (
	"errors"

	"deliverytrack/internal/pkg/guard"
)

var ErrBackfillRoutesCommandIsNotConstructed = errors.New(
	"BackfillRoutesCommand must be created via NewBackfillRoutesCommand constructor",
)

// BackfillRoutesCommand triggers one enrichment pass over deliveries that
// were created without route information, typically because the routing
// provider was unavailable at creation time.
type BackfillRoutesCommand struct {
	guard guard.ConstructorGuard
}

// NewBackfillRoutesCommand creates a parameterless backfill command.
func NewBackfillRoutesCommand() BackfillRoutesCommand {
	return BackfillRoutesCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c BackfillRoutesCommand) Validate() error {
	return c.guard.Validate(ErrBackfillRoutesCommandIsNotConstructed)
}
