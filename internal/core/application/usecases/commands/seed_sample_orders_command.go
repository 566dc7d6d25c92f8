package commands

import (
	"errors"

	"icecream/internal/pkg/guard"
)

var ErrSeedSampleOrdersCommandIsNotConstructed = errors.New(
	"SeedSampleOrdersCommand must be created via NewSeedSampleOrdersCommand constructor",
)

// SeedSampleOrdersCommand fills an empty store with demonstration orders.
type SeedSampleOrdersCommand struct {
	guard guard.ConstructorGuard
}

func NewSeedSampleOrdersCommand() SeedSampleOrdersCommand {
	return SeedSampleOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c SeedSampleOrdersCommand) Validate() error {
	return c.guard.Validate(ErrSeedSampleOrdersCommandIsNotConstructed)
}
