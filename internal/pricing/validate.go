package pricing

import (
	"fxbarrier-pricer/internal/errors"
	"fxbarrier-pricer/internal/models"
)

// Validate checks the trade invariants that must hold before replication
// runs. Any violation aborts the pricing call; the engine never degrades to
// an approximate price.
func Validate(trade models.BarrierTrade) error {
	if trade.Option.Style != models.StyleEuropean {
		return errors.NewValidationError("option.style", trade.Option.Style,
			"only European exercise supported", errors.ErrUnsupportedStyle)
	}
	if len(trade.Option.ExerciseDates) != 1 {
		return errors.NewValidationError("option.exerciseDates", len(trade.Option.ExerciseDates),
			"exactly one exercise date required", errors.ErrExerciseDateCount)
	}
	if len(trade.Barrier.Levels) != 1 {
		return errors.NewValidationError("barrier.levels", len(trade.Barrier.Levels),
			"exactly one barrier level required", errors.ErrBarrierLevelCount)
	}
	if trade.Barrier.Style != "" && trade.Barrier.Style != models.StyleEuropean {
		return errors.NewValidationError("barrier.style", trade.Barrier.Style,
			"only European barrier style supported", errors.ErrBarrierStyle)
	}
	if trade.Barrier.Rebate < 0 {
		return errors.NewValidationError("barrier.rebate", trade.Barrier.Rebate,
			"rebate must be non-negative", errors.ErrNegativeRebate)
	}
	if len(trade.Actions) != 0 {
		return errors.NewValidationError("actions", trade.Actions,
			"trade actions not supported for barrier options", errors.ErrTradeActions)
	}
	if trade.Amounts.BoughtAmount <= 0 || trade.Amounts.SoldAmount <= 0 {
		return errors.NewValidationError("amounts", trade.Amounts,
			"bought and sold amounts must be positive", errors.ErrInvalidAmounts)
	}
	return nil
}
