package scheduler

import "errors"

// ErrUnknownStrategy indicates Schedule was called with a strategy tag
// other than StrategyFCFS, StrategyPriority, or StrategyTimeWindow.
var ErrUnknownStrategy = errors.New("scheduler: unknown strategy")
