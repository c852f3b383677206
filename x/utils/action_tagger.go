package utils

import (
	"context"

	"github.com/iov-one/xswap"
)

// ActionKey is the log key ActionTagger records the opcode under.
const ActionKey = "action"

// ActionTagger inspects the instruction being executed and tags the
// context with its opcode, both as a value and as a logger field, so that
// every log line below it names the action.
//
// Place it above Logging and Metrics in the decorator chain.
type ActionTagger struct{}

var _ xswap.Decorator = ActionTagger{}

// NewActionTagger creates a ActionTagger decorator
func NewActionTagger() ActionTagger {
	return ActionTagger{}
}

func (ActionTagger) Check(ctx context.Context, db xswap.KVStore, tx xswap.Tx, next xswap.Checker) (*xswap.CheckResult, error) {
	ctx, err := tag(ctx, tx)
	if err != nil {
		return nil, err
	}
	return next.Check(ctx, db, tx)
}

func (ActionTagger) Deliver(ctx context.Context, db xswap.KVStore, tx xswap.Tx, next xswap.Deliverer) (*xswap.DeliverResult, error) {
	ctx, err := tag(ctx, tx)
	if err != nil {
		return nil, err
	}
	return next.Deliver(ctx, db, tx)
}

func tag(ctx context.Context, tx xswap.Tx) (context.Context, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, err
	}
	op := msg.Opcode()
	ctx = xswap.WithOpcode(ctx, op)
	return xswap.WithLogInfo(ctx, ActionKey, op.String()), nil
}
