package commands

import (
	"context"
)

// RegisterRuleCommandHandler persists newly configured routing rules.
type RegisterRuleCommandHandler struct {
	uowFactory RuleUoWFactory
}

// NewRegisterRuleCommandHandler creates a handler for rule configuration.
func NewRegisterRuleCommandHandler(uowFactory RuleUoWFactory) RegisterRuleCommandHandler {
	return RegisterRuleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle persists the rule aggregate.
func (h *RegisterRuleCommandHandler) Handle(ctx context.Context, cmd RegisterRuleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.RuleRepository().Add(ctx, cmd.Rule()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
