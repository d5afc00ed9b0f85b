package commands

import (
	"context"

	"foodcourt/internal/core/domain/model/order"
)

// AttachModeratorNoteCommandHandler handles attaching moderator notes.
// Notes are orthogonal to the lifecycle and work in any status.
type AttachModeratorNoteCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAttachModeratorNoteCommandHandler creates a handler for note attachments.
func NewAttachModeratorNoteCommandHandler(uowFactory OrderUoWFactory) AttachModeratorNoteCommandHandler {
	return AttachModeratorNoteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the note attachment command.
func (h AttachModeratorNoteCommandHandler) Handle(ctx context.Context, command AttachModeratorNoteCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.SetModeratorNote(order.ActorModerator, command.Note()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
