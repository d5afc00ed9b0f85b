package commands

import (
	"errors"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/guard"
)

var (
	ErrAttachModeratorNoteCommandIsNotConstructed = errors.New(
		"AttachModeratorNoteCommand must be created via NewAttachModeratorNoteCommand constructor",
	)
	ErrNoteIsRequired = errors.New("note is required")
)

// AttachModeratorNoteCommand represents a moderator attaching a free-text
// note to an order.
type AttachModeratorNoteCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	note    string

	guard guard.ConstructorGuard
}

// NewAttachModeratorNoteCommand creates a note attachment command.
func NewAttachModeratorNoteCommand(orderID kernel.UUID, note string) (AttachModeratorNoteCommand, error) {
	command := AttachModeratorNoteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setNote(note),
	); err != nil {
		return AttachModeratorNoteCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AttachModeratorNoteCommand) Validate() error {
	return c.guard.Validate(ErrAttachModeratorNoteCommandIsNotConstructed)
}

// OrderID returns the order to annotate.
func (c AttachModeratorNoteCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Note returns the note text.
func (c AttachModeratorNoteCommand) Note() string {
	return c.note
}

func (c *AttachModeratorNoteCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *AttachModeratorNoteCommand) setNote(note string) error {
	if note == "" {
		return ErrNoteIsRequired
	}
	c.note = note
	return nil
}
