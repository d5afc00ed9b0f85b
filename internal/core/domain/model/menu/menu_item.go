// Package menu contains the MenuItem entity, its customization options, and
// the per-item serving window. Menu items are catalog entities: the cart
// snapshots them at add time, so an item is immutable once it has been ordered.
package menu

import (
	"errors"
	"fmt"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/errs"
)

// SelectionMode determines how many choices a customization option accepts.
type SelectionMode int

const (
	// SelectionSingle allows exactly one choice, e.g. a pizza size.
	SelectionSingle SelectionMode = iota + 1
	// SelectionMultiple allows any number of choices, e.g. extra toppings.
	SelectionMultiple
)

var (
	// ErrItemNameIsRequired is returned when attempting to create an item without a name.
	ErrItemNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrMenuItemIsNotConstructed is returned when using an improperly initialized MenuItem.
	ErrMenuItemIsNotConstructed = errors.New("MenuItem must be created via NewMenuItem constructor")
	// ErrRequiredOptionMissing indicates that a selection omitted a required customization option.
	ErrRequiredOptionMissing = errors.New("required customization option was not selected")
	// ErrUnknownOption indicates a selection referencing an option the item does not declare.
	ErrUnknownOption = errors.New("unknown customization option")
	// ErrUnknownChoice indicates a selection referencing a choice the option does not declare.
	ErrUnknownChoice = errors.New("unknown customization choice")
	// ErrSingleOptionMultipleChoices indicates multiple choices for a SINGLE-mode option.
	ErrSingleOptionMultipleChoices = errors.New("single-selection option accepts exactly one choice")
)

// Choice is one selectable value of a customization option, carrying the
// price delta it adds to the item's base price. The delta may be negative.
type Choice struct {
	Name       string
	PriceDelta kernel.Money
}

// CustomizationOption declares one configurable aspect of a menu item,
// such as size or toppings.
type CustomizationOption struct {
	ID       kernel.UUID
	Name     string
	Mode     SelectionMode
	Required bool
	Choices  []Choice
}

// Selection is a customer's pick for one customization option: the option's
// ID plus the names of the chosen choices.
type Selection struct {
	OptionID kernel.UUID
	Choices  []string
}

// MenuItem represents one orderable dish of a restaurant.
//
// Invariants:
//   - Must have a valid identifier, an owning restaurant, and a non-empty name
//   - Base price must not be negative
//   - Can only be created through NewMenuItem or RestoreMenuItem
//
// The item itself has no mutable state; price and customization resolution
// are pure functions of the item and a set of selections.
type MenuItem struct {
	// id is the unique identifier for the item
	id kernel.UUID

	// restaurantID identifies the owning restaurant
	restaurantID kernel.UUID

	// name is the customer-facing dish name
	name string

	// basePrice is the price before any customization deltas
	basePrice kernel.Money

	// options are the item's customization options, possibly empty
	options []CustomizationOption

	// window restricts when during the day the item may be ordered
	window ServingWindow

	// category is an optional display grouping, e.g. "Desserts"
	category string

	// guard ensures the item was created via a constructor
	guard kernel.ConstructorGuard
}

// NewMenuItem creates a new MenuItem with validation.
//
// Parameters:
//   - id: Unique identifier (must be a valid UUID)
//   - restaurantID: Owning restaurant (must be a valid UUID)
//   - name: Dish name (must be non-empty)
//   - basePrice: Price before customizations (must not be negative)
//   - options: Customization options, may be nil
//   - window: Serving window; use AllDay() for unrestricted items
//   - category: Optional display category, may be empty
//
// Returns the item, or a validation error if any parameter is invalid.
func NewMenuItem(
	id kernel.UUID,
	restaurantID kernel.UUID,
	name string,
	basePrice kernel.Money,
	options []CustomizationOption,
	window ServingWindow,
	category string,
) (*MenuItem, error) {
	item := &MenuItem{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setRestaurantID(restaurantID),
		item.setName(name),
		item.setBasePrice(basePrice),
	); err != nil {
		return nil, err
	}

	item.options = options
	item.window = window
	item.category = category
	return item, nil
}

// RestoreMenuItem reconstructs a MenuItem from persistent storage.
func RestoreMenuItem(
	id kernel.UUID,
	restaurantID kernel.UUID,
	name string,
	basePrice kernel.Money,
	options []CustomizationOption,
	window ServingWindow,
	category string,
) (*MenuItem, error) {
	return NewMenuItem(id, restaurantID, name, basePrice, options, window, category)
}

// Validate ensures the MenuItem was properly constructed.
func (m *MenuItem) Validate() error {
	if m == nil {
		return ErrMenuItemIsNotConstructed
	}
	return m.guard.Validate(ErrMenuItemIsNotConstructed)
}

// IsEqual compares two menu items by their unique identifiers.
func (m *MenuItem) IsEqual(other *MenuItem) bool {
	return other != nil && m.id.IsEqual(other.id)
}

// ID returns the item's unique identifier.
func (m *MenuItem) ID() kernel.UUID {
	return m.id
}

// RestaurantID returns the identifier of the owning restaurant.
func (m *MenuItem) RestaurantID() kernel.UUID {
	return m.restaurantID
}

// Name returns the customer-facing dish name.
func (m *MenuItem) Name() string {
	return m.name
}

// BasePrice returns the price before customizations.
func (m *MenuItem) BasePrice() kernel.Money {
	return m.basePrice
}

// Options returns the item's customization options.
func (m *MenuItem) Options() []CustomizationOption {
	return m.options
}

// Window returns the item's serving window.
func (m *MenuItem) Window() ServingWindow {
	return m.window
}

// Category returns the item's display category, possibly empty.
func (m *MenuItem) Category() string {
	return m.category
}

// UnitPrice resolves a set of selections against the item's options and
// returns the per-unit price: base price plus the deltas of every chosen
// choice.
//
// A selection set is invalid when it references an option or choice the item
// does not declare, supplies more than one choice for a SINGLE-mode option,
// or omits a required option. These indicate a caller bug upstream (the UI
// offered something the catalog does not) and are returned as errors rather
// than silently corrected.
func (m *MenuItem) UnitPrice(selections []Selection) (kernel.Money, error) {
	price := m.basePrice
	selected := make(map[kernel.UUID]bool, len(selections))

	for _, sel := range selections {
		option, ok := m.findOption(sel.OptionID)
		if !ok {
			return kernel.Money{}, fmt.Errorf("%w: %s", ErrUnknownOption, sel.OptionID)
		}
		if option.Mode == SelectionSingle && len(sel.Choices) > 1 {
			return kernel.Money{}, fmt.Errorf("%w: %s", ErrSingleOptionMultipleChoices, option.Name)
		}
		for _, chosen := range sel.Choices {
			choice, ok := findChoice(option, chosen)
			if !ok {
				return kernel.Money{}, fmt.Errorf("%w: %s in %s", ErrUnknownChoice, chosen, option.Name)
			}
			price = price.Add(choice.PriceDelta)
		}
		if len(sel.Choices) > 0 {
			selected[option.ID] = true
		}
	}

	for _, option := range m.options {
		if option.Required && !selected[option.ID] {
			return kernel.Money{}, fmt.Errorf("%w: %s", ErrRequiredOptionMissing, option.Name)
		}
	}

	return price, nil
}

func (m *MenuItem) findOption(id kernel.UUID) (CustomizationOption, bool) {
	for _, option := range m.options {
		if option.ID.IsEqual(id) {
			return option, true
		}
	}
	return CustomizationOption{}, false
}

func findChoice(option CustomizationOption, name string) (Choice, bool) {
	for _, choice := range option.Choices {
		if choice.Name == name {
			return choice, true
		}
	}
	return Choice{}, false
}

func (m *MenuItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *MenuItem) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.restaurantID = id
	return nil
}

func (m *MenuItem) setName(name string) error {
	if name == "" {
		return ErrItemNameIsRequired
	}
	m.name = name
	return nil
}

func (m *MenuItem) setBasePrice(price kernel.Money) error {
	if err := price.ValidateNonNegative("base price"); err != nil {
		return err
	}
	m.basePrice = price
	return nil
}
