// Package cartrepo provides data transfer objects and mapping functions for cart persistence.
// Cart lines carry a full snapshot of the menu item they were added with, so a
// restored cart reprices against the prices the customer saw, not against the
// live catalog.
package cartrepo

import (
	"time"

	"foodcourt/internal/core/domain/model/cart"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/menu"
	"foodcourt/internal/core/domain/model/offer"
	"foodcourt/internal/pkg/errs"

	"github.com/google/uuid"
)

// CartDTO represents the database structure for persisting cart aggregates.
// The coupon_code and discount_cents columns duplicate the offer snapshot for
// cheap read-model queries; the jsonb snapshot is the source for restoring
// the full offer.
type CartDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID    uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	CouponCode    *string
	DiscountCents int64
	Offer         *OfferSnapshotDTO `gorm:"type:jsonb;serializer:json"`
	Items         []CartItemDTO     `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for cart entities.
func (CartDTO) TableName() string {
	return "carts"
}

// CartItemDTO represents one cart line together with the menu item snapshot
// it was created from.
type CartItemDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	CartID         uuid.UUID `gorm:"type:uuid;index"`
	ItemID         uuid.UUID `gorm:"type:uuid"`
	RestaurantID   uuid.UUID `gorm:"type:uuid"`
	ItemName       string
	Category       string
	BasePriceCents int64
	UnitPriceCents int64
	Quantity       int
	Options        []OptionDTO    `gorm:"type:jsonb;serializer:json"`
	Window         *WindowDTO     `gorm:"type:jsonb;serializer:json"`
	Selections     []SelectionDTO `gorm:"type:jsonb;serializer:json"`
}

// TableName specifies the database table name for cart line entities.
func (CartItemDTO) TableName() string {
	return "cart_items"
}

// OfferSnapshotDTO is the jsonb snapshot of an applied offer, sufficient to
// rebuild the offer without touching the catalog.
type OfferSnapshotDTO struct {
	ID            uuid.UUID   `json:"id"`
	CouponCode    string      `json:"coupon_code"`
	DiscountType  int         `json:"discount_type"`
	DiscountValue float64     `json:"discount_value"`
	ScopeKind     int         `json:"scope_kind"`
	RestaurantID  *uuid.UUID  `json:"restaurant_id,omitempty"`
	ItemIDs       []uuid.UUID `json:"item_ids,omitempty"`
	MinOrderCents *int64      `json:"min_order_cents,omitempty"`
	ExpiresAt     *time.Time  `json:"expires_at,omitempty"`
}

// OptionDTO is the jsonb form of a menu item customization option.
type OptionDTO struct {
	ID       uuid.UUID   `json:"id"`
	Name     string      `json:"name"`
	Mode     int         `json:"mode"`
	Required bool        `json:"required"`
	Choices  []ChoiceDTO `json:"choices"`
}

// ChoiceDTO is the jsonb form of one selectable choice of an option.
type ChoiceDTO struct {
	Name            string `json:"name"`
	PriceDeltaCents int64  `json:"price_delta_cents"`
}

// SelectionDTO is the jsonb form of a customer's pick for one option.
type SelectionDTO struct {
	OptionID uuid.UUID `json:"option_id"`
	Choices  []string  `json:"choices"`
}

// WindowDTO is the jsonb form of a custom serving window in minutes of the
// day. A nil WindowDTO means the item is served all day.
type WindowDTO struct {
	StartMinute int `json:"start_minute"`
	EndMinute   int `json:"end_minute"`
}

// fromDomain converts a cart domain aggregate to its database representation.
func fromDomain(aggregate *cart.Cart) CartDTO {
	var couponCode *string
	var discountCents int64
	var snapshot *OfferSnapshotDTO
	if applied := aggregate.AppliedOffer(); applied != nil {
		code := applied.Offer().CouponCode()
		couponCode = &code
		discountCents = applied.DiscountAmount().Cents()
		snapshot = offerToSnapshot(applied.Offer())
	}

	items := make([]CartItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, itemFromDomain(aggregate.ID(), item))
	}

	return CartDTO{
		ID:            aggregate.ID().Bytes(),
		CustomerID:    aggregate.CustomerID().Bytes(),
		CouponCode:    couponCode,
		DiscountCents: discountCents,
		Offer:         snapshot,
		Items:         items,
	}
}

func itemFromDomain(cartID kernel.UUID, item *cart.CartItem) CartItemDTO {
	snapshot := item.Item()

	options := make([]OptionDTO, 0, len(snapshot.Options()))
	for _, option := range snapshot.Options() {
		choices := make([]ChoiceDTO, 0, len(option.Choices))
		for _, choice := range option.Choices {
			choices = append(choices, ChoiceDTO{
				Name:            choice.Name,
				PriceDeltaCents: choice.PriceDelta.Cents(),
			})
		}
		options = append(options, OptionDTO{
			ID:       option.ID.Bytes(),
			Name:     option.Name,
			Mode:     int(option.Mode),
			Required: option.Required,
			Choices:  choices,
		})
	}

	var window *WindowDTO
	if !snapshot.Window().IsAllDay() {
		window = &WindowDTO{
			StartMinute: snapshot.Window().Start().MinuteOfDay(),
			EndMinute:   snapshot.Window().End().MinuteOfDay(),
		}
	}

	selections := make([]SelectionDTO, 0, len(item.Selections()))
	for _, selection := range item.Selections() {
		selections = append(selections, SelectionDTO{
			OptionID: selection.OptionID.Bytes(),
			Choices:  selection.Choices,
		})
	}

	return CartItemDTO{
		ID:             item.ID().Bytes(),
		CartID:         cartID.Bytes(),
		ItemID:         snapshot.ID().Bytes(),
		RestaurantID:   snapshot.RestaurantID().Bytes(),
		ItemName:       snapshot.Name(),
		Category:       snapshot.Category(),
		BasePriceCents: snapshot.BasePrice().Cents(),
		UnitPriceCents: item.UnitPrice().Cents(),
		Quantity:       item.Quantity(),
		Options:        options,
		Window:         window,
		Selections:     selections,
	}
}

func offerToSnapshot(o *offer.Offer) *OfferSnapshotDTO {
	snapshot := &OfferSnapshotDTO{
		ID:            o.ID().Bytes(),
		CouponCode:    o.CouponCode(),
		DiscountType:  int(o.DiscountType()),
		DiscountValue: o.DiscountValue(),
		ScopeKind:     int(o.Scope().Kind()),
		ExpiresAt:     o.ExpiresAt(),
	}

	switch o.Scope().Kind() {
	case offer.ScopeKindRestaurant:
		raw := o.Scope().RestaurantID().Bytes()
		snapshot.RestaurantID = &raw
	case offer.ScopeKindItems:
		for _, itemID := range o.Scope().ItemIDs() {
			snapshot.ItemIDs = append(snapshot.ItemIDs, itemID.Bytes())
		}
	case offer.ScopeKindAll:
	}

	if minOrder := o.MinOrderValue(); minOrder != nil {
		cents := minOrder.Cents()
		snapshot.MinOrderCents = &cents
	}

	return snapshot
}

// toDomain converts a database DTO to a cart domain aggregate. Every line
// rebuilds its menu item snapshot first, so the restored cart reprices to the
// exact totals that were persisted.
func toDomain(dto CartDTO) (*cart.Cart, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	items := make([]*cart.CartItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	var applied *offer.Offer
	if dto.Offer != nil {
		applied, err = snapshotToOffer(dto.Offer)
		if err != nil {
			return nil, err
		}
	}

	return cart.RestoreCart(id, customerID, items, applied)
}

func itemToDomain(dto CartItemDTO) (*cart.CartItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	itemID, err := kernel.UUIDFromBytes(dto.ItemID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	options := make([]menu.CustomizationOption, 0, len(dto.Options))
	for _, optionDTO := range dto.Options {
		optionID, optionErr := kernel.UUIDFromBytes(optionDTO.ID[:])
		if optionErr != nil {
			return nil, optionErr
		}

		choices := make([]menu.Choice, 0, len(optionDTO.Choices))
		for _, choiceDTO := range optionDTO.Choices {
			choices = append(choices, menu.Choice{
				Name:       choiceDTO.Name,
				PriceDelta: kernel.NewMoney(choiceDTO.PriceDeltaCents),
			})
		}

		options = append(options, menu.CustomizationOption{
			ID:       optionID,
			Name:     optionDTO.Name,
			Mode:     menu.SelectionMode(optionDTO.Mode),
			Required: optionDTO.Required,
			Choices:  choices,
		})
	}

	window := menu.AllDay()
	if dto.Window != nil {
		start, windowErr := timeOfDayFromMinute(dto.Window.StartMinute)
		if windowErr != nil {
			return nil, windowErr
		}
		end, windowErr := timeOfDayFromMinute(dto.Window.EndMinute)
		if windowErr != nil {
			return nil, windowErr
		}
		window = menu.CustomWindow(start, end)
	}

	snapshot, err := menu.RestoreMenuItem(
		itemID,
		restaurantID,
		dto.ItemName,
		kernel.NewMoney(dto.BasePriceCents),
		options,
		window,
		dto.Category,
	)
	if err != nil {
		return nil, err
	}

	selections := make([]menu.Selection, 0, len(dto.Selections))
	for _, selectionDTO := range dto.Selections {
		optionID, selectionErr := kernel.UUIDFromBytes(selectionDTO.OptionID[:])
		if selectionErr != nil {
			return nil, selectionErr
		}
		selections = append(selections, menu.Selection{
			OptionID: optionID,
			Choices:  selectionDTO.Choices,
		})
	}

	return cart.NewCartItem(id, snapshot, dto.Quantity, selections)
}

func snapshotToOffer(snapshot *OfferSnapshotDTO) (*offer.Offer, error) {
	id, err := kernel.UUIDFromBytes(snapshot.ID[:])
	if err != nil {
		return nil, err
	}

	var scope offer.Scope
	switch offer.ScopeKind(snapshot.ScopeKind) {
	case offer.ScopeKindRestaurant:
		if snapshot.RestaurantID == nil {
			return nil, errs.NewValueIsRequiredError("restaurant id")
		}
		restaurantID, scopeErr := kernel.UUIDFromBytes((*snapshot.RestaurantID)[:])
		if scopeErr != nil {
			return nil, scopeErr
		}
		scope = offer.ScopeRestaurant(restaurantID)
	case offer.ScopeKindItems:
		itemIDs := make([]kernel.UUID, 0, len(snapshot.ItemIDs))
		for _, raw := range snapshot.ItemIDs {
			itemID, scopeErr := kernel.UUIDFromBytes(raw[:])
			if scopeErr != nil {
				return nil, scopeErr
			}
			itemIDs = append(itemIDs, itemID)
		}
		scope = offer.ScopeItems(itemIDs)
	default:
		scope = offer.ScopeAll()
	}

	var minOrderValue *kernel.Money
	if snapshot.MinOrderCents != nil {
		amount := kernel.NewMoney(*snapshot.MinOrderCents)
		minOrderValue = &amount
	}

	return offer.RestoreOffer(
		id,
		snapshot.CouponCode,
		offer.DiscountType(snapshot.DiscountType),
		snapshot.DiscountValue,
		scope,
		minOrderValue,
		snapshot.ExpiresAt,
	)
}

func timeOfDayFromMinute(minute int) (kernel.TimeOfDay, error) {
	return kernel.NewTimeOfDay(minute/60, minute%60)
}
