// Package catalogrepo provides read-only persistence for catalog data:
// restaurants with their operating hours, menu items with their customization
// options and serving windows, and offers addressable by coupon code.
// Schedule and option shapes are stored as jsonb; the ordering flow never
// writes the catalog.
package catalogrepo

import (
	"time"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/menu"
	"foodcourt/internal/core/domain/model/offer"
	"foodcourt/internal/core/domain/model/restaurant"
	"foodcourt/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// RestaurantDTO represents the database structure for restaurants.
// Hours is nil for restaurants that are always open.
type RestaurantDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name  string
	Hours map[int]DayScheduleDTO `gorm:"type:jsonb;serializer:json"`
}

// TableName specifies the database table name for restaurant entities.
func (RestaurantDTO) TableName() string {
	return "restaurants"
}

// DayScheduleDTO is the jsonb form of one weekday's schedule, keyed in the
// parent map by time.Weekday (0 = Sunday).
type DayScheduleDTO struct {
	IsOpen bool          `json:"is_open"`
	Slots  []TimeSlotDTO `json:"slots"`
}

// TimeSlotDTO is the jsonb form of one opening interval in minutes of the day.
// A slot closing past midnight has a close minute smaller than its open minute.
type TimeSlotDTO struct {
	OpenMinute  int `json:"open_minute"`
	CloseMinute int `json:"close_minute"`
}

// MenuItemDTO represents the database structure for menu items.
// A nil window means the item is served whenever the restaurant is open.
type MenuItemDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	RestaurantID   uuid.UUID `gorm:"type:uuid;index"`
	Name           string
	Category       string
	BasePriceCents int64
	Options        []OptionDTO `gorm:"type:jsonb;serializer:json"`
	Window         *WindowDTO  `gorm:"type:jsonb;serializer:json"`
}

// TableName specifies the database table name for menu item entities.
func (MenuItemDTO) TableName() string {
	return "menu_items"
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

// WindowDTO is the jsonb form of a custom serving window in minutes of the day.
type WindowDTO struct {
	StartMinute int `json:"start_minute"`
	EndMinute   int `json:"end_minute"`
}

// OfferDTO represents the database structure for offers. The coupon code is
// the lookup key customers type at the cart. Item-scoped offers carry their
// item IDs as a text array column.
type OfferDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	CouponCode    string    `gorm:"uniqueIndex"`
	DiscountType  int
	DiscountValue float64
	ScopeKind     int
	RestaurantID  *uuid.UUID     `gorm:"type:uuid"`
	ItemIDs       pq.StringArray `gorm:"type:text[]"`
	MinOrderCents *int64
	ExpiresAt     *time.Time
}

// TableName specifies the database table name for offer entities.
func (OfferDTO) TableName() string {
	return "offers"
}

// restaurantToDomain converts a restaurant row to its domain aggregate.
func restaurantToDomain(dto RestaurantDTO) (*restaurant.Restaurant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var hours *restaurant.OperatingHours
	if dto.Hours != nil {
		days := make(map[time.Weekday]restaurant.DaySchedule, len(dto.Hours))
		for weekday, dayDTO := range dto.Hours {
			day, dayErr := dayToDomain(dayDTO)
			if dayErr != nil {
				return nil, dayErr
			}
			days[time.Weekday(weekday)] = day
		}

		restored, hoursErr := restaurant.NewOperatingHours(days)
		if hoursErr != nil {
			return nil, hoursErr
		}
		hours = &restored
	}

	return restaurant.RestoreRestaurant(id, dto.Name, hours)
}

func dayToDomain(dto DayScheduleDTO) (restaurant.DaySchedule, error) {
	slots := make([]restaurant.TimeSlot, 0, len(dto.Slots))
	for _, slotDTO := range dto.Slots {
		open, err := timeOfDayFromMinute(slotDTO.OpenMinute)
		if err != nil {
			return restaurant.DaySchedule{}, err
		}
		closing, err := timeOfDayFromMinute(slotDTO.CloseMinute)
		if err != nil {
			return restaurant.DaySchedule{}, err
		}
		slots = append(slots, restaurant.NewTimeSlot(open, closing))
	}

	return restaurant.NewDaySchedule(dto.IsOpen, slots), nil
}

// menuItemToDomain converts a menu item row to its domain entity.
func menuItemToDomain(dto MenuItemDTO) (*menu.MenuItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
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

	return menu.RestoreMenuItem(
		id,
		restaurantID,
		dto.Name,
		kernel.NewMoney(dto.BasePriceCents),
		options,
		window,
		dto.Category,
	)
}

// offerToDomain converts an offer row to its domain entity.
func offerToDomain(dto OfferDTO) (*offer.Offer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var scope offer.Scope
	switch offer.ScopeKind(dto.ScopeKind) {
	case offer.ScopeKindRestaurant:
		if dto.RestaurantID == nil {
			return nil, errs.NewValueIsRequiredError("restaurant id")
		}
		restaurantID, scopeErr := kernel.UUIDFromBytes((*dto.RestaurantID)[:])
		if scopeErr != nil {
			return nil, scopeErr
		}
		scope = offer.ScopeRestaurant(restaurantID)
	case offer.ScopeKindItems:
		itemIDs := make([]kernel.UUID, 0, len(dto.ItemIDs))
		for _, raw := range dto.ItemIDs {
			itemID, scopeErr := kernel.UUIDFromString(raw)
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
	if dto.MinOrderCents != nil {
		amount := kernel.NewMoney(*dto.MinOrderCents)
		minOrderValue = &amount
	}

	return offer.RestoreOffer(
		id,
		dto.CouponCode,
		offer.DiscountType(dto.DiscountType),
		dto.DiscountValue,
		scope,
		minOrderValue,
		dto.ExpiresAt,
	)
}

func timeOfDayFromMinute(minute int) (kernel.TimeOfDay, error) {
	return kernel.NewTimeOfDay(minute/60, minute%60)
}
