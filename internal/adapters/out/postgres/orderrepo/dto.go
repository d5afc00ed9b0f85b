// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for efficient querying by status and rider assignment.
type OrderDTO struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID       uuid.UUID  `gorm:"type:uuid;index"`
	RiderID          *uuid.UUID `gorm:"type:uuid;index"`
	Address          string
	PaymentMethod    int
	DeliveryOption   int
	Status           int `gorm:"index"`
	ModeratorNote    string
	SubtotalCents    int64
	DeliveryFeeCents int64
	DiscountCents    int64
	TotalCents       int64
	PlacedAt         time.Time
	AcceptedAt       *time.Time
	Lines            []OrderLineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineDTO represents a frozen order line within the order_lines table.
// Lines are immutable after checkout, so they are only ever inserted
// alongside their parent order.
type OrderLineDTO struct {
	ID              int64     `gorm:"primaryKey;autoIncrement"`
	OrderID         uuid.UUID `gorm:"type:uuid;index"`
	ItemID          uuid.UUID `gorm:"type:uuid"`
	RestaurantID    uuid.UUID `gorm:"type:uuid"`
	ItemName        string
	Quantity        int
	UnitPriceCents  int64
	TotalPriceCents int64
}

// TableName specifies the database table name for order line entities.
func (OrderLineDTO) TableName() string {
	return "order_lines"
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps all order attributes including optional rider assignment and the frozen lines.
func fromDomain(aggregate *order.Order) OrderDTO {
	var riderID *uuid.UUID
	if id := aggregate.Rider(); id != nil {
		raw := id.Bytes()
		riderID = &raw
	}

	lines := make([]OrderLineDTO, 0, len(aggregate.Lines()))
	for _, line := range aggregate.Lines() {
		lines = append(lines, OrderLineDTO{
			OrderID:         aggregate.ID().Bytes(),
			ItemID:          line.ItemID.Bytes(),
			RestaurantID:    line.RestaurantID.Bytes(),
			ItemName:        line.Name,
			Quantity:        line.Quantity,
			UnitPriceCents:  line.UnitPrice.Cents(),
			TotalPriceCents: line.TotalPrice.Cents(),
		})
	}

	return OrderDTO{
		ID:               aggregate.ID().Bytes(),
		CustomerID:       aggregate.CustomerID().Bytes(),
		RiderID:          riderID,
		Address:          aggregate.Address(),
		PaymentMethod:    int(aggregate.PaymentMethod()),
		DeliveryOption:   int(aggregate.DeliveryOption()),
		Status:           int(aggregate.Status()),
		ModeratorNote:    aggregate.ModeratorNote(),
		SubtotalCents:    aggregate.Subtotal().Cents(),
		DeliveryFeeCents: aggregate.DeliveryFee().Cents(),
		DiscountCents:    aggregate.Discount().Cents(),
		TotalCents:       aggregate.Total().Cents(),
		PlacedAt:         aggregate.PlacedAt(),
		AcceptedAt:       aggregate.AcceptedAt(),
		Lines:            lines,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status, rider assignment
// and the frozen pricing snapshot using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var riderID *kernel.UUID
	if dto.RiderID != nil {
		rID, riderErr := kernel.UUIDFromBytes((*dto.RiderID)[:])
		if riderErr != nil {
			return nil, riderErr
		}

		riderID = &rID
	}

	lines := make([]order.Line, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		line, lineErr := lineToDomain(lineDTO)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(
		id,
		customerID,
		lines,
		kernel.NewMoney(dto.SubtotalCents),
		kernel.NewMoney(dto.DeliveryFeeCents),
		kernel.NewMoney(dto.DiscountCents),
		kernel.NewMoney(dto.TotalCents),
		dto.Address,
		order.PaymentMethod(dto.PaymentMethod),
		order.DeliveryOption(dto.DeliveryOption),
		order.Status(dto.Status),
		riderID,
		dto.ModeratorNote,
		dto.PlacedAt,
		dto.AcceptedAt,
	)
}

func lineToDomain(dto OrderLineDTO) (order.Line, error) {
	itemID, err := kernel.UUIDFromBytes(dto.ItemID[:])
	if err != nil {
		return order.Line{}, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return order.Line{}, err
	}

	return order.Line{
		ItemID:       itemID,
		RestaurantID: restaurantID,
		Name:         dto.ItemName,
		Quantity:     dto.Quantity,
		UnitPrice:    kernel.NewMoney(dto.UnitPriceCents),
		TotalPrice:   kernel.NewMoney(dto.TotalPriceCents),
	}, nil
}
