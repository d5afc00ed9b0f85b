package queries

import (
	"context"

	"foodcourt/internal/core/domain/model/cart"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCartQueryHandler reads a customer's cart straight from the database.
// The stored discount was settled by the aggregate on the last write, so the
// read model only sums lines and derives the fee and grand total.
type GetCartQueryHandler struct {
	db *gorm.DB
}

// NewGetCartQueryHandler creates a handler for cart read queries.
func NewGetCartQueryHandler(db *gorm.DB) GetCartQueryHandler {
	return GetCartQueryHandler{db: db}
}

// Handle executes the cart read for the query's customer.
// Returns an errs.ObjectNotFoundError when the customer has no open cart.
func (h GetCartQueryHandler) Handle(ctx context.Context, query GetCartQuery) (GetCartQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCartQueryResponse{}, err
	}

	var cartRow struct {
		ID            uuid.UUID
		CouponCode    *string
		DiscountCents int64
	}
	result := h.db.WithContext(ctx).Raw(`
		SELECT id, coupon_code, discount_cents
		FROM carts
		WHERE customer_id = ?
	`, query.CustomerID().Bytes()).Scan(&cartRow)
	if result.Error != nil {
		return GetCartQueryResponse{}, result.Error
	}
	if result.RowsAffected == 0 {
		return GetCartQueryResponse{}, errs.NewObjectNotFoundError("cart", query.CustomerID())
	}

	cartID, err := kernel.UUIDFromBytes(cartRow.ID[:])
	if err != nil {
		return GetCartQueryResponse{}, err
	}

	response := GetCartQueryResponse{
		CartID:     cartID,
		CustomerID: query.CustomerID(),
		Lines:      make([]CartLineResponse, 0),
		Discount:   kernel.NewMoney(cartRow.DiscountCents),
	}
	if cartRow.CouponCode != nil {
		response.CouponCode = *cartRow.CouponCode
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, item_id, restaurant_id, item_name, quantity, unit_price_cents
		FROM cart_items
		WHERE cart_id = ?
		ORDER BY id
	`, cartRow.ID).Rows()
	if err != nil {
		return GetCartQueryResponse{}, err
	}
	defer rows.Close()

	subtotal := kernel.NewMoney(0)
	restaurants := make(map[uuid.UUID]bool)
	for rows.Next() {
		var id, itemID, restaurantID uuid.UUID
		var name string
		var quantity int
		var unitPriceCents int64

		if err = rows.Scan(&id, &itemID, &restaurantID, &name, &quantity, &unitPriceCents); err != nil {
			return GetCartQueryResponse{}, err
		}

		lineID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return GetCartQueryResponse{}, idErr
		}
		menuItemID, idErr := kernel.UUIDFromBytes(itemID[:])
		if idErr != nil {
			return GetCartQueryResponse{}, idErr
		}

		unitPrice := kernel.NewMoney(unitPriceCents)
		totalPrice := unitPrice.MulInt(quantity)
		subtotal = subtotal.Add(totalPrice)
		restaurants[restaurantID] = true

		response.Lines = append(response.Lines, CartLineResponse{
			CartItemID: lineID,
			ItemID:     menuItemID,
			Name:       name,
			Quantity:   quantity,
			UnitPrice:  unitPrice,
			TotalPrice: totalPrice,
		})
	}
	if err = rows.Err(); err != nil {
		return GetCartQueryResponse{}, err
	}

	response.Subtotal = subtotal
	response.DeliveryFee = cart.DeliveryFeePerRestaurant.MulInt(len(restaurants))
	response.GrandTotal = subtotal.Add(response.DeliveryFee).Sub(response.Discount).FloorZero()
	return response, nil
}
