package http

import (
	"time"

	"foodcourt/internal/core/application/usecases/commands"
	"foodcourt/internal/core/application/usecases/queries"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/menu"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrorResponse is the wire shape of every error reply.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// SelectionRequest is a customer's pick for one customization option.
type SelectionRequest struct {
	OptionID uuid.UUID `json:"option_id"`
	Choices  []string  `json:"choices"`
}

// AddItemRequest is the body of POST /carts/:customerId/items.
type AddItemRequest struct {
	ItemID     uuid.UUID          `json:"item_id"`
	Quantity   int                `json:"quantity"`
	Selections []SelectionRequest `json:"selections"`
}

// ChangeQuantityRequest is the body of PATCH /carts/:customerId/items/:itemId.
type ChangeQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// ApplyOfferRequest is the body of POST /carts/:customerId/offer.
type ApplyOfferRequest struct {
	CouponCode string `json:"coupon_code"`
}

// CheckoutRequest is the body of POST /orders.
type CheckoutRequest struct {
	CustomerID     uuid.UUID `json:"customer_id"`
	Address        string    `json:"address"`
	PaymentMethod  string    `json:"payment_method"`
	DeliveryOption string    `json:"delivery_option"`
}

// TransitionRequest is the body of POST /orders/:id/transition. The deliver
// action finalizes the rider's claim and therefore carries the rider's ID.
type TransitionRequest struct {
	Actor   string     `json:"actor"`
	Action  string     `json:"action"`
	RiderID *uuid.UUID `json:"rider_id,omitempty"`
}

// ClaimRequest is the body of POST /orders/:id/claim.
type ClaimRequest struct {
	RiderID uuid.UUID `json:"rider_id"`
}

// NoteRequest is the body of POST /orders/:id/note.
type NoteRequest struct {
	Note string `json:"note"`
}

// LocationRequest is the body of PUT /riders/:id/location.
type LocationRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// CartMutationResponse reports the outcome of a cart mutation, including an
// offer that the mutation silently revoked.
type CartMutationResponse struct {
	OfferRevoked  bool   `json:"offer_revoked"`
	RevokedCoupon string `json:"revoked_coupon,omitempty"`
}

// CartLineResponse is one cart line for display.
type CartLineResponse struct {
	CartItemID uuid.UUID `json:"cart_item_id"`
	ItemID     uuid.UUID `json:"item_id"`
	Name       string    `json:"name"`
	Quantity   int       `json:"quantity"`
	UnitPrice  int64     `json:"unit_price_cents"`
	TotalPrice int64     `json:"total_price_cents"`
}

// CartResponse is the display shape of GET /carts/:customerId.
type CartResponse struct {
	CartID      uuid.UUID          `json:"cart_id"`
	CustomerID  uuid.UUID          `json:"customer_id"`
	Lines       []CartLineResponse `json:"lines"`
	CouponCode  string             `json:"coupon_code,omitempty"`
	Subtotal    int64              `json:"subtotal_cents"`
	DeliveryFee int64              `json:"delivery_fee_cents"`
	Discount    int64              `json:"discount_cents"`
	GrandTotal  int64              `json:"grand_total_cents"`
}

// OrderResponse is the display shape of a single order.
type OrderResponse struct {
	ID          uuid.UUID  `json:"id"`
	CustomerID  uuid.UUID  `json:"customer_id"`
	Status      string     `json:"status"`
	Subtotal    int64      `json:"subtotal_cents"`
	DeliveryFee int64      `json:"delivery_fee_cents"`
	Discount    int64      `json:"discount_cents"`
	Total       int64      `json:"total_cents"`
	Address     string     `json:"address"`
	RiderID     *uuid.UUID `json:"rider_id,omitempty"`
	PlacedAt    time.Time  `json:"placed_at"`
	AcceptedAt  *time.Time `json:"accepted_at,omitempty"`
}

// ActiveOrderResponse is one row of the active-orders board.
type ActiveOrderResponse struct {
	ID         uuid.UUID  `json:"id"`
	CustomerID uuid.UUID  `json:"customer_id"`
	Status     string     `json:"status"`
	Total      int64      `json:"total_cents"`
	RiderID    *uuid.UUID `json:"rider_id,omitempty"`
	PlacedAt   time.Time  `json:"placed_at"`
	AcceptedAt *time.Time `json:"accepted_at,omitempty"`
	Delay      string     `json:"delay"`
}

// MenuItemResponse is one menu item with its availability verdict.
type MenuItemResponse struct {
	ItemID    uuid.UUID `json:"item_id"`
	Name      string    `json:"name"`
	BasePrice int64     `json:"base_price_cents"`
	Category  string    `json:"category"`
	Available bool      `json:"available"`
	Reason    string    `json:"reason,omitempty"`
}

func kernelUUID(id uuid.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func toSelections(requests []SelectionRequest) ([]menu.Selection, error) {
	if len(requests) == 0 {
		return nil, nil
	}

	selections := make([]menu.Selection, 0, len(requests))
	for _, request := range requests {
		optionID, err := kernelUUID(request.OptionID)
		if err != nil {
			return nil, err
		}
		selections = append(selections, menu.Selection{
			OptionID: optionID,
			Choices:  request.Choices,
		})
	}
	return selections, nil
}

func toCartMutationResponse(result commands.CartMutationResult) CartMutationResponse {
	return CartMutationResponse{
		OfferRevoked:  result.OfferRevoked,
		RevokedCoupon: result.RevokedCoupon,
	}
}

func toCartResponse(response queries.GetCartQueryResponse) CartResponse {
	lines := make([]CartLineResponse, 0, len(response.Lines))
	for _, line := range response.Lines {
		lines = append(lines, CartLineResponse{
			CartItemID: line.CartItemID.Bytes(),
			ItemID:     line.ItemID.Bytes(),
			Name:       line.Name,
			Quantity:   line.Quantity,
			UnitPrice:  line.UnitPrice.Cents(),
			TotalPrice: line.TotalPrice.Cents(),
		})
	}

	return CartResponse{
		CartID:      response.CartID.Bytes(),
		CustomerID:  response.CustomerID.Bytes(),
		Lines:       lines,
		CouponCode:  response.CouponCode,
		Subtotal:    response.Subtotal.Cents(),
		DeliveryFee: response.DeliveryFee.Cents(),
		Discount:    response.Discount.Cents(),
		GrandTotal:  response.GrandTotal.Cents(),
	}
}

func toOrderResponse(o *order.Order) OrderResponse {
	var riderID *uuid.UUID
	if id := o.Rider(); id != nil {
		raw := id.Bytes()
		riderID = &raw
	}

	return OrderResponse{
		ID:          o.ID().Bytes(),
		CustomerID:  o.CustomerID().Bytes(),
		Status:      o.Status().String(),
		Subtotal:    o.Subtotal().Cents(),
		DeliveryFee: o.DeliveryFee().Cents(),
		Discount:    o.Discount().Cents(),
		Total:       o.Total().Cents(),
		Address:     o.Address(),
		RiderID:     riderID,
		PlacedAt:    o.PlacedAt(),
		AcceptedAt:  o.AcceptedAt(),
	}
}

func toActiveOrderResponse(row queries.GetActiveOrdersQueryResponse) ActiveOrderResponse {
	var riderID *uuid.UUID
	if row.RiderID != nil {
		raw := row.RiderID.Bytes()
		riderID = &raw
	}

	return ActiveOrderResponse{
		ID:         row.ID.Bytes(),
		CustomerID: row.CustomerID.Bytes(),
		Status:     row.Status.String(),
		Total:      row.Total.Cents(),
		RiderID:    riderID,
		PlacedAt:   row.PlacedAt,
		AcceptedAt: row.AcceptedAt,
		Delay:      row.Delay.String(),
	}
}

func toMenuItemResponse(row queries.GetMenuAvailabilityQueryResponse) MenuItemResponse {
	return MenuItemResponse{
		ItemID:    row.ItemID.Bytes(),
		Name:      row.Name,
		BasePrice: row.BasePrice.Cents(),
		Category:  row.Category,
		Available: row.Available,
		Reason:    row.Reason,
	}
}

func parsePaymentMethod(s string) (order.PaymentMethod, error) {
	switch s {
	case "cash":
		return order.PaymentCash, nil
	case "card":
		return order.PaymentCard, nil
	default:
		return 0, errs.NewValueIsInvalidError("payment_method")
	}
}

func parseDeliveryOption(s string) (order.DeliveryOption, error) {
	switch s {
	case "home":
		return order.DeliveryHome, nil
	case "pickup":
		return order.DeliveryPickup, nil
	default:
		return 0, errs.NewValueIsInvalidError("delivery_option")
	}
}

func parseActor(s string) (order.Actor, error) {
	switch s {
	case "customer":
		return order.ActorCustomer, nil
	case "vendor":
		return order.ActorVendor, nil
	case "moderator":
		return order.ActorModerator, nil
	case "rider":
		return order.ActorRider, nil
	default:
		return 0, errs.NewValueIsInvalidError("actor")
	}
}
