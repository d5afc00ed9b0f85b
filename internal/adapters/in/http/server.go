package http

import (
	"net/http"

	"foodcourt/internal/core/application/usecases/commands"
	"foodcourt/internal/core/application/usecases/queries"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// Server exposes the ordering use cases over HTTP.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	addItemHandler          commands.AddItemToCartCommandHandler
	changeQuantityHandler   commands.ChangeItemQuantityCommandHandler
	removeCartItemHandler   commands.RemoveCartItemCommandHandler
	applyOfferHandler       commands.ApplyOfferCommandHandler
	removeOfferHandler      commands.RemoveOfferCommandHandler
	checkoutHandler         commands.CheckoutCommandHandler
	transitionHandler       commands.TransitionOrderCommandHandler
	claimHandler            commands.ClaimOrderCommandHandler
	completeDeliveryHandler commands.CompleteDeliveryCommandHandler
	noteHandler             commands.AttachModeratorNoteCommandHandler

	// Query handlers
	getCartHandler         queries.GetCartQueryHandler
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler
	getMenuHandler         queries.GetMenuAvailabilityQueryHandler

	trackingStore ports.TrackingStore
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	addItemHandler commands.AddItemToCartCommandHandler,
	changeQuantityHandler commands.ChangeItemQuantityCommandHandler,
	removeCartItemHandler commands.RemoveCartItemCommandHandler,
	applyOfferHandler commands.ApplyOfferCommandHandler,
	removeOfferHandler commands.RemoveOfferCommandHandler,
	checkoutHandler commands.CheckoutCommandHandler,
	transitionHandler commands.TransitionOrderCommandHandler,
	claimHandler commands.ClaimOrderCommandHandler,
	completeDeliveryHandler commands.CompleteDeliveryCommandHandler,
	noteHandler commands.AttachModeratorNoteCommandHandler,
	getCartHandler queries.GetCartQueryHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
	getMenuHandler queries.GetMenuAvailabilityQueryHandler,
	trackingStore ports.TrackingStore,
) *Server {
	return &Server{
		addItemHandler:          addItemHandler,
		changeQuantityHandler:   changeQuantityHandler,
		removeCartItemHandler:   removeCartItemHandler,
		applyOfferHandler:       applyOfferHandler,
		removeOfferHandler:      removeOfferHandler,
		checkoutHandler:         checkoutHandler,
		transitionHandler:       transitionHandler,
		claimHandler:            claimHandler,
		completeDeliveryHandler: completeDeliveryHandler,
		noteHandler:             noteHandler,
		getCartHandler:          getCartHandler,
		getActiveOrdersHandler:  getActiveOrdersHandler,
		getMenuHandler:          getMenuHandler,
		trackingStore:           trackingStore,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/carts/:customerId/items", s.AddItemToCart)
	api.PATCH("/carts/:customerId/items/:itemId", s.ChangeItemQuantity)
	api.DELETE("/carts/:customerId/items/:itemId", s.RemoveCartItem)
	api.GET("/carts/:customerId", s.GetCart)
	api.POST("/carts/:customerId/offer", s.ApplyOffer)
	api.DELETE("/carts/:customerId/offer", s.RemoveOffer)

	api.POST("/orders", s.Checkout)
	api.GET("/orders/active", s.GetActiveOrders)
	api.POST("/orders/:id/transition", s.TransitionOrder)
	api.POST("/orders/:id/claim", s.ClaimOrder)
	api.POST("/orders/:id/note", s.AttachModeratorNote)

	api.GET("/restaurants/:id/menu", s.GetMenuAvailability)

	api.GET("/riders/:id/location", s.GetRiderLocation)
	api.PUT("/riders/:id/location", s.UpdateRiderLocation)
}

// AddItemToCart handles POST /api/v1/carts/:customerId/items.
func (s *Server) AddItemToCart(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.Param("customerId"))
	if err != nil {
		return writeBadRequest(ctx, "invalid customer ID")
	}

	var request AddItemRequest
	if err := ctx.Bind(&request); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	itemID, err := kernelUUID(request.ItemID)
	if err != nil {
		return writeBadRequest(ctx, "invalid item ID")
	}

	selections, err := toSelections(request.Selections)
	if err != nil {
		return writeBadRequest(ctx, "invalid selections")
	}

	command, err := commands.NewAddItemToCartCommand(customerID, itemID, request.Quantity, selections)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.addItemHandler.Handle(ctx.Request().Context(), command)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toCartMutationResponse(result))
}

// ChangeItemQuantity handles PATCH /api/v1/carts/:customerId/items/:itemId.
func (s *Server) ChangeItemQuantity(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.Param("customerId"))
	if err != nil {
		return writeBadRequest(ctx, "invalid customer ID")
	}

	cartItemID, err := kernel.UUIDFromString(ctx.Param("itemId"))
	if err != nil {
		return writeBadRequest(ctx, "invalid cart item ID")
	}

	var request ChangeQuantityRequest
	if err := ctx.Bind(&request); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	command, err := commands.NewChangeItemQuantityCommand(customerID, cartItemID, request.Quantity)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.changeQuantityHandler.Handle(ctx.Request().Context(), command)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toCartMutationResponse(result))
}

// RemoveCartItem handles DELETE /api/v1/carts/:customerId/items/:itemId.
func (s *Server) RemoveCartItem(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.Param("customerId"))
	if err != nil {
		return writeBadRequest(ctx, "invalid customer ID")
	}

	cartItemID, err := kernel.UUIDFromString(ctx.Param("itemId"))
	if err != nil {
		return writeBadRequest(ctx, "invalid cart item ID")
	}

	command, err := commands.NewRemoveCartItemCommand(customerID, cartItemID)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.removeCartItemHandler.Handle(ctx.Request().Context(), command)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toCartMutationResponse(result))
}

// GetCart handles GET /api/v1/carts/:customerId.
func (s *Server) GetCart(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.Param("customerId"))
	if err != nil {
		return writeBadRequest(ctx, "invalid customer ID")
	}

	query, err := queries.NewGetCartQuery(customerID)
	if err != nil {
		return writeError(ctx, err)
	}

	response, err := s.getCartHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toCartResponse(response))
}

// ApplyOffer handles POST /api/v1/carts/:customerId/offer.
func (s *Server) ApplyOffer(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.Param("customerId"))
	if err != nil {
		return writeBadRequest(ctx, "invalid customer ID")
	}

	var request ApplyOfferRequest
	if err := ctx.Bind(&request); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	command, err := commands.NewApplyOfferCommand(customerID, request.CouponCode)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.applyOfferHandler.Handle(ctx.Request().Context(), command); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveOffer handles DELETE /api/v1/carts/:customerId/offer.
func (s *Server) RemoveOffer(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.Param("customerId"))
	if err != nil {
		return writeBadRequest(ctx, "invalid customer ID")
	}

	command, err := commands.NewRemoveOfferCommand(customerID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.removeOfferHandler.Handle(ctx.Request().Context(), command); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// Checkout handles POST /api/v1/orders - converts the customer's cart into an order.
func (s *Server) Checkout(ctx echo.Context) error {
	var request CheckoutRequest
	if err := ctx.Bind(&request); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	customerID, err := kernelUUID(request.CustomerID)
	if err != nil {
		return writeBadRequest(ctx, "invalid customer ID")
	}

	paymentMethod, err := parsePaymentMethod(request.PaymentMethod)
	if err != nil {
		return writeError(ctx, err)
	}

	deliveryOption, err := parseDeliveryOption(request.DeliveryOption)
	if err != nil {
		return writeError(ctx, err)
	}

	command, err := commands.NewCheckoutCommand(customerID, request.Address, paymentMethod, deliveryOption)
	if err != nil {
		return writeError(ctx, err)
	}

	placed, err := s.checkoutHandler.Handle(ctx.Request().Context(), command)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toOrderResponse(placed))
}

// GetActiveOrders handles GET /api/v1/orders/active.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	query := queries.NewGetActiveOrdersQuery()

	rows, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]ActiveOrderResponse, len(rows))
	for i, row := range rows {
		response[i] = toActiveOrderResponse(row)
	}

	return ctx.JSON(http.StatusOK, response)
}

// TransitionOrder handles POST /api/v1/orders/:id/transition. The deliver
// action is routed to the delivery completion use case because it must also
// release the rider's claim slot.
func (s *Server) TransitionOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeBadRequest(ctx, "invalid order ID")
	}

	var request TransitionRequest
	if err := ctx.Bind(&request); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	if request.Action == "deliver" {
		return s.completeDelivery(ctx, orderID, request)
	}

	actor, err := parseActor(request.Actor)
	if err != nil {
		return writeError(ctx, err)
	}

	action, err := commands.ParseTransitionAction(request.Action)
	if err != nil {
		return writeError(ctx, err)
	}

	command, err := commands.NewTransitionOrderCommand(orderID, actor, action)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.transitionHandler.Handle(ctx.Request().Context(), command)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(updated))
}

func (s *Server) completeDelivery(ctx echo.Context, orderID kernel.UUID, request TransitionRequest) error {
	if request.RiderID == nil {
		return writeBadRequest(ctx, "rider_id is required for the deliver action")
	}

	riderID, err := kernelUUID(*request.RiderID)
	if err != nil {
		return writeBadRequest(ctx, "invalid rider ID")
	}

	command, err := commands.NewCompleteDeliveryCommand(orderID, riderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.completeDeliveryHandler.Handle(ctx.Request().Context(), command); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ClaimOrder handles POST /api/v1/orders/:id/claim.
func (s *Server) ClaimOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeBadRequest(ctx, "invalid order ID")
	}

	var request ClaimRequest
	if err := ctx.Bind(&request); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	riderID, err := kernelUUID(request.RiderID)
	if err != nil {
		return writeBadRequest(ctx, "invalid rider ID")
	}

	command, err := commands.NewClaimOrderCommand(orderID, riderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.claimHandler.Handle(ctx.Request().Context(), command); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AttachModeratorNote handles POST /api/v1/orders/:id/note.
func (s *Server) AttachModeratorNote(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeBadRequest(ctx, "invalid order ID")
	}

	var request NoteRequest
	if err := ctx.Bind(&request); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	command, err := commands.NewAttachModeratorNoteCommand(orderID, request.Note)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.noteHandler.Handle(ctx.Request().Context(), command); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetMenuAvailability handles GET /api/v1/restaurants/:id/menu.
func (s *Server) GetMenuAvailability(ctx echo.Context) error {
	restaurantID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeBadRequest(ctx, "invalid restaurant ID")
	}

	query, err := queries.NewGetMenuAvailabilityQuery(restaurantID)
	if err != nil {
		return writeError(ctx, err)
	}

	rows, err := s.getMenuHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]MenuItemResponse, len(rows))
	for i, row := range rows {
		response[i] = toMenuItemResponse(row)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetRiderLocation handles GET /api/v1/riders/:id/location.
func (s *Server) GetRiderLocation(ctx echo.Context) error {
	riderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeBadRequest(ctx, "invalid rider ID")
	}

	location, err := s.trackingStore.GetLocation(ctx.Request().Context(), riderID)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, location)
}

// UpdateRiderLocation handles PUT /api/v1/riders/:id/location.
func (s *Server) UpdateRiderLocation(ctx echo.Context) error {
	riderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeBadRequest(ctx, "invalid rider ID")
	}

	var request LocationRequest
	if err := ctx.Bind(&request); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	location := ports.RiderLocation{
		Latitude:  request.Latitude,
		Longitude: request.Longitude,
	}

	if err := s.trackingStore.SetLocation(ctx.Request().Context(), riderID, location); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
