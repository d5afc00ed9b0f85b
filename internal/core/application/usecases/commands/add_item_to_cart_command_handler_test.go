package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"foodcourt/internal/core/application/usecases/commands"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/menu"
	"foodcourt/internal/core/domain/model/restaurant"
	"foodcourt/internal/pkg/errs"
)

func newCatalogItem(t *testing.T) (*menu.MenuItem, *restaurant.Restaurant) {
	t.Helper()
	rest, err := restaurant.NewRestaurant(kernel.NewUUID(), "Diner", nil)
	require.NoError(t, err)
	item, err := menu.NewMenuItem(
		kernel.NewUUID(), rest.ID(), "Burger", kernel.NewMoney(1099), nil, menu.AllDay(), "",
	)
	require.NoError(t, err)
	return item, rest
}

func TestAddItemToCartCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	item, rest := newCatalogItem(t)
	customerID := kernel.NewUUID()
	cmd, err := commands.NewAddItemToCartCommand(customerID, item.ID(), 2, nil)
	require.NoError(t, err)

	catalog := new(MockCatalogRepository)
	catalog.On("GetMenuItem", ctx, item.ID()).Return(item, nil).Once()
	catalog.On("GetRestaurant", ctx, rest.ID()).Return(rest, nil).Once()

	repo := new(MockCartRepository)
	uow := new(MockCartUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(repo).Once(),
		repo.On("GetByCustomer", ctx, customerID).
			Return(nil, errs.NewObjectNotFoundError("cart", customerID)).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*cart.Cart")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddItemToCartCommandHandler(factory, catalog, fixedClock{t: time.Now()})
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.False(t, result.OfferRevoked)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	catalog.AssertExpectations(t)
}

func TestAddItemToCartCommandHandler_Handle_UnavailableItem(t *testing.T) {
	ctx := context.Background()

	// restaurant closed on the evaluation day
	hours, err := restaurant.NewOperatingHours(map[time.Weekday]restaurant.DaySchedule{})
	require.NoError(t, err)
	rest, err := restaurant.NewRestaurant(kernel.NewUUID(), "Diner", &hours)
	require.NoError(t, err)
	item, err := menu.NewMenuItem(
		kernel.NewUUID(), rest.ID(), "Burger", kernel.NewMoney(1099), nil, menu.AllDay(), "",
	)
	require.NoError(t, err)

	cmd, err := commands.NewAddItemToCartCommand(kernel.NewUUID(), item.ID(), 1, nil)
	require.NoError(t, err)

	catalog := new(MockCatalogRepository)
	catalog.On("GetMenuItem", ctx, item.ID()).Return(item, nil).Once()
	catalog.On("GetRestaurant", ctx, rest.ID()).Return(rest, nil).Once()

	factory := new(MockCartUoWFactory)

	h := commands.NewAddItemToCartCommandHandler(factory, catalog, fixedClock{t: time.Now()})
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrItemUnavailable)
	factory.AssertNotCalled(t, "Create")
}

func TestAddItemToCartCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := context.Background()
	cmd := commands.AddItemToCartCommand{} // not constructed properly

	h := commands.NewAddItemToCartCommandHandler(
		new(MockCartUoWFactory), new(MockCatalogRepository), fixedClock{t: time.Now()},
	)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestNewAddItemToCartCommand_Validation(t *testing.T) {
	_, err := commands.NewAddItemToCartCommand(kernel.UUID{}, kernel.NewUUID(), 1, nil)
	require.Error(t, err)

	_, err = commands.NewAddItemToCartCommand(kernel.NewUUID(), kernel.NewUUID(), 0, nil)
	require.ErrorIs(t, err, commands.ErrQuantityIsInvalid)
}
