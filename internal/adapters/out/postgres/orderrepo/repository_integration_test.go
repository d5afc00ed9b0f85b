package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"foodcourt/internal/adapters/out/postgres/orderrepo"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify database persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	// Get connection string and connect to database
	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Auto-migrate the schema
	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderLineDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	// Clean the database before each test
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, order_lines").Error)

	// Create fresh repository and tracker for each test
	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertOrderCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_RoundTrip() {
	ctx := context.Background()

	original := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.Equal(original.ID(), retrieved.ID())
	suite.Equal(original.CustomerID(), retrieved.CustomerID())
	suite.Equal(order.StatusPlaced, retrieved.Status())
	suite.Equal(original.Subtotal(), retrieved.Subtotal())
	suite.Equal(original.DeliveryFee(), retrieved.DeliveryFee())
	suite.Equal(original.Total(), retrieved.Total())
	suite.Equal(original.Address(), retrieved.Address())
	suite.Equal(original.PaymentMethod(), retrieved.PaymentMethod())
	suite.Equal(original.DeliveryOption(), retrieved.DeliveryOption())
	suite.Len(retrieved.Lines(), len(original.Lines()))
	suite.Equal(original.Lines()[0].Name, retrieved.Lines()[0].Name)
	suite.Nil(retrieved.Rider())
	suite.Nil(retrieved.AcceptedAt())
	suite.WithinDuration(original.PlacedAt(), retrieved.PlacedAt(), time.Millisecond)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_AcceptedOrder_PersistsStatusAndTimestamp() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	acceptedAt := time.Now().UTC()
	suite.Require().NoError(testOrder.Accept(order.ActorVendor, acceptedAt))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.StatusPreparing, retrieved.Status())
	suite.Require().NotNil(retrieved.AcceptedAt())
	suite.WithinDuration(acceptedAt, *retrieved.AcceptedAt(), time.Millisecond)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsError() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()

	err := suite.repository.Update(ctx, testOrder)
	suite.Require().ErrorIs(err, gorm.ErrRecordNotFound)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllActive_ExcludesTerminalStatuses() {
	ctx := context.Background()

	active := suite.createTestOrder()
	delivered := suite.createTestOrderWithStatus(order.StatusDelivered)
	cancelled := suite.createTestOrderWithStatus(order.StatusCancelled)

	for _, o := range []*order.Order{active, delivered, cancelled} {
		suite.tracker.On("TrackAggregate", o.ID(), o).Once()
		suite.Require().NoError(suite.repository.Add(ctx, o))
	}

	orders, err := suite.repository.GetAllActive(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(orders, 1)
	suite.Equal(active.ID(), orders[0].ID())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAssignRider_FirstClaimWins() {
	ctx := context.Background()

	testOrder := suite.createTestOrderWithStatus(order.StatusOnItsWay)
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	firstRider := kernel.NewUUID()
	secondRider := kernel.NewUUID()

	suite.Require().NoError(suite.repository.AssignRider(ctx, testOrder.ID(), firstRider))

	err := suite.repository.AssignRider(ctx, testOrder.ID(), secondRider)
	suite.Require().ErrorIs(err, order.ErrRiderAlreadyAssigned)

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Require().NotNil(retrieved.Rider())
	suite.Equal(firstRider, *retrieved.Rider())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAssignRider_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	err := suite.repository.AssignRider(ctx, kernel.NewUUID(), kernel.NewUUID())

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

// createTestOrder builds a freshly placed two-line order.
func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder() *order.Order {
	lines := []order.Line{
		{
			ItemID:       kernel.NewUUID(),
			RestaurantID: kernel.NewUUID(),
			Name:         "Margherita",
			Quantity:     2,
			UnitPrice:    kernel.NewMoney(1050),
			TotalPrice:   kernel.NewMoney(2100),
		},
		{
			ItemID:       kernel.NewUUID(),
			RestaurantID: kernel.NewUUID(),
			Name:         "Lemonade",
			Quantity:     1,
			UnitPrice:    kernel.NewMoney(350),
			TotalPrice:   kernel.NewMoney(350),
		},
	}

	testOrder, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		lines,
		kernel.NewMoney(2450),
		kernel.NewMoney(1198),
		kernel.NewMoney(0),
		kernel.NewMoney(3648),
		"12 Baker Street",
		order.PaymentCard,
		order.DeliveryHome,
		time.Now().UTC(),
	)
	suite.Require().NoError(err)
	return testOrder
}

// createTestOrderWithStatus restores a test order directly in the given status.
func (suite *OrderRepositoryIntegrationTestSuite) createTestOrderWithStatus(status order.Status) *order.Order {
	base := suite.createTestOrder()

	var acceptedAt *time.Time
	if status != order.StatusPlaced {
		t := base.PlacedAt().Add(2 * time.Minute)
		acceptedAt = &t
	}

	testOrder, err := order.RestoreOrder(
		base.ID(),
		base.CustomerID(),
		base.Lines(),
		base.Subtotal(),
		base.DeliveryFee(),
		base.Discount(),
		base.Total(),
		base.Address(),
		base.PaymentMethod(),
		base.DeliveryOption(),
		status,
		nil,
		"",
		base.PlacedAt(),
		acceptedAt,
	)
	suite.Require().NoError(err)
	return testOrder
}

// assertOrderCount verifies the number of orders in the database.
func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
