package queries

import (
	"context"
	"time"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveOrdersQueryHandler reads non-terminal orders and grades their
// delay against the injected clock. The read has no side effects; the same
// order can be delayed now and on time after the vendor accepts it.
type GetActiveOrdersQueryHandler struct {
	db    *gorm.DB
	clock ports.Clock
}

// NewGetActiveOrdersQueryHandler creates a handler for active-order queries.
func NewGetActiveOrdersQueryHandler(db *gorm.DB, clock ports.Clock) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db, clock: clock}
}

// Handle executes the query, ordered by placement time (oldest first).
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]GetActiveOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, customer_id, status, total_cents, rider_id, placed_at, accepted_at
		FROM orders
		WHERE status NOT IN (?, ?)
		ORDER BY placed_at
	`, order.StatusDelivered, order.StatusCancelled).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	now := h.clock.Now()
	responses := make([]GetActiveOrdersQueryResponse, 0)
	for rows.Next() {
		var id, customerID uuid.UUID
		var riderID uuid.NullUUID
		var status int
		var totalCents int64
		var placedAt time.Time
		var acceptedAt *time.Time

		if err = rows.Scan(&id, &customerID, &status, &totalCents, &riderID, &placedAt, &acceptedAt); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		ownerID, idErr := kernel.UUIDFromBytes(customerID[:])
		if idErr != nil {
			return nil, idErr
		}

		response := GetActiveOrdersQueryResponse{
			ID:         orderID,
			CustomerID: ownerID,
			Status:     order.Status(status),
			Total:      kernel.NewMoney(totalCents),
			PlacedAt:   placedAt,
			AcceptedAt: acceptedAt,
			Delay:      order.ClassifyDelay(order.Status(status), placedAt, acceptedAt, now),
		}
		if riderID.Valid {
			claimedBy, idErr := kernel.UUIDFromBytes(riderID.UUID[:])
			if idErr != nil {
				return nil, idErr
			}
			response.RiderID = &claimedBy
		}

		responses = append(responses, response)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return responses, nil
}
