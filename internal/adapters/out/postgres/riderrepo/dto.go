// Package riderrepo provides data transfer objects and mapping functions for rider persistence.
// A rider row only stores identity; the rider's active claims are derived from
// the orders table, which keeps the claim cap consistent with the CAS write
// that assigns orders.
package riderrepo

import (
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/rider"

	"github.com/google/uuid"
)

// RiderDTO represents the database structure for persisting rider aggregates.
type RiderDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string
}

// TableName specifies the database table name for rider entities.
func (RiderDTO) TableName() string {
	return "riders"
}

// fromDomain converts a rider domain aggregate to its database representation.
// Active claims live on the orders table and are not written here.
func fromDomain(aggregate *rider.Rider) RiderDTO {
	return RiderDTO{
		ID:   aggregate.ID().Bytes(),
		Name: aggregate.Name(),
	}
}

// toDomain converts a database DTO plus the rider's current claims to a
// rider domain aggregate.
func toDomain(dto RiderDTO, activeOrders []kernel.UUID) (*rider.Rider, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return rider.RestoreRider(id, dto.Name, activeOrders)
}
