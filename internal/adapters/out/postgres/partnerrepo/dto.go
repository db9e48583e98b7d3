// Package partnerrepo provides data transfer objects and mapping functions
// for delivery partner persistence, including the append-only assignment
// history and the unique user link.
package partnerrepo

import (
	"time"

	"github.com/google/uuid"

	"freshcart/internal/core/domain/model/kernel"
	"freshcart/internal/core/domain/model/partner"
)

// PartnerDTO represents the database structure for persisting delivery
// partner aggregates. The unique indexes enforce the cross-aggregate rules
// a single aggregate cannot see: one link per user, one partner per phone
// number.
type PartnerDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name         string     `gorm:"type:text"`
	Phone        string     `gorm:"type:text;uniqueIndex"`
	VehicleType  string     `gorm:"type:text"`
	LinkedUserID *uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Version      int64
	Assignments  []AssignmentDTO `gorm:"foreignKey:PartnerID;references:ID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time       `gorm:"autoCreateTime:false"`
	UpdatedAt    time.Time       `gorm:"autoUpdateTime:false"`
}

// TableName specifies the database table name for partner entities.
func (PartnerDTO) TableName() string {
	return "delivery_partners"
}

// AssignmentDTO is one row of a partner's assignment history. Seq preserves
// the order assignments were recorded in; rows are only ever appended.
type AssignmentDTO struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	PartnerID uuid.UUID `gorm:"type:uuid;index"`
	OrderID   uuid.UUID `gorm:"type:uuid"`
	Seq       int       `gorm:"type:int"`
}

// TableName specifies the database table name for assignment history rows.
func (AssignmentDTO) TableName() string {
	return "partner_assignments"
}

// fromDomain converts a partner domain aggregate to its database representation.
func fromDomain(aggregate *partner.DeliveryPartner) PartnerDTO {
	var linkedUserID *uuid.UUID
	if id := aggregate.LinkedUser(); id != nil {
		raw := id.Bytes()
		linkedUserID = &raw
	}

	history := aggregate.AssignedOrders()
	assignments := make([]AssignmentDTO, 0, len(history))
	for i, orderID := range history {
		assignments = append(assignments, AssignmentDTO{
			PartnerID: aggregate.ID().Bytes(),
			OrderID:   orderID.Bytes(),
			Seq:       i,
		})
	}

	return PartnerDTO{
		ID:           aggregate.ID().Bytes(),
		Name:         aggregate.Name(),
		Phone:        aggregate.Phone(),
		VehicleType:  aggregate.VehicleType(),
		LinkedUserID: linkedUserID,
		Version:      aggregate.Version(),
		Assignments:  assignments,
		CreatedAt:    aggregate.CreatedAt(),
		UpdatedAt:    aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to a partner domain aggregate.
// Assignment rows are expected in Seq order so the restored history matches
// the recorded one.
func toDomain(dto PartnerDTO) (*partner.DeliveryPartner, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var linkedUserID *kernel.UUID
	if dto.LinkedUserID != nil {
		uID, userErr := kernel.UUIDFromBytes((*dto.LinkedUserID)[:])
		if userErr != nil {
			return nil, userErr
		}
		linkedUserID = &uID
	}

	assignedOrders := make([]kernel.UUID, 0, len(dto.Assignments))
	for _, assignment := range dto.Assignments {
		orderID, assignErr := kernel.UUIDFromBytes(assignment.OrderID[:])
		if assignErr != nil {
			return nil, assignErr
		}
		assignedOrders = append(assignedOrders, orderID)
	}

	return partner.RestoreDeliveryPartner(
		id,
		dto.Name,
		dto.Phone,
		dto.VehicleType,
		linkedUserID,
		assignedOrders,
		dto.Version,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
