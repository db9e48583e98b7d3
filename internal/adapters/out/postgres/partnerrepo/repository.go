package partnerrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"freshcart/internal/core/domain/model/kernel"
	"freshcart/internal/core/domain/model/partner"
	"freshcart/internal/pkg/errs"
)

// GormPartnerRepository implements PartnerRepository using GORM.
type GormPartnerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPartnerRepository creates a new GORM partner repository.
func NewGormPartnerRepository(db *gorm.DB, tracker aggregateTracker) *GormPartnerRepository {
	return &GormPartnerRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new partner to the database. A phone number already on
// record surfaces as *partner.DuplicatePhoneError and a user-link collision
// with another partner as *partner.AlreadyLinkedError. Requires the
// connection to be opened with gorm.Config{TranslateError: true} so unique
// violations arrive as gorm.ErrDuplicatedKey.
func (r *GormPartnerRepository) Add(ctx context.Context, aggregate *partner.DeliveryPartner) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return r.translateUniqueViolation(ctx, err, aggregate)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing partner conditioned on the version it was read
// at. Newly recorded assignment history rows are appended in the same
// transaction-scoped connection the repository was created with.
func (r *GormPartnerRepository) Update(ctx context.Context, aggregate *partner.DeliveryPartner) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&PartnerDTO{}).
		Where("id = ? AND version = ?", dto.ID, dto.Version).
		Updates(map[string]any{
			"linked_user_id": dto.LinkedUserID,
			"version":        dto.Version + 1,
			"updated_at":     dto.UpdatedAt,
		})
	if result.Error != nil {
		return r.translateUniqueViolation(ctx, result.Error, aggregate)
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).
			Model(&PartnerDTO{}).
			Where("id = ?", dto.ID).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("partnerId", aggregate.ID())
		}
		return errs.NewConcurrentModificationError("partnerId", aggregate.ID())
	}

	if err := r.appendNewAssignments(ctx, dto); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a partner by ID, including the assignment history in the
// order it was recorded.
func (r *GormPartnerRepository) Get(ctx context.Context, id kernel.UUID) (*partner.DeliveryPartner, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PartnerDTO
	err := r.db.WithContext(ctx).
		Preload("Assignments", func(db *gorm.DB) *gorm.DB {
			return db.Order("partner_assignments.seq ASC")
		}).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("partnerId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByLinkedUser retrieves the partner holding a link to the given user.
func (r *GormPartnerRepository) GetByLinkedUser(ctx context.Context, userID kernel.UUID) (*partner.DeliveryPartner, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dto PartnerDTO
	err := r.db.WithContext(ctx).
		Preload("Assignments", func(db *gorm.DB) *gorm.DB {
			return db.Order("partner_assignments.seq ASC")
		}).
		First(&dto, "linked_user_id = ?", userID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("userId", userID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// appendNewAssignments inserts history rows the database does not have yet.
// Existing rows are never touched; the history is append-only.
func (r *GormPartnerRepository) appendNewAssignments(ctx context.Context, dto PartnerDTO) error {
	var persisted int64
	if err := r.db.WithContext(ctx).
		Model(&AssignmentDTO{}).
		Where("partner_id = ?", dto.ID).
		Count(&persisted).Error; err != nil {
		return err
	}

	if int(persisted) >= len(dto.Assignments) {
		return nil
	}

	newRows := dto.Assignments[persisted:]
	return r.db.WithContext(ctx).Create(&newRows).Error
}

// translateUniqueViolation maps a unique-index violation to the matching
// domain error. GORM reports every violation as the same ErrDuplicatedKey,
// so the offending index is identified by checking whether another partner
// already holds this phone number; when none does the collision is on
// linked_user_id. Other errors pass through unchanged.
func (r *GormPartnerRepository) translateUniqueViolation(ctx context.Context, err error, aggregate *partner.DeliveryPartner) error {
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		return err
	}

	var samePhone int64
	countErr := r.db.WithContext(ctx).
		Model(&PartnerDTO{}).
		Where("phone = ? AND id <> ?", aggregate.Phone(), aggregate.ID().Bytes()).
		Count(&samePhone).Error
	if countErr == nil && samePhone > 0 {
		return partner.NewDuplicatePhoneError(aggregate.Phone())
	}

	if aggregate.LinkedUser() != nil {
		return partner.NewAlreadyLinkedError(aggregate.ID(), *aggregate.LinkedUser())
	}
	return err
}
