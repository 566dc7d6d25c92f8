package orderrepo

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"icecream/internal/core/domain/model/order"
	"icecream/internal/core/ports"
	"icecream/internal/pkg/errs"
)

var _ ports.OrderRepository = (*GormOrderRepository)(nil)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker collects written aggregates so their events can be published
// after commit.
type aggregateTracker interface {
	TrackAggregate(aggregate *order.Order)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the order with its lines and numbers it from the table sequence.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	return r.AddAll(ctx, []*order.Order{aggregate})
}

// AddAll inserts the orders in one statement per table.
func (r *GormOrderRepository) AddAll(ctx context.Context, aggregates []*order.Order) error {
	if len(aggregates) == 0 {
		return nil
	}

	dtos := make([]OrderDTO, 0, len(aggregates))
	for _, aggregate := range aggregates {
		if err := aggregate.Validate(); err != nil {
			return err
		}
		if aggregate.HasID() {
			return order.ErrIDAlreadyAssigned
		}
		dtos = append(dtos, fromDomain(aggregate))
	}

	if err := r.db.WithContext(ctx).Create(&dtos).Error; err != nil {
		return err
	}

	for i, aggregate := range aggregates {
		if err := aggregate.AssignID(order.ID(dtos[i].ID)); err != nil {
			return err
		}
		r.tracker.TrackAggregate(aggregate)
	}
	return nil
}

// Update writes the mutable columns. Order lines never change after creation.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", int64(aggregate.ID())).
		Updates(map[string]any{
			"status":     aggregate.Status().String(),
			"updated_at": aggregate.UpdatedAt(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID())
	}

	r.tracker.TrackAggregate(aggregate)
	return nil
}

func (r *GormOrderRepository) Get(ctx context.Context, id order.ID) (*order.Order, error) {
	return r.get(ctx, r.db, id)
}

// GetForUpdate takes a row lock (SELECT ... FOR UPDATE) held until the transaction ends.
func (r *GormOrderRepository) GetForUpdate(ctx context.Context, id order.ID) (*order.Order, error) {
	return r.get(ctx, r.db.Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	return r.find(ctx, r.db)
}

func (r *GormOrderRepository) FindByCustomerEmail(ctx context.Context, email string) ([]*order.Order, error) {
	return r.find(ctx, r.db.Where("LOWER(customer_email) = LOWER(?)", email))
}

func (r *GormOrderRepository) FindByCustomerPhone(ctx context.Context, phone string) ([]*order.Order, error) {
	return r.find(ctx, r.db.Where("customer_phone = ?", phone))
}

func (r *GormOrderRepository) FindByStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	return r.find(ctx, r.db.Where("status = ?", status.String()))
}

func (r *GormOrderRepository) FindByStatusCreatedAfter(
	ctx context.Context,
	status order.Status,
	after time.Time,
) ([]*order.Order, error) {
	return r.find(ctx, r.db.Where("status = ? AND created_at > ?", status.String(), after))
}

func (r *GormOrderRepository) FindByCustomerNameContaining(ctx context.Context, part string) ([]*order.Order, error) {
	return r.find(ctx, r.db.Where("customer_name ILIKE ?", containsPattern(part)))
}

func (r *GormOrderRepository) FindByDeliveryAddressContaining(
	ctx context.Context,
	part string,
) ([]*order.Order, error) {
	return r.find(ctx, r.db.Where("delivery_address ILIKE ?", containsPattern(part)))
}

func (r *GormOrderRepository) FindCreatedBetween(ctx context.Context, from, to time.Time) ([]*order.Order, error) {
	return r.find(ctx, r.db.Where("created_at BETWEEN ? AND ?", from, to))
}

func (r *GormOrderRepository) FindCreatedSince(ctx context.Context, since time.Time) ([]*order.Order, error) {
	return r.find(ctx, r.db.Where("created_at >= ?", since).Order("created_at DESC"))
}

func (r *GormOrderRepository) FindStalePending(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	return r.find(ctx, r.db.
		Where("status = ? AND created_at < ?", order.Pending.String(), cutoff).
		Order("created_at"))
}

func (r *GormOrderRepository) CountByStatus(ctx context.Context, status order.Status) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("status = ?", status.String()).Count(&n).Error
	return n, err
}

func (r *GormOrderRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&OrderDTO{}).Count(&n).Error
	return n, err
}

func (r *GormOrderRepository) get(ctx context.Context, db *gorm.DB, id order.ID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := withItems(db.WithContext(ctx)).First(&dto, "id = ?", int64(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// find runs scope and returns the matches. Explicit ordering from scope comes first,
// the identifier breaks ties.
func (r *GormOrderRepository) find(ctx context.Context, scope *gorm.DB) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := withItems(scope.WithContext(ctx)).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainList(dtos)
}

func withItems(db *gorm.DB) *gorm.DB {
	return db.Preload("Items", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("position")
	})
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func containsPattern(part string) string {
	return "%" + likeEscaper.Replace(part) + "%"
}
