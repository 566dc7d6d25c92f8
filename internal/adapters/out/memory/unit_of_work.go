package memory

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"icecream/internal/adapters/out/eventbus"
	"icecream/internal/core/domain/model/order"
	"icecream/internal/core/ports"
)

// ErrNoTransaction is returned by Commit and Rollback outside Begin.
var ErrNoTransaction = errors.New("no active transaction")

// UnitOfWorkFactory creates units of work over one Store.
type UnitOfWorkFactory struct {
	store     *Store
	publisher ports.EventPublisher
	logger    logrus.FieldLogger
}

// NewUnitOfWorkFactory builds a factory. publisher may be nil, in which case
// committed events are dropped.
func NewUnitOfWorkFactory(store *Store, publisher ports.EventPublisher, logger logrus.FieldLogger) *UnitOfWorkFactory {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &UnitOfWorkFactory{
		store:     store,
		publisher: publisher,
		logger:    logger,
	}
}

func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{
		store:     f.store,
		publisher: f.publisher,
		logger:    f.logger,
		tracker:   eventbus.NewTracker(),
	}
}

// UnitOfWork stages writes until Commit.
type UnitOfWork struct {
	store     *Store
	publisher ports.EventPublisher
	logger    logrus.FieldLogger
	tracker   *eventbus.Tracker

	staged map[order.ID]*order.Order
}

// Begin waits for any other active unit of work to finish. Calling Begin twice is a no-op.
func (uow *UnitOfWork) Begin(ctx context.Context) error {
	if uow.staged != nil {
		return nil
	}
	if err := uow.store.acquire(ctx); err != nil {
		return err
	}

	uow.staged = make(map[order.ID]*order.Order)
	return nil
}

// Commit makes the staged writes visible and publishes the collected events.
func (uow *UnitOfWork) Commit(ctx context.Context) error {
	if uow.staged == nil {
		return ErrNoTransaction
	}

	uow.store.apply(uow.staged)
	uow.staged = nil
	uow.store.release()

	uow.tracker.Flush(ctx, uow.publisher, uow.logger)
	return nil
}

// Rollback discards the staged writes. Identifiers handed out meanwhile are not reused.
func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if uow.staged == nil {
		return ErrNoTransaction
	}

	uow.staged = nil
	uow.store.release()

	uow.tracker.Reset()
	return nil
}

// OrderRepository writes through the staging area inside a transaction and straight
// to the store otherwise.
func (uow *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &OrderRepository{
		store:   uow.store,
		staged:  uow.staged,
		tracker: uow.tracker,
	}
}
