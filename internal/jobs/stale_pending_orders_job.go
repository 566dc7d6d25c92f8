package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"icecream/internal/core/application/usecases/queries"
	"icecream/internal/core/domain/model/order"
)

// DefaultStalePendingSchedule runs the check at the top of every minute.
const DefaultStalePendingSchedule = "0 * * * * *"

// StalePendingGauge receives the number of stale orders found by each run.
type StalePendingGauge interface {
	SetStalePending(n int)
}

// StalePendingOrdersJob periodically looks for orders stuck in Pending and reports
// them. It only reads; nothing is cancelled or changed.
type StalePendingOrdersJob struct {
	handler  queries.GetStalePendingOrdersQueryHandler
	query    queries.GetStalePendingOrdersQuery
	gauge    StalePendingGauge
	schedule string
	cron     *cron.Cron
	logger   logrus.FieldLogger
}

// NewStalePendingOrdersJob creates the job. Orders pending for longer than olderThan
// are reported; schedule is a six-field cron expression (seconds first) and falls
// back to DefaultStalePendingSchedule when empty. gauge may be nil.
func NewStalePendingOrdersJob(
	handler queries.GetStalePendingOrdersQueryHandler,
	olderThan time.Duration,
	schedule string,
	gauge StalePendingGauge,
	logger logrus.FieldLogger,
) (*StalePendingOrdersJob, error) {
	query, err := queries.NewGetStalePendingOrdersQuery(olderThan)
	if err != nil {
		return nil, err
	}
	if schedule == "" {
		schedule = DefaultStalePendingSchedule
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &StalePendingOrdersJob{
		handler:  handler,
		query:    query,
		gauge:    gauge,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger: logger.WithFields(logrus.Fields{
			"component":  "stale_pending_orders_job",
			"older_than": olderThan.String(),
		}),
	}, nil
}

func (j *StalePendingOrdersJob) Name() string {
	return "stale pending orders"
}

// Start schedules the check.
func (j *StalePendingOrdersJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		if _, err := j.Run(context.Background()); err != nil {
			j.logger.WithError(err).Error("Stale pending orders check failed")
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.WithField("schedule", j.schedule).Info("Stale pending orders job started")
	return nil
}

// Stop unschedules the check and waits for a running one to finish.
func (j *StalePendingOrdersJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Stale pending orders job stopped")
}

// Run performs one check and returns the number of stale orders.
func (j *StalePendingOrdersJob) Run(ctx context.Context) (int, error) {
	stale, err := j.handler.Handle(ctx, j.query)
	if err != nil {
		return 0, err
	}

	if j.gauge != nil {
		j.gauge.SetStalePending(len(stale))
	}

	if len(stale) > 0 {
		j.logger.WithFields(logrus.Fields{
			"count":     len(stale),
			"order_ids": orderIDs(stale),
		}).Warn("Orders waiting in PENDING too long")
	}

	return len(stale), nil
}

func orderIDs(orders []*order.Order) []int64 {
	ids := make([]int64, len(orders))
	for i, o := range orders {
		ids[i] = int64(o.ID())
	}
	return ids
}
