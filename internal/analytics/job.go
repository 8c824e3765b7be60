package analytics

import (
	"context"
	"time"

	"parcel-tracking-service/internal/domain"
	"parcel-tracking-service/internal/logx"
)

// deliveryLister loads the full record set for one aggregation run.
type deliveryLister interface {
	List(ctx context.Context) ([]domain.Delivery, error)
}

// Job is the one-shot offline analysis run: load everything, aggregate,
// export. It never runs inside request handling.
type Job struct {
	store    deliveryLister
	exporter *Exporter
	logger   logx.Logger
	now      func() time.Time
}

// NewJob creates an analysis Job.
func NewJob(store deliveryLister, exporter *Exporter, logger logx.Logger) *Job {
	return &Job{
		store:    store,
		exporter: exporter,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Run executes one aggregation pass and writes the report artifact.
// If the underlying read fails the whole run fails; no partial report
// is written.
func (j *Job) Run(ctx context.Context) (Snapshot, error) {
	deliveries, err := j.store.List(ctx)
	if err != nil {
		return Snapshot{}, err
	}

	snap := Aggregate(deliveries, j.now())

	if err := j.exporter.Export(snap); err != nil {
		return Snapshot{}, err
	}

	j.logger.Info("analysis report written",
		logx.String("path", j.exporter.Path()),
		logx.Int("deliveries", snap.TotalDeliveries),
	)
	return snap, nil
}
