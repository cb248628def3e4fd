package jobs

import (
	"context"
	"log/slog"

	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/actor"
	"laundry/internal/core/domain/model/kernel"

	"github.com/robfig/cron/v3"
)

// DefaultMetricsReportSchedule fires at the top of every hour.
const DefaultMetricsReportSchedule = "0 0 * * * *"

// MetricsReportJob periodically logs platform-wide order metrics.
// It queries with an admin actor so the report covers every order.
type MetricsReportJob struct {
	handler  queries.ComputeMetricsQueryHandler
	schedule string
	reporter actor.Actor
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewMetricsReportJob creates the report job. schedule is a six-field cron
// expression (seconds first); empty selects DefaultMetricsReportSchedule.
func NewMetricsReportJob(handler queries.ComputeMetricsQueryHandler, schedule string, logger *slog.Logger) *MetricsReportJob {
	if schedule == "" {
		schedule = DefaultMetricsReportSchedule
	}
	return &MetricsReportJob{
		handler:  handler,
		schedule: schedule,
		reporter: actor.MustNewActor(kernel.NewUUID(), actor.Admin),
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "metrics_report_job"),
	}
}

// Start registers the report on its schedule and starts the scheduler.
func (j *MetricsReportJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if err := j.Run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Metrics report job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Metrics report job started", "schedule", j.schedule)
	return nil
}

// Run computes and logs one report.
func (j *MetricsReportJob) Run(ctx context.Context) error {
	query, err := queries.NewComputeMetricsQuery(j.reporter, 0, nil)
	if err != nil {
		return err
	}

	m, err := j.handler.Handle(ctx, query)
	if err != nil {
		return err
	}

	j.logger.InfoContext(ctx, "Order metrics",
		"completion_rate", m.CompletionRate,
		"total_earnings", m.TotalEarnings.String(),
		"weekly_earnings", m.WeeklyEarnings.String(),
		"weekly_deliveries", m.WeeklyDeliveries,
		"monthly_earnings", m.MonthlyEarnings.String(),
		"monthly_deliveries", m.MonthlyDeliveries,
	)
	return nil
}

// Stop stops the scheduler and waits for a running report to finish.
func (j *MetricsReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Metrics report job stopped")
}
