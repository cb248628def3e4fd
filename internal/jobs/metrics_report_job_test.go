package jobs_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"laundry/internal/adapters/out/memory"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var reportNow = time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

// syncBuffer lets the cron goroutine and the test share one log sink.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) records(t *testing.T) []map[string]any {
	t.Helper()
	b.mu.Lock()
	defer b.mu.Unlock()

	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(b.buf.String()), "\n") {
		if line == "" {
			continue
		}
		var record map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &record))
		out = append(out, record)
	}
	return out
}

func findRecord(records []map[string]any, msg string) map[string]any {
	for _, record := range records {
		if record["msg"] == msg {
			return record
		}
	}
	return nil
}

func seed(t *testing.T, store *memory.Store, number int, status order.Status) {
	t.Helper()

	item, err := order.NewItem("wash_and_fold", 1)
	require.NoError(t, err)
	price, err := kernel.MoneyFromString("30")
	require.NoError(t, err)

	var rider *kernel.UUID
	if status == order.InTransit || status == order.Delivered {
		id := kernel.NewUUID()
		rider = &id
	}

	o, err := order.RestoreOrder(order.State{
		ID:               kernel.NewUUID(),
		Number:           number,
		Workflow:         order.Delivery,
		Status:           status,
		CustomerID:       kernel.NewUUID(),
		DeliveryPersonID: rider,
		CreatedAt:        reportNow.Add(-2 * time.Hour),
		UpdatedAt:        reportNow.Add(-time.Hour),
		Price:            price,
		Items:            []order.Item{item},
	})
	require.NoError(t, err)
	require.NoError(t, store.Add(t.Context(), o))
}

func newHandler(store *memory.Store) queries.ComputeMetricsQueryHandler {
	return queries.NewComputeMetricsQueryHandler(store, queries.MetricsDefaults{
		Now: func() time.Time { return reportNow },
	})
}

func TestMetricsReportJob_Run(t *testing.T) {
	t.Run("should log metrics over every order", func(t *testing.T) {
		store := memory.NewStore()
		seed(t, store, 1001, order.Delivered)
		seed(t, store, 1002, order.Delivered)
		seed(t, store, 1003, order.Pending)
		seed(t, store, 1004, order.InTransit)

		sink := &syncBuffer{}
		job := jobs.NewMetricsReportJob(newHandler(store), "", slog.New(slog.NewJSONHandler(sink, nil)))

		require.NoError(t, job.Run(t.Context()))

		record := findRecord(sink.records(t), "Order metrics")
		require.NotNil(t, record)
		assert.Equal(t, "metrics_report_job", record["component"])
		assert.EqualValues(t, 50, record["completion_rate"])
		assert.Equal(t, "30.00", record["total_earnings"])
		assert.EqualValues(t, 2, record["weekly_deliveries"])
		assert.EqualValues(t, 2, record["monthly_deliveries"])
	})

	t.Run("should report an empty store", func(t *testing.T) {
		sink := &syncBuffer{}
		job := jobs.NewMetricsReportJob(newHandler(memory.NewStore()), "", slog.New(slog.NewJSONHandler(sink, nil)))

		require.NoError(t, job.Run(t.Context()))

		record := findRecord(sink.records(t), "Order metrics")
		require.NotNil(t, record)
		assert.EqualValues(t, 0, record["completion_rate"])
		assert.Equal(t, "0.00", record["total_earnings"])
	})
}

func TestMetricsReportJob_StartStop(t *testing.T) {
	t.Run("should report on schedule", func(t *testing.T) {
		sink := &syncBuffer{}
		job := jobs.NewMetricsReportJob(newHandler(memory.NewStore()), "* * * * * *", slog.New(slog.NewJSONHandler(sink, nil)))

		require.NoError(t, job.Start())
		assert.Eventually(t, func() bool {
			return findRecord(sink.records(t), "Order metrics") != nil
		}, 3*time.Second, 50*time.Millisecond)
		job.Stop()

		assert.NotNil(t, findRecord(sink.records(t), "Metrics report job stopped"))
	})

	t.Run("should reject an invalid schedule", func(t *testing.T) {
		job := jobs.NewMetricsReportJob(newHandler(memory.NewStore()), "every hour", slog.New(slog.NewJSONHandler(&syncBuffer{}, nil)))

		require.Error(t, job.Start())
	})
}

func TestJobManager(t *testing.T) {
	t.Run("should fail to start with an invalid schedule", func(t *testing.T) {
		manager := jobs.NewJobManager(newHandler(memory.NewStore()), "not a cron", slog.New(slog.NewJSONHandler(&syncBuffer{}, nil)))

		err := manager.StartAll()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "metrics report job")
	})

	t.Run("should start and stop all jobs", func(t *testing.T) {
		manager := jobs.NewJobManager(newHandler(memory.NewStore()), "", slog.New(slog.NewJSONHandler(&syncBuffer{}, nil)))

		require.NoError(t, manager.StartAll())
		manager.StopAll()
	})
}
