package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/Ferosd/tonelify-sub000/internal/clock"
	quotadomain "github.com/Ferosd/tonelify-sub000/internal/quota/domain"
	"github.com/Ferosd/tonelify-sub000/internal/quota/repository"
	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"
)

func newQuotaService(t *testing.T) *Service {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// Serialize writes so concurrent upserts do not trip SQLITE_BUSY.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Exec(`CREATE TABLE quota_records (
		id BIGINT PRIMARY KEY,
		user_id TEXT NOT NULL,
		period_key TEXT NOT NULL,
		used_count BIGINT NOT NULL DEFAULT 0,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL,
		UNIQUE (user_id, period_key)
	)`).Error)

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	return &Service{
		db:    db,
		log:   zaptest.NewLogger(t),
		genID: node,
		clock: clock.NewFakeClock(time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)),
		repo:  repository.Provide(),
	}
}

func TestCurrentUsageZeroWhenAbsent(t *testing.T) {
	svc := newQuotaService(t)

	used, err := svc.CurrentUsage(context.Background(), "user_1", "2026-08")
	assert.NoError(t, err)
	assert.Equal(t, int64(0), used)
}

func TestIncrementUsageCreatesThenIncrements(t *testing.T) {
	svc := newQuotaService(t)
	ctx := context.Background()

	require.NoError(t, svc.IncrementUsage(ctx, "user_1", "2026-08"))
	used, err := svc.CurrentUsage(ctx, "user_1", "2026-08")
	require.NoError(t, err)
	assert.Equal(t, int64(1), used)

	require.NoError(t, svc.IncrementUsage(ctx, "user_1", "2026-08"))
	used, err = svc.CurrentUsage(ctx, "user_1", "2026-08")
	require.NoError(t, err)
	assert.Equal(t, int64(2), used)
}

func TestIncrementUsageIsolatesPeriods(t *testing.T) {
	svc := newQuotaService(t)
	ctx := context.Background()

	require.NoError(t, svc.IncrementUsage(ctx, "user_1", "2026-08"))
	require.NoError(t, svc.IncrementUsage(ctx, "user_1", "2026-09"))

	used, err := svc.CurrentUsage(ctx, "user_1", "2026-08")
	require.NoError(t, err)
	assert.Equal(t, int64(1), used)

	used, err = svc.CurrentUsage(ctx, "user_1", "2026-09")
	require.NoError(t, err)
	assert.Equal(t, int64(1), used)
}

func TestIncrementUsageConcurrent(t *testing.T) {
	svc := newQuotaService(t)
	ctx := context.Background()

	const n = 25
	var wg sync.WaitGroup
	errs := make(chan error, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- svc.IncrementUsage(ctx, "user_1", "2026-08")
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	used, err := svc.CurrentUsage(ctx, "user_1", "2026-08")
	require.NoError(t, err)
	assert.Equal(t, int64(n), used)
}

func TestPeriodKeyIsCalendarMonth(t *testing.T) {
	assert.Equal(t, "2026-08", quotadomain.PeriodKey(time.Date(2026, 8, 31, 23, 59, 0, 0, time.UTC)))
	assert.Equal(t, "2026-09", quotadomain.PeriodKey(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)))
}
