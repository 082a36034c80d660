package service_test

import (
	"bytes"
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/expense-keeper/internal/service"
	"github.com/MKhiriev/expense-keeper/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spyExpenseService counts RefreshCache calls; everything else is a stub.
type spyExpenseService struct {
	refreshCalls atomic.Int64
	refreshErr   error
}

func (s *spyExpenseService) GetByDate(context.Context, *service.Session, models.Date) ([]models.ExpenseRecord, error) {
	return nil, nil
}

func (s *spyExpenseService) SaveForDate(context.Context, *service.Session, models.Date, []models.ExpenseRecord) ([]models.ExpenseRecord, error) {
	return nil, nil
}

func (s *spyExpenseService) GetAll(context.Context, *service.Session) ([]models.ExpenseRecord, error) {
	return nil, nil
}

func (s *spyExpenseService) GetByRange(context.Context, *service.Session, models.DateRange) ([]models.ExpenseRecord, error) {
	return nil, nil
}

func (s *spyExpenseService) Update(context.Context, *service.Session, models.ExpenseRecord) (models.ExpenseRecord, error) {
	return models.ExpenseRecord{}, nil
}

func (s *spyExpenseService) Delete(context.Context, *service.Session, int64) error {
	return nil
}

func (s *spyExpenseService) RefreshCache(context.Context, *service.Session) error {
	s.refreshCalls.Add(1)
	return s.refreshErr
}

// ── Start / Stop ─────────────────────────────────────────────────────────────

func TestClientRefreshJob_Start_RefreshesPeriodically(t *testing.T) {
	spy := &spyExpenseService{}
	job := service.NewClientRefreshJob(spy)
	session := activeTestSession()

	job.Start(context.Background(), session, 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	got := spy.refreshCalls.Load()
	assert.GreaterOrEqual(t, got, int64(3), "RefreshCache should tick repeatedly, got %d calls", got)
}

func TestClientRefreshJob_Stop_HaltsRefreshing(t *testing.T) {
	spy := &spyExpenseService{}
	job := service.NewClientRefreshJob(spy)

	job.Start(context.Background(), activeTestSession(), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	callsAfterStop := spy.refreshCalls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, callsAfterStop, spy.refreshCalls.Load(), "no refreshes may happen after Stop")
}

func TestClientRefreshJob_Stop_BeforeStart_NoPanic(t *testing.T) {
	job := service.NewClientRefreshJob(&spyExpenseService{})
	assert.NotPanics(t, func() { job.Stop() })
}

func TestClientRefreshJob_DoubleStop_NoPanic(t *testing.T) {
	job := service.NewClientRefreshJob(&spyExpenseService{})

	job.Start(context.Background(), activeTestSession(), 10*time.Millisecond)
	job.Stop()
	assert.NotPanics(t, func() { job.Stop() })
}

func TestClientRefreshJob_Restart_ReplacesPreviousJob(t *testing.T) {
	spy := &spyExpenseService{}
	job := service.NewClientRefreshJob(spy)
	ctx := context.Background()

	job.Start(ctx, activeTestSession(), 10*time.Millisecond)
	// Second Start must stop the first goroutine; both ticking at once would
	// double the refresh rate.
	job.Start(ctx, activeTestSession(), 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	got := spy.refreshCalls.Load()
	assert.LessOrEqual(t, got, int64(8), "restart must not leave two tickers running, got %d calls", got)
}

func TestClientRefreshJob_ContextCancelStopsJob(t *testing.T) {
	spy := &spyExpenseService{}
	job := service.NewClientRefreshJob(spy)
	ctx, cancel := context.WithCancel(context.Background())

	job.Start(ctx, activeTestSession(), 10*time.Millisecond)
	cancel()
	time.Sleep(30 * time.Millisecond)

	callsAfterCancel := spy.refreshCalls.Load()
	time.Sleep(30 * time.Millisecond)
	require.Equal(t, callsAfterCancel, spy.refreshCalls.Load())

	job.Stop()
}

func TestClientRefreshJob_LogsFailedRefreshes(t *testing.T) {
	spy := &spyExpenseService{refreshErr: errors.New("dial tcp: connection refused")}
	job := service.NewClientRefreshJob(spy)

	var buf bytes.Buffer
	ctx := zerolog.New(&buf).WithContext(context.Background())

	job.Start(ctx, activeTestSession(), 10*time.Millisecond)
	time.Sleep(35 * time.Millisecond)
	job.Stop()

	require.GreaterOrEqual(t, spy.refreshCalls.Load(), int64(1))
	assert.Contains(t, buf.String(), "background cache refresh failed")
	assert.Contains(t, buf.String(), "connection refused")
}

// ── Session close during refresh ─────────────────────────────────────────────

func TestClientRefreshJob_ClosedSessionErrorsAreSwallowed(t *testing.T) {
	spy := &spyExpenseService{refreshErr: service.ErrNoActiveSession}
	job := service.NewClientRefreshJob(spy)

	session := activeTestSession()
	session.Close()

	// The job keeps ticking even when every refresh fails; transient server
	// outages and logout races must not kill the goroutine.
	assert.NotPanics(t, func() {
		job.Start(context.Background(), session, 10*time.Millisecond)
		time.Sleep(35 * time.Millisecond)
		job.Stop()
	})
	assert.GreaterOrEqual(t, spy.refreshCalls.Load(), int64(1))
}
