// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/MKhiriev/expense-keeper/internal/adapter"
	"github.com/MKhiriev/expense-keeper/internal/mock"
	"github.com/MKhiriev/expense-keeper/internal/service"
	"github.com/MKhiriev/expense-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestClientExpenseSvc(t *testing.T, ctrl *gomock.Controller) (
	service.ClientExpenseService,
	*mock.MockServerAdapter,
	*mock.MockClientCodecService,
	*mock.MockExpenseCacheRepository,
) {
	t.Helper()
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockCodec := mock.NewMockClientCodecService(ctrl)
	mockCache := mock.NewMockExpenseCacheRepository(ctrl)

	svc := service.NewClientExpenseService(mockAdapter, mockCodec, mockCache)
	return svc, mockAdapter, mockCodec, mockCache
}

func activeTestSession() *service.Session {
	return service.NewSession(42, "alice", []byte("0123456789abcdef0123456789abcdef"))
}

// ── Session gate ─────────────────────────────────────────────────────────────

func TestClientExpenseService_ClosedSessionRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _ := newTestClientExpenseSvc(t, ctrl)
	ctx := context.Background()

	session := activeTestSession()
	session.Close()

	date := models.NewDate(2026, time.March, 15)
	rng := models.DateRange{StartDate: date, EndDate: date}

	_, err := svc.GetByDate(ctx, session, date)
	assert.ErrorIs(t, err, service.ErrNoActiveSession)
	_, err = svc.SaveForDate(ctx, session, date, nil)
	assert.ErrorIs(t, err, service.ErrNoActiveSession)
	_, err = svc.GetAll(ctx, session)
	assert.ErrorIs(t, err, service.ErrNoActiveSession)
	_, err = svc.GetByRange(ctx, session, rng)
	assert.ErrorIs(t, err, service.ErrNoActiveSession)
	_, err = svc.Update(ctx, session, models.ExpenseRecord{ID: 1})
	assert.ErrorIs(t, err, service.ErrNoActiveSession)
	assert.ErrorIs(t, svc.Delete(ctx, session, 1), service.ErrNoActiveSession)
	assert.ErrorIs(t, svc.RefreshCache(ctx, session), service.ErrNoActiveSession)
}

// ── GetByDate / SaveForDate ──────────────────────────────────────────────────

func TestClientExpenseService_GetByDate_DecodesEveryRow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockCodec, _ := newTestClientExpenseSvc(t, ctrl)
	ctx := context.Background()
	session := activeTestSession()
	date := models.NewDate(2026, time.March, 15)

	encrypted := []models.Expense{
		{ID: 1, Date: date, Amount: "ct-a1"},
		{ID: 2, Date: date, Amount: "ct-a2"},
	}
	mockAdapter.EXPECT().GetExpensesByDate(ctx, date).Return(encrypted, nil)
	mockCodec.EXPECT().DecodeExpense(encrypted[0], session.Key()).
		Return(models.ExpenseRecord{ID: 1, Date: date, Amount: 10})
	mockCodec.EXPECT().DecodeExpense(encrypted[1], session.Key()).
		Return(models.ExpenseRecord{ID: 2, Date: date, Amount: 20})

	records, err := svc.GetByDate(ctx, session, date)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, 10.0, records[0].Amount)
	assert.Equal(t, 20.0, records[1].Amount)
}

func TestClientExpenseService_SaveForDate_EncodesBeforeUpload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockCodec, _ := newTestClientExpenseSvc(t, ctrl)
	ctx := context.Background()
	session := activeTestSession()
	date := models.NewDate(2026, time.March, 15)

	record := models.ExpenseRecord{Amount: 100, Category: "Food", Notes: "lunch"}
	recordForDate := record
	recordForDate.Date = date
	encoded := models.Expense{Date: date, Amount: "ct-a", Category: "ct-c", Notes: "ct-n"}
	stored := encoded
	stored.ID = 10

	gomock.InOrder(
		mockCodec.EXPECT().EncodeExpense(recordForDate, session.Key()).Return(encoded, nil),
		mockAdapter.EXPECT().SaveExpensesForDate(ctx, date, []models.Expense{encoded}).
			Return([]models.Expense{stored}, nil),
		mockCodec.EXPECT().DecodeExpense(stored, session.Key()).
			Return(models.ExpenseRecord{ID: 10, Date: date, Amount: 100, Category: "Food", Notes: "lunch"}),
	)

	saved, err := svc.SaveForDate(ctx, session, date, []models.ExpenseRecord{record})
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, int64(10), saved[0].ID)
}

func TestClientExpenseService_SaveForDate_EncodeError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockCodec, _ := newTestClientExpenseSvc(t, ctrl)
	ctx := context.Background()
	session := activeTestSession()
	date := models.NewDate(2026, time.March, 15)

	mockCodec.EXPECT().EncodeExpense(gomock.Any(), session.Key()).
		Return(models.Expense{}, fmt.Errorf("encrypt amount: cipher init failed"))

	_, err := svc.SaveForDate(ctx, session, date, []models.ExpenseRecord{{Amount: 1}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "encoding expense failed")
}

// ── GetAll and the offline cache ─────────────────────────────────────────────

func TestClientExpenseService_GetAll_RefreshesCacheOnSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockCodec, mockCache := newTestClientExpenseSvc(t, ctrl)
	ctx := context.Background()
	session := activeTestSession()

	encrypted := []models.Expense{{ID: 1, Amount: "ct"}}
	mockAdapter.EXPECT().GetAllExpenses(ctx).Return(encrypted, nil)
	mockCache.EXPECT().ReplaceAll(ctx, int64(42), encrypted).Return(nil)
	mockCodec.EXPECT().DecodeExpense(encrypted[0], session.Key()).
		Return(models.ExpenseRecord{ID: 1, Amount: 10})

	records, err := svc.GetAll(ctx, session)
	require.NoError(t, err)
	require.Len(t, records, 1)
}

func TestClientExpenseService_GetAll_FallsBackToCacheWhenOffline(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockCodec, mockCache := newTestClientExpenseSvc(t, ctrl)
	ctx := context.Background()
	session := activeTestSession()

	cached := []models.Expense{{ID: 1, Amount: "ct"}}
	mockAdapter.EXPECT().GetAllExpenses(ctx).Return(nil, fmt.Errorf("dial tcp: connection refused"))
	mockCache.EXPECT().GetAll(ctx, int64(42)).Return(cached, nil)
	mockCodec.EXPECT().DecodeExpense(cached[0], session.Key()).
		Return(models.ExpenseRecord{ID: 1, Amount: 10})

	records, err := svc.GetAll(ctx, session)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 10.0, records[0].Amount)
}

func TestClientExpenseService_GetAll_OfflineAndEmptyCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _, mockCache := newTestClientExpenseSvc(t, ctrl)
	ctx := context.Background()
	session := activeTestSession()

	serverErr := fmt.Errorf("dial tcp: connection refused")
	mockAdapter.EXPECT().GetAllExpenses(ctx).Return(nil, serverErr)
	mockCache.EXPECT().GetAll(ctx, int64(42)).Return(nil, fmt.Errorf("database is locked"))

	_, err := svc.GetAll(ctx, session)
	require.Error(t, err)
	assert.ErrorIs(t, err, serverErr)
}

func TestClientExpenseService_GetAll_CacheWriteFailureIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockCodec, mockCache := newTestClientExpenseSvc(t, ctrl)
	ctx := context.Background()
	session := activeTestSession()

	encrypted := []models.Expense{{ID: 1, Amount: "ct"}}
	mockAdapter.EXPECT().GetAllExpenses(ctx).Return(encrypted, nil)
	mockCache.EXPECT().ReplaceAll(ctx, int64(42), encrypted).Return(fmt.Errorf("disk full"))
	mockCodec.EXPECT().DecodeExpense(encrypted[0], session.Key()).
		Return(models.ExpenseRecord{ID: 1, Amount: 10})

	records, err := svc.GetAll(ctx, session)
	require.NoError(t, err)
	require.Len(t, records, 1)
}

// ── Update / Delete ──────────────────────────────────────────────────────────

// A 404 from the wire has no business mapping: the server answers expense
// updates vacuously, so a real 404 means something is off (wrong base URL,
// incompatible server) and the transport error must reach the caller intact.
func TestClientExpenseService_Update_WireNotFoundPassesThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockCodec, _ := newTestClientExpenseSvc(t, ctrl)
	ctx := context.Background()
	session := activeTestSession()

	record := models.ExpenseRecord{ID: 5, Amount: 10}
	encoded := models.Expense{ID: 5, Amount: "ct"}

	mockCodec.EXPECT().EncodeExpense(record, session.Key()).Return(encoded, nil)
	mockAdapter.EXPECT().UpdateExpense(ctx, encoded).
		Return(models.Expense{}, fmt.Errorf("%w: 404 page not found", adapter.ErrNotFound))

	_, err := svc.Update(ctx, session, record)
	assert.ErrorIs(t, err, adapter.ErrNotFound)
}

func TestClientExpenseService_Update_InvalidID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _ := newTestClientExpenseSvc(t, ctrl)

	_, err := svc.Update(context.Background(), activeTestSession(), models.ExpenseRecord{ID: 0})
	assert.ErrorIs(t, err, service.ErrInvalidDataProvided)
}

func TestClientExpenseService_Delete_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _, _ := newTestClientExpenseSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().DeleteExpense(ctx, int64(5)).Return(nil)

	require.NoError(t, svc.Delete(ctx, activeTestSession(), 5))
}

// ── RefreshCache ─────────────────────────────────────────────────────────────

func TestClientExpenseService_RefreshCache_StoresCiphertextSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _, mockCache := newTestClientExpenseSvc(t, ctrl)
	ctx := context.Background()
	session := activeTestSession()

	encrypted := []models.Expense{{ID: 1, Amount: "ct-a", Category: "ct-c", Notes: "ct-n"}}
	gomock.InOrder(
		mockAdapter.EXPECT().GetAllExpenses(ctx).Return(encrypted, nil),
		// Rows go into the cache exactly as received: still encrypted.
		mockCache.EXPECT().ReplaceAll(ctx, int64(42), encrypted).Return(nil),
	)

	require.NoError(t, svc.RefreshCache(ctx, session))
}

func TestClientExpenseService_RefreshCache_ServerError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _, _ := newTestClientExpenseSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().GetAllExpenses(ctx).Return(nil, fmt.Errorf("dial tcp: connection refused"))

	err := svc.RefreshCache(ctx, activeTestSession())
	require.Error(t, err)
}
