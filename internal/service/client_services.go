package service

import (
	"github.com/MKhiriev/expense-keeper/internal/adapter"
	"github.com/MKhiriev/expense-keeper/internal/crypto"
	"github.com/MKhiriev/expense-keeper/internal/store"
)

type ClientServices struct {
	CodecService     ClientCodecService
	AuthService      ClientAuthService
	ExpenseService   ClientExpenseService
	AnalyticsService ClientAnalyticsService
	RefreshJob       ClientRefreshJob
}

func NewClientServices(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, keys crypto.KeyService) *ClientServices {
	codecSvc := NewClientCodecService(keys)
	authSvc := NewClientAuthService(serverAdapter, keys)
	expenseSvc := NewClientExpenseService(serverAdapter, codecSvc, localStore.ExpenseCache)

	return &ClientServices{
		CodecService:     codecSvc,
		AuthService:      authSvc,
		ExpenseService:   expenseSvc,
		AnalyticsService: NewClientAnalyticsService(),
		RefreshJob:       NewClientRefreshJob(expenseSvc),
	}
}
