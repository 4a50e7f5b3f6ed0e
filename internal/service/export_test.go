package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/SergeyBogomolovv/shop-admin/internal/entities"
	"github.com/SergeyBogomolovv/shop-admin/internal/report"
	"github.com/SergeyBogomolovv/shop-admin/internal/service"
	mocks "github.com/SergeyBogomolovv/shop-admin/internal/service/mocks"
	"github.com/SergeyBogomolovv/shop-admin/pkg/table"
)

var israel = time.FixedZone("IST", 2*60*60)

func exportOptions() service.ExportOptions {
	return service.ExportOptions{
		TitlePrefix: "shop",
		Report: report.Options{
			FrontendBaseURL:  "https://shop.example",
			CommissionRate:   decimal.RequireFromString("0.1"),
			CommissionExempt: []string{"רבבה"},
			StockLocations:   []report.StockLocation{{Key: "liron", Label: "לירון"}},
			Location:         israel,
		},
		Now: func() time.Time { return time.Date(2026, 1, 2, 8, 0, 0, 0, time.UTC) },
	}
}

func storedOrders() []entities.Document {
	product := map[string]any{
		"id": "tights_40_long_M_black", "kind": "tights", "denier": 40, "leg": "long",
		"size": "M", "color": "black", "supplier": "acme",
	}
	return []entities.Document{
		{
			"id": "o1", "firstName": "Dana", "lastName": "Cohen", "prefferedPickupLocation": "ariel",
			"totalCost": 100, "totalCostAfterDiscount": 90,
			"products": []any{map[string]any{"amount": 2, "product": product}},
		},
		{
			"id": "o2", "firstName": "Noa", "lastName": "Levi", "prefferedPickupLocation": "רבבה",
			"totalCost": 50, "totalCostAfterDiscount": 45,
			"products": []any{map[string]any{"amount": 1, "product": product}},
		},
	}
}

func TestExportService_Export(t *testing.T) {
	store := mocks.NewMockDocumentStore(t)
	publisher := mocks.NewMockPublisher(t)
	admins := mocks.NewMockAdminLister(t)
	events := mocks.NewMockEventPublisher(t)

	store.EXPECT().ReadCollection(mock.Anything, "orders").Return(storedOrders(), nil)
	store.EXPECT().ReadCollection(mock.Anything, "products").Return([]entities.Document{{
		"id": "tights_40_long_M_black", "kind": "tights", "denier": 40, "leg": "long", "size": "M",
		"color": "black", "supplier": "acme", "stock_liron": 1, "units_in_package": 2, "price": "3.5",
	}}, nil)
	store.EXPECT().ReadCollection(mock.Anything, "sales").Return([]entities.Document{{
		"name": "winter", "start_date": "01/01/2026 00:00", "end_date": "31/01/2026 23:59",
	}}, nil)
	admins.EXPECT().AllowedAdmins(mock.Anything).Return([]string{"admin@example.com"}, nil)

	var published []*table.Table
	publisher.EXPECT().
		Publish(mock.Anything, "shop@2026-01-02 10:00:00", mock.Anything, []string{"admin@example.com"}).
		RunAndReturn(func(_ context.Context, _ string, tabs []*table.Table, _ []string) (string, error) {
			published = tabs
			return "https://docs.google.com/spreadsheets/d/abc", nil
		})
	events.EXPECT().Publish(mock.Anything, mock.MatchedBy(func(e entities.Event) bool {
		return e.Type == entities.EventOrdersExported
	})).Return(nil)

	svc := service.NewExportService(discardLogger, store, publisher, admins, events, exportOptions(), fastRetry)
	url, err := svc.Export(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "https://docs.google.com/spreadsheets/d/abc", url)

	require.Len(t, published, 5)
	suppliers := published[3]
	assert.Equal(t, report.TabSuppliers, suppliers.Name)
	require.Equal(t, 1, suppliers.Len())
	// 3 ordered, 1 in stock, packages of 2
	assert.Equal(t, []any{1}, suppliers.Column("כמה אריזות להזמין"))

	summary := published[4].Records()
	assert.Equal(t, "winter", summary[0]["ערך"])
	assert.Equal(t, "סכום עמלות ללא רבבה", summary[5]["נתון"])
	assert.True(t, decimal.RequireFromString("9").Equal(summary[5]["ערך"].(decimal.Decimal)))
}

func TestExportService_Export_Errors(t *testing.T) {
	dbError := errors.New("db error")
	publishError := errors.New("quota exceeded")

	t.Run("read fails", func(t *testing.T) {
		store := mocks.NewMockDocumentStore(t)
		admins := mocks.NewMockAdminLister(t)
		store.EXPECT().ReadCollection(mock.Anything, mock.Anything).Return(nil, dbError)
		admins.EXPECT().AllowedAdmins(mock.Anything).Return(nil, nil).Maybe()

		svc := service.NewExportService(discardLogger, store, mocks.NewMockPublisher(t), admins, mocks.NewMockEventPublisher(t), exportOptions(), fastRetry)
		_, err := svc.Export(context.Background())
		assert.ErrorIs(t, err, dbError)
	})

	t.Run("publish fails", func(t *testing.T) {
		store := mocks.NewMockDocumentStore(t)
		admins := mocks.NewMockAdminLister(t)
		publisher := mocks.NewMockPublisher(t)
		store.EXPECT().ReadCollection(mock.Anything, mock.Anything).Return(nil, nil)
		admins.EXPECT().AllowedAdmins(mock.Anything).Return(nil, nil)
		publisher.EXPECT().Publish(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("", publishError)

		svc := service.NewExportService(discardLogger, store, publisher, admins, mocks.NewMockEventPublisher(t), exportOptions(), fastRetry)
		_, err := svc.Export(context.Background())
		assert.ErrorIs(t, err, publishError)
	})
}
