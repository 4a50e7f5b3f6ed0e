package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SergeyBogomolovv/shop-admin/internal/config"
)

func setBaseEnv(t *testing.T) {
	t.Setenv("CATALOG_SPREADSHEET_ID", "sheet-1")
	t.Setenv("GOOGLE_PROJECT_ID", "shop-project")
}

func TestNew_Defaults(t *testing.T) {
	setBaseEnv(t)

	cfg := config.New()

	assert.Equal(t, config.DriverFirestore, cfg.Store.Driver)
	assert.Equal(t, "shop-project", cfg.Firestore.ProjectID)
	assert.Equal(t, "shop-project", cfg.Auth.ProjectID)
	assert.Equal(t, []string{"רבבה", "יקיר"}, cfg.Export.CommissionExempt)
	assert.Equal(t, []string{"liron:לירון", "sharale:שהרלה"}, cfg.Export.StockLocations)
	assert.Equal(t, "0.1", cfg.Export.CommissionRate)
	assert.Equal(t, 5*time.Minute, cfg.Auth.AdminCacheTTL)
	assert.False(t, cfg.Kafka.Enabled)
	require.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name    string
		env     map[string]string
		wantErr bool
	}{
		{
			name:    "postgres driver needs credentials",
			env:     map[string]string{"STORE_DRIVER": "postgres"},
			wantErr: true,
		},
		{
			name: "postgres driver with credentials",
			env: map[string]string{
				"STORE_DRIVER":      "postgres",
				"POSTGRES_USER":     "shop",
				"POSTGRES_PASSWORD": "secret",
			},
		},
		{
			name:    "unknown driver",
			env:     map[string]string{"STORE_DRIVER": "mongo"},
			wantErr: true,
		},
		{
			name:    "kafka enabled with bad broker",
			env:     map[string]string{"KAFKA_ENABLED": "true", "KAFKA_BROKERS": "not a broker"},
			wantErr: true,
		},
		{
			name: "kafka enabled",
			env:  map[string]string{"KAFKA_ENABLED": "true", "KAFKA_BROKERS": "localhost:9092, kafka:9093"},
		},
		{
			name:    "invalid timezone",
			env:     map[string]string{"TIMEZONE": "Mars/Olympus"},
			wantErr: true,
		},
		{
			name:    "stock location without label",
			env:     map[string]string{"STOCK_LOCATIONS": "liron"},
			wantErr: true,
		},
		{
			name:    "invalid commission rate",
			env:     map[string]string{"COMMISSION_RATE": "ten percent"},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			setBaseEnv(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			err := config.New().Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
