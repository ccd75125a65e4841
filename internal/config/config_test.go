package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_MODE", "dev")
	t.Setenv("DB_DRIVER", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsDev())
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, "3306", cfg.Database.Port)
	assert.Equal(t, int64(10<<20), cfg.Upload.MaxBytes)
	assert.Equal(t, "career-documents", cfg.Storage.DocumentBucket)
	assert.Equal(t, "certificates", cfg.Storage.CertificateBucket)
	assert.Equal(t, "*", cfg.GetAllowedOrigins())
	assert.Same(t, cfg, AppConfig)
}

func TestLoad_PostgresProd(t *testing.T) {
	t.Setenv("APP_MODE", "prod")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("PROD_DB_HOST", "db.internal")
	t.Setenv("PROD_JWT_SECRET", "s1")
	t.Setenv("PROD_JWT_REFRESH_SECRET", "s2")
	t.Setenv("UPLOAD_MAX_MB", "3")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsProd())
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, int64(3<<20), cfg.Upload.MaxBytes)
}

func TestLoad_Rejects(t *testing.T) {
	t.Run("unknown mode", func(t *testing.T) {
		t.Setenv("APP_MODE", "staging")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("unknown driver", func(t *testing.T) {
		t.Setenv("APP_MODE", "dev")
		t.Setenv("DB_DRIVER", "oracle")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("default secrets in prod", func(t *testing.T) {
		t.Setenv("APP_MODE", "prod")
		t.Setenv("DB_DRIVER", "mysql")
		t.Setenv("PROD_JWT_SECRET", "")
		_, err := Load()
		assert.Error(t, err)
	})
}

func TestDialector(t *testing.T) {
	d, err := Dialector(DatabaseConfig{Driver: "postgres", Host: "h", Port: "5432", User: "u", DBName: "n", SSLMode: "disable"})
	require.NoError(t, err)
	assert.Equal(t, "postgres", d.Name())

	d, err = Dialector(DatabaseConfig{Driver: "mysql"})
	require.NoError(t, err)
	assert.Equal(t, "mysql", d.Name())

	_, err = Dialector(DatabaseConfig{Driver: "sqlite"})
	assert.Error(t, err)
}

func TestDSN(t *testing.T) {
	d := DatabaseConfig{Host: "h", Port: "1", User: "u", Password: "p", DBName: "n", SSLMode: "require"}
	assert.Equal(t, "u:p@tcp(h:1)/n?charset=utf8mb4&parseTime=True&loc=UTC", buildMySQLDSN(d))
	assert.Equal(t, "host=h port=1 user=u password=p dbname=n sslmode=require TimeZone=UTC", buildPostgresDSN(d))
}
