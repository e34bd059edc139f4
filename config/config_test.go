package config

import (
	"testing"

	"hqd-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "DB_PATH", "CORS_ORIGINS", "LEAD_RATE_PER_MINUTE", "EMAIL_ENABLED", "ADMIN_EMAIL", "ADMIN_PASSWORD_HASH", "BACKEND_URL", "JWT_SECRET", "SMTP_HOST", "SMTP_PORT"} {
		t.Setenv(k, "")
	}
	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "hqd.db", cfg.DBPath)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, 5, cfg.LeadRatePerMinute)
	assert.False(t, cfg.EmailEnabled)
	assert.Empty(t, cfg.BackendURL)
	assert.Equal(t, "587", cfg.SMTPPort)

	// without a configured secret each process signs with its own random key
	assert.Len(t, cfg.JWTSecret, MinJWTSecretLen)
	again, err := FromEnv()
	require.NoError(t, err)
	assert.NotEqual(t, cfg.JWTSecret, again.JWTSecret)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("CORS_ORIGINS", "https://hqd.in, https://www.hqd.in ,")
	t.Setenv("LEAD_RATE_PER_MINUTE", "12")
	t.Setenv("EMAIL_ENABLED", "TRUE")
	t.Setenv("SMTP_HOST", "smtp.hqd.in")
	t.Setenv("ADMIN_EMAIL", "ops@hqd.in")
	t.Setenv("ADMIN_PASSWORD_HASH", "$2a$10$abc")
	t.Setenv("JWT_SECRET", "0123456789abcdef0123456789abcdef")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, []string{"https://hqd.in", "https://www.hqd.in"}, cfg.CORSOrigins)
	assert.Equal(t, 12, cfg.LeadRatePerMinute)
	assert.True(t, cfg.EmailEnabled)
	assert.Equal(t, "ops@hqd.in", cfg.AdminEmail)
	assert.Equal(t, "smtp.hqd.in", cfg.SMTPHost)
	assert.Equal(t, []byte("0123456789abcdef0123456789abcdef"), cfg.JWTSecret)
}

func TestFromEnv_Invalid(t *testing.T) {
	t.Run("bad rate", func(t *testing.T) {
		t.Setenv("LEAD_RATE_PER_MINUTE", "lots")
		_, err := FromEnv()
		assert.ErrorContains(t, err, "LEAD_RATE_PER_MINUTE")
	})

	t.Run("admin email without hash", func(t *testing.T) {
		t.Setenv("LEAD_RATE_PER_MINUTE", "")
		t.Setenv("ADMIN_EMAIL", "ops@hqd.in")
		t.Setenv("ADMIN_PASSWORD_HASH", "")
		_, err := FromEnv()
		assert.ErrorContains(t, err, "must be set together")
	})

	t.Run("admin without jwt secret", func(t *testing.T) {
		t.Setenv("LEAD_RATE_PER_MINUTE", "")
		t.Setenv("ADMIN_EMAIL", "ops@hqd.in")
		t.Setenv("ADMIN_PASSWORD_HASH", "$2a$10$abc")
		t.Setenv("JWT_SECRET", "")
		_, err := FromEnv()
		assert.ErrorContains(t, err, "JWT_SECRET")
	})

	t.Run("admin with short jwt secret", func(t *testing.T) {
		t.Setenv("LEAD_RATE_PER_MINUTE", "")
		t.Setenv("ADMIN_EMAIL", "ops@hqd.in")
		t.Setenv("ADMIN_PASSWORD_HASH", "$2a$10$abc")
		t.Setenv("JWT_SECRET", "hqd_change_me_in_production")
		_, err := FromEnv()
		assert.ErrorContains(t, err, "JWT_SECRET")
	})

	t.Run("email without smtp host", func(t *testing.T) {
		t.Setenv("LEAD_RATE_PER_MINUTE", "")
		t.Setenv("ADMIN_EMAIL", "")
		t.Setenv("ADMIN_PASSWORD_HASH", "")
		t.Setenv("EMAIL_ENABLED", "true")
		t.Setenv("SMTP_HOST", "")
		_, err := FromEnv()
		assert.ErrorContains(t, err, "SMTP_HOST")
	})
}

func TestInitDB_Migrates(t *testing.T) {
	db, err := InitDB(":memory:")
	require.NoError(t, err)

	assert.True(t, db.Migrator().HasTable(&models.Lead{}))
	assert.True(t, db.Migrator().HasTable(&models.LeadStatusHistory{}))
	assert.True(t, db.Migrator().HasTable(&models.Staff{}))
}

func TestSeedAdmin(t *testing.T) {
	db, err := InitDB(":memory:")
	require.NoError(t, err)

	require.NoError(t, SeedAdmin(db, "", "ignored"))
	var count int64
	db.Model(&models.Staff{}).Count(&count)
	assert.Zero(t, count)

	require.NoError(t, SeedAdmin(db, "ops@hqd.in", "$2a$10$first"))
	require.NoError(t, SeedAdmin(db, "ops@hqd.in", "$2a$10$second"))

	var staff []models.Staff
	require.NoError(t, db.Find(&staff).Error)
	require.Len(t, staff, 1)
	assert.Equal(t, models.RoleAdmin, staff[0].Role)
	assert.Equal(t, "$2a$10$second", staff[0].PasswordHash)
}
