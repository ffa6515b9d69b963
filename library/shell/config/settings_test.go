package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chalhotra/LibMgmt/library/core"
	"github.com/Chalhotra/LibMgmt/library/shell/config"
)

func missingEnvFile(t *testing.T) string {
	t.Helper()

	return filepath.Join(t.TempDir(), "missing.env")
}

func Test_Load_Defaults(t *testing.T) {
	// arrange
	t.Setenv("DB_ADAPTER", "")
	t.Setenv("JWT_TTL", "")

	// act
	settings, err := config.Load(missingEnvFile(t))

	// assert
	require.NoError(t, err)
	assert.Equal(t, config.AdapterPGX, settings.DBAdapter)
	assert.Equal(t, 24*time.Hour, settings.JWTTTL)
	assert.Equal(t, core.DefaultPolicy(), settings.Policy.ToPolicy())
}

func Test_Load_FromEnvironment(t *testing.T) {
	// arrange
	t.Setenv("DB_ADAPTER", "sqlx")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("POLICY_REQUIRE_APPROVAL_FOR_CHECKOUT", "false")
	t.Setenv("POLICY_DENY_REVOKES_ADMIN", "true")
	t.Setenv("POLICY_FINE_PER_DAY", "5")

	// act
	settings, err := config.Load(missingEnvFile(t))

	// assert
	require.NoError(t, err)
	assert.Equal(t, config.AdapterSQLX, settings.DBAdapter)
	assert.Equal(t, ":9090", settings.HTTPAddr)
	assert.NoError(t, settings.RequireJWTSecret())

	policy := settings.Policy.ToPolicy()
	assert.False(t, policy.RequireApprovalForCheckout)
	assert.True(t, policy.DenyRevokesAdmin)
	assert.Equal(t, int64(5), policy.FinePerDay)
}

func Test_Load_DotEnvFileDoesNotOverrideEnvironment(t *testing.T) {
	// arrange
	envFile := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte("HTTP_ADDR=:7070\nOTEL_SERVICE_NAME=from-file\n"), 0o600))
	t.Setenv("HTTP_ADDR", ":6060")
	t.Setenv("OTEL_SERVICE_NAME", "")
	require.NoError(t, os.Unsetenv("OTEL_SERVICE_NAME"))

	// act
	settings, err := config.Load(envFile)

	// assert
	require.NoError(t, err)
	assert.Equal(t, ":6060", settings.HTTPAddr)
	assert.Equal(t, "from-file", settings.ServiceName)
}

func Test_Load_RejectsUnknownAdapter(t *testing.T) {
	// arrange
	t.Setenv("DB_ADAPTER", "mysql")

	// act
	_, err := config.Load(missingEnvFile(t))

	// assert
	assert.ErrorIs(t, err, config.ErrInvalidSettings)
}

func Test_Load_RejectsMalformedDuration(t *testing.T) {
	// arrange
	t.Setenv("JWT_TTL", "one day")

	// act
	_, err := config.Load(missingEnvFile(t))

	// assert
	assert.ErrorIs(t, err, config.ErrDecodingEnvFailed)
}

func Test_Load_RejectsMalformedPolicyFlag(t *testing.T) {
	for _, tc := range []struct {
		name  string
		key   string
		value string
	}{
		{name: "admin approval yes", key: "POLICY_REQUIRE_APPROVAL_FOR_ADMIN", value: "yes"},
		{name: "checkout approval on", key: "POLICY_REQUIRE_APPROVAL_FOR_CHECKOUT", value: "on"},
		{name: "deny revokes enabled", key: "POLICY_DENY_REVOKES_ADMIN", value: "enabled"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			// arrange
			t.Setenv(tc.key, tc.value)

			// act
			_, err := config.Load(missingEnvFile(t))

			// assert
			assert.ErrorIs(t, err, config.ErrDecodingEnvFailed)
		})
	}
}

func Test_Settings_RequireJWTSecret(t *testing.T) {
	// arrange
	settings := config.Settings{}

	// act
	err := settings.RequireJWTSecret()

	// assert
	assert.ErrorIs(t, err, config.ErrInvalidSettings)
}
