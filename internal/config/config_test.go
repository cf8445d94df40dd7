package config

import (
	"os"
	"testing"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnvVars = []string{
	"APP_PORT", "APP_HOST", "APP_ENV", "DB_URI", "SEED_DATABASE", "LOG_LEVEL", "ALLOWED_ORIGINS",
}

func cleanupTestEnv() {
	for _, v := range configEnvVars {
		os.Unsetenv(v)
	}
}

func TestGetEnvWithDefault(t *testing.T) {
	testCases := []struct {
		name         string
		key          string
		defaultValue string
		envValue     string
		expected     string
	}{
		{
			name:         "should return env value when set",
			key:          "TEST_KEY",
			defaultValue: "default",
			envValue:     "from_env",
			expected:     "from_env",
		},
		{
			name:         "should return default when env not set",
			key:          "MISSING_KEY",
			defaultValue: "default_value",
			envValue:     "",
			expected:     "default_value",
		},
		{
			name:         "should return empty string default",
			key:          "EMPTY_KEY",
			defaultValue: "",
			envValue:     "",
			expected:     "",
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			if tt.envValue != "" {
				t.Setenv(tt.key, tt.envValue)
			} else {
				os.Unsetenv(tt.key)
			}

			result := GetEnvWithDefault(tt.key, tt.defaultValue)

			if result != tt.expected {
				t.Errorf("GetEnvWithDefault() = %v, expected %v", result, tt.expected)
			}
		})
	}
}

func TestGetEnvAsType(t *testing.T) {
	t.Setenv("TYPED_INT", "42")
	t.Setenv("TYPED_BOOL", "false")
	t.Setenv("TYPED_BAD_BOOL", "maybe")

	assert.Equal(t, 42, GetEnvAsType("TYPED_INT", 7))
	assert.False(t, GetEnvAsType("TYPED_BOOL", true))
	assert.True(t, GetEnvAsType("TYPED_BAD_BOOL", true))
	assert.Equal(t, "fallback", GetEnvAsType("TYPED_MISSING", "fallback"))
}

func TestLoadConfig(t *testing.T) {
	t.Run("successful config load with all env vars", func(t *testing.T) {
		cleanupTestEnv()
		defer cleanupTestEnv()
		os.Setenv("APP_PORT", "9000")
		os.Setenv("APP_HOST", "0.0.0.0")
		os.Setenv("APP_ENV", "production")
		os.Setenv("DB_URI", "postgresql://pizza:secret@db:5432/pizzas")
		os.Setenv("SEED_DATABASE", "false")
		os.Setenv("LOG_LEVEL", "debug")
		os.Setenv("ALLOWED_ORIGINS", "http://localhost:3000, https://pizza.example.com")

		config, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, 9000, config.Port)
		assert.Equal(t, "0.0.0.0", config.Host)
		assert.Equal(t, "production", config.Environment)
		assert.Equal(t, "postgresql://pizza:secret@db:5432/pizzas", config.DatabaseURI)
		assert.False(t, config.SeedDatabase)
		assert.Equal(t, "debug", config.LogLevel)
		assert.Equal(t, []string{"http://localhost:3000", "https://pizza.example.com"}, config.AllowedOrigins)

		dbConfig, err := config.Database()
		require.NoError(t, err)
		assert.Equal(t, database.DriverPostgres, dbConfig.Driver)
		assert.Equal(t, "pizzas", dbConfig.Name)
	})

	t.Run("should fail with invalid port", func(t *testing.T) {
		cleanupTestEnv()
		defer cleanupTestEnv()
		os.Setenv("APP_PORT", "not_a_number")

		config, err := LoadConfig()

		assert.Error(t, err)
		assert.Nil(t, config)
	})

	t.Run("should fail with unsupported database uri", func(t *testing.T) {
		cleanupTestEnv()
		defer cleanupTestEnv()
		os.Setenv("DB_URI", "mysql://root@localhost/pizzas")

		config, err := LoadConfig()

		assert.ErrorContains(t, err, "invalid DB_URI")
		assert.Nil(t, config)
	})

	t.Run("should use defaults when optional env vars not set", func(t *testing.T) {
		cleanupTestEnv()
		defer cleanupTestEnv()

		config, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, 5555, config.Port)
		assert.Equal(t, "localhost", config.Host)
		assert.Equal(t, "sqlite:///app.db", config.DatabaseURI)
		assert.True(t, config.SeedDatabase)
		assert.Empty(t, config.LogLevel)
		assert.Equal(t, []string{"*"}, config.AllowedOrigins)

		dbConfig, err := config.Database()
		require.NoError(t, err)
		assert.Equal(t, database.DatabaseConfig{Driver: database.DriverSQLite, Path: "app.db"}, dbConfig)
	})
}

func TestConfigStringMasksPassword(t *testing.T) {
	config := &Config{DatabaseURI: "postgresql://pizza:secret@db:5432/pizzas"}

	masked := config.String()

	assert.NotContains(t, masked, "secret")
	assert.Contains(t, masked, "REDACTED")
}

func BenchmarkGetEnvWithDefault(b *testing.B) {
	os.Setenv("BENCH_KEY", "test_value")
	defer os.Unsetenv("BENCH_KEY")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		GetEnvWithDefault("BENCH_KEY", "default")
	}
}
