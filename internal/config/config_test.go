package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		for _, key := range []string{"PORT", "DB_DRIVER", "DB_PATH", "JWT_EXPIRES_IN", "REMEMBER_ME_EXPIRES_IN", "PASSWORD_SCHEME", "CURRENCY_SYMBOL"} {
			t.Setenv(key, "")
		}

		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Port != "8080" {
			t.Errorf("expected port 8080, got %s", cfg.Port)
		}
		if cfg.DBDriver != DriverSQLite {
			t.Errorf("expected sqlite driver, got %s", cfg.DBDriver)
		}
		if cfg.PasswordScheme != SchemeSHA256 {
			t.Errorf("expected sha256 scheme, got %s", cfg.PasswordScheme)
		}
		if cfg.JWTExpirationDur != 24*time.Hour {
			t.Errorf("expected 24h expiry, got %s", cfg.JWTExpirationDur)
		}
		if cfg.RememberMeDuration != 720*time.Hour {
			t.Errorf("expected 720h remember-me, got %s", cfg.RememberMeDuration)
		}
		if cfg.CurrencySymbol != "₹" {
			t.Errorf("expected rupee symbol, got %q", cfg.CurrencySymbol)
		}
	})

	t.Run("env overrides", func(t *testing.T) {
		t.Setenv("PORT", "9090")
		t.Setenv("DB_DRIVER", "POSTGRES")
		t.Setenv("PASSWORD_SCHEME", "bcrypt")
		t.Setenv("JWT_EXPIRES_IN", "2h")
		t.Setenv("REMEMBER_ME_EXPIRES_IN", "48h")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Port != "9090" || cfg.DBDriver != DriverPostgres || cfg.PasswordScheme != SchemeBcrypt {
			t.Errorf("overrides not applied: %+v", cfg)
		}
		if cfg.JWTExpirationDur != 2*time.Hour || cfg.RememberMeDuration != 48*time.Hour {
			t.Errorf("durations not applied: %s %s", cfg.JWTExpirationDur, cfg.RememberMeDuration)
		}
	})

	t.Run("bad duration falls back", func(t *testing.T) {
		t.Setenv("JWT_EXPIRES_IN", "soon")
		t.Setenv("REMEMBER_ME_EXPIRES_IN", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.JWTExpirationDur != 24*time.Hour {
			t.Errorf("expected fallback to 24h, got %s", cfg.JWTExpirationDur)
		}
	})

	t.Run("invalid values are rejected together", func(t *testing.T) {
		t.Setenv("DB_DRIVER", "mysql")
		t.Setenv("PASSWORD_SCHEME", "md5")

		_, err := Load()
		if err == nil {
			t.Fatal("expected validation error")
		}
		if !strings.Contains(err.Error(), "DB_DRIVER") || !strings.Contains(err.Error(), "PASSWORD_SCHEME") {
			t.Errorf("expected both problems reported, got %v", err)
		}
	})
}

func TestPostgresURL(t *testing.T) {
	cfg := &Config{DBUser: "u", DBPassword: "p", DBHost: "h", DBPort: "5432", DBName: "d", DBSSLMode: "disable"}
	want := "postgres://u:p@h:5432/d?sslmode=disable"
	if got := cfg.PostgresURL(); got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}
