package config

import (
	"errors"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("JWT_SECRET_KEY", "test-secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Addr != ":8080" {
		t.Errorf("Addr = %q, want :8080", cfg.Addr)
	}
	if cfg.Database != "whobought" {
		t.Errorf("Database = %q, want whobought", cfg.Database)
	}
	if cfg.UsersCollection != "users" || cfg.PaymentsCollection != "payments" {
		t.Errorf("collections = %q/%q, want users/payments", cfg.UsersCollection, cfg.PaymentsCollection)
	}
	if cfg.TokenTTL != time.Hour {
		t.Errorf("TokenTTL = %v, want 1h", cfg.TokenTTL)
	}
	if cfg.Issuer != "WhoBoughtApp" || cfg.Audience != "WhoBoughtUsers" {
		t.Errorf("issuer/audience = %q/%q, want defaults", cfg.Issuer, cfg.Audience)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://db:27017")
	t.Setenv("JWT_SECRET_KEY", "test-secret")
	t.Setenv("ADDR", ":9090")
	t.Setenv("MONGO_DATABASE", "expenses")
	t.Setenv("JWT_EXPIRATION_MINUTES", "15")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Addr != ":9090" {
		t.Errorf("Addr = %q, want :9090", cfg.Addr)
	}
	if cfg.Database != "expenses" {
		t.Errorf("Database = %q, want expenses", cfg.Database)
	}
	if cfg.TokenTTL != 15*time.Minute {
		t.Errorf("TokenTTL = %v, want 15m", cfg.TokenTTL)
	}
}

func TestLoadMissingRequired(t *testing.T) {
	tests := []struct {
		name string
		set  map[string]string
		want string
	}{
		{
			name: "missing mongo uri",
			set:  map[string]string{"JWT_SECRET_KEY": "test-secret"},
			want: "MONGO_URI",
		},
		{
			name: "missing jwt secret",
			set:  map[string]string{"MONGO_URI": "mongodb://localhost:27017"},
			want: "JWT_SECRET_KEY",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("MONGO_URI", "")
			t.Setenv("JWT_SECRET_KEY", "")
			for k, v := range tt.set {
				t.Setenv(k, v)
			}

			_, err := Load()
			var missing *MissingSettingError
			if !errors.As(err, &missing) {
				t.Fatalf("Load() error = %v, want MissingSettingError", err)
			}
			if missing.Name != tt.want {
				t.Errorf("missing setting = %q, want %q", missing.Name, tt.want)
			}
		})
	}
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("SOME_INT", "not-a-number")
	if got := getEnvInt("SOME_INT", 7); got != 7 {
		t.Errorf("getEnvInt() = %d for unparseable value, want fallback 7", got)
	}
}
