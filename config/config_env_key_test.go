package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"jwt": map[string]any{
			"accessTtl":     "30m",
			"refreshHeader": "Authorization-Refresh",
		},
		"auth": map[string]any{
			"bcryptCost": 12,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "JWT_ACCESSTTL", want: "jwt.accessTtl"},
		{envKey: "JWT_REFRESHHEADER", want: "jwt.refreshHeader"},
		{envKey: "AUTH_BCRYPTCOST", want: "auth.bcryptCost"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyJWTDefaults(t *testing.T) {
	var cfg JWTConfig
	applyJWTDefaults(&cfg)

	if cfg.AccessHeader != "Authorization" {
		t.Fatalf("AccessHeader = %q", cfg.AccessHeader)
	}
	if cfg.RefreshHeader != "Authorization-Refresh" {
		t.Fatalf("RefreshHeader = %q", cfg.RefreshHeader)
	}
	if cfg.AccessTTL == 0 || cfg.RefreshTTL == 0 {
		t.Fatal("TTL defaults not applied")
	}
	if cfg.Secret != "" {
		t.Fatal("secret must never be defaulted")
	}
}

func TestApplyJWTDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := JWTConfig{AccessHeader: "X-Access", RefreshHeader: "X-Refresh"}
	applyJWTDefaults(&cfg)

	if cfg.AccessHeader != "X-Access" || cfg.RefreshHeader != "X-Refresh" {
		t.Fatalf("explicit headers overwritten: %+v", cfg)
	}
}
