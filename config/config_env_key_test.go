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
		"opendata": map[string]any{
			"baseUrl":       "",
			"offsetCeiling": 10000,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "OPENDATA_BASEURL", want: "opendata.baseUrl"},
		{envKey: "OPENDATA_OFFSETCEILING", want: "opendata.offsetCeiling"},
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

func TestOpenDataConfigDefaults(t *testing.T) {
	cfg := (*OpenDataConfig)(nil).withDefaults()

	if cfg.OffsetCeiling != 10000 {
		t.Fatalf("OffsetCeiling = %d, want 10000", cfg.OffsetCeiling)
	}
	if cfg.PageSize != 100 || cfg.BatchSize != 100 {
		t.Fatalf("PageSize/BatchSize = %d/%d, want 100/100", cfg.PageSize, cfg.BatchSize)
	}
	if cfg.PageDelay.Seconds() != 1 {
		t.Fatalf("PageDelay = %v, want 1s", cfg.PageDelay)
	}
	if cfg.BaseURL == "" || cfg.ExportURL == "" {
		t.Fatal("expected default endpoints to be set")
	}
}

func TestOpenDataConfigKeepsExplicitValues(t *testing.T) {
	in := &OpenDataConfig{PageSize: 50, OffsetCeiling: 2000}
	cfg := in.withDefaults()

	if cfg.PageSize != 50 {
		t.Fatalf("PageSize = %d, want 50", cfg.PageSize)
	}
	if cfg.OffsetCeiling != 2000 {
		t.Fatalf("OffsetCeiling = %d, want 2000", cfg.OffsetCeiling)
	}
}
