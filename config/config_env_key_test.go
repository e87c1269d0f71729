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
		"docstore": map[string]any{
			"probeTimeout": "2s",
		},
		"scheduler": map[string]any{
			"clientCounterSpec": "",
		},
		"database": map[string]any{
			"driver": "sqlite",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "DOCSTORE_PROBETIMEOUT", want: "docstore.probeTimeout"},
		{envKey: "SCHEDULER_CLIENTCOUNTERSPEC", want: "scheduler.clientCounterSpec"},
		{envKey: "DATABASE_DRIVER", want: "database.driver"},
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
