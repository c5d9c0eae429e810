package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMustLoadPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := `
env: dev
http_server:
  address: "0.0.0.0:9090"
graph:
  tenant_id: tenant
  client_id: client
sync:
  public_base_url: "https://rooms.example.com/"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg := MustLoadPath(path)

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "0.0.0.0:9090", cfg.HTTPServer.Address)
	assert.Equal(t, 4230, cfg.Sync.SubscriptionMinutes)
	assert.Equal(t, time.Hour, cfg.Sync.RenewalInterval)
	assert.Equal(t, 12*time.Hour, cfg.Sync.RenewalLookahead)
	assert.Equal(t, "https://graph.microsoft.com/v1.0", cfg.Graph.BaseURL)
	assert.Equal(t, "https://rooms.example.com/webhooks/graph", cfg.Sync.NotificationURL())
}

func TestSyncEnabled(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		cfg  Config
		want bool
	}{
		{
			name: "Fully configured",
			cfg: Config{
				Graph: Graph{TenantID: "t", ClientID: "c", ClientSecret: "s"},
				Sync:  Sync{PublicBaseURL: "https://x"},
			},
			want: true,
		},
		{
			name: "Missing secret",
			cfg: Config{
				Graph: Graph{TenantID: "t", ClientID: "c"},
				Sync:  Sync{PublicBaseURL: "https://x"},
			},
			want: false,
		},
		{
			name: "Missing public url",
			cfg: Config{
				Graph: Graph{TenantID: "t", ClientID: "c", ClientSecret: "s"},
			},
			want: false,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tc.cfg.SyncEnabled())
		})
	}
}

func TestNotificationURLEmpty(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", Sync{WebhookPath: "/webhooks/graph"}.NotificationURL())
}
