package cmd

import (
	"testing"

	"github.com/cloud-exit/datawiz/internal/config"
	"github.com/cloud-exit/datawiz/internal/dataloaders"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Influx.OrgID = "org1"
	cfg.Buckets = []config.BucketConfig{
		{ID: "b1", Name: "telegraf"},
		{ID: "b2", Name: "metrics", OrgID: "org2"},
	}
	return cfg
}

func TestBuildState_DefaultsToFirstBucket(t *testing.T) {
	st, err := buildState(testConfig(), "", []string{"system"})
	require.NoError(t, err)

	steps := st.DataLoading.Steps
	assert.Equal(t, "telegraf", steps.Bucket)
	assert.Equal(t, "b1", steps.BucketID)
	assert.Equal(t, "org1", steps.OrgID)
	assert.Equal(t, []dataloaders.BundleName{dataloaders.BundleSystem}, st.DataLoading.DataLoaders.PluginBundles)
	assert.Equal(t, dataloaders.PluginsForBundle(dataloaders.BundleSystem),
		dataloaders.PluginNames(st.DataLoading.DataLoaders.TelegrafPlugins))
}

func TestBuildState_NamedBucketAndDuplicateBundles(t *testing.T) {
	st, err := buildState(testConfig(), "metrics", []string{"docker", "Docker", "redis"})
	require.NoError(t, err)

	assert.Equal(t, "org2", st.DataLoading.Steps.OrgID)
	assert.Equal(t, []dataloaders.BundleName{dataloaders.BundleDocker, dataloaders.BundleRedis},
		st.DataLoading.DataLoaders.PluginBundles)
	assert.Equal(t, []string{"docker", "redis"}, dataloaders.PluginNames(st.DataLoading.DataLoaders.TelegrafPlugins))
}

func TestBuildState_Errors(t *testing.T) {
	noBuckets := config.DefaultConfig()

	tests := []struct {
		name    string
		cfg     *config.Config
		bucket  string
		bundles []string
		errText string
	}{
		{"no buckets", noBuckets, "", []string{"system"}, "no buckets configured"},
		{"unknown bucket", testConfig(), "nope", []string{"system"}, `unknown bucket "nope"`},
		{"unknown bundle", testConfig(), "", []string{"mysql"}, `unknown bundle "mysql"`},
		{"no bundles", testConfig(), "", nil, "select at least one bundle"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := buildState(tt.cfg, tt.bucket, tt.bundles)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errText)
		})
	}
}

func TestBundleTable(t *testing.T) {
	out := bundleTable()
	for _, b := range dataloaders.AllBundles() {
		assert.Contains(t, out, string(b))
	}
	assert.Contains(t, out, "diskio")
	assert.Contains(t, out, "redis*")
	assert.NotContains(t, out, "cpu*")
}

func TestPluginLabels(t *testing.T) {
	assert.Equal(t, []string{"nginx*"}, pluginLabels(dataloaders.BundleNginx))
	assert.Nil(t, pluginLabels(dataloaders.BundleName("bogus")))
}
