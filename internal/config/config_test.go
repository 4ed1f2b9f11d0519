package config

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noelruault/emd/internal/i18n"
)

func TestGetDefaultRegion(t *testing.T) {
	t.Setenv("AWS_REGION", "")
	t.Setenv("AWS_DEFAULT_REGION", "")
	assert.Equal(t, "ap-northeast-2", GetDefaultRegion())

	t.Setenv("AWS_DEFAULT_REGION", "eu-west-1")
	assert.Equal(t, "eu-west-1", GetDefaultRegion())

	t.Setenv("AWS_REGION", "us-west-2")
	assert.Equal(t, "us-west-2", GetDefaultRegion())
}

func TestLoadDefaultsAndEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("EMD_DATA_DIR", dir)
	t.Setenv("EMD_REGION", "us-east-1")
	t.Setenv("EMD_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, dir, cfg.DataDir)
	assert.Equal(t, "us-east-1", cfg.Region)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, filepath.Join(dir, "emd.log"), cfg.LogFile)
	assert.Equal(t, ".", cfg.OutputDir)
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("EMD_DATA_DIR", dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("profile: staging\nlanguage: Korean\noutput_dir: s3://docs/emd/\n"), 0600))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "staging", cfg.Profile)
	assert.Equal(t, "Korean", cfg.Language)
	assert.Equal(t, "s3://docs/emd/", cfg.OutputDir)
}

func TestRegions(t *testing.T) {
	require.Len(t, Regions, 12)
	assert.Equal(t, "ap-northeast-2", Regions[0].Code)
	assert.Equal(t, "서울", Regions[0].Name(i18n.Korean))
	assert.Equal(t, "Seoul", Regions[0].Name(i18n.English))
	assert.Equal(t, 6, RegionIndex("us-east-1"))
	assert.Equal(t, -1, RegionIndex("mars-1"))
}

func TestRegionCellConcurrent(t *testing.T) {
	cell := NewRegionCell("ap-northeast-2")
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			cell.Set("us-east-1")
		}()
		go func() {
			defer wg.Done()
			_ = cell.Get()
		}()
	}
	wg.Wait()
	assert.Equal(t, "us-east-1", cell.Get())
}
