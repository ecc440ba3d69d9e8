package internal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"com.bradleytenuta/deauth/internal/model"
	"com.bradleytenuta/deauth/internal/targets"
)

func loadConfig(t *testing.T, path string) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
	viper.SetConfigFile(path)
	viper.SetConfigType("yaml")
	require.NoError(t, viper.ReadInConfig())
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "configuration.yaml")

	exists, err := FileExists(path)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, WriteConfigFile(path))
	exists, err = FileExists(path)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestWriteConfigFileDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "configuration.yaml")
	require.NoError(t, WriteConfigFile(path))
	loadConfig(t, path)

	assert.Equal(t, model.NewConfig().Capacity, viper.GetInt("capacity"))
	assert.False(t, viper.GetBool("debug"))
	assert.Empty(t, ReadTargetEntries())
	assert.Equal(t, 0, LoadTargetList().Size())
}

func TestBuildTargetListSkipsBadEntries(t *testing.T) {
	entries := []model.TargetEntry{
		{From: "00:00:00:00:00:02", To: "ff:ff:ff:ff:ff:ff", Channel: 1},
		{From: "bogus", To: "ff:ff:ff:ff:ff:ff", Channel: 1},
		{From: "00:00:00:00:00:01", To: "ff:ff:ff:ff:ff:ff", Channel: 6},
		{From: "00:00:00:00:00:02", To: "ff:ff:ff:ff:ff:ff", Channel: 1},
		{From: "00:00:00:00:00:03", To: "ff:ff:ff:ff:ff:ff", Channel: 11},
	}

	list := BuildTargetList(entries, 2)
	require.Equal(t, 2, list.Size())
	assert.Equal(t, "00:00:00:00:00:01", list.Get(0).From().String())
	assert.Equal(t, "00:00:00:00:00:02", list.Get(1).From().String())

	assert.Equal(t, 3, BuildTargetList(entries, 0).Size())
}

func TestSaveTargetListRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "configuration.yaml")
	require.NoError(t, WriteConfigFile(path))
	loadConfig(t, path)

	list := targets.New(0)
	for _, s := range []string{"00:00:00:00:00:09", "00:00:00:00:00:03"} {
		mac, err := targets.ParseMAC(s)
		require.NoError(t, err)
		require.True(t, list.Push(mac, mac, 6))
	}
	require.NoError(t, SaveTargetList(list))

	loadConfig(t, path)
	want := []model.TargetEntry{
		{From: "00:00:00:00:00:03", To: "00:00:00:00:00:03", Channel: 6},
		{From: "00:00:00:00:00:09", To: "00:00:00:00:00:09", Channel: 6},
	}
	if diff := cmp.Diff(want, ReadTargetEntries()); diff != "" {
		t.Errorf("stored targets mismatch (-want +got):\n%s", diff)
	}
}

func TestReadTargetFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "more.yaml")
	content := "targets:\n  - from: aa:aa:aa:aa:aa:aa\n    to: bb:bb:bb:bb:bb:bb\n    channel: 11\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	entries, err := ReadTargetFile(path)
	require.NoError(t, err)
	assert.Equal(t, []model.TargetEntry{{From: "aa:aa:aa:aa:aa:aa", To: "bb:bb:bb:bb:bb:bb", Channel: 11}}, entries)

	_, err = ReadTargetFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
