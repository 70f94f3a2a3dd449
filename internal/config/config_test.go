package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cozy-spring/internal/room"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverlaysFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cozy.yaml")
	data := []byte(`room:
  width: 24
  params:
    exit_size: 4
    growth_falloff: 0.8
viewer:
  seed: 7
logging:
  level: DEBUG
`)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 24, cfg.Room.Width)
	assert.Equal(t, Default().Room.Height, cfg.Room.Height)
	assert.Equal(t, 4, cfg.Room.Params.ExitSize)
	assert.Equal(t, 0.8, cfg.Room.Params.GrowthFalloff)
	assert.Equal(t, room.DefaultParams().EdgeGrowth, cfg.Room.Params.EdgeGrowth)
	assert.Equal(t, int64(7), cfg.Viewer.Seed)
	assert.Equal(t, "DEBUG", cfg.Logging.Level)
	assert.True(t, cfg.Logging.ConsoleEnabled)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("room: [1, 2"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Room.Params.ExitSize = 3
	cfg.Viewer.Seed = 99

	data, err := cfg.Marshal()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "dump.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o600))
	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.Room, loaded.Room)
	assert.Equal(t, cfg.Dungeon, loaded.Dungeon)
	assert.Equal(t, cfg.Viewer, loaded.Viewer)
}

func TestBindAndResolve(t *testing.T) {
	cfg := Default()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)

	err := fs.Parse([]string{"-w", "12", "-seed", "5", "-set", "exit_size=3", "-set", "edge_growth=2.5"})
	require.NoError(t, err)
	require.NoError(t, cfg.Resolve())

	assert.Equal(t, 12, cfg.Room.Width)
	assert.Equal(t, int64(5), cfg.Viewer.Seed)
	assert.Equal(t, 3, cfg.Room.Params.ExitSize)
	assert.Equal(t, 2.5, cfg.Room.Params.EdgeGrowth)
	assert.Equal(t, map[string]string{"exit_size": "3", "edge_growth": "2.5"}, cfg.Overrides.Map())
}

func TestResolveRejectsBadOverrides(t *testing.T) {
	cfg := Default()
	cfg.Overrides = Overrides{"no_such_key=1"}
	assert.Error(t, cfg.Resolve())

	cfg = Default()
	cfg.Overrides = Overrides{"growth_noise_octaves=0"}
	assert.Error(t, cfg.Resolve())

	var o Overrides
	assert.Error(t, o.Set("missing-equals"))
}

func TestResolveRejectsEmptyRoom(t *testing.T) {
	cfg := Default()
	cfg.Room.Width = 0
	assert.Error(t, cfg.Resolve())
}

func TestParseLoadsConfigThenFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cozy.yaml")
	require.NoError(t, os.WriteFile(path, []byte("room:\n  width: 30\n  height: 9\nviewer:\n  seed: 3\n"), 0o600))

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	dump := fs.String("dump", "", "")
	cfg, err := Parse(fs, []string{"-config", path, "-seed", "8", "-dump=out.yaml"})
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.Room.Width)
	assert.Equal(t, 9, cfg.Room.Height)
	assert.Equal(t, int64(8), cfg.Viewer.Seed, "flags win over the file")
	assert.Equal(t, "out.yaml", *dump)
}

func TestConfigPath(t *testing.T) {
	assert.Equal(t, "a.yaml", configPath([]string{"-config", "a.yaml"}))
	assert.Equal(t, "b.yaml", configPath([]string{"-seed", "1", "--config=b.yaml"}))
	assert.Equal(t, "", configPath([]string{"-seed", "1"}))
	assert.Equal(t, "", configPath([]string{"--", "-config", "c.yaml"}))
}
