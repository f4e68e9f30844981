package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"

	"github.com/selim/mpsync/internal/config"
	"github.com/selim/mpsync/internal/log"
)

// deployFlags builds a flag set matching the root command's flags.
func deployFlags(t *testing.T) *pflag.FlagSet {
	t.Helper()
	f := pflag.NewFlagSet("test", pflag.ContinueOnError)
	f.String("path", ".", "")
	f.String("root", "", "")
	f.String("device-volume", "", "")
	return f
}

func TestLoadWorkspace(t *testing.T) {
	t.Run("reads workspace config", func(t *testing.T) {
		dir := t.TempDir()
		content := `{"rootPath": "/flash", "pathMappings": [{"local": "src", "device": "/"}]}`
		if err := os.WriteFile(filepath.Join(dir, "mpsync.json"), []byte(content), 0o644); err != nil {
			t.Fatalf("write config: %v", err)
		}

		f := deployFlags(t)
		if err := f.Set("path", dir); err != nil {
			t.Fatalf("set flag: %v", err)
		}

		wc, err := loadWorkspace(f)
		if err != nil {
			t.Fatalf("loadWorkspace: %v", err)
		}
		if wc.settings.RootPath != "/flash" {
			t.Errorf("RootPath = %q, want %q", wc.settings.RootPath, "/flash")
		}
		if len(wc.settings.PathMappings) != 1 {
			t.Errorf("PathMappings = %v", wc.settings.PathMappings)
		}
	})

	t.Run("root flag overrides config", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, "mpsync.json"), []byte(`{"rootPath": "/flash"}`), 0o644); err != nil {
			t.Fatalf("write config: %v", err)
		}

		f := deployFlags(t)
		if err := f.Set("path", dir); err != nil {
			t.Fatalf("set flag: %v", err)
		}
		if err := f.Set("root", "/sd"); err != nil {
			t.Fatalf("set flag: %v", err)
		}

		wc, err := loadWorkspace(f)
		if err != nil {
			t.Fatalf("loadWorkspace: %v", err)
		}
		if wc.settings.RootPath != "/sd" {
			t.Errorf("RootPath = %q, want %q", wc.settings.RootPath, "/sd")
		}
	})

	t.Run("missing workspace fails", func(t *testing.T) {
		f := deployFlags(t)
		if err := f.Set("path", filepath.Join(t.TempDir(), "gone")); err != nil {
			t.Fatalf("set flag: %v", err)
		}
		if _, err := loadWorkspace(f); err == nil {
			t.Fatal("expected error for missing workspace")
		}
	})
}

func TestResolveDeviceVolume(t *testing.T) {
	t.Run("flag wins over config", func(t *testing.T) {
		volume := t.TempDir()
		f := deployFlags(t)
		if err := f.Set("device-volume", volume); err != nil {
			t.Fatalf("set flag: %v", err)
		}

		got, err := resolveDeviceVolume(f, config.Settings{DeviceVolume: "/elsewhere"})
		if err != nil {
			t.Fatalf("resolveDeviceVolume: %v", err)
		}
		if got != volume {
			t.Errorf("got %q, want %q", got, volume)
		}
	})

	t.Run("config volume used when flag empty", func(t *testing.T) {
		volume := t.TempDir()
		f := deployFlags(t)

		got, err := resolveDeviceVolume(f, config.Settings{DeviceVolume: volume})
		if err != nil {
			t.Fatalf("resolveDeviceVolume: %v", err)
		}
		if got != volume {
			t.Errorf("got %q, want %q", got, volume)
		}
	})

	t.Run("unmounted volume fails", func(t *testing.T) {
		f := deployFlags(t)
		_, err := resolveDeviceVolume(f, config.Settings{DeviceVolume: filepath.Join(t.TempDir(), "CIRCUITPY")})
		if err == nil {
			t.Fatal("expected error for unmounted volume")
		}
	})
}

func TestVerboseFlagRegistered(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("verbose")
	if flag == nil {
		t.Fatal("verbose flag not registered on the root command")
	}
	if flag.Shorthand != "v" {
		t.Errorf("verbose shorthand = %q, want %q", flag.Shorthand, "v")
	}
}

func TestApplyVerbosity(t *testing.T) {
	reset := func() {
		log.DisableQuietMode()
		log.SetLevel(log.LevelInfo)
	}

	t.Run("default stays at info", func(t *testing.T) {
		t.Setenv("HOME", t.TempDir())
		defer reset()

		applyVerbosity(false, 0, false)
		if log.GetLevel() != log.LevelInfo {
			t.Errorf("level = %d, want %d", log.GetLevel(), log.LevelInfo)
		}
	})

	t.Run("verbose raises to debug", func(t *testing.T) {
		t.Setenv("HOME", t.TempDir())
		defer reset()

		applyVerbosity(false, 0, true)
		if log.GetLevel() != log.LevelDebug {
			t.Errorf("level = %d, want %d", log.GetLevel(), log.LevelDebug)
		}
	})

	t.Run("debug count raises to debug", func(t *testing.T) {
		t.Setenv("HOME", t.TempDir())
		defer reset()

		applyVerbosity(false, 1, false)
		if log.GetLevel() != log.LevelDebug {
			t.Errorf("level = %d, want %d", log.GetLevel(), log.LevelDebug)
		}
	})

	t.Run("quiet beats verbose and debug", func(t *testing.T) {
		t.Setenv("HOME", t.TempDir())
		defer reset()

		applyVerbosity(true, 2, true)
		if !log.IsQuiet() {
			t.Error("quiet flag should enable quiet mode")
		}
	})

	t.Run("global config debug is the fallback", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("HOME", home)
		defer reset()

		if err := os.MkdirAll(filepath.Join(home, ".mpsync"), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(filepath.Join(home, ".mpsync", "config.yaml"), []byte("debug: 1\n"), 0o644); err != nil {
			t.Fatalf("write global config: %v", err)
		}

		applyVerbosity(false, 0, false)
		if log.GetLevel() != log.LevelDebug {
			t.Errorf("level = %d, want %d", log.GetLevel(), log.LevelDebug)
		}
	})
}
