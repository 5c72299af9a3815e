package montenbruck

import (
	"os"
	"testing"
)

func assertPanic(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected a panic")
		}
	}()
	f()
}

func TestConfigMissingEnv(t *testing.T) {
	if cfgLoaded {
		t.Skip("configuration already loaded by another test")
	}
	old, had := os.LookupEnv("ASTROM_CONFIG")
	os.Unsetenv("ASTROM_CONFIG")
	defer func() {
		if had {
			os.Setenv("ASTROM_CONFIG", old)
		}
	}()
	assertPanic(t, func() { astromConfig() })
}
