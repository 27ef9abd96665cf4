package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, kv := range os.Environ() {
		if strings.HasPrefix(kv, "DQ_") {
			key, _, _ := strings.Cut(kv, "=")
			t.Setenv(key, "")
			os.Unsetenv(key)
		}
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Backend != BackendSQLite {
		t.Fatalf("backend=%q, want sqlite", cfg.Backend)
	}
	if cfg.TaskReward != 5 {
		t.Fatalf("taskReward=%d, want 5", cfg.TaskReward)
	}
	if cfg.RedisPrefix != "dailyquest:" {
		t.Fatalf("redisPrefix=%q", cfg.RedisPrefix)
	}
	loc, err := cfg.Location()
	if err != nil || loc != time.Local {
		t.Fatalf("location=%v err=%v, want Local", loc, err)
	}
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("DQ_BACKEND", " BBolt ")
	t.Setenv("DQ_TIMEZONE", "UTC")
	t.Setenv("DQ_TASK_REWARD", "10")
	t.Setenv("DQ_LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Backend != BackendBolt {
		t.Fatalf("backend=%q, want bbolt", cfg.Backend)
	}
	if cfg.TaskReward != 10 {
		t.Fatalf("taskReward=%d, want 10", cfg.TaskReward)
	}
	lvl, err := cfg.SlogLevel()
	if err != nil || lvl.String() != "DEBUG" {
		t.Fatalf("level=%v err=%v", lvl, err)
	}
	loc, err := cfg.Location()
	if err != nil || loc.String() != "UTC" {
		t.Fatalf("location=%v err=%v", loc, err)
	}
}

func TestLoadDotenvDoesNotOverride(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	data := "DQ_BACKEND=memory\nDQ_TASK_REWARD=7\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv("DQ_TASK_REWARD", "3")
	t.Cleanup(func() { os.Unsetenv("DQ_BACKEND") })

	cfg, err := Load(path, filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Backend != BackendMemory {
		t.Fatalf("backend=%q, want memory from .env", cfg.Backend)
	}
	if cfg.TaskReward != 3 {
		t.Fatalf("taskReward=%d, want environment to win", cfg.TaskReward)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name string
		cfg  Config
	}{
		{"backend", Config{Backend: "mongo", TaskReward: 5, LogLevel: "info"}},
		{"reward", Config{Backend: BackendSQLite, TaskReward: 0, LogLevel: "info"}},
		{"timezone", Config{Backend: BackendSQLite, TaskReward: 5, LogLevel: "info", Timezone: "Mars/Olympus"}},
		{"log level", Config{Backend: BackendSQLite, TaskReward: 5, LogLevel: "loud"}},
		{"redis db", Config{Backend: BackendRedis, TaskReward: 5, LogLevel: "info", RedisDB: -1}},
	}
	for _, tc := range cases {
		if err := tc.cfg.Validate(); err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
	}
}

func TestResolveDBPath(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg := Config{Backend: BackendSQLite}
	p, err := cfg.ResolveDBPath()
	if err != nil {
		t.Fatalf("ResolveDBPath: %v", err)
	}
	if filepath.Base(p) != ".dailyquest.db" {
		t.Fatalf("path=%q", p)
	}

	cfg.Backend = BackendBolt
	p, _ = cfg.ResolveDBPath()
	if filepath.Base(p) != ".dailyquest.bolt" {
		t.Fatalf("path=%q", p)
	}

	cfg.DBPath = "/tmp/custom.db"
	p, _ = cfg.ResolveDBPath()
	if p != "/tmp/custom.db" {
		t.Fatalf("path=%q, want override", p)
	}
}
