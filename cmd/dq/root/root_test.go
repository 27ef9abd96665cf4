package root

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"dailyquest/internal/config"
	"dailyquest/internal/engine"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--env-file", filepath.Join(t.TempDir(), "none.env")}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func setupEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DQ_BACKEND", "sqlite")
	t.Setenv("DQ_DB_PATH", filepath.Join(t.TempDir(), "cli.db"))
	t.Setenv("DQ_TIMEZONE", "UTC")
	t.Setenv("DQ_LOG_LEVEL", "error")
	t.Setenv("DQ_TASK_REWARD", "5")
}

func TestCLITaskFlow(t *testing.T) {
	setupEnv(t)

	out, err := runCLI(t, "add", "Drink", "water")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if !strings.Contains(out, "Drink water") {
		t.Fatalf("add output=%q", out)
	}

	out, err = runCLI(t, "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(out, "Drink water") || !strings.Contains(out, "0/1") {
		t.Fatalf("list output=%q", out)
	}

	// list prints the short id in front of the title; it is a unique prefix.
	fields := strings.Fields(out)
	var id string
	for i, f := range fields {
		if f == "Drink" && i > 0 {
			id = fields[i-1]
			break
		}
	}
	if id == "" {
		t.Fatalf("no id in list output %q", out)
	}

	out, err = runCLI(t, "do", id)
	if err != nil {
		t.Fatalf("do: %v", err)
	}
	if !strings.Contains(out, "Completed") || !strings.Contains(out, "+5") {
		t.Fatalf("do output=%q", out)
	}

	out, err = runCLI(t, "restore", id)
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if !strings.Contains(out, "Unchecked") {
		t.Fatalf("restore output=%q", out)
	}

	out, err = runCLI(t, "restore", id)
	if err != nil {
		t.Fatalf("restore again: %v", err)
	}
	if !strings.Contains(out, "Not completed") {
		t.Fatalf("restore output=%q", out)
	}

	out, err = runCLI(t, "history")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if !strings.Contains(out, "Completed task: Drink water") || !strings.Contains(out, "Unchecked task: Drink water") {
		t.Fatalf("history output=%q", out)
	}
}

func TestCLIBuyWithoutCoins(t *testing.T) {
	setupEnv(t)

	_, err := runCLI(t, "buy", "hat_1")
	if engine.ErrorCode(err) != engine.CodeInsufficientFunds {
		t.Fatalf("buy err=%v, want insufficient funds", err)
	}
	_, err = runCLI(t, "buy", "cape")
	if engine.ErrorCode(err) != engine.CodeNotFound {
		t.Fatalf("buy err=%v, want not found", err)
	}
	_, err = runCLI(t, "equip", "cape")
	if engine.ErrorCode(err) != engine.CodeNotFound {
		t.Fatalf("equip err=%v, want not found", err)
	}

	out, err := runCLI(t, "equip", "hat_1")
	if err != nil {
		t.Fatalf("equip: %v", err)
	}
	if !strings.Contains(out, "Not owned") {
		t.Fatalf("equip output=%q", out)
	}
}

func TestCLIShopRejectsUnknownCategory(t *testing.T) {
	setupEnv(t)
	if _, err := runCLI(t, "shop", "--category", "shoes"); engine.ErrorCode(err) != engine.CodeValidation {
		t.Fatalf("err=%v, want validation", err)
	}
	out, err := runCLI(t, "shop", "-c", "bg")
	if err != nil {
		t.Fatalf("shop: %v", err)
	}
	if !strings.Contains(out, "Forest Background") || strings.Contains(out, "Cool Cap") {
		t.Fatalf("shop output=%q", out)
	}
}

func TestCLIStatusAndDB(t *testing.T) {
	setupEnv(t)
	out, err := runCLI(t, "status")
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if !strings.Contains(out, "Last active") || !strings.Contains(out, "never") {
		t.Fatalf("status output=%q", out)
	}
	out, err = runCLI(t, "db")
	if err != nil {
		t.Fatalf("db: %v", err)
	}
	if !strings.Contains(out, "sqlite") || !strings.Contains(out, "daily_tasks") {
		t.Fatalf("db output=%q", out)
	}
}

func TestCLIBadBackend(t *testing.T) {
	setupEnv(t)
	t.Setenv("DQ_BACKEND", "mongo")
	if _, err := runCLI(t, "list"); err == nil || !strings.Contains(err.Error(), "unknown backend") {
		t.Fatalf("err=%v, want unknown backend", err)
	}
}

func TestCLIBadTimezoneAndLevel(t *testing.T) {
	setupEnv(t)
	t.Setenv("DQ_TIMEZONE", "Mars/Olympus")
	for _, args := range [][]string{{"list"}, {"db"}} {
		if _, err := runCLI(t, args...); err == nil {
			t.Fatalf("%v: want timezone error", args)
		}
	}

	setupEnv(t)
	t.Setenv("DQ_LOG_LEVEL", "chatty")
	if _, err := runCLI(t, "list"); err == nil {
		t.Fatal("want log level error")
	}
}

func TestNewLoggerRejectsUnknownLevel(t *testing.T) {
	if _, err := newLogger(config.Config{LogLevel: "chatty"}); err == nil {
		t.Fatal("want error for unknown level")
	}
	if _, err := newLogger(config.Config{LogLevel: "debug"}); err != nil {
		t.Fatalf("debug: %v", err)
	}
}
