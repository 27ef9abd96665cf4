package root

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"dailyquest/internal/config"
	"dailyquest/internal/engine"
	"dailyquest/internal/storage"
	"dailyquest/internal/ui"
)

func openStore(ctx context.Context, cfg config.Config) (storage.Store, string, error) {
	switch cfg.Backend {
	case config.BackendMemory:
		return storage.NewMemoryStore(), "(in memory)", nil
	case config.BackendRedis:
		s, err := storage.OpenRedisStore(ctx, &redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		}, cfg.RedisPrefix)
		if err != nil {
			return nil, "", err
		}
		return s, fmt.Sprintf("%s/%d %s*", cfg.RedisAddr, cfg.RedisDB, cfg.RedisPrefix), nil
	}

	path, err := cfg.ResolveDBPath()
	if err != nil {
		return nil, "", err
	}
	if cfg.Backend == config.BackendBolt {
		s, err := storage.OpenBoltStore(path)
		return s, path, err
	}
	s, err := storage.OpenSQLiteStore(ctx, path)
	return s, path, err
}

func newLogger(cfg config.Config) (*slog.Logger, error) {
	lvl, err := cfg.SlogLevel()
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})), nil
}

func openService(ctx context.Context) (*engine.Service, func(), error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, nil, err
	}
	loc, err := cfg.Location()
	if err != nil {
		return nil, nil, err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return nil, nil, err
	}
	store, _, err := openStore(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	svc, err := engine.Open(ctx, store,
		engine.WithLocation(loc),
		engine.WithLogger(logger),
		engine.WithTaskReward(cfg.TaskReward),
	)
	if err != nil {
		_ = store.Close()
		return nil, nil, err
	}
	cleanup := func() {
		_ = store.Close()
	}
	return svc, cleanup, nil
}

func newDBCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "db",
		Short: "Show where DailyQuest keeps its data",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			cfg, err := config.Load(envFile)
			if err != nil {
				return err
			}
			loc, err := cfg.Location()
			if err != nil {
				return err
			}
			store, where, err := openStore(ctx, cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconInfo, "Storage"))
			fmt.Fprintln(out, ui.LabelValue("Backend", cfg.Backend))
			fmt.Fprintln(out, ui.LabelValue("Location", where))
			fmt.Fprintln(out, ui.LabelValue("Timezone", loc.String()))
			fmt.Fprintln(out, ui.LabelValue("Task reward", cfg.TaskReward))
			for _, key := range []string{storage.KeyTasks, storage.KeyLedger, storage.KeyStats, storage.KeyInventory} {
				data, err := store.Get(ctx, key)
				switch {
				case err == nil:
					fmt.Fprintf(out, "- %s %s\n", ui.Key.Render(key+":"), ui.Muted.Render(fmt.Sprintf("%d bytes", len(data))))
				case errors.Is(err, storage.ErrNotFound):
					fmt.Fprintf(out, "- %s %s\n", ui.Key.Render(key+":"), ui.Muted.Render("empty"))
				default:
					fmt.Fprintf(out, "- %s %s\n", ui.Key.Render(key+":"), ui.Bad.Render(err.Error()))
				}
			}
			return nil
		},
	}
	return cmd
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
