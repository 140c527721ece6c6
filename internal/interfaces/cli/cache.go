package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rjsky311/GHS-label-quick-search/internal/app"
	"github.com/rjsky311/GHS-label-quick-search/internal/infrastructure/database/redis"
	"github.com/rjsky311/GHS-label-quick-search/internal/infrastructure/monitoring/logging"
	"github.com/rjsky311/GHS-label-quick-search/pkg/errors"
)

// WithRemoteCache makes the cache commands use c instead of connecting to
// the configured Redis.
func WithRemoteCache(c redis.Cache) Option {
	return func(d *dependencies) {
		d.remote = func(*CLIContext) (redis.Cache, func(), error) { return c, func() {}, nil }
	}
}

func openRemoteCache(c *CLIContext) (redis.Cache, func(), error) {
	rc := c.Config.Redis
	if !rc.Enabled {
		return nil, nil, errors.New(errors.ErrCodeBadRequest, "redis is not enabled (set redis.enabled or GHS_REDIS_ENABLED)")
	}
	client, err := redis.NewClient(&redis.RedisConfig{
		Addr:         rc.Addr,
		Password:     rc.Password,
		DB:           rc.DB,
		PoolSize:     rc.PoolSize,
		DialTimeout:  rc.DialTimeout,
		ReadTimeout:  rc.ReadTimeout,
		WriteTimeout: rc.WriteTimeout,
	}, c.Logger)
	if err != nil {
		return nil, nil, err
	}
	cache := redis.NewRedisCache(client, c.Logger, redis.WithPrefix(rc.KeyPrefix))
	return cache, func() { _ = client.Close() }, nil
}

func newCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Maintain the shared Redis cache tier",
	}
	cmd.AddCommand(newCacheFlushCmd())
	return cmd
}

func newCacheFlushCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "flush [cid|document]",
		Short:     "Delete cached entries (all caches when no name is given)",
		Long: "Delete entries from the shared Redis tier.  Running servers keep their\n" +
			"process-local copies until those expire.",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{app.CIDCacheName, app.DocumentCacheName},
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}
			remote, closeFn, err := cliCtx.deps.remote(cliCtx)
			if err != nil {
				return err
			}
			defer closeFn()

			ctx, cancel := commandContext(cmd, cliCtx)
			defer cancel()

			names := []string{app.CIDCacheName, app.DocumentCacheName}
			if len(args) == 1 {
				names = args
			}

			var total int64
			for _, name := range names {
				n, err := remote.DeleteByPrefix(ctx, name+":")
				if err != nil {
					return fmt.Errorf("flush %s cache: %w", name, err)
				}
				cliCtx.Logger.Info("cache flushed", logging.String("cache", name), logging.Int64("keys", n))
				total += n
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %d keys\n", total)
			return nil
		},
	}
}
