// Package redis provides Redis connection utilities built on
// [github.com/redis/go-redis/v9].
//
// It wraps client construction with retry and exponential backoff, URL
// validation for redis:// and rediss:// schemes, a health check function
// for readiness probes, and a graceful shutdown hook.
//
// # Usage
//
//	client, err := redis.Open(ctx, cfg.Redis.URL,
//		redis.WithPoolSize(20),
//		redis.WithRetry(5, 3*time.Second),
//	)
//	if err != nil {
//		return err
//	}
//
// Wire the client into an application's health and shutdown lifecycle:
//
//	app, err := keel.New(
//		keel.WithHealthChecks(keel.WithReadinessCheck("redis", redis.Healthcheck(client))),
//	)
//
//	app.Run(keel.ShutdownHook(redis.Shutdown(client)))
//
// # Error Handling
//
// The package defines sentinel errors for common failure modes:
//
//   - [ErrEmptyConnectionURL] - Empty connection URL provided
//   - [ErrFailedToParseURL] - Invalid connection URL format or scheme
//   - [ErrConnectionFailed] - Connection failed after all retry attempts
//   - [ErrHealthcheckFailed] - Redis ping failed
//
// Errors are wrapped using [errors.Join] to preserve the original error context.
package redis
