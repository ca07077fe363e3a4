// Package db provides PostgreSQL connection utilities built on
// [github.com/jackc/pgx/v5/pgxpool].
//
// It covers the plumbing every service repeats: opening a pool with retry
// and exponential backoff, a health check function for readiness probes,
// a graceful shutdown hook, and a transaction helper.
//
// # Usage
//
//	pool, err := db.Open(ctx, cfg.Database.URL,
//		db.WithMaxConns(20),
//		db.WithRetry(5, 3*time.Second),
//	)
//	if err != nil {
//		return err
//	}
//
//	app, err := keel.New(
//		keel.WithHealthChecks(keel.WithReadinessCheck("postgres", db.Healthcheck(pool))),
//	)
//
//	app.Run(keel.ShutdownHook(db.Shutdown(pool)))
//
// Transactions:
//
//	err := db.WithTx(ctx, pool, func(tx pgx.Tx) error {
//		if _, err := tx.Exec(ctx, "INSERT ..."); err != nil {
//			return err
//		}
//		_, err := tx.Exec(ctx, "UPDATE ...")
//		return err
//	})
package db
