// Command seed prepares the wings table. Without flags it inserts the initial wings into an
// empty database.
package main

import (
	"anvaya-club/config"
	"anvaya-club/internal/global/cache"
	"anvaya-club/internal/global/database"
	"anvaya-club/internal/global/logger"
	"anvaya-club/internal/repository"
	"anvaya-club/tools"
	"context"
	"os"

	"github.com/spf13/pflag"
)

func main() {
	reset := pflag.Bool("reset", false, "drop and recreate every table before seeding")
	update := pflag.BoolP("update", "u", false, "rewrite wing content by slug instead of seeding")
	verify := pflag.BoolP("verify", "v", false, "print the stored wings and exit")
	pflag.Parse()

	config.Init()
	log := logger.New("Seed")
	ctx := context.Background()

	database.Init()
	repo := repository.New(database.DB)

	if *verify {
		tools.PanicOnErr(verifyWings(ctx, repo, os.Stdout))
		return
	}

	if *reset {
		log.Warn("dropping all tables")
		tools.PanicOnErr(database.Reset(database.DB))
	}

	if *update {
		updated, created, err := updateWings(ctx, repo, wingContent)
		tools.PanicOnErr(err)
		log.Info("wings updated", "updated", updated, "created", created)
	} else {
		n, err := seedWings(ctx, repo, initialWings)
		tools.PanicOnErr(err)
		if n == 0 {
			log.Info("wings already exist, skipping seed")
		} else {
			log.Info("wings seeded", "count", n)
		}
	}

	// the server may be caching the old wing content
	c, err := cache.New(config.Get())
	if err != nil {
		log.Warn("cache unavailable, wing content refreshes when entries expire", "error", err)
		return
	}
	dropCachedWings(ctx, c)
}
