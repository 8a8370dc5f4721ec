package main

import (
	"anvaya-club/internal/global/cache"
	"anvaya-club/internal/global/errs"
	"anvaya-club/internal/model"
	"anvaya-club/internal/repository"
	"context"
	"errors"
	"fmt"
	"io"
)

// seedWings inserts wings only when the table is empty and reports how many it created.
func seedWings(ctx context.Context, repo *repository.Repository, wings []model.Wing) (int, error) {
	existing, err := repo.ListWings(ctx)
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		return 0, nil
	}
	for i := range wings {
		w := wings[i]
		if err := repo.CreateWing(ctx, &w); err != nil {
			return i, err
		}
	}
	return len(wings), nil
}

// updateWings rewrites the text of wings matched by slug and creates the missing ones.
// Slugs are never changed.
func updateWings(ctx context.Context, repo *repository.Repository, wings []model.Wing) (updated, created int, err error) {
	for i := range wings {
		w := wings[i]
		_, err := repo.UpdateWingContent(ctx, w.Slug, repository.WingContentUpdate{
			Name:    w.Name,
			About:   w.About,
			Vision:  w.Vision,
			Mission: w.Mission,
		})
		switch {
		case err == nil:
			updated++
		case errors.Is(err, errs.ErrNotFound):
			if err := repo.CreateWing(ctx, &w); err != nil {
				return updated, created, err
			}
			created++
		default:
			return updated, created, err
		}
	}
	return updated, created, nil
}

// verifyWings prints one line per wing.
func verifyWings(ctx context.Context, repo *repository.Repository, out io.Writer) error {
	wings, err := repo.ListWings(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%d wings\n", len(wings))
	for _, w := range wings {
		fmt.Fprintf(out, "%-14s %-14s %s\n", w.Slug, w.Name, prefix(w.About, 60))
	}
	return nil
}

func prefix(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}

// dropCachedWings removes every cached response that embeds wing content: the wing list and
// the statistics, which carry wing names and slugs.
func dropCachedWings(ctx context.Context, c cache.Cache) {
	cache.Drop(ctx, c, cache.KeyWings, cache.PrefixStats)
}
