package main

import (
	"anvaya-club/internal/global/cache"
	"anvaya-club/internal/model"
	"anvaya-club/internal/repository"
	"anvaya-club/test"
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedWingsOnlyIntoEmptyTable(t *testing.T) {
	ctx := context.Background()
	repo := repository.New(test.NewDB(t))

	n, err := seedWings(ctx, repo, initialWings)
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	n, err = seedWings(ctx, repo, initialWings)
	require.NoError(t, err)
	assert.Zero(t, n)

	wings, err := repo.ListWings(ctx)
	require.NoError(t, err)
	require.Len(t, wings, 5)
	slugs := make([]string, 0, len(wings))
	for _, w := range wings {
		slugs = append(slugs, w.Slug)
	}
	assert.Equal(t, []string{"codezero", "kalavaibhava", "shespark", "ugrs", "udbhava"}, slugs)
}

func TestUpdateWings(t *testing.T) {
	ctx := context.Background()
	repo := repository.New(test.NewDB(t))
	_, err := seedWings(ctx, repo, initialWings)
	require.NoError(t, err)
	before, err := repo.GetWingBySlug(ctx, "codezero")
	require.NoError(t, err)

	updated, created, err := updateWings(ctx, repo, wingContent)
	require.NoError(t, err)
	assert.Equal(t, 3, updated)
	assert.Equal(t, 1, created)

	after, err := repo.GetWingBySlug(ctx, "codezero")
	require.NoError(t, err)
	assert.Equal(t, before.ID, after.ID)
	assert.Contains(t, after.About, "technical coding wing")

	// udbhava is untouched, uthsaha is new
	_, err = repo.GetWingBySlug(ctx, "udbhava")
	require.NoError(t, err)
	_, err = repo.GetWingBySlug(ctx, "uthsaha")
	require.NoError(t, err)
}

func TestVerifyWings(t *testing.T) {
	ctx := context.Background()
	repo := repository.New(test.NewDB(t))
	require.NoError(t, repo.CreateWing(ctx, &model.Wing{Name: "UGRS", Slug: "ugrs", About: "short"}))

	var out bytes.Buffer
	require.NoError(t, verifyWings(ctx, repo, &out))
	assert.Contains(t, out.String(), "1 wings")
	assert.Contains(t, out.String(), "ugrs")
	assert.Contains(t, out.String(), "short")
}

func TestPrefix(t *testing.T) {
	assert.Equal(t, "abc", prefix("abc", 5))
	assert.Equal(t, "ab...", prefix("abcdef", 2))
}

type recordingCache struct {
	cache.Noop
	dropped []string
}

func (r *recordingCache) Invalidate(_ context.Context, prefixes ...string) error {
	r.dropped = append(r.dropped, prefixes...)
	return nil
}

func TestDropCachedWingsIncludesStatistics(t *testing.T) {
	c := &recordingCache{}
	dropCachedWings(context.Background(), c)
	assert.ElementsMatch(t, []string{cache.KeyWings, cache.PrefixStats}, c.dropped)
}
