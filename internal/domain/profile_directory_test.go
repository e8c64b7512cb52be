package domain_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/feequote/internal/domain"
)

func TestInMemoryProfileDirectory(t *testing.T) {
	ctx := context.Background()

	t.Run("should store and replace profiles", func(t *testing.T) {
		dir := domain.NewInMemoryProfileDirectory()

		require.NoError(t, dir.PutProfile(ctx, "sponsor-1", bronze()))

		updated := domain.RequesterProfile{ReputationScore: dec("900"), CumulativeSpend: dec("125000")}
		require.NoError(t, dir.PutProfile(ctx, "sponsor-1", updated))

		got, err := dir.GetProfile(ctx, "sponsor-1")
		require.NoError(t, err)
		require.True(t, dec("125000").Equal(got.CumulativeSpend))
		require.True(t, dec("900").Equal(got.ReputationScore))
	})

	t.Run("should return not found for unknown requesters", func(t *testing.T) {
		dir := domain.NewInMemoryProfileDirectory()

		_, err := dir.GetProfile(ctx, "ghost")
		require.ErrorIs(t, err, domain.ErrProfileNotFound)
		require.Contains(t, err.Error(), "ghost")
	})

	t.Run("should reject an empty requester id", func(t *testing.T) {
		dir := domain.NewInMemoryProfileDirectory()
		require.Error(t, dir.PutProfile(ctx, "", bronze()))
	})
}
