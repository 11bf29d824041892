package settings_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amethyst/enscribe/internal/model"
	"github.com/amethyst/enscribe/internal/settings"
	"github.com/amethyst/enscribe/tests/testutil"
)

func TestGetReadsDefaultsFromEmptyStore(t *testing.T) {
	cell := settings.NewCell(testutil.NewTestStore(t))

	got, err := cell.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.DefaultSettings(), got)
}

func TestGetReadsPersistedRow(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	saved := model.DefaultSettings()
	saved.ThemeName = "Midnight"
	saved.IsGridView = false
	require.NoError(t, s.SaveSettings(ctx, saved))

	cell := settings.NewCell(s)
	got, err := cell.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved, got)
}

func TestSavePersistsAndUpdatesCell(t *testing.T) {
	s := testutil.NewTestStore(t)
	cell := settings.NewCell(s)
	ctx := context.Background()

	next := model.DefaultSettings()
	next.ThemeName = "Amethyst"
	require.NoError(t, cell.Save(ctx, next))

	got, err := cell.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Amethyst", got.ThemeName)

	// The row is durable, not just cached.
	persisted, err := s.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Amethyst", persisted.ThemeName)
}

func TestSubscribeDeliversCurrentValueImmediately(t *testing.T) {
	s := testutil.NewTestStore(t)
	cell := settings.NewCell(s)
	ctx := context.Background()

	saved := model.DefaultSettings()
	saved.ThemeName = "Lavender"
	require.NoError(t, cell.Save(ctx, saved))

	ch, cancel := cell.Subscribe()
	defer cancel()

	got := <-ch
	assert.Equal(t, "Lavender", got.ThemeName)
}

func TestSubscribeBeforeLoadDeliversDefaults(t *testing.T) {
	cell := settings.NewCell(testutil.NewTestStore(t))

	ch, cancel := cell.Subscribe()
	defer cancel()

	got := <-ch
	assert.Equal(t, model.DefaultSettings(), got)
}

func TestSubscribersSeeEverySave(t *testing.T) {
	cell := settings.NewCell(testutil.NewTestStore(t))
	ctx := context.Background()

	ch, cancel := cell.Subscribe()
	defer cancel()
	<-ch // initial value

	next := model.DefaultSettings()
	next.ThemeName = "Mint"
	require.NoError(t, cell.Save(ctx, next))
	assert.Equal(t, "Mint", (<-ch).ThemeName)

	next.ThemeName = "Aqua"
	require.NoError(t, cell.Save(ctx, next))
	assert.Equal(t, "Aqua", (<-ch).ThemeName)
}

func TestSlowSubscriberSeesLatestValueOnly(t *testing.T) {
	cell := settings.NewCell(testutil.NewTestStore(t))
	ctx := context.Background()

	ch, cancel := cell.Subscribe()
	defer cancel()
	// Never drain the initial value; each save overwrites the buffer.

	next := model.DefaultSettings()
	next.ThemeName = "Burgundy"
	require.NoError(t, cell.Save(ctx, next))

	next.ThemeName = "Graphene"
	require.NoError(t, cell.Save(ctx, next))

	assert.Equal(t, "Graphene", (<-ch).ThemeName)
}

func TestCancelClosesChannel(t *testing.T) {
	cell := settings.NewCell(testutil.NewTestStore(t))

	ch, cancel := cell.Subscribe()
	<-ch
	cancel()

	_, open := <-ch
	assert.False(t, open)

	// A save after cancel must not panic or block.
	require.NoError(t, cell.Save(context.Background(), model.DefaultSettings()))
}
