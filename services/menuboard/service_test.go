package menuboard

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"lunchboard-backend/lib/menus"
	"lunchboard-backend/lib/telemetry"
	"lunchboard-backend/services/menuboard/db"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupStore(t *testing.T) Store {
	t.Helper()

	sqlite, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { sqlite.Close() })

	_, err = sqlite.Exec(db.Schema)
	if err != nil {
		t.Fatal(err)
	}
	return NewStore(sqlite)
}

var storedBatch = menus.MenuBatch{
	{
		Name: "Cafe A",
		Menu: menus.DayMenu{
			"2016-04-11": {"Keitettyjä perunoita (G, L)", "Sitruunaisia kalapaloja (L)"},
			"2016-04-13": {"Hernekeitto", "Pannukakku"},
		},
	},
	{
		Name: "Cafe B",
		Menu: menus.DayMenu{
			"2016-04-12": {"Broileripasta", "Kasvispihvit"},
		},
	},
}

func TestInsertAndQueryRoundTrip(t *testing.T) {
	cleanup := telemetry.SetupForTesting("test:services/menuboard")
	defer cleanup()

	store := setupStore(t)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	err := store.Insert(ctx, storedBatch)
	require.NoError(t, err)

	// any date inside the stored range hits the batch
	for _, date := range []string{"2016-04-11", "2016-04-12", "2016-04-13"} {
		batch, err := store.Query(ctx, date)
		require.NoError(t, err)

		diff := cmp.Diff(storedBatch, batch)
		if diff != "" {
			t.Fatal(diff)
		}
	}
}

func TestQueryMiss(t *testing.T) {
	cleanup := telemetry.SetupForTesting("test:services/menuboard")
	defer cleanup()

	store := setupStore(t)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	err := store.Insert(ctx, storedBatch)
	require.NoError(t, err)

	// outside the stored range on both sides
	for _, date := range []string{"2016-04-10", "2016-04-14"} {
		batch, err := store.Query(ctx, date)
		require.NoError(t, err)
		require.Len(t, batch, 0)
	}
}

func TestQueryNewestBatchWins(t *testing.T) {
	cleanup := telemetry.SetupForTesting("test:services/menuboard")
	defer cleanup()

	store := setupStore(t)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	require.NoError(t, store.Insert(ctx, storedBatch))

	rescraped := menus.MenuBatch{
		{Name: "Cafe A", Menu: menus.DayMenu{"2016-04-11": {"Korjattu keitto", "Korjattu pihvi"}}},
	}
	require.NoError(t, store.Insert(ctx, rescraped))

	batch, err := store.Query(ctx, "2016-04-11")
	require.NoError(t, err)

	diff := cmp.Diff(rescraped, batch)
	if diff != "" {
		t.Fatal(diff)
	}
}

func TestInsertEmptyBatch(t *testing.T) {
	cleanup := telemetry.SetupForTesting("test:services/menuboard")
	defer cleanup()

	store := setupStore(t)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	err := store.Insert(ctx, menus.MenuBatch{})
	require.ErrorIs(t, err, ErrEmptyBatch)

	// a batch of restaurants with no day menus is just as empty
	err = store.Insert(ctx, menus.MenuBatch{{Name: "Cafe A", Menu: menus.DayMenu{}}})
	require.ErrorIs(t, err, ErrEmptyBatch)
}
