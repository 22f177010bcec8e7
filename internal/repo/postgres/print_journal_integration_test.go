//go:build integration

package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/pos_printer/internal/domain"
	"github.com/Gunvolt24/pos_printer/internal/ports"
	pgrepo "github.com/Gunvolt24/pos_printer/internal/repo/postgres"
	"github.com/Gunvolt24/pos_printer/internal/testutil"
)

func startJournal(t *testing.T) (*pgrepo.PrintJournal, context.Context) {
	t.Helper()

	// длинный контекст — только на подъём контейнера
	ctxStart, cancelStart := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancelStart()

	pg, stopPG, err := testutil.StartPostgresTC(ctxStart)
	require.NoError(t, err)
	t.Cleanup(func() { _ = stopPG(context.Background()) })

	// короткий контекст — на сами БД-операции
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)

	return pgrepo.NewPrintJournal(pg.Pool), ctx
}

// 1) Запись и чтение последнего успешного снимка
func TestJournal_RecordAndLastSnapshot_TC(t *testing.T) {
	t.Parallel()
	journal, ctx := startJournal(t)

	snap := testutil.MakeSnapshot()
	now := time.Now().UTC().Truncate(time.Millisecond)

	require.NoError(t, journal.Record(ctx, &ports.JournalEntry{
		OrderID: snap.ID, Role: domain.RoleKitchen, Printed: true, PrintedAt: now, Snapshot: snap,
	}))

	got, err := journal.LastSnapshot(ctx, snap.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, snap.ID, got.ID)
	require.Len(t, got.Items, 1)
	require.True(t, got.Items[0].UnitPrice.Equal(snap.Items[0].UnitPrice))
	require.Equal(t, "Cheese", got.Items[0].Options[0].Name)
	require.True(t, got.TotalAmount.Equal(snap.TotalAmount))
}

// 2) Неуспешные попытки не участвуют в перепечатке
func TestJournal_FailedAttemptsIgnored_TC(t *testing.T) {
	t.Parallel()
	journal, ctx := startJournal(t)

	snap := testutil.MakeSnapshot()
	require.NoError(t, journal.Record(ctx, &ports.JournalEntry{
		OrderID: snap.ID, Role: domain.RoleCashier, Printed: false, Snapshot: snap,
	}))

	got, err := journal.LastSnapshot(ctx, snap.ID)
	require.NoError(t, err)
	require.Nil(t, got)

	missing, err := journal.LastSnapshot(ctx, "no-such-order")
	require.NoError(t, err)
	require.Nil(t, missing)
}

// 3) Последний снимок побеждает; LastN — различные заказы от новых к старым
func TestJournal_LastN_TC(t *testing.T) {
	t.Parallel()
	journal, ctx := startJournal(t)

	base := time.Now().UTC().Add(-time.Hour)
	a := testutil.MakeSnapshot(testutil.WithID("A-" + testutil.UniqSuffix()))
	b := testutil.MakeSnapshot(testutil.WithID("B-" + testutil.UniqSuffix()))
	a2 := testutil.MakeSnapshot(testutil.WithID(a.ID), testutil.WithItems(3))

	for i, e := range []*ports.JournalEntry{
		{OrderID: a.ID, Role: domain.RoleKitchen, Printed: true, Snapshot: a},
		{OrderID: b.ID, Role: domain.RoleCashier, Printed: true, Snapshot: b},
		{OrderID: a2.ID, Role: domain.RoleCashier, Printed: true, Snapshot: a2},
	} {
		e.PrintedAt = base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, journal.Record(ctx, e))
	}

	last, err := journal.LastSnapshot(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, last.Items, 3)

	recent, err := journal.LastN(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	require.Equal(t, a.ID, recent[0].ID)
	require.Equal(t, b.ID, recent[1].ID)

	one, err := journal.LastN(ctx, 1)
	require.NoError(t, err)
	require.Len(t, one, 1)
}

func TestJournal_RecordRejectsEmpty_TC(t *testing.T) {
	t.Parallel()
	journal, ctx := startJournal(t)

	require.Error(t, journal.Record(ctx, nil))
	require.Error(t, journal.Record(ctx, &ports.JournalEntry{OrderID: " ", Snapshot: testutil.MakeSnapshot()}))
}
