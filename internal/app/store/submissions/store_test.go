package submissions_test

import (
	"reflect"
	"testing"

	"github.com/formhub/formhub/internal/app/store/submissions"
	"github.com/formhub/formhub/internal/testutil"
)

var adaRow = []string{
	"January 1, 2024, 12:00 PM UTC",
	"Ada",
	"Lovelace",
	"ada@example.com",
	"Not provided",
	"Hello\nWorld",
}

func TestAppendRow_PreservesColumnOrder(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := submissions.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := store.AppendRow(ctx, adaRow); err != nil {
		t.Fatalf("AppendRow failed: %v", err)
	}

	rows, err := store.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if !reflect.DeepEqual(rows[0].Columns, adaRow) {
		t.Errorf("columns:\n got %q\nwant %q", rows[0].Columns, adaRow)
	}
	if rows[0].ID.IsZero() {
		t.Error("expected storage ID to be assigned")
	}
	if rows[0].ReceivedAt.IsZero() {
		t.Error("expected received time to be set")
	}
}

func TestAppendRow_DuplicatesProduceDistinctRows(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := submissions.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	for i := 0; i < 2; i++ {
		if err := store.AppendRow(ctx, adaRow); err != nil {
			t.Fatalf("AppendRow failed: %v", err)
		}
	}

	rows, err := store.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].ID == rows[1].ID {
		t.Error("duplicate appends should get distinct storage IDs")
	}
}

func TestEnsureIndexes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := submissions.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := store.EnsureIndexes(ctx); err != nil {
		t.Fatalf("EnsureIndexes failed: %v", err)
	}
}
