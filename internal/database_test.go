package internal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/iksnae/labchat/testutil"
)

func TestOpenDatabase(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(t *testing.T) string
		wantErr bool
	}{
		{
			name: "existing database",
			setup: func(t *testing.T) string {
				return testutil.CreateStorageDB(t, map[string]string{"sid": "abc"})
			},
			wantErr: false,
		},
		{
			name: "new database in missing directory",
			setup: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "nested", "dir", "storage.db")
			},
			wantErr: false,
		},
		{
			name: "parent is a file",
			setup: func(t *testing.T) string {
				file := testutil.WriteFile(t, "blocker", []byte("x"))
				return filepath.Join(file, "storage.db")
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dbPath := tt.setup(t)
			db, err := OpenDatabase(dbPath)
			if (err != nil) != tt.wantErr {
				t.Fatalf("OpenDatabase() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			defer db.Close()

			if _, err := os.Stat(dbPath); err != nil {
				t.Errorf("database file not created: %v", err)
			}
			if _, err := QueryItems(db); err != nil {
				t.Errorf("ItemTable not usable: %v", err)
			}
		})
	}
}

func TestItemRoundTrip(t *testing.T) {
	db, err := OpenDatabase(filepath.Join(t.TempDir(), "storage.db"))
	if err != nil {
		t.Fatalf("OpenDatabase() error = %v", err)
	}
	defer db.Close()

	if _, ok, err := QueryItem(db, "sid"); err != nil || ok {
		t.Fatalf("QueryItem() on empty table = ok %v, err %v", ok, err)
	}

	if err := UpsertItem(db, "sid", "first"); err != nil {
		t.Fatalf("UpsertItem() error = %v", err)
	}
	if err := UpsertItem(db, "sid", "second"); err != nil {
		t.Fatalf("UpsertItem() overwrite error = %v", err)
	}

	value, ok, err := QueryItem(db, "sid")
	if err != nil || !ok || value != "second" {
		t.Errorf("QueryItem() = %q, %v, %v; want second, true, nil", value, ok, err)
	}

	if err := DeleteItem(db, "sid"); err != nil {
		t.Fatalf("DeleteItem() error = %v", err)
	}
	if _, ok, _ := QueryItem(db, "sid"); ok {
		t.Error("item still present after DeleteItem()")
	}
}

func TestQueryItems_SkipsNullValues(t *testing.T) {
	path := testutil.CreateStorageDB(t, map[string]string{"b": "2", "a": "1"})
	raw := testutil.OpenDB(t, path)
	if _, err := raw.Exec("INSERT INTO ItemTable (key, value) VALUES ('c', NULL)"); err != nil {
		t.Fatal(err)
	}

	db, err := OpenDatabase(path)
	if err != nil {
		t.Fatalf("OpenDatabase() error = %v", err)
	}
	defer db.Close()

	pairs, err := QueryItems(db)
	if err != nil {
		t.Fatalf("QueryItems() error = %v", err)
	}
	if len(pairs) != 2 || pairs[0].Key != "a" || pairs[1].Key != "b" {
		t.Errorf("QueryItems() = %+v, want a and b in order", pairs)
	}

	if _, ok, err := QueryItem(db, "c"); ok || err != nil {
		t.Errorf("QueryItem() on NULL value = ok %v, err %v", ok, err)
	}
}
