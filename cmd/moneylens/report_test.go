package main

import (
	"context"
	"database/sql"
	"path/filepath"
	"strings"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moneylens/internal/storage"
)

// seedDatabase writes a minimal money-manager database: one expense and one
// income in January, one expense in February.
func seedDatabase(t *testing.T) string {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "money_manager.db")

	db, err := sql.Open("sqlite3", dbPath)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	stmts := []string{
		`CREATE TABLE INOUTCOME (uid INTEGER PRIMARY KEY AUTOINCREMENT, WDATE TEXT NOT NULL, ZMONEY REAL NOT NULL, DO_TYPE INTEGER NOT NULL, ctgUid INTEGER, assetUid INTEGER)`,
		`CREATE TABLE ZCATEGORY (uid INTEGER PRIMARY KEY, NAME TEXT NOT NULL, pUid INTEGER)`,
		`CREATE TABLE ASSETS (uid INTEGER PRIMARY KEY, NIC_NAME TEXT NOT NULL)`,
		`INSERT INTO ZCATEGORY VALUES (1, 'Food', NULL), (2, '🍔 Restaurants', 1), (3, 'Salary', NULL)`,
		`INSERT INTO ASSETS VALUES (1, 'Cash'), (2, 'Credit Card')`,
		`INSERT INTO INOUTCOME (WDATE, ZMONEY, DO_TYPE, ctgUid, assetUid) VALUES
			('2024-01-10 12:00:00', 100, 1, 2, 2),
			('2024-02-05 12:00:00', 50, 1, 2, 1),
			('2024-01-31 12:00:00', 200, 0, 3, 1)`,
	}
	for _, stmt := range stmts {
		_, err := db.Exec(stmt)
		require.NoError(t, err)
	}
	return dbPath
}

func TestRunReports(t *testing.T) {
	store, err := storage.NewSQLiteStore(seedDatabase(t))
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	var sb strings.Builder
	err = runReports(context.Background(), store, &sb)
	require.NoError(t, err)

	out := sb.String()
	for _, header := range []string{
		"Monthly Income and Expenses",
		"Monthly Net Revenue",
		"Average Monthly Expense",
		"Average Monthly Income",
		"Expenses by Sub-Category",
		"Expenses by Main Category",
		"Income by Main Category",
		"Monthly Expenses by Sub-Category (Pivot)",
		"Monthly Expenses by Main Category (Pivot)",
		"Monthly Income by Main Category (Pivot)",
		"Average Monthly Expense by Main Category",
		"Expenses by Payment Method",
		"Income by Payment Method",
		"Month with Highest Expenses",
	} {
		assert.Contains(t, out, header)
	}

	assert.Contains(t, out, "75.00", "average monthly expense")
	assert.Contains(t, out, "Restaurants")
	assert.NotContains(t, out, "🍔", "category pictographs never reach the output")
}

func TestRunReportsEmptyStore(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "empty.db")
	db, err := sql.Open("sqlite3", dbPath)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE INOUTCOME (uid INTEGER PRIMARY KEY, WDATE TEXT, ZMONEY REAL, DO_TYPE INTEGER, ctgUid INTEGER, assetUid INTEGER)`)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE ZCATEGORY (uid INTEGER PRIMARY KEY, NAME TEXT, pUid INTEGER)`)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE ASSETS (uid INTEGER PRIMARY KEY, NIC_NAME TEXT)`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	store, err := storage.NewSQLiteStore(dbPath)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	var sb strings.Builder
	err = runReports(context.Background(), store, &sb)
	require.NoError(t, err, "an empty store reports no-data, it does not fail")
	assert.Contains(t, sb.String(), "(no data)")
}
