package connection

import (
	"context"
	"database/sql"
	"os"
	"strings"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
	"github.com/telosnetwork/telos-profiles/pkg/types"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
)

func TestRepository_CreateAssignsMonotonicIDs(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	applyDDL(t, db)

	repo, err := NewRepository(RepositoryConfig{DB: db})
	require.NoError(t, err)

	first, err := repo.CreateConnection(ctx, types.Connection{Source: "alice", Destination: "bob"})
	require.NoError(t, err)
	second, err := repo.CreateConnection(ctx, types.Connection{Source: "alice", Destination: "carol"})
	require.NoError(t, err)

	require.Greater(t, second.ID, first.ID)
	require.NotZero(t, first.CreatedAt)
}

func TestRepository_Orderings(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	applyDDL(t, db)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	repo, err := NewRepository(RepositoryConfig{DB: db})
	require.NoError(t, err)

	edges := []types.Connection{
		{Source: "alice", Destination: "bob", CreatedAt: base},
		{Source: "bob", Destination: "alice", CreatedAt: base.Add(time.Minute)},
		{Source: "alice", Destination: "carol", CreatedAt: base.Add(2 * time.Minute)},
		{Source: "carol", Destination: "bob", CreatedAt: base.Add(3 * time.Minute)},
	}
	for _, edge := range edges {
		_, err := repo.CreateConnection(ctx, edge)
		require.NoError(t, err)
	}

	outgoing, err := repo.ListBySource(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, outgoing, 2)
	require.Equal(t, types.AccountName("bob"), outgoing[0].Destination)
	require.Equal(t, types.AccountName("carol"), outgoing[1].Destination)

	incoming, err := repo.ListByDestination(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, incoming, 2)
	require.Equal(t, types.AccountName("alice"), incoming[0].Source)
	require.Equal(t, types.AccountName("carol"), incoming[1].Source)

	recent, err := repo.ListRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	require.Equal(t, types.AccountName("carol"), recent[0].Source)
	require.Equal(t, types.AccountName("alice"), recent[1].Source)

	all, err := repo.ListRecent(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 4)
}

func TestRepository_DeleteRemovesFromAllViews(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	applyDDL(t, db)

	repo, err := NewRepository(RepositoryConfig{DB: db})
	require.NoError(t, err)

	edge, err := repo.CreateConnection(ctx, types.Connection{Source: "alice", Destination: "bob"})
	require.NoError(t, err)

	require.NoError(t, repo.DeleteConnection(ctx, edge.ID))

	outgoing, err := repo.ListBySource(ctx, "alice")
	require.NoError(t, err)
	require.Empty(t, outgoing)

	incoming, err := repo.ListByDestination(ctx, "bob")
	require.NoError(t, err)
	require.Empty(t, incoming)

	recent, err := repo.ListRecent(ctx, 0)
	require.NoError(t, err)
	require.Empty(t, recent)
}

func TestRepository_SelfLoopAllowed(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	applyDDL(t, db)

	repo, err := NewRepository(RepositoryConfig{DB: db})
	require.NoError(t, err)

	edge, err := repo.CreateConnection(ctx, types.Connection{Source: "alice", Destination: "alice"})
	require.NoError(t, err)
	require.Equal(t, edge.Source, edge.Destination)
}

func newTestDB(t *testing.T) *bun.DB {
	sqldb, err := sql.Open("sqlite3", ":memory:?cache=shared")
	require.NoError(t, err)
	sqldb.SetMaxOpenConns(1)
	db := bun.NewDB(sqldb, sqlitedialect.New())
	t.Cleanup(func() {
		_ = db.Close()
		_ = sqldb.Close()
	})
	return db
}

func applyDDL(t *testing.T, db *bun.DB) {
	content, err := os.ReadFile("../data/sql/migrations/sqlite/00001_profiles_core.up.sql")
	require.NoError(t, err)
	for _, stmt := range splitStatements(string(content)) {
		if strings.TrimSpace(stmt) == "" {
			continue
		}
		_, err := db.Exec(stmt)
		require.NoError(t, err)
	}
}

func splitStatements(sql string) []string {
	lines := strings.Split(sql, "\n")
	var builder strings.Builder
	var statements []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "--") {
			continue
		}
		builder.WriteString(line)
		if strings.HasSuffix(line, ";") {
			statements = append(statements, strings.TrimSuffix(builder.String(), ";"))
			builder.Reset()
		} else {
			builder.WriteString(" ")
		}
	}
	if builder.Len() > 0 {
		statements = append(statements, builder.String())
	}
	return statements
}
