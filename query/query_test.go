package query

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/telosnetwork/telos-profiles/pkg/types"
)

type stubProfileRepo struct {
	types.ProfileRepository
	profiles map[types.AccountName]*types.Profile
}

func (s stubProfileRepo) GetProfile(_ context.Context, account types.AccountName) (*types.Profile, error) {
	return s.profiles[account], nil
}

func (s stubProfileRepo) ProfileExists(_ context.Context, account types.AccountName) (bool, error) {
	_, ok := s.profiles[account]
	return ok, nil
}

type stubConfigRepo struct {
	types.ConfigRepository
	conf *types.Config
}

func (s stubConfigRepo) GetConfig(context.Context) (*types.Config, error) {
	return s.conf, nil
}

type stubAnnotationRepo struct {
	types.AnnotationRepository
	records []types.Annotation
}

func (s stubAnnotationRepo) GetAnnotation(_ context.Context, writer, subject types.AccountName) (*types.Annotation, error) {
	for _, rec := range s.records {
		if rec.Writer == writer && rec.Subject == subject {
			return &rec, nil
		}
	}
	return nil, nil
}

func (s stubAnnotationRepo) ListAnnotations(_ context.Context, writer types.AccountName) ([]types.Annotation, error) {
	out := make([]types.Annotation, 0)
	for _, rec := range s.records {
		if rec.Writer == writer {
			out = append(out, rec)
		}
	}
	return out, nil
}

type stubConnectionRepo struct {
	types.ConnectionRepository
	edges []types.Connection
}

func (s stubConnectionRepo) ListBySource(_ context.Context, source types.AccountName) ([]types.Connection, error) {
	out := make([]types.Connection, 0)
	for _, edge := range s.edges {
		if edge.Source == source {
			out = append(out, edge)
		}
	}
	return out, nil
}

func (s stubConnectionRepo) ListByDestination(_ context.Context, destination types.AccountName) ([]types.Connection, error) {
	out := make([]types.Connection, 0)
	for _, edge := range s.edges {
		if edge.Destination == destination {
			out = append(out, edge)
		}
	}
	return out, nil
}

func (s stubConnectionRepo) ListRecent(_ context.Context, limit int) ([]types.Connection, error) {
	out := make([]types.Connection, len(s.edges))
	copy(out, s.edges)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func TestConfigQuery(t *testing.T) {
	ctx := context.Background()

	q := NewConfigQuery(stubConfigRepo{})
	conf, err := q.Query(ctx, ConfigQueryInput{})
	require.NoError(t, err)
	require.Nil(t, conf)

	q = NewConfigQuery(stubConfigRepo{conf: &types.Config{ContractVersion: "1.0.0"}})
	conf, err = q.Query(ctx, ConfigQueryInput{})
	require.NoError(t, err)
	require.Equal(t, "1.0.0", conf.ContractVersion)

	_, err = NewConfigQuery(nil).Query(ctx, ConfigQueryInput{})
	require.ErrorIs(t, err, types.ErrMissingConfigRepository)
}

func TestProfileQueries(t *testing.T) {
	ctx := context.Background()
	repo := stubProfileRepo{profiles: map[types.AccountName]*types.Profile{
		"alice": {Account: "alice", DisplayName: "Alice"},
	}}

	prof, err := NewProfileQuery(repo).Query(ctx, ProfileQueryInput{Account: "alice"})
	require.NoError(t, err)
	require.Equal(t, "Alice", prof.DisplayName)

	prof, err = NewProfileQuery(repo).Query(ctx, ProfileQueryInput{Account: "ghost"})
	require.NoError(t, err)
	require.Nil(t, prof)

	_, err = NewProfileQuery(repo).Query(ctx, ProfileQueryInput{})
	require.ErrorIs(t, err, types.ErrAccountRequired)

	exists, err := NewProfileExistsQuery(repo).Query(ctx, ProfileQueryInput{Account: "alice"})
	require.NoError(t, err)
	require.True(t, exists)

	exists, err = NewProfileExistsQuery(repo).Query(ctx, ProfileQueryInput{Account: "ghost"})
	require.NoError(t, err)
	require.False(t, exists)
}

func TestAnnotationQueries(t *testing.T) {
	ctx := context.Background()
	repo := stubAnnotationRepo{records: []types.Annotation{
		{Writer: "carol", Subject: "bob", Payload: "note"},
		{Writer: "carol", Subject: "alice", Payload: "other"},
		{Writer: "dan", Subject: "bob", Payload: "dan's"},
	}}

	ann, err := NewAnnotationQuery(repo).Query(ctx, AnnotationQueryInput{Writer: "carol", Subject: "bob"})
	require.NoError(t, err)
	require.Equal(t, "note", ann.Payload)

	ann, err = NewAnnotationQuery(repo).Query(ctx, AnnotationQueryInput{Writer: "carol", Subject: "ghost"})
	require.NoError(t, err)
	require.Nil(t, ann)

	_, err = NewAnnotationQuery(repo).Query(ctx, AnnotationQueryInput{Writer: "carol"})
	require.ErrorIs(t, err, types.ErrAccountRequired)

	rows, err := NewAnnotationsByWriterQuery(repo).Query(ctx, AnnotationsByWriterInput{Writer: "carol"})
	require.NoError(t, err)
	require.Len(t, rows, 2)
}

func TestConnectionQueries(t *testing.T) {
	ctx := context.Background()
	repo := stubConnectionRepo{edges: []types.Connection{
		{ID: 1, Source: "alice", Destination: "bob"},
		{ID: 2, Source: "bob", Destination: "alice"},
		{ID: 3, Source: "alice", Destination: "carol"},
	}}

	outgoing, err := NewConnectionsBySourceQuery(repo).Query(ctx, ConnectionsByAccountInput{Account: "alice"})
	require.NoError(t, err)
	require.Len(t, outgoing, 2)

	incoming, err := NewConnectionsByDestinationQuery(repo).Query(ctx, ConnectionsByAccountInput{Account: "alice"})
	require.NoError(t, err)
	require.Len(t, incoming, 1)

	recent, err := NewRecentConnectionsQuery(repo).Query(ctx, RecentConnectionsInput{Limit: 2})
	require.NoError(t, err)
	require.Len(t, recent, 2)

	_, err = NewConnectionsBySourceQuery(repo).Query(ctx, ConnectionsByAccountInput{})
	require.ErrorIs(t, err, types.ErrAccountRequired)
}
