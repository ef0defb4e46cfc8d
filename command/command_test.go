package command

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/telosnetwork/telos-profiles/pkg/types"
)

type fakeConfigRepo struct {
	conf     *types.Config
	setCalls int
}

func newFakeConfigRepo() *fakeConfigRepo {
	return &fakeConfigRepo{}
}

func (r *fakeConfigRepo) GetConfig(context.Context) (*types.Config, error) {
	if r.conf == nil {
		return nil, nil
	}
	copied := *r.conf
	return &copied, nil
}

func (r *fakeConfigRepo) SetConfig(_ context.Context, conf types.Config) (*types.Config, error) {
	r.setCalls++
	now := time.Now().UTC()
	if conf.CreatedAt.IsZero() {
		conf.CreatedAt = now
	}
	conf.UpdatedAt = now
	r.conf = &conf
	copied := conf
	return &copied, nil
}

func initializedConfigRepo(admin types.AccountName) *fakeConfigRepo {
	repo := newFakeConfigRepo()
	repo.conf = &types.Config{
		ContractName:    "telos-profiles",
		ContractVersion: "1.0.0",
		Admin:           admin,
		DefaultAvatar:   DefaultAvatarURL,
		Limits:          types.DefaultLimitPolicy(),
		CreatedAt:       time.Now().UTC(),
		UpdatedAt:       time.Now().UTC(),
	}
	return repo
}

type fakeProfileRepo struct {
	profiles map[types.AccountName]*types.Profile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[types.AccountName]*types.Profile)}
}

func (r *fakeProfileRepo) add(account types.AccountName) {
	r.profiles[account] = &types.Profile{
		Account:     account,
		DisplayName: account.String(),
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}
}

func (r *fakeProfileRepo) GetProfile(_ context.Context, account types.AccountName) (*types.Profile, error) {
	prof, ok := r.profiles[account]
	if !ok {
		return nil, nil
	}
	copied := *prof
	return &copied, nil
}

func (r *fakeProfileRepo) ProfileExists(_ context.Context, account types.AccountName) (bool, error) {
	_, ok := r.profiles[account]
	return ok, nil
}

func (r *fakeProfileRepo) CreateProfile(_ context.Context, profile types.Profile) (*types.Profile, error) {
	if _, ok := r.profiles[profile.Account]; ok {
		return nil, types.ErrProfileExists(profile.Account)
	}
	now := time.Now().UTC()
	profile.CreatedAt = now
	profile.UpdatedAt = now
	r.profiles[profile.Account] = &profile
	copied := profile
	return &copied, nil
}

func (r *fakeProfileRepo) UpdateProfile(_ context.Context, profile types.Profile) (*types.Profile, error) {
	existing, ok := r.profiles[profile.Account]
	if !ok {
		return nil, types.ErrProfileNotFound(profile.Account)
	}
	profile.CreatedAt = existing.CreatedAt
	profile.UpdatedAt = time.Now().UTC()
	r.profiles[profile.Account] = &profile
	copied := profile
	return &copied, nil
}

func (r *fakeProfileRepo) DeleteProfile(_ context.Context, account types.AccountName) error {
	if _, ok := r.profiles[account]; !ok {
		return types.ErrProfileNotFound(account)
	}
	delete(r.profiles, account)
	return nil
}

type fakeAnnotationRepo struct {
	records map[string]*types.Annotation
}

func newFakeAnnotationRepo() *fakeAnnotationRepo {
	return &fakeAnnotationRepo{records: make(map[string]*types.Annotation)}
}

func annotationKey(writer, subject types.AccountName) string {
	return fmt.Sprintf("%s|%s", writer, subject)
}

func (r *fakeAnnotationRepo) GetAnnotation(_ context.Context, writer, subject types.AccountName) (*types.Annotation, error) {
	rec, ok := r.records[annotationKey(writer, subject)]
	if !ok {
		return nil, nil
	}
	copied := *rec
	return &copied, nil
}

func (r *fakeAnnotationRepo) UpsertAnnotation(_ context.Context, annotation types.Annotation) (*types.Annotation, error) {
	key := annotationKey(annotation.Writer, annotation.Subject)
	now := time.Now().UTC()
	if existing, ok := r.records[key]; ok {
		annotation.CreatedAt = existing.CreatedAt
	} else {
		annotation.CreatedAt = now
	}
	annotation.UpdatedAt = now
	r.records[key] = &annotation
	copied := annotation
	return &copied, nil
}

func (r *fakeAnnotationRepo) DeleteAnnotation(_ context.Context, writer, subject types.AccountName) error {
	key := annotationKey(writer, subject)
	if _, ok := r.records[key]; !ok {
		return types.ErrAnnotationNotFound(writer, subject)
	}
	delete(r.records, key)
	return nil
}

func (r *fakeAnnotationRepo) ListAnnotations(_ context.Context, writer types.AccountName) ([]types.Annotation, error) {
	out := make([]types.Annotation, 0)
	for _, rec := range r.records {
		if rec.Writer == writer {
			out = append(out, *rec)
		}
	}
	return out, nil
}

type fakeConnectionRepo struct {
	edges  []types.Connection
	nextID int64
}

func newFakeConnectionRepo() *fakeConnectionRepo {
	return &fakeConnectionRepo{nextID: 1}
}

func (r *fakeConnectionRepo) ListBySource(_ context.Context, source types.AccountName) ([]types.Connection, error) {
	out := make([]types.Connection, 0)
	for _, edge := range r.edges {
		if edge.Source == source {
			out = append(out, edge)
		}
	}
	return out, nil
}

func (r *fakeConnectionRepo) ListByDestination(_ context.Context, destination types.AccountName) ([]types.Connection, error) {
	out := make([]types.Connection, 0)
	for _, edge := range r.edges {
		if edge.Destination == destination {
			out = append(out, edge)
		}
	}
	return out, nil
}

func (r *fakeConnectionRepo) ListRecent(_ context.Context, limit int) ([]types.Connection, error) {
	out := make([]types.Connection, len(r.edges))
	copy(out, r.edges)
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeConnectionRepo) CreateConnection(_ context.Context, connection types.Connection) (*types.Connection, error) {
	connection.ID = r.nextID
	r.nextID++
	if connection.CreatedAt.IsZero() {
		connection.CreatedAt = time.Now().UTC()
	}
	r.edges = append(r.edges, connection)
	copied := connection
	return &copied, nil
}

func (r *fakeConnectionRepo) DeleteConnection(_ context.Context, id int64) error {
	for i, edge := range r.edges {
		if edge.ID == id {
			r.edges = append(r.edges[:i], r.edges[i+1:]...)
			return nil
		}
	}
	return nil
}

func actor(account types.AccountName, permissions ...types.Permission) types.ActorRef {
	return types.ActorRef{Account: account, Permissions: permissions}
}

func TestInitializeCommand(t *testing.T) {
	repo := newFakeConfigRepo()

	var event types.ConfigEvent
	cmd := NewInitializeCommand(ConfigCommandConfig{
		Repository: repo,
		Contract:   "profiles",
		Hooks: types.Hooks{
			AfterConfigChange: func(_ context.Context, e types.ConfigEvent) { event = e },
		},
	})

	result := &types.Config{}
	err := cmd.Execute(context.Background(), InitializeInput{
		ContractName:    "telos-profiles",
		ContractVersion: "1.0.0",
		InitialAdmin:    "admin.tf",
		Actor:           actor("profiles"),
		Result:          result,
	})
	require.NoError(t, err)
	require.Equal(t, types.AccountName("admin.tf"), result.Admin)
	require.Equal(t, DefaultAvatarURL, result.DefaultAvatar)
	require.Equal(t, types.DefaultLimitPolicy(), result.Limits)
	require.Equal(t, types.AccountName("profiles"), event.Actor)
	require.NotZero(t, event.OccurredAt)
}

func TestInitializeCommand_RequiresContractAuthority(t *testing.T) {
	cmd := NewInitializeCommand(ConfigCommandConfig{
		Repository: newFakeConfigRepo(),
		Contract:   "profiles",
	})

	err := cmd.Execute(context.Background(), InitializeInput{
		ContractName:    "telos-profiles",
		ContractVersion: "1.0.0",
		InitialAdmin:    "admin.tf",
		Actor:           actor("intruder"),
	})
	require.Error(t, err)
	require.True(t, types.IsAuthorizationFailure(err))
}

func TestInitializeCommand_SecondCallFails(t *testing.T) {
	repo := newFakeConfigRepo()
	cmd := NewInitializeCommand(ConfigCommandConfig{
		Repository: repo,
		Contract:   "profiles",
	})

	input := InitializeInput{
		ContractName:    "telos-profiles",
		ContractVersion: "1.0.0",
		InitialAdmin:    "admin.tf",
		Actor:           actor("profiles"),
	}
	require.NoError(t, cmd.Execute(context.Background(), input))

	err := cmd.Execute(context.Background(), input)
	require.Error(t, err)
	require.True(t, types.HasTextCode(err, types.TextCodeAlreadyInitialized))
	require.Equal(t, 1, repo.setCalls)
}

func TestInitializeCommand_RejectsUnknownAdmin(t *testing.T) {
	cmd := NewInitializeCommand(ConfigCommandConfig{
		Repository: newFakeConfigRepo(),
		Contract:   "profiles",
		Resolver: types.AccountResolverFunc(func(context.Context, types.AccountName) (bool, error) {
			return false, nil
		}),
	})

	err := cmd.Execute(context.Background(), InitializeInput{
		ContractName:    "telos-profiles",
		ContractVersion: "1.0.0",
		InitialAdmin:    "ghost",
		Actor:           actor("profiles"),
	})
	require.Error(t, err)
	require.True(t, types.HasTextCode(err, types.TextCodeUnknownPrincipal))
}

func TestSetVersionCommand(t *testing.T) {
	repo := initializedConfigRepo("admin.tf")
	cmd := NewSetVersionCommand(ConfigCommandConfig{Repository: repo})

	err := cmd.Execute(context.Background(), SetVersionInput{
		Version: "2.0.0",
		Actor:   actor("admin.tf"),
	})
	require.NoError(t, err)
	require.Equal(t, "2.0.0", repo.conf.ContractVersion)
}

func TestSetVersionCommand_BeforeInitFails(t *testing.T) {
	cmd := NewSetVersionCommand(ConfigCommandConfig{Repository: newFakeConfigRepo()})

	err := cmd.Execute(context.Background(), SetVersionInput{
		Version: "2.0.0",
		Actor:   actor("admin.tf"),
	})
	require.Error(t, err)
	require.True(t, types.HasTextCode(err, types.TextCodeNotInitialized))
}

func TestSetAdminCommand_RotationBindsImmediately(t *testing.T) {
	repo := initializedConfigRepo("admin.tf")
	cmd := NewSetAdminCommand(ConfigCommandConfig{Repository: repo})

	require.NoError(t, cmd.Execute(context.Background(), SetAdminInput{
		NewAdmin: "newadmin",
		Actor:    actor("admin.tf"),
	}))

	// The old admin lost its authority with the rotation.
	err := cmd.Execute(context.Background(), SetAdminInput{
		NewAdmin: "admin.tf",
		Actor:    actor("admin.tf"),
	})
	require.Error(t, err)
	require.True(t, types.IsAuthorizationFailure(err))

	require.NoError(t, cmd.Execute(context.Background(), SetAdminInput{
		NewAdmin: "admin.tf",
		Actor:    actor("newadmin"),
	}))
	require.Equal(t, types.AccountName("admin.tf"), repo.conf.Admin)
}

func TestSetDefaultAvatarCommand(t *testing.T) {
	repo := initializedConfigRepo("admin.tf")
	cmd := NewSetDefaultAvatarCommand(ConfigCommandConfig{Repository: repo})

	err := cmd.Execute(context.Background(), SetDefaultAvatarInput{
		Avatar: "https://example.com/new.png",
		Actor:  actor("admin.tf"),
	})
	require.NoError(t, err)
	require.Equal(t, "https://example.com/new.png", repo.conf.DefaultAvatar)
}

func TestSetLimitCommand(t *testing.T) {
	repo := initializedConfigRepo("admin.tf")
	cmd := NewSetLimitCommand(ConfigCommandConfig{Repository: repo})

	err := cmd.Execute(context.Background(), SetLimitInput{
		Kind:   types.LimitBio,
		Length: 1024,
		Actor:  actor("admin.tf"),
	})
	require.NoError(t, err)
	require.Equal(t, uint32(1024), repo.conf.Limits.MaxBioLength)
	require.Equal(t, uint32(32), repo.conf.Limits.MaxDisplayNameLength)
}

func TestSetLimitCommand_NonAdminFails(t *testing.T) {
	repo := initializedConfigRepo("admin.tf")
	cmd := NewSetLimitCommand(ConfigCommandConfig{Repository: repo})

	err := cmd.Execute(context.Background(), SetLimitInput{
		Kind:   types.LimitBio,
		Length: 1024,
		Actor:  actor("alice"),
	})
	require.Error(t, err)
	require.True(t, types.IsAuthorizationFailure(err))
	require.Equal(t, uint32(512), repo.conf.Limits.MaxBioLength)
}

func TestSetLimitCommand_UnknownKindFails(t *testing.T) {
	repo := initializedConfigRepo("admin.tf")
	cmd := NewSetLimitCommand(ConfigCommandConfig{Repository: repo})

	err := cmd.Execute(context.Background(), SetLimitInput{
		Kind:   "nickname",
		Length: 10,
		Actor:  actor("admin.tf"),
	})
	require.Error(t, err)
	require.True(t, types.HasTextCode(err, types.TextCodeInvalidLimitName))
}
