package service

import (
	"context"

	"github.com/telosnetwork/telos-profiles/activity"
	"github.com/telosnetwork/telos-profiles/annotation"
	"github.com/telosnetwork/telos-profiles/capability"
	"github.com/telosnetwork/telos-profiles/command"
	"github.com/telosnetwork/telos-profiles/config"
	"github.com/telosnetwork/telos-profiles/connection"
	"github.com/telosnetwork/telos-profiles/pkg/types"
	"github.com/telosnetwork/telos-profiles/profile"
	"github.com/telosnetwork/telos-profiles/query"
	"github.com/uptrace/bun"
)

// Service is the entry point for telos-profiles. It wires repositories, the
// capability guard, hooks, and the command/query facades supplied by the
// host application.
type Service struct {
	cfg            Config
	commands       Commands
	queries        Queries
	configRepo     types.ConfigRepository
	profileRepo    types.ProfileRepository
	annotationRepo types.AnnotationRepository
	connectionRepo types.ConnectionRepository
	guard          capability.Guard
}

// Commands exposes the service command handlers.
type Commands struct {
	Initialize       *command.InitializeCommand
	SetVersion       *command.SetVersionCommand
	SetAdmin         *command.SetAdminCommand
	SetDefaultAvatar *command.SetDefaultAvatarCommand
	SetLimit         *command.SetLimitCommand
	ProfileCreate    *command.ProfileCreateCommand
	EditDisplayName  *command.EditDisplayNameCommand
	EditAvatar       *command.EditAvatarCommand
	EditBio          *command.EditBioCommand
	EditStatus       *command.EditStatusCommand
	ProfileVerify    *command.ProfileVerifyCommand
	ProfileDelete    *command.ProfileDeleteCommand
	AnnotationWrite  *command.AnnotationWriteCommand
	AnnotationDelete *command.AnnotationDeleteCommand
	Connect          *command.ConnectCommand
	Disconnect       *command.DisconnectCommand
}

// Queries exposes read-model helpers.
type Queries struct {
	Config                   *query.ConfigQuery
	ProfileDetail            *query.ProfileQuery
	ProfileExists            *query.ProfileExistsQuery
	AnnotationDetail         *query.AnnotationQuery
	AnnotationsByWriter      *query.AnnotationsByWriterQuery
	ConnectionsBySource      *query.ConnectionsBySourceQuery
	ConnectionsByDestination *query.ConnectionsByDestinationQuery
	RecentConnections        *query.RecentConnectionsQuery
}

// Config captures all required dependencies. Supplying DB builds the default
// Bun repositories; hosts can instead provide their own repository
// implementations record by record.
type Config struct {
	DB *bun.DB

	// Contract is the system principal that owns initialization and holds
	// the verify permission.
	Contract types.AccountName

	ConfigRepository     types.ConfigRepository
	ProfileRepository    types.ProfileRepository
	AnnotationRepository types.AnnotationRepository
	ConnectionRepository types.ConnectionRepository

	Guard           capability.Guard
	Oracle          types.CapabilityOracle
	AccountResolver types.AccountResolver
	Hooks           types.Hooks
	Clock           types.Clock
	IDGenerator     types.IDGenerator
	Logger          types.Logger

	// Activity, when set, receives an audit record for every committed
	// command in addition to the caller's own hooks.
	Activity types.ActivitySink
}

// New constructs a Service from the supplied configuration.
func New(cfg Config) *Service {
	norm := normalizeConfig(cfg)

	guard := norm.Guard
	if guard == nil {
		guard = capability.NewGuard(norm.Oracle)
	}

	s := &Service{
		cfg:            norm,
		configRepo:     buildConfigRepo(norm),
		profileRepo:    buildProfileRepo(norm),
		annotationRepo: buildAnnotationRepo(norm),
		connectionRepo: buildConnectionRepo(norm),
		guard:          capability.Ensure(guard),
	}
	s.commands = s.buildCommands()
	s.queries = s.buildQueries()
	return s
}

func normalizeConfig(cfg Config) Config {
	if cfg.Clock == nil {
		cfg.Clock = types.SystemClock{}
	}
	if cfg.IDGenerator == nil {
		cfg.IDGenerator = types.UUIDGenerator{}
	}
	if cfg.Logger == nil {
		cfg.Logger = types.NopLogger{}
	}
	if cfg.AccountResolver == nil {
		cfg.AccountResolver = types.FormatAccountResolver{}
	}
	if cfg.Activity != nil {
		cfg.Hooks = mergeHooks(activity.SinkHooks(cfg.Activity, cfg.Logger), cfg.Hooks)
	}
	return cfg
}

// mergeHooks chains two hook sets; the audit hooks run first so history is
// written before caller callbacks observe the event.
func mergeHooks(first, second types.Hooks) types.Hooks {
	return types.Hooks{
		AfterConfigChange: func(ctx context.Context, event types.ConfigEvent) {
			if first.AfterConfigChange != nil {
				first.AfterConfigChange(ctx, event)
			}
			if second.AfterConfigChange != nil {
				second.AfterConfigChange(ctx, event)
			}
		},
		AfterProfileChange: func(ctx context.Context, event types.ProfileEvent) {
			if first.AfterProfileChange != nil {
				first.AfterProfileChange(ctx, event)
			}
			if second.AfterProfileChange != nil {
				second.AfterProfileChange(ctx, event)
			}
		},
		AfterAnnotationChange: func(ctx context.Context, event types.AnnotationEvent) {
			if first.AfterAnnotationChange != nil {
				first.AfterAnnotationChange(ctx, event)
			}
			if second.AfterAnnotationChange != nil {
				second.AfterAnnotationChange(ctx, event)
			}
		},
		AfterConnectionChange: func(ctx context.Context, event types.ConnectionEvent) {
			if first.AfterConnectionChange != nil {
				first.AfterConnectionChange(ctx, event)
			}
			if second.AfterConnectionChange != nil {
				second.AfterConnectionChange(ctx, event)
			}
		},
	}
}

func buildConfigRepo(cfg Config) types.ConfigRepository {
	if cfg.ConfigRepository != nil {
		return cfg.ConfigRepository
	}
	if cfg.DB == nil {
		return nil
	}
	repo, err := config.NewRepository(config.RepositoryConfig{DB: cfg.DB, Clock: cfg.Clock})
	if err != nil {
		cfg.Logger.Error("telos-profiles: config repository initialization failed", err)
		return nil
	}
	return repo
}

func buildProfileRepo(cfg Config) types.ProfileRepository {
	if cfg.ProfileRepository != nil {
		return cfg.ProfileRepository
	}
	if cfg.DB == nil {
		return nil
	}
	repo, err := profile.NewRepository(profile.RepositoryConfig{
		DB:    cfg.DB,
		Clock: cfg.Clock,
		IDGen: cfg.IDGenerator,
	})
	if err != nil {
		cfg.Logger.Error("telos-profiles: profile repository initialization failed", err)
		return nil
	}
	return repo
}

func buildAnnotationRepo(cfg Config) types.AnnotationRepository {
	if cfg.AnnotationRepository != nil {
		return cfg.AnnotationRepository
	}
	if cfg.DB == nil {
		return nil
	}
	repo, err := annotation.NewRepository(annotation.RepositoryConfig{
		DB:    cfg.DB,
		Clock: cfg.Clock,
		IDGen: cfg.IDGenerator,
	})
	if err != nil {
		cfg.Logger.Error("telos-profiles: annotation repository initialization failed", err)
		return nil
	}
	return repo
}

func buildConnectionRepo(cfg Config) types.ConnectionRepository {
	if cfg.ConnectionRepository != nil {
		return cfg.ConnectionRepository
	}
	if cfg.DB == nil {
		return nil
	}
	repo, err := connection.NewRepository(connection.RepositoryConfig{DB: cfg.DB, Clock: cfg.Clock})
	if err != nil {
		cfg.Logger.Error("telos-profiles: connection repository initialization failed", err)
		return nil
	}
	return repo
}

// Commands returns the command facade.
func (s *Service) Commands() Commands {
	return s.commands
}

// Queries returns the query facade.
func (s *Service) Queries() Queries {
	return s.queries
}

// Guard exposes the capability guard so hosts can reuse the same oracle for
// auxiliary checks.
func (s *Service) Guard() capability.Guard {
	if s == nil {
		return capability.NopGuard()
	}
	return capability.Ensure(s.guard)
}

// Ready reports whether the service has the required dependencies wired in.
func (s *Service) Ready() bool {
	return s != nil &&
		s.cfg.Contract != "" &&
		s.configRepo != nil &&
		s.profileRepo != nil &&
		s.annotationRepo != nil &&
		s.connectionRepo != nil
}

// HealthCheck surfaces missing configuration before hosts start dispatching
// operations.
func (s *Service) HealthCheck(_ context.Context) error {
	if s.Ready() {
		return nil
	}
	switch {
	case s.configRepo == nil:
		return types.ErrMissingConfigRepository
	case s.profileRepo == nil:
		return types.ErrMissingProfileRepository
	case s.annotationRepo == nil:
		return types.ErrMissingAnnotationRepository
	case s.connectionRepo == nil:
		return types.ErrMissingConnectionRepository
	default:
		return types.ErrServiceNotReady
	}
}

func (s *Service) buildCommands() Commands {
	configCfg := command.ConfigCommandConfig{
		Repository: s.configRepo,
		Resolver:   s.cfg.AccountResolver,
		Guard:      s.guard,
		Contract:   s.cfg.Contract,
		Hooks:      s.cfg.Hooks,
		Clock:      s.cfg.Clock,
	}
	profileCfg := command.ProfileCommandConfig{
		Repository: s.profileRepo,
		Config:     s.configRepo,
		Guard:      s.guard,
		Contract:   s.cfg.Contract,
		Hooks:      s.cfg.Hooks,
		Clock:      s.cfg.Clock,
	}
	annotationCfg := command.AnnotationCommandConfig{
		Repository: s.annotationRepo,
		Profiles:   s.profileRepo,
		Guard:      s.guard,
		Hooks:      s.cfg.Hooks,
		Clock:      s.cfg.Clock,
	}
	connectionCfg := command.ConnectionCommandConfig{
		Repository: s.connectionRepo,
		Profiles:   s.profileRepo,
		Guard:      s.guard,
		Hooks:      s.cfg.Hooks,
		Clock:      s.cfg.Clock,
	}

	return Commands{
		Initialize:       command.NewInitializeCommand(configCfg),
		SetVersion:       command.NewSetVersionCommand(configCfg),
		SetAdmin:         command.NewSetAdminCommand(configCfg),
		SetDefaultAvatar: command.NewSetDefaultAvatarCommand(configCfg),
		SetLimit:         command.NewSetLimitCommand(configCfg),
		ProfileCreate:    command.NewProfileCreateCommand(profileCfg),
		EditDisplayName:  command.NewEditDisplayNameCommand(profileCfg),
		EditAvatar:       command.NewEditAvatarCommand(profileCfg),
		EditBio:          command.NewEditBioCommand(profileCfg),
		EditStatus:       command.NewEditStatusCommand(profileCfg),
		ProfileVerify:    command.NewProfileVerifyCommand(profileCfg),
		ProfileDelete:    command.NewProfileDeleteCommand(profileCfg),
		AnnotationWrite:  command.NewAnnotationWriteCommand(annotationCfg),
		AnnotationDelete: command.NewAnnotationDeleteCommand(annotationCfg),
		Connect:          command.NewConnectCommand(connectionCfg),
		Disconnect:       command.NewDisconnectCommand(connectionCfg),
	}
}

func (s *Service) buildQueries() Queries {
	return Queries{
		Config:                   query.NewConfigQuery(s.configRepo),
		ProfileDetail:            query.NewProfileQuery(s.profileRepo),
		ProfileExists:            query.NewProfileExistsQuery(s.profileRepo),
		AnnotationDetail:         query.NewAnnotationQuery(s.annotationRepo),
		AnnotationsByWriter:      query.NewAnnotationsByWriterQuery(s.annotationRepo),
		ConnectionsBySource:      query.NewConnectionsBySourceQuery(s.connectionRepo),
		ConnectionsByDestination: query.NewConnectionsByDestinationQuery(s.connectionRepo),
		RecentConnections:        query.NewRecentConnectionsQuery(s.connectionRepo),
	}
}
