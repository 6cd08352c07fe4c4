// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"docs/config"
	deliverycontext "docs/internal/delivery/context"
	"docs/internal/domain/entity"
	domainerrors "docs/internal/domain/errors"
	"docs/internal/domain/repository"
	"docs/internal/domain/service"
	"docs/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const tokenTypeBearer = "Bearer"

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	roleRepo     repository.RoleRepository
	userRoleRepo repository.UserRoleRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	publisher    service.EventPublisher
	defaultRole  string
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	RoleRepo     repository.RoleRepository
	UserRoleRepo repository.UserRoleRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Publisher    service.EventPublisher `optional:"true"`
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	defaultRole := entity.RoleNameUser
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.DefaultRole != "" {
		defaultRole = params.Config.Auth.DefaultRole
	}

	return &authService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		roleRepo:     params.RoleRepo,
		userRoleRepo: params.UserRoleRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		publisher:    params.Publisher,
		defaultRole:  defaultRole,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login verifies the username and password and issues a signed token.
// Unknown users and wrong passwords fail identically.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	if input == nil || isBlank(input.Username) || isBlank(input.Password) {
		return nil, domainerrors.ErrParams.WrapMessage("username and password are required")
	}

	srv.log(ctx).Debug("Starting user login", slog.String("username", input.Username))

	user, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("username", input.Username), slog.String("reason", "unknown user"))

			return nil, domainerrors.ErrLoginFailed.WrapMessage("login failed")
		}

		return nil, errors.Wrap(err, "failed to find user by username")
	}

	if !srv.hasher.Check(input.Password, user.Credential(), user.Password) {
		srv.log(ctx).Warn("Login failed", slog.String("username", input.Username), slog.String("reason", "credential mismatch"))

		return nil, domainerrors.ErrLoginFailed.WrapMessage("login failed")
	}

	token, expiresAt, err := srv.tokenService.GenerateToken(user.Username)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token", slog.String("username", user.Username), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrTokenIssueFailed, err.Error())
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{
		Token:     token,
		TokenType: tokenTypeBearer,
		ExpiresAt: expiresAt,
	}, nil
}

// Register creates the account and links it to the default role in one transaction.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) error {
	if input == nil || isBlank(input.Username) || isBlank(input.Email) ||
		isBlank(input.Password) || isBlank(input.ConfirmPassword) {
		return domainerrors.ErrParams.WrapMessage("username, email, password and confirmPassword are required")
	}
	if input.Password != input.ConfirmPassword {
		return domainerrors.ErrPasswordMismatch.WrapMessage("password confirmation does not match")
	}

	srv.log(ctx).Info("Starting registration", slog.String("username", input.Username))

	var (
		registered *entity.User
		roleName   string
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, role, err := srv.createAccount(ctx, repoFactory, input)
		if err != nil {
			return err
		}
		registered, roleName = user, role.RoleName

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute registration transaction", slog.String("username", input.Username), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute registration transaction")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", registered.ID))
	srv.publishRegistered(ctx, registered, []string{roleName})

	return nil
}

func (srv *authService) createAccount(
	ctx context.Context,
	repoFactory repository.RepositoryFactory,
	input *usecase.RegisterInput,
) (*entity.User, *entity.Role, error) {
	userRepo := repoFactory.UserRepo()

	_, err := userRepo.FindByUsername(ctx, input.Username)
	if err == nil {
		return nil, nil, domainerrors.ErrUserAlreadyExists.WrapMessage("username already registered")
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, nil, errors.Wrap(err, "failed to check existing username")
	}

	role, err := repoFactory.RoleRepo().FindByRoleName(ctx, srv.defaultRole)
	if err != nil {
		if errors.Is(err, repository.ErrRoleNotFound) {
			srv.log(ctx).Error("Default role is missing, seed data is corrupted", slog.String("role", srv.defaultRole))

			return nil, nil, domainerrors.ErrSeedDataMissing.WrapMessage("role[" + srv.defaultRole + "] is missing")
		}

		return nil, nil, errors.Wrap(err, "failed to find default role")
	}

	user := entity.NewUser(input.Username, input.Email)
	digest, err := srv.hasher.Hash(input.Password, user.Credential())
	if err != nil {
		return nil, nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}
	user.Password = digest

	if err := userRepo.Create(ctx, user); err != nil {
		return nil, nil, errors.Wrap(err, "failed to create user during registration")
	}

	if err := repoFactory.UserRoleRepo().Create(ctx, entity.NewUserRole(user.ID, role.ID)); err != nil {
		return nil, nil, errors.Wrap(err, "failed to assign default role during registration")
	}

	return user, role, nil
}

// publishRegistered announces a committed registration. Failures are logged only;
// the account already exists at this point.
func (srv *authService) publishRegistered(ctx context.Context, user *entity.User, roles []string) {
	if srv.publisher == nil {
		return
	}

	event := &service.UserRegisteredEvent{
		RequestID:    deliverycontext.GetRequestIDFromContext(ctx),
		UserID:       user.ID.String(),
		Username:     user.Username,
		Email:        user.Email,
		Roles:        roles,
		RegisteredAt: time.Now().UTC(),
	}
	if err := srv.publisher.PublishUserRegistered(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish registration event", slog.Any("userID", user.ID), slog.Any("error", err))
	}
}

// GetCurrentUser resolves the caller's profile. An anonymous caller yields nil without error.
func (srv *authService) GetCurrentUser(ctx context.Context, principal usecase.Principal) (*usecase.UserView, error) {
	if principal.IsAnonymous() {
		return nil, nil
	}

	return srv.resolve(ctx, principal.Username)
}

// GetUserByUsername resolves the named user's profile.
func (srv *authService) GetUserByUsername(ctx context.Context, username string) (*usecase.UserView, error) {
	if isBlank(username) {
		return nil, domainerrors.ErrParams.WrapMessage("username is required")
	}

	return srv.resolve(ctx, username)
}

// resolve loads the user and its role names. A missing user is not an error.
func (srv *authService) resolve(ctx context.Context, username string) (*usecase.UserView, error) {
	user, err := srv.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find user by username")
	}

	links, err := srv.userRoleRepo.FindAllByUserID(ctx, user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user roles")
	}

	roles := entity.Roles{}
	if len(links) > 0 {
		roles, err = srv.roleRepo.FindAllByIDs(ctx, links.RoleIDs())
		if err != nil {
			return nil, errors.Wrap(err, "failed to find roles")
		}
	}

	return usecase.NewUserView(user, roles.Names()), nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
