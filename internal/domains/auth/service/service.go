package service

import (
	"context"

	"comfort/config"
	"comfort/infras/otel"
	"comfort/internal/domains/auth/model/dto"
	"comfort/internal/domains/session"
	userModel "comfort/internal/domains/user/model"
	userRepo "comfort/internal/domains/user/repository"
	"comfort/shared/constant"
	gDto "comfort/shared/dto"
	"comfort/shared/failure"
	"comfort/shared/password"
	"comfort/shared/timezone"

	"github.com/rs/zerolog/log"
)

// loginFailedMessage is deliberately identical for an unknown username and a
// wrong password, so the endpoint cannot be used to enumerate accounts.
const loginFailedMessage = "invalid username or password"

type Auth interface {
	Login(ctx context.Context, req dto.LoginRequest) (session.Session, error)
	Logout(ctx context.Context, sessionID string) error
}

type serviceImpl struct {
	userRepo userRepo.User
	sessions session.Store
	cfg      *config.Config
	otel     otel.Otel
}

func New(userRepo userRepo.User, sessions session.Store, cfg *config.Config, otel otel.Otel) Auth {
	return &serviceImpl{
		userRepo: userRepo,
		sessions: sessions,
		cfg:      cfg,
		otel:     otel,
	}
}

// Login verifies the credential pair and, on success, establishes a new
// server-side session. The session carries the staff identity but never the
// credential hash.
func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (sess session.Session, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.Login")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	usernameFilter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    userModel.FieldUsername,
				Operator: gDto.FilterOperatorEq,
				Value:    req.Username,
				Table:    userModel.TableName,
			},
		},
	}

	user, err := s.userRepo.Get(ctx, usernameFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to look up user")

		return sess, failure.StoreUnavailableError
	}

	if user.ID == "" {
		return sess, failure.Unauthorized(loginFailedMessage) //nolint:wrapcheck
	}

	if err = password.Verify(req.Password, user.Password); err != nil {
		return sess, failure.Unauthorized(loginFailedMessage) //nolint:wrapcheck
	}

	sess = session.Session{
		ID:        session.NewID(),
		Username:  user.Username,
		Role:      user.Role,
		Email:     user.Email,
		FullName:  user.FullName,
		CreatedAt: timezone.Now(),
	}

	if err = s.sessions.Create(ctx, sess); err != nil {
		log.Error().Err(err).Msg("failed to create session")

		return session.Session{}, failure.StoreUnavailableError
	}

	return sess, nil
}

func (s *serviceImpl) Logout(ctx context.Context, sessionID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.Logout")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.sessions.Delete(ctx, sessionID); err != nil {
		log.Error().Err(err).Msg("failed to delete session")

		return failure.StoreUnavailableError
	}

	return nil
}
