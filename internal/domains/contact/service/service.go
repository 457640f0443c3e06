package service

import (
	"context"

	"comfort/config"
	"comfort/infras/otel"
	"comfort/internal/domains/contact/model"
	"comfort/internal/domains/contact/model/dto"
	"comfort/internal/domains/contact/repository"
	"comfort/shared"
	"comfort/shared/constant"
	gDto "comfort/shared/dto"
	"comfort/shared/failure"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Contact interface {
	Create(ctx context.Context, req dto.CreateContactRequest) (string, error)
	GetAll(ctx context.Context, params gDto.ListParams, filter gDto.FilterGroup) ([]dto.ContactResponse, error)
	Get(ctx context.Context, id string) (dto.ContactResponse, error)
	Update(ctx context.Context, req dto.UpdateContactRequest, id string) (dto.ContactResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo repository.Contact
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.Contact, cfg *config.Config, otel otel.Otel) Contact {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
	}
}

// Create persists a new contact. The actor username may be empty: the public
// contact form reaches this path without a session.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateContactRequest) (id string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".contact.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	req.Normalize()

	user, _ := ctx.Value(constant.ContextKeyUsername).(string)
	contact := req.ToModel(user)

	if err = s.repo.Insert(ctx, contact); err != nil {
		log.Error().Err(err).Msg("failed to create contact")

		return "", failure.StoreUnavailableError
	}

	return contact.ID, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.ListParams, filter gDto.FilterGroup) (res []dto.ContactResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".contact.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	contacts, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get contacts")

		return res, failure.StoreUnavailableError
	}

	return dto.FromModels(contacts), nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ContactResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".contact.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if uuid.Validate(id) != nil {
		return res, failure.InvalidIDError
	}

	contact, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get contact")

		return res, failure.StoreUnavailableError
	}

	if contact.ID == "" {
		return res, failure.NotFound("contact not found") //nolint:wrapcheck
	}

	res.FromModel(contact)

	return res, nil
}

// Update replaces the whole record, then re-fetches it so the response
// reflects exactly what the store now holds.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateContactRequest, id string) (res dto.ContactResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".contact.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if uuid.Validate(id) != nil {
		return res, failure.InvalidIDError
	}

	req.Normalize()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if contact exists")

		return res, failure.StoreUnavailableError
	}

	if !exist {
		return res, failure.NotFound("contact not found") //nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUsername).(string)

	if err = s.repo.Update(ctx, shared.UpdateFields(req, user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update contact")

		return res, failure.StoreUnavailableError
	}

	contact, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to re-fetch contact after update")

		return res, failure.StoreUnavailableError
	}

	res.FromModel(contact)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".contact.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if uuid.Validate(id) != nil {
		return failure.InvalidIDError
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if contact exists")

		return failure.StoreUnavailableError
	}

	if !exist {
		return failure.NotFound("contact not found") //nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete contact")

		return failure.StoreUnavailableError
	}

	return nil
}
