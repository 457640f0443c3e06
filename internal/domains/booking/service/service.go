package service

import (
	"context"

	"comfort/config"
	"comfort/infras/otel"
	"comfort/internal/domains/booking/model"
	"comfort/internal/domains/booking/model/dto"
	"comfort/internal/domains/booking/repository"
	"comfort/shared"
	"comfort/shared/constant"
	gDto "comfort/shared/dto"
	"comfort/shared/failure"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (string, error)
	GetAll(ctx context.Context, params gDto.ListParams, filter gDto.FilterGroup) ([]dto.BookingResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Update(ctx context.Context, req dto.UpdateBookingRequest, id string) (dto.BookingResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo repository.Booking
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.Booking, cfg *config.Config, otel otel.Otel) Booking {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (id string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	req.Normalize()

	user, _ := ctx.Value(constant.ContextKeyUsername).(string)

	booking, err := req.ToModel(user)
	if err != nil {
		return "", err
	}

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return "", failure.StoreUnavailableError
	}

	return booking.ID, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.ListParams, filter gDto.FilterGroup) (res []dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	bookings, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, failure.StoreUnavailableError
	}

	return dto.FromModels(bookings), nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if uuid.Validate(id) != nil {
		return res, failure.InvalidIDError
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, failure.StoreUnavailableError
	}

	if booking.ID == "" {
		return res, failure.NotFound("booking not found") //nolint:wrapcheck
	}

	res.FromModel(booking)

	return res, nil
}

// Update replaces every column derived from the request, recomputing the
// duration from the new date pair. Status is written only when the request
// carries one; the stored status survives otherwise.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBookingRequest, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if uuid.Validate(id) != nil {
		return res, failure.InvalidIDError
	}

	req.Normalize()

	record, err := req.ToRecord()
	if err != nil {
		return res, err
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if booking exists")

		return res, failure.StoreUnavailableError
	}

	if !exist {
		return res, failure.NotFound("booking not found") //nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUsername).(string)

	updatedFields := shared.UpdateFields(record, user)
	if req.Status != "" {
		updatedFields[model.FieldStatus] = req.Status
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update booking")

		return res, failure.StoreUnavailableError
	}

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to re-fetch booking after update")

		return res, failure.StoreUnavailableError
	}

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if uuid.Validate(id) != nil {
		return failure.InvalidIDError
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if booking exists")

		return failure.StoreUnavailableError
	}

	if !exist {
		return failure.NotFound("booking not found") //nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete booking")

		return failure.StoreUnavailableError
	}

	return nil
}
