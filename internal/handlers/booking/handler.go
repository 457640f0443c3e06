package booking

import (
	"net/http"

	"comfort/infras/otel"
	"comfort/internal/domains/booking/model"
	"comfort/internal/domains/booking/model/dto"
	"comfort/internal/domains/booking/service"
	"comfort/shared"
	"comfort/shared/constant"
	gDto "comfort/shared/dto"
	"comfort/shared/validator"
	"comfort/transport/http/middleware"
	"comfort/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// filterParams maps the query parameters accepted as booking list filters
// to their store columns. Parameters outside this list are ignored.
var filterParams = map[string]string{
	"roomName":   model.FieldRoomName,
	"guestEmail": model.FieldGuestEmail,
	"status":     model.FieldStatus,
}

type Handler struct {
	service    service.Booking
	middleware middleware.Session
	otel       otel.Otel
}

func New(service service.Booking, middleware middleware.Session, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Get("/{id}", handler.GetBookingByID)

		routerGroup.Group(func(gated chi.Router) {
			gated.Use(handler.middleware.RequireAuthenticated)
			gated.Post("/", handler.CreateBooking)
			gated.Put("/{id}", handler.UpdateBooking)
			gated.Delete("/{id}", handler.DeleteBooking)
		})
	})
}

// GetBookings lists bookings.
// @Summary List bookings
// @Description List bookings with optional filtering, sorting and field projection.
// @Tags Booking
// @Accept json
// @Produce json
// @Param roomName query string false "Filter by exact room name"
// @Param guestEmail query string false "Filter by exact guest email"
// @Param status query string false "Filter by status"
// @Param sortBy query string false "Sort field"
// @Param sortOrder query string false "asc or desc"
// @Param fields query string false "Comma-separated projection"
// @Success 200 {array} dto.BookingResponse "List of bookings"
// @Failure 500 {object} response.Error
// @Router /api/bookings [get]
func (handler *Handler) GetBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	params := gDto.ListParams{}
	params.FromRequest(request, model.QueryColumns, model.FieldCheckInDate)

	filterGroup := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	for param, column := range filterParams {
		if value := request.URL.Query().Get(param); value != "" {
			filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
				Field:    column,
				Operator: gDto.FilterOperatorEq,
				Value:    value,
				Table:    model.TableName,
			})
		}
	}

	bookings, err := handler.service.GetAll(ctx, params, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(writer, err)

		return
	}

	if params.Projected {
		projected, err := shared.ProjectFields(bookings, params.RequestedFields)
		if err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to project booking fields")

			response.WithError(writer, err)

			return
		}

		response.WithJSON(writer, http.StatusOK, projected)

		return
	}

	response.WithJSON(writer, http.StatusOK, bookings)
}

// GetBookingByID retrieves a single booking.
// @Summary Get a booking by ID
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} dto.BookingResponse "Booking details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/bookings/{id} [get]
func (handler *Handler) GetBookingByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	booking, err := handler.service.Get(ctx, chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, booking)
}

// CreateBooking stores a new booking. Status always starts as pending.
// @Summary Create a booking
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} dto.CreateBookingResponse "Created booking identifier"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/bookings [post]
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	id, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking created successfully")

	response.WithJSON(writer, http.StatusCreated, dto.CreateBookingResponse{ID: id})
}

// UpdateBooking fully replaces a booking, recomputes its duration and
// returns the stored record.
// @Summary Update a booking by ID
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.UpdateBookingRequest true "Update Booking Request"
// @Success 200 {object} dto.BookingResponse "Updated booking"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/bookings/{id} [put]
func (handler *Handler) UpdateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBooking")
	defer scope.End()

	req := dto.UpdateBookingRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	booking, err := handler.service.Update(ctx, req, chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking updated successfully")

	response.WithJSON(writer, http.StatusOK, booking)
}

// DeleteBooking permanently removes a booking.
// @Summary Delete a booking by ID
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Message "Booking deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/bookings/{id} [delete]
func (handler *Handler) DeleteBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteBooking")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(request, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking deleted successfully")

	response.WithMessage(writer, http.StatusOK, "Booking deleted successfully")
}
