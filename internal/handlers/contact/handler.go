package contact

import (
	"net/http"

	"comfort/infras/otel"
	"comfort/internal/domains/contact/model"
	"comfort/internal/domains/contact/model/dto"
	"comfort/internal/domains/contact/service"
	"comfort/shared"
	"comfort/shared/constant"
	gDto "comfort/shared/dto"
	"comfort/shared/validator"
	"comfort/transport/http/middleware"
	"comfort/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Contact
	middleware middleware.Session
	otel       otel.Otel
}

func New(service service.Contact, middleware middleware.Session, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/contacts", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetContacts)
		routerGroup.Get("/{id}", handler.GetContactByID)

		routerGroup.Group(func(gated chi.Router) {
			gated.Use(handler.middleware.RequireAuthenticated)
			gated.Post("/", handler.CreateContact)
			gated.Put("/{id}", handler.UpdateContact)
			gated.Delete("/{id}", handler.DeleteContact)
		})
	})

	// The public visitor form shares the create path but is never gated.
	router.Post("/contact-form", handler.CreateContact)
}

// GetContacts lists contact messages.
// @Summary List contact messages
// @Description List contact messages with optional filtering, sorting and field projection.
// @Tags Contact
// @Accept json
// @Produce json
// @Param email query string false "Filter by exact email"
// @Param name query string false "Filter by exact name"
// @Param sortBy query string false "Sort field"
// @Param sortOrder query string false "asc or desc"
// @Param fields query string false "Comma-separated projection"
// @Success 200 {array} dto.ContactResponse "List of contacts"
// @Failure 500 {object} response.Error
// @Router /api/contacts [get]
func (handler *Handler) GetContacts(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetContacts")
	defer scope.End()

	params := gDto.ListParams{}
	params.FromRequest(request, model.QueryColumns, constant.FieldCreatedAt)

	filterGroup := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	for _, field := range []string{model.FieldEmail, model.FieldName} {
		if value := request.URL.Query().Get(field); value != "" {
			filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
				Field:    field,
				Operator: gDto.FilterOperatorEq,
				Value:    value,
				Table:    model.TableName,
			})
		}
	}

	contacts, err := handler.service.GetAll(ctx, params, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get contacts")

		response.WithError(writer, err)

		return
	}

	if params.Projected {
		projected, err := shared.ProjectFields(contacts, params.RequestedFields)
		if err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to project contact fields")

			response.WithError(writer, err)

			return
		}

		response.WithJSON(writer, http.StatusOK, projected)

		return
	}

	response.WithJSON(writer, http.StatusOK, contacts)
}

// GetContactByID retrieves a single contact message.
// @Summary Get a contact message by ID
// @Tags Contact
// @Accept json
// @Produce json
// @Param id path string true "Contact ID"
// @Success 200 {object} dto.ContactResponse "Contact details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/contacts/{id} [get]
func (handler *Handler) GetContactByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetContactByID")
	defer scope.End()

	contact, err := handler.service.Get(ctx, chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get contact")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, contact)
}

// CreateContact stores a contact message. Reached both from the gated staff
// endpoint and the public visitor form; on the public path the actor is
// empty and created_by stays blank.
// @Summary Create a contact message
// @Tags Contact
// @Accept json
// @Produce json
// @Param request body dto.CreateContactRequest true "Create Contact Request"
// @Success 201 {object} dto.CreateContactResponse "Created contact identifier"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/contacts [post]
func (handler *Handler) CreateContact(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateContact")
	defer scope.End()

	req := dto.CreateContactRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	id, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create contact")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Contact created successfully")

	response.WithJSON(writer, http.StatusCreated, dto.CreateContactResponse{ID: id})
}

// UpdateContact fully replaces a contact message and returns the stored
// record.
// @Summary Update a contact message by ID
// @Tags Contact
// @Accept json
// @Produce json
// @Param id path string true "Contact ID"
// @Param request body dto.UpdateContactRequest true "Update Contact Request"
// @Success 200 {object} dto.ContactResponse "Updated contact"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/contacts/{id} [put]
func (handler *Handler) UpdateContact(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateContact")
	defer scope.End()

	req := dto.UpdateContactRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	contact, err := handler.service.Update(ctx, req, chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update contact")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Contact updated successfully")

	response.WithJSON(writer, http.StatusOK, contact)
}

// DeleteContact permanently removes a contact message.
// @Summary Delete a contact message by ID
// @Tags Contact
// @Accept json
// @Produce json
// @Param id path string true "Contact ID"
// @Success 200 {object} response.Message "Contact deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/contacts/{id} [delete]
func (handler *Handler) DeleteContact(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteContact")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(request, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete contact")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Contact deleted successfully")

	response.WithMessage(writer, http.StatusOK, "Contact deleted successfully")
}
