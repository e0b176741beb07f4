package addon

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"hostconnect/infras/otel"
	"hostconnect/internal/domains/addon/model"
	"hostconnect/internal/domains/addon/model/dto"
	"hostconnect/internal/domains/addon/service"
	"hostconnect/shared/constant"
	gDto "hostconnect/shared/dto"
	"hostconnect/shared/validator"
	"hostconnect/transport/http/response"
)

type Handler struct {
	service service.Addon
	otel    otel.Otel
}

func New(service service.Addon, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/addon-services", func(r chi.Router) {
		r.Post("/", handler.CreateAddon)
		r.Get("/", handler.GetAddons)
		r.Get("/{id}", handler.GetAddonByID)
		r.Patch("/{id}", handler.UpdateAddon)
		r.Delete("/{id}", handler.DeactivateAddon)
	})
}

// CreateAddon registers a new addon service
// @Summary Create a new addon service
// @Tags Addon
// @Accept json
// @Produce json
// @Param request body dto.CreateAddonRequest true "Create Addon Request"
// @Success 201 {object} response.Message "Addon service created successfully"
// @Failure 400 {object} response.Error
// @Router /v1/addon-services [post]
// @Security BearerAuth
func (handler *Handler) CreateAddon(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateAddon")
	defer scope.End()

	req := dto.CreateAddonRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create addon service")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Addon service created successfully")

	response.WithMessage(w, http.StatusCreated, "Addon service created successfully")
}

// GetAddons lists addon services with optional filters
// @Summary Get all addon services
// @Tags Addon
// @Produce json
// @Param property_id query string false "Filter by property"
// @Param status query string false "Filter by status"
// @Success 200 {object} dto.GetAddonsResponse "List of addon services"
// @Router /v1/addon-services [get]
// @Security BearerAuth
func (handler *Handler) GetAddons(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAddons")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if propertyID := r.URL.Query().Get(model.FieldPropertyID); propertyID != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldPropertyID,
			Operator: gDto.FilterOperatorEq,
			Value:    propertyID,
			Table:    model.TableName,
		})
	}

	if status := r.URL.Query().Get(model.FieldStatus); status != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	addons, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get addon services")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Addon services retrieved successfully")

	response.WithJSON(w, http.StatusOK, addons)
}

// GetAddonByID retrieves an addon service by its ID
// @Summary Get an addon service by ID
// @Tags Addon
// @Produce json
// @Param id path string true "Addon Service ID"
// @Success 200 {object} dto.AddonResponse "Addon service details"
// @Failure 404 {object} response.Error
// @Router /v1/addon-services/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetAddonByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAddonByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	addon, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get addon service by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Addon service retrieved successfully")

	response.WithJSON(w, http.StatusOK, addon)
}

// UpdateAddon updates an existing addon service
// @Summary Update an addon service by ID
// @Tags Addon
// @Accept json
// @Produce json
// @Param id path string true "Addon Service ID"
// @Param request body dto.UpdateAddonRequest true "Update Addon Request"
// @Success 200 {object} response.Message "Addon service updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/addon-services/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateAddon(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateAddon")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateAddonRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update addon service")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Addon service updated successfully")

	response.WithMessage(w, http.StatusOK, "Addon service updated successfully")
}

// DeactivateAddon takes an addon service off sale
// @Summary Deactivate an addon service by ID
// @Tags Addon
// @Produce json
// @Param id path string true "Addon Service ID"
// @Success 200 {object} response.Message "Addon service deactivated successfully"
// @Failure 404 {object} response.Error
// @Router /v1/addon-services/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeactivateAddon(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeactivateAddon")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Deactivate(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to deactivate addon service")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Addon service deactivated successfully")

	response.WithMessage(w, http.StatusOK, "Addon service deactivated successfully")
}
