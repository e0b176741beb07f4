package media

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"hostconnect/infras/otel"
	"hostconnect/internal/domains/media/model"
	"hostconnect/internal/domains/media/model/dto"
	"hostconnect/internal/domains/media/service"
	"hostconnect/shared/constant"
	gDto "hostconnect/shared/dto"
	"hostconnect/shared/validator"
	"hostconnect/transport/http/response"
)

type Handler struct {
	service service.Media
	otel    otel.Otel
}

func New(service service.Media, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/property-media", func(r chi.Router) {
		r.Post("/", handler.CreateMedia)
		r.Get("/", handler.GetMedia)
		r.Get("/{id}", handler.GetMediaByID)
		r.Patch("/{id}", handler.UpdateMedia)
		r.Delete("/{id}", handler.DeleteMedia)
		r.Post("/upload", handler.UploadImage)
		r.Delete("/images", handler.DeleteImages)
	})
}

// CreateMedia registers a media group for a property
// @Summary Create property media
// @Tags Media
// @Accept json
// @Produce json
// @Param request body dto.CreateMediaRequest true "Create Media Request"
// @Success 201 {object} response.Message "Property media created successfully"
// @Failure 400 {object} response.Error
// @Router /v1/property-media [post]
// @Security BearerAuth
func (handler *Handler) CreateMedia(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateMedia")
	defer scope.End()

	req := dto.CreateMediaRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create property media")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Property media created successfully")

	response.WithMessage(w, http.StatusCreated, "Property media created successfully")
}

// GetMedia lists property media with optional filters
// @Summary Get all property media
// @Tags Media
// @Produce json
// @Param property_id query string false "Filter by property"
// @Param title query string false "Filter by title"
// @Success 200 {object} dto.GetMediaResponse "List of property media"
// @Router /v1/property-media [get]
// @Security BearerAuth
func (handler *Handler) GetMedia(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMedia")
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

	if title := r.URL.Query().Get(model.FieldTitle); title != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldTitle,
			Operator: gDto.FilterOperatorLike,
			Value:    title,
			Table:    model.TableName,
		})
	}

	media, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get property media")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Property media retrieved successfully")

	response.WithJSON(w, http.StatusOK, media)
}

// GetMediaByID retrieves property media by its ID
// @Summary Get property media by ID
// @Tags Media
// @Produce json
// @Param id path string true "Media ID"
// @Success 200 {object} dto.MediaResponse "Property media details"
// @Failure 404 {object} response.Error
// @Router /v1/property-media/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetMediaByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMediaByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	media, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get property media by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Property media retrieved successfully")

	response.WithJSON(w, http.StatusOK, media)
}

// UpdateMedia updates an existing media group
// @Summary Update property media by ID
// @Tags Media
// @Accept json
// @Produce json
// @Param id path string true "Media ID"
// @Param request body dto.UpdateMediaRequest true "Update Media Request"
// @Success 200 {object} response.Message "Property media updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/property-media/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateMedia(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateMedia")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateMediaRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update property media")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Property media updated successfully")

	response.WithMessage(w, http.StatusOK, "Property media updated successfully")
}

// DeleteMedia deletes a media group and its S3 objects
// @Summary Delete property media by ID
// @Tags Media
// @Produce json
// @Param id path string true "Media ID"
// @Success 200 {object} response.Message "Property media deleted successfully"
// @Failure 404 {object} response.Error
// @Router /v1/property-media/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteMedia(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteMedia")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete property media")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Property media deleted successfully")

	response.WithMessage(w, http.StatusOK, "Property media deleted successfully")
}

// UploadImage uploads an image to S3 and returns its public URL
// @Summary Upload an image to S3
// @Tags Media
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file to upload"
// @Success 200 {object} dto.UploadImageResponse "Image uploaded successfully"
// @Failure 400 {object} response.Error
// @Router /v1/property-media/upload [post]
// @Security BearerAuth
func (handler *Handler) UploadImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadImage")
	defer scope.End()

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(w, err)

		return
	}

	file, fileHeader, err := r.FormFile(constant.FormFile)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get file from form")

		response.WithError(w, err)

		return
	}
	defer file.Close()

	req := dto.UploadImageRequest{
		Image:     fileHeader,
		ImageFile: file,
	}

	res, err := handler.service.UploadImage(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload file")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Image uploaded successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// DeleteImages deletes images from S3 by URL
// @Summary Delete images from S3
// @Tags Media
// @Accept json
// @Produce json
// @Param request body dto.DeleteImagesRequest true "Delete Images Request"
// @Success 200 {object} response.Message "Images deleted successfully"
// @Failure 400 {object} response.Error
// @Router /v1/property-media/images [delete]
// @Security BearerAuth
func (handler *Handler) DeleteImages(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteImages")
	defer scope.End()

	req := dto.DeleteImagesRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.DeleteImagesFromS3(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete images from S3")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Images deleted successfully")

	response.WithMessage(w, http.StatusOK, "Images deleted successfully")
}
