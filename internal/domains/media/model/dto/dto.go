package dto

import (
	"mime/multipart"

	"github.com/google/uuid"

	"hostconnect/internal/domains/media/model"
	"hostconnect/shared"
	gDto "hostconnect/shared/dto"
	gModel "hostconnect/shared/model"
	"hostconnect/shared/timezone"
)

type CreateMediaRequest struct {
	PropertyID  string   `json:"property_id" validate:"required"`
	Title       string   `json:"title"       validate:"required,min=3,max=100"`
	Description string   `json:"description"`
	Images      []string `json:"images"      validate:"required,dive,url"`
}

func (c *CreateMediaRequest) ToModel(user string) model.PropertyMedia {
	return model.PropertyMedia{
		ID:          uuid.NewString(),
		PropertyID:  c.PropertyID,
		Title:       c.Title,
		Description: c.Description,
		Images:      c.Images,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateMediaRequest struct {
	Title       string   `db:"title"       json:"title"       validate:"omitempty,min=3,max=100"`
	Description string   `db:"description" json:"description" validate:"omitempty"`
	Images      []string `db:"images"      json:"images"      validate:"omitempty,dive,url"`
}

type MediaResponse struct {
	ID          string   `json:"id"`
	PropertyID  string   `json:"property_id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
	gDto.Metadata
}

func (r *MediaResponse) FromModel(mod model.PropertyMedia) {
	r.ID = mod.ID
	r.PropertyID = mod.PropertyID
	r.Title = mod.Title
	r.Description = mod.Description
	r.Images = mod.Images
	r.Metadata.FromModel(mod.Metadata)
}

type GetMediaResponse struct {
	Media     []MediaResponse `json:"media"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetMediaResponse) FromModels(models []model.PropertyMedia, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Media = make([]MediaResponse, len(models))
	for i, mod := range models {
		r.Media[i].FromModel(mod)
	}
}

type UploadImageRequest struct {
	Image     *multipart.FileHeader `json:"image" validate:"required,mimetypes=image/png image/jpg image/jpeg"`
	ImageFile multipart.File        `json:"-"`
}

type UploadImageResponse struct {
	URL      string `json:"url"`
	FileName string `json:"file_name"`
}

func (r *UploadImageResponse) FromModel(url, fileName string) {
	r.URL = url
	r.FileName = fileName
}

type DeleteImagesRequest struct {
	ImageURLs []string `json:"image_urls" validate:"required,min=1,dive,url"`
}
