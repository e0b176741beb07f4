package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"hostconnect/infras/otel"
	"hostconnect/infras/postgres"
	"hostconnect/internal/domains/media/model"
	gDto "hostconnect/shared/dto"
	gRepo "hostconnect/shared/repository"
)

type Media interface {
	Insert(ctx context.Context, model model.PropertyMedia) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.PropertyMedia, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.PropertyMedia, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.PropertyMedia]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Media {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.PropertyMedia](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
