package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"docai/infras/otel"
	"docai/infras/postgres"
	"docai/internal/domains/appointment/model"
	"docai/shared"
	gDto "docai/shared/dto"
	gRepo "docai/shared/repository"
)

type Appointment interface {
	Insert(ctx context.Context, model model.Appointment) (int64, error)
	FindAll(ctx context.Context, params gDto.QueryParams) ([]model.Appointment, error)
	FindByContact(ctx context.Context, contact string, params gDto.QueryParams) ([]model.Appointment, error)
	FindByDoctorID(ctx context.Context, doctorID string, params gDto.QueryParams) ([]model.Appointment, error)
	Count(ctx context.Context) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Appointment]
}

func New(db *postgres.Connection, otel otel.Otel) Appointment {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Appointment](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

// FindAll returns every appointment, newest first.
func (repo *repositoryImpl) FindAll(ctx context.Context, params gDto.QueryParams) ([]model.Appointment, error) {
	return repo.GetAll(ctx, newestFirst(params), gDto.FilterGroup{}) //nolint:wrapcheck
}

func (repo *repositoryImpl) FindByContact(ctx context.Context, contact string, params gDto.QueryParams) ([]model.Appointment, error) {
	filter := shared.FilterByField(model.FieldContact, contact, model.TableName)

	return repo.GetAll(ctx, newestFirst(params), filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) FindByDoctorID(ctx context.Context, doctorID string, params gDto.QueryParams) ([]model.Appointment, error) {
	filter := shared.FilterByField(model.FieldDoctorID, doctorID, model.TableName)

	return repo.GetAll(ctx, newestFirst(params), filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) Count(ctx context.Context) (int, error) {
	return repo.Repository.Count(ctx, gDto.FilterGroup{}) //nolint:wrapcheck
}

// newestFirst keeps caller pagination but pins the ordering; listings are
// always by creation time, descending.
func newestFirst(params gDto.QueryParams) gDto.QueryParams {
	params.SortBy = model.FieldCreatedAt
	params.SortDir = gDto.SortDirDesc

	return params
}
