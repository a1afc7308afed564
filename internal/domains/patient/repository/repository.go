package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"docai/infras/otel"
	"docai/infras/postgres"
	"docai/internal/domains/patient/model"
	"docai/shared"
	gDto "docai/shared/dto"
	gRepo "docai/shared/repository"
	"fmt"
)

type Patient interface {
	Insert(ctx context.Context, model model.Patient) (int64, error)
	FindSymptomsByName(ctx context.Context, name string) (string, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Patient]
}

func New(db *postgres.Connection, otel otel.Otel) Patient {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Patient](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

// FindSymptomsByName reads the symptoms of the most recently stored patient
// with that name. Names are not unique.
func (repo *repositoryImpl) FindSymptomsByName(ctx context.Context, name string) (string, error) {
	params := gDto.QueryParams{
		Limit:   1,
		SortBy:  model.FieldID,
		SortDir: gDto.SortDirDesc,
	}

	patients, err := repo.GetAll(ctx, params, shared.FilterByField(model.FieldName, name, model.TableName), model.FieldSymptoms)
	if err != nil {
		return "", err //nolint:wrapcheck
	}

	if len(patients) == 0 {
		return "", fmt.Errorf("%w: %s", model.ErrPatientNotFound, name)
	}

	return patients[0].Symptoms, nil
}
