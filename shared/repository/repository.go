package repository

import (
	"context"
	"docai/infras/otel"
	"docai/infras/postgres"
	"docai/shared/constant"
	"docai/shared/dto"
	"docai/shared/logger"
	"fmt"
	"reflect"
	"slices"
	"strings"
)

const (
	tagColumn     = "db"
	tagInsert     = "insert"
	tagSkipInsert = "-"
)

// Repository derives its SQL from the `db` tags of T. Fields tagged
// `insert:"-"` are read back but never written, which suits serial ids.
type Repository[T any] struct {
	db            *postgres.Connection
	otel          otel.Otel
	table         string
	entity        string
	primaryColumn string
	columns       []string
	insertColumns []string
}

func NewRepository[T any](entityName, tableName, primaryColumn string, dbConnection *postgres.Connection, otl otel.Otel) Repository[T] {
	var zero T

	columns, insertColumns := getColumns(reflect.TypeOf(zero))

	return Repository[T]{
		db:            dbConnection,
		otel:          otl,
		table:         tableName,
		entity:        entityName,
		primaryColumn: primaryColumn,
		columns:       columns,
		insertColumns: insertColumns,
	}
}

func (repo *Repository[T]) spanName(operation string) string {
	return fmt.Sprintf("%s.%s.%s", constant.OtelRepositoryScopeName, repo.entity, operation)
}

// Insert writes one row through the write pool and reports how many rows the
// driver says were affected.
func (repo *Repository[T]) Insert(ctx context.Context, model T) (rows int64, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("Insert"))
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if repo.db == nil || repo.db.Write == nil {
		return 0, fmt.Errorf("failed to insert data (%s): %w", repo.entity, ErrNoConnection)
	}

	placeholders := make([]string, len(repo.insertColumns))
	for i, col := range repo.insertColumns {
		placeholders[i] = ":" + col
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", repo.table, strings.Join(repo.insertColumns, ", "), strings.Join(placeholders, ", "))
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := repo.db.Write.NamedExecContext(ctx, query, model)
	if err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to insert data (%s): %w", repo.entity, err)
	}

	rows, err = result.RowsAffected()
	if err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to read affected rows (%s): %w", repo.entity, err)
	}

	scope.SetAttribute("rows_affected", rows)

	return rows, nil
}

// GetAll selects the rows matching filter. Ordering and paging come from
// params; columns narrows the select list when given.
func (repo *Repository[T]) GetAll(ctx context.Context, params dto.QueryParams, filter dto.FilterGroup, columns ...string) (models []T, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("GetAll"))
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	models = []T{}

	if repo.db == nil || repo.db.Read == nil {
		return models, fmt.Errorf("failed to get all data (%s): %w", repo.entity, ErrNoConnection)
	}

	where, args := repo.whereClause(filter)

	var ordering, pagination string

	if params.SortBy != "" && params.SortDir != "" {
		ordering = fmt.Sprintf("ORDER BY %s.%s %s", repo.table, params.SortBy, params.SortDir)
	}

	if params.Limit > 0 {
		args["limit"] = params.Limit
		pagination = "LIMIT :limit"

		if params.Page > 0 {
			args["offset"] = (params.Page - 1) * params.Limit
			pagination += " OFFSET :offset"
		}
	}

	query := compact("SELECT", repo.selectList(columns), "FROM", repo.table, where, ordering, pagination)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)

		return models, fmt.Errorf("failed to prepare statement (%s): %w", repo.entity, err)
	}
	defer prepare.Close()

	if err = prepare.SelectContext(ctx, &models, args); err != nil {
		logger.ErrorWithStack(err)

		return models, fmt.Errorf("failed to get all data (%s): %w", repo.entity, err)
	}

	return models, nil
}

func (repo *Repository[T]) Count(ctx context.Context, filter dto.FilterGroup) (count int, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("Count"))
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if repo.db == nil || repo.db.Read == nil {
		return 0, fmt.Errorf("failed to count data (%s): %w", repo.entity, ErrNoConnection)
	}

	where, args := repo.whereClause(filter)

	query := compact(fmt.Sprintf("SELECT COUNT(%s.%s) FROM %s", repo.table, repo.primaryColumn, repo.table), where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to prepare statement (%s): %w", repo.entity, err)
	}
	defer prepare.Close()

	if err = prepare.GetContext(ctx, &count, args); err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to count data (%s): %w", repo.entity, err)
	}

	return count, nil
}

func (repo *Repository[T]) selectList(only []string) string {
	qualified := make([]string, 0, len(repo.columns))

	for _, col := range repo.columns {
		if len(only) > 0 && !slices.Contains(only, col) {
			continue
		}

		qualified = append(qualified, repo.table+"."+col)
	}

	return strings.Join(qualified, ", ")
}

func (repo *Repository[T]) whereClause(filter dto.FilterGroup) (string, map[string]any) {
	where, args := filter.GetWhereClause()
	if where == "" {
		return "", map[string]any{}
	}

	return "WHERE " + where, args
}

// compact joins the non-empty parts with single spaces.
func compact(parts ...string) string {
	return strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
}

// getColumns walks the db tags of t, descending into embedded structs.
func getColumns(t reflect.Type) (columns, insertColumns []string) {
	for i := range t.NumField() {
		field := t.Field(i)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			cols, insertCols := getColumns(field.Type)
			columns = append(columns, cols...)
			insertColumns = append(insertColumns, insertCols...)

			continue
		}

		name := field.Tag.Get(tagColumn)
		if name == "" || name == "-" {
			continue
		}

		columns = append(columns, name)

		if field.Tag.Get(tagInsert) != tagSkipInsert {
			insertColumns = append(insertColumns, name)
		}
	}

	return columns, insertColumns
}
