package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"resort/infras/otel"
	"resort/infras/postgres"
	"resort/internal/domains/availability/model"
	"resort/shared/constant"
	gDto "resort/shared/dto"
	"resort/shared/logger"
	gRepo "resort/shared/repository"

	"github.com/jmoiron/sqlx"
)

type BlockedDate interface {
	Insert(ctx context.Context, model model.BlockedDate) error
	InsertBulk(ctx context.Context, models []model.BlockedDate) error
	InsertBulkTx(ctx context.Context, sqltx *sqlx.Tx, models []model.BlockedDate) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.BlockedDate, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.BlockedDate, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	DeleteTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) error
	CountByDate(ctx context.Context, roomCategoryID string, from, to time.Time) ([]model.DateCount, error)
	CountByDateTx(ctx context.Context, sqltx *sqlx.Tx, roomCategoryID string, from, to time.Time) ([]model.DateCount, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.BlockedDate]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) BlockedDate {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.BlockedDate](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

const countByDateQuery = `
	SELECT blocked_date, COALESCE(SUM(rooms_blocked), 0) AS blocked
	FROM blocked_dates
	WHERE room_category_id = :room_category_id
		AND blocked_date >= :from
		AND blocked_date < :to
	GROUP BY blocked_date`

// CountByDate aggregates blocked rooms per night within [from, to).
func (repo *repositoryImpl) CountByDate(ctx context.Context, roomCategoryID string, from, to time.Time) ([]model.DateCount, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".CountByDate")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, countByDateQuery)

	var counts []model.DateCount

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, countByDateQuery)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	err = prepare.SelectContext(ctx, &counts, map[string]any{
		"room_category_id": roomCategoryID,
		"from":             from,
		"to":               to,
	})
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to count blocked dates (%s): %w", model.EntityName, err)
	}

	return counts, nil
}

// CountByDateTx is CountByDate inside a transaction, so a booking can
// re-validate inventory against rows it is about to insert.
func (repo *repositoryImpl) CountByDateTx(ctx context.Context, sqltx *sqlx.Tx, roomCategoryID string, from, to time.Time) ([]model.DateCount, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".CountByDateTx")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, countByDateQuery)

	var counts []model.DateCount

	prepare, err := sqltx.PrepareNamedContext(ctx, countByDateQuery)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	err = prepare.SelectContext(ctx, &counts, map[string]any{
		"room_category_id": roomCategoryID,
		"from":             from,
		"to":               to,
	})
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to count blocked dates (%s): %w", model.EntityName, err)
	}

	return counts, nil
}
