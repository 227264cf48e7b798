package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"resort/infras/otel"
	"resort/infras/postgres"
	availabilityModel "resort/internal/domains/availability/model"
	availabilityRepository "resort/internal/domains/availability/repository"
	"resort/internal/domains/booking/model"
	"resort/shared"
	"resort/shared/constant"
	gDto "resort/shared/dto"
	"resort/shared/failure"
	"resort/shared/logger"
	gRepo "resort/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	CreateWithBlocks(ctx context.Context, booking model.Booking, blocks []availabilityModel.BlockedDate) error
	UpdateWithRelease(ctx context.Context, bookingID string, fields map[string]any) error
	CountByStatus(ctx context.Context) ([]model.StatusCount, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db        *postgres.Connection
	otel      otel.Otel
	blockRepo availabilityRepository.BlockedDate
}

func New(db *postgres.Connection, otel otel.Otel, blockRepo availabilityRepository.BlockedDate) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
		blockRepo:  blockRepo,
	}
}

const lockRoomQuery = `SELECT total_rooms FROM room_categories WHERE id = $1 FOR UPDATE`

// CreateWithBlocks inserts the booking and its nightly blocks in one
// transaction. The room category row is locked first and the per-night
// block counts re-checked under the lock, so two concurrent checkouts can
// never oversell the same night.
func (repo *repositoryImpl) CreateWithBlocks(ctx context.Context, booking model.Booking, blocks []availabilityModel.BlockedDate) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".CreateWithBlocks")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = repo.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		var totalRooms int

		if err := tx.GetContext(ctx, &totalRooms, lockRoomQuery, booking.RoomCategoryID); err != nil {
			logger.ErrorWithStack(err)

			return fmt.Errorf("failed to lock room category: %w", err)
		}

		counts, err := repo.blockRepo.CountByDateTx(ctx, tx, booking.RoomCategoryID, booking.CheckInDate, booking.CheckOutDate)
		if err != nil {
			return err
		}

		for _, count := range counts {
			if count.Blocked+1 > totalRooms {
				return failure.Conflict(fmt.Sprintf("no rooms available on %s", count.Date.Format(constant.DateFormatDay))) // nolint:wrapcheck
			}
		}

		if err := repo.InsertTx(ctx, tx, booking); err != nil {
			return err
		}

		if len(blocks) > 0 {
			if err := repo.blockRepo.InsertBulkTx(ctx, tx, blocks); err != nil {
				return err
			}
		}

		return nil
	})

	return err
}

// UpdateWithRelease updates the booking row and removes its blocks in one
// transaction. Used on cancellation to hand the nights back to inventory.
func (repo *repositoryImpl) UpdateWithRelease(ctx context.Context, bookingID string, fields map[string]any) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".UpdateWithRelease")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = repo.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		if err := repo.UpdateTx(ctx, tx, fields, shared.FilterByID(bookingID, model.FieldID, model.TableName)); err != nil {
			return err
		}

		blockFilter := gDto.FilterGroup{
			Filters: []any{
				gDto.Filter{
					Field:    availabilityModel.FieldBookingID,
					Operator: gDto.FilterOperatorEq,
					Value:    bookingID,
					Table:    availabilityModel.TableName,
				},
			},
		}

		return repo.blockRepo.DeleteTx(ctx, tx, blockFilter)
	})

	return err
}

const countByStatusQuery = `SELECT status, COUNT(id) AS count FROM bookings GROUP BY status`

func (repo *repositoryImpl) CountByStatus(ctx context.Context) ([]model.StatusCount, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".CountByStatus")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, countByStatusQuery)

	var counts []model.StatusCount

	err := repo.db.Read.SelectContext(ctx, &counts, countByStatusQuery)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to count bookings by status: %w", err)
	}

	return counts, nil
}
