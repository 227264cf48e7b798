package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"resort/config"
	"resort/infras/otel/mocks"
	availabilityMocks "resort/internal/domains/availability/mocks"
	"resort/internal/domains/availability/model"
	"resort/internal/domains/availability/model/dto"
	"resort/internal/domains/availability/service"
	roomMocks "resort/internal/domains/room/mocks"
	roomModel "resort/internal/domains/room/model"
	cacheMocks "resort/shared/cache/mocks"
	"resort/shared/constant"
	"resort/shared/timezone"
)

func newAvailabilityService(t *testing.T) (service.Availability, *availabilityMocks.MockBlockedDate, *roomMocks.MockRoomCategory, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	blockRepo := availabilityMocks.NewMockBlockedDate(ctrl)
	roomRepo := roomMocks.NewMockRoomCategory(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(blockRepo, roomRepo, cfg, mockCache, mocks.NewOtel())

	return svc, blockRepo, roomRepo, mockCache
}

func lakeViewRoom() roomModel.RoomCategory {
	return roomModel.RoomCategory{
		ID:         "room-1",
		Name:       "Lake View",
		BasePrice:  decimal.NewFromInt(4000),
		TotalRooms: 3,
		Status:     roomModel.StatusActive,
	}
}

func TestAvailabilityService_Calendar(t *testing.T) {
	svc, blockRepo, roomRepo, mockCache := newAvailabilityService(t)

	roomRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(lakeViewRoom(), nil)

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss"))

	mockCache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	day1, err := timezone.ParseDate("2024-06-01")
	require.NoError(t, err)

	blockRepo.EXPECT().
		CountByDate(gomock.Any(), "room-1", gomock.Any(), gomock.Any()).
		Return([]model.DateCount{
			{Date: day1, Blocked: 2},
		}, nil)

	res, err := svc.Calendar(context.Background(), "room-1", dto.CalendarRequest{
		StartDate: "2024-06-01",
		EndDate:   "2024-06-04",
	})

	require.NoError(t, err)
	assert.Equal(t, 3, res.TotalRooms)
	require.Len(t, res.Days, 3)
	assert.Equal(t, "2024-06-01", res.Days[0].Date)
	assert.Equal(t, 2, res.Days[0].RoomsBlocked)
	assert.Equal(t, 1, res.Days[0].RoomsAvailable)
	assert.Equal(t, 0, res.Days[1].RoomsBlocked)
	assert.Equal(t, 3, res.Days[1].RoomsAvailable)
}

func TestAvailabilityService_Calendar_OverbookedClampsToZero(t *testing.T) {
	svc, blockRepo, roomRepo, mockCache := newAvailabilityService(t)

	roomRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(lakeViewRoom(), nil)

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss"))

	mockCache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	day1, err := timezone.ParseDate("2024-06-01")
	require.NoError(t, err)

	blockRepo.EXPECT().
		CountByDate(gomock.Any(), "room-1", gomock.Any(), gomock.Any()).
		Return([]model.DateCount{
			{Date: day1, Blocked: 5},
		}, nil)

	res, err := svc.Calendar(context.Background(), "room-1", dto.CalendarRequest{
		StartDate: "2024-06-01",
		EndDate:   "2024-06-02",
	})

	require.NoError(t, err)
	require.Len(t, res.Days, 1)
	assert.Equal(t, 0, res.Days[0].RoomsAvailable)
}

func TestAvailabilityService_Calendar_RoomNotFound(t *testing.T) {
	svc, _, roomRepo, _ := newAvailabilityService(t)

	roomRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(roomModel.RoomCategory{}, nil)

	_, err := svc.Calendar(context.Background(), "missing", dto.CalendarRequest{
		StartDate: "2024-06-01",
		EndDate:   "2024-06-04",
	})

	assert.Error(t, err)
}

func TestAvailabilityService_Calendar_InvalidWindow(t *testing.T) {
	svc, _, _, _ := newAvailabilityService(t)

	_, err := svc.Calendar(context.Background(), "room-1", dto.CalendarRequest{
		StartDate: "2024-06-04",
		EndDate:   "2024-06-01",
	})

	assert.Error(t, err)
}

func TestAvailabilityService_CreateBlock(t *testing.T) {
	svc, blockRepo, roomRepo, mockCache := newAvailabilityService(t)

	roomRepo.EXPECT().
		Exist(gomock.Any(), gomock.Any()).
		Return(true, nil)

	mockCache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	blockRepo.EXPECT().
		InsertBulk(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, blocks []model.BlockedDate) error {
			require.Len(t, blocks, 3)

			for _, block := range blocks {
				assert.Equal(t, "room-1", block.RoomCategoryID)
				assert.Equal(t, 1, block.RoomsBlocked)
				assert.Equal(t, model.ReasonManual, block.Reason)
				assert.Nil(t, block.BookingID)
			}

			assert.Equal(t, "2024-06-01", blocks[0].BlockedDate.Format(constant.DateFormatDay))
			assert.Equal(t, "2024-06-03", blocks[2].BlockedDate.Format(constant.DateFormatDay))

			return nil
		})

	err := svc.CreateBlock(context.Background(), dto.CreateBlockRequest{
		RoomCategoryID: "room-1",
		StartDate:      "2024-06-01",
		EndDate:        "2024-06-04",
	})

	assert.NoError(t, err)
}

func TestAvailabilityService_CreateBlock_RoomNotFound(t *testing.T) {
	svc, _, roomRepo, _ := newAvailabilityService(t)

	roomRepo.EXPECT().
		Exist(gomock.Any(), gomock.Any()).
		Return(false, nil)

	err := svc.CreateBlock(context.Background(), dto.CreateBlockRequest{
		RoomCategoryID: "missing",
		StartDate:      "2024-06-01",
		EndDate:        "2024-06-04",
	})

	assert.Error(t, err)
}

func TestAvailabilityService_DeleteBlock(t *testing.T) {
	bookingID := "booking-1"

	tests := []struct {
		name    string
		block   model.BlockedDate
		getErr  error
		deleted bool
		wantErr bool
	}{
		{
			name:    "manual block is deleted",
			block:   model.BlockedDate{ID: "block-1", RoomCategoryID: "room-1", Reason: model.ReasonManual},
			deleted: true,
		},
		{
			name:    "booking-owned block is protected",
			block:   model.BlockedDate{ID: "block-1", RoomCategoryID: "room-1", Reason: model.ReasonBooking, BookingID: &bookingID},
			wantErr: true,
		},
		{
			name:    "missing block",
			block:   model.BlockedDate{},
			wantErr: true,
		},
		{
			name:    "repository error",
			getErr:  errors.New("database error"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, blockRepo, _, mockCache := newAvailabilityService(t)

			blockRepo.EXPECT().
				Get(gomock.Any(), gomock.Any()).
				Return(tt.block, tt.getErr)

			if tt.deleted {
				blockRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			}

			err := svc.DeleteBlock(context.Background(), "block-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
