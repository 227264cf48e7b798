package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"resort/config"
	"resort/infras/otel/mocks"
	availabilityModel "resort/internal/domains/availability/model"
	bookingMocks "resort/internal/domains/booking/mocks"
	"resort/internal/domains/booking/model"
	"resort/internal/domains/booking/model/dto"
	"resort/internal/domains/booking/service"
	pricingMocks "resort/internal/domains/pricing/mocks"
	pricingDto "resort/internal/domains/pricing/model/dto"
	notificationMocks "resort/internal/notification/mocks"
	cacheMocks "resort/shared/cache/mocks"
	"resort/shared/constant"
	"resort/shared/failure"
	"resort/shared/timezone"
)

type bookingTestMocks struct {
	repo     *bookingMocks.MockBooking
	pricing  *pricingMocks.MockPricing
	notifier *notificationMocks.MockProducer
	cache    *cacheMocks.MockRedisCache
}

func newBookingService(t *testing.T) (service.Booking, *bookingTestMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := &bookingTestMocks{
		repo:     bookingMocks.NewMockBooking(ctrl),
		pricing:  pricingMocks.NewMockPricing(ctrl),
		notifier: notificationMocks.NewMockProducer(ctrl),
		cache:    cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Booking.ReferencePrefix = "RST"

	svc := service.New(m.repo, m.pricing, m.notifier, cfg, m.cache, mocks.NewOtel())

	return svc, m
}

func sampleQuote() pricingDto.BreakdownResponse {
	return pricingDto.BreakdownResponse{
		NumNights:       3,
		BaseRoomPrice:   decimal.NewFromInt(5000),
		RoomTotal:       decimal.NewFromInt(15000),
		ExtraAdultTotal: decimal.NewFromInt(3000),
		ExtraGuestTotal: decimal.NewFromInt(3000),
		Subtotal:        decimal.NewFromInt(18000),
		TaxRate:         decimal.NewFromInt(18),
		Taxes:           decimal.NewFromInt(3240),
		GrandTotal:      decimal.NewFromInt(21240),
	}
}

func sampleCreateRequest(enquiry bool) dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		GuestName:      "Asha Nair",
		GuestEmail:     "asha@example.com",
		GuestPhone:     "+91 98765 43210",
		RoomCategoryID: "a3f5e9a0-1f2b-4c3d-8e4f-5a6b7c8d9e0f",
		CheckInDate:    "2024-06-01",
		CheckOutDate:   "2024-06-04",
		NumAdults:      3,
		IsEnquiryOnly:  enquiry,
	}
}

func TestBookingService_Create_BlocksOneRowPerNight(t *testing.T) {
	svc, m := newBookingService(t)

	m.pricing.EXPECT().
		Quote(gomock.Any(), gomock.Any()).
		Return(sampleQuote(), nil)

	m.repo.EXPECT().
		CreateWithBlocks(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, booking model.Booking, blocks []availabilityModel.BlockedDate) error {
			require.Len(t, blocks, 3)

			for _, block := range blocks {
				assert.Equal(t, booking.RoomCategoryID, block.RoomCategoryID)
				assert.Equal(t, 1, block.RoomsBlocked)
				assert.Equal(t, availabilityModel.ReasonBooking, block.Reason)
				require.NotNil(t, block.BookingID)
				assert.Equal(t, booking.ID, *block.BookingID)
			}

			assert.Equal(t, "2024-06-01", blocks[0].BlockedDate.Format(constant.DateFormatDay))
			assert.Equal(t, "2024-06-03", blocks[2].BlockedDate.Format(constant.DateFormatDay))

			return nil
		})

	m.cache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	m.notifier.EXPECT().
		BookingCreated(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	res, err := svc.Create(context.Background(), sampleCreateRequest(false))

	require.NoError(t, err)
	assert.Equal(t, model.StatusPendingConfirmation, res.Status)
	assert.True(t, strings.HasPrefix(res.BookingReference, "RST-"))
	assert.Equal(t, "21240", res.GrandTotal.String())
	assert.Equal(t, "0", res.DiscountAmount.String())
}

func TestBookingService_Create_EnquiryDoesNotBlock(t *testing.T) {
	svc, m := newBookingService(t)

	m.pricing.EXPECT().
		Quote(gomock.Any(), gomock.Any()).
		Return(sampleQuote(), nil)

	m.repo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, booking model.Booking) error {
			assert.True(t, booking.IsEnquiryOnly)
			assert.Equal(t, model.StatusNewEnquiry, booking.Status)

			return nil
		})

	m.cache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	m.notifier.EXPECT().
		BookingCreated(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	res, err := svc.Create(context.Background(), sampleCreateRequest(true))

	require.NoError(t, err)
	assert.Equal(t, model.StatusNewEnquiry, res.Status)
	assert.True(t, res.IsEnquiryOnly)
}

func TestBookingService_Create_ReferencesAreUniquePerCall(t *testing.T) {
	svc, m := newBookingService(t)

	m.pricing.EXPECT().
		Quote(gomock.Any(), gomock.Any()).
		Return(sampleQuote(), nil).
		Times(2)

	m.repo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		Return(nil).
		Times(2)

	m.cache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	m.notifier.EXPECT().
		BookingCreated(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	first, err := svc.Create(context.Background(), sampleCreateRequest(true))
	require.NoError(t, err)

	second, err := svc.Create(context.Background(), sampleCreateRequest(true))
	require.NoError(t, err)

	assert.NotEqual(t, first.BookingReference, second.BookingReference)
}

func TestBookingService_Create_QuoteError(t *testing.T) {
	svc, m := newBookingService(t)

	m.pricing.EXPECT().
		Quote(gomock.Any(), gomock.Any()).
		Return(pricingDto.BreakdownResponse{}, failure.NotFound("room category not found"))

	_, err := svc.Create(context.Background(), sampleCreateRequest(false))

	assert.Error(t, err)
}

func TestBookingService_Create_SoldOutConflict(t *testing.T) {
	svc, m := newBookingService(t)

	m.pricing.EXPECT().
		Quote(gomock.Any(), gomock.Any()).
		Return(sampleQuote(), nil)

	m.repo.EXPECT().
		CreateWithBlocks(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(failure.Conflict("no rooms available on 2024-06-02"))

	_, err := svc.Create(context.Background(), sampleCreateRequest(false))

	require.Error(t, err)
	assert.Equal(t, 409, failure.GetCode(err))
}

func TestBookingService_Create_NotificationFailureDoesNotFailBooking(t *testing.T) {
	svc, m := newBookingService(t)

	m.pricing.EXPECT().
		Quote(gomock.Any(), gomock.Any()).
		Return(sampleQuote(), nil)

	m.repo.EXPECT().
		CreateWithBlocks(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)

	m.cache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	m.notifier.EXPECT().
		BookingCreated(gomock.Any(), gomock.Any()).
		Return(errors.New("broker unavailable")).
		AnyTimes()

	_, err := svc.Create(context.Background(), sampleCreateRequest(false))

	assert.NoError(t, err)
}

func TestBookingService_UpdateStatus(t *testing.T) {
	tests := []struct {
		name        string
		current     string
		target      string
		wantRelease bool
		wantErr     bool
	}{
		{name: "enquiry to pending", current: model.StatusNewEnquiry, target: model.StatusPendingConfirmation},
		{name: "pending to confirmed", current: model.StatusPendingConfirmation, target: model.StatusConfirmed},
		{name: "confirmed to completed", current: model.StatusConfirmed, target: model.StatusCompleted},
		{name: "confirmed to cancelled releases blocks", current: model.StatusConfirmed, target: model.StatusCancelled, wantRelease: true},
		{name: "completed is terminal", current: model.StatusCompleted, target: model.StatusConfirmed, wantErr: true},
		{name: "cancelled is terminal", current: model.StatusCancelled, target: model.StatusConfirmed, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newBookingService(t)

			m.repo.EXPECT().
				Get(gomock.Any(), gomock.Any()).
				Return(model.Booking{ID: "booking-1", Status: tt.current}, nil)

			if !tt.wantErr {
				m.cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				if tt.wantRelease {
					m.repo.EXPECT().
						UpdateWithRelease(gomock.Any(), "booking-1", gomock.Any()).
						DoAndReturn(func(_ context.Context, _ string, fields map[string]any) error {
							assert.Equal(t, model.StatusCancelled, fields[model.FieldStatus])
							assert.Contains(t, fields, model.FieldCancelledAt)

							return nil
						})
				} else {
					m.repo.EXPECT().
						Update(gomock.Any(), gomock.Any(), gomock.Any()).
						DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
							assert.Equal(t, tt.target, fields[model.FieldStatus])

							switch tt.target {
							case model.StatusConfirmed:
								assert.Contains(t, fields, model.FieldConfirmedAt)
							case model.StatusCompleted:
								assert.Contains(t, fields, model.FieldCompletedAt)
							}

							return nil
						})
				}
			}

			err := svc.UpdateStatus(context.Background(), dto.UpdateStatusRequest{Status: tt.target}, "booking-1")

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, 409, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingService_UpdateStatus_NotFound(t *testing.T) {
	svc, m := newBookingService(t)

	m.repo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.Booking{}, nil)

	err := svc.UpdateStatus(context.Background(), dto.UpdateStatusRequest{Status: model.StatusConfirmed}, "missing")

	assert.Error(t, err)
}

func TestBookingService_Cancel(t *testing.T) {
	svc, m := newBookingService(t)

	m.repo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.Booking{ID: "booking-1", Status: model.StatusPendingConfirmation}, nil)

	m.repo.EXPECT().
		UpdateWithRelease(gomock.Any(), "booking-1", gomock.Any()).
		Return(nil)

	m.cache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	err := svc.Cancel(context.Background(), "booking-1")

	assert.NoError(t, err)
}

func TestBookingService_Get(t *testing.T) {
	svc, m := newBookingService(t)

	m.cache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss"))

	m.cache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	checkIn, err := timezone.ParseDate("2024-06-01")
	require.NoError(t, err)

	checkOut, err := timezone.ParseDate("2024-06-04")
	require.NoError(t, err)

	m.repo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.Booking{
			ID:               "booking-1",
			BookingReference: "RST-ABC123",
			CheckInDate:      checkIn,
			CheckOutDate:     checkOut,
			Status:           model.StatusConfirmed,
		}, nil)

	res, err := svc.Get(context.Background(), "booking-1")

	require.NoError(t, err)
	assert.Equal(t, "RST-ABC123", res.BookingReference)
	assert.Equal(t, "2024-06-01", res.CheckInDate)
}

func TestBookingService_Stats(t *testing.T) {
	svc, m := newBookingService(t)

	m.cache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss"))

	m.cache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	m.repo.EXPECT().
		CountByStatus(gomock.Any()).
		Return([]model.StatusCount{
			{Status: model.StatusNewEnquiry, Count: 2},
			{Status: model.StatusConfirmed, Count: 5},
			{Status: model.StatusCancelled, Count: 1},
		}, nil)

	res, err := svc.Stats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 8, res.Total)
	assert.Equal(t, 2, res.NewEnquiries)
	assert.Equal(t, 5, res.Confirmed)
	assert.Equal(t, 1, res.Cancelled)
}

func TestBookingService_CountPendingEnquiries(t *testing.T) {
	t.Run("cache hit", func(t *testing.T) {
		svc, m := newBookingService(t)

		m.cache.EXPECT().
			Get(gomock.Any(), service.CachePendingEnquiries, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				count, ok := value.(*int)
				require.True(t, ok)
				*count = 4

				return nil
			})

		count, err := svc.CountPendingEnquiries(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 4, count)
	})

	t.Run("cache miss falls back to live count", func(t *testing.T) {
		svc, m := newBookingService(t)

		m.cache.EXPECT().
			Get(gomock.Any(), service.CachePendingEnquiries, gomock.Any()).
			Return(errors.New("cache miss"))

		m.repo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(7, nil)

		m.cache.EXPECT().
			Save(gomock.Any(), service.CachePendingEnquiries, 7, gomock.Any()).
			Return(nil)

		count, err := svc.CountPendingEnquiries(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 7, count)
	})
}
