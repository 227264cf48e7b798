package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"resort/infras/otel/mocks"
	packagesMocks "resort/internal/domains/packages/mocks"
	packagesModel "resort/internal/domains/packages/model"
	"resort/internal/domains/pricing/model/dto"
	"resort/internal/domains/pricing/service"
	ratesMocks "resort/internal/domains/rates/mocks"
	ratesModel "resort/internal/domains/rates/model"
	roomMocks "resort/internal/domains/room/mocks"
	roomModel "resort/internal/domains/room/model"
	gModel "resort/shared/model"
	"resort/shared/timezone"
)

type pricingMocks struct {
	roomRepo     *roomMocks.MockRoomCategory
	seasonRepo   *ratesMocks.MockSeason
	mealPlanRepo *ratesMocks.MockMealPlan
	taxRepo      *ratesMocks.MockTax
	packageRepo  *packagesMocks.MockPackage
}

func newPricingService(t *testing.T) (service.Pricing, *pricingMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := &pricingMocks{
		roomRepo:     roomMocks.NewMockRoomCategory(ctrl),
		seasonRepo:   ratesMocks.NewMockSeason(ctrl),
		mealPlanRepo: ratesMocks.NewMockMealPlan(ctrl),
		taxRepo:      ratesMocks.NewMockTax(ctrl),
		packageRepo:  packagesMocks.NewMockPackage(ctrl),
	}

	svc := service.New(m.roomRepo, m.seasonRepo, m.mealPlanRepo, m.taxRepo, m.packageRepo, mocks.NewOtel())

	return svc, m
}

func deluxeRoom() roomModel.RoomCategory {
	return roomModel.RoomCategory{
		ID:              "a3f5e9a0-1f2b-4c3d-8e4f-5a6b7c8d9e0f",
		Name:            "Deluxe Cottage",
		BasePrice:       decimal.NewFromInt(5000),
		BaseOccupancy:   2,
		MaxAdults:       3,
		MaxChildren:     2,
		ExtraAdultPrice: decimal.NewFromInt(1000),
		ExtraChildPrice: decimal.NewFromInt(500),
		TotalRooms:      5,
		Status:          roomModel.StatusActive,
	}
}

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()

	parsed, err := timezone.ParseDate(value)
	require.NoError(t, err)

	return parsed
}

func TestPricingService_Quote_Breakdown(t *testing.T) {
	svc, m := newPricingService(t)

	m.roomRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(deluxeRoom(), nil)

	m.seasonRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil)

	m.taxRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]ratesModel.TaxConfig{
			{ID: "tax-1", Name: "GST", Rate: decimal.NewFromInt(18), Active: true},
		}, nil)

	res, err := svc.Quote(context.Background(), dto.QuoteRequest{
		RoomCategoryID: "a3f5e9a0-1f2b-4c3d-8e4f-5a6b7c8d9e0f",
		CheckInDate:    "2024-06-01",
		CheckOutDate:   "2024-06-03",
		NumAdults:      3,
		NumChildren:    0,
	})

	require.NoError(t, err)
	assert.Equal(t, 2, res.NumNights)
	assert.Equal(t, 1, res.ExtraAdults)
	assert.Equal(t, "10000", res.RoomTotal.String())
	assert.Equal(t, "2000", res.ExtraAdultTotal.String())
	assert.Equal(t, "12000", res.Subtotal.String())
	assert.Equal(t, "18", res.TaxRate.String())
	assert.Equal(t, "2160", res.Taxes.String())
	assert.Equal(t, "0", res.DiscountAmount.String())
	assert.Equal(t, "14160", res.GrandTotal.String())
}

func TestPricingService_Quote_AdditiveTaxes(t *testing.T) {
	svc, m := newPricingService(t)

	m.roomRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(deluxeRoom(), nil)

	m.seasonRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil)

	m.taxRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]ratesModel.TaxConfig{
			{ID: "tax-1", Name: "CGST", Rate: decimal.NewFromInt(9), Active: true},
			{ID: "tax-2", Name: "SGST", Rate: decimal.NewFromInt(9), Active: true},
		}, nil)

	res, err := svc.Quote(context.Background(), dto.QuoteRequest{
		RoomCategoryID: "a3f5e9a0-1f2b-4c3d-8e4f-5a6b7c8d9e0f",
		CheckInDate:    "2024-06-01",
		CheckOutDate:   "2024-06-03",
		NumAdults:      3,
	})

	require.NoError(t, err)
	assert.Equal(t, "18", res.TaxRate.String())
	assert.Equal(t, "2160", res.Taxes.String())
	assert.Equal(t, "14160", res.GrandTotal.String())
}

func TestPricingService_Quote_SeasonMultiplier(t *testing.T) {
	tests := []struct {
		name          string
		seasons       []ratesModel.Season
		wantRoomTotal string
	}{
		{
			name:          "no season falls back to base price",
			seasons:       nil,
			wantRoomTotal: "10000",
		},
		{
			name: "peak season applies per covered night",
			seasons: []ratesModel.Season{
				{
					ID:         "season-1",
					StartDate:  mustDate(t, "2024-06-01"),
					EndDate:    mustDate(t, "2024-06-01"),
					Multiplier: decimal.NewFromFloat(1.5),
					SeasonType: ratesModel.SeasonTypePeak,
					Active:     true,
				},
			},
			wantRoomTotal: "12500",
		},
		{
			name: "highest multiplier wins on overlap",
			seasons: []ratesModel.Season{
				{
					ID:         "season-1",
					StartDate:  mustDate(t, "2024-05-01"),
					EndDate:    mustDate(t, "2024-06-30"),
					Multiplier: decimal.NewFromFloat(1.2),
					Active:     true,
				},
				{
					ID:         "season-2",
					StartDate:  mustDate(t, "2024-06-01"),
					EndDate:    mustDate(t, "2024-06-10"),
					Multiplier: decimal.NewFromFloat(1.5),
					Active:     true,
				},
			},
			wantRoomTotal: "15000",
		},
		{
			name: "equal multipliers break on most recent season",
			seasons: []ratesModel.Season{
				{
					ID:         "season-1",
					StartDate:  mustDate(t, "2024-05-01"),
					EndDate:    mustDate(t, "2024-06-30"),
					Multiplier: decimal.NewFromFloat(1.5),
					Active:     true,
					Metadata:   gModel.Metadata{CreatedAt: mustDate(t, "2024-01-01")},
				},
				{
					ID:         "season-2",
					StartDate:  mustDate(t, "2024-06-01"),
					EndDate:    mustDate(t, "2024-06-10"),
					Multiplier: decimal.NewFromFloat(1.5),
					Active:     true,
					Metadata:   gModel.Metadata{CreatedAt: mustDate(t, "2024-02-01")},
				},
			},
			wantRoomTotal: "15000",
		},
		{
			name: "inactive season is ignored",
			seasons: []ratesModel.Season{
				{
					ID:         "season-1",
					StartDate:  mustDate(t, "2024-05-01"),
					EndDate:    mustDate(t, "2024-06-30"),
					Multiplier: decimal.NewFromFloat(2),
					Active:     false,
				},
			},
			wantRoomTotal: "10000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newPricingService(t)

			m.roomRepo.EXPECT().
				Get(gomock.Any(), gomock.Any()).
				Return(deluxeRoom(), nil)

			m.seasonRepo.EXPECT().
				GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(tt.seasons, nil)

			m.taxRepo.EXPECT().
				GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(nil, nil)

			res, err := svc.Quote(context.Background(), dto.QuoteRequest{
				RoomCategoryID: "a3f5e9a0-1f2b-4c3d-8e4f-5a6b7c8d9e0f",
				CheckInDate:    "2024-06-01",
				CheckOutDate:   "2024-06-03",
				NumAdults:      2,
			})

			require.NoError(t, err)
			assert.Equal(t, tt.wantRoomTotal, res.RoomTotal.String())
		})
	}
}

func TestPricingService_Quote_MealPlan(t *testing.T) {
	tests := []struct {
		name              string
		planType          string
		configured        ratesModel.MealPlanPrice
		wantErr           bool
		wantMealPlanTotal string
	}{
		{
			name:     "configured plan is charged per guest per night",
			planType: ratesModel.MealPlanMAP,
			configured: ratesModel.MealPlanPrice{
				ID:         "mp-1",
				PlanType:   ratesModel.MealPlanMAP,
				AdultPrice: decimal.NewFromInt(800),
				ChildPrice: decimal.NewFromInt(400),
				Active:     true,
			},
			wantMealPlanTotal: "4000",
		},
		{
			name:       "unconfigured plan is rejected",
			planType:   ratesModel.MealPlanAP,
			configured: ratesModel.MealPlanPrice{},
			wantErr:    true,
		},
		{
			name:              "unconfigured room-only plan is free",
			planType:          ratesModel.MealPlanEP,
			configured:        ratesModel.MealPlanPrice{},
			wantMealPlanTotal: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newPricingService(t)

			m.roomRepo.EXPECT().
				Get(gomock.Any(), gomock.Any()).
				Return(deluxeRoom(), nil)

			m.seasonRepo.EXPECT().
				GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(nil, nil)

			m.taxRepo.EXPECT().
				GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(nil, nil)

			m.mealPlanRepo.EXPECT().
				Get(gomock.Any(), gomock.Any()).
				Return(tt.configured, nil)

			res, err := svc.Quote(context.Background(), dto.QuoteRequest{
				RoomCategoryID: "a3f5e9a0-1f2b-4c3d-8e4f-5a6b7c8d9e0f",
				CheckInDate:    "2024-06-01",
				CheckOutDate:   "2024-06-03",
				NumAdults:      2,
				NumChildren:    1,
				MealPlan:       tt.planType,
			})

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantMealPlanTotal, res.MealPlanTotal.String())
			assert.Equal(t, tt.planType, res.MealPlan)
		})
	}
}

func TestPricingService_Quote_Package(t *testing.T) {
	tests := []struct {
		name             string
		pkg              packagesModel.Package
		wantErr          bool
		wantPackageTotal string
	}{
		{
			name: "fixed package is charged once per stay",
			pkg: packagesModel.Package{
				ID:          "pkg-1",
				Name:        "Candlelight Dinner",
				Price:       decimal.NewFromInt(2500),
				PricingMode: packagesModel.PricingModeFixed,
				Active:      true,
			},
			wantPackageTotal: "2500",
		},
		{
			name: "per-night package scales with the stay",
			pkg: packagesModel.Package{
				ID:          "pkg-1",
				Name:        "Bonfire",
				Price:       decimal.NewFromInt(2500),
				PricingMode: packagesModel.PricingModePerNight,
				Active:      true,
			},
			wantPackageTotal: "5000",
		},
		{
			name:    "unknown package is rejected",
			pkg:     packagesModel.Package{},
			wantErr: true,
		},
		{
			name: "inactive package is rejected",
			pkg: packagesModel.Package{
				ID:          "pkg-1",
				Price:       decimal.NewFromInt(2500),
				PricingMode: packagesModel.PricingModeFixed,
				Active:      false,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newPricingService(t)

			m.roomRepo.EXPECT().
				Get(gomock.Any(), gomock.Any()).
				Return(deluxeRoom(), nil)

			m.seasonRepo.EXPECT().
				GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(nil, nil)

			m.taxRepo.EXPECT().
				GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(nil, nil)

			m.packageRepo.EXPECT().
				Get(gomock.Any(), gomock.Any()).
				Return(tt.pkg, nil)

			res, err := svc.Quote(context.Background(), dto.QuoteRequest{
				RoomCategoryID: "a3f5e9a0-1f2b-4c3d-8e4f-5a6b7c8d9e0f",
				CheckInDate:    "2024-06-01",
				CheckOutDate:   "2024-06-03",
				NumAdults:      2,
				PackageID:      "b1c2d3e4-f5a6-4b7c-8d9e-0f1a2b3c4d5e",
			})

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantPackageTotal, res.PackageTotal.String())
		})
	}
}

func TestPricingService_Quote_Validation(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.QuoteRequest
		setupMock func(m *pricingMocks)
	}{
		{
			name: "check-out equal to check-in",
			req: dto.QuoteRequest{
				RoomCategoryID: "a3f5e9a0-1f2b-4c3d-8e4f-5a6b7c8d9e0f",
				CheckInDate:    "2024-06-01",
				CheckOutDate:   "2024-06-01",
				NumAdults:      2,
			},
			setupMock: func(m *pricingMocks) {},
		},
		{
			name: "check-out before check-in",
			req: dto.QuoteRequest{
				RoomCategoryID: "a3f5e9a0-1f2b-4c3d-8e4f-5a6b7c8d9e0f",
				CheckInDate:    "2024-06-03",
				CheckOutDate:   "2024-06-01",
				NumAdults:      2,
			},
			setupMock: func(m *pricingMocks) {},
		},
		{
			name: "room category not found",
			req: dto.QuoteRequest{
				RoomCategoryID: "a3f5e9a0-1f2b-4c3d-8e4f-5a6b7c8d9e0f",
				CheckInDate:    "2024-06-01",
				CheckOutDate:   "2024-06-03",
				NumAdults:      2,
			},
			setupMock: func(m *pricingMocks) {
				m.roomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(roomModel.RoomCategory{}, nil)
			},
		},
		{
			name: "room category repository error",
			req: dto.QuoteRequest{
				RoomCategoryID: "a3f5e9a0-1f2b-4c3d-8e4f-5a6b7c8d9e0f",
				CheckInDate:    "2024-06-01",
				CheckOutDate:   "2024-06-03",
				NumAdults:      2,
			},
			setupMock: func(m *pricingMocks) {
				m.roomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(roomModel.RoomCategory{}, errors.New("database error"))
			},
		},
		{
			name: "room category not bookable",
			req: dto.QuoteRequest{
				RoomCategoryID: "a3f5e9a0-1f2b-4c3d-8e4f-5a6b7c8d9e0f",
				CheckInDate:    "2024-06-01",
				CheckOutDate:   "2024-06-03",
				NumAdults:      2,
			},
			setupMock: func(m *pricingMocks) {
				room := deluxeRoom()
				room.Status = roomModel.StatusMaintenance

				m.roomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(room, nil)
			},
		},
		{
			name: "too many adults",
			req: dto.QuoteRequest{
				RoomCategoryID: "a3f5e9a0-1f2b-4c3d-8e4f-5a6b7c8d9e0f",
				CheckInDate:    "2024-06-01",
				CheckOutDate:   "2024-06-03",
				NumAdults:      4,
			},
			setupMock: func(m *pricingMocks) {
				m.roomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(deluxeRoom(), nil)
			},
		},
		{
			name: "too many children",
			req: dto.QuoteRequest{
				RoomCategoryID: "a3f5e9a0-1f2b-4c3d-8e4f-5a6b7c8d9e0f",
				CheckInDate:    "2024-06-01",
				CheckOutDate:   "2024-06-03",
				NumAdults:      2,
				NumChildren:    3,
			},
			setupMock: func(m *pricingMocks) {
				m.roomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(deluxeRoom(), nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newPricingService(t)
			tt.setupMock(m)

			_, err := svc.Quote(context.Background(), tt.req)

			assert.Error(t, err)
		})
	}
}

func TestStayNights(t *testing.T) {
	nights, err := service.StayNights("2024-06-01", "2024-06-04")

	require.NoError(t, err)
	require.Len(t, nights, 3)
	assert.Equal(t, mustDate(t, "2024-06-01"), nights[0])
	assert.Equal(t, mustDate(t, "2024-06-03"), nights[2])
}
