package validator_test

import (
	"strings"
	"testing"

	"resort/shared/failure"
	"resort/shared/validator"
)

type stayRequest struct {
	RoomCategoryID string `json:"room_category_id" validate:"required"`
	CheckInDate    string `json:"check_in_date"    validate:"required,datetime=2006-01-02"`
	NumAdults      int    `json:"num_adults"       validate:"required,min=1"`
	GuestEmail     string `json:"guest_email"      validate:"omitempty,email"`
	MealPlan       string `json:"meal_plan"        validate:"required,oneof=EP CP MAP AP"`
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{
			name:    "valid request",
			body:    `{"room_category_id":"rc-1","check_in_date":"2024-06-01","num_adults":2,"meal_plan":"CP"}`,
			wantErr: false,
		},
		{
			name:    "missing room category",
			body:    `{"check_in_date":"2024-06-01","num_adults":2,"meal_plan":"CP"}`,
			wantErr: true,
		},
		{
			name:    "zero adults",
			body:    `{"room_category_id":"rc-1","check_in_date":"2024-06-01","num_adults":0,"meal_plan":"CP"}`,
			wantErr: true,
		},
		{
			name:    "unknown meal plan",
			body:    `{"room_category_id":"rc-1","check_in_date":"2024-06-01","num_adults":2,"meal_plan":"XX"}`,
			wantErr: true,
		},
		{
			name:    "bad date format",
			body:    `{"room_category_id":"rc-1","check_in_date":"01/06/2024","num_adults":2,"meal_plan":"CP"}`,
			wantErr: true,
		},
		{
			name:    "bad email",
			body:    `{"room_category_id":"rc-1","check_in_date":"2024-06-01","num_adults":2,"guest_email":"nope","meal_plan":"EP"}`,
			wantErr: true,
		},
		{
			name:    "malformed json",
			body:    `{"room_category_id":`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := stayRequest{}
			err := validator.Validate(strings.NewReader(tt.body), &req)

			if tt.wantErr && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.wantErr && err != nil {
				t.Errorf("expected no error, got %v", err)
			}

			if tt.wantErr && err != nil && failure.GetCode(err) != 400 {
				t.Errorf("expected bad request code, got %d", failure.GetCode(err))
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	if err := validator.ValidateVar("MAP", "oneof=EP CP MAP AP"); err != nil {
		t.Errorf("expected MAP to be a valid meal plan, got %v", err)
	}

	if err := validator.ValidateVar("BB", "oneof=EP CP MAP AP"); err == nil {
		t.Error("expected BB to be rejected")
	}
}
