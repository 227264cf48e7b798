package dto_test

import (
	"testing"

	"resort/shared/dto"
)

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name      string
		filter    dto.Filter
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name: "eq with table",
			filter: dto.Filter{
				Field:    "room_category_id",
				Value:    "rc-1",
				Operator: dto.FilterOperatorEq,
				Table:    "blocked_dates",
			},
			wantWhere: "blocked_dates.room_category_id = :room_category_id",
			wantArgs:  map[string]any{"room_category_id": "rc-1"},
		},
		{
			name: "greater_eq with arg name",
			filter: dto.Filter{
				ArgName:  "from_date",
				Field:    "blocked_date",
				Value:    "2024-06-01",
				Operator: dto.FilterOperatorGreaterEq,
			},
			wantWhere: "blocked_date >= :from_date",
			wantArgs:  map[string]any{"from_date": "2024-06-01"},
		},
		{
			name: "strict less for checkout bound",
			filter: dto.Filter{
				ArgName:  "to_date",
				Field:    "blocked_date",
				Value:    "2024-06-04",
				Operator: dto.FilterOperatorLess,
			},
			wantWhere: "blocked_date < :to_date",
			wantArgs:  map[string]any{"to_date": "2024-06-04"},
		},
		{
			name: "is null",
			filter: dto.Filter{
				Field:    "cancelled_at",
				Operator: dto.FilterIsNull,
			},
			wantWhere: "cancelled_at IS NULL",
			wantArgs:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			if where != tt.wantWhere {
				t.Errorf("expected where %q, got %q", tt.wantWhere, where)
			}

			if len(args) != len(tt.wantArgs) {
				t.Fatalf("expected %d args, got %d", len(tt.wantArgs), len(args))
			}

			for k, v := range tt.wantArgs {
				if args[k] != v {
					t.Errorf("expected arg %s=%v, got %v", k, v, args[k])
				}
			}
		})
	}
}

func TestFilter_GetWhereClause_In(t *testing.T) {
	filter := dto.Filter{
		Field:    "status",
		Value:    []string{"new_enquiry", "pending_confirmation"},
		Operator: dto.FilterOperatorIn,
	}

	where, args := filter.GetWhereClause()

	if where != "status IN (:status_0, :status_1) " {
		t.Errorf("unexpected where clause: %q", where)
	}

	if args["status_0"] != "new_enquiry" || args["status_1"] != "pending_confirmation" {
		t.Errorf("unexpected args: %v", args)
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "room_category_id", Value: "rc-1", Operator: dto.FilterOperatorEq},
			dto.FilterGroup{
				Operator: dto.FilterGroupOperatorOr,
				Filters: []any{
					dto.Filter{Field: "status", Value: "confirmed", Operator: dto.FilterOperatorEq},
					dto.Filter{Field: "status", ArgName: "status_pending", Value: "pending_confirmation", Operator: dto.FilterOperatorEq},
				},
			},
		},
	}

	where, args := group.GetWhereClause()

	expected := "(room_category_id = :room_category_id AND (status = :status OR status = :status_pending))"
	if where != expected {
		t.Errorf("expected %q, got %q", expected, where)
	}

	if len(args) != 3 {
		t.Errorf("expected 3 args, got %d", len(args))
	}
}

func TestFilterGroup_Empty(t *testing.T) {
	group := dto.FilterGroup{Operator: dto.FilterGroupOperatorAnd}

	where, args := group.GetWhereClause()
	if where != "" {
		t.Errorf("expected empty where clause, got %q", where)
	}

	if len(args) != 0 {
		t.Errorf("expected no args, got %v", args)
	}
}
