package shared_test

import (
	"testing"

	"resort/shared"
	"resort/shared/dto"
)

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{name: "empty result", total: 0, limit: 10, expected: 1},
		{name: "exact pages", total: 20, limit: 10, expected: 2},
		{name: "partial last page", total: 21, limit: 10, expected: 3},
		{name: "zero limit", total: 50, limit: 0, expected: 1},
		{name: "single page", total: 3, limit: 10, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shared.CalculateTotalPage(tt.total, tt.limit); got != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestConvertStringToBool(t *testing.T) {
	if shared.ConvertStringToBool("") != nil {
		t.Error("expected nil for empty string")
	}

	if got := shared.ConvertStringToBool("true"); got == nil || !*got {
		t.Error("expected true")
	}

	if got := shared.ConvertStringToBool("false"); got == nil || *got {
		t.Error("expected false")
	}

	if shared.ConvertStringToBool("not-a-bool") != nil {
		t.Error("expected nil for invalid input")
	}
}

func TestFilterByID(t *testing.T) {
	group := shared.FilterByID("b-1", "id", "bookings")

	where, args := group.GetWhereClause()
	if where != "(bookings.id = :id)" {
		t.Errorf("unexpected where clause: %s", where)
	}

	if args["id"] != "b-1" {
		t.Errorf("unexpected args: %v", args)
	}
}

func TestTransformFields(t *testing.T) {
	req := struct {
		GuestName string `db:"guest_name"`
		GuestCity string `db:"guest_city"`
		Ignored   string
	}{GuestName: "Asha", Ignored: "x"}

	fields := shared.TransformFields(req, "admin@resort")

	if fields["guest_name"] != "Asha" {
		t.Errorf("expected guest_name to be set, got %v", fields["guest_name"])
	}

	if _, ok := fields["guest_city"]; ok {
		t.Error("expected zero-value field to be skipped")
	}

	if fields["modified_by"] != "admin@resort" {
		t.Errorf("expected modifier to be stamped, got %v", fields["modified_by"])
	}
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 1, Limit: 10}
	filter := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "status", Operator: dto.FilterOperatorEq, Value: "confirmed"},
		},
	}

	first := shared.BuildCacheKeyWithQuery("booking:gets", params, filter)
	second := shared.BuildCacheKeyWithQuery("booking:gets", params, filter)

	if first != second {
		t.Error("expected identical queries to produce identical cache keys")
	}

	other := shared.BuildCacheKeyWithQuery("booking:gets", dto.QueryParams{Page: 2, Limit: 10}, filter)
	if first == other {
		t.Error("expected different pages to produce different cache keys")
	}
}
