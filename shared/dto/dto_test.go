package dto_test

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"comfort/shared/constant"
	"comfort/shared/dto"
	"comfort/shared/model"
)

var bookingColumns = map[string]string{
	"roomName":    "room_name",
	"guestEmail":  "guest_email",
	"checkInDate": "check_in_date",
	"totalPrice":  "total_price",
	"status":      "status",
	"created_at":  "created_at",
}

func newRequest(t *testing.T, params map[string]string) *http.Request {
	t.Helper()

	values := url.Values{}
	for key, value := range params {
		values.Set(key, value)
	}

	req, err := http.NewRequest(http.MethodGet, "/api/bookings?"+values.Encode(), nil)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}

	return req
}

func TestListParams_FromRequest(t *testing.T) {
	tests := []struct {
		name        string
		queryParams map[string]string
		expected    dto.ListParams
	}{
		{
			name:        "no parameters falls back to default sort descending",
			queryParams: map[string]string{},
			expected: dto.ListParams{
				SortBy:  "check_in_date",
				SortDir: dto.SortDirDesc,
			},
		},
		{
			name: "explicit sortBy defaults to ascending",
			queryParams: map[string]string{
				"sortBy": "totalPrice",
			},
			expected: dto.ListParams{
				SortBy:  "total_price",
				SortDir: dto.SortDirAsc,
			},
		},
		{
			name: "sortOrder desc",
			queryParams: map[string]string{
				"sortBy":    "totalPrice",
				"sortOrder": "desc",
			},
			expected: dto.ListParams{
				SortBy:  "total_price",
				SortDir: dto.SortDirDesc,
			},
		},
		{
			name: "sortOrder other than desc means ascending",
			queryParams: map[string]string{
				"sortBy":    "totalPrice",
				"sortOrder": "descending",
			},
			expected: dto.ListParams{
				SortBy:  "total_price",
				SortDir: dto.SortDirAsc,
			},
		},
		{
			name: "unknown sortBy falls back to default",
			queryParams: map[string]string{
				"sortBy":    "not_a_field",
				"sortOrder": "desc",
			},
			expected: dto.ListParams{
				SortBy:  "check_in_date",
				SortDir: dto.SortDirDesc,
			},
		},
		{
			name: "fields are split, trimmed and mapped",
			queryParams: map[string]string{
				"fields": " guestEmail , totalPrice ,, unknownField ",
			},
			expected: dto.ListParams{
				SortBy:          "check_in_date",
				SortDir:         dto.SortDirDesc,
				Fields:          []string{"guest_email", "total_price"},
				RequestedFields: []string{"guestEmail", "totalPrice"},
				Projected:       true,
			},
		},
		{
			name: "fields with only unknown tokens still marks a projection",
			queryParams: map[string]string{
				"fields": "unknownField,alsoUnknown",
			},
			expected: dto.ListParams{
				SortBy:    "check_in_date",
				SortDir:   dto.SortDirDesc,
				Projected: true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := dto.ListParams{}
			params.FromRequest(newRequest(t, tt.queryParams), bookingColumns, "check_in_date")

			if params.SortBy != tt.expected.SortBy {
				t.Errorf("expected SortBy %q, got %q", tt.expected.SortBy, params.SortBy)
			}

			if params.SortDir != tt.expected.SortDir {
				t.Errorf("expected SortDir %q, got %q", tt.expected.SortDir, params.SortDir)
			}

			if params.Projected != tt.expected.Projected {
				t.Errorf("expected Projected %v, got %v", tt.expected.Projected, params.Projected)
			}

			if len(params.Fields) != len(tt.expected.Fields) {
				t.Fatalf("expected %d fields, got %d (%v)", len(tt.expected.Fields), len(params.Fields), params.Fields)
			}

			for i, field := range tt.expected.Fields {
				if params.Fields[i] != field {
					t.Errorf("expected field %q at %d, got %q", field, i, params.Fields[i])
				}
			}

			for i, field := range tt.expected.RequestedFields {
				if params.RequestedFields[i] != field {
					t.Errorf("expected requested field %q at %d, got %q", field, i, params.RequestedFields[i])
				}
			}
		})
	}
}

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	updatedAt := time.Date(2025, 1, 2, 12, 0, 0, 0, time.UTC)

	modelMetadata := model.Metadata{
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
		CreatedBy: "admin",
		UpdatedBy: "manager",
	}

	metadata := &dto.Metadata{}
	metadata.FromModel(modelMetadata)

	if metadata.CreatedAt == "" {
		t.Error("expected CreatedAt to be formatted")
	}

	if metadata.UpdatedAt == "" {
		t.Error("expected UpdatedAt to be formatted")
	}

	if metadata.CreatedBy != "admin" {
		t.Errorf("expected CreatedBy to be 'admin', got %s", metadata.CreatedBy)
	}

	if metadata.UpdatedBy != "manager" {
		t.Errorf("expected UpdatedBy to be 'manager', got %s", metadata.UpdatedBy)
	}
}

func TestMetadata_FromModel_ZeroTimes(t *testing.T) {
	metadata := &dto.Metadata{}
	metadata.FromModel(model.Metadata{CreatedBy: "admin"})

	if metadata.CreatedAt != "" {
		t.Errorf("expected zero CreatedAt to stay empty, got %s", metadata.CreatedAt)
	}

	if metadata.UpdatedAt != "" {
		t.Errorf("expected zero UpdatedAt to stay empty, got %s", metadata.UpdatedAt)
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{
				Field:    "status",
				Operator: dto.FilterOperatorEq,
				Value:    constant.BookingStatusConfirmed,
				Table:    "bookings",
			},
			dto.Filter{
				Field:    "guest_email",
				Operator: dto.FilterOperatorEq,
				Value:    "john@example.com",
				Table:    "bookings",
			},
		},
	}

	where, args := group.GetWhereClause()

	if where != "(bookings.status = :status AND bookings.guest_email = :guest_email)" {
		t.Errorf("unexpected where clause: %q", where)
	}

	if args["status"] != constant.BookingStatusConfirmed {
		t.Errorf("unexpected status arg: %v", args["status"])
	}

	if args["guest_email"] != "john@example.com" {
		t.Errorf("unexpected guest_email arg: %v", args["guest_email"])
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
