package shared_test

import (
	"testing"

	"comfort/shared"
	"comfort/shared/constant"
)

func TestUpdateFields(t *testing.T) {
	type updateRequest struct {
		Name    string `db:"name"`
		Email   string `db:"email"`
		Message string `db:"message"`
		Ignored string
	}

	req := updateRequest{
		Name:    "John Smith",
		Email:   "john@example.com",
		Message: "",
		Ignored: "dropped",
	}

	fields := shared.UpdateFields(req, "admin")

	if fields["name"] != "John Smith" {
		t.Errorf("expected name to be set, got %v", fields["name"])
	}

	// Full update: zero values overwrite too.
	if msg, ok := fields["message"]; !ok || msg != "" {
		t.Errorf("expected empty message to be included, got %v (present=%v)", msg, ok)
	}

	if _, ok := fields["Ignored"]; ok {
		t.Error("expected field without db tag to be skipped")
	}

	if fields[constant.FieldUpdatedBy] != "admin" {
		t.Errorf("expected updated_by stamp, got %v", fields[constant.FieldUpdatedBy])
	}

	if _, ok := fields[constant.FieldUpdatedAt]; !ok {
		t.Error("expected updated_at stamp")
	}
}

func TestFilterByID(t *testing.T) {
	filter := shared.FilterByID("some-id", "id", "bookings")

	where, args := filter.GetWhereClause()
	if where != "(bookings.id = :id)" {
		t.Errorf("unexpected where clause: %q", where)
	}

	if args["id"] != "some-id" {
		t.Errorf("unexpected args: %v", args)
	}
}

func TestProjectFields(t *testing.T) {
	type item struct {
		ID     string  `json:"id"`
		Name   string  `json:"guestName"`
		Email  string  `json:"guestEmail"`
		Price  float64 `json:"totalPrice"`
		Status string  `json:"status,omitempty"`
	}

	payload := []item{
		{ID: "a", Name: "John", Email: "john@example.com", Price: 120},
		{ID: "b", Name: "Emma", Email: "emma@example.com", Price: 250, Status: "confirmed"},
	}

	projected, err := shared.ProjectFields(payload, []string{"guestName", "totalPrice"})
	if err != nil {
		t.Fatalf("ProjectFields returned error: %v", err)
	}

	if len(projected) != 2 {
		t.Fatalf("expected 2 items, got %d", len(projected))
	}

	for _, item := range projected {
		if _, ok := item["id"]; !ok {
			t.Error("expected id to always be present")
		}

		if _, ok := item["guestName"]; !ok {
			t.Error("expected requested field guestName")
		}

		if _, ok := item["guestEmail"]; ok {
			t.Error("expected unrequested field guestEmail to be dropped")
		}

		if _, ok := item["status"]; ok {
			t.Error("expected unrequested field status to be dropped")
		}
	}

	t.Run("no fields keeps id only", func(t *testing.T) {
		projected, err := shared.ProjectFields(payload, nil)
		if err != nil {
			t.Fatalf("ProjectFields returned error: %v", err)
		}

		for _, item := range projected {
			if len(item) != 1 {
				t.Errorf("expected id-only item, got %v", item)
			}

			if _, ok := item["id"]; !ok {
				t.Error("expected id to always be present")
			}
		}
	})
}
