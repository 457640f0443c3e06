package validator_test

import (
	"strings"
	"testing"

	"comfort/shared/validator"
)

func TestValidateVar_EmailAddr(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "plain address", value: "guest@example.com", wantErr: false},
		{name: "subdomain", value: "john.smith@mail.example.co.uk", wantErr: false},
		{name: "plus alias", value: "guest+hotel@example.com", wantErr: false},
		{name: "missing at sign", value: "guest.example.com", wantErr: true},
		{name: "missing domain dot", value: "guest@example", wantErr: true},
		{name: "embedded whitespace", value: "gu est@example.com", wantErr: true},
		{name: "whitespace in domain", value: "guest@exa mple.com", wantErr: true},
		{name: "double at sign", value: "guest@@example.com", wantErr: true},
		{name: "empty", value: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.value, "email_addr")
			if (err != nil) != tt.wantErr {
				t.Errorf("email_addr(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
		})
	}
}

func TestValidateVar_Phone(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "digits only", value: "4951234567", wantErr: false},
		{name: "formatted", value: "+7 (495) 123-45-67", wantErr: false},
		{name: "too short", value: "123456789", wantErr: true},
		{name: "letters", value: "phone12345", wantErr: true},
		{name: "invalid symbol", value: "495#123456", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.value, "phone")
			if (err != nil) != tt.wantErr {
				t.Errorf("phone(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
		})
	}
}

func TestValidateVar_NotBlank(t *testing.T) {
	if err := validator.ValidateVar("  hello  ", "notblank"); err != nil {
		t.Errorf("expected non-blank string to pass, got %v", err)
	}

	if err := validator.ValidateVar("   \t ", "notblank"); err == nil {
		t.Error("expected whitespace-only string to fail")
	}
}

func TestValidate_DecodesAndValidates(t *testing.T) {
	type request struct {
		Name  string `json:"name"  validate:"required,min=2,max=100"`
		Email string `json:"email" validate:"required,email_addr"`
	}

	t.Run("valid body", func(t *testing.T) {
		body := strings.NewReader(`{"name":"John Smith","email":"john@example.com"}`)

		req := request{}
		if err := validator.Validate(body, &req); err != nil {
			t.Errorf("expected valid body to pass, got %v", err)
		}
	})

	t.Run("invalid email", func(t *testing.T) {
		body := strings.NewReader(`{"name":"John Smith","email":"not-an-email"}`)

		req := request{}
		err := validator.Validate(body, &req)
		if err == nil {
			t.Fatal("expected invalid email to fail")
		}

		if !strings.Contains(err.Error(), "valid email address") {
			t.Errorf("expected email reason, got %q", err.Error())
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		body := strings.NewReader(`{"name":`)

		req := request{}
		if err := validator.Validate(body, &req); err == nil {
			t.Error("expected malformed body to fail")
		}
	})
}
