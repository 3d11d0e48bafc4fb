package middleware

import (
	"strings"
	"testing"
)

type habitBody struct {
	Name        string `json:"name" validate:"required,min=2,max=255"`
	Description string `json:"description" validate:"omitempty,max=255"`
}

func TestValidateRequestNameLength(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"rejected - one character", "a", true},
		{"accepted - two characters", "ab", false},
		{"accepted - 255 characters", strings.Repeat("a", 255), false},
		{"rejected - 256 characters", strings.Repeat("a", 256), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequest(habitBody{Name: tt.value})
			if tt.wantErr {
				if err == nil {
					t.Fatalf("[%s] expected validation error, got nil", tt.name)
				}
				if !strings.Contains(err.Error(), "between 2 and 255") {
					t.Errorf("[%s] expected length message, got %q", tt.name, err.Error())
				}
			} else if err != nil {
				t.Errorf("[%s] expected no error, got %q", tt.name, err.Error())
			}
		})
	}
}

func TestValidateRequestAggregatesAllFields(t *testing.T) {
	err := ValidateRequest(habitBody{
		Name:        "",
		Description: strings.Repeat("d", 256),
	})
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}
	if len(err.Fields) != 2 {
		t.Fatalf("expected 2 field errors, got %d: %q", len(err.Fields), err.Error())
	}
	msg := err.Error()
	if !strings.Contains(msg, "name - ") || !strings.Contains(msg, "description - ") {
		t.Errorf("expected both fields reported under their JSON names, got %q", msg)
	}
	if !strings.Contains(msg, ";") {
		t.Errorf("expected messages joined with ';', got %q", msg)
	}
}
