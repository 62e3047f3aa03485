package application

import (
	"errors"
	"strings"
	"testing"

	"pagesync/internal/domain"
)

func TestValidateRequired(t *testing.T) {
	tests := []struct {
		name      string
		fieldName string
		value     string
		wantErr   bool
	}{
		{
			name:      "valid value",
			fieldName: "title",
			value:     "model_a.txt",
			wantErr:   false,
		},
		{
			name:      "empty string",
			fieldName: "title",
			value:     "",
			wantErr:   true,
		},
		{
			name:      "whitespace only",
			fieldName: "title",
			value:     "   ",
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequired(tt.fieldName, tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRequired() error = %v, wantErr %v", err, tt.wantErr)
			}

			if err != nil {
				var valErr *ValidationError
				if !errors.As(err, &valErr) {
					t.Fatalf("expected ValidationError, got %T", err)
				}
				if valErr.Field != tt.fieldName {
					t.Errorf("expected field %s, got %s", tt.fieldName, valErr.Field)
				}
			}
		})
	}
}

func TestValidatePageID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
		errMsg  string
	}{
		{"dashed", "3132484b-84ae-81b8-a2cb-deff086bb4d0", false, ""},
		{"undashed", "3132484b84ae81b8a2cbdeff086bb4d0", false, ""},
		{"empty", "", true, "parent ID is required"},
		{"garbage", "TASK_1", true, "invalid parent ID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePageID("parentID", tt.id)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error containing %q, got nil", tt.errMsg)
				}
				if !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("expected error containing %q, got %q", tt.errMsg, err.Error())
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateSourceFiles(t *testing.T) {
	tests := []struct {
		name   string
		files  []domain.SourceFile
		errMsg string
	}{
		{"valid", []domain.SourceFile{{Title: "a", Path: "a"}, {Title: "b", Path: "b"}}, ""},
		{"none", nil, "at least one source file"},
		{"missing title", []domain.SourceFile{{Path: "a"}}, "title is required"},
		{"missing path", []domain.SourceFile{{Title: "a"}}, "has no path"},
		{"duplicate", []domain.SourceFile{{Title: "a", Path: "x"}, {Title: "a", Path: "y"}}, "duplicate title"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSourceFiles(tt.files)
			if tt.errMsg == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("expected error containing %q, got %v", tt.errMsg, err)
			}
		})
	}
}

func TestValidateParents(t *testing.T) {
	tests := []struct {
		name    string
		parents []domain.ParentPageRef
		errMsg  string
	}{
		{"uuid", []domain.ParentPageRef{{ID: "3132484b-84ae-81b8-a2cb-deff086bb4d0"}}, ""},
		{"opaque id", []domain.ParentPageRef{{ID: "parent-opaque"}}, ""},
		{"none", nil, "at least one parent page"},
		{"blank id", []domain.ParentPageRef{{ID: "  ", Name: "TASK_1"}}, "parent ID is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateParents(tt.parents)
			if tt.errMsg == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("expected error containing %q, got %v", tt.errMsg, err)
			}
		})
	}
}

func TestErrorKinds(t *testing.T) {
	cause := errors.New("connection reset")

	svcErr := &ServiceCallError{Op: "create", ParentID: "p", Err: cause}
	if !errors.Is(svcErr, ErrServiceCall) || !errors.Is(svcErr, cause) {
		t.Error("ServiceCallError should match ErrServiceCall and its cause")
	}

	inErr := &InputError{Path: "model_a.txt", Err: cause}
	if !errors.Is(inErr, ErrUnreadableSource) || !errors.Is(inErr, cause) {
		t.Error("InputError should match ErrUnreadableSource and its cause")
	}

	cfgErr := &ConfigurationError{Setting: "NOTION_API_KEY", Reason: "is not set"}
	if !errors.Is(cfgErr, ErrConfiguration) {
		t.Error("ConfigurationError should match ErrConfiguration")
	}
}
