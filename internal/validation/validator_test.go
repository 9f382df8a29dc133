// Reelrank - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelrank

package validation

import (
	"strings"
	"testing"
)

func TestGetValidator_Singleton(t *testing.T) {
	v1 := GetValidator()
	v2 := GetValidator()

	if v1 == nil {
		t.Fatal("GetValidator() returned nil")
	}
	if v1 != v2 {
		t.Error("GetValidator() should return the same singleton instance")
	}
}

// recommendParams mirrors the query-parameter struct validated by the
// recommendation handler.
type recommendParams struct {
	Title         string  `validate:"required,min=1"`
	K             int     `validate:"omitempty,gte=1,lte=50"`
	MinSimilarity float64 `validate:"omitempty,gte=0.1,lte=1.0"`
}

func TestValidateStruct_Valid(t *testing.T) {
	tests := []struct {
		name  string
		input recommendParams
	}{
		{
			name:  "all fields set",
			input: recommendParams{Title: "The Matrix", K: 10, MinSimilarity: 0.3},
		},
		{
			name:  "optional fields at zero",
			input: recommendParams{Title: "Heat"},
		},
		{
			name:  "bounds inclusive",
			input: recommendParams{Title: "M", K: 50, MinSimilarity: 1.0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateStruct(&tt.input); err != nil {
				t.Errorf("ValidateStruct() returned unexpected error: %v", err)
			}
		})
	}
}

func TestValidateStruct_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		input     recommendParams
		wantField string
		wantTag   string
		wantMsg   string
	}{
		{
			name:      "missing title",
			input:     recommendParams{K: 10},
			wantField: "Title",
			wantTag:   "required",
			wantMsg:   "Title is required",
		},
		{
			name:      "k too large",
			input:     recommendParams{Title: "Heat", K: 51},
			wantField: "K",
			wantTag:   "lte",
			wantMsg:   "K must be less than or equal to 50",
		},
		{
			name:      "similarity below floor",
			input:     recommendParams{Title: "Heat", MinSimilarity: 0.05},
			wantField: "MinSimilarity",
			wantTag:   "gte",
			wantMsg:   "MinSimilarity must be greater than or equal to 0.1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verr := ValidateStruct(&tt.input)
			if verr == nil {
				t.Fatal("ValidateStruct() = nil, want error")
			}

			errs := verr.Errors()
			if len(errs) != 1 {
				t.Fatalf("len(Errors()) = %d, want 1: %v", len(errs), verr)
			}
			if errs[0].Field() != tt.wantField {
				t.Errorf("Field() = %q, want %q", errs[0].Field(), tt.wantField)
			}
			if errs[0].Tag() != tt.wantTag {
				t.Errorf("Tag() = %q, want %q", errs[0].Tag(), tt.wantTag)
			}
			if errs[0].Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", errs[0].Error(), tt.wantMsg)
			}
		})
	}
}

func TestValidateStruct_MultipleErrors(t *testing.T) {
	input := recommendParams{Title: "", K: 500, MinSimilarity: 2.0}

	verr := ValidateStruct(&input)
	if verr == nil {
		t.Fatal("ValidateStruct() = nil, want error")
	}
	if len(verr.Errors()) != 3 {
		t.Fatalf("len(Errors()) = %d, want 3: %v", len(verr.Errors()), verr)
	}

	// Combined message joins per-field messages
	msg := verr.Error()
	for _, want := range []string{"Title is required", "K must be less than or equal to 50"} {
		if !strings.Contains(msg, want) {
			t.Errorf("Error() = %q, missing %q", msg, want)
		}
	}
}

func TestToAPIError(t *testing.T) {
	t.Run("single error carries field details", func(t *testing.T) {
		verr := ValidateStruct(&recommendParams{K: 10})
		if verr == nil {
			t.Fatal("ValidateStruct() = nil, want error")
		}

		apiErr := verr.ToAPIError()
		if apiErr.Code != "VALIDATION_ERROR" {
			t.Errorf("Code = %q, want VALIDATION_ERROR", apiErr.Code)
		}
		if apiErr.Message != "Title is required" {
			t.Errorf("Message = %q, want %q", apiErr.Message, "Title is required")
		}
		if apiErr.Details["field"] != "Title" {
			t.Errorf("Details[field] = %v, want Title", apiErr.Details["field"])
		}
	})

	t.Run("multiple errors list all fields", func(t *testing.T) {
		verr := ValidateStruct(&recommendParams{Title: "", K: 500})
		if verr == nil {
			t.Fatal("ValidateStruct() = nil, want error")
		}

		apiErr := verr.ToAPIError()
		if apiErr.Code != "VALIDATION_ERROR" {
			t.Errorf("Code = %q, want VALIDATION_ERROR", apiErr.Code)
		}
		fields, ok := apiErr.Details["fields"].([]map[string]interface{})
		if !ok {
			t.Fatalf("Details[fields] has type %T, want []map[string]interface{}", apiErr.Details["fields"])
		}
		if len(fields) != 2 {
			t.Errorf("len(fields) = %d, want 2", len(fields))
		}
	})
}

func TestTranslateMinMax_StringLengths(t *testing.T) {
	type searchParams struct {
		Query string `validate:"min=2,max=200"`
	}

	verr := ValidateStruct(&searchParams{Query: "a"})
	if verr == nil {
		t.Fatal("ValidateStruct() = nil, want error")
	}
	want := "Query must be at least 2 characters"
	if got := verr.Errors()[0].Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
