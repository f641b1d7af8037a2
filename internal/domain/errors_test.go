package domain

import (
	"errors"
	"testing"
)

func TestValidationError_SingleField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("category", "unknown category")

	if got := err.Error(); got != "validation: category: unknown category" {
		t.Fatalf("unexpected Error(): %q", got)
	}
	if !errors.Is(err, ErrValidation) {
		t.Fatal("errors.Is(err, ErrValidation) = false")
	}
}

func TestValidationError_MultipleFields(t *testing.T) {
	t.Parallel()

	err := &ValidationError{Errors: []FieldError{
		{Field: "category", Message: "required"},
		{Field: "query", Message: "required"},
	}}

	if got := err.Error(); got != "validation: 2 errors" {
		t.Fatalf("unexpected Error(): %q", got)
	}
	if !errors.Is(err, ErrValidation) {
		t.Fatal("errors.Is(err, ErrValidation) = false")
	}
}

func TestValidationError_Reason(t *testing.T) {
	t.Parallel()

	err := NewReasonError("query", ReasonEmpty, "Please enter a value")
	if err.Reason() != ReasonEmpty {
		t.Fatalf("Reason() = %q, want %q", err.Reason(), ReasonEmpty)
	}
	if (&ValidationError{}).Reason() != "" {
		t.Fatal("empty ValidationError should have no reason")
	}
}

func TestLookupError_Unwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("dial tcp: connection refused")

	tests := []struct {
		name         string
		err          *LookupError
		wantNotFound bool
		wantMessage  string
	}{
		{
			name:         "http",
			err:          &LookupError{Kind: LookupHTTP, Category: CategoryMobile, Status: 500},
			wantNotFound: true,
			wantMessage:  NotFoundMessage,
		},
		{
			name:         "empty",
			err:          &LookupError{Kind: LookupEmpty, Category: CategoryVehicle},
			wantNotFound: true,
			wantMessage:  NotFoundMessage,
		},
		{
			name:         "transport",
			err:          &LookupError{Kind: LookupTransport, Category: CategoryBankCode, Err: cause},
			wantNotFound: false,
			wantMessage:  cause.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := errors.Is(tt.err, ErrNotFound); got != tt.wantNotFound {
				t.Errorf("errors.Is(ErrNotFound) = %v, want %v", got, tt.wantNotFound)
			}
			if got := tt.err.UserMessage(); got != tt.wantMessage {
				t.Errorf("UserMessage() = %q, want %q", got, tt.wantMessage)
			}
		})
	}

	transport := &LookupError{Kind: LookupTransport, Category: CategoryBankCode, Err: cause}
	if !errors.Is(transport, cause) {
		t.Error("transport error should unwrap to its cause")
	}
}

func TestLookupError_ErrorText(t *testing.T) {
	t.Parallel()

	err := &LookupError{Kind: LookupHTTP, Category: CategoryMobile, Status: 503}
	if got := err.Error(); got != "lookup mobile: request failed with status: 503" {
		t.Fatalf("Error() = %q", got)
	}
}

func TestLookupError_ChainedMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  *LookupError
		want string
	}{
		{
			err:  &LookupError{Kind: LookupHTTP, Category: CategoryNationalID, Status: 502},
			want: "Failed to fetch Aadhaar details: Aadhaar API request failed with status: 502",
		},
		{
			err:  &LookupError{Kind: LookupEmpty, Category: CategoryNationalID},
			want: "Failed to fetch Aadhaar details: No Aadhaar data found for the provided ID",
		},
		{
			err:  &LookupError{Kind: LookupTransport, Category: CategoryNationalID, Err: errors.New("timeout")},
			want: "Failed to fetch Aadhaar details: timeout",
		},
	}

	for _, tt := range tests {
		if got := tt.err.ChainedMessage(); got != tt.want {
			t.Errorf("ChainedMessage() = %q, want %q", got, tt.want)
		}
	}
}

func TestValidationError_UserMessage(t *testing.T) {
	t.Parallel()

	if got := NewValidationError("query", "Please enter a value").UserMessage(); got != "Please enter a value" {
		t.Errorf("UserMessage() = %q", got)
	}

	multi := &ValidationError{Errors: []FieldError{{Field: "a", Message: "x"}, {Field: "b", Message: "y"}}}
	if got := multi.UserMessage(); got != "validation: 2 errors" {
		t.Errorf("UserMessage() = %q", got)
	}
}
