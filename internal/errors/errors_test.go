package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want string
	}{
		{
			name: "error without cause",
			err: &AppError{
				Code:    ErrCodeNotFound,
				Message: "resource not found",
			},
			want: "resource not found",
		},
		{
			name: "error with cause",
			err: &AppError{
				Code:    ErrCodeInternal,
				Message: "failed to process",
				Cause:   errors.New("underlying error"),
			},
			want: "failed to process: underlying error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("AppError.Error() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := &AppError{
		Code:    ErrCodeInternal,
		Message: "wrapped error",
		Cause:   cause,
	}

	if unwrapped := err.Unwrap(); !errors.Is(unwrapped, cause) {
		t.Errorf("AppError.Unwrap() = %v, want %v", unwrapped, cause)
	}
}

func TestAuthConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want ErrorCode
	}{
		{name: "login fail", err: LoginFail(), want: ErrCodeLoginFail},
		{name: "no token", err: NoToken(), want: ErrCodeNoToken},
		{name: "malformed token", err: MalformedToken(nil), want: ErrCodeMalformedToken},
		{name: "ctx not in request state", err: CtxNotInRequestState(), want: ErrCodeCtxNotInRequestState},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.want {
				t.Errorf("Code = %v, want %v", tt.err.Code, tt.want)
			}
		})
	}
}

func TestResourceNotFound(t *testing.T) {
	err := ResourceNotFound(42)
	if !IsNotFound(err) {
		t.Fatalf("ResourceNotFound() should be NotFound, got %v", err.Code)
	}
	if err.ID == nil || *err.ID != 42 {
		t.Errorf("ResourceNotFound().ID = %v, want 42", err.ID)
	}
}

func TestValidationField(t *testing.T) {
	err := ValidationField("title", "title is required")
	if err.Code != ErrCodeValidation {
		t.Errorf("ValidationField().Code = %v, want %v", err.Code, ErrCodeValidation)
	}
	if GetField(err) != "title" {
		t.Errorf("GetField() = %v, want %v", GetField(err), "title")
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(cause, ErrCodeInternal, "wrapped error")

	if err.Code != ErrCodeInternal {
		t.Errorf("Wrap().Code = %v, want %v", err.Code, ErrCodeInternal)
	}
	if !errors.Is(err, cause) {
		t.Errorf("Wrap() should unwrap to cause")
	}
	if Wrap(nil, ErrCodeInternal, "nothing") != nil {
		t.Errorf("Wrap(nil) should be nil")
	}
}

func TestWrapf(t *testing.T) {
	err := Wrapf(errors.New("boom"), ErrCodeTimeout, "call %s", "gemini")
	if err.Message != "call gemini" {
		t.Errorf("Wrapf().Message = %v, want %v", err.Message, "call gemini")
	}
}

func TestAs(t *testing.T) {
	t.Run("finds wrapped app error", func(t *testing.T) {
		inner := NoToken()
		got := As(fmt.Errorf("gate: %w", inner))
		if got != inner {
			t.Errorf("As() = %v, want %v", got, inner)
		}
	})

	t.Run("plain error becomes internal", func(t *testing.T) {
		got := As(errors.New("plain"))
		if got.Code != ErrCodeInternal {
			t.Errorf("As().Code = %v, want %v", got.Code, ErrCodeInternal)
		}
	})

	t.Run("nil stays nil", func(t *testing.T) {
		if As(nil) != nil {
			t.Errorf("As(nil) should be nil")
		}
	})
}

func TestIsAuthFailure(t *testing.T) {
	if !IsAuthFailure(NoToken()) || !IsAuthFailure(MalformedToken(nil)) {
		t.Errorf("token failures should be auth failures")
	}
	if IsAuthFailure(CtxNotInRequestState()) {
		t.Errorf("wiring error should not be an auth failure")
	}
	if GetCode(errors.New("plain")) != "" {
		t.Errorf("GetCode() of plain error should be empty")
	}
}
