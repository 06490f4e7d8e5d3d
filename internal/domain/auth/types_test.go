package auth

import (
	"errors"
	"testing"

	apperrors "github.com/target/ticketdesk-api/internal/errors"
)

func TestCtx_UserID(t *testing.T) {
	c := NewCtx(7)
	if c.UserID() != 7 {
		t.Fatalf("expected user id 7, got %d", c.UserID())
	}
}

func TestOutcome_Resolved(t *testing.T) {
	o := Resolved(NewCtx(3))
	if !o.OK() || o.Err() != nil {
		t.Fatalf("expected resolved outcome")
	}
	c, err := o.Ctx()
	if err != nil || c.UserID() != 3 {
		t.Fatalf("unexpected ctx %+v err %v", c, err)
	}
}

func TestOutcome_Failed(t *testing.T) {
	o := Failed(apperrors.NoToken())
	if o.OK() {
		t.Fatalf("did not expect resolved outcome")
	}
	_, err := o.Ctx()
	if apperrors.GetCode(err) != apperrors.ErrCodeNoToken {
		t.Fatalf("expected no token, got %v", err)
	}
}

func TestOutcome_FailedNil(t *testing.T) {
	o := Failed(nil)
	_, err := o.Ctx()
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) || appErr.Code != apperrors.ErrCodeInternal {
		t.Fatalf("expected internal error, got %v", err)
	}
}
