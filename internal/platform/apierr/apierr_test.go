package apierr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestConstructorsCarryStatusAndCode(t *testing.T) {
	cases := []struct {
		err    *Error
		status int
		code   string
	}{
		{InvalidInput("Price must be positive."), http.StatusBadRequest, CodeInvalidInput},
		{NotFound("Invalid customer ID."), http.StatusNotFound, CodeNotFound},
		{Conflict("Email %s already exists.", "a@x.com"), http.StatusConflict, CodeConflict},
		{Internal(errors.New("connection refused")), http.StatusInternalServerError, CodeInternal},
	}
	for _, tc := range cases {
		if tc.err.Status != tc.status {
			t.Fatalf("status: want=%d got=%d", tc.status, tc.err.Status)
		}
		if tc.err.Code != tc.code {
			t.Fatalf("code: want=%q got=%q", tc.code, tc.err.Code)
		}
	}
}

func TestConflictFormatsMessage(t *testing.T) {
	err := Conflict("Email %s already exists.", "a@x.com")
	if err.Error() != "Email a@x.com already exists." {
		t.Fatalf("message: got=%q", err.Error())
	}
}

func TestFromPassesThroughTypedErrors(t *testing.T) {
	orig := NotFound("Invalid customer ID.")
	wrapped := fmt.Errorf("create order: %w", orig)
	got := From(wrapped)
	if got != orig {
		t.Fatalf("From: want original error, got=%v", got)
	}
}

func TestFromWrapsUnknownAsInternal(t *testing.T) {
	got := From(errors.New("driver: bad connection"))
	if got.Code != CodeInternal {
		t.Fatalf("code: want=%q got=%q", CodeInternal, got.Code)
	}
	if got.Status != http.StatusInternalServerError {
		t.Fatalf("status: want=500 got=%d", got.Status)
	}
}

func TestIsCode(t *testing.T) {
	err := fmt.Errorf("bulk import: %w", Conflict("Email a@x.com already exists."))
	if !IsCode(err, CodeConflict) {
		t.Fatalf("IsCode: want=true got=false")
	}
	if IsCode(err, CodeNotFound) {
		t.Fatalf("IsCode(not_found): want=false got=true")
	}
}
