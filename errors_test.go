package journal

import (
	"errors"
	"testing"
)

func TestIsNotFound(t *testing.T) {
	err := errors.New("some error")
	if IsNotFound(err) {
		t.Log("custom error type NotFound is wrongly recognized")
		t.Fail()
	}

	err = asNotFound(err)
	if !IsNotFound(err) {
		t.Log("custom error type NotFound is not recognized")
		t.Fail()
	}
}

func TestIsValidationError(t *testing.T) {
	err := NewValidationError("tripDays is %d", -1)
	if !IsValidationError(err) {
		t.Errorf("validation error not recognized")
	}
	if err.Error() != "tripDays is -1" {
		t.Errorf("unexpected message %q", err.Error())
	}

	if IsValidationError(errors.New("other")) {
		t.Errorf("plain error recognized as validation error")
	}
}

func TestWrap(t *testing.T) {
	base := errors.New("disk full")
	err := Wrap(base, "write journal %q", "emma.pdf")
	if err.Error() != `write journal "emma.pdf": disk full` {
		t.Errorf("unexpected message %q", err.Error())
	}
	if !errors.Is(err, base) {
		t.Errorf("wrapped error does not unwrap to its cause")
	}
}

func TestWrappedErrorKinds(t *testing.T) {
	err := Wrap(NewNotFound("no job %q", "abc"), "download")
	if !IsNotFound(err) {
		t.Errorf("wrapped NotFound not recognized")
	}
	if IsValidationError(err) {
		t.Errorf("wrapped NotFound recognized as validation error")
	}

	err = Wrap(Wrap(NewValidationError("missing name"), "trip"), "create")
	if !IsValidationError(err) {
		t.Errorf("wrapped validation error not recognized")
	}
	if IsNotFound(nil) || IsValidationError(nil) {
		t.Errorf("nil recognized as typed error")
	}
}
