package codec

import (
	"errors"
	"testing"
)

func TestErrorMessagesCarryLine(t *testing.T) {
	err := Formatf(12, "expected %d columns, got %d", 9, 8)
	if err.Error() != "line 12: expected 9 columns, got 8" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
	var fe *FormatError
	if !errors.As(err, &fe) || fe.Line != 12 {
		t.Fatalf("errors.As failed: %+v", fe)
	}

	verr := Validatef(3, "start %d greater than end %d", 100, 1)
	var ve *ValidationError
	if !errors.As(verr, &ve) || ve.Line != 3 {
		t.Fatalf("errors.As failed: %+v", ve)
	}
}

func TestLine(t *testing.T) {
	if got := Line(Formatf(7, "x")); got != 7 {
		t.Fatalf("Line = %d", got)
	}
	if got := Line(Validatef(9, "x")); got != 9 {
		t.Fatalf("Line = %d", got)
	}
	if got := Line(errors.New("plain")); got != 0 {
		t.Fatalf("Line = %d for plain error", got)
	}
}
