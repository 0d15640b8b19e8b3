package employee

import (
	"regexp"
	"testing"
	"time"
)

func TestNewEmployeeID_Format(t *testing.T) {
	now := time.UnixMilli(1700000123456)
	pattern := regexp.MustCompile(`^EMP123456[A-Z0-9]{3}$`)

	for i := 0; i < 100; i++ {
		id := NewEmployeeID(now)
		if !pattern.MatchString(id) {
			t.Fatalf("unexpected id %q", id)
		}
	}
}

func TestNewEmployeeID_UsesMillisecondTail(t *testing.T) {
	a := NewEmployeeID(time.UnixMilli(1700000000001))
	b := NewEmployeeID(time.UnixMilli(1700000000002))

	if a[:9] == b[:9] {
		t.Fatalf("expected different timestamp tails, got %q and %q", a, b)
	}
}
