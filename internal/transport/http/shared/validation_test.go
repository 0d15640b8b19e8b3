package shared

import (
	"testing"
	"time"
)

func TestValidatorLength(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		min, max  int
		wantIssue bool
	}{
		{"empty passes", "", 2, 150, false},
		{"too short", "a", 2, 150, true},
		{"lower bound", "ab", 2, 150, false},
		{"upper bound exceeded", string(make([]byte, 151)), 2, 150, true},
		{"runes not bytes", "Nguyễn Văn Đức", 2, 20, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewValidator()
			v.Length("field", tt.value, tt.min, tt.max)
			if v.HasIssues() != tt.wantIssue {
				t.Errorf("Length(%q, %d, %d): issues = %v, want %v", tt.value, tt.min, tt.max, v.HasIssues(), tt.wantIssue)
			}
		})
	}
}

func TestValidatorEmail(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		wantIssue bool
	}{
		{"empty passes", "", false},
		{"valid", "jane@example.com", false},
		{"no at sign", "janeexample.com", true},
		{"too long", "a@" + string(make([]byte, 120)) + ".com", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewValidator()
			v.Email("email", tt.value, 100)
			if v.HasIssues() != tt.wantIssue {
				t.Errorf("Email(%q): issues = %v, want %v", tt.value, v.HasIssues(), tt.wantIssue)
			}
		})
	}
}

func TestValidatorEnum(t *testing.T) {
	allowed := []string{"Male", "Female", "Other"}

	v := NewValidator()
	v.Enum("gender", "Female", allowed, "bad gender")
	if v.HasIssues() {
		t.Error("member value should pass")
	}

	v = NewValidator()
	v.Enum("gender", "female", allowed, "bad gender")
	if !v.HasIssues() {
		t.Error("enum comparison should be case sensitive")
	}

	v = NewValidator()
	v.Enum("gender", "", allowed, "bad gender")
	if v.HasIssues() {
		t.Error("empty value should pass, use Required for presence")
	}
}

func TestValidatorDate(t *testing.T) {
	v := NewValidator()
	parsed, ok := v.Date("date_of_birth", "1990-04-15")
	if !ok || v.HasIssues() {
		t.Fatal("plain date should parse")
	}
	if parsed.Year() != 1990 || parsed.Month() != time.April {
		t.Errorf("unexpected parse result %v", parsed)
	}

	v = NewValidator()
	if _, ok := v.Date("date_of_birth", "1990-04-15T10:30:00Z"); !ok {
		t.Error("RFC3339 should parse")
	}

	v = NewValidator()
	if _, ok := v.Date("date_of_birth", "15/04/1990"); ok || !v.HasIssues() {
		t.Error("slash format should be rejected")
	}
}

func TestValidatorIssuesSorted(t *testing.T) {
	v := NewValidator()
	v.Add("zeta", "reason")
	v.Add("alpha", "reason")
	v.Add("middle", "reason")

	issues := v.Issues()
	if len(issues) != 3 {
		t.Fatalf("got %d issues", len(issues))
	}
	if issues[0].Field != "alpha" || issues[2].Field != "zeta" {
		t.Errorf("issues not sorted by field: %v", issues)
	}
}
