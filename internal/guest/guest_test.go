package guest

import (
	"errors"
	"testing"
)

func TestNormalizeTrimsFields(t *testing.T) {
	got, err := Normalize(Guest{Name: "  Ada Lovelace ", Phone: " +1 (555) 123-4567  "})
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if got.Name != "Ada Lovelace" {
		t.Fatalf("Name = %q, want %q", got.Name, "Ada Lovelace")
	}
	if got.Phone != "+1 (555) 123-4567" {
		t.Fatalf("Phone = %q, want %q", got.Phone, "+1 (555) 123-4567")
	}
}

func TestNormalizeRejectsEmptyName(t *testing.T) {
	_, err := Normalize(Guest{Name: "   ", Phone: "15551234567"})
	if !errors.Is(err, ErrEmptyName) {
		t.Fatalf("expected ErrEmptyName, got %v", err)
	}
}

func TestNormalizeRejectsEmptyPhone(t *testing.T) {
	_, err := Normalize(Guest{Name: "Ada Lovelace", Phone: ""})
	if !errors.Is(err, ErrEmptyPhone) {
		t.Fatalf("expected ErrEmptyPhone, got %v", err)
	}
}

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"+1 (555) 123-4567", "15551234567"},
		{"15551234567", "15551234567"},
		{"+20 100-555-0199", "201005550199"},
		{"555.123.4567", "555.123.4567"},
		{"ext 42", "ext42"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := NormalizePhone(tc.in); got != tc.want {
			t.Fatalf("NormalizePhone(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizePhoneIdempotent(t *testing.T) {
	once := NormalizePhone("+1 (555) 123-4567")
	if got := NormalizePhone(once); got != once {
		t.Fatalf("NormalizePhone(%q) = %q, want unchanged", once, got)
	}
}

func TestChatURL(t *testing.T) {
	got := ChatURL("+1 (555) 123-4567")
	want := "https://wa.me/15551234567"
	if got != want {
		t.Fatalf("ChatURL = %q, want %q", got, want)
	}
}

func TestDialURL(t *testing.T) {
	got := DialURL("+1 (555) 123-4567")
	want := "tel:15551234567"
	if got != want {
		t.Fatalf("DialURL = %q, want %q", got, want)
	}
}
