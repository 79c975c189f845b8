package branding

import "testing"

func TestAppName(t *testing.T) {
	if AppName == "" {
		t.Fatal("expected AppName to be non-empty")
	}
	if AppName != "Guest Pages" {
		t.Fatalf("AppName = %q, want %q", AppName, "Guest Pages")
	}
}

func TestMessagingDomain(t *testing.T) {
	if MessagingDomain != "wa.me" {
		t.Fatalf("MessagingDomain = %q, want %q", MessagingDomain, "wa.me")
	}
}

func TestBarcodeForeground(t *testing.T) {
	if BarcodeForeground.R != 0x12 || BarcodeForeground.G != 0x8C || BarcodeForeground.B != 0x7E {
		t.Fatalf("BarcodeForeground = %#v, want #128C7E", BarcodeForeground)
	}
	if BarcodeForeground.A != 0xFF {
		t.Fatal("expected BarcodeForeground to be fully opaque")
	}
}
