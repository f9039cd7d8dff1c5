package pagination

import "testing"

func TestClampPageSizeDefaults(t *testing.T) {
	got := ClampPageSize(0, PageSizeConfig{Default: 10, Max: 50})
	if got != 10 {
		t.Fatalf("expected default 10, got %d", got)
	}
}

func TestClampPageSizeMax(t *testing.T) {
	got := ClampPageSize(500, PageSizeConfig{Default: 10, Max: 50})
	if got != 50 {
		t.Fatalf("expected max 50, got %d", got)
	}
}

func TestClampPageSizeFloor(t *testing.T) {
	got := ClampPageSize(-3, PageSizeConfig{})
	if got != 1 {
		t.Fatalf("expected floor 1, got %d", got)
	}
}

func TestPageTokenRoundTrip(t *testing.T) {
	token := EncodePageToken("trial-42")
	if token == "" {
		t.Fatal("expected non-empty token")
	}
	cursor, err := DecodePageToken(token)
	if err != nil {
		t.Fatalf("decode page token: %v", err)
	}
	if cursor != "trial-42" {
		t.Fatalf("expected cursor trial-42, got %q", cursor)
	}
}

func TestDecodePageTokenEmpty(t *testing.T) {
	cursor, err := DecodePageToken("")
	if err != nil {
		t.Fatalf("decode empty token: %v", err)
	}
	if cursor != "" {
		t.Fatalf("expected empty cursor, got %q", cursor)
	}
}

func TestDecodePageTokenInvalid(t *testing.T) {
	if _, err := DecodePageToken("%%%not-base64%%%"); err == nil {
		t.Fatal("expected error for malformed token")
	}
}
