package handlers

import "testing"

func TestParsePaginationParamsDefaults(t *testing.T) {
	page, limit, err := parsePaginationParams("", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page != 1 || limit != 20 {
		t.Fatalf("expected defaults 1/20, got %d/%d", page, limit)
	}
}

func TestParsePaginationParamsCapsLimit(t *testing.T) {
	_, limit, err := parsePaginationParams("", "100000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if limit != maxPageLimit {
		t.Fatalf("expected limit capped at %d, got %d", maxPageLimit, limit)
	}

	_, limit, err = parsePaginationParams("", "100")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if limit != 100 {
		t.Fatalf("expected limit 100, got %d", limit)
	}
}

func TestParsePaginationParamsInvalid(t *testing.T) {
	if _, _, err := parsePaginationParams("0", ""); err == nil {
		t.Fatal("expected error for page 0")
	}
	if _, _, err := parsePaginationParams("abc", ""); err == nil {
		t.Fatal("expected error for non-numeric page")
	}
	if _, _, err := parsePaginationParams("", "-5"); err == nil {
		t.Fatal("expected error for negative limit")
	}
}
