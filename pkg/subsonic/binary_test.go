package subsonic

import (
	"bytes"
	"errors"
	"testing"
)

func TestIsJSONContentType(t *testing.T) {
	tests := map[string]bool{
		"application/json":                true,
		"Application/JSON; charset=UTF-8": true,
		"text/json":                       true,
		"image/jpeg":                      false,
		"audio/mpeg":                      false,
		"":                                false,
		"application/json;;bogus":         true,
	}
	for ct, want := range tests {
		if got := isJSONContentType(ct); got != want {
			t.Fatalf("isJSONContentType(%q) = %v, want %v", ct, got, want)
		}
	}
}

func TestResolveBinary_PassesMediaThrough(t *testing.T) {
	body := []byte{0xff, 0xd8, 0xff, 0xe0}
	got, err := resolveBinary("getCoverArt", "image/jpeg", body)
	if err != nil {
		t.Fatalf("resolveBinary returned error: %v", err)
	}
	if !bytes.Equal(got, body) {
		t.Fatalf("resolveBinary altered body")
	}
}

func TestResolveBinary_JSONFailureIsAPIError(t *testing.T) {
	body := []byte(`{"subsonic-response":{"status":"failed","error":{"code":70,"message":"Cover art not found"}}}`)
	_, err := resolveBinary("getCoverArt", "application/json; charset=utf-8", body)
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("resolveBinary error = %T %v, want *APIError", err, err)
	}
	if apiErr.Code != ErrNotFound {
		t.Fatalf("code = %d, want 70", apiErr.Code)
	}
}

func TestResolveBinary_JSONSuccessIsUnexpected(t *testing.T) {
	body := []byte(`{"subsonic-response":{"status":"ok","version":"1.16.1"}}`)
	_, err := resolveBinary("stream", "text/json", body)
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("resolveBinary error = %T %v, want *ParseError", err, err)
	}
	if !errors.Is(err, ErrUnexpectedJSON) {
		t.Fatalf("errors.Is(err, ErrUnexpectedJSON) = false")
	}
}

func TestResolveBinary_MalformedJSONIsParseError(t *testing.T) {
	_, err := resolveBinary("stream", "application/json", []byte(`{oops`))
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("resolveBinary error = %T %v, want *ParseError", err, err)
	}
}
