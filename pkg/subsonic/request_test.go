package subsonic

import (
	"net/url"
	"strings"
	"testing"
)

func mustParse(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := parseBaseURL(raw)
	if err != nil {
		t.Fatalf("parseBaseURL(%q) returned error: %v", raw, err)
	}
	return u
}

func testIdentity(auth Auth) requestIdentity {
	return requestIdentity{username: "alice", auth: auth, apiVersion: "1.16.1", clientName: "sonar"}
}

func TestBuildURL_AppendsRestPath(t *testing.T) {
	tests := []struct {
		base     string
		endpoint string
		want     string
	}{
		{"https://host/music/", "getArtists", "/music/rest/getArtists"},
		{"https://host/music", "ping", "/music/rest/ping"},
		{"https://host", "ping", "/rest/ping"},
		{"https://host/", "hls.m3u8", "/rest/hls.m3u8"},
	}
	for _, tt := range tests {
		t.Run(tt.base+"+"+tt.endpoint, func(t *testing.T) {
			got := buildURL(mustParse(t, tt.base), testIdentity(Plaintext("x")), tt.endpoint, nil)
			if got.Path != tt.want {
				t.Fatalf("path = %q, want %q", got.Path, tt.want)
			}
		})
	}
}

func TestBuildURL_KeepsEscapedBasePath(t *testing.T) {
	tests := []struct {
		base string
		want string
	}{
		{"https://host/a%2Fb", "https://host/a%2Fb/rest/ping"},
		{"https://host/my%20music/", "https://host/my%20music/rest/ping"},
	}
	for _, tt := range tests {
		t.Run(tt.base, func(t *testing.T) {
			got := buildURL(mustParse(t, tt.base), testIdentity(Plaintext("x")), "ping", nil)
			got.RawQuery = ""
			if got.String() != tt.want {
				t.Fatalf("url = %q, want %q", got.String(), tt.want)
			}
		})
	}
}

func TestBuildURL_QueryOrder(t *testing.T) {
	auth := Token("sesame").withSalt(func() string { return "c19b2d" })
	got := buildURL(mustParse(t, "https://host"), testIdentity(auth), "getAlbum",
		[]Param{P("id", "42"), P("songId", "a"), P("songId", "b")})

	want := "u=alice&t=26719a1196d2a940705a59634eb18eab&s=c19b2d&v=1.16.1&c=sonar&f=json&id=42&songId=a&songId=b"
	if got.RawQuery != want {
		t.Fatalf("query = %q, want %q", got.RawQuery, want)
	}
}

func TestBuildURL_PlaintextAndEscaping(t *testing.T) {
	got := buildURL(mustParse(t, "http://host"), testIdentity(Plaintext("sesame")), "search3",
		[]Param{P("query", "AC/DC & friends")})

	if !strings.Contains(got.RawQuery, "&p=enc:736573616d65&") && !strings.Contains(got.RawQuery, "&p=enc%3A736573616d65&") {
		t.Fatalf("query %q missing plaintext credential", got.RawQuery)
	}
	values, err := url.ParseQuery(got.RawQuery)
	if err != nil {
		t.Fatalf("ParseQuery returned error: %v", err)
	}
	if q := values.Get("query"); q != "AC/DC & friends" {
		t.Fatalf("query param = %q, want round trip", q)
	}
	if p := values.Get("p"); p != "enc:736573616d65" {
		t.Fatalf("p = %q, want enc:736573616d65", p)
	}
}

func TestBuildURL_FixedSaltIsReproducible(t *testing.T) {
	auth := Token("sesame").withSalt(func() string { return "abcdef012345" })
	base := mustParse(t, "https://host/music/")
	a := buildURL(base, testIdentity(auth), "getArtists", []Param{P("musicFolderId", "1")})
	b := buildURL(base, testIdentity(auth), "getArtists", []Param{P("musicFolderId", "1")})
	if a.String() != b.String() {
		t.Fatalf("urls differ:\n%s\n%s", a, b)
	}
	if base.Path != "/music/" || base.RawQuery != "" {
		t.Fatalf("base url mutated: %s", base)
	}
}

func TestParseBaseURL_Normalizes(t *testing.T) {
	u := mustParse(t, "  music.example.com:4533/navidrome?x=1#frag ")
	if u.Scheme != "http" {
		t.Fatalf("scheme = %q, want http", u.Scheme)
	}
	if u.Path != "/navidrome" {
		t.Fatalf("path = %q, want /navidrome", u.Path)
	}
	if u.RawQuery != "" || u.Fragment != "" {
		t.Fatalf("url not normalized: %q", u.String())
	}

	for _, bad := range []string{"", "ftp://host", "http://"} {
		if _, err := parseBaseURL(bad); err == nil {
			t.Fatalf("parseBaseURL(%q) expected error", bad)
		}
	}
}

func TestRedactedURL_HidesCredentials(t *testing.T) {
	auth := Token("sesame").withSalt(func() string { return "c19b2d" })
	u := buildURL(mustParse(t, "https://host"), testIdentity(auth), "ping", nil)
	got := redactedURL(u)
	if strings.Contains(got, "c19b2d") || strings.Contains(got, "26719a11") {
		t.Fatalf("redactedURL leaked credentials: %s", got)
	}
	if !strings.Contains(got, "t=REDACTED") || !strings.Contains(got, "u=alice") {
		t.Fatalf("redactedURL = %s, want redacted t and visible u", got)
	}

	u = buildURL(mustParse(t, "https://host"), testIdentity(auth), "changePassword",
		[]Param{P("username", "bob"), P("password", encodePassword("hunter2"))})
	got = redactedURL(u)
	if strings.Contains(got, encodePassword("hunter2")[4:]) || !strings.Contains(got, "password=REDACTED") {
		t.Fatalf("redactedURL = %s, want password redacted", got)
	}
}
