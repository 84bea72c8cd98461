package subsonic

import (
	"regexp"
	"strings"
	"sync"
	"testing"
)

var lowerHex = regexp.MustCompile(`^[0-9a-f]+$`)

func TestTokenDigest_IsLowercaseHexAndDeterministic(t *testing.T) {
	got := tokenDigest("sesame", "c19b2d")
	if len(got) != 32 || !lowerHex.MatchString(got) {
		t.Fatalf("tokenDigest = %q, want 32 lowercase hex chars", got)
	}
	if again := tokenDigest("sesame", "c19b2d"); again != got {
		t.Fatalf("tokenDigest not deterministic: %q vs %q", got, again)
	}
	// Published example from the protocol documentation.
	if want := "26719a1196d2a940705a59634eb18eab"; tokenDigest("sesame", "c19b2d") != want {
		t.Fatalf("tokenDigest = %q, want %q", got, want)
	}
}

func TestTokenSign_ProducesTokenThenSalt(t *testing.T) {
	signed := Token("sesame").Sign()
	if len(signed) != 2 {
		t.Fatalf("len(Sign()) = %d, want 2", len(signed))
	}
	if signed[0].Name != "t" || signed[1].Name != "s" {
		t.Fatalf("param names = %q,%q, want t,s", signed[0].Name, signed[1].Name)
	}
	salt := signed[1].Value
	if len(salt) != 12 || !lowerHex.MatchString(salt) {
		t.Fatalf("salt = %q, want 12 lowercase hex chars", salt)
	}
	if signed[0].Value != tokenDigest("sesame", salt) {
		t.Fatalf("token %q does not match md5(secret+salt)", signed[0].Value)
	}
	for _, p := range signed {
		if p.Value == "sesame" {
			t.Fatalf("token credentials leaked the secret")
		}
	}
}

func TestTokenSign_SaltsDoNotRepeat(t *testing.T) {
	auth := Token("sesame")
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		salt := auth.Sign()[1].Value
		if _, dup := seen[salt]; dup {
			t.Fatalf("salt %q repeated after %d signatures", salt, i)
		}
		seen[salt] = struct{}{}
	}
}

func TestTokenSign_ConcurrentUse(t *testing.T) {
	t.Parallel()

	auth := Token("sesame")
	var (
		mu   sync.Mutex
		seen = map[string]struct{}{}
		wg   sync.WaitGroup
	)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				salt := auth.Sign()[1].Value
				mu.Lock()
				seen[salt] = struct{}{}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	if len(seen) != 400 {
		t.Fatalf("distinct salts = %d, want 400", len(seen))
	}
}

func TestPlaintextSign_HexEncodesPassword(t *testing.T) {
	signed := Plaintext("sesame").Sign()
	if len(signed) != 1 {
		t.Fatalf("len(Sign()) = %d, want 1", len(signed))
	}
	if signed[0].Name != "p" || signed[0].Value != "enc:736573616d65" {
		t.Fatalf("Sign() = %+v, want p=enc:736573616d65", signed[0])
	}
}

func TestAuthString_HidesSecret(t *testing.T) {
	for _, auth := range []Auth{Token("sesame"), Plaintext("sesame")} {
		if s := auth.String(); strings.Contains(s, "sesame") {
			t.Fatalf("String() = %q leaks secret", s)
		}
	}
}

func TestParseAuthKind(t *testing.T) {
	tests := []struct {
		in      string
		want    AuthKind
		wantErr bool
	}{
		{"", AuthToken, false},
		{"token", AuthToken, false},
		{" Plain ", AuthPlaintext, false},
		{"password", AuthPlaintext, false},
		{"ldap", AuthToken, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAuthKind(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseAuthKind(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Fatalf("ParseAuthKind(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
