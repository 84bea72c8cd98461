package subsonic

import (
	"crypto/md5"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
)

// AuthKind selects how credentials are placed on the wire.
type AuthKind int

const (
	// AuthToken sends t=md5(password+salt) and s=salt. The password never leaves the process.
	AuthToken AuthKind = iota
	// AuthPlaintext sends p=enc:<hex(password)> for servers without token support.
	AuthPlaintext
)

// String returns the config spelling of the auth mode.
func (k AuthKind) String() string {
	switch k {
	case AuthToken:
		return "token"
	case AuthPlaintext:
		return "plain"
	default:
		return fmt.Sprintf("AuthKind(%d)", int(k))
	}
}

// ParseAuthKind maps a config value to an AuthKind. Empty means token.
func ParseAuthKind(value string) (AuthKind, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "token":
		return AuthToken, nil
	case "plain", "plaintext", "password":
		return AuthPlaintext, nil
	default:
		return AuthToken, fmt.Errorf("auth mode: unsupported value %q", value)
	}
}

const saltBytes = 6

// Auth holds a credential and produces the per-request authentication
// parameters. The zero value signs as an empty token credential.
type Auth struct {
	kind   AuthKind
	secret string
	salt   func() string
}

// Token returns salted-token credentials for password.
func Token(password string) Auth {
	return Auth{kind: AuthToken, secret: password}
}

// Plaintext returns hex-encoded password credentials.
func Plaintext(password string) Auth {
	return Auth{kind: AuthPlaintext, secret: password}
}

// NewAuth builds credentials of the given kind.
func NewAuth(kind AuthKind, password string) Auth {
	if kind == AuthPlaintext {
		return Plaintext(password)
	}
	return Token(password)
}

// Kind reports the wire mode.
func (a Auth) Kind() AuthKind {
	return a.kind
}

// Sign returns the authentication parameters for one request. Token
// credentials draw a fresh salt on every call. Safe for concurrent use.
func (a Auth) Sign() []Param {
	if a.kind == AuthPlaintext {
		return []Param{{Name: "p", Value: encodePassword(a.secret)}}
	}
	salt := a.nextSalt()
	return []Param{
		{Name: "t", Value: tokenDigest(a.secret, salt)},
		{Name: "s", Value: salt},
	}
}

// String never includes the secret.
func (a Auth) String() string {
	return a.kind.String() + " credentials"
}

// GoString keeps %#v from printing the password.
func (a Auth) GoString() string {
	return "subsonic.Auth{" + a.kind.String() + "}"
}

func (a Auth) nextSalt() string {
	if a.salt != nil {
		return a.salt()
	}
	return newSalt()
}

// withSalt pins the salt source so URLs become reproducible in tests.
func (a Auth) withSalt(fn func() string) Auth {
	a.salt = fn
	return a
}

// encodePassword is the enc:<hex> form servers accept wherever a password
// is sent.
func encodePassword(password string) string {
	return "enc:" + hex.EncodeToString([]byte(password))
}

func tokenDigest(password, salt string) string {
	sum := md5.Sum([]byte(password + salt))
	return hex.EncodeToString(sum[:])
}

func newSalt() string {
	buf := make([]byte, saltBytes)
	if _, err := rand.Read(buf); err != nil {
		panic(fmt.Sprintf("subsonic: read random salt: %v", err))
	}
	return hex.EncodeToString(buf)
}
