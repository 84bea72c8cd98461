package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/five82/sonar/pkg/subsonic"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoad_MissingConfigReportsWhatToFill(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("SONAR_PASSWORD", "")

	_, _, _, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err == nil {
		t.Fatalf("Load returned nil error, want server.url validation error")
	}
	if !strings.Contains(err.Error(), "server.url is required") || !strings.Contains(err.Error(), "sonar config init") {
		t.Fatalf("Load error = %q", err.Error())
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("SONAR_PASSWORD", "")

	path := writeConfig(t, `
[server]
url = "  music.example.com:4533/navidrome/  "
username = " alice "
password = "sesame"
auth = " PLAIN "
timeout_seconds = 30

[logging]
level = " DEBUG "
format = "JSON"
file = "~/logs/sonar.log"

[ui]
poll_seconds = 0
`)

	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("resolved = %q exists=%v, want %q true", resolved, exists, path)
	}
	if cfg.Server.URL != "http://music.example.com:4533/navidrome" {
		t.Fatalf("Server.URL = %q", cfg.Server.URL)
	}
	if cfg.Server.Username != "alice" || cfg.Server.Auth != "plain" || cfg.Server.TimeoutSeconds != 30 {
		t.Fatalf("Server = %+v", cfg.Server)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Fatalf("Logging = %+v", cfg.Logging)
	}
	if cfg.Logging.File != filepath.Join(home, "logs/sonar.log") {
		t.Fatalf("Logging.File = %q", cfg.Logging.File)
	}
	if cfg.UI.PollSeconds != defaultPollSeconds {
		t.Fatalf("UI.PollSeconds = %d, want %d", cfg.UI.PollSeconds, defaultPollSeconds)
	}
}

func TestLoad_PasswordEnvOverridesFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("MY_SONAR_SECRET", "from-env")

	path := writeConfig(t, `
[server]
url = "https://music.example.com"
username = "alice"
password = "from-file"
password_env = "MY_SONAR_SECRET"
`)

	cfg, _, _, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Server.Password != "from-env" {
		t.Fatalf("Password = %q, want from-env", cfg.Server.Password)
	}
}

func TestLoad_ValidationErrors(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("SONAR_PASSWORD", "")

	tests := []struct {
		name string
		body string
		want string
	}{
		{"bad scheme", "[server]\nurl = \"ftp://host\"\nusername = \"a\"\npassword = \"b\"\n", "http or https"},
		{"no username", "[server]\nurl = \"http://host\"\npassword = \"b\"\n", "server.username"},
		{"no password", "[server]\nurl = \"http://host\"\nusername = \"a\"\n", "SONAR_PASSWORD"},
		{"bad auth", "[server]\nurl = \"http://host\"\nusername = \"a\"\npassword = \"b\"\nauth = \"ldap\"\n", "server.auth"},
		{"bad level", "[server]\nurl = \"http://host\"\nusername = \"a\"\npassword = \"b\"\n[logging]\nlevel = \"loud\"\n", "logging.level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, err := Load(writeConfig(t, tt.body))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("Load error = %v, want it to mention %q", err, tt.want)
			}
		})
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	path := writeConfig(t, `[server`)
	_, _, _, err := Load(path)
	if err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
	}
}

func TestNewClient_UsesConfiguredIdentity(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("SONAR_PASSWORD", "")

	path := writeConfig(t, `
[server]
url = "https://music.example.com/sub"
username = "alice"
password = "sesame"
auth = "plain"
client_name = "living-room"
api_version = "1.15.0"
`)
	cfg, _, _, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	client, err := cfg.NewClient(nil)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	if client.AuthKind() != subsonic.AuthPlaintext {
		t.Fatalf("AuthKind = %v, want plain", client.AuthKind())
	}
	u := client.URL("ping")
	q := u.Query()
	if u.Path != "/sub/rest/ping" || q.Get("c") != "living-room" || q.Get("v") != "1.15.0" || q.Get("p") != "enc:736573616d65" {
		t.Fatalf("ping url = %s", u)
	}
}

func TestCreateSample_WritesOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := CreateSample(path); err != nil {
		t.Fatalf("CreateSample returned error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "[server]") {
		t.Fatalf("sample config missing [server] section")
	}
	if err := CreateSample(path); err == nil {
		t.Fatalf("second CreateSample returned nil error, want exists error")
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("expandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}
