package subsonic

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"
)

// fakeServer answers /rest/<endpoint> with canned bodies and records requests.
type fakeServer struct {
	t        *testing.T
	mu       sync.Mutex
	requests []*http.Request
	bodies   [][]byte
	routes   map[string]func(w http.ResponseWriter, r *http.Request)
}

func newFakeServer(t *testing.T) (*fakeServer, *httptest.Server) {
	t.Helper()
	fs := &fakeServer{t: t, routes: map[string]func(http.ResponseWriter, *http.Request){}}
	server := httptest.NewServer(http.HandlerFunc(fs.serve))
	t.Cleanup(server.Close)
	return fs, server
}

func (f *fakeServer) serve(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	f.mu.Lock()
	f.requests = append(f.requests, r)
	f.bodies = append(f.bodies, body)
	handler, ok := f.routes[r.URL.Path]
	f.mu.Unlock()
	if !ok {
		http.NotFound(w, r)
		return
	}
	handler(w, r)
}

func (f *fakeServer) json(path, inner string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.routes[path] = func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"subsonic-response":{"status":"ok","version":"1.16.1","type":"navidrome","serverVersion":"0.53.3","openSubsonic":true`+inner+`}}`)
	}
}

func (f *fakeServer) raw(path, contentType string, status int, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.routes[path] = func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}
}

func (f *fakeServer) last() (*http.Request, []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.requests) == 0 {
		f.t.Fatal("no requests recorded")
	}
	return f.requests[len(f.requests)-1], f.bodies[len(f.bodies)-1]
}

func testContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func newTestClient(t *testing.T, base string, opts ...Option) *Client {
	t.Helper()
	c, err := NewClient(base, "alice", Token("sesame"), opts...)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	return c
}

func TestClient_PingSendsSignedRequest(t *testing.T) {
	t.Parallel()

	fs, server := newFakeServer(t)
	fs.json("/music/rest/ping", "")
	c := newTestClient(t, server.URL+"/music", WithClientName("tester"))

	info, err := c.Ping(testContext(t))
	if err != nil {
		t.Fatalf("Ping returned error: %v", err)
	}
	if info.ServerType != "navidrome" || info.ServerVersion != "0.53.3" || !info.OpenSubsonic || info.APIVersion != "1.16.1" {
		t.Fatalf("ServerInfo = %+v", info)
	}

	req, _ := fs.last()
	if req.Method != http.MethodGet {
		t.Fatalf("method = %s, want GET", req.Method)
	}
	q := req.URL.Query()
	if q.Get("u") != "alice" || q.Get("c") != "tester" || q.Get("v") != DefaultAPIVersion || q.Get("f") != "json" {
		t.Fatalf("query = %v", q)
	}
	if q.Get("p") != "" {
		t.Fatalf("token auth sent plaintext password")
	}
	if q.Get("t") != tokenDigest("sesame", q.Get("s")) {
		t.Fatalf("token does not verify against salt")
	}
	if got := req.Header.Get("Accept"); got != "application/json" {
		t.Fatalf("Accept = %q", got)
	}
	if got := req.Header.Get("User-Agent"); got != defaultUserAgent {
		t.Fatalf("User-Agent = %q, want %q", got, defaultUserAgent)
	}
}

func TestClient_APIErrorFromEnvelope(t *testing.T) {
	t.Parallel()

	fs, server := newFakeServer(t)
	fs.raw("/rest/ping", "application/json", http.StatusOK,
		`{"subsonic-response":{"status":"failed","version":"1.16.1","error":{"code":40,"message":"Wrong username or password"}}}`)
	c := newTestClient(t, server.URL)

	_, err := c.Ping(testContext(t))
	if !errors.Is(err, ErrWrongCredentials) {
		t.Fatalf("Ping error = %v, want ErrWrongCredentials", err)
	}
}

func TestClient_HTTPStatusError(t *testing.T) {
	t.Parallel()

	fs, server := newFakeServer(t)
	fs.raw("/rest/getLicense", "text/plain", http.StatusBadGateway, "bad gateway")
	c := newTestClient(t, server.URL)

	_, err := c.GetLicense(testContext(t))
	var statusErr *HTTPStatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("GetLicense error = %T %v, want *HTTPStatusError", err, err)
	}
	if statusErr.StatusCode != http.StatusBadGateway || statusErr.Endpoint != "getLicense" {
		t.Fatalf("HTTPStatusError = %+v", statusErr)
	}
}

func TestClient_TransportError(t *testing.T) {
	t.Parallel()

	_, server := newFakeServer(t)
	base := server.URL
	server.Close()
	c := newTestClient(t, base)

	_, err := c.Ping(testContext(t))
	if err == nil || !strings.Contains(err.Error(), "execute request") {
		t.Fatalf("Ping error = %v, want transport failure", err)
	}
}

func TestClient_MissingMandatoryField(t *testing.T) {
	t.Parallel()

	fs, server := newFakeServer(t)
	fs.json("/rest/getAlbum", "")
	c := newTestClient(t, server.URL)

	_, err := c.GetAlbum(testContext(t), "al-1")
	if !errors.Is(err, ErrMissingField) {
		t.Fatalf("GetAlbum error = %v, want ErrMissingField", err)
	}
}

func TestClient_ListEndpoints(t *testing.T) {
	t.Parallel()

	fs, server := newFakeServer(t)
	fs.json("/rest/getMusicFolders", `,"musicFolders":{"musicFolder":[{"id":1,"name":"Music"}]}`)
	fs.json("/rest/getNowPlaying", `,"nowPlaying":{}`)
	fs.json("/rest/getArtists", `,"artists":{"ignoredArticles":"The","index":[
		{"name":"A","artist":[{"id":"ar-1","name":"ABBA","albumCount":9}]},
		{"name":"B","artist":[{"id":"ar-2","name":"Beck","albumCount":14}]}]}`)
	c := newTestClient(t, server.URL)
	ctx := testContext(t)

	folders, err := c.GetMusicFolders(ctx)
	if err != nil {
		t.Fatalf("GetMusicFolders returned error: %v", err)
	}
	if len(folders) != 1 || folders[0].ID != 1 || folders[0].Name != "Music" {
		t.Fatalf("folders = %+v", folders)
	}

	playing, err := c.GetNowPlaying(ctx)
	if err != nil {
		t.Fatalf("GetNowPlaying returned error: %v", err)
	}
	if playing == nil || len(playing) != 0 {
		t.Fatalf("now playing = %#v, want empty slice", playing)
	}

	artists, err := c.GetArtists(ctx, "")
	if err != nil {
		t.Fatalf("GetArtists returned error: %v", err)
	}
	all := artists.All()
	if len(all) != 2 || all[1].Name != "Beck" || all[1].AlbumCount != 14 {
		t.Fatalf("artists = %+v", all)
	}
	req, _ := fs.last()
	if req.URL.Query().Has("musicFolderId") {
		t.Fatalf("empty musicFolderId was sent")
	}
}

func TestClient_GetAlbumDecodesSongs(t *testing.T) {
	t.Parallel()

	fs, server := newFakeServer(t)
	fs.json("/rest/getAlbum", `,"album":{"id":"al-1","name":"Odelay","artist":"Beck","year":1996,"songCount":2,
		"song":[{"id":"s-1","title":"Devils Haircut","track":1,"duration":194},{"id":"s-2","title":"Hotwax","track":2,"duration":229}]}`)
	c := newTestClient(t, server.URL)

	album, err := c.GetAlbum(testContext(t), "al-1")
	if err != nil {
		t.Fatalf("GetAlbum returned error: %v", err)
	}
	if album.Name != "Odelay" || album.Year != 1996 || len(album.Songs) != 2 || album.Songs[1].Title != "Hotwax" {
		t.Fatalf("album = %+v", album)
	}
	req, _ := fs.last()
	if req.URL.Query().Get("id") != "al-1" {
		t.Fatalf("id param = %q", req.URL.Query().Get("id"))
	}
}

func TestClient_DuplicateParamsKeepOrder(t *testing.T) {
	t.Parallel()

	fs, server := newFakeServer(t)
	fs.json("/rest/updatePlaylist", "")
	c := newTestClient(t, server.URL)

	err := c.UpdatePlaylist(testContext(t), "pl-1", PlaylistUpdate{
		Name:                "Road trip",
		SongIDsToAdd:        []string{"s-3", "s-1", "s-2"},
		SongIndexesToRemove: []int{0},
	})
	if err != nil {
		t.Fatalf("UpdatePlaylist returned error: %v", err)
	}
	req, _ := fs.last()
	got := req.URL.Query()["songIdToAdd"]
	if strings.Join(got, ",") != "s-3,s-1,s-2" {
		t.Fatalf("songIdToAdd = %v, want call order", got)
	}
	tail := req.URL.RawQuery[strings.Index(req.URL.RawQuery, "f=json"):]
	if !strings.HasPrefix(tail, "f=json&playlistId=pl-1&name=Road+trip&songIdToAdd=s-3") {
		t.Fatalf("caller params out of order: %s", tail)
	}
}

func TestClient_BinaryEndpoints(t *testing.T) {
	t.Parallel()

	fs, server := newFakeServer(t)
	image := "\x89PNG\r\n\x1a\n"
	fs.raw("/rest/getCoverArt", "image/png", http.StatusOK, image)
	fs.raw("/rest/stream", "application/json", http.StatusOK,
		`{"subsonic-response":{"status":"failed","error":{"code":70,"message":"Song not found"}}}`)
	fs.raw("/rest/download", "application/json", http.StatusOK, `{"subsonic-response":{"status":"ok"}}`)
	c := newTestClient(t, server.URL)
	ctx := testContext(t)

	got, err := c.GetCoverArt(ctx, "al-1", 300)
	if err != nil {
		t.Fatalf("GetCoverArt returned error: %v", err)
	}
	if !bytes.Equal(got, []byte(image)) {
		t.Fatalf("cover art bytes altered")
	}
	req, _ := fs.last()
	if req.URL.Query().Get("size") != "300" {
		t.Fatalf("size param = %q", req.URL.Query().Get("size"))
	}

	_, err = c.Stream(ctx, "s-404", StreamOptions{MaxBitRate: 128, Format: "mp3"})
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Code != ErrNotFound {
		t.Fatalf("Stream error = %v, want code 70 *APIError", err)
	}

	_, err = c.Download(ctx, "s-1")
	if !errors.Is(err, ErrUnexpectedJSON) {
		t.Fatalf("Download error = %v, want ErrUnexpectedJSON", err)
	}
}

func TestClient_TranscodeDecisionPostsClientInfo(t *testing.T) {
	t.Parallel()

	fs, server := newFakeServer(t)
	fs.json("/rest/getTranscodeDecision", `,"transcodeDecision":{"canDirectPlay":false,"canTranscode":true,
		"transcodeReason":["container not supported"],"transcodeStream":{"protocol":"http","container":"mp3","codec":"mp3","audioBitrate":192000}}`)
	c := newTestClient(t, server.URL)
	ctx := testContext(t)

	info := &ClientInfo{
		Name:     "sonar",
		Platform: "linux",
		TranscodingProfiles: []TranscodingProfile{
			{Container: "mp3", AudioCodec: "mp3", Protocol: "http"},
		},
	}
	decision, err := c.GetTranscodeDecision(ctx, "s-1", 192, "", info)
	if err != nil {
		t.Fatalf("GetTranscodeDecision returned error: %v", err)
	}
	if decision.CanDirectPlay || !decision.CanTranscode || decision.TranscodeStream == nil || decision.TranscodeStream.Container != "mp3" {
		t.Fatalf("decision = %+v", decision)
	}

	req, body := fs.last()
	if req.Method != http.MethodPost {
		t.Fatalf("method = %s, want POST", req.Method)
	}
	if ct := req.Header.Get("Content-Type"); ct != "application/json" {
		t.Fatalf("Content-Type = %q", ct)
	}
	if req.URL.Query().Get("maxBitRate") != "192" || req.URL.Query().Has("format") {
		t.Fatalf("query = %v", req.URL.Query())
	}
	var sent ClientInfo
	if err := json.Unmarshal(body, &sent); err != nil {
		t.Fatalf("body is not ClientInfo JSON: %v", err)
	}
	if sent.Name != "sonar" || len(sent.TranscodingProfiles) != 1 {
		t.Fatalf("sent body = %+v", sent)
	}

	if _, err := c.GetTranscodeDecision(ctx, "s-1", 0, "opus", nil); err != nil {
		t.Fatalf("GET GetTranscodeDecision returned error: %v", err)
	}
	req, _ = fs.last()
	if req.Method != http.MethodGet {
		t.Fatalf("method = %s, want GET", req.Method)
	}
}

func TestClient_WithReturnsCopy(t *testing.T) {
	c := newTestClient(t, "https://music.example.com/sub")
	modified := c.With(WithClientName("other"), WithAPIVersion("1.15.0"))

	if c.ClientName() != DefaultClientName || c.APIVersion() != DefaultAPIVersion {
		t.Fatalf("With mutated receiver: %s %s", c.ClientName(), c.APIVersion())
	}
	if modified.ClientName() != "other" || modified.APIVersion() != "1.15.0" {
		t.Fatalf("With did not apply options: %s %s", modified.ClientName(), modified.APIVersion())
	}
	if modified.BaseURL() != c.BaseURL() || modified.Username() != "alice" {
		t.Fatalf("With lost identity: %s %s", modified.BaseURL(), modified.Username())
	}
}

func TestClient_FixedSaltURLsAreIdentical(t *testing.T) {
	c := newTestClient(t, "https://music.example.com/", withFixedSalt("0123456789ab"))

	a := c.StreamURL("s-1", StreamOptions{MaxBitRate: 320})
	b := c.StreamURL("s-1", StreamOptions{MaxBitRate: 320})
	if a.String() != b.String() {
		t.Fatalf("urls differ:\n%s\n%s", a, b)
	}
	if a.Query().Get("s") != "0123456789ab" {
		t.Fatalf("salt = %q", a.Query().Get("s"))
	}

	fresh := newTestClient(t, "https://music.example.com/")
	if fresh.CoverArtURL("al-1", 0).String() == fresh.CoverArtURL("al-1", 0).String() {
		t.Fatalf("unpinned client reused a salt")
	}
}

func TestClient_URLOnlyEndpoints(t *testing.T) {
	c := newTestClient(t, "https://music.example.com/music")

	hls := c.HLSURL("v-1", 0, "")
	if hls.Path != "/music/rest/hls.m3u8" || hls.Query().Has("bitRate") {
		t.Fatalf("HLS url = %s", hls)
	}
	tr := c.TranscodeStreamURL("s-1", 0, "opus")
	if tr.Path != "/music/rest/getTranscodeStream" || tr.Query().Get("format") != "opus" {
		t.Fatalf("transcode url = %s", tr)
	}
}

func TestClient_CallReachesUnwrappedEndpoints(t *testing.T) {
	t.Parallel()

	fs, server := newFakeServer(t)
	fs.json("/rest/getInternetRadioStations", `,"internetRadioStations":{"internetRadioStation":[{"id":"r1","name":"KEXP","streamUrl":"http://kexp"}]}`)
	c := newTestClient(t, server.URL)

	payload, err := c.Call(testContext(t), "getInternetRadioStations")
	if err != nil {
		t.Fatalf("Call returned error: %v", err)
	}
	type station struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	stations, err := DecodeList[station](payload, "internetRadioStations", "internetRadioStation")
	if err != nil || len(stations) != 1 || stations[0].Name != "KEXP" {
		t.Fatalf("stations = %+v, %v", stations, err)
	}
}

func TestClient_LogsRedactedRequests(t *testing.T) {
	t.Parallel()

	fs, server := newFakeServer(t)
	fs.json("/rest/ping", "")
	var buf syncBuffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	c, err := NewClient(server.URL, "alice", Plaintext("sesame"), WithLogger(logger))
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	if _, err := c.Ping(testContext(t)); err != nil {
		t.Fatalf("Ping returned error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "endpoint=ping") || !strings.Contains(out, "request_id=") || !strings.Contains(out, "status=200") {
		t.Fatalf("log output missing fields: %s", out)
	}
	if strings.Contains(out, "736573616d65") {
		t.Fatalf("log output leaked credentials: %s", out)
	}
}

func TestClient_InsecureTransport(t *testing.T) {
	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"subsonic-response":{"status":"ok","version":"1.16.1"}}`)
	}))
	t.Cleanup(server.Close)

	strict := newTestClient(t, server.URL)
	if _, err := strict.Ping(testContext(t)); err == nil {
		t.Fatalf("expected certificate error without WithInsecureSkipVerify")
	}
	lax := strict.With(WithInsecureSkipVerify())
	if _, err := lax.Ping(testContext(t)); err != nil {
		t.Fatalf("Ping with WithInsecureSkipVerify returned error: %v", err)
	}
}

func TestClient_ContextCancellation(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(func() {
		close(release)
		server.Close()
	})
	c := newTestClient(t, server.URL)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := c.Ping(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Ping error = %v, want context.DeadlineExceeded", err)
	}
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}
