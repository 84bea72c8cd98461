// Package subsonic is a client for the Subsonic and OpenSubsonic media
// server REST protocol.
//
// # Overview
//
// Every call becomes a GET to {base}/rest/{endpoint} carrying the account
// name, per-request credentials, protocol version, client name and f=json,
// followed by the endpoint's own parameters in the order they were given.
// Responses arrive wrapped in a "subsonic-response" envelope; the client
// unwraps it into a Payload or a typed error.
//
// The package has no global state and starts no goroutines. Everything it
// does happens inside the caller's call and honours the caller's context.
//
// # Architecture
//
//   - auth.go: Auth credentials and per-request signing (salted MD5 token or hex password)
//   - request.go: URL construction with order-preserving query encoding
//   - envelope.go: envelope decoding and the Payload accessors
//   - binary.go: detection of JSON error bodies on media endpoints
//   - client.go: the immutable Client, its options, the HTTP round trip and
//     the generic fetch helpers every wrapper goes through
//   - errors.go: ErrorCode, APIError, ParseError, MissingFieldError, HTTPStatusError
//   - types.go: response records shared across endpoint groups
//
// The remaining files are thin endpoint wrappers grouped the way the protocol
// documentation groups them:
//
//   - system.go: ping, getLicense, getOpenSubsonicExtensions, tokenInfo
//   - browsing.go: folders, indexes, directories, genres, artists, albums,
//     songs, videos, artist and album info, top and similar songs
//   - lists.go: getAlbumList/getAlbumList2, random songs, songs by genre,
//     now playing, getStarred/getStarred2
//   - search.go: search, search2, search3
//   - playlists.go, bookmarks.go (including the play queue), annotation.go
//   - media.go, transcoding.go: stream, download, cover art, avatar,
//     captions, HLS, lyrics and transcode decisions
//   - podcasts.go, sharing.go, radio.go, chat.go, jukebox.go, users.go
//   - scanning.go: getScanStatus, startScan
//
// Folder-based endpoints (getAlbumList, getStarred, search2) return Child
// and Artist records; their tag-based twins (the "2" and "3" variants)
// return AlbumID3 and ArtistID3. Both are wrapped because servers differ in
// which they index well.
//
// # Client Usage
//
//	client, err := subsonic.NewClient("https://music.example.com", "alice",
//		subsonic.Token(password),
//		subsonic.WithTimeout(10*time.Second),
//	)
//	if err != nil {
//		log.Fatalf("create client: %v", err)
//	}
//
//	info, err := client.Ping(ctx)
//	if errors.Is(err, subsonic.ErrWrongCredentials) {
//		log.Fatal("check username and password")
//	}
//
// A base URL may carry a sub-path, such as https://host/navidrome, and that
// path is kept byte for byte, percent-escapes included. A base URL without a
// scheme is treated as http.
//
// Endpoints without a wrapper are reachable through Call and CallBinary:
//
//	payload, err := client.Call(ctx, "getSomethingNew", subsonic.P("id", id))
//	items, err := subsonic.DecodeList[Item](payload, "somethingNew", "item")
//
// Links for another program (a media player, an image viewer) come from URL,
// StreamURL, CoverArtURL and HLSURL. They are signed with a fresh salt and
// never touch the network.
//
// # Authentication
//
// Token auth sends t=md5(password+salt) and s=salt, with a new salt from
// crypto/rand on every request. Plaintext auth sends p=enc:<hex> for servers
// that cannot verify tokens, typically those backed by LDAP. Passwords sent
// as endpoint arguments (createUser, updateUser, changePassword) use the
// same enc: form. Auth values never print their secret, and debug logs
// replace t, s, p and password with REDACTED.
//
// # Parameters
//
// Optional arguments follow a few rules so that a zero value never sends
// something the caller did not ask for:
//
//   - empty strings are omitted
//   - counts and offsets are omitted when <= 0, unless the option is a *int,
//     where a pointer to zero is sent as 0 (search uses this to suppress a
//     result group)
//   - *bool options are sent only when non-nil
//   - list arguments repeat the parameter name in call order
//   - zero time.Time values are omitted; others are sent as epoch milliseconds
//
// # Decoding
//
// A mandatory response field that is absent yields a *MissingFieldError.
// List endpoints never fail on absence: a missing outer or inner key
// decodes to an empty, non-nil slice. Some servers send a single object
// where a one-element list belongs, and that is accepted too. Endpoints
// whose record is optional (getPlayQueue, getLyrics, search results,
// starred lists) return zero values with empty slices when the server
// leaves the field out.
//
// # Errors
//
// A failed envelope is an *APIError whose Code is an ErrorCode. ErrorCode
// values satisfy error, so errors.Is(err, subsonic.ErrNotFound) works. A
// server that reports failure without an error object yields ErrGeneric.
//
// Bodies that are not a valid envelope, and fields that do not match their
// record, are a *ParseError. It names the endpoint and keeps the raw text;
// Error() shows at most 4 KiB of it, cut on a UTF-8 boundary. Media
// endpoints that answer with a success envelope instead of bytes return a
// *ParseError wrapping ErrUnexpectedJSON. HTTP statuses of 400 and above
// are an *HTTPStatusError before any body is read. Transport failures are
// wrapped with "execute request" and keep the context error reachable
// through errors.Is.
//
// Wrappers validate what they can before sending: an empty star target, a
// rating outside 0-5, a jukebox gain outside 0-1 and the like return an
// error without a request.
//
// # Logging
//
// WithLogger attaches a *slog.Logger. Each request logs one debug record
// with endpoint, method, a per-request UUID, the redacted URL, the status
// and the duration. Without a logger nothing is written.
//
// # Thread Safety
//
// A Client never changes after construction. With returns a modified copy.
// Token salts come from crypto/rand, so concurrent calls never share one.
//
// # Testing
//
// The tests run every wrapper against an httptest server that records the
// query it received, so they check parameter order and omission as well as
// decoding. The unexported withFixedSalt option makes signed URLs
// reproducible.
package subsonic
