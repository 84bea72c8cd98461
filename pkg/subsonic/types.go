package subsonic

// Timestamps are kept as the server's ISO 8601 strings; servers disagree on
// precision and zone suffixes.

// ServerInfo is the identity block every envelope carries.
type ServerInfo struct {
	APIVersion    string `json:"version"`
	ServerType    string `json:"type,omitempty"`
	ServerVersion string `json:"serverVersion,omitempty"`
	OpenSubsonic  bool   `json:"openSubsonic"`
}

// License mirrors getLicense.
type License struct {
	Valid          bool   `json:"valid"`
	Email          string `json:"email,omitempty"`
	LicenseExpires string `json:"licenseExpires,omitempty"`
	TrialExpires   string `json:"trialExpires,omitempty"`
}

// OpenSubsonicExtension names an extension and the versions the server speaks.
type OpenSubsonicExtension struct {
	Name     string `json:"name"`
	Versions []int  `json:"versions"`
}

// TokenInfo mirrors tokenInfo.
type TokenInfo struct {
	Username string `json:"username"`
}

// MusicFolder is a top-level library folder.
type MusicFolder struct {
	ID   int64  `json:"id"`
	Name string `json:"name,omitempty"`
}

// Genre carries its name in the "value" field on the wire.
type Genre struct {
	Name       string `json:"value"`
	SongCount  int64  `json:"songCount"`
	AlbumCount int64  `json:"albumCount"`
}

// ItemGenre is a genre reference attached to an album or song.
type ItemGenre struct {
	Name string `json:"name"`
}

// ItemDate is a possibly partial release date.
type ItemDate struct {
	Year  *int `json:"year,omitempty"`
	Month *int `json:"month,omitempty"`
	Day   *int `json:"day,omitempty"`
}

// DiscTitle names one disc of a multi-disc album.
type DiscTitle struct {
	Disc  int    `json:"disc"`
	Title string `json:"title"`
}

// RecordLabel is a label credited on an album.
type RecordLabel struct {
	Name string `json:"name"`
}

// ReplayGain values in dB.
type ReplayGain struct {
	TrackGain    *float64 `json:"trackGain,omitempty"`
	AlbumGain    *float64 `json:"albumGain,omitempty"`
	TrackPeak    *float64 `json:"trackPeak,omitempty"`
	AlbumPeak    *float64 `json:"albumPeak,omitempty"`
	BaseGain     *float64 `json:"baseGain,omitempty"`
	FallbackGain *float64 `json:"fallbackGain,omitempty"`
}

// Contributor credits an artist with a role such as composer.
type Contributor struct {
	Role    string    `json:"role"`
	SubRole string    `json:"subRole,omitempty"`
	Artist  ArtistID3 `json:"artist"`
}

// ArtistID3 is an artist organised by tags.
type ArtistID3 struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	CoverArt       string   `json:"coverArt,omitempty"`
	ArtistImageURL string   `json:"artistImageUrl,omitempty"`
	AlbumCount     int64    `json:"albumCount,omitempty"`
	Starred        string   `json:"starred,omitempty"`
	MusicBrainzID  string   `json:"musicBrainzId,omitempty"`
	SortName       string   `json:"sortName,omitempty"`
	Roles          []string `json:"roles,omitempty"`
}

// ArtistWithAlbums is getArtist's result.
type ArtistWithAlbums struct {
	ArtistID3
	Albums []AlbumID3 `json:"album"`
}

// Artists is the getArtists index.
type Artists struct {
	IgnoredArticles string     `json:"ignoredArticles,omitempty"`
	Index           []IndexID3 `json:"index"`
}

// All flattens the alphabetical index.
func (a Artists) All() []ArtistID3 {
	var out []ArtistID3
	for _, idx := range a.Index {
		out = append(out, idx.Artists...)
	}
	return out
}

// IndexID3 is one letter group of the tag-based artist index.
type IndexID3 struct {
	Name    string      `json:"name"`
	Artists []ArtistID3 `json:"artist"`
}

// AlbumID3 is an album organised by tags.
type AlbumID3 struct {
	ID                  string        `json:"id"`
	Name                string        `json:"name"`
	Version             string        `json:"version,omitempty"`
	Artist              string        `json:"artist,omitempty"`
	ArtistID            string        `json:"artistId,omitempty"`
	CoverArt            string        `json:"coverArt,omitempty"`
	SongCount           int64         `json:"songCount,omitempty"`
	Duration            int64         `json:"duration,omitempty"`
	PlayCount           int64         `json:"playCount,omitempty"`
	Created             string        `json:"created,omitempty"`
	Starred             string        `json:"starred,omitempty"`
	Year                int           `json:"year,omitempty"`
	Genre               string        `json:"genre,omitempty"`
	Played              string        `json:"played,omitempty"`
	UserRating          int           `json:"userRating,omitempty"`
	RecordLabels        []RecordLabel `json:"recordLabels,omitempty"`
	MusicBrainzID       string        `json:"musicBrainzId,omitempty"`
	Genres              []ItemGenre   `json:"genres,omitempty"`
	Artists             []ArtistID3   `json:"artists,omitempty"`
	DisplayArtist       string        `json:"displayArtist,omitempty"`
	OriginalReleaseDate *ItemDate     `json:"originalReleaseDate,omitempty"`
	ReleaseDate         *ItemDate     `json:"releaseDate,omitempty"`
	IsCompilation       bool          `json:"isCompilation,omitempty"`
	SortName            string        `json:"sortName,omitempty"`
	DiscTitles          []DiscTitle   `json:"discTitles,omitempty"`
	ExplicitStatus      string        `json:"explicitStatus,omitempty"`
	Moods               []string      `json:"moods,omitempty"`
}

// AlbumWithSongs is getAlbum's result.
type AlbumWithSongs struct {
	AlbumID3
	Songs []Child `json:"song"`
}

// Artist is the folder-based artist entry used by getIndexes.
type Artist struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	ArtistImageURL string  `json:"artistImageUrl,omitempty"`
	Starred        string  `json:"starred,omitempty"`
	UserRating     int     `json:"userRating,omitempty"`
	AverageRating  float64 `json:"averageRating,omitempty"`
}

// Child is a song, video, or directory entry.
type Child struct {
	ID                    string        `json:"id"`
	Parent                string        `json:"parent,omitempty"`
	IsDir                 bool          `json:"isDir"`
	Title                 string        `json:"title"`
	Album                 string        `json:"album,omitempty"`
	Artist                string        `json:"artist,omitempty"`
	Track                 int           `json:"track,omitempty"`
	Year                  int           `json:"year,omitempty"`
	Genre                 string        `json:"genre,omitempty"`
	CoverArt              string        `json:"coverArt,omitempty"`
	Size                  int64         `json:"size,omitempty"`
	ContentType           string        `json:"contentType,omitempty"`
	Suffix                string        `json:"suffix,omitempty"`
	TranscodedContentType string        `json:"transcodedContentType,omitempty"`
	TranscodedSuffix      string        `json:"transcodedSuffix,omitempty"`
	Duration              int64         `json:"duration,omitempty"`
	BitRate               int           `json:"bitRate,omitempty"`
	BitDepth              int           `json:"bitDepth,omitempty"`
	SamplingRate          int           `json:"samplingRate,omitempty"`
	ChannelCount          int           `json:"channelCount,omitempty"`
	Path                  string        `json:"path,omitempty"`
	IsVideo               bool          `json:"isVideo,omitempty"`
	UserRating            int           `json:"userRating,omitempty"`
	AverageRating         float64       `json:"averageRating,omitempty"`
	PlayCount             int64         `json:"playCount,omitempty"`
	DiscNumber            int           `json:"discNumber,omitempty"`
	Created               string        `json:"created,omitempty"`
	Starred               string        `json:"starred,omitempty"`
	AlbumID               string        `json:"albumId,omitempty"`
	ArtistID              string        `json:"artistId,omitempty"`
	Type                  string        `json:"type,omitempty"`
	MediaType             string        `json:"mediaType,omitempty"`
	BookmarkPosition      int64         `json:"bookmarkPosition,omitempty"`
	Played                string        `json:"played,omitempty"`
	BPM                   int           `json:"bpm,omitempty"`
	Comment               string        `json:"comment,omitempty"`
	SortName              string        `json:"sortName,omitempty"`
	MusicBrainzID         string        `json:"musicBrainzId,omitempty"`
	ISRC                  []string      `json:"isrc,omitempty"`
	Genres                []ItemGenre   `json:"genres,omitempty"`
	Artists               []ArtistID3   `json:"artists,omitempty"`
	DisplayArtist         string        `json:"displayArtist,omitempty"`
	AlbumArtists          []ArtistID3   `json:"albumArtists,omitempty"`
	DisplayAlbumArtist    string        `json:"displayAlbumArtist,omitempty"`
	Contributors          []Contributor `json:"contributors,omitempty"`
	DisplayComposer       string        `json:"displayComposer,omitempty"`
	Moods                 []string      `json:"moods,omitempty"`
	ReplayGain            *ReplayGain   `json:"replayGain,omitempty"`
	ExplicitStatus        string        `json:"explicitStatus,omitempty"`
}

// NowPlayingEntry is a song currently being played by some user.
type NowPlayingEntry struct {
	Child
	Username   string `json:"username,omitempty"`
	MinutesAgo int64  `json:"minutesAgo,omitempty"`
	PlayerID   int64  `json:"playerId,omitempty"`
	PlayerName string `json:"playerName,omitempty"`
}

// Directory is getMusicDirectory's result.
type Directory struct {
	ID            string  `json:"id"`
	Parent        string  `json:"parent,omitempty"`
	Name          string  `json:"name"`
	Starred       string  `json:"starred,omitempty"`
	UserRating    int     `json:"userRating,omitempty"`
	AverageRating float64 `json:"averageRating,omitempty"`
	PlayCount     int64   `json:"playCount,omitempty"`
	Children      []Child `json:"child"`
}

// Index is one letter group of the folder-based artist index.
type Index struct {
	Name    string   `json:"name"`
	Artists []Artist `json:"artist"`
}

// Indexes is the folder-based artist index.
type Indexes struct {
	IgnoredArticles string   `json:"ignoredArticles,omitempty"`
	LastModified    int64    `json:"lastModified,omitempty"`
	Shortcuts       []Artist `json:"shortcut,omitempty"`
	Children        []Child  `json:"child,omitempty"`
	Index           []Index  `json:"index"`
}

// AlbumInfo carries notes and image links for an album.
type AlbumInfo struct {
	Notes          string `json:"notes,omitempty"`
	MusicBrainzID  string `json:"musicBrainzId,omitempty"`
	LastFmURL      string `json:"lastFmUrl,omitempty"`
	SmallImageURL  string `json:"smallImageUrl,omitempty"`
	MediumImageURL string `json:"mediumImageUrl,omitempty"`
	LargeImageURL  string `json:"largeImageUrl,omitempty"`
}

// ArtistInfo is getArtistInfo's result. Similar artists are folder-based.
type ArtistInfo struct {
	Biography      string   `json:"biography,omitempty"`
	MusicBrainzID  string   `json:"musicBrainzId,omitempty"`
	LastFmURL      string   `json:"lastFmUrl,omitempty"`
	SmallImageURL  string   `json:"smallImageUrl,omitempty"`
	MediumImageURL string   `json:"mediumImageUrl,omitempty"`
	LargeImageURL  string   `json:"largeImageUrl,omitempty"`
	SimilarArtists []Artist `json:"similarArtist,omitempty"`
}

// ArtistInfo2 is getArtistInfo2's result.
type ArtistInfo2 struct {
	Biography      string      `json:"biography,omitempty"`
	MusicBrainzID  string      `json:"musicBrainzId,omitempty"`
	LastFmURL      string      `json:"lastFmUrl,omitempty"`
	SmallImageURL  string      `json:"smallImageUrl,omitempty"`
	MediumImageURL string      `json:"mediumImageUrl,omitempty"`
	LargeImageURL  string      `json:"largeImageUrl,omitempty"`
	SimilarArtists []ArtistID3 `json:"similarArtist,omitempty"`
}

// SearchResult3 is search3's result.
type SearchResult3 struct {
	Artists []ArtistID3 `json:"artist"`
	Albums  []AlbumID3  `json:"album"`
	Songs   []Child     `json:"song"`
}

// SearchResult2 is search2's result.
type SearchResult2 struct {
	Artists []Artist `json:"artist"`
	Albums  []Child  `json:"album"`
	Songs   []Child  `json:"song"`
}

// SearchResult is the deprecated search call's result.
type SearchResult struct {
	Offset    int64   `json:"offset"`
	TotalHits int64   `json:"totalHits"`
	Matches   []Child `json:"match"`
}

// Starred is getStarred's result.
type Starred struct {
	Artists []Artist `json:"artist"`
	Albums  []Child  `json:"album"`
	Songs   []Child  `json:"song"`
}

// Starred2 is getStarred2's result.
type Starred2 struct {
	Artists []ArtistID3 `json:"artist"`
	Albums  []AlbumID3  `json:"album"`
	Songs   []Child     `json:"song"`
}

// Playlist is a playlist summary without its entries.
type Playlist struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Comment      string   `json:"comment,omitempty"`
	Owner        string   `json:"owner,omitempty"`
	Public       bool     `json:"public,omitempty"`
	SongCount    int64    `json:"songCount"`
	Duration     int64    `json:"duration"`
	Created      string   `json:"created,omitempty"`
	Changed      string   `json:"changed,omitempty"`
	CoverArt     string   `json:"coverArt,omitempty"`
	AllowedUsers []string `json:"allowedUser,omitempty"`
	Readonly     bool     `json:"readonly,omitempty"`
}

// PlaylistWithSongs is getPlaylist's result.
type PlaylistWithSongs struct {
	Playlist
	Entries []Child `json:"entry"`
}

// Bookmark is a saved position, in milliseconds, within one media file.
type Bookmark struct {
	Position int64  `json:"position"`
	Username string `json:"username"`
	Comment  string `json:"comment,omitempty"`
	Created  string `json:"created,omitempty"`
	Changed  string `json:"changed,omitempty"`
	Entry    Child  `json:"entry"`
}

// PlayQueue is the queue saved by savePlayQueue. Position is milliseconds
// into Current.
type PlayQueue struct {
	Current   string  `json:"current,omitempty"`
	Position  int64   `json:"position,omitempty"`
	Username  string  `json:"username"`
	Changed   string  `json:"changed,omitempty"`
	ChangedBy string  `json:"changedBy,omitempty"`
	Entries   []Child `json:"entry"`
}

// ScanStatus reports library scan progress.
type ScanStatus struct {
	Scanning bool  `json:"scanning"`
	Count    int64 `json:"count,omitempty"`
}

// PlayQueueByIndex is getPlayQueueByIndex's result. CurrentIndex is nil
// when the queue is empty.
type PlayQueueByIndex struct {
	CurrentIndex *int    `json:"currentIndex,omitempty"`
	Position     int64   `json:"position,omitempty"`
	Username     string  `json:"username"`
	Changed      string  `json:"changed,omitempty"`
	ChangedBy    string  `json:"changedBy,omitempty"`
	Entries      []Child `json:"entry"`
}

// PodcastStatus is the download state of a channel or episode.
type PodcastStatus string

const (
	PodcastNew         PodcastStatus = "new"
	PodcastDownloading PodcastStatus = "downloading"
	PodcastCompleted   PodcastStatus = "completed"
	PodcastError       PodcastStatus = "error"
	PodcastDeleted     PodcastStatus = "deleted"
	PodcastSkipped     PodcastStatus = "skipped"
)

// PodcastChannel is a subscribed feed. Episodes is empty unless requested.
type PodcastChannel struct {
	ID               string           `json:"id"`
	URL              string           `json:"url"`
	Title            string           `json:"title,omitempty"`
	Description      string           `json:"description,omitempty"`
	CoverArt         string           `json:"coverArt,omitempty"`
	OriginalImageURL string           `json:"originalImageUrl,omitempty"`
	Status           PodcastStatus    `json:"status"`
	ErrorMessage     string           `json:"errorMessage,omitempty"`
	Episodes         []PodcastEpisode `json:"episode,omitempty"`
}

// PodcastEpisode is a Child with feed metadata. StreamID is set once the
// episode has been downloaded.
type PodcastEpisode struct {
	Child
	StreamID    string        `json:"streamId,omitempty"`
	ChannelID   string        `json:"channelId"`
	Description string        `json:"description,omitempty"`
	Status      PodcastStatus `json:"status"`
	PublishDate string        `json:"publishDate,omitempty"`
}

// User is an account and its permissions.
type User struct {
	Username            string  `json:"username"`
	Email               string  `json:"email,omitempty"`
	ScrobblingEnabled   bool    `json:"scrobblingEnabled"`
	MaxBitRate          int     `json:"maxBitRate,omitempty"`
	AdminRole           bool    `json:"adminRole"`
	SettingsRole        bool    `json:"settingsRole"`
	DownloadRole        bool    `json:"downloadRole"`
	UploadRole          bool    `json:"uploadRole"`
	PlaylistRole        bool    `json:"playlistRole"`
	CoverArtRole        bool    `json:"coverArtRole"`
	CommentRole         bool    `json:"commentRole"`
	PodcastRole         bool    `json:"podcastRole"`
	StreamRole          bool    `json:"streamRole"`
	JukeboxRole         bool    `json:"jukeboxRole"`
	ShareRole           bool    `json:"shareRole"`
	VideoConversionRole bool    `json:"videoConversionRole"`
	AvatarLastChanged   string  `json:"avatarLastChanged,omitempty"`
	Folders             []int64 `json:"folder,omitempty"`
}

// Share is a public link to a set of media.
type Share struct {
	ID          string  `json:"id"`
	URL         string  `json:"url"`
	Description string  `json:"description,omitempty"`
	Username    string  `json:"username"`
	Created     string  `json:"created"`
	Expires     string  `json:"expires,omitempty"`
	LastVisited string  `json:"lastVisited,omitempty"`
	VisitCount  int64   `json:"visitCount"`
	Entries     []Child `json:"entry,omitempty"`
}

// InternetRadioStation is a stream the server knows about but does not host.
type InternetRadioStation struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	StreamURL   string `json:"streamUrl"`
	HomePageURL string `json:"homePageUrl,omitempty"`
}

// ChatMessage is one line of the server chat. Time is milliseconds since
// the epoch.
type ChatMessage struct {
	Username string `json:"username"`
	Time     int64  `json:"time"`
	Message  string `json:"message"`
}

// JukeboxStatus is the state of server-side playback. Gain is 0.0-1.0 and
// Position is seconds into the current entry.
type JukeboxStatus struct {
	CurrentIndex int     `json:"currentIndex"`
	Playing      bool    `json:"playing"`
	Gain         float64 `json:"gain"`
	Position     int64   `json:"position,omitempty"`
}

// JukeboxPlaylist is the jukebox status plus its queue.
type JukeboxPlaylist struct {
	JukeboxStatus
	Entries []Child `json:"entry"`
}
