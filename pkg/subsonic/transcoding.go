package subsonic

import (
	"context"
	"net/url"
)

// StreamDetails describes one side of a transcode decision.
type StreamDetails struct {
	Protocol        string `json:"protocol"`
	Container       string `json:"container"`
	Codec           string `json:"codec"`
	AudioChannels   int    `json:"audioChannels,omitempty"`
	AudioBitrate    int    `json:"audioBitrate,omitempty"`
	AudioProfile    string `json:"audioProfile,omitempty"`
	AudioSamplerate int    `json:"audioSamplerate,omitempty"`
	AudioBitdepth   int    `json:"audioBitdepth,omitempty"`
}

// TranscodeDecision is getTranscodeDecision's result. TranscodeParams is
// opaque and is passed back unchanged to getTranscodeStream.
type TranscodeDecision struct {
	CanDirectPlay   bool           `json:"canDirectPlay"`
	CanTranscode    bool           `json:"canTranscode"`
	TranscodeReason []string       `json:"transcodeReason,omitempty"`
	ErrorReason     string         `json:"errorReason,omitempty"`
	TranscodeParams string         `json:"transcodeParams,omitempty"`
	SourceStream    *StreamDetails `json:"sourceStream,omitempty"`
	TranscodeStream *StreamDetails `json:"transcodeStream,omitempty"`
}

// ClientInfo describes playback capabilities, sent as the JSON body of
// getTranscodeDecision.
type ClientInfo struct {
	Name                       string               `json:"name"`
	Platform                   string               `json:"platform"`
	MaxAudioBitrate            int                  `json:"maxAudioBitrate,omitempty"`
	MaxTranscodingAudioBitrate int                  `json:"maxTranscodingAudioBitrate,omitempty"`
	DirectPlayProfiles         []DirectPlayProfile  `json:"directPlayProfiles"`
	TranscodingProfiles        []TranscodingProfile `json:"transcodingProfiles"`
	CodecProfiles              []CodecProfile       `json:"codecProfiles"`
}

// DirectPlayProfile lists formats the client plays without conversion.
type DirectPlayProfile struct {
	Containers       []string `json:"containers"`
	AudioCodecs      []string `json:"audioCodecs"`
	Protocols        []string `json:"protocols"`
	MaxAudioChannels int      `json:"maxAudioChannels,omitempty"`
}

// TranscodingProfile names a format the client accepts from the transcoder.
type TranscodingProfile struct {
	Container        string `json:"container"`
	AudioCodec       string `json:"audioCodec"`
	Protocol         string `json:"protocol"`
	MaxAudioChannels int    `json:"maxAudioChannels,omitempty"`
}

// CodecProfile restricts one codec.
type CodecProfile struct {
	Type        string       `json:"type"`
	Name        string       `json:"name"`
	Limitations []Limitation `json:"limitations"`
}

// Limitation is a single codec constraint, such as a maximum sample rate.
type Limitation struct {
	Name       string   `json:"name"`
	Comparison string   `json:"comparison"`
	Values     []string `json:"values"`
	Required   bool     `json:"required"`
}

func transcodeParams(id string, maxBitRate int, format string) params {
	p := params{P("id", id)}
	p.positive("maxBitRate", maxBitRate)
	p.str("format", format)
	return p
}

// GetTranscodeDecision asks whether id can be direct-played or must be
// transcoded. With info it POSTs the capabilities as JSON; without it the
// call is a plain GET.
func (c *Client) GetTranscodeDecision(ctx context.Context, id string, maxBitRate int, format string, info *ClientInfo) (TranscodeDecision, error) {
	p := transcodeParams(id, maxBitRate, format)
	var (
		payload Payload
		err     error
	)
	if info != nil {
		payload, err = c.postJSON(ctx, "getTranscodeDecision", p, info)
	} else {
		payload, err = c.get(ctx, "getTranscodeDecision", p)
	}
	if err != nil {
		return TranscodeDecision{}, err
	}
	var out TranscodeDecision
	if err := payload.Decode("transcodeDecision", &out); err != nil {
		return TranscodeDecision{}, withEndpoint("getTranscodeDecision", err)
	}
	return out, nil
}

// GetTranscodeStream fetches the transcoded media bytes.
func (c *Client) GetTranscodeStream(ctx context.Context, id string, maxBitRate int, format string) ([]byte, error) {
	return c.getBytes(ctx, "getTranscodeStream", transcodeParams(id, maxBitRate, format))
}

// TranscodeStreamURL returns a signed getTranscodeStream link.
func (c *Client) TranscodeStreamURL(id string, maxBitRate int, format string) *url.URL {
	return c.URL("getTranscodeStream", transcodeParams(id, maxBitRate, format)...)
}
