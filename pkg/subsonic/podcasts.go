package subsonic

import (
	"context"
	"errors"
	"strconv"
	"strings"
)

// GetPodcasts lists subscribed channels. With includeEpisodes each channel
// carries its episodes; a non-empty id limits the result to that channel.
func (c *Client) GetPodcasts(ctx context.Context, includeEpisodes bool, id string) ([]PodcastChannel, error) {
	p := params{P("includeEpisodes", strconv.FormatBool(includeEpisodes))}
	p.str("id", id)
	return fetchList[PodcastChannel](ctx, c, "getPodcasts", p, "podcasts", "channel")
}

// GetNewestPodcasts returns the most recently published episodes across
// all channels. count <= 0 uses the server default.
func (c *Client) GetNewestPodcasts(ctx context.Context, count int) ([]PodcastEpisode, error) {
	var p params
	p.positive("count", count)
	return fetchList[PodcastEpisode](ctx, c, "getNewestPodcasts", p, "newestPodcasts", "episode")
}

// GetPodcastEpisode returns one episode.
func (c *Client) GetPodcastEpisode(ctx context.Context, id string) (PodcastEpisode, error) {
	return fetch[PodcastEpisode](ctx, c, "getPodcastEpisode", []Param{P("id", id)}, "podcastEpisode")
}

// RefreshPodcasts asks the server to check every channel for new episodes.
func (c *Client) RefreshPodcasts(ctx context.Context) error {
	return c.exec(ctx, "refreshPodcasts", nil)
}

// CreatePodcastChannel subscribes to the feed at feedURL.
func (c *Client) CreatePodcastChannel(ctx context.Context, feedURL string) error {
	if strings.TrimSpace(feedURL) == "" {
		return errors.New("create podcast channel: feed url required")
	}
	return c.exec(ctx, "createPodcastChannel", []Param{P("url", feedURL)})
}

// DeletePodcastChannel unsubscribes and removes downloaded episodes.
func (c *Client) DeletePodcastChannel(ctx context.Context, id string) error {
	return c.exec(ctx, "deletePodcastChannel", []Param{P("id", id)})
}

// DeletePodcastEpisode removes one downloaded episode.
func (c *Client) DeletePodcastEpisode(ctx context.Context, id string) error {
	return c.exec(ctx, "deletePodcastEpisode", []Param{P("id", id)})
}

// DownloadPodcastEpisode asks the server to fetch an episode. The download
// runs on the server; poll GetPodcastEpisode for its status.
func (c *Client) DownloadPodcastEpisode(ctx context.Context, id string) error {
	return c.exec(ctx, "downloadPodcastEpisode", []Param{P("id", id)})
}
