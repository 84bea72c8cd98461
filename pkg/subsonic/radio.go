package subsonic

import (
	"context"
	"errors"
)

// GetInternetRadioStations lists the configured radio streams.
func (c *Client) GetInternetRadioStations(ctx context.Context) ([]InternetRadioStation, error) {
	return fetchList[InternetRadioStation](ctx, c, "getInternetRadioStations", nil, "internetRadioStations", "internetRadioStation")
}

func radioParams(streamURL, name, homePageURL string) (params, error) {
	if streamURL == "" || name == "" {
		return nil, errors.New("internet radio station: stream url and name required")
	}
	p := params{P("streamUrl", streamURL), P("name", name)}
	p.str("homepageUrl", homePageURL)
	return p, nil
}

// CreateInternetRadioStation adds a station. homePageURL is optional.
func (c *Client) CreateInternetRadioStation(ctx context.Context, streamURL, name, homePageURL string) error {
	p, err := radioParams(streamURL, name, homePageURL)
	if err != nil {
		return err
	}
	return c.exec(ctx, "createInternetRadioStation", p)
}

// UpdateInternetRadioStation replaces every field of a station.
func (c *Client) UpdateInternetRadioStation(ctx context.Context, id, streamURL, name, homePageURL string) error {
	p, err := radioParams(streamURL, name, homePageURL)
	if err != nil {
		return err
	}
	return c.exec(ctx, "updateInternetRadioStation", append(params{P("id", id)}, p...))
}

// DeleteInternetRadioStation removes a station.
func (c *Client) DeleteInternetRadioStation(ctx context.Context, id string) error {
	return c.exec(ctx, "deleteInternetRadioStation", []Param{P("id", id)})
}
