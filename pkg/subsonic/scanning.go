package subsonic

import "context"

// GetScanStatus reports whether a library scan is running and how many
// files it has seen.
func (c *Client) GetScanStatus(ctx context.Context) (ScanStatus, error) {
	return fetch[ScanStatus](ctx, c, "getScanStatus", nil, "scanStatus")
}

// StartScan asks the server to rescan its library and returns the status
// right after the request.
func (c *Client) StartScan(ctx context.Context) (ScanStatus, error) {
	return fetch[ScanStatus](ctx, c, "startScan", nil, "scanStatus")
}
