package ui

import "time"

// Terminal width below which the header and tables drop secondary columns.
const layoutCompactWidth = 100

// chromeHeight is the header plus command bar.
const chromeHeight = 2

const (
	defaultUIInterval = time.Second
	browseTimeout     = 20 * time.Second
	albumListSize     = 100
)
