package subsonic

import (
	"context"
	"strconv"
)

// GetBookmarks lists the user's bookmarks.
func (c *Client) GetBookmarks(ctx context.Context) ([]Bookmark, error) {
	return fetchList[Bookmark](ctx, c, "getBookmarks", nil, "bookmarks", "bookmark")
}

// CreateBookmark stores a position in milliseconds for a media file.
func (c *Client) CreateBookmark(ctx context.Context, id string, positionMillis int64, comment string) error {
	p := params{P("id", id), P("position", strconv.FormatInt(positionMillis, 10))}
	p.str("comment", comment)
	return c.exec(ctx, "createBookmark", p)
}

// DeleteBookmark removes the bookmark on a media file.
func (c *Client) DeleteBookmark(ctx context.Context, id string) error {
	return c.exec(ctx, "deleteBookmark", []Param{P("id", id)})
}

// GetPlayQueue returns the saved play queue. Servers answer with no
// playQueue when none was saved; that yields a zero PlayQueue.
func (c *Client) GetPlayQueue(ctx context.Context) (PlayQueue, error) {
	out, err := fetchOptional[PlayQueue](ctx, c, "getPlayQueue", nil, "playQueue")
	if err != nil {
		return PlayQueue{}, err
	}
	if out.Entries == nil {
		out.Entries = []Child{}
	}
	return out, nil
}

// SavePlayQueue replaces the saved queue. An empty ids list clears it.
func (c *Client) SavePlayQueue(ctx context.Context, ids []string, current string, positionMillis int64) error {
	var p params
	p.each("id", ids)
	p.str("current", current)
	if positionMillis > 0 {
		p.add("position", strconv.FormatInt(positionMillis, 10))
	}
	return c.exec(ctx, "savePlayQueue", p)
}

// GetPlayQueueByIndex is GetPlayQueue with the current entry given as a
// position in the queue. It needs the OpenSubsonic indexBasedQueue
// extension.
func (c *Client) GetPlayQueueByIndex(ctx context.Context) (PlayQueueByIndex, error) {
	out, err := fetchOptional[PlayQueueByIndex](ctx, c, "getPlayQueueByIndex", nil, "playQueueByIndex")
	if err != nil {
		return PlayQueueByIndex{}, err
	}
	if out.Entries == nil {
		out.Entries = []Child{}
	}
	return out, nil
}

// SavePlayQueueByIndex replaces the saved queue. currentIndex is omitted
// when negative or when ids is empty.
func (c *Client) SavePlayQueueByIndex(ctx context.Context, ids []string, currentIndex int, positionMillis int64) error {
	var p params
	p.each("id", ids)
	if currentIndex >= 0 && len(ids) > 0 {
		p.add("currentIndex", strconv.Itoa(currentIndex))
	}
	if positionMillis > 0 {
		p.add("position", strconv.FormatInt(positionMillis, 10))
	}
	return c.exec(ctx, "savePlayQueueByIndex", p)
}
