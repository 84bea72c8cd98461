package subsonic

import (
	"context"
	"errors"
	"strconv"
	"time"
)

// GetChatMessages returns chat lines newer than since; a zero since returns
// everything the server keeps.
func (c *Client) GetChatMessages(ctx context.Context, since time.Time) ([]ChatMessage, error) {
	var p params
	if !since.IsZero() {
		p.add("since", strconv.FormatInt(since.UnixMilli(), 10))
	}
	return fetchList[ChatMessage](ctx, c, "getChatMessages", p, "chatMessages", "chatMessage")
}

// AddChatMessage posts one line to the server chat.
func (c *Client) AddChatMessage(ctx context.Context, message string) error {
	if message == "" {
		return errors.New("add chat message: empty message")
	}
	return c.exec(ctx, "addChatMessage", []Param{P("message", message)})
}
