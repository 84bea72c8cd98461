package subsonic

import (
	"mime"
	"strings"
)

// isJSONContentType matches application/json and text/json, ignoring case
// and parameters. Unparseable headers fall back to a substring check.
func isJSONContentType(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		lower := strings.ToLower(contentType)
		return strings.Contains(lower, "application/json") || strings.Contains(lower, "text/json")
	}
	return mediaType == "application/json" || mediaType == "text/json"
}

// resolveBinary returns body unchanged unless the server answered a media
// endpoint with JSON. A JSON failure envelope becomes its *APIError; a JSON
// success is a *ParseError wrapping ErrUnexpectedJSON.
func resolveBinary(endpoint, contentType string, body []byte) ([]byte, error) {
	if !isJSONContentType(contentType) {
		return body, nil
	}
	env, err := decodeEnvelope(endpoint, body)
	if err != nil {
		return nil, err
	}
	if _, err := env.Result(); err != nil {
		return nil, err
	}
	return nil, &ParseError{Endpoint: endpoint, Raw: string(body), Err: ErrUnexpectedJSON}
}
