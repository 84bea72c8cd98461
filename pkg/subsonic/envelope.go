package subsonic

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

const envelopeKey = "subsonic-response"

const statusOK = "ok"

// Envelope is the decoded subsonic-response wrapper.
type Envelope struct {
	Status        string
	Version       string
	ServerType    string
	ServerVersion string
	OpenSubsonic  bool
	Error         *APIError
	Payload       Payload
}

// envelopeFields are stripped from the payload on success.
var envelopeFields = map[string]struct{}{
	"status":        {},
	"version":       {},
	"type":          {},
	"serverVersion": {},
	"openSubsonic":  {},
	"error":         {},
}

// OK reports whether the server signalled success.
func (e *Envelope) OK() bool {
	return e != nil && e.Status == statusOK
}

// Result returns the payload on success. A failed envelope becomes an
// *APIError; a failure without an error object is reported as ErrGeneric.
func (e *Envelope) Result() (Payload, error) {
	if e.OK() {
		return e.Payload, nil
	}
	if e.Error != nil {
		return nil, e.Error
	}
	return nil, &APIError{Code: ErrGeneric, Message: "status failed but no error object in response"}
}

// DecodeEnvelope parses a raw response body. Only malformed bodies return an
// error here; server-reported failures are surfaced by Result.
func DecodeEnvelope(raw []byte) (*Envelope, error) {
	return decodeEnvelope("", raw)
}

func decodeEnvelope(endpoint string, raw []byte) (*Envelope, error) {
	fail := func(err error) (*Envelope, error) {
		return nil, &ParseError{Endpoint: endpoint, Raw: string(raw), Err: err}
	}

	var outer map[string]json.RawMessage
	if err := json.Unmarshal(raw, &outer); err != nil {
		return fail(err)
	}
	inner, ok := outer[envelopeKey]
	if !ok || isNull(inner) {
		return fail(fmt.Errorf("missing %q key", envelopeKey))
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(inner, &fields); err != nil {
		return fail(fmt.Errorf("%s is not an object: %w", envelopeKey, err))
	}
	if fields == nil {
		return fail(fmt.Errorf("%s is not an object", envelopeKey))
	}

	env := &Envelope{}
	rawStatus, ok := fields["status"]
	if !ok {
		return fail(errors.New("missing status"))
	}
	if err := json.Unmarshal(rawStatus, &env.Status); err != nil {
		return fail(fmt.Errorf("status: %w", err))
	}
	// Informational fields are best effort; a server with odd types here is
	// still usable.
	_ = unmarshalIfPresent(fields, "version", &env.Version)
	_ = unmarshalIfPresent(fields, "type", &env.ServerType)
	_ = unmarshalIfPresent(fields, "serverVersion", &env.ServerVersion)
	_ = unmarshalIfPresent(fields, "openSubsonic", &env.OpenSubsonic)

	if env.Status != statusOK {
		if rawErr, ok := fields["error"]; ok && !isNull(rawErr) {
			var apiErr APIError
			if err := json.Unmarshal(rawErr, &apiErr); err != nil {
				return fail(fmt.Errorf("error object: %w", err))
			}
			env.Error = &apiErr
		}
		return env, nil
	}

	payload := make(Payload, len(fields))
	for key, value := range fields {
		if _, skip := envelopeFields[key]; skip {
			continue
		}
		payload[key] = value
	}
	env.Payload = payload
	return env, nil
}

func unmarshalIfPresent(fields map[string]json.RawMessage, key string, dst any) error {
	raw, ok := fields[key]
	if !ok || isNull(raw) {
		return nil
	}
	return json.Unmarshal(raw, dst)
}

func isNull(raw json.RawMessage) bool {
	return len(bytes.TrimSpace(raw)) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// Payload is the endpoint-specific remainder of a successful envelope.
type Payload map[string]json.RawMessage

// Has reports whether field is present and not null.
func (p Payload) Has(field string) bool {
	raw, ok := p[field]
	return ok && !isNull(raw)
}

// Decode unmarshals a mandatory field into dst.
func (p Payload) Decode(field string, dst any) error {
	if !p.Has(field) {
		return &MissingFieldError{Field: field}
	}
	if err := json.Unmarshal(p[field], dst); err != nil {
		return &ParseError{Raw: string(p[field]), Err: fmt.Errorf("decode %s: %w", field, err)}
	}
	return nil
}

// DecodeOptional unmarshals field into dst when present and reports whether it was.
func (p Payload) DecodeOptional(field string, dst any) (bool, error) {
	if !p.Has(field) {
		return false, nil
	}
	if err := p.Decode(field, dst); err != nil {
		return false, err
	}
	return true, nil
}

// DecodeList unmarshals a list nested one level down, such as
// musicFolders.musicFolder. Absence at either level yields an empty slice.
// Some servers send a single object where a one-element list is expected;
// that is accepted too.
func DecodeList[T any](p Payload, field, inner string) ([]T, error) {
	out := []T{}
	if !p.Has(field) {
		return out, nil
	}
	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal(p[field], &wrapper); err != nil {
		return nil, &ParseError{Raw: string(p[field]), Err: fmt.Errorf("decode %s: %w", field, err)}
	}
	raw, ok := wrapper[inner]
	if !ok || isNull(raw) {
		return out, nil
	}
	return decodeSlice[T](raw, field+"."+inner)
}

func decodeSlice[T any](raw json.RawMessage, label string) ([]T, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var single T
		if err := json.Unmarshal(trimmed, &single); err != nil {
			return nil, &ParseError{Raw: string(raw), Err: fmt.Errorf("decode %s: %w", label, err)}
		}
		return []T{single}, nil
	}
	out := []T{}
	if err := json.Unmarshal(trimmed, &out); err != nil {
		return nil, &ParseError{Raw: string(raw), Err: fmt.Errorf("decode %s: %w", label, err)}
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}
