package subsonic

import (
	"net/url"
	"strconv"
	"strings"
)

// Param is one query parameter. Order is preserved on the wire and repeated
// names are legal, which is how list-valued arguments are sent.
type Param struct {
	Name  string
	Value string
}

// P is shorthand for a Param.
func P(name, value string) Param {
	return Param{Name: name, Value: value}
}

// params accumulates optional arguments in call order.
type params []Param

func (p *params) add(name, value string) {
	*p = append(*p, Param{Name: name, Value: value})
}

func (p *params) str(name, value string) {
	if value != "" {
		p.add(name, value)
	}
}

func (p *params) intPtr(name string, value *int) {
	if value != nil {
		p.add(name, strconv.Itoa(*value))
	}
}

func (p *params) positive(name string, value int) {
	if value > 0 {
		p.add(name, strconv.Itoa(value))
	}
}

func (p *params) int64Ptr(name string, value *int64) {
	if value != nil {
		p.add(name, strconv.FormatInt(*value, 10))
	}
}

func (p *params) boolPtr(name string, value *bool) {
	if value != nil {
		p.add(name, strconv.FormatBool(*value))
	}
}

func (p *params) each(name string, values []string) {
	for _, v := range values {
		p.add(name, v)
	}
}

// requestIdentity is the fixed part of every query string.
type requestIdentity struct {
	username   string
	auth       Auth
	apiVersion string
	clientName string
}

// buildURL appends rest/<endpoint> to the base path and writes the query in
// the order u, auth, v, c, f, extras. The base URL is never modified.
func buildURL(base *url.URL, id requestIdentity, endpoint string, extra []Param) *url.URL {
	u := *base
	escaped := base.EscapedPath()
	if !strings.HasSuffix(escaped, "/") {
		escaped += "/"
	}
	escaped += "rest/" + url.PathEscape(endpoint)
	if path, err := url.PathUnescape(escaped); err == nil {
		u.Path = path
		u.RawPath = escaped
	} else {
		u.Path = strings.TrimSuffix(base.Path, "/") + "/rest/" + endpoint
		u.RawPath = ""
	}
	u.Fragment = ""
	u.RawFragment = ""

	all := make([]Param, 0, 6+len(extra))
	all = append(all, Param{Name: "u", Value: id.username})
	all = append(all, id.auth.Sign()...)
	all = append(all,
		Param{Name: "v", Value: id.apiVersion},
		Param{Name: "c", Value: id.clientName},
		Param{Name: "f", Value: "json"},
	)
	all = append(all, extra...)
	u.RawQuery = encodeQuery(all)
	return &u
}

// encodeQuery is url.Values.Encode without the key sort.
func encodeQuery(list []Param) string {
	var b strings.Builder
	for i, p := range list {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.Name))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.Value))
	}
	return b.String()
}

// redactedURL hides credential parameters for logging.
func redactedURL(u *url.URL) string {
	if u == nil {
		return ""
	}
	clean := *u
	parts := strings.Split(clean.RawQuery, "&")
	for i, part := range parts {
		name, _, _ := strings.Cut(part, "=")
		switch name {
		case "t", "s", "p", "password":
			parts[i] = name + "=REDACTED"
		}
	}
	clean.RawQuery = strings.Join(parts, "&")
	return clean.String()
}
