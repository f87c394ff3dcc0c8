// Copyright 2026 Virtual Observatory Tools

// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at

//     http://www.apache.org/licenses/LICENSE-2.0

// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package registry

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/stockparfait/errors"
	"github.com/stockparfait/logging"

	"github.com/virtualobs/voregistry/adql"
	"github.com/virtualobs/voregistry/votable"
)

type contextKey int

const (
	clientContextKey contextKey = iota
)

// URL is the default base URL of the registry TAP service. It may be
// overwritten in tests before creating a new client.
var URL = "https://vao.stsci.edu/RegTAP/TapService.aspx"

// Client for querying the registry.
type Client struct {
	baseURL    string // the base URL of the TAP service
	httpClient *http.Client
}

// newClient creates a new client.
func newClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: http.DefaultClient,
	}
}

// GetClient extracts the Client from the context, if any.
func GetClient(ctx context.Context) *Client {
	c, ok := ctx.Value(clientContextKey).(*Client)
	if !ok {
		return nil
	}
	return c
}

// UseClient creates a new client for the current URL and injects it into the
// context.
func UseClient(ctx context.Context) context.Context {
	return context.WithValue(ctx, clientContextKey, newClient(URL))
}

// Canonical service type values of the registry's cap_type column.
const (
	ServiceImage    = "simpleimageaccess"
	ServiceSpectral = "simplespectralaccess"
	ServiceCone     = "simpleconesearch"
)

// CanonicalServiceType maps a free-form service type to its canonical
// registry value, matching case-insensitively on a substring: "image",
// "spectr" or "cone". Unrecognized values, including the empty string, pass
// through unchanged.
func CanonicalServiceType(serviceType string) string {
	lower := strings.ToLower(serviceType)
	switch {
	case strings.Contains(lower, "image"):
		return ServiceImage
	case strings.Contains(lower, "spectr"):
		return ServiceSpectral
	case strings.Contains(lower, "cone"):
		return ServiceCone
	}
	return serviceType
}

// Search is a builder for a registry search. The zero value selects every
// registered capability.
type Search struct {
	serviceType string
	keyword     string
	waveband    string
	source      string
	orderBy     string
	logic       string
}

// NewSearch creates a new empty search.
func NewSearch() *Search {
	return &Search{}
}

// Copy creates a copy of the search. It is primarily used in its builder
// methods.
func (s *Search) Copy() *Search {
	s2 := *s
	return &s2
}

// ServiceType restricts the search to services of the given type. The value
// is canonicalized with CanonicalServiceType and matched exactly. This and
// other builder methods always create a copy of the search, leaving the
// original intact.
func (s *Search) ServiceType(serviceType string) *Search {
	s2 := s.Copy()
	s2.serviceType = serviceType
	return s2
}

// Keyword is accepted for compatibility with existing callers, but currently
// does not narrow the query.
func (s *Search) Keyword(keyword string) *Search {
	s2 := s.Copy()
	s2.keyword = keyword
	return s2
}

// Waveband is accepted for compatibility with existing callers, but currently
// does not narrow the query.
func (s *Search) Waveband(waveband string) *Search {
	s2 := s.Copy()
	s2.waveband = waveband
	return s2
}

// Source restricts the search to resources whose IVOID contains the given
// substring.
func (s *Search) Source(source string) *Search {
	s2 := s.Copy()
	s2.source = source
	return s2
}

// OrderBy orders the results by the given column.
func (s *Search) OrderBy(column string) *Search {
	s2 := s.Copy()
	s2.orderBy = column
	return s2
}

// Logic sets the operator joining the search conditions, verbatim. The
// default is "and".
func (s *Search) Logic(op string) *Search {
	s2 := s.Copy()
	s2.logic = op
	return s2
}

// ADQL renders the search as an ADQL statement over the registry capability
// and resource tables.
func (s *Search) ADQL() string {
	q := adql.Select("short_name", "ivoid").
		From("rr.capability").
		NaturalJoin("rr.resource")
	if s.logic != "" {
		q = q.Logic(s.logic)
	}
	if s.serviceType != "" {
		q = q.Equal("cap_type", CanonicalServiceType(s.serviceType))
	}
	if s.source != "" {
		q = q.Contains("ivoid", s.source)
	}
	if s.orderBy != "" {
		q = q.OrderBy(s.orderBy)
	}
	return q.String()
}

// Do executes the search: a single synchronous TAP query whose VOTable
// response is decoded into a table. Transport failures and non-success HTTP
// statuses are returned as errors, without retrying.
func (s *Search) Do(ctx context.Context) (*votable.Table, error) {
	client := GetClient(ctx)
	if client == nil {
		return nil, errors.Reason("Search.Do: no client in context")
	}
	query := s.ADQL()
	form := url.Values{
		"request": []string{"doQuery"},
		"lang":    []string{"ADQL"},
		"query":   []string{query},
	}
	uri := client.baseURL + "/sync"
	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, uri, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, errors.Annotate(err, "Search.Do: failed to create request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := client.httpClient.Do(req)
	if err != nil {
		return nil, errors.Annotate(err, "Search.Do: failed to POST to %s", uri)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return nil, errors.Reason("Search.Do: %s returned %s", uri, resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Annotate(err, "Search.Do: failed to read response body")
	}
	t, err := votable.ReadBytes(body)
	if err != nil {
		return nil, errors.Annotate(err, "Search.Do: failed to decode response")
	}
	logging.Infof(ctx, "registry: fetched %d rows for query: %s",
		len(t.Rows), query)
	return t, nil
}
