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
	"encoding/xml"

	"github.com/stockparfait/errors"
	"github.com/stockparfait/fetch"
)

// Availability is the service state reported by the VOSI availability
// endpoint of the TAP service.
type Availability struct {
	XMLName   xml.Name `xml:"availability"`
	Available bool     `xml:"available"`
	Note      string   `xml:"note"`
}

// FetchAvailability queries the VOSI availability endpoint. A service may
// report itself unavailable (e.g. during maintenance) with a human-readable
// note.
func FetchAvailability(ctx context.Context) (*Availability, error) {
	client := GetClient(ctx)
	if client == nil {
		return nil, errors.Reason("no client in context")
	}
	uri := client.baseURL + "/availability"
	resp, err := fetch.GetRetry(ctx, uri, nil, nil)
	if err != nil {
		return nil, errors.Annotate(err, "failed to fetch %s", uri)
	}
	defer resp.Body.Close()
	var a Availability
	if err := xml.NewDecoder(resp.Body).Decode(&a); err != nil {
		return nil, errors.Annotate(err, "failed to parse availability from %s", uri)
	}
	return &a, nil
}
