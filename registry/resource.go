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
	"github.com/stockparfait/iterator"

	"github.com/virtualobs/voregistry/votable"
)

// Resource is a single row of a registry search result.
type Resource struct {
	ShortName string
	IVOID     string
}

// Resources extracts typed rows from a decoded search result. Columns absent
// from the table's schema are left empty, which keeps the extraction robust
// when a caller selects a different column set.
func Resources(t *votable.Table) []Resource {
	fields := t.Schema.MapFields()
	short, hasShort := fields["short_name"]
	ivoid, hasIVOID := fields["ivoid"]
	rows := iterator.FromSlice(t.Rows)
	return iterator.Reduce[[]string, []Resource](rows, []Resource{},
		func(row []string, res []Resource) []Resource {
			var r Resource
			if hasShort {
				r.ShortName = row[short]
			}
			if hasIVOID {
				r.IVOID = row[ivoid]
			}
			return append(res, r)
		})
}
