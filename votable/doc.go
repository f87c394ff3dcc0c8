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

// Package votable decodes VOTable documents, the self-describing XML tabular
// format returned by virtual-observatory services.
//
// The format specification is at https://www.ivoa.net/documents/VOTable/ .
//
// Each table carries its own schema, the ordered list of column names and
// types declared by FIELD elements. Read extracts the first TABLE found in
// the document, which is how TAP services return query results: a single
// result table, optionally preceded by INFO elements reporting the query
// status.
//
// Cell values of fixed-size character columns arrive padded; the decoder
// strips the padding so that callers always see plain text.
package votable
