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

// Package registry queries a virtual-observatory resource registry through
// its TAP (Table Access Protocol) interface.
//
// The relational registry schema is described by the IVOA RegTAP standard,
// https://www.ivoa.net/documents/RegTAP/ . A Search assembles an ADQL
// statement over the rr.capability and rr.resource tables from a small set
// of optional filters, submits it with a single synchronous POST to the
// service's /sync endpoint, and decodes the VOTable response into a
// votable.Table.
//
// Each call is independent: there is no caching, paging or retrying, and no
// state is shared between calls, so searches may be issued concurrently.
package registry
