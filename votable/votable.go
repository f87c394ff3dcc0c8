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

package votable

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/stockparfait/errors"
)

// Field is the schema definition of a single table column, as declared by a
// FIELD element.
type Field struct {
	Name      string `xml:"name,attr"`
	Datatype  string `xml:"datatype,attr"`
	Arraysize string `xml:"arraysize,attr"`
	Unit      string `xml:"unit,attr"`
	UCD       string `xml:"ucd,attr"`
}

// Schema is the ordered list of column definitions of a table.
type Schema []Field

// Equal tests two schemas for exact equality, including the field ordering.
func (s Schema) Equal(s2 Schema) bool {
	if len(s) != len(s2) {
		return false
	}
	for i, f := range s {
		if f != s2[i] {
			return false
		}
	}
	return true
}

// Names lists the column names in schema order.
func (s Schema) Names() []string {
	names := make([]string, len(s))
	for i, f := range s {
		names[i] = f.Name
	}
	return names
}

// MapFields creates a map of {column name -> column index} in the schema.
func (s Schema) MapFields() map[string]int {
	res := make(map[string]int)
	for i, f := range s {
		res[f.Name] = i
	}
	return res
}

// String prints a string representation of the schema.
func (s Schema) String() string {
	fields := []string{}
	for _, f := range s {
		fields = append(fields, fmt.Sprintf("%s: %s", f.Name, f.Datatype))
	}
	return "{" + strings.Join(fields, ", ") + "}"
}

// Table holds the decoded data of a single VOTable TABLE element: the schema
// and the rows, in document order. All cell values are plain text.
type Table struct {
	Schema Schema
	Rows   [][]string
}

// Column returns all values of the named column, or an error if the column is
// not in the schema.
func (t *Table) Column(name string) ([]string, error) {
	i, ok := t.Schema.MapFields()[name]
	if !ok {
		return nil, errors.Reason("no column '%s' in schema %s", name, t.Schema)
	}
	values := make([]string, len(t.Rows))
	for j, r := range t.Rows {
		values[j] = r[i]
	}
	return values, nil
}

// XML scaffolding for the decoder. Element names match by local name, so both
// plain and namespace-prefixed documents decode the same way.
type document struct {
	XMLName   xml.Name   `xml:"VOTABLE"`
	Resources []resource `xml:"RESOURCE"`
}

type resource struct {
	Infos     []info     `xml:"INFO"`
	Tables    []xmlTable `xml:"TABLE"`
	Resources []resource `xml:"RESOURCE"` // resources may nest
}

type info struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value,attr"`
	Text  string `xml:",chardata"`
}

type xmlTable struct {
	Fields []Field  `xml:"FIELD"`
	Rows   []xmlRow `xml:"DATA>TABLEDATA>TR"`
}

type xmlRow struct {
	Cells []string `xml:"TD"`
}

// queryError finds a TAP QUERY_STATUS=ERROR report among the INFO elements.
func queryError(resources []resource) error {
	for _, r := range resources {
		for _, i := range r.Infos {
			if i.Name == "QUERY_STATUS" && i.Value == "ERROR" {
				msg := strings.TrimSpace(i.Text)
				if msg == "" {
					msg = "(no detail provided)"
				}
				return errors.Reason("service reported a query error: %s", msg)
			}
		}
		if err := queryError(r.Resources); err != nil {
			return err
		}
	}
	return nil
}

// firstTable finds the first TABLE element in document order, descending into
// nested resources.
func firstTable(resources []resource) *xmlTable {
	for _, r := range resources {
		if len(r.Tables) > 0 {
			return &r.Tables[0]
		}
		if t := firstTable(r.Resources); t != nil {
			return t
		}
	}
	return nil
}

// normalizeCell strips the padding of fixed-size character values: trailing
// NULs always, trailing spaces for fixed-size char columns.
func normalizeCell(v string, f Field) string {
	v = strings.TrimRight(v, "\x00")
	fixedSize := f.Arraysize != "" && !strings.Contains(f.Arraysize, "*")
	if fixedSize && (f.Datatype == "char" || f.Datatype == "unicodeChar") {
		v = strings.TrimRight(v, " ")
	}
	return v
}

// Read decodes a VOTable document and returns its first table. It returns an
// error if the document is not well-formed XML, reports a query error, or
// contains no table.
func Read(r io.Reader) (*Table, error) {
	var doc document
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Annotate(err, "failed to parse VOTable document")
	}
	if err := queryError(doc.Resources); err != nil {
		return nil, err
	}
	xt := firstTable(doc.Resources)
	if xt == nil {
		return nil, errors.Reason("VOTable document contains no table")
	}
	t := Table{Schema: Schema(xt.Fields)}
	for i, row := range xt.Rows {
		if len(row.Cells) != len(t.Schema) {
			return nil, errors.Reason("row %d has %d cells, expected %d",
				i+1, len(row.Cells), len(t.Schema))
		}
		cells := make([]string, len(row.Cells))
		for j, c := range row.Cells {
			cells[j] = normalizeCell(c, t.Schema[j])
		}
		t.Rows = append(t.Rows, cells)
	}
	return &t, nil
}

// ReadBytes decodes an in-memory VOTable payload, such as a raw HTTP response
// body.
func ReadBytes(b []byte) (*Table, error) {
	return Read(bytes.NewReader(b))
}

// TestVOTable generates a minimal well-formed VOTable document with the given
// schema and rows. For use in tests.
func TestVOTable(schema Schema, rows [][]string) string {
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	sb.WriteString(`<VOTABLE version="1.4"><RESOURCE type="results">`)
	sb.WriteString(`<INFO name="QUERY_STATUS" value="OK"/><TABLE>`)
	for _, f := range schema {
		fmt.Fprintf(&sb, `<FIELD name=%q datatype=%q`, f.Name, f.Datatype)
		if f.Arraysize != "" {
			fmt.Fprintf(&sb, ` arraysize=%q`, f.Arraysize)
		}
		sb.WriteString("/>")
	}
	sb.WriteString("<DATA><TABLEDATA>")
	for _, row := range rows {
		sb.WriteString("<TR>")
		for _, c := range row {
			sb.WriteString("<TD>")
			xml.EscapeText(&sb, []byte(c))
			sb.WriteString("</TD>")
		}
		sb.WriteString("</TR>")
	}
	sb.WriteString("</TABLEDATA></DATA></TABLE></RESOURCE></VOTABLE>")
	return sb.String()
}
