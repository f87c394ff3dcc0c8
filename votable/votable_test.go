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
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

var testSchema = Schema{
	{Name: "a", Datatype: "char", Arraysize: "*"},
	{Name: "b", Datatype: "char", Arraysize: "*"},
}

func TestVOTableDecode(t *testing.T) {
	t.Parallel()

	Convey("Read round-trips a well-formed document", t, func() {
		doc := TestVOTable(testSchema, [][]string{
			{"HST", "ivo://archive.stsci.edu/hst"},
			{"GALEX", "ivo://archive.stsci.edu/galex"},
		})
		tbl, err := ReadBytes([]byte(doc))
		So(err, ShouldBeNil)
		So(tbl.Schema, ShouldResemble, testSchema)
		So(tbl.Schema.Names(), ShouldResemble, []string{"a", "b"})
		So(tbl.Rows, ShouldResemble, [][]string{
			{"HST", "ivo://archive.stsci.edu/hst"},
			{"GALEX", "ivo://archive.stsci.edu/galex"},
		})
	})

	Convey("Read handles real-world documents", t, func() {
		Convey("namespaced elements and nested resources", func() {
			doc := `<?xml version="1.0"?>
<vot:VOTABLE version="1.3" xmlns:vot="http://www.ivoa.net/xml/VOTable/v1.3">
 <vot:RESOURCE>
  <vot:RESOURCE type="results">
   <vot:INFO name="QUERY_STATUS" value="OK"/>
   <vot:TABLE>
    <vot:FIELD name="short_name" datatype="char" arraysize="*"/>
    <vot:DATA><vot:TABLEDATA>
     <vot:TR><vot:TD>HST</vot:TD></vot:TR>
    </vot:TABLEDATA></vot:DATA>
   </vot:TABLE>
  </vot:RESOURCE>
 </vot:RESOURCE>
</vot:VOTABLE>`
			tbl, err := ReadBytes([]byte(doc))
			So(err, ShouldBeNil)
			So(tbl.Rows, ShouldResemble, [][]string{{"HST"}})
		})

		Convey("padded char cells are normalized to text", func() {
			doc := `<?xml version="1.0"?>
<VOTABLE version="1.4"><RESOURCE><TABLE>
 <FIELD name="code" datatype="char" arraysize="8"/>
 <FIELD name="id" datatype="char" arraysize="*"/>
 <DATA><TABLEDATA>
  <TR><TD>HST     </TD><TD>ivo://x</TD></TR>
 </TABLEDATA></DATA>
</TABLE></RESOURCE></VOTABLE>`
			tbl, err := ReadBytes([]byte(doc))
			So(err, ShouldBeNil)
			So(tbl.Rows, ShouldResemble, [][]string{{"HST", "ivo://x"}})
		})

		Convey("empty result set", func() {
			doc := TestVOTable(testSchema, nil)
			tbl, err := ReadBytes([]byte(doc))
			So(err, ShouldBeNil)
			So(tbl.Schema.Equal(testSchema), ShouldBeTrue)
			So(len(tbl.Rows), ShouldEqual, 0)
		})
	})

	Convey("Read fails on bad input", t, func() {
		Convey("malformed XML", func() {
			_, err := ReadBytes([]byte("this is not a votable"))
			So(err, ShouldNotBeNil)
		})

		Convey("no table in the document", func() {
			doc := `<?xml version="1.0"?><VOTABLE><RESOURCE/></VOTABLE>`
			_, err := ReadBytes([]byte(doc))
			So(err.Error(), ShouldContainSubstring, "no table")
		})

		Convey("service-side query error", func() {
			doc := `<?xml version="1.0"?>
<VOTABLE><RESOURCE type="results">
 <INFO name="QUERY_STATUS" value="ERROR">syntax error near 'where'</INFO>
</RESOURCE></VOTABLE>`
			_, err := ReadBytes([]byte(doc))
			So(err.Error(), ShouldContainSubstring, "syntax error near 'where'")
		})

		Convey("ragged row", func() {
			doc := `<?xml version="1.0"?>
<VOTABLE><RESOURCE><TABLE>
 <FIELD name="a" datatype="char" arraysize="*"/>
 <FIELD name="b" datatype="char" arraysize="*"/>
 <DATA><TABLEDATA><TR><TD>only one cell</TD></TR></TABLEDATA></DATA>
</TABLE></RESOURCE></VOTABLE>`
			_, err := ReadBytes([]byte(doc))
			So(err.Error(), ShouldContainSubstring, "expected 2")
		})
	})

	Convey("Schema methods work", t, func() {
		Convey("Equal", func() {
			orig := Schema{{Name: "a", Datatype: "char"}, {Name: "b", Datatype: "int"}}
			same := Schema{{Name: "a", Datatype: "char"}, {Name: "b", Datatype: "int"}}
			diffOrder := Schema{{Name: "b", Datatype: "int"}, {Name: "a", Datatype: "char"}}
			So(orig.Equal(same), ShouldBeTrue)
			So(orig.Equal(diffOrder), ShouldBeFalse)
			So(orig.Equal(orig[:1]), ShouldBeFalse)
		})

		Convey("MapFields", func() {
			s := Schema{{Name: "one"}, {Name: "two"}, {Name: "three"}}
			So(s.MapFields(), ShouldResemble,
				map[string]int{"one": 0, "two": 1, "three": 2})
		})

		Convey("String", func() {
			s := Schema{{Name: "one", Datatype: "char"}, {Name: "two", Datatype: "int"}}
			So(s.String(), ShouldEqual, "{one: char, two: int}")
		})
	})

	Convey("Column extracts a single column", t, func() {
		doc := TestVOTable(testSchema, [][]string{{"HST", "x"}, {"GALEX", "y"}})
		tbl, err := ReadBytes([]byte(doc))
		So(err, ShouldBeNil)

		col, err := tbl.Column("a")
		So(err, ShouldBeNil)
		So(col, ShouldResemble, []string{"HST", "GALEX"})

		_, err = tbl.Column("nope")
		So(err, ShouldNotBeNil)
	})
}

func TestVOTablePrint(t *testing.T) {
	t.Parallel()

	tbl := &Table{
		Schema: Schema{{Name: "short_name"}, {Name: "ivoid"}},
		Rows: [][]string{
			{"HST", "ivo://archive.stsci.edu/hst"},
			{"GALEX", "ivo://archive.stsci.edu/galex"},
		},
	}

	Convey("WriteCSV", t, func() {
		Convey("with a header", func() {
			var buf bytes.Buffer
			So(tbl.WriteCSV(&buf, Params{}), ShouldBeNil)
			So("\n"+buf.String(), ShouldEqual, `
short_name,ivoid
HST,ivo://archive.stsci.edu/hst
GALEX,ivo://archive.stsci.edu/galex
`)
		})

		Convey("row limit and no header", func() {
			var buf bytes.Buffer
			So(tbl.WriteCSV(&buf, Params{Rows: 1, NoHeader: true}), ShouldBeNil)
			So(buf.String(), ShouldEqual, "HST,ivo://archive.stsci.edu/hst\n")
		})
	})

	Convey("WriteText", t, func() {
		Convey("aligns columns", func() {
			var buf bytes.Buffer
			So(tbl.WriteText(&buf, Params{}), ShouldBeNil)
			So("\n"+buf.String(), ShouldEqual, `
short_name |                         ivoid
---------- | -----------------------------
       HST |   ivo://archive.stsci.edu/hst
     GALEX | ivo://archive.stsci.edu/galex
`)
		})

		Convey("truncates wide cells", func() {
			var buf bytes.Buffer
			So(tbl.WriteText(&buf, Params{MaxColWidth: 10, NoHeader: true}), ShouldBeNil)
			So("\n"+buf.String(), ShouldEqual, `
  HST | ivo://ar..
GALEX | ivo://ar..
`)
		})

		Convey("rejects too small MaxColWidth", func() {
			var buf bytes.Buffer
			So(tbl.WriteText(&buf, Params{MaxColWidth: 3}), ShouldNotBeNil)
		})
	})
}
