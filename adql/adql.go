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

// Package adql builds ADQL (Astronomical Data Query Language) SELECT
// statements. ADQL is the SQL dialect accepted by TAP services.
//
// A Query is assembled from a predicate list and rendered in a single place,
// so the zero-predicate and single-predicate cases share one code path. Note,
// that predicate values are interpolated into the statement verbatim, without
// any escaping. A value containing a quote character will corrupt the query.
package adql

import (
	"fmt"
	"strings"
)

// Op is the comparison operator of a single predicate.
type Op string

// Values for Op.
const (
	OpEqual Op = "="
	OpLike  Op = "like"
)

// Predicate is a single condition of a WHERE clause.
type Predicate struct {
	Column string
	Op     Op
	Value  string
}

// String renders the predicate as ADQL text.
func (p Predicate) String() string {
	if p.Op == OpLike {
		return fmt.Sprintf("%s like '%s'", p.Column, p.Value)
	}
	return fmt.Sprintf("%s%s'%s'", p.Column, p.Op, p.Value)
}

// Query is a builder for a single ADQL SELECT statement.
type Query struct {
	columns    []string
	from       string
	joins      []string // tables joined with "natural join"
	predicates []Predicate
	logic      string // operator joining the predicates
	orderBy    string
}

// Select creates a new query returning the given columns.
func Select(columns ...string) *Query {
	return &Query{columns: columns, logic: "and"}
}

// Copy creates a deep copy of the query. It is primarily used in its builder
// methods.
func (q *Query) Copy() *Query {
	q2 := Query{from: q.from, logic: q.logic, orderBy: q.orderBy}
	q2.columns = make([]string, len(q.columns))
	copy(q2.columns, q.columns)
	q2.joins = make([]string, len(q.joins))
	copy(q2.joins, q.joins)
	q2.predicates = make([]Predicate, len(q.predicates))
	copy(q2.predicates, q.predicates)
	return &q2
}

// From sets the table to select from. This and other builder methods always
// create a deep copy of the query, leaving the original intact.
func (q *Query) From(table string) *Query {
	q2 := q.Copy()
	q2.from = table
	return q2
}

// NaturalJoin adds a table joined with "natural join".
func (q *Query) NaturalJoin(table string) *Query {
	q2 := q.Copy()
	q2.joins = append(q2.joins, table)
	return q2
}

// Where appends predicates to the WHERE clause.
func (q *Query) Where(predicates ...Predicate) *Query {
	q2 := q.Copy()
	q2.predicates = append(q2.predicates, predicates...)
	return q2
}

// Equal adds an exact-match predicate: the column's value must equal value.
func (q *Query) Equal(column, value string) *Query {
	return q.Where(Predicate{column, OpEqual, value})
}

// Contains adds a substring-match predicate: the column's value must contain
// substr, with wildcards added on both sides.
func (q *Query) Contains(column, substr string) *Query {
	return q.Where(Predicate{column, OpLike, "%" + substr + "%"})
}

// Logic sets the operator joining the WHERE predicates. The operator is used
// verbatim, neither validated nor case-folded. The default is "and".
func (q *Query) Logic(op string) *Query {
	q2 := q.Copy()
	q2.logic = op
	return q2
}

// OrderBy sets the ordering column. An empty column leaves the statement
// without an ORDER BY clause.
func (q *Query) OrderBy(column string) *Query {
	q2 := q.Copy()
	q2.orderBy = column
	return q2
}

// String renders the statement. When the query has no predicates, the
// rendered statement has no WHERE clause at all.
func (q *Query) String() string {
	var sb strings.Builder
	sb.WriteString("select " + strings.Join(q.columns, ","))
	if q.from != "" {
		sb.WriteString(" from " + q.from)
	}
	for _, t := range q.joins {
		sb.WriteString(" natural join " + t)
	}
	if len(q.predicates) > 0 {
		rendered := make([]string, len(q.predicates))
		for i, p := range q.predicates {
			rendered[i] = p.String()
		}
		sb.WriteString(" where " + strings.Join(rendered, " "+q.logic+" "))
	}
	if q.orderBy != "" {
		sb.WriteString(" order by " + q.orderBy)
	}
	return sb.String()
}
