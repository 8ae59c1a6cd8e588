// Package query builds parameterized SQL from typed clauses.
//
// Clauses bind their arguments while they render, so the numbering of
// placeholders always follows the order of arguments in the result.
// Rendering does not depend on a particular store: the caller supplies
// a Placeholder function.
package query

import (
	"strconv"
	"strings"
)

// Placeholder returns the bind marker for the n-th argument (1-based).
type Placeholder func(n int) string

// Question renders every placeholder as "?" (SQLite, MySQL).
func Question(int) string { return "?" }

// Dollar renders placeholders as "$1", "$2"... (PostgreSQL).
func Dollar(n int) string { return "$" + strconv.Itoa(n) }

// Pred is a boolean SQL expression with its bound arguments.
type Pred interface {
	render(w *writer)
}

// Join is an inner join of a table on a condition.
type Join struct {
	Table string
	On    string
}

// Select describes a SELECT statement.
type Select struct {
	Distinct bool
	Columns  []string
	From     string
	Joins    []Join
	Where    []Pred
	OrderBy  []string

	// Limit is ignored when it is not positive.
	Limit int
}

// Render returns the statement and its arguments in binding order.
func (s Select) Render(ph Placeholder) (string, []any) {
	w := &writer{ph: ph}
	w.sb.WriteString("SELECT ")
	if s.Distinct {
		w.sb.WriteString("DISTINCT ")
	}
	w.sb.WriteString(strings.Join(s.Columns, ", "))
	w.sb.WriteString(" FROM ")
	w.sb.WriteString(s.From)
	for _, j := range s.Joins {
		w.sb.WriteString(" JOIN ")
		w.sb.WriteString(j.Table)
		w.sb.WriteString(" ON ")
		w.sb.WriteString(j.On)
	}
	if len(s.Where) > 0 {
		w.sb.WriteString(" WHERE ")
		And(s.Where...).render(w)
	}
	if len(s.OrderBy) > 0 {
		w.sb.WriteString(" ORDER BY ")
		w.sb.WriteString(strings.Join(s.OrderBy, ", "))
	}
	if s.Limit > 0 {
		w.sb.WriteString(" LIMIT ")
		w.sb.WriteString(strconv.Itoa(s.Limit))
	}
	return w.sb.String(), w.args
}

// Rebind replaces "?" markers of a hand-written statement with the
// placeholders of ph. Question marks inside single-quoted literals are
// kept.
func Rebind(sql string, ph Placeholder) string {
	var sb strings.Builder
	sb.Grow(len(sql) + 8)
	var n int
	var quoted bool
	for _, r := range sql {
		switch {
		case r == '\'':
			quoted = !quoted
			sb.WriteRune(r)
		case r == '?' && !quoted:
			n++
			sb.WriteString(ph(n))
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

type writer struct {
	sb   strings.Builder
	args []any
	ph   Placeholder
}

func (w *writer) bind(v any) {
	w.args = append(w.args, v)
	w.sb.WriteString(w.ph(len(w.args)))
}

type inPred struct {
	col  string
	vals []any
}

// In is a membership test of a column against values. An empty value
// list matches nothing.
func In[T any](col string, vals ...T) Pred {
	res := inPred{col: col, vals: make([]any, len(vals))}
	for i := range vals {
		res.vals[i] = vals[i]
	}
	return res
}

func (p inPred) render(w *writer) {
	if len(p.vals) == 0 {
		w.sb.WriteString("1 = 0")
		return
	}
	w.sb.WriteString(p.col)
	w.sb.WriteString(" IN (")
	for i, v := range p.vals {
		if i > 0 {
			w.sb.WriteString(", ")
		}
		w.bind(v)
	}
	w.sb.WriteString(")")
}

type isNullPred struct {
	col string
}

// IsNull tests that a column has no value.
func IsNull(col string) Pred {
	return isNullPred{col: col}
}

func (p isNullPred) render(w *writer) {
	w.sb.WriteString(p.col)
	w.sb.WriteString(" IS NULL")
}

type cmpPred struct {
	left, op string
	val      any
}

// Eq is an equality test of a column and a value.
func Eq(col string, val any) Pred {
	return cmpPred{left: col, op: " = ", val: val}
}

// Ne is an inequality test of a column and a value.
func Ne(col string, val any) Pred {
	return cmpPred{left: col, op: " <> ", val: val}
}

func (p cmpPred) render(w *writer) {
	w.sb.WriteString(p.left + p.op)
	w.bind(p.val)
}

type likePred struct {
	expr    string
	pattern string
}

// Contains matches rows where expr contains term. LIKE metacharacters
// in term are escaped. Case folding is left to the caller: compare
// case-folded columns with a case-folded term.
func Contains(expr, term string) Pred {
	return likePred{expr: expr, pattern: "%" + EscapeLike(term) + "%"}
}

func (p likePred) render(w *writer) {
	w.sb.WriteString(p.expr)
	w.sb.WriteString(" LIKE ")
	w.bind(p.pattern)
	w.sb.WriteString(` ESCAPE '\'`)
}

// EscapeLike escapes '\', '%' and '_' with a backslash.
func EscapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

type listPred struct {
	op    string
	preds []Pred
}

// And joins predicates with AND.
func And(preds ...Pred) Pred {
	return listPred{op: " AND ", preds: preds}
}

// Or joins predicates with OR. The result is wrapped in parentheses.
func Or(preds ...Pred) Pred {
	return listPred{op: " OR ", preds: preds}
}

func (p listPred) render(w *writer) {
	if len(p.preds) == 1 {
		p.preds[0].render(w)
		return
	}
	paren := p.op == " OR "
	if paren {
		w.sb.WriteString("(")
	}
	for i, pr := range p.preds {
		if i > 0 {
			w.sb.WriteString(p.op)
		}
		pr.render(w)
	}
	if paren {
		w.sb.WriteString(")")
	}
}
