package db

import (
	"fmt"

	"gorm.io/gorm/clause"
)

type Operator string

const (
	OpEq     Operator = "="
	OpGt     Operator = ">"
	OpILike  Operator = "ILIKE"
	OpSubstr Operator = "SUBSTR" // case-insensitive substring, value is matched literally
)

type Condition struct {
	Column string
	Op     Operator
	Value  any
}

type Order struct {
	Column string
	Desc   bool
}

// Query describes a filtered, ordered slice of a table. Column names must come from code,
// never from request input.
type Query struct {
	Where   []Condition
	OrderBy []Order
	Limit   int
	Offset  int
}

func (c Condition) expression() (clause.Expression, error) {
	col := clause.Column{Name: c.Column}

	switch c.Op {
	case OpEq:
		return clause.Eq{Column: col, Value: c.Value}, nil
	case OpGt:
		return clause.Gt{Column: col, Value: c.Value}, nil
	case OpILike:
		return clause.Expr{SQL: "? ILIKE ?", Vars: []any{col, c.Value}}, nil
	case OpSubstr:
		s, ok := c.Value.(string)
		if !ok {
			return nil, fmt.Errorf("substring condition on %q needs a string, got %T", c.Column, c.Value)
		}
		return clause.Expr{SQL: "? ILIKE ?", Vars: []any{col, "%" + escapeLike(s) + "%"}}, nil
	default:
		return nil, fmt.Errorf("unsupported operator %q", c.Op)
	}
}

func escapeLike(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r == '%' || r == '_' || r == '\\' {
			out = append(out, '\\')
		}
		out = append(out, r)
	}
	return string(out)
}
