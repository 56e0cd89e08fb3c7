// Package evaluator decides branch conditions. The supported language is
// deliberately small: a bare variable reference is truthy-tested, and
// `variable == literal` / `variable != literal` compare against a quoted
// string, a number, a boolean or nil. Variable references may be dotted to
// descend into map results (result.message).
package evaluator

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/viant/parsly"
)

// Evaluator evaluates branch condition expressions against a variables map.
type Evaluator struct{}

// New creates an evaluator.
func New() *Evaluator { return &Evaluator{} }

// Evaluate parses expr and reports whether it holds for the supplied
// variables. Unparseable expressions return an error rather than silently
// evaluating to false.
func (e *Evaluator) Evaluate(expr string, variables map[string]interface{}) (bool, error) {
	cursor := parsly.NewCursor("", []byte(expr), 0)

	matched := cursor.MatchAfterOptional(whitespaceToken, identifierToken)
	if matched.Code != identifierToken.Code {
		return false, fmt.Errorf("invalid condition %q: %v", expr, cursor.NewError(identifierToken))
	}
	operand := lookup(matched.Text(cursor), variables)

	matched = cursor.MatchAfterOptional(whitespaceToken, operatorToken)
	if matched.Code != operatorToken.Code {
		if rest := strings.TrimSpace(string(cursor.Input[cursor.Pos:])); rest != "" {
			return false, fmt.Errorf("invalid condition %q: unexpected %q", expr, rest)
		}
		return isTruthy(operand), nil
	}
	operator := matched.Text(cursor)

	literal, err := e.matchLiteral(expr, cursor)
	if err != nil {
		return false, err
	}
	if rest := strings.TrimSpace(string(cursor.Input[cursor.Pos:])); rest != "" {
		return false, fmt.Errorf("invalid condition %q: unexpected %q", expr, rest)
	}

	equal := valuesEqual(operand, literal)
	if operator == "!=" {
		return !equal, nil
	}
	return equal, nil
}

func (e *Evaluator) matchLiteral(expr string, cursor *parsly.Cursor) (interface{}, error) {
	matched := cursor.MatchAfterOptional(whitespaceToken, stringLiteralToken, scalarLiteralToken)
	switch matched.Code {
	case stringLiteralToken.Code:
		text := matched.Text(cursor)
		return text[1 : len(text)-1], nil
	case scalarLiteralToken.Code:
		return parseScalar(matched.Text(cursor))
	}
	return nil, fmt.Errorf("invalid condition %q: %v", expr, cursor.NewError(scalarLiteralToken))
}

func parseScalar(text string) (interface{}, error) {
	switch text {
	case "true":
		return true, nil
	case "false":
		return false, nil
	case "nil", "null":
		return nil, nil
	}
	if value, err := strconv.ParseInt(text, 10, 64); err == nil {
		return value, nil
	}
	if value, err := strconv.ParseFloat(text, 64); err == nil {
		return value, nil
	}
	return nil, fmt.Errorf("unsupported literal: %q", text)
}

// lookup resolves a possibly dotted variable reference.
func lookup(name string, variables map[string]interface{}) interface{} {
	parts := strings.Split(name, ".")
	var current interface{} = variables
	for _, part := range parts {
		holder, ok := current.(map[string]interface{})
		if !ok {
			return nil
		}
		current, ok = holder[part]
		if !ok {
			return nil
		}
	}
	return current
}

func isTruthy(value interface{}) bool {
	switch actual := value.(type) {
	case nil:
		return false
	case bool:
		return actual
	case string:
		return actual != ""
	case int:
		return actual != 0
	case int64:
		return actual != 0
	case float64:
		return actual != 0
	default:
		return true
	}
}

func valuesEqual(left, right interface{}) bool {
	if left == nil || right == nil {
		return left == nil && right == nil
	}
	if leftNum, ok := asFloat(left); ok {
		if rightNum, ok := asFloat(right); ok {
			return leftNum == rightNum
		}
	}
	return fmt.Sprintf("%v", left) == fmt.Sprintf("%v", right)
}

func asFloat(value interface{}) (float64, bool) {
	switch actual := value.(type) {
	case int:
		return float64(actual), true
	case int64:
		return float64(actual), true
	case float64:
		return actual, true
	case float32:
		return float64(actual), true
	}
	return 0, false
}
