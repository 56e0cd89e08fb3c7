package evaluator

import (
	"github.com/viant/parsly"
	"github.com/viant/parsly/matcher"
)

// Token codes
const (
	whitespaceCode = iota
	identifierCode
	operatorCode
	stringLiteralCode
	scalarLiteralCode
)

// Token definitions
var (
	whitespaceToken    = parsly.NewToken(whitespaceCode, "Whitespace", matcher.NewWhiteSpace())
	identifierToken    = parsly.NewToken(identifierCode, "Identifier", &identifierMatcher{})
	operatorToken      = parsly.NewToken(operatorCode, "Operator", &operatorMatcher{})
	stringLiteralToken = parsly.NewToken(stringLiteralCode, "String", &stringLiteralMatcher{})
	scalarLiteralToken = parsly.NewToken(scalarLiteralCode, "Scalar", &scalarLiteralMatcher{})
)

// identifierMatcher matches dotted variable references (status, result.message).
type identifierMatcher struct{}

func (m *identifierMatcher) Match(cursor *parsly.Cursor) int {
	input := cursor.Input
	pos := cursor.Pos
	size := cursor.InputSize
	if pos >= size {
		return 0
	}
	if !isLetter(input[pos]) && input[pos] != '_' {
		return 0
	}
	matched := 1
	for i := pos + 1; i < size; i++ {
		if isLetter(input[i]) || isDigit(input[i]) || input[i] == '_' || input[i] == '.' {
			matched++
			continue
		}
		break
	}
	return matched
}

// operatorMatcher matches the comparison operators == and !=.
type operatorMatcher struct{}

func (m *operatorMatcher) Match(cursor *parsly.Cursor) int {
	input := cursor.Input
	pos := cursor.Pos
	if pos+1 >= cursor.InputSize {
		return 0
	}
	if (input[pos] == '=' || input[pos] == '!') && input[pos+1] == '=' {
		return 2
	}
	return 0
}

// stringLiteralMatcher matches double or single quoted strings.
type stringLiteralMatcher struct{}

func (m *stringLiteralMatcher) Match(cursor *parsly.Cursor) int {
	input := cursor.Input
	pos := cursor.Pos
	size := cursor.InputSize
	if pos >= size {
		return 0
	}
	quote := input[pos]
	if quote != '"' && quote != '\'' {
		return 0
	}
	for i := pos + 1; i < size; i++ {
		if input[i] == quote {
			return i - pos + 1
		}
	}
	return 0
}

// scalarLiteralMatcher matches numbers, booleans and nil.
type scalarLiteralMatcher struct{}

func (m *scalarLiteralMatcher) Match(cursor *parsly.Cursor) int {
	input := cursor.Input
	pos := cursor.Pos
	size := cursor.InputSize
	if pos >= size {
		return 0
	}
	matched := 0
	for i := pos; i < size; i++ {
		ch := input[i]
		if isLetter(ch) || isDigit(ch) || ch == '-' || ch == '+' || ch == '.' {
			matched++
			continue
		}
		break
	}
	return matched
}

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
