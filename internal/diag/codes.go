package diag

import (
	"fmt"
)

// Code: стабильный идентификатор диагностики.
type Code uint16

const (
	UnknownCode Code = 0

	// Лексические
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexBadNumber                Code = 1004
	LexUnterminatedChar         Code = 1005
	LexUnterminatedRawString    Code = 1006
	LexUnbalancedDelimiter      Code = 1007
)

var codeDescription = map[Code]string{
	UnknownCode:                 "Unknown error",
	LexUnknownChar:              "Unknown character",
	LexUnterminatedString:       "Unterminated string literal",
	LexUnterminatedBlockComment: "Unterminated block comment",
	LexBadNumber:                "Bad number literal",
	LexUnterminatedChar:         "Unterminated character literal",
	LexUnterminatedRawString:    "Unterminated raw string literal",
	LexUnbalancedDelimiter:      "Unbalanced delimiter",
}

func (c Code) ID() string {
	if ic := int(c); ic >= 1000 && ic < 2000 {
		return fmt.Sprintf("LEX%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
