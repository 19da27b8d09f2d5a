package sqlparser

import (
	"regexp"
	"strings"
)

// Single-line INSERT statements only. Multi-line statements are not
// reassembled and fall through as passthrough text.
var (
	insertRegex       = regexp.MustCompile(`(?i)^INSERT\s+INTO\s+(\S+)\s*\((.*?)\)\s*VALUES\s*\((.*)\);`)
	insertPrefixRegex = regexp.MustCompile(`(?i)^INSERT\s+INTO\s+(\S+)\s*\((.*?)\)\s*VALUES`)
)

// InsertStatement holds the raw fragments of a matched INSERT line. All three
// fields are byte-for-byte slices of the input; nothing is normalized here.
type InsertStatement struct {
	TableName   string
	ColumnsPart string
	ValuesPart  string
}

// MatchInsert recognizes a complete single-line
// `INSERT INTO <table> (<columns>) VALUES (<values>);` statement.
func MatchInsert(line string) (*InsertStatement, bool) {
	caps := insertRegex.FindStringSubmatch(line)
	if caps == nil {
		return nil, false
	}
	return &InsertStatement{
		TableName:   caps[1],
		ColumnsPart: caps[2],
		ValuesPart:  caps[3],
	}, true
}

// MatchInsertPrefix is the lighter variant used during schema scanning: it
// requires only the table name and column list, not a terminated value list.
func MatchInsertPrefix(line string) (*InsertStatement, bool) {
	caps := insertPrefixRegex.FindStringSubmatch(line)
	if caps == nil {
		return nil, false
	}
	return &InsertStatement{
		TableName:   caps[1],
		ColumnsPart: caps[2],
	}, true
}

// SplitColumns splits a raw column-list fragment on commas, trimming
// whitespace and surrounding double quotes from each name.
func SplitColumns(columnsPart string) []string {
	parts := strings.Split(columnsPart, ",")
	columns := make([]string, 0, len(parts))
	for _, part := range parts {
		columns = append(columns, strings.Trim(strings.TrimSpace(part), `"`))
	}
	return columns
}

// SplitValues splits the raw text between the VALUES parentheses into trimmed
// tokens, on commas that are not inside an open single-quoted string. A
// backslash escapes the following character, which never toggles the quote
// state or acts as a separator. Unbalanced quotes are not an error; this is a
// best-effort lexer over dump text, not a SQL parser.
func SplitValues(valuesPart string) []string {
	var result []string
	var current strings.Builder
	inQuotes := false
	escape := false

	for _, c := range valuesPart {
		if escape {
			current.WriteRune(c)
			escape = false
			continue
		}
		switch {
		case c == '\'':
			inQuotes = !inQuotes
			current.WriteRune(c)
		case c == '\\':
			escape = true
			current.WriteRune(c)
		case c == ',' && !inQuotes:
			result = append(result, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteRune(c)
		}
	}
	if last := strings.TrimSpace(current.String()); last != "" {
		result = append(result, last)
	}
	return result
}
