package sqlparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchInsert(t *testing.T) {
	assert := assert.New(t)
	testcases := []struct {
		line        string
		matched     bool
		tableName   string
		columnsPart string
		valuesPart  string
	}{
		{`INSERT INTO users (id, email) VALUES (1, 'alice@example.com');`, true,
			"users", "id, email", "1, 'alice@example.com'"},
		{`insert into public.users (id) values (1);`, true,
			"public.users", "id", "1"},
		{`INSERT  INTO  orders  ( id , amt )  VALUES  ( 5 , 10.00 );`, true,
			"orders", " id , amt ", " 5 , 10.00 "},
		{`INSERT INTO t (a) VALUES ('x);');`, true,
			"t", "a", "'x);'"},
		{`-- a comment`, false, "", "", ""},
		{``, false, "", "", ""},
		{`SELECT * FROM users;`, false, "", "", ""},
		{`INSERT INTO t (a) VALUES (1)`, false, "", "", ""},
		{`INSERT INTO t (a) VALUES`, false, "", "", ""},
		{`CREATE TABLE users (id int);`, false, "", "", ""},
	}
	for _, tc := range testcases {
		stmt, ok := MatchInsert(tc.line)
		assert.Equal(tc.matched, ok, "%q", tc.line)
		if tc.matched {
			assert.Equal(tc.tableName, stmt.TableName, "%q", tc.line)
			assert.Equal(tc.columnsPart, stmt.ColumnsPart, "%q", tc.line)
			assert.Equal(tc.valuesPart, stmt.ValuesPart, "%q", tc.line)
		}
	}
}

func TestMatchInsertPrefix(t *testing.T) {
	assert := assert.New(t)

	// the light variant accepts statements whose value list is not terminated
	// on the same line
	stmt, ok := MatchInsertPrefix(`INSERT INTO public.users (id, email) VALUES`)
	assert.True(ok)
	assert.Equal("public.users", stmt.TableName)
	assert.Equal("id, email", stmt.ColumnsPart)

	stmt, ok = MatchInsertPrefix(`INSERT INTO t (a) VALUES (1);`)
	assert.True(ok)
	assert.Equal("t", stmt.TableName)

	_, ok = MatchInsertPrefix(`-- INSERT INTO t (a) VALUES (1);`)
	assert.False(ok)
}

func TestSplitColumns(t *testing.T) {
	assert := assert.New(t)
	testcases := []struct {
		columnsPart string
		expected    []string
	}{
		{`id, email`, []string{"id", "email"}},
		{`"id","first name"`, []string{"id", "first name"}},
		{` a , b `, []string{"a", "b"}},
		{`single`, []string{"single"}},
	}
	for _, tc := range testcases {
		assert.Equal(tc.expected, SplitColumns(tc.columnsPart), "%q", tc.columnsPart)
	}
}

func TestSplitValues(t *testing.T) {
	assert := assert.New(t)
	testcases := []struct {
		valuesPart string
		expected   []string
	}{
		{`1, 'alice@example.com'`, []string{"1", "'alice@example.com'"}},
		{`'a, b', 2`, []string{"'a, b'", "2"}},
		{`'it\'s fine', NULL`, []string{`'it\'s fine'`, "NULL"}},
		{`'back\\slash', 1`, []string{`'back\\slash'`, "1"}},
		{` 1 , 2 `, []string{"1", "2"}},
		{`1,,2`, []string{"1", "", "2"}},
		// trailing comma: the final token is dropped once trimmed empty
		{`1, `, []string{"1"}},
		// unbalanced quote: best effort, the open string swallows the comma
		{`'abc, def`, []string{"'abc, def"}},
		{``, nil},
	}
	for _, tc := range testcases {
		assert.Equal(tc.expected, SplitValues(tc.valuesPart), "%q", tc.valuesPart)
	}
}
