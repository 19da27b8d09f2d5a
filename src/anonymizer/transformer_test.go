package anonymizer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"ghostdb/src/config"
)

func TestTransformDeterminism(t *testing.T) {
	assert := assert.New(t)

	first := NewTransformer(42)
	second := NewTransformer(42)
	other := NewTransformer(7)

	for _, kind := range []config.StrategyKind{
		config.StrategyFirstName, config.StrategyLastName, config.StrategyFullName,
		config.StrategyEmail, config.StrategyPhone,
	} {
		strategy := config.Strategy(kind)
		got := first.Transform("'alice@example.com'", strategy)

		// same seed, same value: identical across instances and repeated calls
		assert.Equal(got, first.Transform("'alice@example.com'", strategy), "%s", kind)
		assert.Equal(got, second.Transform("'alice@example.com'", strategy), "%s", kind)

		// a different global seed produces a different substitute
		assert.NotEqual(got, other.Transform("'alice@example.com'", strategy), "%s", kind)
	}
}

func TestTransformSameValueSameSubstitute(t *testing.T) {
	assert := assert.New(t)
	transformer := NewTransformer(42)

	// the substitute depends only on the value, never on which column or
	// position it came from
	strategy := config.Strategy(config.StrategyEmail)
	assert.Equal(transformer.Transform("'bob@co.com'", strategy),
		transformer.Transform("'bob@co.com'", strategy))

	// different values map to different substitutes
	assert.NotEqual(transformer.Transform("'bob@co.com'", strategy),
		transformer.Transform("'eve@co.com'", strategy))
}

func TestTransformKeepIsIdentity(t *testing.T) {
	assert := assert.New(t)
	transformer := NewTransformer(42)

	for _, value := range []string{"1", "NULL", "'alice@example.com'", "''", "'", ""} {
		assert.Equal(value, transformer.Transform(value, config.Keep()), "%q", value)
	}
}

func TestTransformQuotePreservation(t *testing.T) {
	assert := assert.New(t)
	transformer := NewTransformer(42)

	kinds := []config.StrategyKind{
		config.StrategyFirstName, config.StrategyLastName, config.StrategyFullName,
		config.StrategyEmail, config.StrategyPhone, config.StrategyMask,
	}
	for _, kind := range kinds {
		strategy := config.Strategy(kind)

		quoted := transformer.Transform("'some value'", strategy)
		assert.True(strings.HasPrefix(quoted, "'"), "%s: %q", kind, quoted)
		assert.True(strings.HasSuffix(quoted, "'"), "%s: %q", kind, quoted)

		bare := transformer.Transform("12345", strategy)
		assert.False(strings.HasPrefix(bare, "'"), "%s: %q", kind, bare)
		assert.False(strings.HasSuffix(bare, "'"), "%s: %q", kind, bare)
	}
}

func TestTransformFixed(t *testing.T) {
	assert := assert.New(t)
	transformer := NewTransformer(42)

	assert.Equal("'REDACTED'", transformer.Transform("'hunter2'", config.Fixed("REDACTED")))
	assert.Equal("0", transformer.Transform("4111111111111111", config.Fixed("0")))
}

func TestTransformMask(t *testing.T) {
	assert := assert.New(t)
	transformer := NewTransformer(42)
	mask := config.Strategy(config.StrategyMask)

	testcases := []struct {
		value    string
		expected string
	}{
		{`'bob@co.com'`, `'b***@co.com'`},
		{`'Main Street'`, `'M***'`},
		{`'ab'`, `'a***'`},
		// single-character local part keeps only the domain
		{`'a@co.com'`, `'***@co.com'`},
		{`'@co.com'`, `'***@co.com'`},
		// more than one '@' falls back to the placeholder
		{`'a@b@c.com'`, `'***@unknown.com'`},
		// single character and empty degrade to a bare star
		{`'x'`, `'*'`},
		{`''`, `'*'`},
		{`bare`, `b***`},
	}
	for _, tc := range testcases {
		assert.Equal(tc.expected, transformer.Transform(tc.value, mask), "%q", tc.value)
	}
}

func TestTransformEmailShape(t *testing.T) {
	assert := assert.New(t)
	transformer := NewTransformer(42)

	got := transformer.Transform("'alice@example.com'", config.Strategy(config.StrategyEmail))
	assert.True(strings.Contains(got, "@"), "%q", got)
	assert.NotEqual("'alice@example.com'", got)
}
