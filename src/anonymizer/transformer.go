package anonymizer

import (
	"encoding/binary"
	"hash/fnv"
	"strings"

	"github.com/brianvoe/gofakeit/v6"

	"ghostdb/src/config"
)

// Transformer generates deterministic substitutes for SQL literals. The same
// (value, strategy, global seed) triple always yields the same output, across
// runs and platforms: a per-value seed is derived by hashing the global seed
// together with the unquoted content, and a locally seeded faker is built from
// it for every call. No shared random state.
type Transformer struct {
	globalSeed uint64
}

func NewTransformer(globalSeed uint64) *Transformer {
	return &Transformer{globalSeed: globalSeed}
}

// Transform substitutes one value token according to its strategy. A token
// wrapped in single quotes gets a single-quoted substitute; bare tokens
// (numbers, NULL) get bare substitutes.
func (t *Transformer) Transform(value string, strategy config.ColumnStrategy) string {
	if strategy.Kind == config.StrategyKeep {
		return value
	}

	isQuoted := len(value) >= 2 && strings.HasPrefix(value, "'") && strings.HasSuffix(value, "'")
	cleanVal := value
	if isQuoted {
		cleanVal = value[1 : len(value)-1]
	}

	faker := t.fakerFor(cleanVal)

	var newVal string
	switch strategy.Kind {
	case config.StrategyFirstName:
		newVal = faker.FirstName()
	case config.StrategyLastName:
		newVal = faker.LastName()
	case config.StrategyFullName:
		newVal = faker.Name()
	case config.StrategyEmail:
		newVal = faker.Email()
	case config.StrategyPhone:
		newVal = faker.Phone()
	case config.StrategyMask:
		newVal = maskValue(cleanVal)
	case config.StrategyFixed:
		newVal = strategy.FixedValue
	default:
		return value
	}

	if isQuoted {
		return "'" + newVal + "'"
	}
	return newVal
}

// fakerFor derives the per-value seed: FNV-1a over the big-endian global seed
// followed by the unquoted content. Position, table and column play no part,
// so equal literals map to equal substitutes everywhere in the dump.
func (t *Transformer) fakerFor(cleanVal string) *gofakeit.Faker {
	hasher := fnv.New64a()
	var seedBytes [8]byte
	binary.BigEndian.PutUint64(seedBytes[:], t.globalSeed)
	hasher.Write(seedBytes[:])
	hasher.Write([]byte(cleanVal))

	seed := hasher.Sum64()
	if seed == 0 {
		// gofakeit treats seed 0 as "seed from crypto/rand"
		seed = 1
	}
	return gofakeit.New(int64(seed))
}

// maskValue partially obscures a value while preserving its shape. Email-like
// values (exactly one '@') keep their domain; anything with more than one '@'
// collapses to a fixed placeholder. The length-1 thresholds are a fixed
// contract, covered literally by tests.
func maskValue(cleanVal string) string {
	if strings.Contains(cleanVal, "@") {
		parts := strings.Split(cleanVal, "@")
		if len(parts) != 2 {
			return "***@unknown.com"
		}
		name, domain := parts[0], parts[1]
		runes := []rune(name)
		if len(runes) > 1 {
			return string(runes[0]) + "***@" + domain
		}
		return "***@" + domain
	}

	runes := []rune(cleanVal)
	if len(runes) > 1 {
		return string(runes[0]) + "***"
	}
	return "*"
}
