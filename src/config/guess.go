package config

import "strings"

// GuessStrategy proposes a strategy for a column discovered during a scan,
// based on its name alone. Identifier, timestamp and monetary columns are kept
// as-is so the dump stays loadable; everything the heuristics don't recognize
// also defaults to keep.
func GuessStrategy(columnName string) ColumnStrategy {
	lower := strings.ToLower(columnName)

	if lower == "id" || strings.HasSuffix(lower, "_id") ||
		strings.HasSuffix(lower, "uuid") || strings.HasSuffix(lower, "guid") {
		return Keep()
	}

	if strings.Contains(lower, "date") || strings.Contains(lower, "time") ||
		strings.HasSuffix(lower, "_at") {
		return Keep()
	}

	if strings.Contains(lower, "amount") || strings.Contains(lower, "price") ||
		strings.Contains(lower, "sum") || strings.Contains(lower, "total") ||
		strings.Contains(lower, "balance") || strings.Contains(lower, "cost") ||
		strings.Contains(lower, "currency") {
		return Keep()
	}

	if strings.Contains(lower, "email") {
		return Strategy(StrategyEmail)
	}
	if strings.Contains(lower, "phone") || strings.Contains(lower, "mobile") {
		return Strategy(StrategyPhone)
	}
	if lower == "first_name" || lower == "firstname" {
		return Strategy(StrategyFirstName)
	}
	if lower == "last_name" || lower == "lastname" || lower == "surname" {
		return Strategy(StrategyLastName)
	}
	if strings.Contains(lower, "name") && !strings.Contains(lower, "user") &&
		!strings.Contains(lower, "file") && !strings.Contains(lower, "domain") {
		return Strategy(StrategyFullName)
	}
	if strings.Contains(lower, "address") || strings.Contains(lower, "city") ||
		strings.Contains(lower, "street") {
		return Fixed("ANONYMIZED ADDRESS")
	}
	if strings.Contains(lower, "password") || strings.Contains(lower, "token") ||
		strings.Contains(lower, "secret") || strings.Contains(lower, "key") {
		return Fixed("REDACTED_SECRET")
	}
	if strings.Contains(lower, "description") || strings.Contains(lower, "comment") ||
		strings.Contains(lower, "note") {
		return Strategy(StrategyMask)
	}

	return Keep()
}
