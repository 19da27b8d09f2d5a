package cmd

const (
	DEFAULT_SEED          = 42
	PROGRESS_POLL_MILLIS  = 500
	ANONYMIZED_SQL_SUFFIX = "_anonymized.sql"
)
