package env

const (
	// Prefix is the env-var prefix shared by all commands
	Prefix = "TWDRATES"

	// DBURLSuffix is the suffix of the DB connection string env-var
	DBURLSuffix = "_DB_URL"
)
