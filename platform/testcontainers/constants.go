package testcontainers

// MongoDB
const (
	MongoContainerName = "mongo"
	MongoPort          = "27017"
	MongoImage         = "mongo:8.0"

	MongoUsernameKey = "MONGO_INITDB_ROOT_USERNAME"
	MongoPasswordKey = "MONGO_INITDB_ROOT_PASSWORD" //nolint:gosec
	MongoDatabaseKey = "MONGO_INITDB_DATABASE"
)

// PostgreSQL
const (
	PostgresContainerName = "postgres"
	PostgresPort          = "5432"
	PostgresImage         = "postgres:17.0-alpine3.20"
)
