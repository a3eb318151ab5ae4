package config

// #nosec
const (
	EnvironmentVariableNotDefined = "%s variable is not defined"

	IsAtRemote = "IS_AT_REMOTE"
	ServerPort = "SERVER_PORT"

	MongodbUri                 = "MONGODB_URI"
	MongodbUsername            = "MONGODB_USERNAME"
	MongodbPassword            = "MONGODB_PASSWORD"
	MongodbDatabase            = "MONGODB_DATABASE"
	MongodbMovieCollection     = "MONGODB_MOVIE_COLLECTION"
	MongodbWatchlistCollection = "MONGODB_WATCHLIST_COLLECTION"

	JwtPrivateKey = "JWT_PRIVATE_KEY"
	JwtPublicKey  = "JWT_PUBLIC_KEY"
)

type MongodbConfig struct {
	Uri         string
	Username    string
	Password    string
	Database    string
	Collections map[string]string
}

type JwtConfig struct {
	PrivateKey []byte
	PublicKey  []byte
}
