package auth

// defaultPrefix namespaces keys when no prefix is configured.
const defaultPrefix = "keel:auth"

// redisOptions holds Redis backend configuration.
type redisOptions struct {
	prefix string
}

// RedisOption configures the Redis backend.
type RedisOption func(*redisOptions)

func defaultRedisOptions() *redisOptions {
	return &redisOptions{prefix: defaultPrefix}
}

// WithPrefix sets the key prefix for user and role-mapping keys.
// Defaults to "keel:auth".
func WithPrefix(prefix string) RedisOption {
	return func(o *redisOptions) {
		if prefix != "" {
			o.prefix = prefix
		}
	}
}
