// Package config populates configuration structs from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11:
//
//   - LoadEnv reads one or more .env files into the process environment.
//   - Load parses the environment into a struct annotated with `env` tags.
//     Fields whose variables are unset keep the value already present in
//     the struct, so defaults can be set in code before calling Load.
//   - MustLoad panics on failure, for configuration the program cannot run
//     without.
//
// Example:
//
//	cfg := comment.DefaultConfig()
//	if err := config.Load(&cfg, config.WithPrefix("COMMENTS_")); err != nil {
//	    log.Fatalf("loading config: %v", err)
//	}
//
// Load keeps no state between calls; every call re-reads the environment.
package config
