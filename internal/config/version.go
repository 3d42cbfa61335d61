package config

// Version is the clubgraph binary version.
// Set at build time via: -ldflags "-X github.com/clubgraph/clubgraph/internal/config.Version=<tag>"
// Defaults to "dev" when built without ldflags.
var Version = "dev"
