package config

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer
	DatabaseURL string `env:"DATABASE_URL" envDefault:"saas-sim.db"`

	Snapshot Snapshot `envPrefix:"SNAPSHOT_"`
}

// Snapshot configures where whole-store state dumps go by default.
type Snapshot struct {
	Path string `env:"PATH" envDefault:"state.json"`
	Name string `env:"NAME" envDefault:"default"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"HTTP_PORT" envDefault:"8080"`
}
