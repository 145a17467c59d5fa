package config

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer
	DatabaseURL string `env:"DATABASE_URL" envDefault:"pizza.db"`

	Square Square `envPrefix:"SQUARE_"`
}

type Square struct {
	AccessToken string `env:"ACCESS_TOKEN"`
	LocationID  string `env:"LOCATION_ID"`
	Environment string `env:"ENVIRONMENT" envDefault:"sandbox"` // sandbox, production
	// BaseApiURL overrides the environment-derived API host when set.
	BaseApiURL     string `env:"BASE_API_URL"`
	TimeoutSeconds int    `env:"TIMEOUT_SECONDS" envDefault:"30"`
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
