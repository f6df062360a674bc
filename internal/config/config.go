package config

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer

	DatabasePath string `env:"DATABASE_PATH" envDefault:"./yever.db"`

	Yever Yever `envPrefix:"YEVER_"`
	Pix   Pix   `envPrefix:"PIX_"`
}

type Yever struct {
	BaseApiURL    string `env:"API_URL" envDefault:"https://api.yever.com.br/api/v1"`
	Token         string `env:"TOKEN"`
	WebhookSecret string `env:"WEBHOOK_SECRET"`
}

type Pix struct {
	// receiving key embedded in every generated payload
	Key string `env:"KEY" envDefault:"sua_chave_pix@email.com"`
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
	Port string `env:"PORT" envDefault:"3000"`
}
