package config

import (
	"github.com/caarlos0/env/v10"
)

type Config struct {
	DebugMode   string `env:"WORKER_DEBUG"`
	SentryDsn   string `env:"WORKER_SENTRY_DSN"`
	MetricsAddr string `env:"WORKER_METRICS_ADDR" envDefault:":8081"`

	Bot struct {
		Token             string `env:"WORKER_BOT_TOKEN,required"`
		Id                uint64 `env:"WORKER_BOT_ID,required"`
		GuildId           uint64 `env:"WORKER_GUILD_ID,required"`
		DefaultCategoryId uint64 `env:"WORKER_DEFAULT_CATEGORY_ID"`
		SupportRoleId     uint64 `env:"WORKER_SUPPORT_ROLE_ID"`
	}

	Http struct {
		Addr string `env:"WORKER_HTTP_ADDR" envDefault:":8080"`
	}

	Mongo struct {
		Uri      string `env:"WORKER_MONGO_URI,required"`
		Database string `env:"WORKER_MONGO_DATABASE" envDefault:"modmail"`
	}

	Redis struct {
		Address       string `env:"WORKER_REDIS_ADDR,required"`
		Password      string `env:"WORKER_REDIS_PASSWORD"`
		Threads       int    `env:"WORKER_REDIS_THREADS" envDefault:"16"`
		EventsChannel string `env:"WORKER_REDIS_EVENTS_CHANNEL" envDefault:"modmail:events"`
	}
}

var Conf Config

func Parse() error {
	return env.Parse(&Conf)
}
