package redis

import (
	"context"
	"fmt"

	"comfort/config"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

func New(config *config.Config) *goRedis.Client {
	ctx := context.Background()
	client := goRedis.NewClient(&goRedis.Options{
		Addr:     fmt.Sprintf("%s:%s", config.Session.Redis.Host, config.Session.Redis.Port),
		Password: config.Session.Redis.Password,
		DB:       config.Session.Redis.DB,
	})

	_, err := client.Ping(ctx).Result()

	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
		panic(err)
	}

	log.Info().
		Int("db", config.Session.Redis.DB).
		Str("host", config.Session.Redis.Host).
		Str("port", config.Session.Redis.Port).
		Msg("Connected to Redis")

	return client
}
