package redis_client

import (
	"context"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/tripplanner/tripplanner/pkg/util"
)

var Client *redis.Client

const defaultConnectionAddress = "localhost:6379"
const defaultConnectionPassword = ""
const defaultDatabase = 0
const maxConnectRetries = 5

// Configured reports whether a Redis address has been provided
func Configured() bool {
	return util.GetEnvironmentVariables()["TRIPPLANNER_REDIS_ADDRESS"] != ""
}

func Connect() error {
	address := defaultConnectionAddress
	password := defaultConnectionPassword
	database := defaultDatabase

	env := util.GetEnvironmentVariables()

	if env["TRIPPLANNER_REDIS_ADDRESS"] != "" {
		address = env["TRIPPLANNER_REDIS_ADDRESS"]
	}

	if env["TRIPPLANNER_REDIS_PASSWORD"] != "" {
		password = env["TRIPPLANNER_REDIS_PASSWORD"]
	}

	if env["TRIPPLANNER_REDIS_DATABASE"] != "" {
		if n, err := strconv.Atoi(env["TRIPPLANNER_REDIS_DATABASE"]); err == nil {
			database = n
		} else {
			return err
		}
	}

	client, err := ConnectTo(&redis.Options{
		Addr:     address,
		Password: password,
		DB:       database,
	})
	if err != nil {
		return err
	}

	Client = client

	return nil
}

// ConnectTo opens a client and pings it, retrying with exponential backoff
func ConnectTo(options *redis.Options) (*redis.Client, error) {
	client := redis.NewClient(options)

	retryBackoff := backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxConnectRetries)

	err := backoff.RetryNotify(func() error {
		return client.Ping(context.Background()).Err()
	}, retryBackoff, func(err error, wait time.Duration) {
		log.Warn().Err(err).Str("address", options.Addr).Str("retry", wait.String()).Msg("Redis not reachable yet")
	})
	if err != nil {
		client.Close()
		return nil, err
	}

	log.Info().Str("address", options.Addr).Msg("Redis client connected")

	return client, nil
}
