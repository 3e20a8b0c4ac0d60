package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// LimitConfig configura uma janela fixa de contagem
type LimitConfig struct {
	Key    string        // identifica quem está sendo limitado
	Limit  int           // máximo de tentativas na janela
	Period time.Duration // tamanho da janela
}

// RedisLimiter conta tentativas por janela fixa no Redis. Usado para conter
// força bruta no login; em caso de falha do Redis a requisição é permitida.
type RedisLimiter struct {
	client *redis.Client
	logger *zap.Logger
}

// NewRedisLimiter cria o limitador
func NewRedisLimiter(client *redis.Client, logger *zap.Logger) *RedisLimiter {
	return &RedisLimiter{client: client, logger: logger}
}

// script incrementa o contador e fixa a expiração na criação da chave
var script = redis.NewScript(`
	local count = redis.call('INCR', KEYS[1])
	if count == 1 then
		redis.call('EXPIREAT', KEYS[1], tonumber(ARGV[1]))
	end
	return count
`)

// Allow verifica se a tentativa cabe na janela corrente. Retorna se foi
// permitida, quantas tentativas restam e quanto falta para o reset.
func (r *RedisLimiter) Allow(ctx context.Context, config LimitConfig) (bool, int, time.Duration, error) {
	if config.Limit <= 0 || config.Period <= 0 {
		return true, 0, 0, errors.New("limite e período devem ser positivos")
	}

	now := time.Now().Unix()
	periodSeconds := int64(config.Period.Seconds())
	expireAt := now - (now % periodSeconds) + periodSeconds
	resetAfter := time.Duration(expireAt-now) * time.Second

	key := fmt.Sprintf("ratelimit:%s", config.Key)
	count, err := script.Run(ctx, r.client, []string{key}, expireAt).Int()
	if err != nil {
		r.logger.Error("falha ao executar script de rate limit", zap.Error(err))
		return true, config.Limit, resetAfter, err
	}

	restante := config.Limit - count
	if restante < 0 {
		restante = 0
	}
	return count <= config.Limit, restante, resetAfter, nil
}
