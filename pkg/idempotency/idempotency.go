package idempotency

import (
	"context"
	"net/http"
	"time"

	"github.com/GlebRadaev/boutique/pkg/auth"
	"github.com/GlebRadaev/boutique/pkg/utils"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	HeaderKey = "Idempotency-Key"
	keyPrefix = "idem:commande:"
	maxKeyLen = 128
)

type Store struct {
	client *redis.Client
	ttl    time.Duration
}

func NewStore(client *redis.Client, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl}
}

func redisKey(r *http.Request, key string) string {
	if identity, ok := auth.IdentityFromContext(r.Context()); ok {
		return keyPrefix + identity.UserID + ":" + key
	}
	return keyPrefix + key
}

// Middleware claims the Idempotency-Key header before the request reaches next.
// A second request with a claimed key gets 409. Keys whose request did not
// succeed are released so the client may retry. Requests without the header
// and Redis failures pass through.
func (s *Store) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Header.Get(HeaderKey)
		if key == "" {
			next.ServeHTTP(w, r)
			return
		}
		if len(key) > maxKeyLen {
			utils.RespondWithError(w, http.StatusBadRequest, "Idempotency-Key is too long")
			return
		}

		ctx := r.Context()
		rk := redisKey(r, key)
		claimed, err := s.client.SetNX(ctx, rk, time.Now().UTC().Format(time.RFC3339), s.ttl).Result()
		if err != nil {
			zap.L().Warn("idempotency store unavailable", zap.Error(err))
			next.ServeHTTP(w, r)
			return
		}
		if !claimed {
			utils.RespondWithError(w, http.StatusConflict, "Request already processed")
			return
		}

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		completed := false
		defer func() {
			if completed && ww.Status() < http.StatusBadRequest {
				return
			}
			s.release(context.WithoutCancel(ctx), rk)
		}()

		next.ServeHTTP(ww, r)
		completed = true
	})
}

func (s *Store) release(ctx context.Context, rk string) {
	if err := s.client.Del(ctx, rk).Err(); err != nil {
		zap.L().Warn("failed to release idempotency key", zap.String("key", rk), zap.Error(err))
	}
}
