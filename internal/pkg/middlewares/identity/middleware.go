package identity

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/entities"
)

// Заголовки проставляет аутентифицирующий шлюз перед сервисом.
const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"
)

type actorKey struct{}

// Middleware переносит идентичность в контекст. Идентификатор, не являющийся UUID,
// делает запрос анонимным: все идентификаторы пользователей в базе - UUID.
func Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, err := uuid.Parse(strings.TrimSpace(r.Header.Get(HeaderUserID)))
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			actor := entities.Actor{
				UserID: userID.String(),
				Role:   entities.UserRole(strings.ToLower(strings.TrimSpace(r.Header.Get(HeaderUserRole)))),
			}

			next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor)))
		})
	}
}

func WithActor(ctx context.Context, actor entities.Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

// ActorFromContext возвращает пустого Actor для анонимного запроса, сервисы отвечают на него ErrMissingActor.
func ActorFromContext(ctx context.Context) entities.Actor {
	actor, _ := ctx.Value(actorKey{}).(entities.Actor)
	return actor
}
