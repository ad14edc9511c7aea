package http

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stafflink/staffing-backend-go/internal/domain/auth"
)

// actorFromRequest derives the audit identity from the verified JWT claims.
// Requests without a usable identity fall back to the system actor.
func actorFromRequest(r *http.Request) auth.Actor {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return auth.SystemActor()
	}

	id, ok := claims["user_id"].(string)
	if !ok || id == "" {
		return auth.SystemActor()
	}

	actor := auth.Actor{ID: id}
	if name, ok := claims["display_name"].(string); ok && name != "" {
		actor.DisplayName = name
	} else {
		actor.DisplayName = auth.SystemActor().DisplayName
	}
	return actor
}
