package handler

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/aneves/socialnet/internal/handler/docs"
	"github.com/aneves/socialnet/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the given mux. Each method gets
// its own explicit pattern; there is no runtime dispatch table.
func RegisterRoutes(
	mux *http.ServeMux,
	auth *service.AuthService,
	users *service.UserService,
	posts *service.PostService,
	follows *service.FollowService,
) {
	authH := NewAuthHandler(auth)
	userH := NewUserHandler(auth, users)
	postH := NewPostHandler(posts)
	followH := NewFollowHandler(follows)

	protected := func(h http.HandlerFunc) http.Handler {
		return RequireAuth(auth, h)
	}

	mux.HandleFunc("GET /healthz", HandleHealthz)
	mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	mux.HandleFunc("POST /users/{$}", userH.HandleRegister)
	mux.HandleFunc("POST /auth/{$}", authH.HandleLogin)

	mux.Handle("GET /users/{id}/{$}", protected(userH.HandleGet))
	mux.Handle("PATCH /users/{id}/{$}", protected(userH.HandleUpdate))
	mux.Handle("DELETE /users/{id}/{$}", protected(userH.HandleDelete))

	mux.Handle("POST /posts/{$}", protected(postH.HandleCreate))
	mux.Handle("GET /users/{id}/posts/{$}", protected(postH.HandleListByUser))
	mux.Handle("GET /posts/{id}/{$}", protected(postH.HandleGet))
	mux.Handle("PATCH /posts/{id}/{$}", protected(postH.HandleUpdate))
	mux.Handle("DELETE /posts/{id}/{$}", protected(postH.HandleDelete))

	mux.Handle("POST /users/{id}/follow/{$}", protected(followH.HandleFollow))
	mux.Handle("DELETE /users/{id}/unfollow/{$}", protected(followH.HandleUnfollow))
}
