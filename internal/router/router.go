package router

import (
	"net/http"

	gorilla_handlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cylin-dev/guestbook/internal/handler"
	"github.com/cylin-dev/guestbook/internal/middleware"
	"github.com/cylin-dev/guestbook/internal/setup"
)

const csp = "default-src 'self'; style-src 'self' 'unsafe-inline'; img-src 'self' data:"

func SetupRouter(deps *setup.Dependencies) http.Handler {
	r := mux.NewRouter()

	r.Use(middleware.RequestLog)
	r.Use(middleware.Metrics)
	r.Use(middleware.SecurityHeadersWithCSP(deps.Config.Public.SecureCookies, csp))
	r.Use(middleware.GenerateCSRFToken(deps.Config.Public.SecureCookies))

	r.HandleFunc("/favicon.ico", handler.FaviconHandler)
	r.PathPrefix("/static/").Handler(
		http.StripPrefix("/static/", http.FileServer(http.Dir("static"))),
	)
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	// Public routes
	publicRouter := r.NewRoute().Subrouter()
	publicRouter.Use(middleware.ValidateCSRFToken())
	publicRouter.HandleFunc("/", deps.Handler.IndexGetHandler).Methods("GET")
	publicRouter.HandleFunc("/add_msg", deps.Handler.AddMessageHandler).Methods("POST")
	publicRouter.HandleFunc("/admin", deps.Handler.AdminGetHandler).Methods("GET")
	publicRouter.HandleFunc("/login", deps.Handler.LoginPostHandler).Methods("POST")

	// Administration routes. The auth gate runs before the CSRF check so an
	// expired session always redirects to login instead of failing on the token.
	adminRouter := r.NewRoute().Subrouter()
	adminRouter.Use(deps.Auth.AdminOnly())
	adminRouter.Use(middleware.ValidateCSRFToken())
	adminRouter.HandleFunc("/list", deps.Handler.ListGetHandler).Methods("GET")
	adminRouter.HandleFunc("/delete", deps.Handler.DeleteHandler).Methods("POST")
	adminRouter.HandleFunc("/update", deps.Handler.UpdateGetHandler).Methods("GET")
	adminRouter.HandleFunc("/update_msg", deps.Handler.UpdateMessageHandler).Methods("POST")

	authRouter := r.NewRoute().Subrouter()
	authRouter.Use(deps.Auth.NeedAuth())
	authRouter.HandleFunc("/logout", deps.Handler.LogoutHandler).Methods("GET")

	return gorilla_handlers.CompressHandler(r)
}
