package middleware

import (
	"context"
	"encoding/base64"
	"net/http"

	"github.com/golang-jwt/jwt/v5"

	"github.com/cylin-dev/guestbook/internal/domain"
	jwt_internal "github.com/cylin-dev/guestbook/internal/jwt"
	"github.com/cylin-dev/guestbook/internal/logger"
)

const (
	AccessTokenCookie = "accessToken"
	flashCookieError  = "flash_error"
	loginPath         = "/admin"
)

// Key to store the user claims in the request context
type key int

const UserClaimsKey key = 0

// Auth holds dependencies for authentication middleware
type Auth struct {
	jwtService    jwt_internal.JwtService
	secureCookies bool
}

func NewAuth(jwtService jwt_internal.JwtService, secureCookies bool) *Auth {
	return &Auth{
		jwtService:    jwtService,
		secureCookies: secureCookies,
	}
}

// NeedAuth returns middleware that requires a valid session. Requests that
// fail the session check are redirected to the login page with a flash
// message. Only the auth check itself redirects; whatever status the wrapped
// handler writes passes through untouched.
func (a *Auth) NeedAuth() func(http.Handler) http.Handler {
	return a.auth(false)
}

// AdminOnly additionally requires the administrator flag.
func (a *Auth) AdminOnly() func(http.Handler) http.Handler {
	return a.auth(true)
}

// extractUser extracts and validates the user from the session cookie.
func (a *Auth) extractUser(r *http.Request) (*domain.User, error) {
	accessCookie, err := r.Cookie(AccessTokenCookie)
	if err != nil || accessCookie.Value == "" {
		return nil, errNoToken
	}

	token, err := a.jwtService.DecodeToken(accessCookie.Value)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errInvalidClaims
	}

	uidFloat, ok := claims["uid"].(float64)
	if !ok {
		return nil, errInvalidClaims
	}

	name, ok := claims["name"].(string)
	if !ok {
		return nil, errInvalidClaims
	}

	isAdmin, ok := claims["admin"].(bool)
	if !ok {
		return nil, errInvalidClaims
	}

	return &domain.User{
		Id:    int64(uidFloat),
		Name:  name,
		Admin: isAdmin,
	}, nil
}

var (
	errNoToken       = errorString("no token")
	errInvalidClaims = errorString("invalid claims")
)

type errorString string

func (e errorString) Error() string { return string(e) }

func (a *Auth) auth(adminOnly bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := a.extractUser(r)
			if err != nil {
				if err == errInvalidClaims {
					logger.Log.Error("invalid session claims")
				}
				a.redirectToLogin(w, r, "Please log in to continue")
				return
			}

			if adminOnly && !user.Admin {
				a.redirectToLogin(w, r, "Access denied")
				return
			}

			ctx := context.WithValue(r.Context(), UserClaimsKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserFromContext retrieves the user from the context
func GetUserFromContext(r *http.Request) *domain.User {
	user, ok := r.Context().Value(UserClaimsKey).(*domain.User)
	if !ok {
		return nil
	}
	return user
}

func (a *Auth) redirectToLogin(w http.ResponseWriter, r *http.Request, errorMsg string) {
	// base64 so arbitrary message characters survive the cookie
	encodedMessage := base64.StdEncoding.EncodeToString([]byte(errorMsg))
	cookie := &http.Cookie{
		Name:     flashCookieError,
		Value:    encodedMessage,
		Path:     "/",
		MaxAge:   300,
		HttpOnly: true,
		Secure:   a.secureCookies,
		SameSite: http.SameSiteLaxMode,
	}
	http.SetCookie(w, cookie)

	http.Redirect(w, r, loginPath, http.StatusSeeOther)
}
