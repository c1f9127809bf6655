package auth

import "net/http"

// SessionCookie is the name of the cookie carrying the opaque session token.
const SessionCookie = "sessao"

// NewSessionCookie builds the cookie set on successful login. No Max-Age:
// the cookie lives for the browser session, while the server-side TTL in the
// session store bounds it on the backend.
func NewSessionCookie(token string) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// ExpiredSessionCookie builds the cookie that clears the session on logout.
func ExpiredSessionCookie() *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	}
}
