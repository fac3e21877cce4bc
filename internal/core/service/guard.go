package service

import (
	"net/url"

	"github.com/eduline/eduline-client/internal/core/domain"
	"github.com/eduline/eduline-client/internal/core/ports"
	"github.com/eduline/eduline-client/internal/core/session"
)

// RouteGuard gates navigation to protected destinations. It reads the
// session and performs no network I/O.
type RouteGuard struct {
	sess *session.Session
	nav  ports.Navigator
}

func NewRouteGuard(sess *session.Session, nav ports.Navigator) *RouteGuard {
	return &RouteGuard{sess: sess, nav: nav}
}

// Allow reports whether navigation to path may proceed. When the
// client is unauthenticated it redirects to the login destination,
// carrying the original path so a successful login can resume it.
func (g *RouteGuard) Allow(path string) bool {
	if g.sess.IsAuthenticated() {
		return true
	}
	g.nav.NavigateTo(domain.RouteLogin + "?redirect=" + url.QueryEscape(path))
	return false
}
