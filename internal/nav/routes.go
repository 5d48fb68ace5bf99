package nav

// Route is a Router target path. Navigation never carries parameters.
type Route string

// The closed set of screens the portal can navigate to.
const (
	Landing   Route = "/"
	Login     Route = "/login"
	Register  Route = "/register"
	Dashboard Route = "/dashboard"
	Profile   Route = "/profile"
	ExamEntry Route = "/access-token"
	Results   Route = "/result"
)

// LogoutPath receives the logout form. It is an operation, not a Router target.
const LogoutPath = "/logout"

var routes = []Route{Landing, Login, Register, Dashboard, Profile, ExamEntry, Results}

// Routes returns every Router target in a stable order.
func Routes() []Route {
	return append([]Route(nil), routes...)
}

// IsRoute reports whether path is one of the Router targets.
func IsRoute(path string) bool {
	for _, r := range routes {
		if string(r) == path {
			return true
		}
	}
	return false
}

func (r Route) String() string { return string(r) }
