package httpserver

import "net/http"

// Controller registers its handlers on the shared router using method patterns.
type Controller interface {
	AddRoutes(*http.ServeMux)
}
