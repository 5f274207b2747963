package router

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/maestria/maestria-api/pkg/apiErrors"
)

var (
	WithRoutes = func(routes ...Route) ConfigRouter {
		return func(router *Router) {
			router.AddRoutes(routes...)
		}
	}
)

type Middleware = func(http.Handler) http.Handler

type Route struct {
	Path        string
	Method      string
	Handler     http.Handler
	Middlewares []Middleware // aplicados na ordem da lista
}

// Guarded aplica os mesmos middlewares a um grupo de rotas, antes dos middlewares próprios de cada rota.
func Guarded(middlewares []Middleware, routes ...Route) []Route {
	out := make([]Route, 0, len(routes))
	for _, route := range routes {
		route.Middlewares = append(append([]Middleware{}, middlewares...), route.Middlewares...)
		out = append(out, route)
	}
	return out
}

type Router struct {
	router *httprouter.Router
}

type ConfigRouter func(router *Router)

func New(configs ...ConfigRouter) Router {
	r := &Router{
		router: httprouter.New(),
	}

	r.router.NotFound = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrEntityNotFound, "Rota não encontrada", nil)
	})
	r.router.MethodNotAllowed = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusMethodNotAllowed)
		_, _ = w.Write([]byte(`{"code":"VAL_001","message":"Método não permitido"}`))
	})
	// OPTIONS é respondido pelo middleware de CORS
	r.router.HandleOPTIONS = false

	for _, config := range configs {
		config(r)
	}

	return *r
}

func (r Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}

func (r Router) AddRoutes(routes ...Route) {
	for _, route := range routes {
		var handler = route.Handler

		for i := len(route.Middlewares) - 1; i >= 0; i-- {
			handler = route.Middlewares[i](handler)
		}

		r.router.Handler(route.Method, route.Path, handler)
	}
}
