package http

import (
	"net/http"
	"net/url"

	"github.com/MKhiriev/go-secure-routes/internal/app"
	"github.com/MKhiriev/go-secure-routes/internal/logger"
	"github.com/MKhiriev/go-secure-routes/internal/routing"
	"github.com/MKhiriev/go-secure-routes/internal/utils"
	"github.com/MKhiriev/go-secure-routes/models"
)

// navigation lists the links every page carries, by name.
var navigation = []struct {
	name   string
	route  string
	params url.Values
}{
	{name: "home", route: "site/index"},
	{name: "login", route: "auth/login"},
	{name: "logout", route: "auth/logout"},
	{name: "cart", route: "payment/cart/index"},
	{name: "contact", route: "help/contact"},
	{name: "about", route: "help/about"},
	{name: "faq", route: "help/faq"},
	{name: "partner", route: "partner/index"},
}

// actions returns the application pages. Which of them need a secure
// connection is up to the policy configuration, not to the pages.
func (h *Handler) actions() []routing.Action {
	return []routing.Action{
		{Route: "site/index", Handler: h.page("welcome")},
		{Route: "auth/login", Methods: []string{http.MethodGet, http.MethodPost}, Handler: h.login},
		{Route: "auth/logout", Methods: []string{http.MethodPost}, Handler: h.page("signed out")},
		{Route: "payment/cart/index", Handler: h.page("your cart")},
		{Route: "help/contact", Handler: h.page("contact us")},
		{Route: "help/about", Handler: h.page("about us")},
		{Route: "help/faq", Handler: h.page("frequently asked questions")},
		{Route: "api/ping", Handler: h.page("pong")},
		{Route: "partner/index", Handler: h.page("partner area")},
	}
}

func (h *Handler) page(message string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.writePage(w, r, message, http.StatusOK)
	}
}

// login shows the sign in page and accepts its form. The form is not checked
// against any user store, the page only confirms which connection it was
// posted over.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if r.Method != http.MethodPost {
		h.writePage(w, r, "sign in", http.StatusOK)
		return
	}

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("error parsing login form")
		if _, err = utils.WriteError(w, app.MsgInvalidLoginForm, http.StatusBadRequest); err != nil {
			log.Err(err).Msg("error writing response")
		}
		return
	}

	h.writePage(w, r, "signed in as "+r.PostForm.Get("username"), http.StatusOK)
}

func (h *Handler) writePage(w http.ResponseWriter, r *http.Request, message string, status int) {
	log := logger.FromRequest(r)
	conn := h.connectionOf(r)
	route, _ := routing.RouteFromContext(r.Context())

	links, err := h.links(r, conn)
	if err != nil {
		log.Err(err).Str("route", route).Msg("error generating page links")
		if _, err = utils.WriteError(w, app.MsgLinkGenerationFailed, statusFromError(err)); err != nil {
			log.Err(err).Msg("error writing response")
		}
		return
	}

	if _, err = utils.WriteJSON(w, models.PageResponse{
		Route:    route,
		Protocol: conn.Protocol.Scheme(),
		Message:  message,
		Links:    links,
	}, status); err != nil {
		log.Err(err).Msg("error writing page")
	}
}

func (h *Handler) links(r *http.Request, conn models.ConnectionState) (map[string]string, error) {
	links := make(map[string]string, len(navigation))
	for _, link := range navigation {
		u, err := h.services.URLService.CreateURL(r.Context(), conn, link.route, link.params)
		if err != nil {
			return nil, err
		}
		links[link.name] = u
	}
	return links, nil
}
