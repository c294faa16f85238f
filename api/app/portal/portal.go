package portal

import (
	"html/template"
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/csrf"
	"github.com/prologistix/backend/api/auth"
	"github.com/prologistix/backend/config"
	"go.uber.org/zap"
)

// PortalRessource serves the browser facing side of the backend: the
// login form, the admin panel and its static assets. Everything JSON
// lives in the review and stats ressources.
type PortalRessource struct {
	loginTmpl         *template.Template
	adminTmpl         *template.Template
	fourOFourTemplate *template.Template

	log       *zap.Logger
	signIn    SignIner
	sessions  SessionManager
	codec     *auth.CookieCodec
	serverCfg *config.ServerConfiguration
	statics   fs.FS
}

func (p *PortalRessource) Router() *chi.Mux {
	r := chi.NewRouter()

	antiForgery := csrf.Protect(
		[]byte(p.serverCfg.CSRFToken),
		csrf.Secure(p.serverCfg.SecureCookies),
	)
	r.Use(antiForgery)

	r.Get("/", p.index)

	r.Get("/login", p.loginPage)
	r.Post("/login", p.login)

	r.Get("/logout", p.logout)

	r.Group(func(gr chi.Router) {
		gr.Use(auth.RequireSession(p.codec, p.sessions, auth.DenyWithRedirect("/login")))
		gr.Get("/admin", p.adminPage)
	})

	fileServer := http.FileServer(noDirectoryListingFs{http.FS(p.statics)})
	r.Handle("/static/*", http.StripPrefix("/static/", fileServer))

	r.NotFound(p.fourOFour)
	return r
}

func (p *PortalRessource) index(w http.ResponseWriter, r *http.Request) {
	_, _ = w.Write([]byte("PROLOGISTIX backend is running"))
}

func (p *PortalRessource) signedIn(r *http.Request) bool {
	token, err := p.codec.TokenFromRequest(r)
	if err != nil {
		return false
	}
	return p.sessions.Validate(r.Context(), token)
}

func (p *PortalRessource) loginPage(w http.ResponseWriter, r *http.Request) {
	if p.signedIn(r) {
		http.Redirect(w, r, "/admin", http.StatusFound)
		return
	}
	err := p.loginTmpl.Execute(w, map[string]interface{}{
		csrf.TemplateTag: csrf.TemplateField(r),
	})
	if err != nil {
		p.log.Error("unable to render template for login page", zap.Error(err))
	}
}

func (p *PortalRessource) login(w http.ResponseWriter, r *http.Request) {
	err := r.ParseForm()
	if err != nil {
		p.log.Error("login: ParseForm failed", zap.Error(err))
	}
	username := r.FormValue("username")
	password := r.FormValue("password")

	if err := p.signIn.SignIn(username, password); err != nil {
		// one generic outcome for a wrong username and a wrong password
		w.WriteHeader(http.StatusUnauthorized)
		err := p.loginTmpl.Execute(w, map[string]interface{}{
			"error":          "unknown_or_invalid",
			"username":       username,
			csrf.TemplateTag: csrf.TemplateField(r),
		})
		if err != nil {
			p.log.Error("unable to render template for login page", zap.Error(err))
		}
		return
	}

	token, expires, err := p.sessions.Issue(r.Context())
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	if err := p.codec.Issue(w, token, expires); err != nil {
		p.log.Error("unable to issue session cookie", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/admin", http.StatusFound)
}

func (p *PortalRessource) logout(w http.ResponseWriter, r *http.Request) {
	token, err := p.codec.TokenFromRequest(r)
	if err == nil {
		if err := p.sessions.Revoke(r.Context(), token); err != nil {
			p.log.Error("unable to revoke session", zap.Error(err))
		}
	}
	p.codec.Clear(w)
	http.Redirect(w, r, "/login", http.StatusFound)
}

func (p *PortalRessource) adminPage(w http.ResponseWriter, r *http.Request) {
	err := p.adminTmpl.Execute(w, map[string]interface{}{
		csrf.TemplateTag: csrf.TemplateField(r),
	})
	if err != nil {
		p.log.Error("unable to render template for admin page", zap.Error(err))
	}
}

func (p *PortalRessource) fourOFour(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotFound)
	err := p.fourOFourTemplate.Execute(w, map[string]interface{}{})
	if err != nil {
		p.log.Error("unable to render template for 404 page", zap.Error(err))
	}
}

func NewPortalRessource(
	log *zap.Logger,
	signIn SignIner,
	sessions SessionManager,
	codec *auth.CookieCodec,
	serverCfg *config.ServerConfiguration,
	fsConfig *config.FileSystems,
) *PortalRessource {
	loginTmpl, err := mustLoadTemplate(fsConfig.Templates, "login.html")
	if err != nil {
		log.Fatal(
			"unable to load required template file",
			zap.String("file", "login.html"),
			zap.Error(err),
		)
	}

	adminTmpl, err := mustLoadTemplate(fsConfig.Templates, "admin.html")
	if err != nil {
		log.Fatal(
			"unable to load required template file",
			zap.String("file", "admin.html"),
			zap.Error(err),
		)
	}

	fourOFour, err := mustLoadTemplate(fsConfig.Templates, "404.html")
	if err != nil {
		log.Fatal(
			"unable to load required template file",
			zap.String("file", "404.html"),
			zap.Error(err),
		)
	}

	return &PortalRessource{
		loginTmpl:         loginTmpl,
		adminTmpl:         adminTmpl,
		fourOFourTemplate: fourOFour,
		log:               log,
		signIn:            signIn,
		sessions:          sessions,
		codec:             codec,
		serverCfg:         serverCfg,
		statics:           fsConfig.StaticFolder,
	}
}
