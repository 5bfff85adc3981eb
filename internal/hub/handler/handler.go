package handler

import (
	"context"
	"embed"
	"encoding/json"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"ethub/internal/features"
	"ethub/internal/hub/links"
	"ethub/internal/hub/models"
	"ethub/internal/i18n"
	"ethub/internal/platform/metrics"
	"ethub/internal/platform/middleware"
	dErrors "ethub/pkg/domain-errors"
	"ethub/pkg/platform/httputil"
	"ethub/pkg/platform/middleware/language"
	"ethub/pkg/platform/middleware/metadata"
	"ethub/pkg/platform/middleware/requesttime"
	"ethub/pkg/requestcontext"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// Service defines the interface for hub operations.
type Service interface {
	Hub(ctx context.Context, userID, caseID string, flow models.Flow, requestURL string) (*models.HubView, error)
	UpdateLinkStatus(ctx context.Context, userID, caseID string, flow models.Flow, name models.LinkName, status models.LinkStatus) error
	RecordVisit(ctx context.Context, userID, caseID string, flow models.Flow, name models.LinkName, requestURL string) (models.Link, error)
	ResetStatuses(ctx context.Context, userID, caseID string, flow models.Flow) error
}

// Translations picks the strings for a page language.
type Translations interface {
	For(lang string) i18n.Translator
}

// Handler serves the hub pages and the hub JSON API.
type Handler struct {
	logger       *slog.Logger
	hub          Service
	translations Translations
	flags        features.Flags
	metrics      *metrics.Metrics
	jwtValidator middleware.JWTValidator
}

// New creates a new hub Handler.
func New(
	hub Service,
	translations Translations,
	flags features.Flags,
	logger *slog.Logger,
	metrics *metrics.Metrics,
	jwtValidator middleware.JWTValidator) *Handler {
	return &Handler{
		logger:       logger,
		hub:          hub,
		translations: translations,
		flags:        flags,
		metrics:      metrics,
		jwtValidator: jwtValidator,
	}
}

// Register registers the hub routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	hubRouter := chi.NewRouter()
	hubRouter.Use(middleware.Recovery(h.logger))
	hubRouter.Use(middleware.RequestID)
	hubRouter.Use(metadata.ClientMetadata)
	hubRouter.Use(middleware.Logger(h.logger))
	hubRouter.Use(middleware.Timeout(30 * time.Second))
	hubRouter.Use(requesttime.Middleware)
	hubRouter.Use(middleware.LatencyMiddleware(h.metrics))
	hubRouter.Use(middleware.RequireAuth(h.jwtValidator, h.logger))

	hubRouter.Group(func(pr chi.Router) {
		pr.Use(language.Middleware(h.flags))
		pr.Get("/response-hub/{caseId}", h.handlePage(models.FlowClaimantHub))
		pr.Get("/case-details/{caseId}", h.handlePage(models.FlowCaseDetails))
		pr.Get("/case-details/{caseId}/et3-response", h.handlePage(models.FlowET3Hub))
		pr.Get("/hub/{caseId}/links/{flow}/{linkName}", h.handleVisit)
	})

	hubRouter.Group(func(ar chi.Router) {
		ar.Use(middleware.ContentTypeJSON)
		ar.Get("/api/cases/{caseId}/hub/{flow}", h.handleGetHub)
		ar.Put("/api/cases/{caseId}/hub/{flow}/links/{linkName}", h.handleUpdateStatus)
		ar.Post("/api/cases/{caseId}/hub/{flow}/reset", h.handleReset)
	})

	r.Mount("/", hubRouter)
}

// PagePath is the hub page a flow is rendered on.
func PagePath(flow models.Flow, caseID string) string {
	switch flow {
	case models.FlowCaseDetails:
		return "/case-details/" + caseID
	case models.FlowET3Hub:
		return "/case-details/" + caseID + "/et3-response"
	default:
		return "/response-hub/" + caseID
	}
}

// UpdateStatusRequest is the body of a link status update.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type pageData struct {
	Lang      string
	T         func(key string) string
	TitleKey  string
	View      *models.HubView
	VisitBase string
	SwitchURL string
	SwitchKey string
}

type errorData struct {
	Lang       string
	T          func(key string) string
	MessageKey string
}

func (h *Handler) handlePage(flow models.Flow) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		caseID := chi.URLParam(r, "caseId")

		view, err := h.hub.Hub(ctx, h.userID(ctx), caseID, flow, r.URL.RequestURI())
		if err != nil {
			h.logFailure(ctx, "failed to build hub page", err)
			h.renderError(w, r, err)
			return
		}

		lang := requestcontext.Language(ctx)
		data := pageData{
			Lang:      lang,
			T:         h.translations.For(lang).T,
			TitleKey:  "page." + flow.String() + ".title",
			View:      view,
			VisitBase: "/hub/" + view.CaseID + "/links/" + flow.String() + "/",
		}
		if h.flags.WelshEnabled(ctx) {
			data.SwitchURL, data.SwitchKey = switchLink(r, lang)
		}
		h.render(w, r, http.StatusOK, "hub.html", data)
	}
}

// handleVisit records that the user opened a link and sends them on to it.
// Links that cannot be followed send the user back to their hub.
func (h *Handler) handleVisit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caseID := chi.URLParam(r, "caseId")

	flow, name, err := parseLinkParams(r)
	if err != nil {
		h.renderError(w, r, dErrors.New(dErrors.CodeNotFound, "unknown link"))
		return
	}

	link, err := h.hub.RecordVisit(ctx, h.userID(ctx), caseID, flow, name, r.URL.RequestURI())
	if err != nil {
		h.logFailure(ctx, "failed to record link visit", err)
		h.renderError(w, r, err)
		return
	}

	target := link.URL
	if !link.Clickable || links.IsPlaceholder(target) {
		// link.URL already carries the suffix chosen under the Welsh toggle.
		target = PagePath(flow, caseID) + links.LanguageParam(link.URL)
	}
	http.Redirect(w, r, target, http.StatusFound)
}

func (h *Handler) handleGetHub(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caseID := chi.URLParam(r, "caseId")

	flow, err := models.ParseFlow(chi.URLParam(r, "flow"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	view, err := h.hub.Hub(ctx, h.userID(ctx), caseID, flow, r.URL.RequestURI())
	if err != nil {
		h.logFailure(ctx, "failed to build hub", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, view)
}

func (h *Handler) handleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)
	caseID := chi.URLParam(r, "caseId")

	flow, name, err := parseLinkParams(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	var req UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "invalid update status request",
			"request_id", requestID,
			"error", err.Error(),
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	status, err := models.ParseLinkStatus(req.Status)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	if err := h.hub.UpdateLinkStatus(ctx, h.userID(ctx), caseID, flow, name, status); err != nil {
		h.logFailure(ctx, "failed to update link status", err)
		httputil.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleReset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caseID := chi.URLParam(r, "caseId")

	flow, err := models.ParseFlow(chi.URLParam(r, "flow"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if err := h.hub.ResetStatuses(ctx, h.userID(ctx), caseID, flow); err != nil {
		h.logFailure(ctx, "failed to reset link statuses", err)
		httputil.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func parseLinkParams(r *http.Request) (models.Flow, models.LinkName, error) {
	flow, err := models.ParseFlow(chi.URLParam(r, "flow"))
	if err != nil {
		return "", "", err
	}
	name, err := models.ParseLinkName(flow, chi.URLParam(r, "linkName"))
	if err != nil {
		return "", "", err
	}
	return flow, name, nil
}

func (h *Handler) userID(ctx context.Context) string {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		h.logger.ErrorContext(ctx, "userID missing from context despite auth middleware",
			"request_id", middleware.GetRequestID(ctx),
		)
	}
	return userID
}

// logFailure logs client errors at Warn and everything else at Error.
func (h *Handler) logFailure(ctx context.Context, msg string, err error) {
	attrs := []any{
		"request_id", middleware.GetRequestID(ctx),
		"error", err.Error(),
	}
	if dErrors.CodeOf(err) == dErrors.CodeInternal {
		h.logger.ErrorContext(ctx, msg, attrs...)
		return
	}
	h.logger.WarnContext(ctx, msg, attrs...)
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := pages.ExecuteTemplate(w, name, data); err != nil {
		h.logger.ErrorContext(r.Context(), "failed to render template",
			"template", name,
			"request_id", middleware.GetRequestID(r.Context()),
			"error", err,
		)
	}
}

func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, err error) {
	code := dErrors.CodeOf(err)
	messageKey := "page.error.title"
	switch code {
	case dErrors.CodeNotFound:
		messageKey = "page.error.notFound"
	case dErrors.CodeForbidden:
		messageKey = "page.error.forbidden"
	}
	lang := requestcontext.Language(r.Context())
	h.render(w, r, httputil.StatusFor(code), "error.html", errorData{
		Lang:       lang,
		T:          h.translations.For(lang).T,
		MessageKey: messageKey,
	})
}

// switchLink points the current page at the other language.
func switchLink(r *http.Request, lang string) (url, key string) {
	other := language.Welsh
	if lang == language.Welsh {
		other = language.English
	}
	q := r.URL.Query()
	q.Set(language.QueryParam, other)
	return r.URL.Path + "?" + q.Encode(), "page.language.switch"
}
