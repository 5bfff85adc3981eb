package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"ethub/internal/audit"
	casemodels "ethub/internal/cases/models"
	"ethub/internal/features"
	"ethub/internal/hub/links"
	"ethub/internal/hub/metrics"
	"ethub/internal/hub/models"
	dErrors "ethub/pkg/domain-errors"
	"ethub/pkg/platform/sentinel"
)

const englishParam = "?lng=en"

// CaseStore loads and persists case records.
type CaseStore interface {
	FindByID(ctx context.Context, caseID string) (*casemodels.Case, error)
	Save(ctx context.Context, c *casemodels.Case) error
}

// AuditPublisher records status changes.
type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event)
}

// Service loads cases, seeds their status maps on first visit and assembles
// hub views. Status changes go through UpdateLinkStatus, RecordVisit and
// ResetStatuses, each of which persists the case.
type Service struct {
	cases   CaseStore
	flags   features.Flags
	auditor AuditPublisher
	metrics *metrics.Metrics
	logger  *slog.Logger
	tracer  trace.Tracer
}

// Option configures the Service.
type Option func(*Service)

// WithMetrics sets the metrics collector.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithAuditor sets the audit publisher.
func WithAuditor(a AuditPublisher) Option {
	return func(s *Service) {
		s.auditor = a
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		s.logger = l
	}
}

// WithFlags sets the feature flags. Without it Welsh links are never produced.
func WithFlags(f features.Flags) Option {
	return func(s *Service) {
		s.flags = f
	}
}

// New creates a hub Service.
func New(cases CaseStore, opts ...Option) *Service {
	s := &Service{
		cases:  cases,
		flags:  features.StaticFlags{},
		logger: slog.Default(),
		tracer: otel.Tracer("ethub/internal/hub/service"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Hub builds the view of a flow for a case. The flow's status map is seeded
// and persisted the first time it is requested.
func (s *Service) Hub(ctx context.Context, userID, caseID string, flow models.Flow, requestURL string) (view *models.HubView, err error) {
	start := time.Now()
	ctx, span := s.startSpan(ctx, "hub.Hub", caseID, flow)
	defer func() { endSpan(span, err) }()

	c, err := s.loadCase(ctx, userID, caseID)
	if err != nil {
		return nil, err
	}

	statuses := c.StatusesFor(flow)
	if statuses == nil {
		statuses = links.DefaultStatuses(flow)
		c.SetStatusesFor(flow, statuses)
		if err := s.saveCase(ctx, c); err != nil {
			return nil, err
		}
		s.metrics.IncrementSeeded(flow.String())
		s.emit(ctx, audit.Event{CaseID: caseID, UserID: userID, Flow: flow.String(), Action: audit.ActionStatusesSeeded})
	}

	langParam := s.languageParam(ctx, requestURL)
	sections, err := links.BuildSections(flow, statuses, langParam)
	if err != nil {
		s.logger.ErrorContext(ctx, "hub status table misconfigured",
			"case_id", caseID,
			"flow", flow.String(),
			"error", err,
		)
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to build hub")
	}

	s.metrics.IncrementRender(flow.String())
	s.metrics.ObserveBuildLatency(time.Since(start))

	return &models.HubView{
		CaseID:         c.ID,
		CaseReference:  c.EthosCaseReference,
		ClaimantName:   c.ClaimantName(),
		RespondentName: c.RespondentName,
		Flow:           flow,
		LanguageParam:  langParam,
		Sections:       sections,
	}, nil
}

// UpdateLinkStatus stores a new status for one link. Setting the current
// status again is a no-op.
func (s *Service) UpdateLinkStatus(ctx context.Context, userID, caseID string, flow models.Flow, name models.LinkName, status models.LinkStatus) (err error) {
	ctx, span := s.startSpan(ctx, "hub.UpdateLinkStatus", caseID, flow)
	defer func() { endSpan(span, err) }()

	if !flow.Has(name) {
		return dErrors.New(dErrors.CodeInvalidInput, "unknown link for flow")
	}
	if !status.IsValid() {
		return dErrors.New(dErrors.CodeInvalidInput, "unknown link status")
	}

	c, err := s.loadCase(ctx, userID, caseID)
	if err != nil {
		return err
	}

	_, err = s.transition(ctx, c, userID, flow, name, status, audit.ActionStatusUpdated)
	return err
}

// RecordVisit applies the visit transition to a link and returns the link as
// it should now be followed. Links that are not clickable, or whose page does
// not exist yet, are returned unchanged.
func (s *Service) RecordVisit(ctx context.Context, userID, caseID string, flow models.Flow, name models.LinkName, requestURL string) (link models.Link, err error) {
	ctx, span := s.startSpan(ctx, "hub.RecordVisit", caseID, flow)
	defer func() { endSpan(span, err) }()

	if !flow.Has(name) {
		return models.Link{}, dErrors.New(dErrors.CodeInvalidInput, "unknown link for flow")
	}

	c, err := s.loadCase(ctx, userID, caseID)
	if err != nil {
		return models.Link{}, err
	}

	langParam := s.languageParam(ctx, requestURL)
	link, err = links.BuildLink(flow, c.StatusesFor(flow), name, langParam)
	if err != nil {
		return models.Link{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to build link")
	}
	if !link.Clickable || links.IsPlaceholder(link.URL) {
		return link, nil
	}

	next, ok := visitTransitions[link.Status]
	if !ok {
		return link, nil
	}
	statuses, err := s.transition(ctx, c, userID, flow, name, next, audit.ActionLinkVisited)
	if err != nil {
		return models.Link{}, err
	}
	link, err = links.BuildLink(flow, statuses, name, langParam)
	if err != nil {
		return models.Link{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to build link")
	}
	return link, nil
}

// ResetStatuses replaces the flow's status map with its defaults.
func (s *Service) ResetStatuses(ctx context.Context, userID, caseID string, flow models.Flow) (err error) {
	ctx, span := s.startSpan(ctx, "hub.ResetStatuses", caseID, flow)
	defer func() { endSpan(span, err) }()

	c, err := s.loadCase(ctx, userID, caseID)
	if err != nil {
		return err
	}
	c.SetStatusesFor(flow, links.DefaultStatuses(flow))
	if err := s.saveCase(ctx, c); err != nil {
		return err
	}
	s.emit(ctx, audit.Event{CaseID: caseID, UserID: userID, Flow: flow.String(), Action: audit.ActionStatusesReset})
	return nil
}

// visitTransitions moves a link forward when the user opens it.
var visitTransitions = map[models.LinkStatus]models.LinkStatus{
	models.StatusNotViewedYet:  models.StatusViewed,
	models.StatusUpdated:       models.StatusViewed,
	models.StatusNotStartedYet: models.StatusInProgress,
}

// transition mutates the case's status map in place and persists it. The
// returned map is the one now stored on the case.
func (s *Service) transition(
	ctx context.Context,
	c *casemodels.Case,
	userID string,
	flow models.Flow,
	name models.LinkName,
	to models.LinkStatus,
	action string,
) (models.Statuses, error) {
	statuses := c.StatusesFor(flow)
	if statuses == nil {
		statuses = links.DefaultStatuses(flow)
		c.SetStatusesFor(flow, statuses)
	}
	from := links.StatusOf(flow, statuses, name)
	if from == to {
		return statuses, nil
	}
	statuses[name] = to
	if err := s.saveCase(ctx, c); err != nil {
		return nil, err
	}

	s.metrics.IncrementStatusUpdate(flow.String(), to.String())
	s.emit(ctx, audit.Event{
		CaseID: c.ID,
		UserID: userID,
		Flow:   flow.String(),
		Link:   name.String(),
		From:   from.String(),
		To:     to.String(),
		Action: action,
	})
	s.logger.InfoContext(ctx, "link status changed",
		"case_id", c.ID,
		"flow", flow.String(),
		"link", name.String(),
		"from", from.String(),
		"to", to.String(),
	)
	return statuses, nil
}

func (s *Service) loadCase(ctx context.Context, userID, caseID string) (*casemodels.Case, error) {
	if caseID == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "case id is required")
	}
	c, err := s.cases.FindByID(ctx, caseID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "case not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load case")
	}
	if !c.HasParticipant(userID) {
		s.logger.WarnContext(ctx, "case access denied", "case_id", caseID, "user_id", userID)
		return nil, dErrors.New(dErrors.CodeForbidden, "case not accessible")
	}
	return c, nil
}

func (s *Service) saveCase(ctx context.Context, c *casemodels.Case) error {
	if err := s.cases.Save(ctx, c); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to save case")
	}
	return nil
}

func (s *Service) languageParam(ctx context.Context, requestURL string) string {
	if !s.flags.WelshEnabled(ctx) {
		return englishParam
	}
	return links.LanguageParam(requestURL)
}

func (s *Service) emit(ctx context.Context, e audit.Event) {
	if s.auditor != nil {
		s.auditor.Emit(ctx, e)
	}
}

func (s *Service) startSpan(ctx context.Context, name, caseID string, flow models.Flow) (context.Context, trace.Span) {
	return s.tracer.Start(ctx, name, trace.WithAttributes(
		attribute.String("hub.case_id", caseID),
		attribute.String("hub.flow", flow.String()),
	))
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
