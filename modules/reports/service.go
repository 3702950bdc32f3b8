package reports

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/interviewpro/handler"
	"github.com/dmitrymomot/interviewpro/pkg/binder"
	"github.com/dmitrymomot/interviewpro/pkg/entitlement"
	"github.com/dmitrymomot/interviewpro/pkg/gate"
	"github.com/dmitrymomot/interviewpro/pkg/logger"
)

// Service serves the protected report pages and the plan selection flow.
// It expects session.Manager.Middleware in front of it.
type Service struct {
	catalog      *entitlement.Catalog
	states       StateResolver
	source       ReportSource
	views        *Views
	policy       entitlement.Policy
	errorHandler handler.ErrorHandler[handler.Context]
	log          *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithPolicy replaces entitlement.DefaultPolicy.
func WithPolicy(p entitlement.Policy) Option {
	return func(s *Service) {
		if p != nil {
			s.policy = p
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithErrorHandler replaces the error handler built from Views.
func WithErrorHandler(h handler.ErrorHandler[handler.Context]) Option {
	return func(s *Service) {
		if h != nil {
			s.errorHandler = h
		}
	}
}

// NewService creates the reports module. Panics on missing dependencies.
func NewService(catalog *entitlement.Catalog, states StateResolver, source ReportSource, views *Views, opts ...Option) *Service {
	if catalog == nil || states == nil || source == nil || views == nil {
		panic("reports: catalog, states, source and views are required")
	}

	s := &Service{
		catalog: catalog,
		states:  states,
		source:  source,
		views:   views,
		policy:  entitlement.DefaultPolicy,
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.errorHandler == nil {
		s.errorHandler = handler.NewErrorHandler(s.log, handler.ErrorHandlerConfig{
			ErrorPage:  views.ErrorPage,
			ErrorToast: views.ErrorToast,
		})
	}
	return s
}

type featureRequest struct {
	Feature entitlement.Feature `path:"feature"`
}

type planRequest struct {
	Tier entitlement.Tier `path:"tier"`
}

// Handle returns the module router.
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/"+entitlement.FeatureResumeReport.String(), http.StatusFound)
	})
	r.Get("/resume-report", wrap(s, s.reportPage(entitlement.FeatureResumeReport)))
	r.Get("/interview-report", wrap(s, s.reportPage(entitlement.FeatureInterviewReport)))
	r.Get("/plans", wrap(s, s.plans))

	r.Post("/subscription/plan/{tier}", wrap(s, s.selectPlan, binder.ChiPath()))
	r.Get("/subscription/stream/{feature}", wrap(s, s.stream, binder.ChiPath()))

	r.Get("/subscription", wrapAPI(s, s.subscription))
	r.Get("/access/{feature}", wrapAPI(s, s.access, binder.ChiPath()))

	return r
}

func wrap[R any](s *Service, h handler.HandlerFunc[*Context, R], binders ...handler.Bind) http.HandlerFunc {
	return wrapWith(s, h, func(ctx *Context, err error) {
		s.errorHandler(ctx.Context, err)
	}, binders...)
}

// wrapAPI answers failures with a JSON error body instead of a page.
func wrapAPI[R any](s *Service, h handler.HandlerFunc[*Context, R], binders ...handler.Bind) http.HandlerFunc {
	return wrapWith(s, h, func(ctx *Context, err error) {
		s.log.WarnContext(ctx, "api request failed",
			logger.Component("reports"),
			logger.Error(err),
			slog.String("path", ctx.Request().URL.Path),
		)
		if rerr := handler.JSONError(err).Render(ctx.ResponseWriter(), ctx.Request()); rerr != nil {
			s.log.ErrorContext(ctx, "render api error", logger.Error(rerr))
		}
	}, binders...)
}

func wrapWith[R any](s *Service, h handler.HandlerFunc[*Context, R], onError handler.ErrorHandler[*Context], binders ...handler.Bind) http.HandlerFunc {
	return handler.Wrap(h,
		handler.WithContextFactory[*Context, R](contextFactory(s.states)),
		handler.WithBinders[*Context, R](binders...),
		handler.WithDecorators[*Context, R](requireState[R]),
		handler.WithErrorHandler[*Context, R](onError),
	)
}

func (s *Service) reportPage(feature entitlement.Feature) handler.HandlerFunc[*Context, struct{}] {
	return func(ctx *Context, _ struct{}) handler.Response {
		content, err := s.content(ctx, feature)
		if err != nil {
			return handler.Error(err)
		}

		g := gate.New(ctx.State, s.catalog, gate.WithPolicy(s.policy))
		gated := g.Render(feature, content)

		return handler.TemplPartial(gated, s.views.Layout(LayoutParams{
			Title:     feature.Title(),
			Path:      ctx.Request().URL.Path,
			Tier:      ctx.State.Tier(),
			Content:   gated,
			StreamURL: "/subscription/stream/" + feature.String(),
		}), handler.WithTarget("#"+gate.ElementID(feature)))
	}
}

// content loads the protected component for feature.
func (s *Service) content(ctx context.Context, feature entitlement.Feature) (templ.Component, error) {
	switch feature {
	case entitlement.FeatureResumeReport:
		rep, err := s.source.ResumeReport(ctx)
		if err != nil {
			return nil, errors.Join(ErrFailedToLoadReport, err)
		}
		return s.views.ResumeReport(rep), nil
	case entitlement.FeatureInterviewReport:
		rep, err := s.source.InterviewReport(ctx)
		if err != nil {
			return nil, errors.Join(ErrFailedToLoadReport, err)
		}
		return s.views.InterviewReport(rep), nil
	default:
		return nil, fmt.Errorf("%w: %q", entitlement.ErrInvalidFeatureKind, feature)
	}
}

func (s *Service) plans(ctx *Context, _ struct{}) handler.Response {
	page := s.views.PlansPage(PlansPageParams{
		Plans:     s.catalog.ListPlans(),
		Current:   ctx.State.Tier(),
		ActionURL: gate.DefaultActionURL,
	})
	return handler.Templ(s.views.Layout(LayoutParams{
		Title:   "Plans",
		Path:    ctx.Request().URL.Path,
		Tier:    ctx.State.Tier(),
		Content: page,
	}))
}

func (s *Service) selectPlan(ctx *Context, req planRequest) handler.Response {
	g := gate.New(ctx.State, s.catalog, gate.WithPolicy(s.policy))
	if err := g.Select(req.Tier); err != nil {
		return handler.Error(errors.Join(handler.ErrBadRequest, err))
	}

	s.log.InfoContext(ctx, "plan selected",
		logger.Component("reports"),
		logger.SessionID(ctx.Session.ID),
		logger.Tier(req.Tier.String()),
	)
	return handler.RedirectBack("/plans")
}

type subscriptionResponse struct {
	Tier  entitlement.Tier   `json:"tier"`
	Plans []entitlement.Plan `json:"plans"`
}

func (s *Service) subscription(ctx *Context, _ struct{}) handler.Response {
	return handler.JSON(subscriptionResponse{
		Tier:  ctx.State.Tier(),
		Plans: s.catalog.ListPlans(),
	})
}

type accessResponse struct {
	Feature entitlement.Feature `json:"feature"`
	Tier    entitlement.Tier    `json:"tier"`
	Access  bool                `json:"access"`
}

func (s *Service) access(ctx *Context, req featureRequest) handler.Response {
	tier := ctx.State.Tier()
	ok, err := s.policy.HasAccess(tier, req.Feature)
	if err != nil {
		return handler.Error(errors.Join(handler.ErrBadRequest, err))
	}

	s.log.DebugContext(ctx, "access checked",
		logger.Feature(req.Feature.String()),
		logger.Tier(tier.String()),
		logger.Access(ok),
	)
	return handler.JSON(accessResponse{Feature: req.Feature, Tier: tier, Access: ok})
}
