package reports

import (
	"github.com/dmitrymomot/interviewpro/handler"
	"github.com/dmitrymomot/interviewpro/pkg/entitlement"
	"github.com/dmitrymomot/interviewpro/pkg/gate"
	"github.com/dmitrymomot/interviewpro/pkg/logger"
)

// stream keeps a datastar connection open and re-renders the feature's gate
// and the plan badge after every tier selection of the session.
func (s *Service) stream(ctx *Context, req featureRequest) handler.Response {
	content, err := s.content(ctx, req.Feature)
	if err != nil {
		return handler.Error(err)
	}
	g := gate.New(ctx.State, s.catalog, gate.WithPolicy(s.policy))
	target := handler.WithTarget("#" + gate.ElementID(req.Feature))

	return handler.SSE(func(stream handler.StreamContext) error {
		// Coalesces bursts of selections; the listener never blocks SetTier.
		changed := make(chan struct{}, 1)
		unsubscribe := ctx.State.Subscribe(func(entitlement.Change) {
			select {
			case changed <- struct{}{}:
			default:
			}
		})
		defer unsubscribe()

		s.log.DebugContext(stream, "gate stream opened",
			logger.Component("reports"),
			logger.Feature(req.Feature.String()),
			logger.SessionID(ctx.Session.ID),
		)

		for {
			select {
			case <-stream.Done():
				return nil
			case <-changed:
				if err := stream.SendComponent(g.Render(req.Feature, content), target); err != nil {
					return err
				}
				badge := s.views.PlanBadge(ctx.State.Tier())
				if err := stream.SendComponent(badge, handler.WithTarget("#"+BadgeID)); err != nil {
					return err
				}
			}
		}
	})
}
