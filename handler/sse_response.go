package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"
)

// StreamContext is the Context of a long-lived datastar stream.
type StreamContext interface {
	Context
	// SendComponent patches c into the page.
	SendComponent(c templ.Component, opts ...TemplOption) error
	// SendSignals merges signals into the client's signal store.
	SendSignals(signals map[string]any) error
}

// SSEHandler runs for the lifetime of a stream. The stream ends when it returns
// or when the client disconnects and Done is closed.
type SSEHandler func(stream StreamContext) error

type sseResponse struct {
	handler SSEHandler
}

func (s sseResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if !IsDataStar(r) {
		return errors.Join(ErrBadRequest, ErrDataStarRequired)
	}
	if _, ok := w.(http.Flusher); !ok {
		return ErrStreamNotSupported
	}

	return s.handler(&streamContext{
		Context: NewContext(w, r),
		sse:     datastar.NewSSE(w, r),
	})
}

// SSE keeps the connection open and hands a StreamContext to h.
//
//	return handler.SSE(func(stream handler.StreamContext) error {
//		for {
//			select {
//			case <-stream.Done():
//				return nil
//			case msg := <-updates:
//				if err := stream.SendComponent(views.Message(msg)); err != nil {
//					return err
//				}
//			}
//		}
//	})
func SSE(h SSEHandler) Response {
	return sseResponse{handler: h}
}

type streamContext struct {
	Context
	sse *datastar.ServerSentEventGenerator
}

func (c *streamContext) SendComponent(comp templ.Component, opts ...TemplOption) error {
	return c.sse.PatchElementTempl(comp, opts...)
}

func (c *streamContext) SendSignals(signals map[string]any) error {
	data, err := json.Marshal(signals)
	if err != nil {
		return err
	}
	return c.sse.PatchSignals(data)
}
