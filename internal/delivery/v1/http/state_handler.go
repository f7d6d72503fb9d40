package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/DRSN-tech/storefront/internal/store"
	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/go-chi/chi/v5"
)

const (
	eventBuffer       = 16
	heartbeatInterval = 25 * time.Second
)

type StateHandler struct {
	storefrontUsecase usecase.StorefrontUC
	logger            logger.Logger
}

func NewStateHandler(storefrontUsecase usecase.StorefrontUC, logger logger.Logger) *StateHandler {
	return &StateHandler{storefrontUsecase: storefrontUsecase, logger: logger}
}

// getState
//
//	@Summary		Снимок витрины
//	@Description	Фильтры, видимые товары, корзина, диалог и панели одной версии
//	@Tags			state
//	@Produce		json
//	@Success		200	{object}	StateResponse
//	@Router			/state [get]
func (s *StateHandler) getState(w http.ResponseWriter, r *http.Request) {
	view := s.storefrontUsecase.View(r.Context(), s.storefrontUsecase.State())
	WriteSuccess(w, http.StatusOK, toStateResponse(view))
}

// setPanel
//
//	@Summary	Открыть или закрыть панель
//	@Tags		state
//	@Accept		json
//	@Produce	json
//	@Param		panel	path		string			true	"cart, chat или menu"
//	@Param		state	body		SetPanelRequest	true	"Состояние"
//	@Success	200		{object}	PanelsResponse
//	@Failure	400		{object}	ErrorResponse
//	@Router		/ui/{panel} [put]
func (s *StateHandler) setPanel(w http.ResponseWriter, r *http.Request) {
	var req SetPanelRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.logger.Warnf("%d %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}
	if req.Open == nil {
		WriteError(w, e.Wrap("open", e.ErrInvalidRequestBody))
		return
	}

	panels, err := s.storefrontUsecase.SetPanel(chi.URLParam(r, "panel"), *req.Open)
	if err != nil {
		s.logger.Warnf("%d %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toPanelsResponse(panels))
}

// streamEvents
//
//	@Summary		Поток изменений
//	@Description	Server-sent events. Первое событие snapshot содержит текущее состояние, далее по событию
//	@Description	на каждое изменение. Медленный клиент может пропустить события и должен сверять version.
//	@Tags			state
//	@Produce		text/event-stream
//	@Success		200	{object}	StateResponse
//	@Router			/events [get]
func (s *StateHandler) streamEvents(w http.ResponseWriter, r *http.Request) {
	rc := http.NewResponseController(w)
	if err := rc.SetWriteDeadline(time.Time{}); err != nil {
		s.logger.Debugf("events: write deadline not supported: %v", err)
	}

	events := make(chan store.Event, eventBuffer)
	unsubscribe := s.storefrontUsecase.Subscribe(func(ev store.Event) {
		select {
		case events <- ev:
		default:
		}
	})
	defer unsubscribe()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)

	ctx := r.Context()
	if err := s.writeEvent(w, rc, "snapshot", s.storefrontUsecase.View(ctx, s.storefrontUsecase.State())); err != nil {
		s.logger.Debugf("events: client gone: %v", err)
		return
	}

	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-events:
			if err := s.writeEvent(w, rc, string(ev.Kind), s.storefrontUsecase.View(ctx, ev.State)); err != nil {
				s.logger.Debugf("events: client gone: %v", err)
				return
			}
		case <-heartbeat.C:
			if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
				return
			}
			if err := rc.Flush(); err != nil {
				return
			}
		}
	}
}

func (s *StateHandler) writeEvent(w http.ResponseWriter, rc *http.ResponseController, kind string, view *usecase.StateView) error {
	data, err := json.Marshal(toStateResponse(view))
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "id: %d\nevent: %s\ndata: %s\n\n", view.State.Version, kind, data); err != nil {
		return err
	}
	return rc.Flush()
}
