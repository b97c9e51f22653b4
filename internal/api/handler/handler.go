package handler

import "time4swim/backend/internal/service"

// Handler aggregates every HTTP handler.
type Handler struct {
	Auth    *AuthHandler
	Club    *ClubHandler
	Swimmer *SwimmerHandler
	Event   *EventHandler
	Heat    *HeatHandler
	Timer   *TimerHandler
	Result  *ResultHandler
	Export  *ExportHandler
}

// NewHandler wires the handler layer.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(svc.Auth),
		Club:    NewClubHandler(svc.Club),
		Swimmer: NewSwimmerHandler(svc.Swimmer),
		Event:   NewEventHandler(svc.Event),
		Heat:    NewHeatHandler(svc.Heat),
		Timer:   NewTimerHandler(svc.Timer, svc.Event),
		Result:  NewResultHandler(svc.Result),
		Export:  NewExportHandler(svc.Export),
	}
}
