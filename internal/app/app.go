package app

import (
	"fmt"
	"net/http"

	"nutritrack/internal/app/deps"
	"nutritrack/internal/app/services"
	"nutritrack/internal/http/handlers/notifications/events"
	listarmedreminders "nutritrack/internal/http/handlers/notifications/list_armed_reminders"
	listdeliveries "nutritrack/internal/http/handlers/notifications/list_deliveries"
	"nutritrack/internal/http/handlers/notifications/permission"
	"nutritrack/internal/http/handlers/notifications/settings"
	getperiodsummary "nutritrack/internal/http/handlers/periods/get_period_summary"
	resolveperiodrange "nutritrack/internal/http/handlers/periods/resolve_period_range"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func InitHttpServer(deps *deps.Deps, s *services.Services) *http.Server {
	periodsRouter := chi.NewRouter()
	periodsRouter.Method(http.MethodGet, "/range", resolveperiodrange.New(s.ResolvePeriodRange))
	periodsRouter.Method(http.MethodGet, "/summary", getperiodsummary.New(s.GetPeriodSummary))

	notificationsRouter := chi.NewRouter()
	notificationsRouter.Method(http.MethodGet, "/settings", settings.NewGet(s.GetNotificationSettings))
	notificationsRouter.Method(http.MethodPut, "/settings", settings.NewUpdate(s.UpdateNotificationSettings))
	notificationsRouter.Method(http.MethodGet, "/permission", permission.NewGet(s.GetNotificationPermission))
	notificationsRouter.Method(http.MethodPut, "/permission", permission.NewSet(s.SetNotificationPermission))
	notificationsRouter.Method(
		http.MethodPost,
		"/permission/request",
		permission.NewRequest(s.RequestNotificationPermission),
	)
	notificationsRouter.Method(http.MethodGet, "/reminders", listarmedreminders.New(s.ListArmedReminders))
	notificationsRouter.Method(http.MethodGet, "/deliveries", listdeliveries.New(s.ListReminderDeliveries))
	notificationsRouter.Method(
		http.MethodGet,
		"/events",
		events.New(deps.Logger, deps.SseServer, deps.Config.NotificationsStream),
	)

	router := chi.NewRouter()
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))
	router.Mount("/periods", periodsRouter)
	router.Mount("/notifications", notificationsRouter)

	address := fmt.Sprintf("0.0.0.0:%d", deps.Config.Port)

	return &http.Server{
		Handler: router,
		Addr:    address,
	}
}
