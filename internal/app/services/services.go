package services

import (
	"nutritrack/internal/app/deps"
	drl "nutritrack/internal/core/domain/rate_limiter"
	"nutritrack/internal/core/services"
	firereminder "nutritrack/internal/core/services/fire_reminder"
	getnotificationsettings "nutritrack/internal/core/services/get_notification_settings"
	getperiodsummary "nutritrack/internal/core/services/get_period_summary"
	listarmedreminders "nutritrack/internal/core/services/list_armed_reminders"
	listreminderdeliveries "nutritrack/internal/core/services/list_reminder_deliveries"
	np "nutritrack/internal/core/services/notification_permission"
	ratelimiting "nutritrack/internal/core/services/rate_limiting"
	resolveperiodrange "nutritrack/internal/core/services/resolve_period_range"
	schedulereminders "nutritrack/internal/core/services/schedule_reminders"
	updatenotificationsettings "nutritrack/internal/core/services/update_notification_settings"
)

type Services struct {
	ResolvePeriodRange services.Service[resolveperiodrange.Input, resolveperiodrange.Result]
	GetPeriodSummary   services.Service[getperiodsummary.Input, getperiodsummary.Result]

	GetNotificationSettings    services.Service[getnotificationsettings.Input, getnotificationsettings.Result]
	UpdateNotificationSettings services.Service[updatenotificationsettings.Input, updatenotificationsettings.Result]

	GetNotificationPermission     services.Service[np.GetInput, np.Result]
	RequestNotificationPermission services.Service[np.RequestInput, np.Result]
	SetNotificationPermission     services.Service[np.SetInput, np.Result]

	FireReminder           services.Service[firereminder.Input, firereminder.Result]
	ScheduleReminders      services.Service[schedulereminders.Input, schedulereminders.Result]
	ListArmedReminders     services.Service[listarmedreminders.Input, listarmedreminders.Result]
	ListReminderDeliveries services.Service[listreminderdeliveries.Input, listreminderdeliveries.Result]
}

func InitServices(deps *deps.Deps) *Services {
	s := &Services{}

	s.ResolvePeriodRange = resolveperiodrange.New(deps.Logger, deps.Location, deps.Now)
	s.GetPeriodSummary = ratelimiting.WithRateLimiting(
		deps.Logger,
		deps.RateLimiter,
		drl.Limit{Interval: drl.Minute, Value: deps.Config.SummaryRateLimitPerMinute},
		getperiodsummary.New(
			deps.Logger,
			s.ResolvePeriodRange,
			deps.SummaryClient,
		),
	)

	s.FireReminder = firereminder.New(
		deps.Logger,
		deps.PermissionHost,
		deps.Notifier,
		deps.DeliveryRepository,
		deps.Now,
	)
	s.ScheduleReminders = schedulereminders.New(
		deps.Logger,
		deps.SettingsRepository,
		deps.Scheduler,
		s.FireReminder,
		deps.DailySummaryAt,
	)

	s.GetNotificationSettings = getnotificationsettings.New(deps.Logger, deps.SettingsRepository)
	s.UpdateNotificationSettings = updatenotificationsettings.New(
		deps.Logger,
		deps.SettingsRepository,
		s.ScheduleReminders,
	)

	s.GetNotificationPermission = np.NewGet(deps.Logger, deps.PermissionHost)
	s.RequestNotificationPermission = np.NewRequest(deps.Logger, deps.PermissionHost)
	s.SetNotificationPermission = np.NewSet(deps.Logger, deps.PermissionHost)

	s.ListArmedReminders = listarmedreminders.New(deps.Scheduler)
	s.ListReminderDeliveries = listreminderdeliveries.New(deps.Logger, deps.DeliveryRepository)

	return s
}
