package container

import (
	"time"

	app "posture-monitor/internal/application"
	"posture-monitor/internal/domain/port"
)

type Container struct {
	Subscriptions *app.SubscriptionService
	Classifier    *app.PostureClassifier
	Session       *app.SessionService
}

func New(subscriberRepo port.SubscriberRepository, headTopOffset float64) *Container {
	return &Container{
		Subscriptions: app.NewSubscriptionService(subscriberRepo),
		Classifier:    app.NewPostureClassifier(headTopOffset),
	}
}

// StartSession создаёт сервис статистики. Вызывается после создания notifier,
// потому что бот уведомлений сам зависит от Subscriptions.
func (c *Container) StartSession(notifier port.Notifier, alertAfter, cooldown time.Duration) *app.SessionService {
	c.Session = app.NewSessionService(notifier, alertAfter, cooldown, time.Now())
	return c.Session
}

// NewMonitor собирает цикл обработки кадров
func (c *Container) NewMonitor(source port.FrameSource, estimator port.PoseEstimator, annotator port.Annotator, presenters ...port.Presenter) *app.Monitor {
	return app.NewMonitor(source, estimator, c.Classifier, annotator, c.Session, presenters...)
}
