package httpserver

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/nsemenov/wholesale_backend/internal/logging"
	"github.com/nsemenov/wholesale_backend/internal/mykafka"
)

func errorJSON(c echo.Context, code int, msg string) error {
	return c.JSON(code, echo.Map{"ok": false, "error": msg})
}

// publish sends a best-effort domain event, a nil producer means eventing
// is disabled and failures never fail the request.
func publish(c echo.Context, p *mykafka.Producer, topic string, event map[string]any) {
	if p == nil {
		return
	}
	event["event_id"] = uuid.NewString()

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	key, _ := event["type"].(string)
	if err := p.PublishEvent(ctx, topic, key, event); err != nil {
		logging.FromContext(c.Request().Context()).Warn("kafka publish failed", "topic", topic, "error", err)
	}
}
