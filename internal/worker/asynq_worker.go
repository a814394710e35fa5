package worker

import (
	"context"
	"encoding/json"

	"github.com/ramani-fashion/api/internal/logger"
	"github.com/ramani-fashion/api/internal/provider"
	"github.com/ramani-fashion/api/internal/queue"

	"github.com/hibiken/asynq"
)

// Consumer handles async tasks.
type Consumer struct {
	*provider.Container
}

// NewConsumer creates the task consumer.
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{Container: c}
}

// Register binds task handlers onto the mux.
func (c *Consumer) Register(mux *asynq.ServeMux) {
	mux.HandleFunc(queue.TaskSendOTPSMS, c.handleSendOTPSMS)
	mux.HandleFunc(queue.TaskOrderNotify, c.handleOrderNotify)
}

// handleSendOTPSMS delivers a one-time code. No SMS gateway is wired
// yet, so delivery is logged; the provider call slots in here.
func (c *Consumer) handleSendOTPSMS(ctx context.Context, t *asynq.Task) error {
	var payload queue.SendOTPSMSPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		logger.Errorw("worker_send_otp_sms_bad_payload", "error", err)
		return nil // malformed payload, retrying will not help
	}
	if payload.Phone == "" || payload.Code == "" {
		logger.Warnw("worker_send_otp_sms_empty_payload", "phone", payload.Phone)
		return nil
	}

	logger.Infow("worker_send_otp_sms",
		"phone", payload.Phone,
		"provider", c.Config.SMS.Provider,
		"sender_id", c.Config.SMS.SenderID,
	)
	return nil
}

// handleOrderNotify records a freshly placed order for back-office
// notification channels.
func (c *Consumer) handleOrderNotify(ctx context.Context, t *asynq.Task) error {
	var payload queue.OrderNotifyPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		logger.Errorw("worker_order_notify_bad_payload", "error", err)
		return nil
	}

	order, err := c.OrderRepo.GetByID(payload.OrderID)
	if err != nil {
		logger.Errorw("worker_order_notify_load_failed", "order_id", payload.OrderID, "error", err)
		return err
	}
	if order == nil {
		logger.Warnw("worker_order_notify_order_missing", "order_id", payload.OrderID)
		return nil
	}

	user, err := c.UserRepo.GetByID(order.UserID)
	if err != nil {
		logger.Errorw("worker_order_notify_user_load_failed", "user_id", order.UserID, "error", err)
		return err
	}
	email := ""
	if user != nil {
		email = user.Email
	}

	logger.Infow("worker_order_notify",
		"order_id", order.ID,
		"order_number", order.OrderNumber,
		"total", order.Total.String(),
		"items", len(order.Items),
		"customer_email", email,
	)
	return nil
}
