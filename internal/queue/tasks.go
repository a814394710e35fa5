package queue

import (
	"encoding/json"

	"github.com/ramani-fashion/api/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskSendOTPSMS delivers a one-time code by SMS.
	TaskSendOTPSMS = constants.TaskTypeSendOTPSMS
	// TaskOrderNotify notifies about a freshly placed order.
	TaskOrderNotify = constants.TaskTypeOrderNotify
)

// SendOTPSMSPayload is the OTP delivery task payload.
type SendOTPSMSPayload struct {
	Phone string `json:"phone"`
	Code  string `json:"code"`
}

// OrderNotifyPayload is the order notification task payload.
type OrderNotifyPayload struct {
	OrderID uint `json:"order_id"`
}

// NewSendOTPSMSTask creates an OTP delivery task.
func NewSendOTPSMSTask(payload SendOTPSMSPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskSendOTPSMS, body), nil
}

// NewOrderNotifyTask creates an order notification task.
func NewOrderNotifyTask(payload OrderNotifyPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOrderNotify, body), nil
}
