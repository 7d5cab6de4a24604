package models

import "time"

// Device зарегистрированное iOS-устройство для push-уведомлений.
// Владелец записи пользователь, на одного пользователя одна регистрация.
type Device struct {
	Base
	DeviceToken  string    `json:"deviceToken"`
	Platform     string    `json:"platform"`
	AppVersion   string    `json:"appVersion"`
	OSVersion    string    `json:"osVersion"`
	RegisteredAt time.Time `json:"registeredAt"`
	IsActive     bool      `json:"isActive"`
}

// DeviceRequest тело запроса на регистрацию устройства.
type DeviceRequest struct {
	DeviceToken string `json:"deviceToken" validate:"required,len=64"`
	Platform    string `json:"platform" validate:"required,eq=ios"`
	AppVersion  string `json:"appVersion,omitempty"`
	OSVersion   string `json:"osVersion,omitempty"`
}

// NotificationRequest тело запроса на отправку уведомления.
type NotificationRequest struct {
	UserID  string         `json:"userId,omitempty"`
	Title   string         `json:"title" validate:"required,min=1,max=100"`
	Message string         `json:"message" validate:"required,min=1,max=200"`
	Data    map[string]any `json:"data,omitempty"`
}

// Notification push-уведомление, переданное в канал доставки.
type Notification struct {
	ID          string         `json:"id"`
	UserID      string         `json:"userId"`
	DeviceToken string         `json:"deviceToken"`
	Title       string         `json:"title"`
	Message     string         `json:"message"`
	Data        map[string]any `json:"data"`
	SentAt      time.Time      `json:"sentAt"`
	Status      string         `json:"status"`
}
