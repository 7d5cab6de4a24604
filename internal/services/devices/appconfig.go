package devices

import (
	"github.com/cobusiness02/forgefyt/internal/models"
	"github.com/cobusiness02/forgefyt/internal/services/coaches"
)

// APIVersion версия API, которую видит мобильный клиент.
const APIVersion = "1.0.0"

// Features флаги возможностей приложения.
type Features struct {
	PushNotifications bool `json:"pushNotifications"`
	BiometricAuth     bool `json:"biometricAuth"`
	OfflineMode       bool `json:"offlineMode"`
	DarkMode          bool `json:"darkMode"`
	MultiLanguage     bool `json:"multiLanguage"`
}

// Endpoints адреса API и websocket.
type Endpoints struct {
	BaseURL   string `json:"baseUrl"`
	Websocket string `json:"websocket"`
}

// Settings сетевые настройки клиента, все интервалы в миллисекундах.
type Settings struct {
	SessionTimeout int `json:"sessionTimeout"`
	MaxRetries     int `json:"maxRetries"`
	RequestTimeout int `json:"requestTimeout"`
	CacheExpiry    int `json:"cacheExpiry"`
}

// WorkoutTypeInfo вид тренировки с подписью и цветом.
type WorkoutTypeInfo struct {
	ID    models.WorkoutType `json:"id"`
	Name  string             `json:"name"`
	Color string             `json:"color"`
}

// AppConfig конфигурация мобильного приложения.
type AppConfig struct {
	APIVersion             string            `json:"apiVersion"`
	MinSupportedAppVersion string            `json:"minSupportedAppVersion"`
	Features               Features          `json:"features"`
	Endpoints              Endpoints         `json:"endpoints"`
	Settings               Settings          `json:"settings"`
	WorkoutTypes           []WorkoutTypeInfo `json:"workoutTypes"`
}

var typeColors = map[models.WorkoutType]string{
	models.WorkoutStrength:       "#FF6B6B",
	models.WorkoutCardio:         "#4ECDC4",
	models.WorkoutFlexibility:    "#45B7D1",
	models.WorkoutSports:         "#96CEB4",
	models.WorkoutRehabilitation: "#FECA57",
}

// AppConfig собирает конфигурацию приложения из настроек сервера.
func (s *Service) AppConfig() AppConfig {
	types := make([]WorkoutTypeInfo, 0, len(models.WorkoutTypes))
	for _, t := range models.WorkoutTypes {
		types = append(types, WorkoutTypeInfo{ID: t, Name: coaches.TypeLabel(t), Color: typeColors[t]})
	}
	return AppConfig{
		APIVersion:             APIVersion,
		MinSupportedAppVersion: s.ios.MinAppVersion,
		Features: Features{
			PushNotifications: true,
			BiometricAuth:     true,
			DarkMode:          true,
		},
		Endpoints: Endpoints{BaseURL: s.ios.APIBaseURL, Websocket: s.ios.WSURL},
		Settings: Settings{
			SessionTimeout: 3600000,
			MaxRetries:     3,
			RequestTimeout: 30000,
			CacheExpiry:    300000,
		},
		WorkoutTypes: types,
	}
}
