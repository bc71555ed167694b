package domain

// DriverSettings — настройки водителя, которые хранятся на сервере.
type DriverSettings struct {
	Available            bool    `json:"is_available"`
	NotificationsEnabled bool    `json:"notifications_enabled"`
	SoundEnabled         bool    `json:"sound_enabled"`
	Volume               float64 `json:"volume"`
}
