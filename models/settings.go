package models

// Settings are read-only inputs to formatting on the client; the store only
// persists them.
type Settings struct {
	Username      string `json:"username"`
	Currency      string `json:"currency"`
	Theme         string `json:"theme"`
	Notifications bool   `json:"notifications"`
}

func DefaultSettings() Settings {
	return Settings{
		Username:      "User",
		Currency:      "$",
		Theme:         "light",
		Notifications: true,
	}
}
