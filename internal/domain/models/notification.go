package models

import "strconv"

const FieldEnabled = "enabled"

type NotificationChannel struct {
	ID      string
	Name    string
	Enabled bool
}

func (c NotificationChannel) GetID() string {
	return c.ID
}

func (c NotificationChannel) WithID(id string) NotificationChannel {
	c.ID = id
	return c
}

func (c NotificationChannel) WithField(field, value string) (NotificationChannel, error) {
	if field != FieldEnabled {
		return c, unknownField("notification channel", field)
	}
	enabled, err := strconv.ParseBool(value)
	if err != nil {
		return c, invalidValue(field, value)
	}
	c.Enabled = enabled
	return c, nil
}

func (c NotificationChannel) Toggled() NotificationChannel {
	c.Enabled = !c.Enabled
	return c
}

type NotificationPreference struct {
	ID          string
	Title       string
	Description string
	Enabled     bool
}

func (p NotificationPreference) GetID() string {
	return p.ID
}

func (p NotificationPreference) WithID(id string) NotificationPreference {
	p.ID = id
	return p
}

func (p NotificationPreference) WithField(field, value string) (NotificationPreference, error) {
	if field != FieldEnabled {
		return p, unknownField("notification preference", field)
	}
	enabled, err := strconv.ParseBool(value)
	if err != nil {
		return p, invalidValue(field, value)
	}
	p.Enabled = enabled
	return p, nil
}

func (p NotificationPreference) Toggled() NotificationPreference {
	p.Enabled = !p.Enabled
	return p
}

// NotificationHistoryItem is a past notification shown on the alerts screen.
type NotificationHistoryItem struct {
	ID          string `gorm:"primaryKey"`
	Title       string
	Description string
	Timestamp   string
	Read        bool
}
