package messaging

import "encoding/json"

const subjectNotificationCreated = "notification.created"

// PublishNotificationCreated announces a freshly persisted notification on
// the "notification.created" subject.
func (p *Publisher) PublishNotificationCreated(payload interface{}) error {
	if p.nc == nil || !p.nc.IsConnected() {
		return nil
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return p.nc.Publish(subjectNotificationCreated, data)
}
