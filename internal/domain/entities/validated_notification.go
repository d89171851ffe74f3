package entities

type ValidatedNotification struct {
	*Notification
}

func NewValidatedNotification(notification *Notification) (*ValidatedNotification, error) {
	if err := notification.validate(); err != nil {
		return nil, err
	}

	return &ValidatedNotification{Notification: notification}, nil
}

func (vn *ValidatedNotification) GetNotification() *Notification {
	return vn.Notification
}
