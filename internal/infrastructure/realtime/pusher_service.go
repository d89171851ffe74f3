package realtime

import (
	"log"

	"github.com/google/uuid"
	pusher "github.com/pusher/pusher-http-go/v5"

	"content-service/internal/config"
)

const notificationEvent = "notification:new"

// PusherService pushes notification events to subscribed browsers through
// the hosted relay. With incomplete credentials the client stays nil and
// every publish is a no-op; request handling never depends on it.
type PusherService struct {
	client *pusher.Client
}

func NewPusherService(cfg config.PusherConfig) *PusherService {
	if !cfg.Complete() {
		log.Println("Pusher client not initialized")
		return &PusherService{}
	}

	return &PusherService{
		client: &pusher.Client{
			AppID:   cfg.AppID,
			Key:     cfg.Key,
			Secret:  cfg.Secret,
			Cluster: cfg.Cluster,
		},
	}
}

func (p *PusherService) Enabled() bool {
	return p.client != nil
}

// NotifyUser publishes a notification payload on the user's private channel.
func (p *PusherService) NotifyUser(userID uuid.UUID, payload interface{}) error {
	if p.client == nil {
		return nil
	}
	return p.client.Trigger(userChannel(userID), notificationEvent, payload)
}

func userChannel(userID uuid.UUID) string {
	return "private-user-" + userID.String()
}
