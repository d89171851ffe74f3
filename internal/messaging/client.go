package messaging

import (
	"log"

	"github.com/nats-io/nats.go"
)

// Publisher wraps a NATS connection used to fan out domain events to other
// services. An empty URL leaves it disconnected and every publish becomes a
// no-op, mirroring the other optional integrations.
type Publisher struct {
	nc *nats.Conn
}

func Connect(url string) (*Publisher, error) {
	if url == "" {
		return &Publisher{}, nil
	}

	nc, err := nats.Connect(url)
	if err != nil {
		return nil, err
	}

	log.Println("Connected to NATS")
	return &Publisher{nc: nc}, nil
}

func (p *Publisher) Enabled() bool {
	return p.nc != nil && p.nc.IsConnected()
}

// Close drains the connection gracefully.
func (p *Publisher) Close() {
	if p.nc != nil && p.nc.IsConnected() {
		p.nc.Close()
	}
}
