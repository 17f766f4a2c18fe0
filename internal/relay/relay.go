// Package relay publishes canonically encoded transactions onto a NATS
// subject, standing in for the node cluster's own broadcast ingress.
// It is a thin collaborator the core dmbc package never imports.
package relay

import (
	"fmt"

	"github.com/nats-io/nats.go"
)

// Publisher holds a live NATS connection used to broadcast encoded
// transactions to a subject.
type Publisher struct {
	conn    *nats.Conn
	subject string
}

// Connect dials url and returns a Publisher that broadcasts to subject.
func Connect(url, subject string) (*Publisher, error) {
	conn, err := nats.Connect(url)
	if err != nil {
		return nil, fmt.Errorf("relay: connecting to %s: %w", url, err)
	}
	return &Publisher{conn: conn, subject: subject}, nil
}

// Publish broadcasts the canonical encoding of a transaction as-is; it
// does not interpret or re-encode the bytes.
func (p *Publisher) Publish(encoded []byte) error {
	if err := p.conn.Publish(p.subject, encoded); err != nil {
		return fmt.Errorf("relay: publishing to %s: %w", p.subject, err)
	}
	return nil
}

// Close closes the underlying NATS connection without draining it.
func (p *Publisher) Close() {
	p.conn.Close()
}
