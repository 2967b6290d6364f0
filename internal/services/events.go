package services

// EventPublisher publishes catalog mutation events to the message broker.
// Implemented by pkg/rabbitmq.Client; services treat a nil publisher as
// "messaging disabled" and publish failures never fail the request.
type EventPublisher interface {
	Publish(routingKey string, payload map[string]interface{}) error
}
