package queue

// Publishing lives next to the consumer so both sides agree on the queue
// name and delivery properties. Errors are logged and returned so callers
// can ignore failures without interrupting the main request flow.

import (
	"context"
	"encoding/json"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// PublishMovieEvent publishes a MovieEvent to the movie.events queue.
// The function never panics; any error is logged and returned so the
// caller can choose to ignore it. Messages are marked as persistent.
func PublishMovieEvent(ctx context.Context, event MovieEvent) error {
	conn, ch, err := openChannel(brokerURL())
	if err != nil {
		log.Printf("rabbitmq: %v", err)
		return err
	}
	defer func() { _ = conn.Close() }()
	defer func() { _ = ch.Close() }()

	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("rabbitmq: marshal event failed: %v", err)
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx, "", movieQueueName, false, false, pub); err != nil {
		log.Printf("rabbitmq: publish failed: %v", err)
		return err
	}
	return nil
}
