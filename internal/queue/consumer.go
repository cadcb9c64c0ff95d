// Package queue contains the background consumer that listens to the
// movie.events queue and writes an audit trail to logs/movies.log.
package queue

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// StartMovieConsumer connects to RabbitMQ and starts consuming the
// durable movie.events queue. Each message is appended to
// logs/movies.log as one line. The function runs a reconnect loop with
// backoff and keeps running; processing errors are logged and the
// offending message is rejected without requeue so the server continues
// operating.
func StartMovieConsumer() error {
	url := brokerURL()

	backoff := time.Second
	for {
		conn, ch, err := openChannel(url)
		if err != nil {
			log.Printf("movie-consumer: broker connect failed: %v; retrying in %s", err, backoff)
			time.Sleep(backoff)
			if backoff < 30*time.Second {
				backoff *= 2
			}
			continue
		}
		backoff = time.Second // reset after successful connect

		if err := consumeLoop(ch); err != nil {
			log.Printf("movie-consumer: consume loop ended: %v; reconnecting", err)
			time.Sleep(2 * time.Second)
		}
		_ = ch.Close()
		_ = conn.Close()
	}
}

func consumeLoop(ch *amqp.Channel) error {
	if err := ch.Qos(50, 0, false); err != nil {
		log.Printf("movie-consumer: set QoS failed: %v", err)
	}

	msgs, err := ch.Consume(movieQueueName, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("queue consume: %w", err)
	}

	for d := range msgs {
		if err := handleMessage(d.Body); err != nil {
			log.Printf("movie-consumer: handle message failed: %v", err)
			_ = d.Nack(false, false) // reject, do not requeue to avoid tight loops
			continue
		}
		_ = d.Ack(false)
	}
	return errors.New("deliveries channel closed")
}

func handleMessage(body []byte) error {
	var ev MovieEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}
	if err := os.MkdirAll("logs", 0o755); err != nil {
		return fmt.Errorf("mkdir logs: %w", err)
	}
	fpath := filepath.Join("logs", "movies.log")
	f, err := os.OpenFile(fpath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()

	line := fmt.Sprintf("[%s] Movie %s | movie_id=%d | user_id=%s | catalog_id=%s | title=%q\n",
		ev.OccurredAt, ev.Action, ev.MovieID, ev.UserID, ev.CatalogID, ev.Title)

	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("write log: %w", err)
	}
	return nil
}
