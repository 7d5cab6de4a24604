package rabbitmq

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/streadway/amqp"
)

// Message исходящее сообщение. ID попадает в свойство message-id,
// по нему потребитель находит сообщение в логах.
type Message struct {
	ID         string
	RoutingKey string
	Body       any
}

// Publish публикует Body в JSON в обменник Exchange как постоянное сообщение.
func Publish(ch *amqp.Channel, msg Message) error {
	const op = "rabbitmq.Publish"
	body, err := json.Marshal(msg.Body)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	err = ch.Publish(Exchange, msg.RoutingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		MessageId:    msg.ID,
		Timestamp:    time.Now().UTC(),
		Body:         body,
		DeliveryMode: amqp.Persistent,
	})
	if err != nil {
		return fmt.Errorf("%s: routing key %s: %w", op, msg.RoutingKey, err)
	}
	return nil
}
