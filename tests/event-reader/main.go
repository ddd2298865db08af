package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"log"
	"os/signal"
	"strings"
	"syscall"

	"github.com/SergeyBogomolovv/restaurant-order-bot/internal/entities"
	"github.com/segmentio/kafka-go"
)

// Читает события жизненного цикла заказов из топика и печатает их.
func main() {
	brokers := flag.String("brokers", "localhost:9092", "comma separated kafka brokers")
	topic := flag.String("topic", "order-events", "lifecycle events topic")
	group := flag.String("group", "event-reader", "consumer group")
	flag.Parse()

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: strings.Split(*brokers, ","),
		Topic:   *topic,
		GroupID: *group,
	})
	defer reader.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	for {
		m, err := reader.ReadMessage(ctx)
		if errors.Is(err, context.Canceled) {
			return
		}
		if err != nil {
			log.Println("failed to read message:", err)
			return
		}

		var e entities.LifecycleEvent
		if err := json.Unmarshal(m.Value, &e); err != nil {
			log.Println("invalid event", string(m.Key), err)
			continue
		}
		log.Printf("partition=%d offset=%d %s order=%s number=%d detail=%q",
			m.Partition, m.Offset, e.Type, e.OrderID, e.OrderNumber, e.Detail)
	}
}
