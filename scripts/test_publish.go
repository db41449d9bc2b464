//go:build ignore

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type FacilityGeocodeEvent struct {
	PharmacyID uuid.UUID `json:"pharmacy_id"`
	Address    string    `json:"address"`
	City       string    `json:"city,omitempty"`
}

func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address for streams")
	flag.Parse()

	client := redis.NewClient(&redis.Options{
		Addr: *redisAddr,
	})
	defer client.Close()

	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	event := FacilityGeocodeEvent{
		PharmacyID: uuid.New(),
		Address:    "Carrer de Mallorca 401",
		City:       "Barcelona",
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Fatalf("Failed to marshal event: %v", err)
	}

	result, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: "stream:facility:geocode",
		Values: map[string]interface{}{
			"data": string(data),
		},
	}).Result()
	if err != nil {
		log.Fatalf("Failed to publish event: %v", err)
	}

	fmt.Printf("Event published successfully!\n")
	fmt.Printf("   Stream: stream:facility:geocode\n")
	fmt.Printf("   Message ID: %s\n", result)
	fmt.Printf("   Pharmacy ID: %s\n", event.PharmacyID)
	fmt.Printf("   Address: %s, %s\n", event.Address, event.City)
}
