package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// MQTTCoupling subscribes to a request topic and publishes
// evaluation responses to a response topic.
type MQTTCoupling struct {
	Broker   string
	ClientId string
	InTopic  string
	OutTopic string

	// Quiesce is the disconnection quiescence in milliseconds.
	Quiesce uint

	client mqtt.Client
}

func (m *MQTTCoupling) Start(ctx context.Context, s *Service) error {

	mqtt.ERROR = log.New(os.Stderr, "mqtt.error", 0)

	opts := mqtt.NewClientOptions()
	opts.AddBroker(m.Broker)
	opts.SetClientID(m.ClientId)
	opts.SetKeepAlive(10 * time.Second)
	opts.AutoReconnect = true

	m.client = mqtt.NewClient(opts)

	if t := m.client.Connect(); t.Wait() && t.Error() != nil {
		return t.Error()
	}

	log.Printf("mqtt connected to %s", m.Broker)

	handler := func(client mqtt.Client, msg mqtt.Message) {
		var req EvalRequest
		if err := json.Unmarshal(msg.Payload(), &req); err != nil {
			log.Printf("mqtt can't parse %s: %v", msg.Payload(), err)
			return
		}
		resp := s.Eval(&req)
		js, err := json.Marshal(&resp)
		if err != nil {
			log.Printf("mqtt marshal error: %v", err)
			return
		}
		if t := client.Publish(m.OutTopic, 0, false, js); t.Wait() && t.Error() != nil {
			log.Printf("mqtt publish error: %v", t.Error())
		}
	}

	if t := m.client.Subscribe(m.InTopic, 0, handler); t.Wait() && t.Error() != nil {
		return t.Error()
	}

	log.Printf("mqtt subscribed to %s", m.InTopic)

	return nil
}

func (m *MQTTCoupling) Stop() {
	if m.client == nil {
		return
	}
	quiesce := m.Quiesce
	if quiesce == 0 {
		quiesce = 100
	}
	m.client.Disconnect(quiesce)
}
