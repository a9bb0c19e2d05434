// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package app

import (
	"encoding/json"
	"log"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/relabs-tech/imu_telemetry/internal/config"
	"github.com/relabs-tech/imu_telemetry/internal/telemetry"
	"github.com/relabs-tech/imu_telemetry/internal/transport"
)

// RunTelemetryProducer reads framed records from the serial-attached
// IMU, runs them through the parse→smooth pipeline, and publishes each
// (raw, filtered) update as JSON to MQTT. Rejected lines go out on the
// diagnostic path. The serial port is supervised: on failure it is
// closed and reopened while the smoothing windows live on untouched.
func RunTelemetryProducer() error {
	log.Println("starting imu-telemetry producer (serial → MQTT)")

	cfg := config.Get()

	// --- connect to MQTT ---
	opts := mqtt.NewClientOptions().
		AddBroker(cfg.MQTTBroker).
		SetClientID(cfg.MQTTClientIDProducer)

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		log.Printf("MQTT connect error: %v", token.Error())
		return token.Error()
	}
	defer client.Disconnect(250)

	log.Printf("producer connected to MQTT broker at %s", cfg.MQTTBroker)

	pipe := NewPipeline(cfg.SmoothingWindow, cfg.ProducerBuffer)

	go publishUpdates(client, cfg.TopicTelemetry, pipe.Updates)
	go publishDiagnostics(client, cfg.TopicDiagnostic, cfg.TopicGPS, pipe.Rejects)

	sup := &transport.Supervisor{
		PortName:      cfg.SerialPort,
		BaudRate:      uint(cfg.SerialBaudRate),
		RetryInterval: time.Duration(cfg.SerialRetryInterval) * time.Millisecond,
	}
	return sup.Run(pipe.HandleLine)
}

// publishUpdates drains the pipeline's update channel into the
// telemetry topic. Runs on its own goroutine so a slow broker never
// stalls the serial reader.
func publishUpdates(client mqtt.Client, topic string, updates <-chan telemetry.Update) {
	for upd := range updates {
		payload, err := json.Marshal(upd)
		if err != nil {
			log.Printf("json marshal error (update): %v", err)
			continue
		}
		if token := client.Publish(topic, 0, true, payload); token.Wait() && token.Error() != nil {
			log.Printf("MQTT publish error (telemetry): %v", token.Error())
		}
	}
}
