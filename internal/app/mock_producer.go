// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text


package app

import (
	"log"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/relabs-tech/imu_telemetry/internal/config"
	"github.com/relabs-tech/imu_telemetry/internal/frame"
	"github.com/relabs-tech/imu_telemetry/internal/telemetry"
)

// RunMockProducer publishes synthetic telemetry without the device
// attached. Samples are formatted to wire frames and pushed through the
// same pipeline the serial producer uses, so the console and web views
// behave exactly as with real hardware.
func RunMockProducer() error {
	log.Println("starting imu-telemetry mock producer")

	cfg := config.Get()

	opts := mqtt.NewClientOptions().
		AddBroker(cfg.MQTTBroker).
		SetClientID(cfg.MQTTClientIDMock)

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		log.Printf("MQTT connect error: %v", token.Error())
		return token.Error()
	}
	defer client.Disconnect(250)

	pipe := NewPipeline(cfg.SmoothingWindow, cfg.ProducerBuffer)

	go publishUpdates(client, cfg.TopicTelemetry, pipe.Updates)
	go publishDiagnostics(client, cfg.TopicDiagnostic, cfg.TopicGPS, pipe.Rejects)

	interval := cfg.MockSampleInterval
	if interval <= 0 {
		interval = 100
	}

	src := telemetry.NewMockSource()
	ticker := time.NewTicker(time.Duration(interval) * time.Millisecond)
	defer ticker.Stop()

	for range ticker.C {
		sample, err := src.Next()
		if err != nil {
			log.Printf("error from mock source: %v", err)
			continue
		}

		pipe.HandleLine(frame.Format(sample))
	}
	return nil
}
