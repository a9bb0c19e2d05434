package app

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/relabs-tech/imu_telemetry/internal/config"
	"github.com/relabs-tech/imu_telemetry/internal/gps"
	"github.com/relabs-tech/imu_telemetry/internal/telemetry"
)

func RunConsole() error {
	cfg := config.Get()

	opts := mqtt.NewClientOptions().
		AddBroker(cfg.MQTTBroker).
		SetClientID(cfg.MQTTClientIDConsole)

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return token.Error()
	}
	log.Printf("console: connected to MQTT broker at %s", cfg.MQTTBroker)

	// Subscribe to telemetry updates
	updToken := client.Subscribe(cfg.TopicTelemetry, 0, func(_ mqtt.Client, msg mqtt.Message) {
		var u telemetry.Update
		if err := json.Unmarshal(msg.Payload(), &u); err != nil {
			log.Printf("console: update unmarshal error: %v", err)
			return
		}

		fmt.Printf(
			"[RAW ] ax=%7.2f ay=%7.2f az=%7.2f  gx=%7.2f gy=%7.2f gz=%7.2f\n",
			u.Raw.AccX, u.Raw.AccY, u.Raw.AccZ, u.Raw.GyroX, u.Raw.GyroY, u.Raw.GyroZ,
		)
		fmt.Printf(
			"[AVG ] ax=%7.2f ay=%7.2f az=%7.2f  gx=%7.2f gy=%7.2f gz=%7.2f\n",
			u.Filtered.AccX, u.Filtered.AccY, u.Filtered.AccZ, u.Filtered.GyroX, u.Filtered.GyroY, u.Filtered.GyroZ,
		)
	})
	updToken.Wait()
	if updToken.Error() != nil {
		return updToken.Error()
	}
	log.Printf("console: subscribed to %s", cfg.TopicTelemetry)

	// Subscribe to diagnostics
	diagToken := client.Subscribe(cfg.TopicDiagnostic, 0, func(_ mqtt.Client, msg mqtt.Message) {
		var d DiagnosticLine
		if err := json.Unmarshal(msg.Payload(), &d); err != nil {
			log.Printf("console: diagnostic unmarshal error: %v", err)
			return
		}

		fmt.Printf("[DIAG] %s\n", d.Line)
	})
	diagToken.Wait()
	if diagToken.Error() != nil {
		return diagToken.Error()
	}
	log.Printf("console: subscribed to %s", cfg.TopicDiagnostic)

	// Subscribe to GPS
	if cfg.TopicGPS != "" {
		gpsToken := client.Subscribe(cfg.TopicGPS, 0, func(_ mqtt.Client, msg mqtt.Message) {
			var f gps.Fix
			if err := json.Unmarshal(msg.Payload(), &f); err != nil {
				log.Printf("console: gps unmarshal error: %v", err)
				return
			}

			fmt.Printf(
				"[GPS ] time=%s lat=%.6f lon=%.6f speed=%.1fkn course=%.1f° validity=%s\n",
				f.Time, f.Latitude, f.Longitude, f.SpeedKnots, f.CourseDeg, f.Validity,
			)
		})
		gpsToken.Wait()
		if gpsToken.Error() != nil {
			return gpsToken.Error()
		}
		log.Printf("console: subscribed to %s", cfg.TopicGPS)
	}

	// Wait for Ctrl+C
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Println("console: shutting down")
	client.Disconnect(250)
	return nil
}
