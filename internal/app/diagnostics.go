// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package app

import (
	"encoding/json"
	"log"
	"strings"

	nmea "github.com/adrianmo/go-nmea"
	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/relabs-tech/imu_telemetry/internal/gps"
)

// DiagnosticLine wraps a rejected line for the diagnostic topic,
// preserving the original text verbatim.
type DiagnosticLine struct {
	Line string `json:"line"`
}

// publishDiagnostics drains rejected lines. Combined GNSS/IMU modules
// interleave NMEA sentences with the vendor data frames on the same
// port, so lines that parse as RMC become GPS fixes on the gps topic;
// everything else goes out verbatim on the diagnostic topic.
func publishDiagnostics(client mqtt.Client, topicDiag, topicGPS string, rejects <-chan string) {
	for line := range rejects {
		if fix, ok := parseNMEAFix(line); ok && topicGPS != "" {
			payload, err := json.Marshal(fix)
			if err != nil {
				log.Printf("GPS JSON marshal error: %v", err)
				continue
			}
			if token := client.Publish(topicGPS, 0, true, payload); token.Wait() && token.Error() != nil {
				log.Printf("MQTT publish error (gps): %v", token.Error())
			}
			continue
		}

		payload, err := json.Marshal(DiagnosticLine{Line: line})
		if err != nil {
			log.Printf("diagnostic marshal error: %v", err)
			continue
		}
		if token := client.Publish(topicDiag, 0, false, payload); token.Wait() && token.Error() != nil {
			log.Printf("MQTT publish error (diagnostic): %v", token.Error())
		}
	}
}

// parseNMEAFix extracts a GPS fix from an RMC sentence. Noisy or
// partial sentences simply fail and stay plain diagnostic lines.
func parseNMEAFix(line string) (gps.Fix, bool) {
	// NMEA sentences always start with '$'
	if !strings.HasPrefix(line, "$") {
		return gps.Fix{}, false
	}

	sentence, err := nmea.Parse(line)
	if err != nil {
		return gps.Fix{}, false
	}

	switch sentence.DataType() {
	case nmea.TypeRMC:
		m := sentence.(nmea.RMC)
		return gps.Fix{
			Time:       m.Time.String(),
			Latitude:   m.Latitude,
			Longitude:  m.Longitude,
			SpeedKnots: m.Speed,
			CourseDeg:  m.Course,
			Validity:   string(m.Validity),
		}, true
	default:
		// ignore other sentence types for now (GGA, GSA, etc.)
		return gps.Fix{}, false
	}
}
