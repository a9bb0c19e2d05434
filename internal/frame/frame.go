// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

// Package frame implements the ASCII wire format of the IMU:
// one record per line, framed as
//
//	S<acc_x>/<acc_y>/<acc_z>/<gyro_x>/<gyro_y>/<gyro_z>E
//
// The sentinels and the fixed field count let a line be validated
// structurally before any numeric conversion, so a consumer never sees
// a record with missing or stale channels. Lines that fail validation
// are not errors: devices interleave banner and log output with data,
// and those lines are classified for the diagnostic path instead.
package frame

import (
	"math"
	"strconv"
	"strings"

	"github.com/relabs-tech/imu_telemetry/internal/telemetry"
)

const (
	startSentinel = 'S'
	endSentinel   = 'E'
	fieldSep      = "/"
)

// Result is the outcome of classifying one line. When OK is true the
// line was a data record and Sample holds its channels; otherwise Line
// carries the original text verbatim for the diagnostic path.
type Result struct {
	OK     bool
	Sample telemetry.Sample
	Line   string
}

// Parse classifies a single line. The line must already be decoded to
// text and trimmed of its terminator. Parse is pure: no partial result
// ever escapes a failed check.
func Parse(line string) Result {
	r := Result{Line: line}

	if len(line) < 2 || line[0] != startSentinel || line[len(line)-1] != endSentinel {
		return r
	}

	body := line[1 : len(line)-1]
	tokens := strings.Split(body, fieldSep)
	if len(tokens) != telemetry.ChannelCount {
		return r
	}

	var vals [telemetry.ChannelCount]float64
	for i, tok := range tokens {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return r
		}
		// ParseFloat accepts "NaN" and "Inf" spellings; the smoothing
		// windows only ever see finite values, so reject those here.
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return r
		}
		vals[i] = v
	}

	r.OK = true
	r.Sample = telemetry.FromValues(vals)
	return r
}

// Format renders a sample as one wire frame with two-decimal fields,
// matching the device's own output. Inverse of Parse within formatting
// precision.
func Format(s telemetry.Sample) string {
	vals := s.Values()

	var b strings.Builder
	b.WriteByte(startSentinel)
	for i, v := range vals {
		if i > 0 {
			b.WriteString(fieldSep)
		}
		b.WriteString(strconv.FormatFloat(v, 'f', 2, 64))
	}
	b.WriteByte(endSentinel)
	return b.String()
}
