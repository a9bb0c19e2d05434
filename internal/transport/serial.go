// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

// Package transport owns the serial port resource and frames its byte
// stream into decoded text lines for the pipeline.
package transport

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	serial "github.com/jacobsa/go-serial/serial"
)

// LineSource delivers decoded, terminator-trimmed text lines.
type LineSource interface {
	ReadLine() (string, error)
	Close() error
}

// Port wraps one open connection and reads it line by line.
type Port struct {
	rc     io.ReadCloser
	reader *bufio.Reader
}

// Open opens the serial port with the usual 8N1 framing.
// NOTE: adjust portName to match your setup: /dev/serial0, /dev/ttyAMA0,
// /dev/ttyUSB0, COM4, etc.
func Open(portName string, baudRate uint) (*Port, error) {
	opts := serial.OpenOptions{
		PortName:              portName,
		BaudRate:              baudRate,
		DataBits:              8,
		StopBits:              1,
		MinimumReadSize:       1,
		ParityMode:            serial.PARITY_NONE,
		InterCharacterTimeout: 0,
	}

	rc, err := serial.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open serial port %s: %w", portName, err)
	}
	log.Printf("serial port opened on %s at %d baud", portName, baudRate)
	return NewLineSource(rc), nil
}

// NewLineSource wraps any byte stream as a LineSource. Used by Open and
// by tests that replay captured data.
func NewLineSource(rc io.ReadCloser) *Port {
	return &Port{rc: rc, reader: bufio.NewReader(rc)}
}

// ReadLine blocks until the next full line arrives and returns it with
// the terminator stripped. A partial line cut off by a transport
// failure is discarded along with the error.
func (p *Port) ReadLine() (string, error) {
	line, err := p.reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (p *Port) Close() error {
	return p.rc.Close()
}

// Drain feeds every line from src to handle, in arrival order, until
// the source fails. The source's error is returned for the supervisor
// to act on.
func Drain(src LineSource, handle func(line string)) error {
	for {
		line, err := src.ReadLine()
		if err != nil {
			return err
		}
		handle(line)
	}
}

// Supervisor keeps a serial port alive: open, drain, and on any failure
// close and reopen after RetryInterval. The handler and whatever state
// it carries (parser, smoothing windows) live with the caller and are
// untouched by reconnects.
type Supervisor struct {
	PortName      string
	BaudRate      uint
	RetryInterval time.Duration
}

// Run loops forever; it only ever returns by crashing the process
// upstream (the producers treat it as their main loop).
func (s *Supervisor) Run(handle func(line string)) error {
	retry := s.RetryInterval
	if retry <= 0 {
		retry = time.Second
	}

	for {
		port, err := Open(s.PortName, s.BaudRate)
		if err != nil {
			log.Printf("serial open error: %v, retrying in %s", err, retry)
			time.Sleep(retry)
			continue
		}

		err = Drain(port, handle)
		port.Close()
		log.Printf("serial read error: %v, reconnecting in %s", err, retry)
		time.Sleep(retry)
	}
}
