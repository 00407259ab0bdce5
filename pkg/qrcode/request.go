package qrcode

import "strings"

// Request holds validated generation parameters.
type Request struct {
	Payload string
	Scale   int // pixels per module, >= 1
	Border  int // quiet zone in modules, >= 0
	Level   Level
}

// Validate normalises raw generation parameters.
// Out-of-range scale and border are floored silently; only an empty payload
// is an error. The level is passed through untouched because the encoder
// decides which levels it supports.
func Validate(payload string, scale, border int, level Level) (Request, error) {
	payload = strings.TrimSpace(payload)
	if payload == "" {
		return Request{}, ErrEmptyPayload
	}
	return Request{
		Payload: payload,
		Scale:   max(scale, 1),
		Border:  max(border, 0),
		Level:   level,
	}, nil
}
