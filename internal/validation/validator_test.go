// Raksha Relay - Real-Time Vehicle Safety Alert Ingestion and Broadcasting
// Copyright 2026 Raksha Networks
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/raksha-net/relay

package validation

import (
	"strings"
	"testing"
)

type guidanceParams struct {
	Risk  string  `validate:"omitempty,oneof=low medium high"`
	Lat   float64 `validate:"omitempty,latitude"`
	Lng   float64 `validate:"omitempty,longitude"`
	Limit int     `validate:"omitempty,min=1,max=100"`
}

func TestStructValid(t *testing.T) {
	if err := Struct(guidanceParams{Risk: "high", Lat: 12.97, Lng: 77.59, Limit: 10}); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
}

func TestStructZeroValueSkipsOmitempty(t *testing.T) {
	if err := Struct(guidanceParams{}); err != nil {
		t.Fatalf("zero struct should pass omitempty validation: %v", err)
	}
}

func TestStructInvalidLatitude(t *testing.T) {
	err := Struct(guidanceParams{Lat: 123.4})
	if err == nil {
		t.Fatal("expected validation error for latitude 123.4")
	}
	if len(err.Fields()) != 1 {
		t.Fatalf("fields = %d, want 1", len(err.Fields()))
	}
	fe := err.Fields()[0]
	if fe.Field != "Lat" || fe.Tag != "latitude" {
		t.Errorf("field error = %+v", fe)
	}
	if !strings.Contains(err.Error(), "valid latitude") {
		t.Errorf("message %q", err.Error())
	}
}

func TestStructInvalidOneof(t *testing.T) {
	err := Struct(guidanceParams{Risk: "extreme"})
	if err == nil {
		t.Fatal("expected validation error for risk=extreme")
	}
	if !strings.Contains(err.Error(), "must be one of") {
		t.Errorf("message %q", err.Error())
	}
	details := err.Details()
	if details["field"] != "Risk" {
		t.Errorf("details = %+v", details)
	}
}

func TestStructMultipleFailures(t *testing.T) {
	err := Struct(guidanceParams{Risk: "nope", Lat: 200, Limit: 500})
	if err == nil {
		t.Fatal("expected validation errors")
	}
	if got := len(err.Fields()); got != 3 {
		t.Errorf("fields = %d, want 3", got)
	}
}
