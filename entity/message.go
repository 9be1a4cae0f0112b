/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package entity

import (
	"time"

	"github.com/google/uuid"
)

// messageTimeLayout renders MM/dd/yyyy HH:mm:ss.fff.
const messageTimeLayout = "01/02/2006 15:04:05.000"

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// IDGenerator supplies globally unique identifiers.
type IDGenerator interface {
	NewID() string
}

// ClockFunc adapts a function to the Clock interface.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// IDGeneratorFunc adapts a function to the IDGenerator interface.
type IDGeneratorFunc func() string

func (f IDGeneratorFunc) NewID() string { return f() }

// SystemClock reads the wall clock.
var SystemClock Clock = ClockFunc(time.Now)

// UUIDGenerator produces random (version 4) UUIDs.
var UUIDGenerator IDGenerator = IDGeneratorFunc(func() string {
	return uuid.New().String()
})

// RandomMessage returns the current UTC time and a fresh identifier separated
// by a space, e.g. "10/19/2026 08:15:02.117 1b4e28ba-2fa1-11d2-883f-0016d3cca427".
func RandomMessage(clock Clock, ids IDGenerator) string {
	return clock.Now().UTC().Format(messageTimeLayout) + " " + ids.NewID()
}

// NewRandomMessage is RandomMessage with the system clock and UUID generator.
func NewRandomMessage() string {
	return RandomMessage(SystemClock, UUIDGenerator)
}
