package service

import (
	"fmt"
	"strings"
	"time"
)

// IDGenerator produces user ids
type IDGenerator interface {
	NewID() string
}

// TimestampIDGenerator derives ids from the creation time: user_<unix seconds>.<fraction>
type TimestampIDGenerator struct {
	Now func() time.Time
}

// NewTimestampIDGenerator returns a generator reading the wall clock
func NewTimestampIDGenerator() *TimestampIDGenerator {
	return &TimestampIDGenerator{Now: time.Now}
}

func (g *TimestampIDGenerator) NewID() string {
	micros := g.Now().UTC().UnixMicro()
	fraction := strings.TrimRight(fmt.Sprintf("%06d", micros%1_000_000), "0")
	if fraction == "" {
		fraction = "0"
	}
	return fmt.Sprintf("user_%d.%s", micros/1_000_000, fraction)
}
