package usecase

import (
	"fmt"
	"math/rand"
	"time"
)

// MemberNoGenerator produces candidate application identifiers. Generation
// alone does not guarantee uniqueness; the unique constraint on members does,
// and the orchestrator regenerates on collision.
type MemberNoGenerator interface {
	Next() string
}

type timeRandGenerator struct {
	prefix string
}

func NewMemberNoGenerator(prefix string) MemberNoGenerator {
	return &timeRandGenerator{prefix: prefix}
}

func (g *timeRandGenerator) Next() string {
	return fmt.Sprintf("%s%s%04d", g.prefix, time.Now().Format("060102150405"), rand.Intn(10000))
}
