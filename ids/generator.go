package ids

import (
	"encoding/binary"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Generator produces prefixed, time-ordered identifiers.
// A Generator is safe for concurrent use as long as its clock and entropy
// functions are.
type Generator struct {
	now     func() time.Time
	entropy func() uint64
}

// Option configures a Generator.
type Option func(*Generator)

// WithClock overrides the time source used for the timestamp component.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

// WithEntropy overrides the source of the random component.
func WithEntropy(entropy func() uint64) Option {
	return func(g *Generator) {
		g.entropy = entropy
	}
}

// NewGenerator creates a Generator. By default it uses the wall clock and
// the random bits of a version 4 UUID.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		now:     time.Now,
		entropy: uuidEntropy,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// uuidEntropy returns the low 64 bits of a random UUID.
func uuidEntropy() uint64 {
	u := uuid.New()
	return binary.BigEndian.Uint64(u[8:])
}

// Generate returns "<base36 ms>_<base36 random>", prefixed with
// "<prefix>_" when prefix is not empty.
func (g *Generator) Generate(prefix string) string {
	ts := strconv.FormatInt(g.now().UnixMilli(), 36)
	rnd := strconv.FormatUint(g.entropy(), 36)

	id := ts + Separator + rnd
	if prefix != "" {
		return prefix + Separator + id
	}
	return id
}

// NewResourceID generates a resource id with g.
func (g *Generator) NewResourceID() ResourceID {
	return ResourceID(g.Generate(ResourcePrefix))
}

// NewEphemeralID generates an ephemeral id with g.
func (g *Generator) NewEphemeralID() EphemeralID {
	return EphemeralID(g.Generate(EphemeralPrefix))
}

// NewSessionID generates a session id with g.
func (g *Generator) NewSessionID() SessionID {
	return SessionID(g.Generate(SessionPrefix))
}

// NewCorrelationID generates a correlation id with g.
func (g *Generator) NewCorrelationID() CorrelationID {
	return CorrelationID(g.Generate(CorrelationPrefix))
}

// NewWorkflowID generates a workflow id with g.
func (g *Generator) NewWorkflowID() WorkflowID {
	return WorkflowID(g.Generate(WorkflowPrefix))
}

var defaultGenerator = NewGenerator()

// Generate creates an identifier with the default generator.
// See Generator.Generate.
func Generate(prefix string) string {
	return defaultGenerator.Generate(prefix)
}

// NewResourceID generates a resource identifier ("res_...").
func NewResourceID() ResourceID { return defaultGenerator.NewResourceID() }

// NewEphemeralID generates an ephemeral identifier ("eph_...").
func NewEphemeralID() EphemeralID { return defaultGenerator.NewEphemeralID() }

// NewSessionID generates a session identifier ("sess_...").
func NewSessionID() SessionID { return defaultGenerator.NewSessionID() }

// NewCorrelationID generates a correlation identifier ("corr_...").
func NewCorrelationID() CorrelationID { return defaultGenerator.NewCorrelationID() }

// NewWorkflowID generates a workflow identifier ("wf_...").
func NewWorkflowID() WorkflowID { return defaultGenerator.NewWorkflowID() }
