package producer

import (
	"insight-srv/internal/insights"
	pkgKafka "insight-srv/pkg/kafka"
	"insight-srv/pkg/log"
)

// Producer interface for insights domain
type Producer interface {
	insights.Publisher
}

// implProducer implements the Producer interface
type implProducer struct {
	l                 log.Logger
	requestedProducer pkgKafka.IProducer
	completedProducer pkgKafka.IProducer
}

// New creates a new insights producer. Each topic gets its own underlying
// producer since pkg/kafka binds a producer to one topic.
func New(l log.Logger, requestedProducer, completedProducer pkgKafka.IProducer) Producer {
	return &implProducer{
		l:                 l,
		requestedProducer: requestedProducer,
		completedProducer: completedProducer,
	}
}
