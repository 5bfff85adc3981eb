package audit

import (
	"context"
	"encoding/json"
	"fmt"
)

// RecordWriter publishes one keyed record to a message broker.
type RecordWriter interface {
	Publish(ctx context.Context, key, value []byte) error
}

// KafkaSink publishes events as JSON keyed by case ID, so every change to a
// case lands on the same partition in order.
type KafkaSink struct {
	writer RecordWriter
}

func NewKafkaSink(writer RecordWriter) *KafkaSink {
	return &KafkaSink{writer: writer}
}

func (s *KafkaSink) Append(ctx context.Context, e Event) error {
	payload, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal audit event: %w", err)
	}
	return s.writer.Publish(ctx, []byte(e.CaseID), payload)
}
