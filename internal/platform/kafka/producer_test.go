package kafka

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ethub/internal/platform/config"
)

func TestNewProducerWithoutBrokersIsDisabled(t *testing.T) {
	p, err := NewProducer(context.Background(), config.KafkaConfig{Topic: "events"})
	require.NoError(t, err)
	assert.Nil(t, p)
}
