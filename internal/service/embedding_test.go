package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pantrychef/backend/internal/service"
)

func TestGenerateEmbedding(t *testing.T) {
	vec := service.GenerateEmbedding("Rice")
	assert.Equal(t, []float32{4, 2, 2}, vec.Slice())

	// Case-insensitive and deterministic.
	assert.Equal(t, service.GenerateEmbedding("RICE").Slice(), vec.Slice())

	empty := service.GenerateEmbedding("")
	assert.Equal(t, []float32{0, 0, 0}, empty.Slice())
}
