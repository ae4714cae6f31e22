package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate_AcceptsPositiveRates(t *testing.T) {
	cfg := Config{ArrivalRate: 2, ServiceRate: 1, Horizon: 10, Seed: 42}
	assert.NoError(t, cfg.Validate())
}

func TestConfig_Utilization(t *testing.T) {
	assert.Equal(t, 0.5, Config{ArrivalRate: 1, ServiceRate: 2}.Utilization())
	assert.Equal(t, 2.0, Config{ArrivalRate: 2, ServiceRate: 1}.Utilization())
}
