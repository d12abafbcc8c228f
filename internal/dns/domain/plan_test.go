package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQueryPlanDefaults(t *testing.T) {
	plan := NewQueryPlan()

	assert.Equal(t, []RRType{RRTypeA}, plan.Types)
	assert.Equal(t, []RRClass{RRClassIN}, plan.Classes)
	assert.Equal(t, TransportAuto, plan.Transport)
	assert.Equal(t, EDNSHide, plan.EDNS)
	assert.Equal(t, uint16(DefaultUDPPayloadSize), plan.Tweaks.BufferSize)
	assert.Equal(t, ColourAutomatic, plan.Output.Colour)
	assert.Empty(t, plan.Nameservers)
	assert.Nil(t, plan.TxID)
}

func TestQueryPlanValidate(t *testing.T) {
	plan := NewQueryPlan()
	plan.Domains = []string{"example.net"}
	require.NoError(t, plan.Validate())

	t.Run("no domains", func(t *testing.T) {
		p := NewQueryPlan()
		assert.Error(t, p.Validate())
	})

	t.Run("bad edns mode", func(t *testing.T) {
		p := NewQueryPlan()
		p.Domains = []string{"example.net"}
		p.EDNS = EDNSMode("sideways")
		assert.Error(t, p.Validate())
	})

	t.Run("bad transport", func(t *testing.T) {
		p := NewQueryPlan()
		p.Domains = []string{"example.net"}
		p.Transport = Transport("carrier-pigeon")
		assert.Error(t, p.Validate())
	})

	t.Run("bufsize below minimum", func(t *testing.T) {
		p := NewQueryPlan()
		p.Domains = []string{"example.net"}
		p.Tweaks.BufferSize = 100
		assert.Error(t, p.Validate())
	})
}

func TestQueryPlanQueryCount(t *testing.T) {
	plan := NewQueryPlan()
	plan.Domains = []string{"a.net", "b.net"}
	plan.Types = []RRType{RRTypeA, RRTypeAAAA}
	plan.Nameservers = []string{"1.1.1.1", "8.8.8.8"}

	assert.Equal(t, 8, plan.QueryCount())

	plan.Nameservers = nil
	assert.Equal(t, 4, plan.QueryCount(), "empty nameserver list still queries once per product element")
}
