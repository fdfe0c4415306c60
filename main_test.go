package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestInterpreterChoiceSetIsCaseInsensitive checks that --interpreter
// accepts any casing of its three known values (spec §6).
func TestInterpreterChoiceSetIsCaseInsensitive(t *testing.T) {
	cases := []struct {
		in   string
		want interpreterChoice
	}{
		{"METACIRCULAR", interpMetacircular},
		{"metacircular", interpMetacircular},
		{"Metacircular", interpMetacircular},
		{"CPS", interpCPS},
		{"cps", interpCPS},
		{"SMALLSTEP", interpSmallstep},
		{"smallstep", interpSmallstep},
		{"SmAlLsTeP", interpSmallstep},
	}
	for _, c := range cases {
		var choice interpreterChoice
		require.NoError(t, choice.Set(c.in))
		assert.Equal(t, c.want, choice)
	}
}

func TestInterpreterChoiceSetRejectsUnknown(t *testing.T) {
	var choice interpreterChoice
	err := choice.Set("bogus")
	require.Error(t, err)
}
