package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/confio/tgrade-condorcet/x/condorcet/types"
)

func TestValidateConfig(t *testing.T) {
	specs := map[string]struct {
		src    string
		expErr bool
	}{
		"valid": {
			src: `{"quorum":"0.5","voting_period":{"height":10},"close_proposals_on_execution_failure":true}`,
		},
		"with min voting period": {
			src: `{"quorum":"0.5","voting_period":{"time":600},"min_voting_period":{"time":60}}`,
		},
		"quorum too high": {
			src:    `{"quorum":"1.1","voting_period":{"height":10}}`,
			expErr: true,
		},
		"mixed units": {
			src:    `{"quorum":"0.5","voting_period":{"time":600},"min_voting_period":{"height":1}}`,
			expErr: true,
		},
		"not json": {
			src:    `foo`,
			expErr: true,
		},
	}
	for name, spec := range specs {
		t.Run(name, func(t *testing.T) {
			got, gotErr := ValidateConfig([]byte(spec.src))
			if spec.expErr {
				require.Error(t, gotErr)
				return
			}
			require.NoError(t, gotErr)
			assert.True(t, got.Quorum.Equal(types.DefaultQuorum.MulInt64(5)))
		})
	}
}
