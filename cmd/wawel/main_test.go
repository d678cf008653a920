package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	versionCmd.SetOut(&out)
	versionCmd.Run(versionCmd, nil)
	assert.Contains(t, out.String(), "wawel dev")
}

func TestCheckCommand(t *testing.T) {
	var out bytes.Buffer
	checkCmd.SetOut(&out)

	require.NoError(t, runCheck(checkCmd, []string{"wawel"}))
	assert.Contains(t, out.String(), "Operation Wawel: ok")
	assert.Contains(t, out.String(), "rooms: 7 (5 open)")
	assert.Contains(t, out.String(), "enemies: 2")
}

func TestCheckCommand_BadWorld(t *testing.T) {
	assert.Error(t, runCheck(checkCmd, []string{"no/such/world"}))
}

func TestWorldsCommand(t *testing.T) {
	var out bytes.Buffer
	worldsCmd.SetOut(&out)
	require.NoError(t, worldsCmd.RunE(worldsCmd, nil))
	assert.Contains(t, strings.Fields(out.String()), "wawel")
}

func TestNewGame_Deterministic(t *testing.T) {
	a, err := newGame("wawel", 42, zaptest.NewLogger(t))
	require.NoError(t, err)
	b, err := newGame("wawel", 42, zaptest.NewLogger(t))
	require.NoError(t, err)

	ra, rb := a.Start(), b.Start()
	assert.Equal(t, ra.Output, rb.Output)
	for _, cmd := range []string{"north", "list room", "back", "look"} {
		assert.Equal(t, a.Step(cmd).Output, b.Step(cmd).Output, "command %q", cmd)
	}
}
