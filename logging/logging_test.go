// SPDX-License-Identifier: MIT

package logging_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shotqa/logging"
)

func TestNew_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	l, err := logging.New("warn", &buf)
	require.NoError(t, err)

	l.Info().Msg("hidden")
	assert.Zero(t, buf.Len())

	lm := logging.WithComponent(l, "motion")
	lm.Warn().Int("frame", 3).Msg("shown")
	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "shown", line["message"])
	assert.Equal(t, "motion", line["component"])
	assert.Equal(t, "warn", line["level"])
	assert.EqualValues(t, 3, line["frame"])
	assert.Contains(t, line, "time")
}

func TestNew_FansOut(t *testing.T) {
	var a, b bytes.Buffer
	l, err := logging.New("debug", &a, &b)
	require.NoError(t, err)
	l.Debug().Msg("both")
	assert.Contains(t, a.String(), "both")
	assert.Contains(t, b.String(), "both")
}

func TestParseLevel(t *testing.T) {
	lvl, err := logging.ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, lvl)

	lvl, err = logging.ParseLevel(" DEBUG ")
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, lvl)

	_, err = logging.ParseLevel("loud")
	assert.Error(t, err)

	_, err = logging.New("loud")
	assert.Error(t, err)
}
