// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_WritesRoleAndFunc(t *testing.T) {
	buf := new(bytes.Buffer)
	l := newLogger(buf, "notes-test", zerolog.DebugLevel)

	l.Info().Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "notes-test", entry["role"])
	assert.Equal(t, "hello", entry["message"])
	assert.Contains(t, entry, "func")
	assert.Contains(t, entry, "time")
}

func TestNewLoggerWithLevel_UnknownFallsBackToDebug(t *testing.T) {
	l := NewLoggerWithLevel("notes-test", "not-a-level")
	require.NotNil(t, l)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestNewLoggerWithLevel_Info(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.DebugLevel) })

	NewLoggerWithLevel("notes-test", "info")
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}

func TestGetChildLogger_DoesNotLeakFields(t *testing.T) {
	buf := new(bytes.Buffer)
	parent := newLogger(buf, "parent", zerolog.DebugLevel)

	child := parent.GetChildLogger()
	child.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", "abc")
	})

	parent.Info().Msg("from parent")
	assert.NotContains(t, buf.String(), "trace_id")

	buf.Reset()
	child.Info().Msg("from child")
	assert.Contains(t, buf.String(), `"trace_id":"abc"`)
}

func TestFromContext_ReturnsAttachedLogger(t *testing.T) {
	buf := new(bytes.Buffer)
	l := newLogger(buf, "ctx", zerolog.DebugLevel)

	ctx := l.WithContext(context.Background())
	FromContext(ctx).Info().Msg("ctx message")

	assert.Contains(t, buf.String(), "ctx message")
}

func TestFromRequest_ReturnsAttachedLogger(t *testing.T) {
	buf := new(bytes.Buffer)
	l := newLogger(buf, "req", zerolog.DebugLevel)

	r := httptest.NewRequest("GET", "/", nil)
	r = r.WithContext(l.WithContext(r.Context()))
	FromRequest(r).Info().Msg("req message")

	assert.Contains(t, buf.String(), "req message")
}

func TestNop_NeverNil(t *testing.T) {
	l := Nop()
	require.NotNil(t, l)
	l.Info().Msg("discarded")
}
