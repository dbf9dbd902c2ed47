// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package log

import (
	"bytes"
	"errors"
	"testing"

	"github.com/apex/log"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want log.Level
	}{
		{"trace", log.DebugLevel},
		{"debug", log.DebugLevel},
		{"INFO", log.InfoLevel},
		{"warn", log.WarnLevel},
		{"error", log.ErrorLevel},
		{"fatal", log.FatalLevel},
		{"bogus", log.ErrorLevel},
		{"", log.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestCustomHandler(t *testing.T) {
	var buf bytes.Buffer
	h := &CustomHandler{Writer: &buf}

	err := h.HandleLog(&log.Entry{Level: log.WarnLevel, Message: "unknown column: foo"})
	assert.NoError(t, err)
	assert.Contains(t, buf.String(), " W unknown column: foo\n")

	buf.Reset()
	err = h.HandleLog(&log.Entry{Level: log.DebugLevel, Message: "TRACE: clause parsed"})
	assert.NoError(t, err)
	assert.Contains(t, buf.String(), " T clause parsed\n")

	buf.Reset()
	err = h.HandleLog(&log.Entry{
		Level:   log.ErrorLevel,
		Message: "save failed",
		Fields:  log.Fields{"error": errors.New("boom")},
	})
	assert.NoError(t, err)
	assert.Contains(t, buf.String(), " E save failed error=boom\n")
}
