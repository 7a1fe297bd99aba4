package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusFactories(t *testing.T) {
	tests := []struct {
		name        string
		status      Status
		wantCode    int
		wantMessage string
		wantOk      bool
	}{
		{
			name:     "success has code 0 and no message",
			status:   Success(),
			wantCode: 0,
			wantOk:   true,
		},
		{
			name:        "error has code 1 and a message",
			status:      Error("boom"),
			wantCode:    1,
			wantMessage: "boom",
			wantOk:      false,
		},
		{
			name:        "errorf formats the message",
			status:      Errorf("Expected to find 2 fields but found %d", 3),
			wantCode:    1,
			wantMessage: "Expected to find 2 fields but found 3",
			wantOk:      false,
		},
		{
			name:        "wrap prefixes context and keeps the code",
			status:      Wrap(Error("x"), "ctx"),
			wantCode:    1,
			wantMessage: "ctx: x",
			wantOk:      false,
		},
		{
			name:        "wrap twice chains context",
			status:      Wrap(Wrap(Error("x"), "inner"), "outer"),
			wantCode:    1,
			wantMessage: "outer: inner: x",
			wantOk:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, tt.status.Code)
			assert.Equal(t, tt.wantMessage, tt.status.Message)
			assert.Equal(t, tt.wantOk, tt.status.Ok())
		})
	}
}
