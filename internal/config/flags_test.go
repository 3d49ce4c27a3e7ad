package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    NetAddress
		wantErr bool
	}{
		{"localhost", "localhost:8080", NetAddress{Host: "localhost", Port: 8080}, false},
		{"ip address", "127.0.0.1:5000", NetAddress{Host: "127.0.0.1", Port: 5000}, false},
		{"empty host", ":5000", NetAddress{Host: "", Port: 5000}, false},
		{"no port", "localhost", NetAddress{}, true},
		{"bad port", "localhost:http", NetAddress{}, true},
		{"zero port", "localhost:0", NetAddress{}, true},
		{"not an ip", "nonsense-host:80", NetAddress{}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var a NetAddress
			err := a.Set(tc.in)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, a)
		})
	}
}

func TestNetAddress_String(t *testing.T) {
	assert.Equal(t, "", (&NetAddress{}).String())
	assert.Equal(t, "localhost:8080", (&NetAddress{Host: "localhost", Port: 8080}).String())
	assert.Equal(t, ":5000", (&NetAddress{Port: 5000}).String())
}
