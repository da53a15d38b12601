package config

import (
	"bytes"
	"testing"
)

func TestExitWritesMessageAndCode(t *testing.T) {
	tests := map[string]struct {
		code int
		want int
	}{
		"explicit code": {code: 3, want: 3},
		"zero raised":   {code: 0, want: 1},
		"negative":      {code: -2, want: 1},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			var got int
			previous := exit
			exit = func(code int) { got = code }
			t.Cleanup(func() { exit = previous })

			var out bytes.Buffer
			exitTo(&out, tc.code, "contact: %s", "upstream_unavailable")
			if got != tc.want {
				t.Fatalf("exit code = %d, want %d", got, tc.want)
			}
			if out.String() != "contact: upstream_unavailable\n" {
				t.Fatalf("output = %q", out.String())
			}
		})
	}
}
