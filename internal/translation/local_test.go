package translation

import "testing"

func TestNewLocalProvider_EndpointNormalization(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		endpoint string
		want     string
	}{
		{"empty uses default", "", DefaultLocalEndpoint + "/chat/completions"},
		{"host only gets v1 path", "http://translator:8845", "http://translator:8845/v1/chat/completions"},
		{"missing scheme", "translator:8845", "http://translator:8845/v1/chat/completions"},
		{"explicit path kept", "http://translator:8845/v2", "http://translator:8845/v2/chat/completions"},
		{"trailing slash trimmed", "http://translator:8845/v1/", "http://translator:8845/v1/chat/completions"},
		{"full url kept", "http://translator:8845/v1/chat/completions", "http://translator:8845/v1/chat/completions"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			p := NewLocalProvider(tc.endpoint, "")
			if p.endpointURL != tc.want {
				t.Fatalf("endpoint %q resolved to %q, want %q", tc.endpoint, p.endpointURL, tc.want)
			}
		})
	}
}
