package middleware

import "testing"

func TestIsOriginAllowed(t *testing.T) {
	tests := []struct {
		name   string
		origin string
		config CORSConfig
		want   bool
	}{
		{
			name:   "allow all",
			origin: "https://evil.example",
			config: CORSConfig{AllowAllOrigins: true},
			want:   true,
		},
		{
			name:   "exact match",
			origin: "https://app.example",
			config: CORSConfig{AllowedOrigins: []string{"https://app.example"}},
			want:   true,
		},
		{
			name:   "case insensitive match",
			origin: "https://App.Example",
			config: CORSConfig{AllowedOrigins: []string{"https://app.example"}},
			want:   true,
		},
		{
			name:   "wildcard entry",
			origin: "https://anything.example",
			config: CORSConfig{AllowedOrigins: []string{"*"}},
			want:   true,
		},
		{
			name:   "no match",
			origin: "https://other.example",
			config: CORSConfig{AllowedOrigins: []string{"https://app.example"}},
			want:   false,
		},
		{
			name:   "empty config",
			origin: "https://app.example",
			config: CORSConfig{},
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsOriginAllowed(tt.origin, tt.config); got != tt.want {
				t.Errorf("IsOriginAllowed(%q) = %v, want %v", tt.origin, got, tt.want)
			}
		})
	}
}
