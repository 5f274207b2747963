package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		auth        Auth
		development bool
		wantErr     error
	}{
		{
			name:    "segredo padrão sem hash fora de desenvolvimento",
			auth:    Auth{Secret: DefaultSecretKey},
			wantErr: ErrInsecureAuth,
		},
		{
			name:        "segredo padrão sem hash em desenvolvimento",
			auth:        Auth{Secret: DefaultSecretKey},
			development: true,
		},
		{
			name: "segredo padrão com hash",
			auth: Auth{Secret: DefaultSecretKey, AccessKeyHash: "$2a$10$hash"},
		},
		{
			name: "segredo próprio sem hash",
			auth: Auth{Secret: "segredo-da-empresa"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Auth: tt.auth}
			err := cfg.Validate(tt.development)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
