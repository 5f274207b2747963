package preferences

import (
	"context"
	"testing"

	"github.com/maestria/maestria-api/infrastructure/repository"
	"github.com/maestria/maestria-api/internal/config"
	"github.com/maestria/maestria-api/internal/domain"
	"github.com/maestria/maestria-api/internal/usecases/persisting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var keys = config.Storage{
	SnapshotKey: "maestria_data",
	BrandingKey: "maestria_branding",
	LanguageKey: "maestria_lang",
	ViewKey:     "maestria_view",
	IdentityKey: "maestria_auth",
}

func TestService_Defaults(t *testing.T) {
	ctx := context.Background()
	svc := NewService(persisting.NewStore(repository.NewMemoryStorage(), "inst-a", keys.SnapshotKey), keys)

	assert.Equal(t, domain.DefaultBranding(), svc.Branding(ctx))
	assert.Equal(t, domain.LanguagePortuguese, svc.Language(ctx))
	assert.Equal(t, domain.DefaultView, svc.View(ctx))
}

func TestService_RoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := NewService(persisting.NewStore(repository.NewMemoryStorage(), "inst-a", keys.SnapshotKey), keys)

	_, err := svc.SetBranding(ctx, domain.Branding{CompanyName: "  Ótica Visão  ", PrimaryColor: "#000000"})
	require.NoError(t, err)
	require.NoError(t, svc.SetLanguage(ctx, domain.LanguageSpanish))
	require.NoError(t, svc.SetView(ctx, "ledger"))

	assert.Equal(t, "Ótica Visão", svc.Branding(ctx).CompanyName)
	assert.Equal(t, domain.LanguageSpanish, svc.Language(ctx))
	assert.Equal(t, "ledger", svc.View(ctx))
}

func TestService_RejectsInvalidInput(t *testing.T) {
	ctx := context.Background()
	svc := NewService(persisting.NewStore(repository.NewMemoryStorage(), "inst-a", keys.SnapshotKey), keys)

	_, err := svc.SetBranding(ctx, domain.Branding{})
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.ErrorIs(t, svc.SetLanguage(ctx, "fr"), domain.ErrValidation)
	assert.ErrorIs(t, svc.SetView(ctx, ""), domain.ErrValidation)
}

func TestService_CorruptedLanguageFallsBack(t *testing.T) {
	ctx := context.Background()
	memory := repository.NewMemoryStorage()
	_, err := memory.Put(ctx, keys.LanguageKey, []byte(`"klingon"`), "x")
	require.NoError(t, err)

	svc := NewService(persisting.NewStore(memory, "inst-a", keys.SnapshotKey), keys)
	assert.Equal(t, domain.LanguagePortuguese, svc.Language(ctx))
}
