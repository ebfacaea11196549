package vault_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-opvault/internal/crypto"
	"github.com/MKhiriev/go-opvault/internal/fixture"
	"github.com/MKhiriev/go-opvault/internal/mock"
	"github.com/MKhiriev/go-opvault/internal/vault"
)

func TestUnlock_ReturnsProfileKeys(t *testing.T) {
	s := writeScenario(t, false)
	v := openScenario(t, s)

	keys, err := v.Unlock(context.Background(), "password")
	require.NoError(t, err)
	assert.Equal(t, s.keys.Master, keys.Master)
	assert.Equal(t, s.keys.Overview, keys.Overview)
}

func TestUnlock_WrongPassword(t *testing.T) {
	s := writeScenario(t, false)
	v := openScenario(t, s)

	_, err := v.Unlock(context.Background(), "not the password")
	assert.ErrorIs(t, err, vault.ErrWrongPassword)
}

func TestUnlock_CanceledContext(t *testing.T) {
	s := writeScenario(t, false)
	v := openScenario(t, s)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := v.Unlock(ctx, "password")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestUnlock_NonAuthenticationErrorIsWrapped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := writeScenario(t, false)
	keyChain := mock.NewMockKeyChainService(ctrl)
	v, err := vault.Open(context.Background(), s.base, vault.WithKeyChain(keyChain))
	require.NoError(t, err)

	kek := crypto.KeyPair{Encryption: make([]byte, crypto.KeySize), MAC: make([]byte, crypto.KeySize)}
	gomock.InOrder(
		keyChain.EXPECT().DeriveKeys("password", v.Profile().Salt, v.Profile().Iterations).Return(kek),
		keyChain.EXPECT().UnwrapProfileKey(v.Profile().MasterKey, kek).Return(crypto.KeyPair{}, crypto.ErrMalformedOpdata),
	)

	_, err = v.Unlock(context.Background(), "password")
	assert.ErrorIs(t, err, crypto.ErrMalformedOpdata)
	assert.False(t, errors.Is(err, vault.ErrWrongPassword))
}

func TestOpenItems_DecryptsOverviewsAndDetails(t *testing.T) {
	s := writeScenario(t, false)
	v := openScenario(t, s)
	ctx := context.Background()

	keys, err := v.OpenItems(ctx, "password")
	require.NoError(t, err)

	folder, err := v.FolderOverview(keys, s.folder)
	require.NoError(t, err)
	assert.Equal(t, "F1", folder["title"])

	raw, err := v.ItemOverview(keys, s.i1)
	require.NoError(t, err)
	overview, err := vault.DecodeOverview(raw)
	require.NoError(t, err)
	assert.Equal(t, "I1", overview.Title)

	details, err := v.ItemDetails(keys, s.i1)
	require.NoError(t, err)
	assert.Equal(t, "hunter2", details["password"])

	contents, err := v.AttachmentContents(keys, s.i1, s.a1)
	require.NoError(t, err)
	assert.Equal(t, []byte("attachment body"), contents)
}

func TestOpenItems_WrongPasswordLeavesItemsUnloaded(t *testing.T) {
	s := writeScenario(t, false)
	v := openScenario(t, s)

	_, err := v.OpenItems(context.Background(), "nope")
	assert.ErrorIs(t, err, vault.ErrWrongPassword)
	assert.IsType(t, vault.NotLoaded{}, v.State())
}

func TestLookups_NotFound(t *testing.T) {
	s := writeScenario(t, false)
	v := openScenario(t, s)

	keys, err := v.OpenItems(context.Background(), "password")
	require.NoError(t, err)

	unknown := fixture.UUIDs(8)[7]

	_, err = v.FolderOverview(keys, unknown)
	assert.ErrorIs(t, err, vault.ErrFolderNotFound)

	_, err = v.ItemDetails(keys, unknown)
	assert.ErrorIs(t, err, vault.ErrItemNotFound)

	_, err = v.AttachmentContents(keys, s.i2, s.a1)
	assert.ErrorIs(t, err, vault.ErrAttachmentNotFound)
}
