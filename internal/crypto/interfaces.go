package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_service_mock.go -package=mock

// KeyChainService opens the key hierarchy of an OPVault profile. It knows
// nothing about files or items; it only derives and unwraps keys.
//
// Key hierarchy:
//
//	KEK             = PBKDF2-SHA512(password, profile.salt, profile.iterations)   (Step 1)
//	master keys     = SHA512(opdata01⁻¹(profile.masterKey, KEK))                  (Step 2)
//	overview keys   = SHA512(opdata01⁻¹(profile.overviewKey, KEK))                (Step 2)
//	item keys       = unwrap(item.k, master keys)                                 (Step 3)
//	item tag key    = overview keys.MAC
type KeyChainService interface {
	// DeriveKeys stretches the master password into the key-encryption
	// key pair. Step 1.
	DeriveKeys(password string, salt []byte, iterations int) KeyPair

	// UnwrapProfileKey opens the masterKey or overviewKey blob of a
	// profile with the derived key pair. A wrong password surfaces as
	// [ErrAuthentication]. Step 2.
	UnwrapProfileKey(blob []byte, kek KeyPair) (KeyPair, error)

	// UnwrapItemKey opens the per-item key (k) with the master keys. Step 3.
	UnwrapItemKey(wrapped []byte, master KeyPair) (KeyPair, error)

	// DecryptOpdata authenticates and decrypts an opdata01 blob.
	DecryptOpdata(blob []byte, keys KeyPair) ([]byte, error)

	// DecryptJSON decrypts an opdata01 blob and unmarshals the plaintext
	// into target (same contract as json.Unmarshal).
	DecryptJSON(blob []byte, keys KeyPair, target any) error
}
