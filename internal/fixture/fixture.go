// Package fixture writes OPVault containers to disk for tests. Every blob is
// produced with the real sealing primitives and every item carries a correctly
// computed tag, so the readers under test see the same bytes a real client
// would write.
package fixture

import (
	"crypto/rand"
	"crypto/sha512"
	"encoding/base64"
	"encoding/binary"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-opvault/internal/crypto"
	"github.com/MKhiriev/go-opvault/internal/store"
	"github.com/MKhiriev/go-opvault/models"
)

// DefaultIterations keeps PBKDF2 fast in tests.
const DefaultIterations = 1000

// Vault describes the container to write.
type Vault struct {
	Password    string
	Hint        string
	Iterations  int
	Folders     []Folder
	Items       []Item
	Attachments []Attachment
}

// Folder is a folder entry; Name ends up in the encrypted overview.
type Folder struct {
	UUID models.UUID
	Name string
}

// Item is a band record. Title goes into the overview, Details into d.
type Item struct {
	UUID       models.UUID
	Category   models.Category
	FolderUUID *models.UUID
	Title      string
	Details    map[string]any
	Trashed    bool

	// CorruptTag flips one byte of the stored hmac after it is computed.
	CorruptTag bool
}

// Attachment is written as <ItemUUID>_<UUID>.attachment.
type Attachment struct {
	UUID     models.UUID
	ItemUUID models.UUID
	Contents []byte
}

// Keys are the unwrapped profile keys of the written vault.
type Keys struct {
	Master   crypto.KeyPair
	Overview crypto.KeyPair
}

// TagKey returns the key that verifies item tags.
func (k Keys) TagKey(t testing.TB) models.HMACKey {
	t.Helper()
	key, err := models.NewHMACKey(k.Overview.MAC)
	require.NoError(t, err)
	return key
}

// Write creates base/default with profile.js, folders.js, band files and
// attachments for v, and returns the keys needed to read it back.
func Write(t testing.TB, base string, v Vault) Keys {
	t.Helper()

	if v.Iterations == 0 {
		v.Iterations = DefaultIterations
	}
	if v.Password == "" {
		v.Password = "password"
	}

	dir := filepath.Join(base, "default")
	require.NoError(t, os.MkdirAll(dir, 0o700))

	keys := writeProfile(t, dir, v)
	writeFolders(t, dir, v.Folders, keys)
	itemKeys := writeBands(t, dir, v.Items, keys)
	writeAttachments(t, dir, v.Attachments, itemKeys, keys)

	return keys
}

func writeProfile(t testing.TB, dir string, v Vault) Keys {
	t.Helper()
	salt := randomBytes(t, 16)
	kek := crypto.NewKeyChainService().DeriveKeys(v.Password, salt, v.Iterations)

	master, masterBlob := newProfileKey(t, kek)
	overview, overviewBlob := newProfileKey(t, kek)

	profile := map[string]any{
		"uuid":          models.NewUUID().String(),
		"profileName":   "default",
		"passwordHint":  v.Hint,
		"salt":          base64.StdEncoding.EncodeToString(salt),
		"iterations":    v.Iterations,
		"masterKey":     base64.StdEncoding.EncodeToString(masterBlob),
		"overviewKey":   base64.StdEncoding.EncodeToString(overviewBlob),
		"lastUpdatedBy": "fixture",
		"createdAt":     1373753414,
		"updatedAt":     1370323483,
	}
	writeScript(t, filepath.Join(dir, "profile.js"), "var profile=", profile, ";")

	return Keys{Master: master, Overview: overview}
}

func newProfileKey(t testing.TB, kek crypto.KeyPair) (crypto.KeyPair, []byte) {
	t.Helper()
	raw := randomBytes(t, 256)
	blob, err := crypto.SealOpdata(raw, kek)
	require.NoError(t, err)

	sum := sha512.Sum512(raw)
	return crypto.KeyPair{Encryption: sum[:crypto.KeySize], MAC: sum[crypto.KeySize:]}, blob
}

func writeFolders(t testing.TB, dir string, folders []Folder, keys Keys) {
	t.Helper()
	records := make(map[string]any, len(folders))
	for _, f := range folders {
		overview := sealJSON(t, map[string]any{"title": f.Name}, keys.Overview)
		records[f.UUID.String()] = map[string]any{
			"uuid":     f.UUID.String(),
			"overview": base64.StdEncoding.EncodeToString(overview),
			"created":  1373754128,
			"updated":  1373754128,
			"tx":       1373754523,
		}
	}
	writeScript(t, filepath.Join(dir, "folders.js"), "loadFolders(", records, ");")
}

func writeBands(t testing.TB, dir string, items []Item, keys Keys) map[models.UUID]crypto.KeyPair {
	t.Helper()
	bands := make(map[string]map[string]any)
	itemKeys := make(map[models.UUID]crypto.KeyPair, len(items))

	for _, it := range items {
		ik := crypto.KeyPair{Encryption: randomBytes(t, crypto.KeySize), MAC: randomBytes(t, crypto.KeySize)}
		itemKeys[it.UUID] = ik

		wrapped, err := crypto.WrapItemKey(ik, keys.Master)
		require.NoError(t, err)

		details := it.Details
		if details == nil {
			details = map[string]any{}
		}

		fields := map[string]any{
			"uuid":     it.UUID.String(),
			"category": string(it.Category),
			"created":  json.Number("1373754128"),
			"updated":  json.Number("1373754128"),
			"tx":       json.Number("1373754523"),
			"k":        base64.StdEncoding.EncodeToString(wrapped),
			"o":        base64.StdEncoding.EncodeToString(sealJSON(t, map[string]any{"title": it.Title}, keys.Overview)),
			"d":        base64.StdEncoding.EncodeToString(sealJSON(t, details, ik)),
		}
		if it.FolderUUID != nil {
			fields["folder"] = it.FolderUUID.String()
		}
		if it.Trashed {
			fields["trashed"] = true
		}

		signed, err := store.SignedBytes(fields)
		require.NoError(t, err)
		tag := crypto.ComputeTag(keys.Overview.MAC, signed)
		if it.CorruptTag {
			tag[0] ^= 0x01
		}
		fields["hmac"] = base64.StdEncoding.EncodeToString(tag)

		band := "band_" + it.UUID.String()[:1] + ".js"
		if bands[band] == nil {
			bands[band] = make(map[string]any)
		}
		bands[band][it.UUID.String()] = fields
	}

	for name, records := range bands {
		writeScript(t, filepath.Join(dir, name), "ld(", records, ");")
	}
	return itemKeys
}

func writeAttachments(t testing.TB, dir string, attachments []Attachment, itemKeys map[models.UUID]crypto.KeyPair, keys Keys) {
	t.Helper()
	for _, a := range attachments {
		contentKeys, ok := itemKeys[a.ItemUUID]
		if !ok {
			contentKeys = keys.Overview
		}

		contents, err := crypto.SealOpdata(a.Contents, contentKeys)
		require.NoError(t, err)

		meta, err := json.Marshal(map[string]any{
			"uuid":         a.UUID.String(),
			"itemUUID":     a.ItemUUID.String(),
			"contentsSize": len(a.Contents),
			"external":     false,
			"createdAt":    1373754128,
			"updatedAt":    1373754128,
			"txTimestamp":  1373754523,
		})
		require.NoError(t, err)

		data := []byte("OPCLDAT")
		data = append(data, 0x01)
		data = binary.LittleEndian.AppendUint16(data, uint16(len(meta)))
		data = append(data, 0x00, 0x00)
		data = binary.LittleEndian.AppendUint32(data, 0)
		data = append(data, meta...)
		data = append(data, contents...)

		name := a.ItemUUID.String() + "_" + a.UUID.String() + store.AttachmentExt
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), data, 0o600))
	}
}

func sealJSON(t testing.TB, v any, keys crypto.KeyPair) []byte {
	t.Helper()
	plain, err := json.Marshal(v)
	require.NoError(t, err)
	blob, err := crypto.SealOpdata(plain, keys)
	require.NoError(t, err)
	return blob
}

func writeScript(t testing.TB, path, prefix string, v any, suffix string) {
	t.Helper()
	payload, err := json.Marshal(v)
	require.NoError(t, err)
	content := prefix + string(payload) + suffix
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func randomBytes(t testing.TB, n int) []byte {
	t.Helper()
	b := make([]byte, n)
	_, err := rand.Read(b)
	require.NoError(t, err)
	return b
}

// UUIDs returns n fixed identifiers whose first hex digits differ, so that
// they land in different band files.
func UUIDs(n int) []models.UUID {
	out := make([]models.UUID, n)
	for i := range out {
		digit := strconv.FormatInt(int64(i%16), 16)
		out[i] = models.MustParseUUID(digit + "1234567890ABCDEF1234567890AB" + leftPad(i))
	}
	return out
}

func leftPad(i int) string {
	s := strconv.Itoa(i)
	for len(s) < 3 {
		s = "0" + s
	}
	return s
}
