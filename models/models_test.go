package models

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUUID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "opvault form", input: "2B894A18997C4638BACC55F2D56A4890", want: "2B894A18997C4638BACC55F2D56A4890"},
		{name: "lower case", input: "2b894a18997c4638bacc55f2d56a4890", want: "2B894A18997C4638BACC55F2D56A4890"},
		{name: "dashed", input: "2b894a18-997c-4638-bacc-55f2d56a4890", want: "2B894A18997C4638BACC55F2D56A4890"},
		{name: "too short", input: "2B894A18", wantErr: true},
		{name: "not hex", input: "ZZ894A18997C4638BACC55F2D56A4890", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := ParseUUID(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, id.String())
		})
	}
}

func TestUUID_TextRoundTripAsMapKey(t *testing.T) {
	id := MustParseUUID("D4E1A3F2C3B94B0C8B71C2E6C1C6F6A1")
	data, err := json.Marshal(map[UUID]int{id: 1})
	require.NoError(t, err)
	assert.JSONEq(t, `{"D4E1A3F2C3B94B0C8B71C2E6C1C6F6A1": 1}`, string(data))

	var back map[UUID]int
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, 1, back[id])
}

func TestUUID_Nil(t *testing.T) {
	assert.True(t, NilUUID.IsNil())
	assert.False(t, NewUUID().IsNil())
	assert.NotEqual(t, NewUUID(), NewUUID())
}

func TestHMACKey(t *testing.T) {
	raw := make([]byte, HMACKeySize)
	raw[0] = 0xAB

	key, err := NewHMACKey(raw)
	require.NoError(t, err)

	out := key.Bytes()
	assert.Equal(t, raw, out)
	out[0] = 0
	assert.Equal(t, byte(0xAB), key.Bytes()[0], "Bytes must return a copy")

	assert.NotContains(t, fmt.Sprintf("%v %#v %s", key, key, key), "ab")

	_, err = NewHMACKey(raw[:16])
	assert.ErrorIs(t, err, ErrInvalidHMACKey)
}

func TestCategory_String(t *testing.T) {
	assert.Equal(t, "Login", Login.String())
	assert.Equal(t, "Secure Note", SecureNote.String())
	assert.Equal(t, "Email Account", Email.String())
	assert.Equal(t, "042", Category("042").String())
}

func attachmentBytes(meta string, icon, contents []byte) []byte {
	data := []byte("OPCLDAT")
	data = append(data, 0x01)
	data = binary.LittleEndian.AppendUint16(data, uint16(len(meta)))
	data = append(data, 0x00, 0x00)
	data = binary.LittleEndian.AppendUint32(data, uint32(len(icon)))
	data = append(data, meta...)
	data = append(data, icon...)
	return append(data, contents...)
}

func TestAttachment_Header(t *testing.T) {
	meta := `{"uuid":"A1","itemUUID":"I1","contentsSize":5,"external":false,"txTimestamp":7}`
	a := Attachment{Data: attachmentBytes(meta, []byte("icon"), []byte("opdata01..."))}

	header, err := a.Header()
	require.NoError(t, err)

	assert.Equal(t, byte(1), header.Version)
	assert.Equal(t, "A1", header.Metadata.UUID)
	assert.Equal(t, "I1", header.Metadata.ItemUUID)
	assert.Equal(t, int64(5), header.Metadata.ContentsSize)
	assert.Equal(t, int64(7), header.Metadata.TxTimestamp)
	assert.Equal(t, []byte("icon"), header.Icon)
	assert.Equal(t, []byte("opdata01..."), header.Contents)
}

func TestAttachment_HeaderMalformed(t *testing.T) {
	valid := attachmentBytes(`{}`, nil, []byte("x"))

	badMagic := append([]byte{}, valid...)
	badMagic[0] = 'X'

	oversized := append([]byte{}, valid...)
	binary.LittleEndian.PutUint16(oversized[8:10], 0xFFFF)

	tests := map[string][]byte{
		"empty":        nil,
		"short":        valid[:10],
		"bad magic":    badMagic,
		"oversized":    oversized,
		"bad metadata": attachmentBytes(`{nope`, nil, nil),
	}

	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Attachment{Data: data}.Header()
			assert.ErrorIs(t, err, ErrMalformedAttachment)
		})
	}
}
