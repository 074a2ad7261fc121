package param

import (
	"errors"
	"testing"

	"github.com/danmuck/termparam/internal/testutil/testlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scratchID ID = 0x7001 // not in the catalogue

func TestSetGetRoundTrip(t *testing.T) {
	testlog.Start(t)
	cases := []struct {
		name string
		id   ID
		v    Value
	}{
		{"u8 zero", GNSSLogGGA, U8(0)},
		{"u8 max", GNSSLogRMC, U8(0xFF)},
		{"u16", NtripCorsPort, U16(2101)},
		{"u16 max", CDRadioWorkFreq, U16(0xFFFF)},
		{"u32", HeartbeatInterval, U32(30)},
		{"u32 max", AlarmMask, U32(0xFFFFFFFF)},
		{"text", NtripCorsMountPoint, Text("RTCM32_GGB")},
		{"empty text", NtripCorsPassword, Text("")},
		{"utf8 text", JT808ServiceIP, Text("平台.example.cn")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tbl := NewTable()
			require.NoError(t, tbl.Set(tc.id, tc.v))
			got, err := tbl.Get(tc.id, tc.v.Kind)
			require.NoError(t, err)
			assert.Equal(t, tc.v, got)
		})
	}
}

func TestScalarsAreBigEndian(t *testing.T) {
	testlog.Start(t)
	tbl := NewTable()
	require.NoError(t, tbl.SetU16(scratchID, 0x1234))
	raw, ok := tbl.Raw(scratchID)
	require.True(t, ok)
	assert.Equal(t, []byte{0x12, 0x34}, raw)

	require.NoError(t, tbl.SetU32(scratchID, 0x01020304))
	raw, _ = tbl.Raw(scratchID)
	assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, raw)

	require.NoError(t, tbl.SetU8(scratchID, 0xAB))
	raw, _ = tbl.Raw(scratchID)
	assert.Equal(t, []byte{0xAB}, raw)
}

func TestGetLengthMismatch(t *testing.T) {
	testlog.Start(t)
	tbl := NewTable()
	require.NoError(t, tbl.SetU16(NtripCorsPort, 2101))

	_, err := tbl.GetU32(NtripCorsPort)
	require.ErrorIs(t, err, ErrLengthMismatch)

	_, err = tbl.GetU8(NtripCorsPort)
	require.ErrorIs(t, err, ErrLengthMismatch)

	port, err := tbl.GetU16(NtripCorsPort)
	require.NoError(t, err)
	assert.Equal(t, uint16(2101), port)
}

func TestSizedEntryLength(t *testing.T) {
	testlog.Start(t)
	tbl := NewTable()
	err := tbl.SetText(CANBusIDCollect, "abc")
	require.ErrorIs(t, err, ErrLengthMismatch)
	assert.False(t, tbl.Has(CANBusIDCollect))

	setting := string([]byte{0, 0, 0, 100, 0x80, 0, 0x01, 0x23})
	require.NoError(t, tbl.SetText(CANBusIDCollect, setting))
	got, err := tbl.GetText(CANBusIDCollect)
	require.NoError(t, err)
	assert.Equal(t, setting, got)

	require.NoError(t, tbl.SetRaw(CANBusIDCollect, []byte("abc")))
	_, err = tbl.GetText(CANBusIDCollect)
	require.ErrorIs(t, err, ErrLengthMismatch)

	b := Bundle{Name: "canbus", Members: []ID{CANBusIDCollect}}
	tbl = NewTable()
	err = b.Pack(tbl, Text("abcdefghijk"))
	require.ErrorIs(t, err, ErrLengthMismatch)
	assert.Empty(t, tbl)
}

func TestSetDoesNotReuseStoredSlice(t *testing.T) {
	testlog.Start(t)
	tbl := NewTable()
	require.NoError(t, tbl.SetText(NtripCorsUser, "rover"))
	held := tbl[NtripCorsUser]

	require.NoError(t, tbl.SetText(NtripCorsUser, "base"))
	assert.Equal(t, []byte("rover"), held)
	got, err := tbl.GetText(NtripCorsUser)
	require.NoError(t, err)
	assert.Equal(t, "base", got)
}

func TestTextHasNoTerminator(t *testing.T) {
	testlog.Start(t)
	tbl := NewTable()
	require.NoError(t, tbl.SetText(JT808ServiceIP, "iot.example.com"))

	raw, _ := tbl.Raw(JT808ServiceIP)
	assert.Equal(t, []byte("iot.example.com"), raw)
	assert.Len(t, raw, len("iot.example.com"))

	got, err := tbl.GetText(JT808ServiceIP)
	require.NoError(t, err)
	assert.Equal(t, "iot.example.com", got)
}

func TestSetIsIdempotent(t *testing.T) {
	testlog.Start(t)
	once := NewTable()
	twice := NewTable()
	require.NoError(t, once.SetU32(MaxSpeed, 120))
	require.NoError(t, twice.SetU32(MaxSpeed, 120))
	require.NoError(t, twice.SetU32(MaxSpeed, 120))
	assert.Equal(t, once, twice)
}

func TestSetOverwritesOnlyTargetKey(t *testing.T) {
	testlog.Start(t)
	tbl := NewTable()
	require.NoError(t, tbl.SetText(NtripCorsIP, "a-much-longer-host.example.com"))
	require.NoError(t, tbl.SetText(NtripCorsUser, "rover"))

	require.NoError(t, tbl.SetText(NtripCorsIP, "1.2.3.4"))

	ip, err := tbl.GetText(NtripCorsIP)
	require.NoError(t, err)
	assert.Equal(t, "1.2.3.4", ip)
	user, err := tbl.GetText(NtripCorsUser)
	require.NoError(t, err)
	assert.Equal(t, "rover", user)
	assert.Len(t, tbl, 2)
}

func TestSetRejectsCatalogueKindMismatch(t *testing.T) {
	testlog.Start(t)
	tbl := NewTable()
	err := tbl.SetU32(NtripCorsPort, 2101)
	require.ErrorIs(t, err, ErrKindMismatch)
	assert.False(t, tbl.Has(NtripCorsPort))

	// Unknown IDs take any kind.
	require.NoError(t, tbl.SetU32(scratchID, 1))
	require.NoError(t, tbl.SetText(scratchID, "x"))
}

func TestSetRejectsInvalidValue(t *testing.T) {
	testlog.Start(t)
	tbl := NewTable()
	require.ErrorIs(t, tbl.Set(scratchID, Value{}), ErrUnknownKind)
	_, err := tbl.Get(scratchID, KindInvalid)
	require.Error(t, err)
}

func TestNilTable(t *testing.T) {
	testlog.Start(t)
	var tbl Table
	require.ErrorIs(t, tbl.SetU8(GNSSLogGGA, 1), ErrNilTable)
	require.ErrorIs(t, tbl.SetRaw(GNSSLogGGA, []byte{1}), ErrNilTable)
	_, err := tbl.GetU8(GNSSLogGGA)
	require.ErrorIs(t, err, ErrNilTable)
	assert.Nil(t, tbl.Clone())
}

func TestGetKeyNotFound(t *testing.T) {
	testlog.Start(t)
	tbl := NewTable()
	_, err := tbl.GetText(NtripCorsIP)
	require.ErrorIs(t, err, ErrKeyNotFound)
	assert.Contains(t, err.Error(), "ntrip_cors_ip")
}

func TestScan(t *testing.T) {
	testlog.Start(t)
	tbl := NewTable()
	require.NoError(t, tbl.SetU8(GNSSLogATT, 1))
	require.NoError(t, tbl.SetU16(JT808ServicePort, 7611))
	require.NoError(t, tbl.SetU32(HeartbeatInterval, 60))
	require.NoError(t, tbl.SetText(JT808ServicePhoneNumber, "013800138000"))

	var (
		att   uint8
		port  uint16
		beat  uint32
		phone string
	)
	require.NoError(t, tbl.Scan(GNSSLogATT, &att))
	require.NoError(t, tbl.Scan(JT808ServicePort, &port))
	require.NoError(t, tbl.Scan(HeartbeatInterval, &beat))
	require.NoError(t, tbl.Scan(JT808ServicePhoneNumber, &phone))
	assert.Equal(t, uint8(1), att)
	assert.Equal(t, uint16(7611), port)
	assert.Equal(t, uint32(60), beat)
	assert.Equal(t, "013800138000", phone)

	var nilPtr *uint8
	require.ErrorIs(t, tbl.Scan(GNSSLogATT, nilPtr), ErrNilOutput)
	require.ErrorIs(t, tbl.Scan(GNSSLogATT, nil), ErrNilOutput)

	var wrong int
	require.ErrorIs(t, tbl.Scan(GNSSLogATT, &wrong), ErrUnsupportedType)

	beat = 99
	err := tbl.Scan(JT808ServicePort, &beat)
	require.ErrorIs(t, err, ErrLengthMismatch)
	assert.Equal(t, uint32(99), beat, "output untouched on failure")
}

func TestRawAndCloneCopy(t *testing.T) {
	testlog.Start(t)
	tbl := NewTable()
	require.NoError(t, tbl.SetText(NtripCorsUser, "rover"))

	raw, _ := tbl.Raw(NtripCorsUser)
	raw[0] = 'X'
	clone := tbl.Clone()
	clone[NtripCorsUser][1] = 'Y'

	user, err := tbl.GetText(NtripCorsUser)
	require.NoError(t, err)
	assert.Equal(t, "rover", user)
}

func TestIDsSorted(t *testing.T) {
	testlog.Start(t)
	tbl := NewTable()
	require.NoError(t, tbl.SetU8(GNSSLogATT, 1))
	require.NoError(t, tbl.SetU32(HeartbeatInterval, 1))
	require.NoError(t, tbl.SetU16(NtripCorsPort, 1))
	assert.Equal(t, []ID{HeartbeatInterval, GNSSLogATT, NtripCorsPort}, tbl.IDs())

	tbl.Delete(GNSSLogATT)
	assert.Equal(t, []ID{HeartbeatInterval, NtripCorsPort}, tbl.IDs())
}

func TestDecodeDirect(t *testing.T) {
	testlog.Start(t)
	v, err := Decode(KindU32, []byte{0, 0, 0x01, 0x00})
	require.NoError(t, err)
	assert.Equal(t, U32(256), v)

	_, err = Decode(KindU16, []byte{1, 2, 3})
	assert.True(t, errors.Is(err, ErrLengthMismatch))

	_, err = Decode(Kind(42), nil)
	assert.ErrorIs(t, err, ErrUnknownKind)
}
