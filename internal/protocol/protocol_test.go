package protocol

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gocube "github.com/SeamusWaldron/gocube_animator"
)

func TestFrameParseRoundTrip(t *testing.T) {
	payloads := [][]byte{
		nil,
		{0x04, 0x00},
		{0x08, 0x03, 0x0B, 0x06},
	}
	for _, p := range payloads {
		raw := Frame(MsgTypeRotation, p)
		assert.Equal(t, FramePrefix, raw[0])
		assert.Equal(t, []byte{FrameSuffix1, FrameSuffix2}, raw[len(raw)-2:])

		msg, err := Parse(raw)
		require.NoError(t, err, "payload % X", p)
		assert.Equal(t, MsgTypeRotation, msg.Type)
		assert.Equal(t, len(p), len(msg.Payload))
		if len(p) > 0 {
			assert.Equal(t, p, msg.Payload)
		}
	}
}

func TestParseCopiesPayload(t *testing.T) {
	raw := Frame(MsgTypeBattery, []byte{80})
	msg, err := Parse(raw)
	require.NoError(t, err)

	raw[3] = 0
	assert.Equal(t, []byte{80}, msg.Payload)
}

func TestParseErrors(t *testing.T) {
	good := Frame(MsgTypeRotation, []byte{0x04, 0x00})

	_, err := Parse(good[:4])
	assert.ErrorIs(t, err, ErrMessageTooShort)

	badPrefix := append([]byte(nil), good...)
	badPrefix[0] = 0x00
	_, err = Parse(badPrefix)
	assert.ErrorIs(t, err, ErrInvalidPrefix)

	badChecksum := append([]byte(nil), good...)
	badChecksum[len(badChecksum)-3]++
	_, err = Parse(badChecksum)
	assert.ErrorIs(t, err, ErrInvalidChecksum)

	badSuffix := append([]byte(nil), good...)
	badSuffix[len(badSuffix)-1] = 0x00
	_, err = Parse(badSuffix)
	assert.ErrorIs(t, err, ErrInvalidSuffix)

	truncated := append([]byte(nil), good...)
	truncated[1] += 4
	_, err = Parse(truncated)
	assert.ErrorIs(t, err, ErrInvalidLength)
}

func TestBuildCommand(t *testing.T) {
	cmd := BuildCommand(CmdRequestBattery)
	assert.Equal(t, []byte{0x2A, 0x01, 0x32, 0x5D, 0x0D, 0x0A}, cmd)
}

func TestMessageTypeName(t *testing.T) {
	assert.Equal(t, "rotation", MessageTypeName(MsgTypeRotation))
	assert.Equal(t, "battery", MessageTypeName(MsgTypeBattery))
	assert.Equal(t, "unknown_0x7F", MessageTypeName(0x7F))
}

func TestDecodeRotation(t *testing.T) {
	events, err := DecodeRotation([]byte{0x04, 0x00, 0x09, 0x03, 0x00, 0x06})
	require.NoError(t, err)
	require.Len(t, events, 3)

	assert.Equal(t, gocube.FaceU, events[0].Face)
	assert.True(t, events[0].Clockwise)
	assert.Equal(t, gocube.FaceR, events[1].Face)
	assert.False(t, events[1].Clockwise)
	assert.Equal(t, byte(0x03), events[1].CenterOrientation)
	assert.Equal(t, gocube.FaceB, events[2].Face)

	_, err = DecodeRotation([]byte{0x04})
	assert.Error(t, err)
	_, err = DecodeRotation([]byte{0x0C, 0x00})
	assert.Error(t, err)
}

func TestDecodeRotationCoversEveryFace(t *testing.T) {
	faces := make(map[gocube.Face]bool)
	for code := byte(0); code < 12; code++ {
		events, err := DecodeRotation([]byte{code, 0})
		require.NoError(t, err)
		m := events[0].Move(time.Time{})
		assert.True(t, m.Valid())
		faces[m.Face] = true
	}
	assert.Len(t, faces, 6)
}

func TestDecodeMoves(t *testing.T) {
	at := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	moves, err := DecodeMoves([]byte{0x08, 0x00, 0x08, 0x00, 0x02, 0x00}, at)
	require.NoError(t, err)
	require.Len(t, moves, 2)
	assert.Equal(t, "R2 F", gocube.FormatMoves(moves))
	assert.Equal(t, at, moves[1].Time)

	// A turn and its reverse in one notification cancel out.
	moves, err = DecodeMoves([]byte{0x08, 0x00, 0x09, 0x00}, at)
	require.NoError(t, err)
	assert.Empty(t, moves)
}

func TestDecodeBattery(t *testing.T) {
	pct, err := DecodeBattery([]byte{87})
	require.NoError(t, err)
	assert.Equal(t, 87, pct)

	_, err = DecodeBattery(nil)
	assert.Error(t, err)
}

func TestDecodeOrientation(t *testing.T) {
	ev, err := DecodeOrientation([]byte("0#0#0#1"))
	require.NoError(t, err)
	assert.Equal(t, gocube.FaceU, ev.UpFace)
	assert.Equal(t, gocube.FaceF, ev.FrontFace)
	assert.InDelta(t, 1.0, ev.Rotation.W, 1e-9)

	// Quarter turn about +X, raw integers plus a trailing checksum byte.
	ev, err = DecodeOrientation([]byte("707#0#0#707\x5a\r\n"))
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2/2, ev.Rotation.W, 1e-9)
	assert.InDelta(t, math.Sqrt2/2, ev.Rotation.X, 1e-9)
	assert.Equal(t, gocube.FaceF, ev.UpFace)
	assert.Equal(t, gocube.FaceD, ev.FrontFace)

	_, err = DecodeOrientation([]byte("1#2#3"))
	assert.Error(t, err)
	_, err = DecodeOrientation([]byte("a#0#0#1"))
	assert.Error(t, err)
}
