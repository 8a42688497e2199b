package protocol

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/westphae/quaternion"

	gocube "github.com/SeamusWaldron/gocube_animator"
)

// RotationEvent represents a single face rotation from the cube.
type RotationEvent struct {
	FaceCode          byte // Raw face+direction code (0x00-0x0B)
	CenterOrientation byte
	Clockwise         bool
	Face              gocube.Face
}

// Face of each center color index, assuming white up and green front.
var colorFaces = [6]gocube.Face{
	gocube.FaceB, // blue
	gocube.FaceF, // green
	gocube.FaceU, // white
	gocube.FaceD, // yellow
	gocube.FaceR, // red
	gocube.FaceL, // orange
}

// DecodeRotation decodes a rotation message payload into rotation events.
// Rotation payloads contain pairs of bytes: [face_dir] [center_orientation]
func DecodeRotation(payload []byte) ([]RotationEvent, error) {
	if len(payload)%2 != 0 {
		return nil, fmt.Errorf("rotation payload must have even length, got %d", len(payload))
	}

	events := make([]RotationEvent, 0, len(payload)/2)
	for i := 0; i < len(payload); i += 2 {
		faceCode := payload[i]

		// Even codes are clockwise, odd codes counter-clockwise.
		colorIdx := int(faceCode / 2)
		if colorIdx >= len(colorFaces) {
			return nil, fmt.Errorf("unknown color index %d from face code 0x%02X", colorIdx, faceCode)
		}

		events = append(events, RotationEvent{
			FaceCode:          faceCode,
			CenterOrientation: payload[i+1],
			Clockwise:         faceCode%2 == 0,
			Face:              colorFaces[colorIdx],
		})
	}
	return events, nil
}

// Move converts the event into a quarter-turn move.
func (e RotationEvent) Move(t time.Time) gocube.Move {
	turn := gocube.CCW
	if e.Clockwise {
		turn = gocube.CW
	}
	return gocube.Move{Face: e.Face, Turn: turn, Time: t}
}

// DecodeMoves decodes a rotation payload straight into moves, merging
// adjacent turns of the same face.
func DecodeMoves(payload []byte, t time.Time) ([]gocube.Move, error) {
	events, err := DecodeRotation(payload)
	if err != nil {
		return nil, err
	}
	moves := make([]gocube.Move, len(events))
	for i, e := range events {
		moves[i] = e.Move(t)
	}
	return gocube.Simplify(moves), nil
}

// DecodeBattery decodes a battery message payload into a 0-100 percentage.
func DecodeBattery(payload []byte) (int, error) {
	if len(payload) < 1 {
		return 0, fmt.Errorf("battery payload too short")
	}
	return int(payload[0]), nil
}

// OrientationEvent is the cube's reported spatial orientation.
type OrientationEvent struct {
	Rotation  quaternion.Quaternion // normalized
	UpFace    gocube.Face           // face pointing up
	FrontFace gocube.Face           // face towards the viewer
}

// DecodeOrientation decodes an orientation message payload.
// Format: ASCII "x#y#z#w" where the last part may carry a trailing checksum
// byte and CRLF.
func DecodeOrientation(payload []byte) (*OrientationEvent, error) {
	parts := strings.Split(string(payload), "#")
	if len(parts) != 4 {
		return nil, fmt.Errorf("orientation payload must have 4 parts, got %d", len(parts))
	}
	parts[3] = leadingNumber(parts[3])

	var v [4]float64
	for i, name := range []string{"x", "y", "z", "w"} {
		f, err := strconv.ParseFloat(parts[i], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid %s value: %w", name, err)
		}
		v[i] = f
	}

	// GoCube sends raw integers; normalize before rotating.
	q := quaternion.Quaternion{W: v[3], X: v[0], Y: v[1], Z: v[2]}
	if n := math.Sqrt(q.W*q.W + q.X*q.X + q.Y*q.Y + q.Z*q.Z); n > 0 {
		q = quaternion.Quaternion{W: q.W / n, X: q.X / n, Y: q.Y / n, Z: q.Z / n}
	}

	up := q.RotateVec3(quaternion.Vec3{Y: 1})
	front := q.RotateVec3(quaternion.Vec3{Z: 1})
	return &OrientationEvent{
		Rotation:  q,
		UpFace:    nearestFace(up),
		FrontFace: nearestFace(front),
	}, nil
}

func leadingNumber(s string) string {
	end := 0
	for i, r := range s {
		if (r == '-' && i == 0) || r == '.' || (r >= '0' && r <= '9') {
			end = i + 1
			continue
		}
		break
	}
	return s[:end]
}

// nearestFace returns the face whose normal is closest to v.
func nearestFace(v quaternion.Vec3) gocube.Face {
	ax, ay, az := math.Abs(v.X), math.Abs(v.Y), math.Abs(v.Z)
	switch {
	case ay >= ax && ay >= az:
		if v.Y > 0 {
			return gocube.FaceU
		}
		return gocube.FaceD
	case az >= ax && az >= ay:
		if v.Z > 0 {
			return gocube.FaceF
		}
		return gocube.FaceB
	case v.X > 0:
		return gocube.FaceR
	default:
		return gocube.FaceL
	}
}
