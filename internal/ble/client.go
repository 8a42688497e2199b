// Package ble connects to a GoCube over Bluetooth LE and turns its
// notifications into puzzle moves.
package ble

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"tinygo.org/x/bluetooth"

	gocube "github.com/SeamusWaldron/gocube_animator"
	"github.com/SeamusWaldron/gocube_animator/internal/protocol"
)

// Errors
var (
	ErrNotConnected     = errors.New("ble: not connected to device")
	ErrAlreadyConnected = errors.New("ble: already connected to a device")
	ErrServiceNotFound  = errors.New("ble: GoCube service not found")
)

var (
	serviceUUID = mustParseUUID(protocol.ServiceUUID)
	txCharUUID  = mustParseUUID(protocol.TxCharUUID)
	rxCharUUID  = mustParseUUID(protocol.RxCharUUID)
)

func mustParseUUID(s string) bluetooth.UUID {
	u, err := bluetooth.ParseUUID(s)
	if err != nil {
		panic(fmt.Sprintf("ble: bad uuid %q: %v", s, err))
	}
	return u
}

// ScanResult represents a discovered GoCube device.
type ScanResult struct {
	Name    string
	Address bluetooth.Address
	RSSI    int16
}

// ID returns the platform address string of the device.
func (r ScanResult) ID() string {
	return r.Address.String()
}

// Client manages the BLE connection to one GoCube.
type Client struct {
	adapter *bluetooth.Adapter
	logger  *slog.Logger
	device  bluetooth.Device
	rxChar  bluetooth.DeviceCharacteristic

	mu         sync.RWMutex
	connected  bool
	deviceName string
	battery    int

	onMoves       func([]gocube.Move)
	onOrientation func(*protocol.OrientationEvent)
}

// NewClient enables the default adapter and returns a client for it.
func NewClient(logger *slog.Logger) (*Client, error) {
	adapter := bluetooth.DefaultAdapter
	if err := adapter.Enable(); err != nil {
		return nil, fmt.Errorf("failed to enable BLE adapter: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{adapter: adapter, logger: logger, battery: -1}, nil
}

// OnMoves sets the callback for decoded moves. It runs on the BLE
// notification goroutine.
func (c *Client) OnMoves(cb func([]gocube.Move)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onMoves = cb
}

// OnOrientation sets the callback for orientation updates.
func (c *Client) OnOrientation(cb func(*protocol.OrientationEvent)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onOrientation = cb
}

// Scan scans for GoCube devices until timeout or ctx is done.
func (c *Client) Scan(ctx context.Context, timeout time.Duration) ([]ScanResult, error) {
	if c.IsConnected() {
		return nil, ErrAlreadyConnected
	}

	var (
		mu      sync.Mutex
		results []ScanResult
		seen    = make(map[string]bool)
		done    = make(chan error, 1)
	)

	go func() {
		done <- c.adapter.Scan(func(adapter *bluetooth.Adapter, result bluetooth.ScanResult) {
			name := result.LocalName()
			if !strings.HasPrefix(strings.ToLower(name), "gocube") {
				return
			}
			addr := result.Address.String()

			mu.Lock()
			defer mu.Unlock()
			if seen[addr] {
				return
			}
			seen[addr] = true
			results = append(results, ScanResult{Name: name, Address: result.Address, RSSI: result.RSSI})
			c.logger.Debug("found device", "name", name, "address", addr, "rssi", result.RSSI)
		})
	}()

	select {
	case <-time.After(timeout):
	case <-ctx.Done():
	}

	if err := c.adapter.StopScan(); err != nil {
		c.logger.Warn("stop scan failed", "error", err)
	}
	if err := <-done; err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}

	mu.Lock()
	defer mu.Unlock()
	return results, nil
}

// Connect connects to a device found by Scan and subscribes to its
// notifications.
func (c *Client) Connect(ctx context.Context, result ScanResult) error {
	if c.IsConnected() {
		return ErrAlreadyConnected
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	device, err := c.adapter.Connect(result.Address, bluetooth.ConnectionParams{})
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}

	services, err := device.DiscoverServices([]bluetooth.UUID{serviceUUID})
	if err != nil {
		device.Disconnect()
		return fmt.Errorf("failed to discover services: %w", err)
	}
	if len(services) == 0 {
		device.Disconnect()
		return ErrServiceNotFound
	}

	chars, err := services[0].DiscoverCharacteristics([]bluetooth.UUID{txCharUUID, rxCharUUID})
	if err != nil {
		device.Disconnect()
		return fmt.Errorf("failed to discover characteristics: %w", err)
	}

	var txChar, rxChar bluetooth.DeviceCharacteristic
	for _, ch := range chars {
		switch ch.UUID() {
		case txCharUUID:
			txChar = ch
		case rxCharUUID:
			rxChar = ch
		}
	}

	if err := txChar.EnableNotifications(c.handleNotification); err != nil {
		device.Disconnect()
		return fmt.Errorf("failed to enable notifications: %w", err)
	}

	c.mu.Lock()
	c.device = device
	c.rxChar = rxChar
	c.connected = true
	c.deviceName = result.Name
	c.mu.Unlock()

	c.logger.Info("connected", "name", result.Name, "address", result.ID())
	if err := c.SendCommand(protocol.CmdRequestBattery); err != nil {
		c.logger.Warn("battery request failed", "error", err)
	}
	return nil
}

// Disconnect disconnects from the current device.
func (c *Client) Disconnect() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.connected {
		return nil
	}

	err := c.device.Disconnect()
	c.connected = false
	c.deviceName = ""
	c.battery = -1
	return err
}

// IsConnected returns true if connected to a device.
func (c *Client) IsConnected() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.connected
}

// DeviceName returns the connected device name.
func (c *Client) DeviceName() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.deviceName
}

// Battery returns the last known battery level (-1 if unknown).
func (c *Client) Battery() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.battery
}

// SendCommand sends a command to the cube.
func (c *Client) SendCommand(cmd byte) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.connected {
		return ErrNotConnected
	}

	data := protocol.BuildCommand(cmd)
	if _, err := c.rxChar.WriteWithoutResponse(data); err != nil {
		_, err = c.rxChar.Write(data)
		return err
	}
	return nil
}

// ResetSolved tells the cube its current state is solved, so its own
// tracking matches a freshly reset mirror.
func (c *Client) ResetSolved() error {
	return c.SendCommand(protocol.CmdResetSolved)
}

// EnableOrientation enables orientation notifications.
func (c *Client) EnableOrientation() error {
	return c.SendCommand(protocol.CmdEnableOrientation)
}

func (c *Client) handleNotification(data []byte) {
	msg, err := protocol.Parse(data)
	if err != nil {
		c.logger.Debug("dropping notification", "error", err, "len", len(data))
		return
	}
	c.dispatch(msg, time.Now())
}

// dispatch routes a parsed message to the registered callbacks.
func (c *Client) dispatch(msg *protocol.Message, now time.Time) {
	c.mu.RLock()
	onMoves, onOrientation := c.onMoves, c.onOrientation
	c.mu.RUnlock()

	switch msg.Type {
	case protocol.MsgTypeRotation:
		moves, err := protocol.DecodeMoves(msg.Payload, now)
		if err != nil {
			c.logger.Warn("bad rotation payload", "error", err)
			return
		}
		if onMoves != nil && len(moves) > 0 {
			onMoves(moves)
		}

	case protocol.MsgTypeBattery:
		level, err := protocol.DecodeBattery(msg.Payload)
		if err != nil {
			return
		}
		c.mu.Lock()
		c.battery = level
		c.mu.Unlock()

	case protocol.MsgTypeOrientation:
		orient, err := protocol.DecodeOrientation(msg.Payload)
		if err != nil {
			return
		}
		if onOrientation != nil {
			onOrientation(orient)
		}

	default:
		c.logger.Debug("unhandled message", "type", protocol.MessageTypeName(msg.Type))
	}
}
