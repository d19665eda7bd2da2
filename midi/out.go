package midi

import (
	"context"
	"sync"
	"time"

	"gridtone/debug"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // Register MIDI driver
)

// Out manages the MIDI output connection. Senders are opened lazily
// by port name and dropped again when the port disappears, so
// unplugging and replugging a synth mid-session just works.
type Out struct {
	mu       sync.RWMutex
	portName string // empty = first available port
	senders  map[string]func(gomidi.Message) error
}

// NewOut creates an output bound to portName (empty picks the first
// available port at send time).
func NewOut(portName string) *Out {
	return &Out{
		portName: portName,
		senders:  make(map[string]func(gomidi.Message) error),
	}
}

// SetPort changes the target port. Existing senders stay cached; the
// next send resolves against the new name.
func (o *Out) SetPort(name string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.portName = name
}

// PortName returns the configured port name.
func (o *Out) PortName() string {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.portName
}

// Connected reports whether a sender is currently open.
func (o *Out) Connected() bool {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return len(o.senders) > 0
}

// Send delivers a message to the configured port, opening it on
// demand. Failures are logged and dropped - audio output is
// fire-and-forget.
func (o *Out) Send(msg gomidi.Message) {
	sender := o.getSender()
	if sender == nil {
		return
	}
	if err := sender(msg); err != nil {
		debug.Log("midi", "send failed: %v", err)
	}
}

func (o *Out) getSender() func(gomidi.Message) error {
	o.mu.RLock()
	name := o.portName
	if sender, ok := o.senders[name]; ok {
		o.mu.RUnlock()
		return sender
	}
	o.mu.RUnlock()

	o.mu.Lock()
	defer o.mu.Unlock()
	if sender, ok := o.senders[name]; ok {
		return sender
	}

	port := findPort(name)
	if port == nil {
		return nil
	}
	sender, err := gomidi.SendTo(port)
	if err != nil {
		debug.Log("midi", "open %s: %v", port.String(), err)
		return nil
	}
	debug.Log("midi", "opened %s", port.String())
	o.senders[name] = sender
	return sender
}

// findPort resolves a port name, or the first port when name is empty.
func findPort(name string) drivers.Out {
	ports := gomidi.GetOutPorts()
	if len(ports) == 0 {
		return nil
	}
	if name == "" {
		return ports[0]
	}
	for _, p := range ports {
		if p.String() == name {
			return p
		}
	}
	return nil
}

// ListPorts returns the names of all MIDI output ports.
func ListPorts() []string {
	var names []string
	for _, p := range gomidi.GetOutPorts() {
		names = append(names, p.String())
	}
	return names
}

// Watch polls for port changes and drops senders whose port vanished,
// so a replugged device reconnects on the next send. Blocking - run
// in a goroutine.
func (o *Out) Watch(ctx context.Context) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			o.prune()
		}
	}
}

func (o *Out) prune() {
	present := make(map[string]bool)
	for _, p := range gomidi.GetOutPorts() {
		present[p.String()] = true
	}
	if len(present) > 0 {
		// Empty-name sender binds to "first port"; keep it while any
		// port exists.
		present[""] = true
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	for name := range o.senders {
		if name != "" && !present[name] {
			debug.Log("midi", "port %s gone", name)
			delete(o.senders, name)
		}
	}
	if len(present) == 0 {
		o.senders = make(map[string]func(gomidi.Message) error)
	}
}

// Close releases the MIDI driver.
func (o *Out) Close() {
	o.mu.Lock()
	o.senders = make(map[string]func(gomidi.Message) error)
	o.mu.Unlock()
	gomidi.CloseDriver()
}
