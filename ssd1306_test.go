package ssd1306

import (
	"bytes"
	"errors"
	"image"
	"testing"

	"github.com/flavioheleno/ssd1306/image1bit"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c/i2ctest"
	"periph.io/x/conn/v3/physic"
)

// failBus is an i2c.Bus that accepts okTx transactions, then fails.
type failBus struct {
	okTx int
	n    int
}

func (f *failBus) String() string { return "fail" }
func (f *failBus) SetSpeed(physic.Frequency) error { return nil }
func (f *failBus) Tx(addr uint16, w, r []byte) error {
	f.n++
	if f.n > f.okTx {
		return errors.New("nack")
	}
	return nil
}

// limitConn records writes and advertises a maximum transaction size.
type limitConn struct {
	max int
	txs [][]byte
}

func (l *limitConn) String() string { return "limit" }
func (l *limitConn) Duplex() conn.Duplex { return conn.Half }
func (l *limitConn) MaxTxSize() int { return l.max }
func (l *limitConn) Tx(w, r []byte) error {
	l.txs = append(l.txs, append([]byte(nil), w...))
	return nil
}

// split separates recorded transactions into command bytes and data blocks.
func split(t *testing.T, ops []i2ctest.IO) (cmds []byte, data [][]byte) {
	t.Helper()
	for _, op := range ops {
		switch {
		case len(op.W) == 2 && op.W[0] == i2cCmd:
			cmds = append(cmds, op.W[1])
		case len(op.W) >= 1 && op.W[0] == i2cData:
			data = append(data, op.W[1:])
		default:
			t.Fatalf("unexpected transaction % X", op.W)
		}
	}
	return cmds, data
}

func newRecorded(t *testing.T, opts *Opts) (*Dev, *i2ctest.Record) {
	t.Helper()
	bus := &i2ctest.Record{}
	dev, err := NewI2C(bus, opts)
	if err != nil {
		t.Fatalf("NewI2C() error = %v", err)
	}
	return dev, bus
}

func TestOptsValidation(t *testing.T) {
	tests := []struct {
		name    string
		opts    *Opts
		wantErr bool
	}{
		{"nil options (uses defaults)", nil, false},
		{"valid 128x64", &Opts{W: 128, H: 64}, false},
		{"valid 128x32", &Opts{W: 128, H: 32}, false},
		{"valid 64x48", &Opts{W: 64, H: 48}, false},
		{"valid 1x8 (minimum)", &Opts{W: 1, H: 8}, false},
		{"width zero", &Opts{W: 0, H: 64}, true},
		{"width > 128", &Opts{W: 132, H: 64}, true},
		{"height zero", &Opts{W: 128, H: 0}, true},
		{"height not page aligned", &Opts{W: 128, H: 60}, true},
		{"height > 64", &Opts{W: 128, H: 128}, true},
		{"external vcc (valid)", &Opts{W: 128, H: 64, ExternalVCC: true}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewI2C(&i2ctest.Record{}, tt.opts)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewI2C() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewI2CAddress(t *testing.T) {
	tests := []struct {
		name string
		opts *Opts
		want uint16
	}{
		{"default", nil, 0x3C},
		{"zero address falls back", &Opts{W: 128, H: 64}, 0x3C},
		{"alternate address", &Opts{W: 128, H: 64, Addr: 0x3D}, 0x3D},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, bus := newRecorded(t, tt.opts)
			for i, op := range bus.Ops {
				if op.Addr != tt.want {
					t.Fatalf("Ops[%d].Addr = 0x%02X, want 0x%02X", i, op.Addr, tt.want)
				}
			}
		})
	}
}

func TestInitSequence(t *testing.T) {
	tests := []struct {
		name string
		opts *Opts
		want []byte
	}{
		{
			"128x64 internal vcc",
			&Opts{W: 128, H: 64},
			[]byte{
				0xAE, 0x20, 0x00, 0x40, 0xA1, 0xA8, 0x3F, 0xC8, 0xD3, 0x00,
				0xDA, 0x12, 0xD5, 0x80, 0xD9, 0xF1, 0xDB, 0x30, 0x81, 0xFF,
				0xA4, 0xA6, 0x8D, 0x14, 0xAF,
			},
		},
		{
			"128x32 external vcc",
			&Opts{W: 128, H: 32, ExternalVCC: true},
			[]byte{
				0xAE, 0x20, 0x00, 0x40, 0xA1, 0xA8, 0x1F, 0xC8, 0xD3, 0x00,
				0xDA, 0x02, 0xD5, 0x80, 0xD9, 0x22, 0xDB, 0x30, 0x81, 0xFF,
				0xA4, 0xA6, 0x8D, 0x10, 0xAF,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, bus := newRecorded(t, tt.opts)
			cmds, data := split(t, bus.Ops)
			if len(cmds) < len(tt.want) {
				t.Fatalf("sent %d commands, want at least %d", len(cmds), len(tt.want))
			}
			if !bytes.Equal(cmds[:len(tt.want)], tt.want) {
				t.Errorf("init commands = % X, want % X", cmds[:len(tt.want)], tt.want)
			}
			// Init ends with a clear and a full flush.
			if len(data) != 1 {
				t.Fatalf("sent %d data blocks, want 1", len(data))
			}
			if !bytes.Equal(data[0], make([]byte, tt.opts.W*tt.opts.H/8)) {
				t.Error("initial flush should transmit an all-zero framebuffer")
			}
		})
	}
}

func TestFlushAddressing(t *testing.T) {
	tests := []struct {
		name string
		opts *Opts
		want []byte
	}{
		{"128x64", &Opts{W: 128, H: 64}, []byte{0x21, 0, 127, 0x22, 0, 7}},
		{"128x32", &Opts{W: 128, H: 32}, []byte{0x21, 0, 127, 0x22, 0, 3}},
		{"64x48 shifted by 32", &Opts{W: 64, H: 48}, []byte{0x21, 32, 95, 0x22, 0, 5}},
		{"96x16", &Opts{W: 96, H: 16}, []byte{0x21, 0, 95, 0x22, 0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dev, bus := newRecorded(t, tt.opts)
			bus.Ops = nil

			if err := dev.Flush(); err != nil {
				t.Fatalf("Flush() error = %v", err)
			}
			cmds, data := split(t, bus.Ops)
			if !bytes.Equal(cmds, tt.want) {
				t.Errorf("Flush commands = %v, want %v", cmds, tt.want)
			}
			if len(data) != 1 || len(data[0]) != tt.opts.W*tt.opts.H/8 {
				t.Errorf("Flush should send one block of %d bytes", tt.opts.W*tt.opts.H/8)
			}
		})
	}
}

func TestClearThenFlushSendsZeros(t *testing.T) {
	dev, bus := newRecorded(t, nil)
	dev.DrawLine(0, 0, 127, 63, true)
	dev.Clear()
	bus.Ops = nil

	if err := dev.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}
	_, data := split(t, bus.Ops)
	if !bytes.Equal(data[0], make([]byte, 1024)) {
		t.Error("Clear then Flush should transmit an all-zero framebuffer")
	}
}

func TestClearDoesNotFlush(t *testing.T) {
	dev, bus := newRecorded(t, nil)
	bus.Ops = nil
	dev.Clear()
	if len(bus.Ops) != 0 {
		t.Errorf("Clear() sent %d transactions, want 0", len(bus.Ops))
	}
}

func TestSetPixel(t *testing.T) {
	dev, _ := newRecorded(t, nil)
	buf := dev.Image().Pix

	dev.SetPixel(5, 13, true)
	if buf[1*128+5] != 0x20 {
		t.Errorf("byte %d = 0x%02X, want 0x20", 1*128+5, buf[1*128+5])
	}
	dev.SetPixel(5, 13, false)
	if buf[1*128+5] != 0 {
		t.Errorf("byte %d = 0x%02X, want 0", 1*128+5, buf[1*128+5])
	}

	// Out of range is silently ignored.
	dev.SetPixel(-1, 0, true)
	dev.SetPixel(128, 0, true)
	dev.SetPixel(0, 64, true)
	if !bytes.Equal(buf, make([]byte, 1024)) {
		t.Error("out of range SetPixel changed the framebuffer")
	}
}

func TestDrawLine(t *testing.T) {
	dev, _ := newRecorded(t, nil)
	dev.DrawLine(1, 15, 5, 1, true)
	img := dev.Image()
	if img.BitAt(1, 15) != image1bit.On || img.BitAt(5, 1) != image1bit.On {
		t.Error("DrawLine should light both endpoints")
	}
}

func TestWrite(t *testing.T) {
	dev, bus := newRecorded(t, nil)
	bus.Ops = nil

	pixels := bytes.Repeat([]byte{0xAA}, 1024)
	n, err := dev.Write(pixels)
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if n != 1024 {
		t.Errorf("Write() = %d, want 1024", n)
	}
	_, data := split(t, bus.Ops)
	if !bytes.Equal(data[0], pixels) {
		t.Error("Write should flush the given pixels")
	}
}

func TestWriteBufferSizeValidation(t *testing.T) {
	tests := []struct {
		name       string
		opts       *Opts
		bufferSize int
	}{
		{"128x64 too small", &Opts{W: 128, H: 64}, 1023},
		{"128x64 too large", &Opts{W: 128, H: 64}, 1025},
		{"128x32 too small", &Opts{W: 128, H: 32}, 511},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dev, _ := newRecorded(t, tt.opts)
			_, err := dev.Write(make([]byte, tt.bufferSize))
			if err == nil {
				t.Fatal("Write should fail with invalid buffer size")
			}
			if err.Error() != "ssd1306: invalid buffer size" {
				t.Errorf("Write error = %v, want 'ssd1306: invalid buffer size'", err)
			}
		})
	}
}

func TestDraw(t *testing.T) {
	dev, bus := newRecorded(t, nil)
	bus.Ops = nil

	src := image1bit.NewVerticalLSB(image.Rect(0, 0, 128, 64))
	src.SetBit(3, 9, image1bit.On)
	if err := dev.Draw(dev.Bounds(), src, image.Point{}); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	if dev.Image().BitAt(3, 9) != image1bit.On {
		t.Error("Draw should copy the source into the framebuffer")
	}
	if _, data := split(t, bus.Ops); len(data) != 1 {
		t.Errorf("Draw sent %d data blocks, want 1 full frame", len(data))
	}

	bus.Ops = nil
	if err := dev.Draw(image.Rect(200, 200, 210, 210), src, image.Point{}); err != nil {
		t.Fatalf("Draw() outside bounds error = %v", err)
	}
	if len(bus.Ops) != 0 {
		t.Error("Draw outside bounds should not touch the bus")
	}
}

func TestPassThroughCommands(t *testing.T) {
	tests := []struct {
		name string
		fn   func(d *Dev) error
		want []byte
	}{
		{"contrast", func(d *Dev) error { return d.SetContrast(0x7F) }, []byte{0x81, 0x7F}},
		{"invert", func(d *Dev) error { return d.Invert(true) }, []byte{0xA7}},
		{"normal", func(d *Dev) error { return d.Invert(false) }, []byte{0xA6}},
		{"power on", func(d *Dev) error { return d.PowerOn() }, []byte{0xAF}},
		{"power off", func(d *Dev) error { return d.PowerOff() }, []byte{0xAE}},
		{"halt", func(d *Dev) error { return d.Halt() }, []byte{0xAE}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dev, bus := newRecorded(t, nil)
			bus.Ops = nil
			if err := tt.fn(dev); err != nil {
				t.Fatalf("error = %v", err)
			}
			cmds, data := split(t, bus.Ops)
			if !bytes.Equal(cmds, tt.want) {
				t.Errorf("commands = % X, want % X", cmds, tt.want)
			}
			if len(data) != 0 {
				t.Error("pass-through commands must not send data")
			}
		})
	}
}

func TestTransportErrorAbortsInit(t *testing.T) {
	for _, okTx := range []int{0, 10, 24, 30} {
		bus := &failBus{okTx: okTx}
		dev, err := NewI2C(bus, nil)
		if err == nil {
			t.Fatalf("okTx=%d: NewI2C should fail when the bus fails", okTx)
		}
		if dev != nil {
			t.Errorf("okTx=%d: NewI2C returned a device along with an error", okTx)
		}
		if bus.n != okTx+1 {
			t.Errorf("okTx=%d: %d transactions attempted, want no retry after the failure", okTx, bus.n)
		}
	}
}

func TestTransportErrorFromFlush(t *testing.T) {
	// 25 init commands + 6 addressing commands + 1 data block.
	bus := &failBus{okTx: 32}
	dev, err := NewI2C(bus, nil)
	if err != nil {
		t.Fatalf("NewI2C() error = %v", err)
	}
	if err := dev.Flush(); err == nil {
		t.Error("Flush should report the transport failure")
	}
}

func TestSendDataChunking(t *testing.T) {
	c := &limitConn{max: 256}
	dev, err := New(c, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	c.txs = nil
	dev.SetPixel(127, 63, true)
	if err := dev.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}

	var payload []byte
	for _, w := range c.txs {
		if len(w) > c.max {
			t.Errorf("transaction of %d bytes exceeds limit %d", len(w), c.max)
		}
		if w[0] == i2cData {
			payload = append(payload, w[1:]...)
		}
	}
	if !bytes.Equal(payload, dev.Image().Pix) {
		t.Error("chunked data should reassemble to the framebuffer")
	}
	// ceil(1024 / 255) = 5 chunks after 6 addressing commands
	if got := len(c.txs); got != 6+5 {
		t.Errorf("Flush used %d transactions, want 11", got)
	}
}

func TestDevBounds(t *testing.T) {
	dev, _ := newRecorded(t, &Opts{W: 128, H: 32})
	want := image.Rect(0, 0, 128, 32)
	if got := dev.Bounds(); got != want {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}
}

func TestDevColorModel(t *testing.T) {
	dev := &Dev{}
	if dev.ColorModel() != image1bit.BitModel {
		t.Error("ColorModel() did not return BitModel")
	}
}

func TestDevString(t *testing.T) {
	dev := &Dev{rect: image.Rect(0, 0, 128, 64)}
	want := "ssd1306.Dev{128x64}"
	if got := dev.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
