// Package ssd1306 controls a SSD1306 monochrome OLED display via I²C.
//
// The SSD1306 is a 1-bit dot-matrix OLED controller supporting up to 128x64 pixels.
// Common display resolutions are 128x64, 128x32 and 64x48.
//
// See the examples for how to use this package.
package ssd1306

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/flavioheleno/ssd1306/image1bit"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/i2c"
)

// Command registers.
const (
	setContrast        = 0x81
	setEntireOn        = 0xA4
	setNormInv         = 0xA6
	setDisp            = 0xAE
	setMemAddr         = 0x20
	setColAddr         = 0x21
	setPageAddr        = 0x22
	setDispStartLine   = 0x40
	setSegRemap        = 0xA0
	setMuxRatio        = 0xA8
	setComOutDir       = 0xC0
	setDispOffset      = 0xD3
	setComPinCfg       = 0xDA
	setDispClkDiv      = 0xD5
	setPrecharge       = 0xD9
	setVcomDesel       = 0xDB
	setChargePump      = 0x8D
	columnOffsetNarrow = 32 // visible columns of 64 wide panels start at RAM column 32
)

// I²C control bytes sent ahead of every transaction.
const (
	i2cCmd  = 0x80 // Co=1, D/C#=0: one command byte follows
	i2cData = 0x40 // Co=0, D/C#=1: a stream of data bytes follows
)

// DefaultOpts is the configuration used when nil is passed to NewI2C.
var DefaultOpts = Opts{
	W:    128,
	H:    64,
	Addr: 0x3C,
}

// Opts is the configuration for the SSD1306 display.
type Opts struct {
	// Display dimensions in pixels
	W int // Width (default: 128, must be ≤128)
	H int // Height (default: 64, must be a multiple of 8 and ≤64)

	// ExternalVCC is set when the panel is driven from an external supply
	// instead of the internal charge pump. It changes the pre-charge period
	// and disables the charge pump.
	ExternalVCC bool

	// Addr is the 7-bit I²C address (default: 0x3C).
	Addr uint16
}

// Dev is the device handle for the SSD1306 display.
type Dev struct {
	// Communication
	c         conn.Conn
	maxTxSize int // 0 means unlimited

	// Display geometry
	rect        image.Rectangle
	pages       int
	externalVCC bool

	// Framebuffer, uploaded in full by Flush
	buffer *image1bit.VerticalLSB
}

// NewI2C creates a new SSD1306 device connected via I²C.
//
// opts can be nil to use DefaultOpts (128x64 at address 0x3C).
func NewI2C(b i2c.Bus, opts *Opts) (*Dev, error) {
	if opts == nil {
		o := DefaultOpts
		opts = &o
	}
	addr := opts.Addr
	if addr == 0 {
		addr = DefaultOpts.Addr
	}
	return New(&i2c.Dev{Bus: b, Addr: addr}, opts)
}

// New creates a new SSD1306 device on an already addressed connection.
//
// Every write on c must reach the controller as one bus transaction; the
// first byte of each transaction is the I²C control byte.
func New(c conn.Conn, opts *Opts) (*Dev, error) {
	if opts == nil {
		o := DefaultOpts
		opts = &o
	}
	if err := validate(opts); err != nil {
		return nil, err
	}

	// Large data blocks are split when the connection advertises a limit.
	maxTxSize := 0
	if l, ok := c.(conn.Limits); ok {
		maxTxSize = l.MaxTxSize()
	}

	d := &Dev{
		c:           c,
		maxTxSize:   maxTxSize,
		rect:        image.Rect(0, 0, opts.W, opts.H),
		pages:       opts.H / 8,
		externalVCC: opts.ExternalVCC,
		buffer:      image1bit.NewVerticalLSB(image.Rect(0, 0, opts.W, opts.H)),
	}

	if err := d.init(); err != nil {
		return nil, err
	}

	return d, nil
}

func validate(opts *Opts) error {
	if opts.W <= 0 || opts.W > 128 {
		return errors.New("ssd1306: width must be between 1 and 128")
	}
	if opts.H < 8 || opts.H > 64 || opts.H%8 != 0 {
		return errors.New("ssd1306: height must be a multiple of 8 between 8 and 64")
	}
	return nil
}

// initCommands returns the controller setup sequence for the device geometry.
func (d *Dev) initCommands() []byte {
	comPins := byte(0x12)
	if d.rect.Dx() > 2*d.rect.Dy() {
		comPins = 0x02
	}
	precharge, chargePump := byte(0xF1), byte(0x14)
	if d.externalVCC {
		precharge, chargePump = 0x22, 0x10
	}

	return []byte{
		setDisp | 0x00, // Display OFF
		// Address setting
		setMemAddr, 0x00, // Horizontal addressing mode
		// Resolution and layout
		setDispStartLine | 0x00,
		setSegRemap | 0x01, // Column address 127 mapped to SEG0
		setMuxRatio, byte(d.rect.Dy() - 1),
		setComOutDir | 0x08, // Scan from COM[N] to COM0
		setDispOffset, 0x00,
		setComPinCfg, comPins,
		// Timing and driving scheme
		setDispClkDiv, 0x80,
		setPrecharge, precharge,
		setVcomDesel, 0x30, // 0.83*Vcc
		// Display
		setContrast, 0xFF, // Maximum
		setEntireOn,       // Output follows RAM contents
		setNormInv,        // Not inverted
		setChargePump, chargePump,
		setDisp | 0x01, // Display ON
	}
}

// init sends the initialization sequence, then blanks the panel.
func (d *Dev) init() error {
	if err := d.sendCommands(d.initCommands()); err != nil {
		return err
	}
	d.Clear()
	return d.Flush()
}

// sendCommand sends a single command byte.
func (d *Dev) sendCommand(cmd byte) error {
	if err := d.c.Tx([]byte{i2cCmd, cmd}, nil); err != nil {
		return fmt.Errorf("ssd1306: failed to send command 0x%02X: %w", cmd, err)
	}
	return nil
}

// sendCommands sends command bytes, one transaction each.
func (d *Dev) sendCommands(cmds []byte) error {
	for _, cmd := range cmds {
		if err := d.sendCommand(cmd); err != nil {
			return err
		}
	}
	return nil
}

// sendData sends a block of data bytes, split in chunks when the
// connection has a transaction size limit.
func (d *Dev) sendData(data []byte) error {
	chunk := len(data)
	if d.maxTxSize > 1 && chunk > d.maxTxSize-1 {
		chunk = d.maxTxSize - 1
	}
	for len(data) > 0 {
		n := min(chunk, len(data))
		w := make([]byte, 0, n+1)
		w = append(w, i2cData)
		w = append(w, data[:n]...)
		if err := d.c.Tx(w, nil); err != nil {
			return fmt.Errorf("ssd1306: failed to send data: %w", err)
		}
		data = data[n:]
	}
	return nil
}

// columnWindow returns the controller RAM columns covered by the panel.
func (d *Dev) columnWindow() (x0, x1 byte) {
	x0, x1 = 0, byte(d.rect.Dx()-1)
	if d.rect.Dx() == 64 {
		x0 += columnOffsetNarrow
		x1 += columnOffsetNarrow
	}
	return
}

// Flush uploads the whole framebuffer to the display.
func (d *Dev) Flush() error {
	x0, x1 := d.columnWindow()
	commands := []byte{
		setColAddr, x0, x1, // Column address
		setPageAddr, 0, byte(d.pages - 1), // Page address
	}
	if err := d.sendCommands(commands); err != nil {
		return err
	}
	return d.sendData(d.buffer.Pix)
}

// Clear turns every pixel of the framebuffer off. The display is not
// updated until the next Flush.
func (d *Dev) Clear() {
	d.buffer.Clear()
}

// SetPixel lights (on) or darkens a single framebuffer pixel.
// Coordinates outside the display are ignored.
func (d *Dev) SetPixel(x, y int, on bool) {
	d.buffer.SetBit(x, y, image1bit.Bit(on))
}

// DrawLine draws a straight line into the framebuffer, both endpoints
// included. Pixels outside the display are ignored.
func (d *Dev) DrawLine(x0, y0, x1, y1 int, on bool) {
	d.buffer.Line(x0, y0, x1, y1, image1bit.Bit(on))
}

// ColorModel returns the color model of the display.
func (d *Dev) ColorModel() color.Model {
	return image1bit.BitModel
}

// Bounds returns the image bounds of the display.
func (d *Dev) Bounds() image.Rectangle {
	return d.rect
}

// Image returns the framebuffer. It reflects pending drawing that has not
// been flushed yet.
func (d *Dev) Image() *image1bit.VerticalLSB {
	return d.buffer
}

// Write replaces the framebuffer with raw page-major pixel data and
// flushes it. The data must be exactly W * H / 8 bytes.
func (d *Dev) Write(pixels []byte) (int, error) {
	if len(pixels) != len(d.buffer.Pix) {
		return 0, errors.New("ssd1306: invalid buffer size")
	}
	copy(d.buffer.Pix, pixels)
	if err := d.Flush(); err != nil {
		return 0, err
	}
	return len(pixels), nil
}

// Draw draws an image onto the framebuffer and flushes the full frame.
// The dst rectangle specifies the destination region on the display.
// The src image is positioned at src point sp within the destination.
func (d *Dev) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	dst = dst.Intersect(d.rect)
	if dst.Empty() {
		return nil
	}
	draw.Draw(d.buffer, dst, src, sp, draw.Src)
	return d.Flush()
}

// SetContrast sets the display contrast (0-255).
func (d *Dev) SetContrast(level byte) error {
	return d.sendCommands([]byte{setContrast, level})
}

// Invert inverts the display colors (lit pixels become dark and vice versa).
func (d *Dev) Invert(invert bool) error {
	mode := byte(setNormInv)
	if invert {
		mode |= 0x01
	}
	return d.sendCommand(mode)
}

// PowerOn turns the display panel on. RAM content is preserved.
func (d *Dev) PowerOn() error {
	return d.sendCommand(setDisp | 0x01)
}

// PowerOff turns the display panel off. RAM content is preserved.
func (d *Dev) PowerOff() error {
	return d.sendCommand(setDisp | 0x00)
}

// Halt powers off the display.
// It implements conn.Resource; PowerOn brings the panel back.
func (d *Dev) Halt() error {
	return d.PowerOff()
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("ssd1306.Dev{%dx%d}", d.rect.Dx(), d.rect.Dy())
}

var _ display.Drawer = &Dev{}
