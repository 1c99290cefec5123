// Package ssd1306 controls a SSD1306 monochrome OLED display via I²C.
//
// The SSD1306 drives panels of up to 128×64 pixels, one bit per pixel. This
// driver keeps a local framebuffer, draws into it, and sends the whole frame
// on Flush. It implements the display.Drawer interface from periph.io.
//
// # Display Characteristics
//
// - Monochrome, 1 bit per pixel
// - Common resolutions 128×64, 128×32 and 64×48
// - Page addressed RAM: each byte holds a column of 8 vertical pixels
// - Adjustable contrast (0-255)
// - Display inversion
//
// # Hardware Connection
//
// Connect the display to your system via I²C:
//
//	Display Pin → System Pin
//	GND         → GND
//	VCC         → 3.3V
//	SCL         → I²C Clock (SCL)
//	SDA         → I²C Data (SDA)
//
// Most modules answer on address 0x3C; some can be strapped to 0x3D.
//
// # Basic Usage
//
//	package main
//
//	import (
//		"log"
//
//		"github.com/flavioheleno/ssd1306"
//		"github.com/flavioheleno/ssd1306/layout"
//		"periph.io/x/conn/v3/i2c/i2creg"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		if _, err := host.Init(); err != nil {
//			log.Fatal(err)
//		}
//
//		b, err := i2creg.Open("")
//		if err != nil {
//			log.Fatal(err)
//		}
//		defer b.Close()
//
//		dev, err := ssd1306.NewI2C(b, &ssd1306.DefaultOpts)
//		if err != nil {
//			log.Fatal(err)
//		}
//		defer dev.Halt()
//
//		if err := layout.New(dev).Wrap("HELLO WORLD"); err != nil {
//			log.Fatal(err)
//		}
//	}
//
// # Drawing
//
// SetPixel and DrawLine only change the framebuffer. Call Flush to show the
// result:
//
//	dev.Clear()
//	dev.DrawLine(0, 0, 127, 63, true)
//	dev.SetPixel(64, 10, true)
//	dev.Flush()
//
// Draw converts any image.Image to monochrome and flushes it, and Write
// takes a raw framebuffer of W*H/8 bytes in page order.
//
// # Text
//
// Package layout renders text with the vector font from package glyph on a
// grid of 3 lines of 8 characters. Each character is flushed as soon as it
// is drawn, so text appears one letter at a time.
//
// # Panel Variants
//
// Panels powered from an external supply need ExternalVCC set, which turns
// the internal charge pump off:
//
//	dev, err := ssd1306.NewI2C(b, &ssd1306.Opts{W: 128, H: 32, ExternalVCC: true})
//
// 64 pixel wide panels are wired to the middle of the 128 column RAM; the
// driver shifts the column window by 32 automatically.
//
// # Datasheet
//
// https://cdn-shop.adafruit.com/datasheets/SSD1306.pdf
package ssd1306
