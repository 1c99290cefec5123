// Package image1bit provides a 1-bit monochrome image format for the SSD1306 display controller.
//
// The SSD1306 addresses its display RAM in pages: horizontal bands 8 pixels
// tall. Each byte of a page holds one column of 8 vertically stacked pixels,
// with bit 0 being the topmost row of the page.
//
// Memory layout example for a 3-column, 16-row image (2 pages):
//
//	Page 0: Pix[0] Pix[1] Pix[2]   rows 0-7
//	Page 1: Pix[3] Pix[4] Pix[5]   rows 8-15
//
//	Pixel (1, 10) lives in Pix[1*3+1] = Pix[4], bit 10%8 = 2.
//
// This package provides:
//
// - Bit: A color type representing a lit or dark pixel
// - BitModel: A color model for converting standard Go colors to Bit
// - VerticalLSB: An image.Image implementation matching the controller RAM
//
// Example usage:
//
//	// Create a 128x64 image
//	img := image1bit.NewVerticalLSB(image.Rect(0, 0, 128, 64))
//
//	// Light a pixel and draw a diagonal
//	img.SetBit(10, 20, image1bit.On)
//	img.Line(0, 0, 127, 63, image1bit.On)
//
//	// Use with standard Go image operations
//	draw.Draw(img, img.Bounds(), image.NewUniform(image1bit.Off), image.Point{}, draw.Src)
package image1bit
