// Package chroma provides PRISM microprogram tables ("state information
// tables"): fixed sequences of eight (select, data) word pairs, loaded
// positionally through the peripheral's table window registers.
//
// The builtin tables are the images shipped with the reference material.
//
package chroma

// An Entry is one microprogram table entry.
type Entry struct {
	Select uint32
	Data   uint32
}

// A Table is a complete 8-entry microprogram.
type Table [8]Entry

// GPIO24 is the 24-bit GPIO chroma: routes shift data to the serial output
// line and runs 24-bit exchanges with the external shift register pair.
var GPIO24 = Table{
	{0x03c0, 0x08000000},
	{0x0140, 0x08010010},
	{0x0bc0, 0x0800d200},
	{0x03c0, 0x0800a000},
	{0x0140, 0x0801401d},
	{0x0280, 0x0841601a},
	{0x03c0, 0x08004000},
	{0x0288, 0x00012010},
}

// SPISlave is the SPI slave chroma, used with the byte-serial link device.
var SPISlave = Table{
	{0x03c0, 0x08000000},
	{0x0380, 0x08010000},
	{0x0141, 0x08012003},
	{0x03f8, 0x0800a000},
	{0x0140, 0x0801a01d},
	{0x0380, 0x08010000},
	{0x0282, 0x08016003},
	{0x0041, 0x08012000},
}

// SPISlaveControl is the release control word matching the SPISlave table.
const SPISlaveControl uint32 = 0x00002912
