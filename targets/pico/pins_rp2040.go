//go:build rp2040

package main

// RP2040 has GPIO0-GPIO29
const numPins = 30
