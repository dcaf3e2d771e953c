//go:build rp2350

package main

// RP2350B exposes GPIO0-GPIO47
const numPins = 48
