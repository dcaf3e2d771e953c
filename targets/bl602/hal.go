//go:build bl602

// Package bl602 binds the blink command to the BL602 IoT SDK. It is linked
// into the SDK firmware image and registered with the SDK CLI as blink_main.
package bl602

/*
#include <stdint.h>

int puts(const char *s);
int bl_gpio_enable_output(uint8_t pin, uint8_t pullup, uint8_t pulldown);
int bl_gpio_output_set(uint8_t pin, uint8_t value);
uint32_t ble_npl_time_ms_to_ticks32(uint32_t ms);
void ble_npl_time_delay(uint32_t ticks);
*/
import "C"

import (
	"unsafe"

	"blinky/core"
)

// HAL calls straight into the SDK: stdio puts, the bl_gpio HAL and the
// NimBLE porting layer time functions.
type HAL struct{}

var _ core.HAL = HAL{}

// Puts refuses views that are not NUL-terminated rather than let C read past them.
func (HAL) Puts(view []byte) int32 {
	if len(view) == 0 || view[len(view)-1] != 0 {
		return -1
	}
	return int32(C.puts((*C.char)(unsafe.Pointer(&view[0]))))
}

func (HAL) EnableOutput(pin, pullup, pulldown uint8) int32 {
	return int32(C.bl_gpio_enable_output(C.uint8_t(pin), C.uint8_t(pullup), C.uint8_t(pulldown)))
}

func (HAL) OutputSet(pin, value uint8) int32 {
	return int32(C.bl_gpio_output_set(C.uint8_t(pin), C.uint8_t(value)))
}

func (HAL) MsToTicks32(ms uint32) uint32 {
	return uint32(C.ble_npl_time_ms_to_ticks32(C.uint32_t(ms)))
}

func (HAL) Delay(ticks uint32) {
	C.ble_npl_time_delay(C.uint32_t(ticks))
}
