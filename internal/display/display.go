// Package display sets up the SSD1306 panel and, on Linux hosts, the I2C bus
// it hangs off.
package display

import (
	"github.com/sweeney/joypanel/internal/logic"

	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/ssd1306"
)

// DefaultAddress is the panel's I2C address.
const DefaultAddress = 0x3C

// NewSSD1306 configures the panel and clears it. The returned device keeps the
// framebuffer in RAM; Display pushes the whole buffer to the controller.
func NewSSD1306(bus drivers.I2C, address uint16, g logic.Geometry) *ssd1306.Device {
	dev := ssd1306.NewI2C(bus)
	dev.Configure(ssd1306.Config{
		Address: address,
		Width:   g.Width,
		Height:  g.Height,
	})
	dev.ClearDisplay()
	return dev
}
