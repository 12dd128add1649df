package telemetry

import (
	"fmt"

	"github.com/coolant2go/coolant2go/internal/ui"
	"github.com/coolant2go/coolant2go/internal/util"
)

// ConsolePrinter logs every record as a single line
type ConsolePrinter struct {
	// send a desktop notification on emergency shutdown
	notify bool
}

func NewConsolePrinter(notify bool) *ConsolePrinter {
	return &ConsolePrinter{notify: notify}
}

func (p *ConsolePrinter) Handle(record Record) error {
	if record.Event == EventShutdown {
		ui.Error("Emergency Shutdown")
		if p.notify {
			ui.NotifyError("Emergency Shutdown", fmt.Sprintf("Coolant temperature reached %.2f °C", record.Temperature))
		}
		return nil
	}
	ui.Printfln("%s", FormatRecord(record))
	return nil
}

func (p *ConsolePrinter) Close() error {
	return nil
}

// FormatRecord renders a record as a human-readable line, values are rounded to 2 decimals
func FormatRecord(record Record) string {
	return fmt.Sprintf("[%7.2fs] Coolant temperature: %.2f, Fan speed: %.2f, Pump Speed: %.2f",
		record.Elapsed.Seconds(),
		util.Round(record.Temperature, 2),
		util.Round(record.FanSignal, 2),
		util.Round(record.PumpSignal, 2),
	)
}
