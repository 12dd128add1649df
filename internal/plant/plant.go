// Package plant emulates the coolant loop being regulated: a single
// temperature that is heated by the inverter and cooled by pump and fan.
package plant

type Coefficients struct {
	// temperature drop per unit of fan signal
	Fan float64 `json:"fanCoefficient"`
	// temperature drop per unit of pump signal
	Pump float64 `json:"pumpCoefficient"`
	// temperature rise per iteration
	HeatGain float64 `json:"heatGain"`
}

var DefaultCoefficients = Coefficients{
	Fan:      0.1,
	Pump:     0.05,
	HeatGain: 1.0,
}

type Plant struct {
	coefficients Coefficients
	temperature  float64
}

func New(initialTemperature float64, coefficients Coefficients) *Plant {
	return &Plant{
		coefficients: coefficients,
		temperature:  initialTemperature,
	}
}

func (p *Plant) Temperature() float64 {
	return p.temperature
}

// Set overrides the current temperature
func (p *Plant) Set(temperature float64) {
	p.temperature = temperature
}

func (p *Plant) Coefficients() Coefficients {
	return p.coefficients
}

// Cool applies the cooling effect of the given actuator signals
func (p *Plant) Cool(pumpSignal, fanSignal float64) {
	p.temperature -= p.coefficients.Fan * fanSignal
	p.temperature -= p.coefficients.Pump * pumpSignal
}

// Heat applies the constant heat gain of a single iteration
func (p *Plant) Heat() {
	p.temperature += p.coefficients.HeatGain
}

// Apply advances the plant by one iteration
func (p *Plant) Apply(pumpSignal, fanSignal float64) float64 {
	p.Cool(pumpSignal, fanSignal)
	p.Heat()
	return p.temperature
}
