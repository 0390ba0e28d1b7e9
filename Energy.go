package go_ballistics

import "github.com/gehtsoft-usa/go_ballistics/bmath/unit"

//cEnergyDivider converts grains*(ft/s)² into foot-pounds (2 * 7000 gr/lb * 32.2 ft/s²)
const cEnergyDivider float64 = 450800.0

//CalculateKineticEnergy calculates the kinetic energy of a bullet with the mass specified
//moving with the velocity specified
func CalculateKineticEnergy(mass unit.BulletMass, velocity unit.Velocity) unit.KineticEnergy {
	v := velocity.Value()
	return unit.CreateKineticEnergy((mass.Value() * (v * v)) / cEnergyDivider)
}
