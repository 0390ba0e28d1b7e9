//Package profile describes a load (bullet, rifle, conditions) in a single
//configuration and derives every quantity the formulas can produce for it.
//
//A profile is read from YAML over the defaults, or from BALLISTICS_*
//environment variables. Values use the fixed units of the unit package:
//grains, inches, calibers, ft/s, ft, s, mph, °F and inHg. A zero value means
//"not measured" and the quantities depending on it are skipped.
package profile

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/gehtsoft-usa/go_ballistics/bmath/unit"
)

const (
	//DefaultDragTable is the table a measured drag coefficient is compared against.
	DefaultDragTable = "G1"

	//EnvPrefix prefixes the environment variables read by FromEnv.
	EnvPrefix = "BALLISTICS_"
)

//Profile describes a load: the bullet, the rifle, the conditions and the shot.
type Profile struct {
	Name       string           `yaml:"name" env:"NAME"`
	Bullet     BulletConfig     `yaml:"bullet" envPrefix:"BULLET_"`
	Rifle      RifleConfig      `yaml:"rifle" envPrefix:"RIFLE_"`
	Atmosphere AtmosphereConfig `yaml:"atmosphere" envPrefix:"ATMOSPHERE_"`
	Shot       ShotConfig       `yaml:"shot" envPrefix:"SHOT_"`
	Comparison ComparisonConfig `yaml:"comparison" envPrefix:"COMPARISON_"`
}

//BulletConfig describes the bullet.
type BulletConfig struct {
	Mass     float64 `yaml:"mass" env:"MASS"`
	Diameter float64 `yaml:"diameter" env:"DIAMETER"`
	Length   float64 `yaml:"length" env:"LENGTH"`
	//DragCoefficient is measured at the muzzle velocity and compared
	//against DragTable to get the form factor.
	DragCoefficient float64 `yaml:"drag_coefficient" env:"DRAG_COEFFICIENT"`
	DragTable       string  `yaml:"drag_table" env:"DRAG_TABLE"`
	//FormFactor is used as is when no drag coefficient is set.
	FormFactor float64 `yaml:"form_factor" env:"FORM_FACTOR"`
}

//RifleConfig describes the barrel twist and the aperture sight.
type RifleConfig struct {
	Twist               float64 `yaml:"twist" env:"TWIST"`
	SightRadius         float64 `yaml:"sight_radius" env:"SIGHT_RADIUS"`
	TwentyClickMovement float64 `yaml:"twenty_click_movement" env:"TWENTY_CLICK_MOVEMENT"`
}

//AtmosphereConfig describes the air; humidity is in 0..1 or 0..100.
type AtmosphereConfig struct {
	Temperature float64 `yaml:"temperature" env:"TEMPERATURE"`
	Pressure    float64 `yaml:"pressure" env:"PRESSURE"`
	Humidity    float64 `yaml:"humidity" env:"HUMIDITY"`
}

//ShotConfig keeps the velocity and the downrange measurements of the shot.
type ShotConfig struct {
	MuzzleVelocity float64 `yaml:"muzzle_velocity" env:"MUZZLE_VELOCITY"`
	//Chrono is a velocity string; its mean replaces MuzzleVelocity.
	Chrono       []float64 `yaml:"chrono" env:"CHRONO" envSeparator:","`
	Distance     float64   `yaml:"distance" env:"DISTANCE"`
	TimeOfFlight float64   `yaml:"time_of_flight" env:"TIME_OF_FLIGHT"`
	Crosswind    float64   `yaml:"crosswind" env:"CROSSWIND"`
}

//ComparisonConfig names a second bullet fired with the same load.
type ComparisonConfig struct {
	Mass float64 `yaml:"mass" env:"MASS"`
}

//Default returns a profile with the standard atmosphere and no load.
func Default() *Profile {
	return &Profile{
		Bullet: BulletConfig{
			DragTable: DefaultDragTable,
		},
		Atmosphere: AtmosphereConfig{
			Temperature: unit.StandardTemperatureValue,
			Pressure:    unit.StandardPressureValue,
		},
	}
}

//Load reads a YAML profile from path over the defaults.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile: %w", err)
	}
	return Parse(data)
}

//Parse decodes a YAML profile over the defaults.
func Parse(data []byte) (*Profile, error) {
	p := Default()
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("parse profile: %w", err)
	}
	return p, nil
}

//FromEnv reads a profile from BALLISTICS_* environment variables over the defaults,
//e.g. BALLISTICS_BULLET_MASS or BALLISTICS_SHOT_CHRONO=2790,2805,2801.
func FromEnv() (*Profile, error) {
	p := Default()
	if err := env.ParseWithOptions(p, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return p, nil
}

func (p *Profile) velocities() []unit.Velocity {
	out := make([]unit.Velocity, 0, len(p.Shot.Chrono))
	for _, v := range p.Shot.Chrono {
		out = append(out, unit.CreateVelocity(v))
	}
	return out
}
