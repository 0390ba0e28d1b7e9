package profile_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	. "github.com/onsi/gomega"

	"github.com/gehtsoft-usa/go_ballistics"
	"github.com/gehtsoft-usa/go_ballistics/bmath/unit"
	"github.com/gehtsoft-usa/go_ballistics/profile"
	"github.com/gehtsoft-usa/go_ballistics/validate"
)

const fullProfile = `
name: .308 Win 168gr SMK
bullet:
  mass: 168
  diameter: 0.308
  length: 4.16
  form_factor: 1.05
rifle:
  twist: 36.5
  sight_radius: 30
  twenty_click_movement: 0.05
shot:
  chrono: [2640, 2650, 2660]
  distance: 3000
  time_of_flight: 1.35
  crosswind: 10
comparison:
  mass: 175
`

func testLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestDefault(t *testing.T) {
	g := NewWithT(t)

	p := profile.Default()
	g.Expect(p.Atmosphere.Temperature).To(Equal(59.0))
	g.Expect(p.Atmosphere.Pressure).To(Equal(29.92))
	g.Expect(p.Bullet.DragTable).To(Equal("G1"))
	g.Expect(p.Bullet.Mass).To(BeZero())
}

func TestParse(t *testing.T) {
	g := NewWithT(t)

	p, err := profile.Parse([]byte(fullProfile))
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(p.Name).To(Equal(".308 Win 168gr SMK"))
	g.Expect(p.Bullet.Mass).To(Equal(168.0))
	g.Expect(p.Bullet.DragTable).To(Equal("G1"), "default kept")
	g.Expect(p.Atmosphere.Pressure).To(Equal(29.92), "default kept")
	g.Expect(p.Shot.Chrono).To(Equal([]float64{2640, 2650, 2660}))
	g.Expect(p.Comparison.Mass).To(Equal(175.0))

	_, err = profile.Parse([]byte("bullet: [1, 2"))
	g.Expect(err).To(HaveOccurred())
	g.Expect(err.Error()).To(HavePrefix("parse profile:"))
}

func TestLoad(t *testing.T) {
	g := NewWithT(t)

	path := filepath.Join(t.TempDir(), "load.yaml")
	g.Expect(os.WriteFile(path, []byte(fullProfile), 0o644)).To(Succeed())

	p, err := profile.Load(path)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(p.Rifle.Twist).To(Equal(36.5))

	_, err = profile.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	g.Expect(err).To(HaveOccurred())
	g.Expect(err.Error()).To(HavePrefix("read profile:"))
}

func TestFromEnv(t *testing.T) {
	g := NewWithT(t)

	t.Setenv("BALLISTICS_NAME", "env load")
	t.Setenv("BALLISTICS_BULLET_MASS", "150")
	t.Setenv("BALLISTICS_BULLET_DRAG_TABLE", "G7")
	t.Setenv("BALLISTICS_ATMOSPHERE_TEMPERATURE", "86")
	t.Setenv("BALLISTICS_SHOT_CHRONO", "2790,2805,2801")

	p, err := profile.FromEnv()
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(p.Name).To(Equal("env load"))
	g.Expect(p.Bullet.Mass).To(Equal(150.0))
	g.Expect(p.Bullet.DragTable).To(Equal("G7"))
	g.Expect(p.Atmosphere.Temperature).To(Equal(86.0))
	g.Expect(p.Atmosphere.Pressure).To(Equal(29.92), "default kept")
	g.Expect(p.Shot.Chrono).To(Equal([]float64{2790, 2805, 2801}))
}

func TestFromEnvError(t *testing.T) {
	g := NewWithT(t)

	t.Setenv("BALLISTICS_BULLET_MASS", "heavy")

	_, err := profile.FromEnv()
	g.Expect(err).To(HaveOccurred())
	g.Expect(err.Error()).To(HavePrefix("parse env:"))
}

func TestSolveFullProfile(t *testing.T) {
	g := NewWithT(t)

	p, err := profile.Parse([]byte(fullProfile))
	g.Expect(err).NotTo(HaveOccurred())

	var logs bytes.Buffer
	rep, err := profile.NewSolver(testLogger(&logs)).Solve(p)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(rep.Warnings).To(BeEmpty())

	mass := unit.CreateBulletMass(168)
	velocity := unit.CreateVelocity(2650)

	g.Expect(rep.Chrono).NotTo(BeNil())
	g.Expect(rep.MuzzleVelocity.Value()).To(BeNumerically("~", 2650, 1e-9))
	g.Expect(rep.SpeedOfSound).To(Equal(go_ballistics.CalculateSpeedOfSound(unit.StandardTemperature())))
	g.Expect(rep.AirDensity.Value()).To(BeNumerically("~", 0.0765, 1e-12))
	g.Expect(rep.KineticEnergy.Value()).To(BeNumerically("~",
		go_ballistics.CalculateKineticEnergy(mass, velocity).Value(), 1e-6))

	bc := go_ballistics.CalculateBallisticCoefficient(go_ballistics.BallisticCoefficientParams{
		Mass:       mass,
		Diameter:   unit.CreateBulletDiameter(0.308),
		FormFactor: unit.CreateFormFactor(1.05),
	})
	g.Expect(*rep.BallisticCoefficient).To(Equal(bc))

	s := go_ballistics.CalculateGyroscopicStability(go_ballistics.StabilityParams{
		Mass:     mass,
		Twist:    unit.CreateRiflingTwist(36.5),
		Diameter: unit.CreateBulletDiameter(0.308),
		Length:   unit.CreateBulletLength(4.16),
	})
	g.Expect(*rep.Stability).To(Equal(s))
	corrected := go_ballistics.CorrectStabilityForVelocity(*rep.MuzzleVelocity, s)
	g.Expect(*rep.CorrectedStability).To(Equal(corrected), "standard atmosphere adds no correction")
	g.Expect(*rep.AerodynamicJump).To(Equal(go_ballistics.CalculateAerodynamicJump(corrected, unit.CreateBulletLength(4.16))))

	g.Expect(rep.LagTime.Value()).To(BeNumerically("~", 1.35-3000.0/2650.0, 1e-9))
	g.Expect(rep.WindDeflection.Value()).To(BeNumerically("~", 17.6*10*(1.35-3000.0/2650.0), 1e-9))
	g.Expect(rep.VelocityProjection.Value()).To(BeNumerically("~", 2650*0.979795897, 1e-3))
	g.Expect(rep.ClickValue.Value()).To(BeNumerically("~", 171.89*0.05/30, 1e-12))

	g.Expect(logs.String()).To(ContainSubstring("quantity=kinetic_energy"))
	g.Expect(logs.String()).NotTo(ContainSubstring("Non-finite result"))

	out := rep.String()
	g.Expect(out).To(HavePrefix(".308 Win 168gr SMK\n"))
	g.Expect(out).To(ContainSubstring("Muzzle velocity:"))
	g.Expect(out).To(ContainSubstring("Sight click value:"))
}

func TestSolveSkipsWindWithoutCrosswind(t *testing.T) {
	g := NewWithT(t)

	p, err := profile.Parse([]byte(fullProfile))
	g.Expect(err).NotTo(HaveOccurred())
	p.Shot.Crosswind = 0

	rep, err := profile.NewSolver(nil).Solve(p)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(rep.LagTime).NotTo(BeNil())
	g.Expect(rep.WindDeflection).To(BeNil())
	g.Expect(rep.String()).To(ContainSubstring("Lag time:"))
	g.Expect(rep.String()).NotTo(ContainSubstring("Wind deflection:"))
}

func TestSolveSkipsMissingSections(t *testing.T) {
	g := NewWithT(t)

	p := profile.Default()
	p.Bullet.Mass = 150
	p.Shot.MuzzleVelocity = 2800

	rep, err := profile.NewSolver(nil).Solve(p)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(rep.KineticEnergy.Value()).To(BeNumerically("~", 2608.695652, 1e-6))
	g.Expect(rep.Chrono).To(BeNil())
	g.Expect(rep.Stability).To(BeNil())
	g.Expect(rep.BallisticCoefficient).To(BeNil())
	g.Expect(rep.LagTime).To(BeNil())
	g.Expect(rep.VelocityProjection).To(BeNil())
	g.Expect(rep.ClickValue).To(BeNil())
	g.Expect(rep.String()).NotTo(ContainSubstring("Stability"))
}

func TestSolveFormFactorFromDragTable(t *testing.T) {
	g := NewWithT(t)

	p := profile.Default()
	p.Bullet.Mass = 168
	p.Bullet.Diameter = 0.308
	p.Bullet.DragTable = "g7"
	p.Shot.MuzzleVelocity = 2650

	mach := go_ballistics.CreateStandardAtmosphere().Mach(unit.CreateVelocity(2650))
	standard := go_ballistics.StandardDragCoefficient(go_ballistics.DragTableG7, mach)
	p.Bullet.DragCoefficient = standard.Value() * 1.2

	rep, err := profile.NewSolver(nil).Solve(p)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(*rep.Mach).To(BeNumerically("~", mach, 1e-12))
	g.Expect(rep.FormFactor.Value()).To(BeNumerically("~", 1.2, 1e-9))
	g.Expect(rep.BallisticCoefficient).NotTo(BeNil())

	p.Bullet.DragTable = "G3"
	_, err = profile.NewSolver(nil).Solve(p)
	g.Expect(err).To(HaveOccurred())
}

func TestSolveStrict(t *testing.T) {
	g := NewWithT(t)

	p := profile.Default()
	p.Bullet.Mass = 168
	p.Bullet.Diameter = -0.308
	p.Bullet.Length = 4.16
	p.Rifle.Twist = 36.5

	solver := profile.NewSolver(nil)
	solver.Strict = true
	rep, err := solver.Solve(p)
	g.Expect(rep).To(BeNil())
	g.Expect(err).To(MatchError(validate.ErrNotPositive))
	g.Expect(err.Error()).To(ContainSubstring("stability"))
}

func TestSolveLenient(t *testing.T) {
	g := NewWithT(t)

	p := profile.Default()
	p.Atmosphere.Pressure = 0
	p.Bullet.Mass = 168
	p.Bullet.Diameter = 0.308
	p.Bullet.Length = 4.16
	p.Rifle.Twist = 36.5

	var logs bytes.Buffer
	rep, err := profile.NewSolver(testLogger(&logs)).Solve(p)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(rep.Warnings).To(HaveLen(1))
	g.Expect(rep.Warnings[0]).To(MatchError(validate.ErrNotPositive))
	g.Expect(rep.CorrectedStability.Value()).To(BeNumerically(">", 1e300))
	g.Expect(logs.String()).To(ContainSubstring("Invalid input"))
	g.Expect(logs.String()).To(ContainSubstring("Non-finite result"))
}

func TestSolveRejectsHumidity(t *testing.T) {
	g := NewWithT(t)

	p := profile.Default()
	p.Atmosphere.Humidity = 120

	_, err := profile.NewSolver(nil).Solve(p)
	g.Expect(err).To(HaveOccurred())
	g.Expect(err.Error()).To(HavePrefix("atmosphere:"))
}
