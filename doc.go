//Package go_ballistics provides closed-form exterior ballistics formulas.
//
//Every formula is a pure function taking typed quantities from the
//bmath/unit package and returning a new typed quantity:
//
//	s := go_ballistics.CalculateGyroscopicStability(go_ballistics.StabilityParams{
//		Mass:     unit.CreateBulletMass(168),
//		Twist:    unit.CreateRiflingTwist(36.5),
//		Diameter: unit.CreateBulletDiameter(0.308),
//		Length:   unit.CreateBulletLength(4.16),
//	})
//	s = go_ballistics.CorrectStabilityForVelocity(unit.CreateVelocity(2650), s)
//
//Formulas with more than two inputs, or with two inputs of the same type,
//take a parameter struct so the inputs are always named.
//
//No formula validates its inputs. Division by zero produces ±Inf and
//a square root or a fractional power of a negative number produces NaN;
//such values propagate through the formulas which use them. Use the
//validate package to check the inputs or the results.
package go_ballistics
