// Package cspline computes smooth paths through sparse 2D waypoints by
// natural cubic spline interpolation over arc length.
/*

A Path is built from an ordered set of waypoints. The cumulative Euclidean
distance along the waypoint chain serves as the spline parameter s (the
knots), and two independent one-dimensional Splines x(s) and y(s) are fitted
over these knots. Each Spline is a composite of cubic polynomials

   f(s) = a·ds³ + b·ds² + c·ds + d,    ds = s - s.i

one per segment [s.i, s.i+1]. The coefficients interpolate the input values
exactly at every knot, are C² continuous at interior knots and satisfy the
natural boundary condition f'' = 0 at both ends. The quadratic coefficients
b are the solution of a tridiagonal linear system, see type System.

On construction a Path samples itself at a fixed step over the half-open
parameter range [s.0, s.n-1), producing positions, signed curvature and yaw
(the heading of the tangent). The final knot itself is never sampled.

Usage

   path, err := cspline.NewPath(
       []float64{0, 1, 2, 3},
       []float64{0, 1, 0, 1},
       cspline.WithStep(0.5))
   if err != nil {
       // configuration error: lengths, step, coincident waypoints
   }
   for i, pos := range path.Positions() {
       fmt.Printf("%s  κ=%.4f  yaw=%.4f\n", pos, path.Curvature()[i], path.Yaw()[i])
   }

Evaluations outside the knot range are not errors, they report ok == false:

   if p, ok := path.Position(s); ok { ... }

Paths and Splines are immutable after construction and may be queried from
multiple goroutines.

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package cspline
