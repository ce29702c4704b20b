// Package construct builds derived geometric points by reducing them to
// small dense linear systems and handing those to linalg.
//
// The construct package provides:
//
//   - Circumcentre — the point equidistant from a triangle's three
//     vertices, obtained by solving the 2×2 perpendicular-bisector
//     system. The vertices are first translated so the first one becomes
//     the local origin, the same cancellation-resistance move the
//     measure package uses for ring area.
//
// Degenerate input (collinear vertices) surfaces as ErrCollinear rather
// than a non-finite coordinate.
package construct
