// This file is part of Cinderbridge.
//
// Cinderbridge is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Cinderbridge is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Cinderbridge.  If not, see <https://www.gnu.org/licenses/>.

package vg

// Rect adds a closed rectangle to the path.
func (c *Context) Rect(left, top, width, height float64) {
	c.dc.DrawRectangle(left, top, width, height)
}

// Circle adds a closed circle to the path.
func (c *Context) Circle(cx, cy, radius float64) {
	c.dc.DrawCircle(cx, cy, radius)
}

// ClearPath discards the path.
func (c *Context) ClearPath() {
	c.dc.ClearPath()
}

// MoveTo discards the path and begins a new one at the point.
func (c *Context) MoveTo(x, y float64) {
	c.dc.ClearPath()
	c.dc.MoveTo(x, y)
}

// LineTo adds a straight line to the path.
func (c *Context) LineTo(x, y float64) {
	c.dc.LineTo(x, y)
}

// QuadTo adds a quadratic curve to the path.
func (c *Context) QuadTo(x1, y1, x2, y2 float64) {
	c.dc.QuadraticTo(x1, y1, x2, y2)
}

// CurveTo adds a cubic curve to the path.
func (c *Context) CurveTo(x1, y1, x2, y2, x3, y3 float64) {
	c.dc.CubicTo(x1, y1, x2, y2, x3, y3)
}

// ClosePath closes the current sub-path.
func (c *Context) ClosePath() {
	c.dc.ClosePath()
}

// StrokePreserve strokes the path with the current paint. The path is kept.
func (c *Context) StrokePreserve() error {
	return c.dc.StrokePreserve()
}

// FillPreserve fills the path with the current paint. The path is kept.
func (c *Context) FillPreserve() error {
	return c.dc.FillPreserve()
}

// CurrentPoint returns the end point of the path in device space. The ok
// value is false if the path is empty.
func (c *Context) CurrentPoint() (x, y float64, ok bool) {
	return c.dc.GetCurrentPoint()
}
