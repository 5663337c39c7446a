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

package surface

import (
	"math"

	"github.com/orlok/cinderbridge/curated"
	"golang.org/x/image/draw"
)

// InvalidFilter is the error pattern for an unknown resize filter.
const InvalidFilter = "surface: invalid filter (%d)"

// Filter selects the resampling kernel used by Resize().
type Filter int

// List of valid Filter values. The values are part of the C interface.
const (
	FilterBox Filter = iota
	FilterTriangle
	FilterGaussian
)

func (f Filter) String() string {
	switch f {
	case FilterBox:
		return "box"
	case FilterTriangle:
		return "triangle"
	case FilterGaussian:
		return "gaussian"
	}
	return "unknown"
}

var (
	// the box covers one source pixel. the support is wider than the box so
	// that a sample falling exactly between two source pixels takes half of
	// each rather than neither.
	boxKernel = &draw.Kernel{
		Support: 1.0,
		At: func(t float64) float64 {
			switch {
			case t < 0.5:
				return 1.0
			case t == 0.5:
				return 0.5
			}
			return 0.0
		},
	}

	triangleKernel = &draw.Kernel{
		Support: 1.0,
		At: func(t float64) float64 {
			return 1.0 - t
		},
	}

	gaussianKernel = &draw.Kernel{
		Support: 1.25,
		At: func(t float64) float64 {
			return math.Exp(-2.0*t*t) * math.Sqrt(2.0/math.Pi)
		},
	}
)

func (f Filter) kernel() (*draw.Kernel, error) {
	switch f {
	case FilterBox:
		return boxKernel, nil
	case FilterTriangle:
		return triangleKernel, nil
	case FilterGaussian:
		return gaussianKernel, nil
	}
	return nil, curated.Errorf(InvalidFilter, int(f))
}

// Resize returns a new surface containing the whole of the surface scaled to
// the new size with the filter.
func (srf *Surface) Resize(width, height int, filter Filter) (*Surface, error) {
	k, err := filter.kernel()
	if err != nil {
		return nil, err
	}

	dst, err := New(width, height)
	if err != nil {
		return nil, err
	}

	k.Scale(dst.NRGBA(), dst.Bounds(), srf.NRGBA(), srf.Bounds(), draw.Src, nil)

	return dst, nil
}
