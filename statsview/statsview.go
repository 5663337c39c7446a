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

package statsview

import (
	"sync"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/orlok/cinderbridge/logger"
)

const Address = "localhost:12600"
const url = "/debug/statsview"

var once sync.Once

// Launch a new goroutine running the statsview. Only the first call has an
// effect.
func Launch() {
	once.Do(func() {
		go func() {
			viewer.SetConfiguration(viewer.WithAddr(Address))
			mgr := statsview.New()
			mgr.Start()
		}()
		logger.Logf(logger.Allow, "statsview", "stats server available at %s%s", Address, url)
	})
}
