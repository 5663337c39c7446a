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

package logger

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type zapEcho struct {
	z *zap.Logger
}

// NewZapEcho returns an Echo that writes each entry to the io.Writer as a
// line of JSON.
func NewZapEcho(output io.Writer) Echo {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(cfg), zapcore.AddSync(output), zapcore.DebugLevel)
	return zapEcho{z: zap.New(core)}
}

func (ze zapEcho) Echo(e Entry) {
	fields := []zap.Field{zap.String("tag", e.Tag)}
	if e.Repeated > 0 {
		fields = append(fields, zap.Int("repeat", e.Repeated+1))
	}
	ze.z.Info(e.Detail, fields...)
}
