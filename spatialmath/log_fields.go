package spatialmath

import (
	"github.com/golang/geo/r3"
	"go.uber.org/zap/zapcore"
)

// LogVector logs an r3.Vector as an object with x, y and z fields.
type LogVector r3.Vector

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (v LogVector) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddFloat64("x", v.X)
	enc.AddFloat64("y", v.Y)
	enc.AddFloat64("z", v.Z)
	return nil
}

// MarshalLogObject implements zapcore.ObjectMarshaler. The empty box logs as {"empty": true}.
func (b AABB) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	if b.IsEmpty() {
		enc.AddBool("empty", true)
		return nil
	}
	if err := enc.AddObject("min", LogVector(b.Min)); err != nil {
		return err
	}
	return enc.AddObject("max", LogVector(b.Max))
}
