package spatialmath

import (
	"testing"

	"github.com/golang/geo/r3"
	"go.uber.org/zap/zapcore"
	"go.viam.com/test"
)

func TestLogFields(t *testing.T) {
	enc := zapcore.NewMapObjectEncoder()
	test.That(t, enc.AddObject("split", LogVector(r3.Vector{1, -2, 0.5})), test.ShouldBeNil)
	test.That(t, enc.AddObject("bounds", NewAABB(r3.Vector{0, 0, 0}, r3.Vector{1, 2, 3})), test.ShouldBeNil)
	test.That(t, enc.AddObject("empty", EmptyAABB()), test.ShouldBeNil)

	test.That(t, enc.Fields, test.ShouldResemble, map[string]interface{}{
		"split": map[string]interface{}{"x": 1.0, "y": -2.0, "z": 0.5},
		"bounds": map[string]interface{}{
			"min": map[string]interface{}{"x": 0.0, "y": 0.0, "z": 0.0},
			"max": map[string]interface{}{"x": 1.0, "y": 2.0, "z": 3.0},
		},
		"empty": map[string]interface{}{"empty": true},
	})
}
