package hkaccessory

import (
	"encoding/json"

	"github.com/olebedev/emitter"
	"github.com/xiam/to"
)

// HapCharacteristic is the format-independent surface of a characteristic.
// Services hold characteristics of mixed value types through this interface
// and the transport layer reads/writes them with wire-shaped (JSON-decoded)
// values.
type HapCharacteristic interface {
	json.Marshaler

	Iid() uint64
	SetIid(id uint64)
	SetAid(accessoryId uint64)
	Type() HapCharacteristicType
	Format() Format
	Perms() []Perm
	Unit() (Unit, bool)
	// Bounds returns minValue, maxValue and minStep in wire form,
	// nil for each constraint that is unset.
	Bounds() (min, max, step interface{})
	MaxLen() (uint16, bool)
	EventNotifications() *bool
	SetEventNotifications(eventNotifications *bool)

	// ReadValue runs the read path (including any read hook) and returns
	// the value in wire form.
	ReadValue() (interface{}, error)
	// WriteValue coerces a wire value to the native type and runs the
	// write path. On error the stored value is left untouched.
	WriteValue(value interface{}) error

	SetEventEmitter(eventEmitter *emitter.Emitter)
}

func (c *Characteristic[T]) ReadValue() (interface{}, error) {
	v, err := c.Value()
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (c *Characteristic[T]) WriteValue(value interface{}) error {
	// some controllers set boolean values either as a boolean
	// or as an integer
	if c.format == FormatBool && isNumber(value) {
		switch to.Float64(value) {
		case 0:
			value = false
		case 1:
			value = true
		default:
			return &InvalidValueError{Format: c.format, Value: value}
		}
	}

	v, err := decodeAs[T](value)
	if err != nil {
		return &DecodeError{Format: c.format, err: err}
	}

	return c.SetValue(v)
}

func (c *Characteristic[T]) Bounds() (min, max, step interface{}) {
	if c.minValue != nil {
		min = *c.minValue
	}
	if c.maxValue != nil {
		max = *c.maxValue
	}
	if c.stepValue != nil {
		step = *c.stepValue
	}
	return min, max, step
}

// decodeAs converts a JSON-decoded wire value into the native type by
// re-encoding through encoding/json, so that float64(1) becomes uint8(1)
// and base64 strings become []byte the same way the transport decoder
// would produce them.
func decodeAs[T any](value interface{}) (T, error) {
	if v, ok := value.(T); ok {
		return v, nil
	}
	var v T
	b, err := json.Marshal(value)
	if err != nil {
		return v, err
	}
	if err := json.Unmarshal(b, &v); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

func isNumber(value interface{}) bool {
	switch value.(type) {
	case float64, float32,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		json.Number:
		return true
	default:
		return false
	}
}
