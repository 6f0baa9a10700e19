package hkaccessory

import (
	"github.com/olebedev/emitter"
)

/*
  a characteristic serializes into one entry of the accessory record:

	{
	  "iid": 11,
	  "type": "7C",
	  "format": "uint8",
	  "perms": [
		"pr",
		"pw",
		"ev"
	  ],
	  "value": 0,
	  "description": "Target Position",
	  "unit": "percentage",
	  "maxValue": 100,
	  "minValue": 0,
	  "minStep": 1
	},
*/

// Characteristic is a single typed, addressable property of an accessory.
// T is the native value type matching the declared Format.
//
// The zero value is not usable; construct with NewCharacteristic or one of
// the per-format constructors. All mutation is synchronous and happens on
// the caller's goroutine; a characteristic must not be shared between
// goroutines without external coordination.
type Characteristic[T any] struct {
	id          uint64
	accessoryId uint64
	hapType     HapCharacteristicType
	format      Format
	perms       []Perm
	description *string

	eventNotifications *bool

	value T
	unit  *Unit

	maxValue         *T
	minValue         *T
	stepValue        *T
	maxLen           *uint16
	maxDataLen       *uint32
	validValues      []T
	validValuesRange *[2]T

	readable  Readable[T]
	updatable Updatable[T]

	eventEmitter *emitter.Emitter
}

// NewCharacteristic creates a characteristic of the given type and format.
// The caller is responsible for format matching T; the per-format
// constructors in this package guarantee it.
func NewCharacteristic[T any](hapType HapCharacteristicType, format Format, perms ...Perm) *Characteristic[T] {
	return &Characteristic[T]{
		hapType: hapType,
		format:  format,
		perms:   perms,
	}
}

// Iid returns the instance id within the owning accessory.
func (c *Characteristic[T]) Iid() uint64 {
	return c.id
}

// SetIid is called by the owning accessory when the characteristic
// is attached.
func (c *Characteristic[T]) SetIid(id uint64) {
	c.id = id
}

// SetAid stamps the owning accessory id, used on outgoing events.
func (c *Characteristic[T]) SetAid(accessoryId uint64) {
	c.accessoryId = accessoryId
}

func (c *Characteristic[T]) Type() HapCharacteristicType {
	return c.hapType
}

func (c *Characteristic[T]) Format() Format {
	return c.format
}

func (c *Characteristic[T]) Perms() []Perm {
	return c.perms
}

func (c *Characteristic[T]) Description() (string, bool) {
	if c.description == nil {
		return "", false
	}
	return *c.description, true
}

func (c *Characteristic[T]) SetDescription(description string) {
	c.description = &description
}

// EventNotifications reports the controller subscription state:
// nil if never set, otherwise a pointer to the last value written
// by the transport layer.
func (c *Characteristic[T]) EventNotifications() *bool {
	return c.eventNotifications
}

func (c *Characteristic[T]) SetEventNotifications(eventNotifications *bool) {
	c.eventNotifications = eventNotifications
}

// Value returns the current value. If a read hook is attached it is asked
// for a fresh value first, which goes through SetValue so that the read
// path shares the write path's side effects.
func (c *Characteristic[T]) Value() (T, error) {
	if c.readable != nil {
		fresh := c.readable.OnRead(c.hapType)
		if err := c.SetValue(fresh); err != nil {
			var zero T
			return zero, err
		}
	}
	return c.value, nil
}

// SetValue commits a new value. The update hook and the change event both
// see the value before it is committed; external side effects applied by
// the hook are not rolled back if a later step fails.
//
// Numeric constraints (min/max/valid-values) are descriptive metadata and
// deliberately not enforced here. The error return is reserved.
func (c *Characteristic[T]) SetValue(val T) error {
	if c.updatable != nil {
		c.updatable.OnUpdate(c.hapType, c.value, val)
	}

	if c.eventNotifications != nil && *c.eventNotifications && c.eventEmitter != nil {
		c.eventEmitter.Emit(TopicCharacteristicValueChanged, CharacteristicValueChanged{
			Aid:   c.accessoryId,
			Iid:   c.id,
			Value: val,
		})
	}

	c.value = val

	return nil
}

func (c *Characteristic[T]) Unit() (Unit, bool) {
	if c.unit == nil {
		return "", false
	}
	return *c.unit, true
}

func (c *Characteristic[T]) SetUnit(unit Unit) {
	c.unit = &unit
}

func (c *Characteristic[T]) MaxValue() (T, bool) {
	if c.maxValue == nil {
		var zero T
		return zero, false
	}
	return *c.maxValue, true
}

func (c *Characteristic[T]) SetMaxValue(val T) {
	c.maxValue = &val
}

func (c *Characteristic[T]) MinValue() (T, bool) {
	if c.minValue == nil {
		var zero T
		return zero, false
	}
	return *c.minValue, true
}

func (c *Characteristic[T]) SetMinValue(val T) {
	c.minValue = &val
}

func (c *Characteristic[T]) StepValue() (T, bool) {
	if c.stepValue == nil {
		var zero T
		return zero, false
	}
	return *c.stepValue, true
}

func (c *Characteristic[T]) SetStepValue(val T) {
	c.stepValue = &val
}

func (c *Characteristic[T]) MaxLen() (uint16, bool) {
	if c.maxLen == nil {
		return 0, false
	}
	return *c.maxLen, true
}

func (c *Characteristic[T]) SetMaxLen(maxLen uint16) {
	c.maxLen = &maxLen
}

func (c *Characteristic[T]) MaxDataLen() (uint32, bool) {
	if c.maxDataLen == nil {
		return 0, false
	}
	return *c.maxDataLen, true
}

func (c *Characteristic[T]) SetMaxDataLen(maxDataLen uint32) {
	c.maxDataLen = &maxDataLen
}

func (c *Characteristic[T]) ValidValues() []T {
	return c.validValues
}

func (c *Characteristic[T]) SetValidValues(vals []T) {
	c.validValues = vals
}

func (c *Characteristic[T]) ValidValuesRange() ([2]T, bool) {
	if c.validValuesRange == nil {
		var zero [2]T
		return zero, false
	}
	return *c.validValuesRange, true
}

func (c *Characteristic[T]) SetValidValuesRange(low, high T) {
	c.validValuesRange = &[2]T{low, high}
}

// SetReadable attaches the read-side hook. A previous hook is replaced;
// nil detaches.
func (c *Characteristic[T]) SetReadable(readable Readable[T]) {
	c.readable = readable
}

// SetUpdatable attaches the write-side hook. A previous hook is replaced;
// nil detaches.
func (c *Characteristic[T]) SetUpdatable(updatable Updatable[T]) {
	c.updatable = updatable
}

// SetEventEmitter attaches the shared change-event sink. The emitter is
// owned by the accessory tree, not by the characteristic.
func (c *Characteristic[T]) SetEventEmitter(eventEmitter *emitter.Emitter) {
	c.eventEmitter = eventEmitter
}
