package hkaccessory

// Readable supplies a fresh value when a characteristic is read,
// typically by polling hardware. It is invoked synchronously inside
// Value and must not fail; a hook that cannot read live state should
// return its best known value.
type Readable[T any] interface {
	OnRead(hapType HapCharacteristicType) T
}

// Updatable reacts to a value change, typically by driving hardware.
// It is invoked synchronously inside SetValue, before the new value
// is committed.
type Updatable[T any] interface {
	OnUpdate(hapType HapCharacteristicType, oldVal, newVal T)
}

// ReadableFunc adapts a plain function to the Readable interface.
type ReadableFunc[T any] func(hapType HapCharacteristicType) T

func (f ReadableFunc[T]) OnRead(hapType HapCharacteristicType) T {
	return f(hapType)
}

// UpdatableFunc adapts a plain function to the Updatable interface.
type UpdatableFunc[T any] func(hapType HapCharacteristicType, oldVal, newVal T)

func (f UpdatableFunc[T]) OnUpdate(hapType HapCharacteristicType, oldVal, newVal T) {
	f(hapType, oldVal, newVal)
}
