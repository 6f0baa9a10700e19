package hkaccessory

// Per-format constructors. Each ties the native Go type to the matching
// wire format so the two cannot drift apart.

func NewString(hapType HapCharacteristicType, perms ...Perm) *Characteristic[string] {
	return NewCharacteristic[string](hapType, FormatString, perms...)
}

func NewBool(hapType HapCharacteristicType, perms ...Perm) *Characteristic[bool] {
	return NewCharacteristic[bool](hapType, FormatBool, perms...)
}

func NewFloat(hapType HapCharacteristicType, perms ...Perm) *Characteristic[float64] {
	return NewCharacteristic[float64](hapType, FormatFloat, perms...)
}

func NewUInt8(hapType HapCharacteristicType, perms ...Perm) *Characteristic[uint8] {
	return NewCharacteristic[uint8](hapType, FormatUInt8, perms...)
}

func NewUInt16(hapType HapCharacteristicType, perms ...Perm) *Characteristic[uint16] {
	return NewCharacteristic[uint16](hapType, FormatUInt16, perms...)
}

func NewUInt32(hapType HapCharacteristicType, perms ...Perm) *Characteristic[uint32] {
	return NewCharacteristic[uint32](hapType, FormatUInt32, perms...)
}

func NewUInt64(hapType HapCharacteristicType, perms ...Perm) *Characteristic[uint64] {
	return NewCharacteristic[uint64](hapType, FormatUInt64, perms...)
}

func NewInt32(hapType HapCharacteristicType, perms ...Perm) *Characteristic[int32] {
	return NewCharacteristic[int32](hapType, FormatInt32, perms...)
}

// NewTlv8 carries a structured tag-length-value payload; on the wire it is
// base64, natively it is raw bytes.
func NewTlv8(hapType HapCharacteristicType, perms ...Perm) *Characteristic[[]byte] {
	return NewCharacteristic[[]byte](hapType, FormatTlv8, perms...)
}

func NewData(hapType HapCharacteristicType, perms ...Perm) *Characteristic[[]byte] {
	return NewCharacteristic[[]byte](hapType, FormatData, perms...)
}
