package hkaccessory

// Format tags the wire type of a characteristic value.
// The constant values are the strings that appear in the
// "format" field of the characteristic JSON.
type Format string

const (
	FormatString Format = "string"
	FormatBool   Format = "bool"
	FormatFloat  Format = "float"
	FormatUInt8  Format = "uint8"
	FormatUInt16 Format = "uint16"
	FormatUInt32 Format = "uint32"
	FormatUInt64 Format = "uint64"
	FormatInt32  Format = "int32"
	FormatTlv8   Format = "tlv8"
	FormatData   Format = "data"
)

// Perm is a visibility/capability flag of a characteristic.
type Perm string

const (
	PermPairedRead              Perm = "pr"
	PermPairedWrite             Perm = "pw"
	PermEvents                  Perm = "ev"
	PermAdditionalAuthorization Perm = "aa"
	PermTimedWrite              Perm = "tw"
	PermHidden                  Perm = "hd"
)

// Unit annotates numeric characteristic values with a physical unit.
type Unit string

const (
	UnitPercentage Unit = "percentage"
	UnitArcDegrees Unit = "arcdegrees"
	UnitCelsius    Unit = "celsius"
	UnitLux        Unit = "lux"
	UnitSeconds    Unit = "seconds"
)

func hasPerm(perms []Perm, p Perm) bool {
	for _, pp := range perms {
		if pp == p {
			return true
		}
	}
	return false
}
