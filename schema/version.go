package schema

// Version selects which OCPP schema directory and action set apply.
// It is immutable once chosen at validator construction.
type Version string

const (
	// V16 is OCPP 1.6.
	V16 Version = "1.6"
	// V20 is OCPP 2.0.
	V20 Version = "2.0"
	// V201 is OCPP 2.0.1.
	V201 Version = "2.0.1"
)

// Valid reports whether v is a supported protocol version.
func (v Version) Valid() bool {
	switch v {
	case V16, V20, V201:
		return true
	}
	return false
}

// String returns the version number as written in the OCPP specification.
func (v Version) String() string { return string(v) }

// dir returns the schema directory name for v.
func (v Version) dir() string {
	switch v {
	case V16:
		return "v16"
	case V20:
		return "v20"
	case V201:
		return "v201"
	default:
		return ""
	}
}
