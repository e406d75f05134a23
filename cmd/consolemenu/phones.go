package main

// phone is the built-in demo option set used when no options file is given.
type phone int

const (
	iPhone5 phone = iota + 1
	iPhone4S
	iPhone4
	samsungGalaxyS4
	samsungGalaxyS3
)

var allPhones = []phone{iPhone5, iPhone4S, iPhone4, samsungGalaxyS4, samsungGalaxyS3}

func (p phone) String() string {
	switch p {
	case iPhone5:
		return "iPhone_5"
	case iPhone4S:
		return "iPhone_4S"
	case iPhone4:
		return "iPhone_4"
	case samsungGalaxyS4:
		return "Samsung_Galaxy_S4"
	case samsungGalaxyS3:
		return "Samsung_Galaxy_S3"
	}
	return "unknown"
}
