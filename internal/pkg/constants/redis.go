package constants

// Redis key patterns for tracking data
const (
	// KeyVehicleLocation is a hash holding the latest position of a vehicle
	KeyVehicleLocation = "vehicle:%s:location"
	// KeyVehicleGeoIndex is the geo set of current fleet positions
	KeyVehicleGeoIndex = "fleet:positions"
	// KeyAlert is a hash holding one speed alert
	KeyAlert = "alert:%s"
	// KeyAlertIndex is the set of all known alert ids
	KeyAlertIndex = "alerts:index"
	// KeySnapshot holds the serialized latest published snapshot
	KeySnapshot = "tracking:snapshot"
)

// Redis hash field names
const (
	FieldLatitude  = "latitude"
	FieldLongitude = "longitude"
	FieldSpeed     = "speed"
	FieldDirection = "direction"
	FieldGeohash   = "geohash"
	FieldTimestamp = "timestamp"
)
